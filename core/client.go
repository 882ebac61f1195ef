// MIT License
//
// Copyright 2026 Atlas Ledger, LLC
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to
// deal in the Software without restriction, including without limitation the
// rights to use, copy, modify, merge, publish, distribute, sublicense, and/or
// sell copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING
// FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS
// IN THE SOFTWARE.

package core

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/atlas-ledger/core-go/log"
)

// Client makes requests to a Core server's HTTP JSON API. Client embeds an
// http.Client, so use its transport settings to configure TLS and timeouts.
type Client struct {
	CoreServer string
	http.Client
	DebugRequest bool
}

// CoreServerDefault is the default endpoint for a locally running Core
// server.
const CoreServerDefault = "http://localhost:1999"

var requestLog = log.NewDebug("core")

// NewClient returns a pointer to a Client initialized with the default
// localhost endpoint for the Core server and a 15 second timeout for the
// http.Client.
func NewClient() *Client {
	c := &Client{CoreServer: CoreServerDefault}
	c.Timeout = 15 * time.Second
	return c
}

// Request POSTs params as JSON to the named endpoint on c.CoreServer and
// unmarshals the response body into result, which should be passed as a
// pointer. Request returns a *APIError if the server responds with a
// structured error, a *ResponseError if the response body cannot be
// unmarshaled, and networking errors unchanged. Per-item errors embedded in
// batch responses are not inspected here. There are no retries at this
// layer.
func (c *Client) Request(ctx context.Context,
	endpoint string, params, result interface{}) error {

	body := []byte(`{}`)
	if params != nil {
		var err error
		body, err = json.Marshal(params)
		if err != nil {
			return err
		}
	}

	url := c.CoreServer + "/" + endpoint
	if c.DebugRequest {
		requestLog.Debugf("request: %v %v", url, string(body))
	}

	req, err := http.NewRequestWithContext(ctx,
		http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return fmt.Errorf("io.ReadAll(http.Response.Body): %w", err)
	}
	if c.DebugRequest {
		requestLog.Debugf("response: %v %v", res.Status, string(resBody))
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		// The server reports structured errors in the body of non-2xx
		// responses.
		var apiErr APIError
		if err := json.Unmarshal(resBody, &apiErr); err == nil &&
			apiErr.Code != "" {
			return &apiErr
		}
		return fmt.Errorf("http: %v", res.Status)
	}

	if result == nil {
		return nil
	}
	if err := json.Unmarshal(resBody, result); err != nil {
		return &ResponseError{Err: err}
	}
	return nil
}

// SingletonBatchRequest wraps params into a single element batch request to
// the named endpoint and unmarshals the sole element of the batch response
// into result. A response with any other number of elements is a
// *ResponseError.
func (c *Client) SingletonBatchRequest(ctx context.Context,
	endpoint string, params, result interface{}) error {

	var responses []json.RawMessage
	if err := c.Request(ctx, endpoint,
		[]interface{}{params}, &responses); err != nil {
		return err
	}
	if len(responses) != 1 {
		return &ResponseError{Err: fmt.Errorf(
			"expected 1 batch response, got %v", len(responses))}
	}
	if err := json.Unmarshal(responses[0], result); err != nil {
		return &ResponseError{Err: err}
	}
	return nil
}
