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
	"context"
	"fmt"
)

// SubmitResponse is a single response from a SubmitBatch call. Exactly one
// of ID (success) or Code (error) is populated.
type SubmitResponse struct {
	// The transaction id.
	ID string `json:"id,omitempty"`

	// The Core error code.
	Code string `json:"code,omitempty"`

	// The Core error message.
	Message string `json:"message,omitempty"`

	// Additional details about the error.
	Detail string `json:"detail,omitempty"`
}

// Err returns the *APIError carried by r, or nil if r reports success.
func (r *SubmitResponse) Err() error {
	if r.Code != "" {
		return &APIError{Code: r.Code,
			Message: r.Message, Detail: r.Detail}
	}
	return nil
}

// SubmitBatch submits a batch of signed transaction templates for inclusion
// into a block. The returned responses match the templates by position:
// responses[i] corresponds to templates[i], and individual responses can
// hold transaction ids or error info. Callers must correlate by index and
// inspect each response's Err rather than relying on an overall failure
// signal.
func SubmitBatch(ctx context.Context, c *Client,
	templates []*Template) ([]SubmitResponse, error) {

	params := map[string]interface{}{"transactions": templates}
	var responses []SubmitResponse
	if err := c.Request(ctx,
		"submit-transaction", params, &responses); err != nil {
		return nil, err
	}
	return responses, nil
}

// Submit submits a single signed transaction template for inclusion into a
// block. If the response carries an error code, Submit returns it as a
// *APIError even though the HTTP call itself succeeded.
func Submit(ctx context.Context, c *Client,
	template *Template) (*SubmitResponse, error) {

	responses, err := SubmitBatch(ctx, c, []*Template{template})
	if err != nil {
		return nil, err
	}
	if len(responses) != 1 {
		return nil, &ResponseError{Err: fmt.Errorf(
			"expected 1 submit response, got %v", len(responses))}
	}
	response := responses[0]
	if err := response.Err(); err != nil {
		return nil, err
	}
	return &response, nil
}
