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

import "fmt"

// APIError is a structured error returned by the Core server, either as the
// body of a non-2xx response or embedded in an element of a batch response.
type APIError struct {
	// The Core error code.
	Code string `json:"code"`

	// The Core error message.
	Message string `json:"message"`

	// Additional details about the error (possibly empty).
	Detail string `json:"detail"`
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("core: %v: %v: %v",
			e.Code, e.Message, e.Detail)
	}
	return fmt.Sprintf("core: %v: %v", e.Code, e.Message)
}

// ResponseError is returned when a response body from the Core server cannot
// be unmarshaled into the expected shape.
type ResponseError struct {
	Err error
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("core: malformed response: %v", e.Err)
}

func (e *ResponseError) Unwrap() error { return e.Err }
