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

import "context"

// TransactionQuery is the cursor object for a paged transaction query. The
// server echoes an advanced cursor back with every page, so a populated
// TransactionQuery should be treated as opaque and passed back unchanged.
type TransactionQuery struct {
	// A filter expression selecting which transactions to return.
	Filter string `json:"filter,omitempty"`

	// Positional values for placeholders in Filter.
	FilterParams []interface{} `json:"filter_params,omitempty"`

	// The earliest transaction timestamp to include, in milliseconds
	// since the Unix epoch.
	StartTime int64 `json:"start_time,omitempty"`

	// The latest transaction timestamp to include, in milliseconds
	// since the Unix epoch.
	EndTime int64 `json:"end_time,omitempty"`

	// The order of results, "asc" or "desc".
	Order string `json:"order,omitempty"`

	// A server side timeout for this query, in milliseconds.
	Timeout int64 `json:"timeout,omitempty"`

	// An opaque position marker to resume from.
	After string `json:"after,omitempty"`
}

// TransactionPage is one page of results of a transaction query.
type TransactionPage struct {
	// The transactions in this page.
	Items []Transaction `json:"items"`

	// The cursor used to fetch the next page.
	Next TransactionQuery `json:"next"`

	// Set when there are no further pages.
	LastPage bool `json:"last_page"`
}

// GetPage returns the next page of transactions using p's underlying
// cursor. Any transport or API error is returned as is, without retries.
func (p *TransactionPage) GetPage(ctx context.Context,
	c *Client) (*TransactionPage, error) {

	page := new(TransactionPage)
	if err := c.Request(ctx,
		"list-transactions", p.Next, page); err != nil {
		return nil, err
	}
	return page, nil
}

// QueryBuilder accumulates the parameters of a transaction query. The zero
// value is an unfiltered query over the whole transaction list.
type QueryBuilder struct {
	next TransactionQuery
}

// SetFilter sets the filter expression selecting which transactions to
// return.
func (q *QueryBuilder) SetFilter(filter string) *QueryBuilder {
	q.next.Filter = filter
	return q
}

// AddFilterParameter appends a positional value for a placeholder in the
// filter expression.
func (q *QueryBuilder) AddFilterParameter(param interface{}) *QueryBuilder {
	q.next.FilterParams = append(q.next.FilterParams, param)
	return q
}

// SetStartTime sets the earliest transaction timestamp to include in
// results, in milliseconds since the Unix epoch.
func (q *QueryBuilder) SetStartTime(ms int64) *QueryBuilder {
	q.next.StartTime = ms
	return q
}

// SetEndTime sets the latest transaction timestamp to include in results,
// in milliseconds since the Unix epoch.
func (q *QueryBuilder) SetEndTime(ms int64) *QueryBuilder {
	q.next.EndTime = ms
	return q
}

// SetAscending sets the order of the query to ascending ("asc") to
// facilitate notifications.
func (q *QueryBuilder) SetAscending() *QueryBuilder {
	q.next.Order = "asc"
	return q
}

// SetTimeout sets a server side timeout on the query, in milliseconds. The
// client does not enforce it locally.
func (q *QueryBuilder) SetTimeout(ms int64) *QueryBuilder {
	q.next.Timeout = ms
	return q
}

// Query returns the accumulated cursor object.
func (q *QueryBuilder) Query() TransactionQuery { return q.next }

// Execute performs the first fetch of a transaction query based on the
// accumulated parameters.
func (q *QueryBuilder) Execute(ctx context.Context,
	c *Client) (*TransactionPage, error) {

	page := &TransactionPage{Next: q.next}
	return page.GetPage(ctx, c)
}
