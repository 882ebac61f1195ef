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

// Builder accumulates the actions and submission metadata of a transaction
// draft. A Builder must only be mutated by its owning caller before a
// single terminal Build call. It has no internal synchronization.
type Builder struct {
	// Hex-encoded serialization of a transaction to add to the current
	// template. Used when a counterparty has sent an initialized
	// template, e.g. during an atomic swap.
	BaseTransaction string `json:"base_transaction,omitempty"`

	// The actions of the transaction.
	Actions []Action `json:"actions"`

	// User specified, unstructured data embedded at the top level of
	// the transaction.
	ReferenceData map[string]interface{} `json:"reference_data,omitempty"`

	// A time duration in milliseconds. If the transaction is not fully
	// signed and submitted within this time, it will be rejected by the
	// server, and any outputs reserved when building the transaction
	// remain reserved for this duration. Zero means the server default
	// of 300000 ms (5 minutes).
	TTL int64 `json:"ttl,omitempty"`
}

// NewBuilder returns an empty transaction Builder.
func NewBuilder() *Builder {
	return &Builder{Actions: []Action{}}
}

// SetBaseTransaction sets the raw transaction that will be added to the
// current template.
func (b *Builder) SetBaseTransaction(rawTransaction string) *Builder {
	b.BaseTransaction = rawTransaction
	return b
}

// AddAction adds an action to the transaction Builder.
func (b *Builder) AddAction(action Action) *Builder {
	b.Actions = append(b.Actions, action)
	return b
}

// SetReferenceData sets the transaction's reference data.
func (b *Builder) SetReferenceData(
	data map[string]interface{}) *Builder {
	b.ReferenceData = data
	return b
}

// AddReferenceDataField adds a k,v pair to the transaction's reference data
// object.
func (b *Builder) AddReferenceDataField(
	key string, value interface{}) *Builder {
	if b.ReferenceData == nil {
		b.ReferenceData = make(map[string]interface{})
	}
	b.ReferenceData[key] = value
	return b
}

// SetTTL sets the transaction's time-to-live in milliseconds. Passing zero
// uses the server default of 300000 ms.
func (b *Builder) SetTTL(ms int64) *Builder {
	b.TTL = ms
	return b
}

// Build builds a single transaction template by wrapping b into the batch
// build endpoint and unwrapping the sole result.
func (b *Builder) Build(ctx context.Context, c *Client) (*Template, error) {
	tpl := new(Template)
	if err := c.SingletonBatchRequest(ctx,
		"build-transaction", b, tpl); err != nil {
		return nil, err
	}
	return tpl, nil
}

// BuildBatch builds a batch of transaction templates, one per Builder, in
// order. The server does not fail the whole batch for one bad item: a
// template at position i may instead carry the error for builders[i], so
// callers must inspect each Template's Err.
func BuildBatch(ctx context.Context, c *Client,
	builders []*Builder) ([]Template, error) {

	var tpls []Template
	if err := c.Request(ctx,
		"build-transaction", builders, &tpls); err != nil {
		return nil, err
	}
	return tpls, nil
}
