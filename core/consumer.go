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

// Consumer is a named, server persisted, forward-only cursor over the
// transaction list. Used together with list-transactions, Consumers provide
// notifications about transactions through polling.
type Consumer struct {
	// Consumer ID, automatically generated when the consumer is
	// created.
	ID string `json:"id"`

	// An optional, user supplied alias that uniquely identifies the
	// consumer.
	Alias string `json:"alias,omitempty"`

	// The query filter used in list-transactions.
	Filter string `json:"filter,omitempty"`

	// The direction the consumer moves through the transaction list.
	// Only "asc" (oldest transactions first) is supported currently.
	Order string `json:"order,omitempty"`

	// Indicates the last transaction consumed by the consumer.
	After string `json:"after,omitempty"`
}

// CreateConsumer registers a consumer with the given alias and query filter
// on the Core server. The request carries a generated idempotency token so
// a retried create is not double applied.
func CreateConsumer(ctx context.Context, c *Client,
	alias, filter string) (*Consumer, error) {

	params := struct {
		Alias       string `json:"alias"`
		Filter      string `json:"filter"`
		ClientToken string `json:"client_token"`
	}{Alias: alias, Filter: filter, ClientToken: newClientToken()}
	consumer := new(Consumer)
	if err := c.Request(ctx,
		"create-transaction-consumer", params, consumer); err != nil {
		return nil, err
	}
	return consumer, nil
}

// ConsumerByID retrieves a consumer by ID.
func ConsumerByID(ctx context.Context, c *Client,
	id string) (*Consumer, error) {

	params := struct {
		ID string `json:"id"`
	}{ID: id}
	consumer := new(Consumer)
	if err := c.Request(ctx,
		"get-consumer", params, consumer); err != nil {
		return nil, err
	}
	return consumer, nil
}

// ConsumerByAlias retrieves a consumer by alias.
func ConsumerByAlias(ctx context.Context, c *Client,
	alias string) (*Consumer, error) {

	params := struct {
		Alias string `json:"alias"`
	}{Alias: alias}
	consumer := new(Consumer)
	if err := c.Request(ctx,
		"get-consumer", params, consumer); err != nil {
		return nil, err
	}
	return consumer, nil
}

// Update advances the consumer's cursor to after and returns the server's
// refreshed Consumer. The request carries both the receiver's current After
// and the new value so the server can reject out-of-order or concurrent
// updates: a consumer can only be updated forwards, and the server is
// authoritative on that enforcement.
func (con *Consumer) Update(ctx context.Context, c *Client,
	after string) (*Consumer, error) {

	params := struct {
		ID            string `json:"id"`
		PreviousAfter string `json:"previous_after"`
		After         string `json:"after"`
	}{ID: con.ID, PreviousAfter: con.After, After: after}
	consumer := new(Consumer)
	if err := c.Request(ctx,
		"update-consumer", params, consumer); err != nil {
		return nil, err
	}
	return consumer, nil
}
