// Package core provides data types corresponding to the Core server's
// transaction data structures, as well as thin request builders for the
// server's HTTP JSON API.
//
// The Transaction, Input, Output, Template, SubmitResponse, and Consumer
// types are value objects produced by the server and immutable once
// fetched. Field names are idiomatic in code and snake_case on the wire.
//
// The Action types and the Builder are caller owned accumulators: populate
// them with their fluent setters, call Build to obtain a Template, fill in
// the Template's witness components with an external signer, and pass the
// signed Template to Submit or SubmitBatch. Every mutating action and
// consumer-create request carries a generated idempotency token so a
// retried request is not double applied by the server.
//
// Methods that accept a *Client make calls to the Core server's API. The
// returned error can be checked with errors.As to see if it is a *APIError
// type, indicating that the networking call was successful but that the
// server returned a structured error. Batch endpoints can mix success and
// per-item error entries in one response, so inspect each entry's Err.
//
// The QueryBuilder, TransactionPage, and Consumer types allow for paging
// and polling the server's transaction list.
package core
