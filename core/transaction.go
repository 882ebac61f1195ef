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

import "time"

// Transaction is a single committed transaction on a Core ledger.
// Transactions are produced only by the server and are immutable once
// fetched.
type Transaction struct {
	// Unique identifier, or transaction hash, of the transaction.
	ID string `json:"id"`

	// Unique identifier, or block hash, of the block containing the
	// transaction.
	BlockID string `json:"block_id"`

	// Height of the block containing the transaction.
	BlockHeight uint64 `json:"block_height"`

	// Position of the transaction within the block.
	Position int `json:"position"`

	// Time of the transaction.
	Timestamp time.Time `json:"timestamp"`

	// The specified inputs of the transaction.
	Inputs []Input `json:"inputs"`

	// The specified outputs of the transaction.
	Outputs []Output `json:"outputs"`

	// User specified, unstructured data embedded within the transaction.
	ReferenceData map[string]interface{} `json:"reference_data,omitempty"`

	// A flag indicating one or more inputs or outputs are local.
	// Possible values are "yes" and "no".
	IsLocal string `json:"is_local,omitempty"`
}

// Input is a single input included in a transaction.
type Input struct {
	// The type of action taken on the input. Possible actions are
	// "issue", "spend_account", and "spend_account_unspent_output".
	Action string `json:"action"`

	// The number of units of the asset being issued or spent.
	Amount int64 `json:"amount"`

	// The id of the asset being issued or spent.
	AssetID string `json:"asset_id"`

	// The id of the account transferring the asset (possibly empty if
	// the input is an issuance or an unspent output is specified).
	AccountID string `json:"account_id,omitempty"`

	// The tags associated with the account (possibly nil).
	AccountTags map[string]interface{} `json:"account_tags,omitempty"`

	// The tags associated with the asset (possibly nil).
	AssetTags map[string]interface{} `json:"asset_tags,omitempty"`

	// A flag indicating if the asset is locally controlled.
	// Possible values are "yes" and "no".
	AssetIsLocal string `json:"asset_is_local,omitempty"`

	// Inputs to the control program used to verify the ability to take
	// the specified action (possibly nil).
	InputWitness []string `json:"input_witness,omitempty"`

	// A program specifying a predicate for issuing an asset (possibly
	// empty if the input is not an issuance).
	IssuanceProgram string `json:"issuance_program,omitempty"`

	// User specified, unstructured data embedded within the input
	// (possibly nil).
	ReferenceData map[string]interface{} `json:"reference_data,omitempty"`

	// A flag indicating if the input is local.
	// Possible values are "yes" and "no".
	IsLocal string `json:"is_local,omitempty"`
}

// Output is a single output included in a transaction. Its position is
// unique within the transaction.
type Output struct {
	// The type of action taken on the output. Possible actions are
	// "control_account", "control_program", and "retire".
	Action string `json:"action"`

	// The purpose of the output. Possible purposes are "receive" and
	// "change". Only populated if the output's control program was
	// generated locally.
	Purpose string `json:"purpose,omitempty"`

	// The number of units of the asset being controlled.
	Amount int64 `json:"amount"`

	// The id of the asset being controlled.
	AssetID string `json:"asset_id"`

	// The control program which must be satisfied to transfer this
	// output.
	ControlProgram string `json:"control_program,omitempty"`

	// The output's position in the transaction's list of outputs.
	Position int `json:"position"`

	// The id of the account controlling this output (possibly empty if
	// a control program is specified instead).
	AccountID string `json:"account_id,omitempty"`

	// The tags associated with the account controlling this output
	// (possibly nil if a control program is specified).
	AccountTags map[string]interface{} `json:"account_tags,omitempty"`

	// The tags associated with the asset being controlled.
	AssetTags map[string]interface{} `json:"asset_tags,omitempty"`

	// A flag indicating if the asset is locally controlled.
	// Possible values are "yes" and "no".
	AssetIsLocal string `json:"asset_is_local,omitempty"`

	// User specified, unstructured data embedded within the output
	// (possibly nil).
	ReferenceData map[string]interface{} `json:"reference_data,omitempty"`

	// A flag indicating if the output is local.
	// Possible values are "yes" and "no".
	IsLocal string `json:"is_local,omitempty"`
}

// UnspentOutput identifies an unclaimed output of a committed transaction.
type UnspentOutput struct {
	// The id of the transaction containing the output.
	TransactionID string `json:"transaction_id"`

	// The output's position in the transaction's list of outputs.
	Position int `json:"position"`
}
