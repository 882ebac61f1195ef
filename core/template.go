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

// Template is a built transaction that has not yet been submitted for block
// inclusion. It is exchanged between client and server, with external
// signing filling in the witness components between Build and Submit.
type Template struct {
	// A hex-encoded representation of the transaction template.
	RawTransaction string `json:"raw_transaction,omitempty"`

	// The signing instructions for the inputs of the transaction,
	// indexed by input position.
	SigningInstructions []SigningInstruction `json:"signing_instructions,omitempty"`

	// For core use only.
	Local bool `json:"local,omitempty"`

	// False (the default) makes the transaction final when signing,
	// preventing further changes: the signature program commits to the
	// transaction's signature hash. True makes the transaction
	// extensible, committing only to the elements in the transaction so
	// far, permitting the addition of new elements.
	AllowAdditionalActions bool `json:"allow_additional_actions,omitempty"`

	// The Core error code, set when building this item of the batch
	// failed.
	Code string `json:"code,omitempty"`

	// The Core error message.
	Message string `json:"message,omitempty"`

	// Additional details about the error.
	Detail string `json:"detail,omitempty"`
}

// Err returns the *APIError embedded in t by a batch build call, or nil if
// t was built successfully. Success is discriminated by field presence:
// the server sets Code on failed batch items.
func (t *Template) Err() error {
	if t.Code != "" {
		return &APIError{Code: t.Code,
			Message: t.Message, Detail: t.Detail}
	}
	return nil
}

// SigningInstruction is a single signing instruction included in a
// transaction template.
type SigningInstruction struct {
	// The id of the asset being issued or spent.
	AssetID string `json:"asset_id"`

	// The number of units of the asset being issued or spent.
	Amount int64 `json:"amount"`

	// The input's position in the transaction's list of inputs.
	Position int `json:"position"`

	// The components used to coordinate the signing of the input.
	WitnessComponents []WitnessComponent `json:"witness_components,omitempty"`
}

// WitnessComponent holds information that will become part of an input
// witness. Data is populated iff Type is "data". Quorum, Keys, and
// Signatures are populated iff Type is "signature".
type WitnessComponent struct {
	// The type of witness component. Possible types are "data" and
	// "signature".
	Type string `json:"type"`

	// Data to be included in the input witness.
	Data string `json:"data,omitempty"`

	// The number of signatures required for the input.
	Quorum int `json:"quorum,omitempty"`

	// The keys to sign with.
	Keys []KeyID `json:"keys,omitempty"`

	// The program whose hash is signed. If empty, it is inferred during
	// signing from aspects of the transaction.
	Program string `json:"program,omitempty"`

	// The signatures made with the specified keys.
	Signatures []string `json:"signatures,omitempty"`
}

// KeyID is a derived signing key.
type KeyID struct {
	// The extended public key associated with the private key used to
	// sign.
	XPub string `json:"xpub"`

	// The derivation path of the extended public key.
	DerivationPath []string `json:"derivation_path,omitempty"`
}
