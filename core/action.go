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
	"encoding/json"

	"github.com/google/uuid"
)

// Action is a declarative instruction merged into a build-transaction
// request. Each concrete action type fixes its own "type" discriminator and
// carries only the fields legal for that action kind. No field validation
// is performed locally. Illegal combinations are rejected by the server
// when the transaction is built.
type Action interface {
	json.Marshaler
	isAction()
}

// newClientToken returns a fresh idempotency token. Several action types
// require client_token as an idempotency key, so every action carries one
// by default.
func newClientToken() string {
	return uuid.New().String()
}

// baseAction holds the fields common to all action kinds: the generated
// idempotency token, the optional reference data object, and any raw
// parameters attached with a SetParameter call.
type baseAction struct {
	clientToken   string
	referenceData map[string]interface{}
	params        map[string]interface{}
}

func newBaseAction() baseAction {
	return baseAction{clientToken: newClientToken()}
}

func (baseAction) isAction() {}

// payload returns the wire map for an action of the given type, seeded with
// the client token, the reference data object, and any raw parameters.
// Concrete action types add their own fields on top.
func (a *baseAction) payload(typ string) map[string]interface{} {
	m := make(map[string]interface{}, len(a.params)+3)
	for k, v := range a.params {
		m[k] = v
	}
	m["type"] = typ
	m["client_token"] = a.clientToken
	if a.referenceData != nil {
		m["reference_data"] = a.referenceData
	}
	return m
}

func (a *baseAction) setReferenceData(data map[string]interface{}) {
	a.referenceData = data
}

func (a *baseAction) addReferenceDataField(key string, value interface{}) {
	if a.referenceData == nil {
		a.referenceData = make(map[string]interface{})
	}
	a.referenceData[key] = value
}

func (a *baseAction) setParameter(key string, value interface{}) {
	if a.params == nil {
		a.params = make(map[string]interface{})
	}
	a.params[key] = value
}

// Issue issues new units of an asset.
type Issue struct {
	baseAction
	assetAlias *string
	assetID    *string
	amount     *int64
}

// NewIssue returns an issuance action with a fresh client token.
func NewIssue() *Issue {
	return &Issue{baseAction: newBaseAction()}
}

// SetAssetAlias specifies the asset to be issued using its alias.
func (a *Issue) SetAssetAlias(alias string) *Issue {
	a.assetAlias = &alias
	return a
}

// SetAssetID specifies the asset to be issued using its id.
func (a *Issue) SetAssetID(id string) *Issue {
	a.assetID = &id
	return a
}

// SetAmount specifies the number of units of the asset to be issued.
func (a *Issue) SetAmount(amount int64) *Issue {
	a.amount = &amount
	return a
}

// SetReferenceData specifies the reference data to embed into the action.
func (a *Issue) SetReferenceData(data map[string]interface{}) *Issue {
	a.setReferenceData(data)
	return a
}

// AddReferenceDataField adds a k,v pair to the action's reference data
// object.
func (a *Issue) AddReferenceDataField(key string, value interface{}) *Issue {
	a.addReferenceDataField(key, value)
	return a
}

// SetParameter sets a raw k,v parameter pair on the action.
func (a *Issue) SetParameter(key string, value interface{}) *Issue {
	a.setParameter(key, value)
	return a
}

func (a *Issue) MarshalJSON() ([]byte, error) {
	m := a.payload("issue")
	if a.assetAlias != nil {
		m["asset_alias"] = *a.assetAlias
	}
	if a.assetID != nil {
		m["asset_id"] = *a.assetID
	}
	if a.amount != nil {
		m["amount"] = *a.amount
	}
	return json.Marshal(m)
}

// SpendFromAccount spends units of an asset from an account. The asset and
// the account must both be specified by alias or both by id.
type SpendFromAccount struct {
	baseAction
	accountAlias *string
	accountID    *string
	assetAlias   *string
	assetID      *string
	amount       *int64
}

// NewSpendFromAccount returns a spend action with a fresh client token.
func NewSpendFromAccount() *SpendFromAccount {
	return &SpendFromAccount{baseAction: newBaseAction()}
}

// SetAccountAlias specifies the spending account using its alias. Must be
// used with SetAssetAlias.
func (a *SpendFromAccount) SetAccountAlias(alias string) *SpendFromAccount {
	a.accountAlias = &alias
	return a
}

// SetAccountID specifies the spending account using its id. Must be used
// with SetAssetID.
func (a *SpendFromAccount) SetAccountID(id string) *SpendFromAccount {
	a.accountID = &id
	return a
}

// SetAssetAlias specifies the asset to be spent using its alias. Must be
// used with SetAccountAlias.
func (a *SpendFromAccount) SetAssetAlias(alias string) *SpendFromAccount {
	a.assetAlias = &alias
	return a
}

// SetAssetID specifies the asset to be spent using its id. Must be used
// with SetAccountID.
func (a *SpendFromAccount) SetAssetID(id string) *SpendFromAccount {
	a.assetID = &id
	return a
}

// SetAmount specifies the number of units of the asset to be spent.
func (a *SpendFromAccount) SetAmount(amount int64) *SpendFromAccount {
	a.amount = &amount
	return a
}

// SetReferenceData specifies the reference data to embed into the action.
func (a *SpendFromAccount) SetReferenceData(
	data map[string]interface{}) *SpendFromAccount {
	a.setReferenceData(data)
	return a
}

// AddReferenceDataField adds a k,v pair to the action's reference data
// object.
func (a *SpendFromAccount) AddReferenceDataField(
	key string, value interface{}) *SpendFromAccount {
	a.addReferenceDataField(key, value)
	return a
}

// SetParameter sets a raw k,v parameter pair on the action.
func (a *SpendFromAccount) SetParameter(
	key string, value interface{}) *SpendFromAccount {
	a.setParameter(key, value)
	return a
}

func (a *SpendFromAccount) MarshalJSON() ([]byte, error) {
	m := a.payload("spend_account")
	if a.accountAlias != nil {
		m["account_alias"] = *a.accountAlias
	}
	if a.accountID != nil {
		m["account_id"] = *a.accountID
	}
	if a.assetAlias != nil {
		m["asset_alias"] = *a.assetAlias
	}
	if a.assetID != nil {
		m["asset_id"] = *a.assetID
	}
	if a.amount != nil {
		m["amount"] = *a.amount
	}
	return json.Marshal(m)
}

// SpendAccountUnspentOutput spends one particular unspent output of a
// committed transaction. Add one action per unspent output to be spent.
type SpendAccountUnspentOutput struct {
	baseAction
	transactionID *string
	position      *int
}

// NewSpendAccountUnspentOutput returns a spend action with a fresh client
// token.
func NewSpendAccountUnspentOutput() *SpendAccountUnspentOutput {
	return &SpendAccountUnspentOutput{baseAction: newBaseAction()}
}

// SetUnspentOutput specifies the unspent output to be spent.
func (a *SpendAccountUnspentOutput) SetUnspentOutput(
	output UnspentOutput) *SpendAccountUnspentOutput {
	a.transactionID = &output.TransactionID
	a.position = &output.Position
	return a
}

// SetReferenceData specifies the reference data to embed into the action.
func (a *SpendAccountUnspentOutput) SetReferenceData(
	data map[string]interface{}) *SpendAccountUnspentOutput {
	a.setReferenceData(data)
	return a
}

// AddReferenceDataField adds a k,v pair to the action's reference data
// object.
func (a *SpendAccountUnspentOutput) AddReferenceDataField(
	key string, value interface{}) *SpendAccountUnspentOutput {
	a.addReferenceDataField(key, value)
	return a
}

// SetParameter sets a raw k,v parameter pair on the action.
func (a *SpendAccountUnspentOutput) SetParameter(
	key string, value interface{}) *SpendAccountUnspentOutput {
	a.setParameter(key, value)
	return a
}

func (a *SpendAccountUnspentOutput) MarshalJSON() ([]byte, error) {
	m := a.payload("spend_account_unspent_output")
	if a.transactionID != nil {
		m["transaction_id"] = *a.transactionID
	}
	if a.position != nil {
		m["position"] = *a.position
	}
	return json.Marshal(m)
}

// ControlWithAccount sends units of an asset to an account. The asset and
// the account must both be specified by alias or both by id.
type ControlWithAccount struct {
	baseAction
	accountAlias *string
	accountID    *string
	assetAlias   *string
	assetID      *string
	amount       *int64
}

// NewControlWithAccount returns a control action with a fresh client token.
func NewControlWithAccount() *ControlWithAccount {
	return &ControlWithAccount{baseAction: newBaseAction()}
}

// SetAccountAlias specifies the controlling account using its alias. Must
// be used with SetAssetAlias.
func (a *ControlWithAccount) SetAccountAlias(
	alias string) *ControlWithAccount {
	a.accountAlias = &alias
	return a
}

// SetAccountID specifies the controlling account using its id. Must be
// used with SetAssetID.
func (a *ControlWithAccount) SetAccountID(id string) *ControlWithAccount {
	a.accountID = &id
	return a
}

// SetAssetAlias specifies the asset to be controlled using its alias. Must
// be used with SetAccountAlias.
func (a *ControlWithAccount) SetAssetAlias(
	alias string) *ControlWithAccount {
	a.assetAlias = &alias
	return a
}

// SetAssetID specifies the asset to be controlled using its id. Must be
// used with SetAccountID.
func (a *ControlWithAccount) SetAssetID(id string) *ControlWithAccount {
	a.assetID = &id
	return a
}

// SetAmount specifies the number of units of the asset to be controlled.
func (a *ControlWithAccount) SetAmount(amount int64) *ControlWithAccount {
	a.amount = &amount
	return a
}

// SetReferenceData specifies the reference data to embed into the action.
func (a *ControlWithAccount) SetReferenceData(
	data map[string]interface{}) *ControlWithAccount {
	a.setReferenceData(data)
	return a
}

// AddReferenceDataField adds a k,v pair to the action's reference data
// object.
func (a *ControlWithAccount) AddReferenceDataField(
	key string, value interface{}) *ControlWithAccount {
	a.addReferenceDataField(key, value)
	return a
}

// SetParameter sets a raw k,v parameter pair on the action.
func (a *ControlWithAccount) SetParameter(
	key string, value interface{}) *ControlWithAccount {
	a.setParameter(key, value)
	return a
}

func (a *ControlWithAccount) MarshalJSON() ([]byte, error) {
	m := a.payload("control_account")
	if a.accountAlias != nil {
		m["account_alias"] = *a.accountAlias
	}
	if a.accountID != nil {
		m["account_id"] = *a.accountID
	}
	if a.assetAlias != nil {
		m["asset_alias"] = *a.assetAlias
	}
	if a.assetID != nil {
		m["asset_id"] = *a.assetID
	}
	if a.amount != nil {
		m["amount"] = *a.amount
	}
	return json.Marshal(m)
}

// ControlWithProgram sends units of an asset to a control program.
type ControlWithProgram struct {
	baseAction
	controlProgram *string
	assetAlias     *string
	assetID        *string
	amount         *int64
}

// NewControlWithProgram returns a control action with a fresh client token.
func NewControlWithProgram() *ControlWithProgram {
	return &ControlWithProgram{baseAction: newBaseAction()}
}

// SetControlProgram specifies the control program to be used.
func (a *ControlWithProgram) SetControlProgram(
	program string) *ControlWithProgram {
	a.controlProgram = &program
	return a
}

// SetAssetAlias specifies the asset to be controlled using its alias.
func (a *ControlWithProgram) SetAssetAlias(
	alias string) *ControlWithProgram {
	a.assetAlias = &alias
	return a
}

// SetAssetID specifies the asset to be controlled using its id.
func (a *ControlWithProgram) SetAssetID(id string) *ControlWithProgram {
	a.assetID = &id
	return a
}

// SetAmount specifies the number of units of the asset to be controlled.
func (a *ControlWithProgram) SetAmount(amount int64) *ControlWithProgram {
	a.amount = &amount
	return a
}

// SetReferenceData specifies the reference data to embed into the action.
func (a *ControlWithProgram) SetReferenceData(
	data map[string]interface{}) *ControlWithProgram {
	a.setReferenceData(data)
	return a
}

// AddReferenceDataField adds a k,v pair to the action's reference data
// object.
func (a *ControlWithProgram) AddReferenceDataField(
	key string, value interface{}) *ControlWithProgram {
	a.addReferenceDataField(key, value)
	return a
}

// SetParameter sets a raw k,v parameter pair on the action.
func (a *ControlWithProgram) SetParameter(
	key string, value interface{}) *ControlWithProgram {
	a.setParameter(key, value)
	return a
}

func (a *ControlWithProgram) MarshalJSON() ([]byte, error) {
	m := a.payload("control_program")
	if a.controlProgram != nil {
		m["control_program"] = *a.controlProgram
	}
	if a.assetAlias != nil {
		m["asset_alias"] = *a.assetAlias
	}
	if a.assetID != nil {
		m["asset_id"] = *a.assetID
	}
	if a.amount != nil {
		m["amount"] = *a.amount
	}
	return json.Marshal(m)
}

// retireProgram is the control program that provably destroys the units
// sent to it (OP_FAIL).
const retireProgram = "6a"

// Retire removes units of an asset from circulation. On the wire a
// retirement is a control_program action whose program is the retirement
// program.
type Retire struct {
	baseAction
	amount     *int64
	assetAlias *string
	assetID    *string
}

// NewRetire returns a retire action with a fresh client token.
func NewRetire() *Retire {
	return &Retire{baseAction: newBaseAction()}
}

// SetAmount specifies the number of units of the asset to be retired.
func (a *Retire) SetAmount(amount int64) *Retire {
	a.amount = &amount
	return a
}

// SetAssetAlias specifies the asset to be retired using its alias.
func (a *Retire) SetAssetAlias(alias string) *Retire {
	a.assetAlias = &alias
	return a
}

// SetAssetID specifies the asset to be retired using its id.
func (a *Retire) SetAssetID(id string) *Retire {
	a.assetID = &id
	return a
}

// SetReferenceData specifies the reference data to embed into the action.
func (a *Retire) SetReferenceData(data map[string]interface{}) *Retire {
	a.setReferenceData(data)
	return a
}

// AddReferenceDataField adds a k,v pair to the action's reference data
// object.
func (a *Retire) AddReferenceDataField(
	key string, value interface{}) *Retire {
	a.addReferenceDataField(key, value)
	return a
}

// SetParameter sets a raw k,v parameter pair on the action.
func (a *Retire) SetParameter(key string, value interface{}) *Retire {
	a.setParameter(key, value)
	return a
}

func (a *Retire) MarshalJSON() ([]byte, error) {
	m := a.payload("control_program")
	m["control_program"] = retireProgram
	if a.amount != nil {
		m["amount"] = *a.amount
	}
	if a.assetAlias != nil {
		m["asset_alias"] = *a.assetAlias
	}
	if a.assetID != nil {
		m["asset_id"] = *a.assetID
	}
	return json.Marshal(m)
}
