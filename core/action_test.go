package core

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func marshalToMap(t *testing.T, action Action) map[string]interface{} {
	t.Helper()
	data, err := json.Marshal(action)
	require.NoError(t, err)
	var m map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &m))
	return m
}

var actionPayloadTests = []struct {
	Name     string
	Action   Action
	Expected map[string]interface{}
}{{
	Name:   "Issue",
	Action: NewIssue().SetAssetAlias("gold").SetAmount(100),
	Expected: map[string]interface{}{
		"type":        "issue",
		"asset_alias": "gold",
		"amount":      float64(100),
	},
}, {
	Name:   "Issue/AssetID",
	Action: NewIssue().SetAssetID("a1"),
	Expected: map[string]interface{}{
		"type":     "issue",
		"asset_id": "a1",
	},
}, {
	Name: "SpendFromAccount",
	Action: NewSpendFromAccount().SetAccountAlias("alice").
		SetAssetAlias("gold").SetAmount(5),
	Expected: map[string]interface{}{
		"type":          "spend_account",
		"account_alias": "alice",
		"asset_alias":   "gold",
		"amount":        float64(5),
	},
}, {
	Name: "SpendAccountUnspentOutput",
	Action: NewSpendAccountUnspentOutput().SetUnspentOutput(
		UnspentOutput{TransactionID: "tx1", Position: 2}),
	Expected: map[string]interface{}{
		"type":           "spend_account_unspent_output",
		"transaction_id": "tx1",
		"position":       float64(2),
	},
}, {
	Name: "ControlWithAccount",
	Action: NewControlWithAccount().SetAccountID("acc1").
		SetAssetID("a1").SetAmount(7),
	Expected: map[string]interface{}{
		"type":       "control_account",
		"account_id": "acc1",
		"asset_id":   "a1",
		"amount":     float64(7),
	},
}, {
	Name: "ControlWithProgram",
	Action: NewControlWithProgram().SetControlProgram("0014ab").
		SetAssetAlias("gold").SetAmount(3),
	Expected: map[string]interface{}{
		"type":            "control_program",
		"control_program": "0014ab",
		"asset_alias":     "gold",
		"amount":          float64(3),
	},
}, {
	// A retirement is a control_program action whose program is the
	// retirement program.
	Name:   "Retire",
	Action: NewRetire().SetAssetAlias("gold").SetAmount(50),
	Expected: map[string]interface{}{
		"type":            "control_program",
		"control_program": "6a",
		"asset_alias":     "gold",
		"amount":          float64(50),
	},
}}

func TestActionPayload(t *testing.T) {
	for _, test := range actionPayloadTests {
		t.Run(test.Name, func(t *testing.T) {
			assert := assert.New(t)
			m := marshalToMap(t, test.Action)

			// The payload contains exactly the discriminator,
			// the explicitly set fields, and a non-empty client
			// token.
			token, ok := m["client_token"].(string)
			assert.True(ok, "client_token")
			assert.NotEmpty(token)
			delete(m, "client_token")
			assert.Equal(test.Expected, m)
		})
	}
}

func TestActionClientTokensDiffer(t *testing.T) {
	assert := assert.New(t)
	m1 := marshalToMap(t, NewIssue())
	m2 := marshalToMap(t, NewIssue())
	assert.NotEmpty(m1["client_token"])
	assert.NotEqual(m1["client_token"], m2["client_token"])
}

func TestActionReferenceData(t *testing.T) {
	assert := assert.New(t)

	issue := NewIssue().SetAssetAlias("gold").
		AddReferenceDataField("memo", "hi").
		AddReferenceDataField("batch", float64(9))
	m := marshalToMap(t, issue)
	assert.Equal(map[string]interface{}{
		"memo": "hi", "batch": float64(9)}, m["reference_data"])

	retire := NewRetire().SetReferenceData(
		map[string]interface{}{"memo": "bye"})
	m = marshalToMap(t, retire)
	assert.Equal(map[string]interface{}{"memo": "bye"},
		m["reference_data"])
}

func TestActionSetParameter(t *testing.T) {
	assert := assert.New(t)
	m := marshalToMap(t, NewIssue().SetAssetAlias("gold").
		SetParameter("min_confirmations", float64(6)))
	assert.Equal(float64(6), m["min_confirmations"])
	// Raw parameters cannot clobber the discriminator.
	m = marshalToMap(t, NewIssue().SetParameter("type", "bogus"))
	assert.Equal("issue", m["type"])
}
