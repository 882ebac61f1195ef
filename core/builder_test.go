package core

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilderMarshal(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	b := NewBuilder().
		SetBaseTransaction("beef").
		AddAction(NewIssue().SetAssetAlias("gold").SetAmount(100)).
		AddReferenceDataField("memo", "hi").
		SetTTL(60000)
	data, err := json.Marshal(b)
	require.NoError(err)

	var m map[string]interface{}
	require.NoError(json.Unmarshal(data, &m))
	assert.Equal("beef", m["base_transaction"])
	assert.Equal(float64(60000), m["ttl"])
	assert.Equal(map[string]interface{}{"memo": "hi"},
		m["reference_data"])
	actions, ok := m["actions"].([]interface{})
	require.True(ok)
	require.Len(actions, 1)
	action := actions[0].(map[string]interface{})
	assert.Equal("issue", action["type"])
	assert.Equal("gold", action["asset_alias"])
}

func TestBuilderMarshalZeroTTL(t *testing.T) {
	// TTL zero is omitted so the server applies its 300000 ms default.
	require := require.New(t)
	data, err := json.Marshal(NewBuilder())
	require.NoError(err)
	var m map[string]interface{}
	require.NoError(json.Unmarshal(data, &m))
	require.NotContains(m, "ttl")
	require.NotContains(m, "base_transaction")
}

func TestBuild(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)
	c, lastBody := newTestClient(t,
		func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/build-transaction" {
				t.Errorf("path: %v", r.URL.Path)
			}
			w.Write([]byte(`[{
				"raw_transaction": "beef",
				"signing_instructions": [{
					"asset_id": "a1",
					"amount": 100,
					"position": 0,
					"witness_components": [{
						"type": "signature",
						"quorum": 1,
						"keys": [{
							"xpub": "xpub1",
							"derivation_path": ["m", "0"]
						}]
					}]
				}]
			}]`))
		})

	b := NewBuilder().
		AddAction(NewIssue().SetAssetAlias("gold").SetAmount(100))
	tpl, err := b.Build(context.Background(), c)
	require.NoError(err)
	require.NoError(tpl.Err())
	assert.Equal("beef", tpl.RawTransaction)
	require.Len(tpl.SigningInstructions, 1)
	si := tpl.SigningInstructions[0]
	assert.Equal("a1", si.AssetID)
	assert.Equal(int64(100), si.Amount)
	require.Len(si.WitnessComponents, 1)
	wc := si.WitnessComponents[0]
	assert.Equal("signature", wc.Type)
	assert.Equal(1, wc.Quorum)
	require.Len(wc.Keys, 1)
	assert.Equal("xpub1", wc.Keys[0].XPub)
	assert.Equal([]string{"m", "0"}, wc.Keys[0].DerivationPath)

	// The builder is sent as a one element batch.
	var sent []map[string]interface{}
	require.NoError(json.Unmarshal(*lastBody, &sent))
	require.Len(sent, 1)
	actions := sent[0]["actions"].([]interface{})
	require.Len(actions, 1)
}

func TestBuildBatchMixedResults(t *testing.T) {
	// The server does not fail the whole batch for one bad item. Each
	// Template carries its own error fields.
	assert := assert.New(t)
	require := require.New(t)
	c, _ := newTestClient(t,
		func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[
				{"raw_transaction": "beef"},
				{"code": "CH735",
					"message": "Transaction build failed"}
			]`))
		})

	builders := []*Builder{
		NewBuilder().AddAction(
			NewIssue().SetAssetAlias("gold").SetAmount(1)),
		NewBuilder(),
	}
	tpls, err := BuildBatch(context.Background(), c, builders)
	require.NoError(err)
	require.Len(tpls, len(builders))
	assert.NoError(tpls[0].Err())
	var apiErr *APIError
	require.ErrorAs(tpls[1].Err(), &apiErr)
	assert.Equal("CH735", apiErr.Code)
}
