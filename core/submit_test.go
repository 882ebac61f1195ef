package core

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitBatchOrderPreservation(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)
	c, lastBody := newTestClient(t,
		func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/submit-transaction" {
				t.Errorf("path: %v", r.URL.Path)
			}
			// Respond with one entry per submitted template, in
			// order, mixing success and error entries.
			w.Write([]byte(`[
				{"id": "tx0"},
				{"code": "CH706",
					"message": "invalid signature"},
				{"id": "tx2"}
			]`))
		})

	templates := []*Template{
		{RawTransaction: "aa"},
		{RawTransaction: "bb"},
		{RawTransaction: "cc"},
	}
	responses, err := SubmitBatch(context.Background(), c, templates)
	require.NoError(err)
	require.Len(responses, len(templates))
	assert.Equal("tx0", responses[0].ID)
	assert.NoError(responses[0].Err())
	assert.Equal("CH706", responses[1].Code)
	assert.Error(responses[1].Err())
	assert.Equal("tx2", responses[2].ID)

	// The templates are wrapped under a "transactions" key, in order.
	var sent struct {
		Transactions []Template `json:"transactions"`
	}
	require.NoError(json.Unmarshal(*lastBody, &sent))
	require.Len(sent.Transactions, len(templates))
	for i := range templates {
		assert.Equal(templates[i].RawTransaction,
			sent.Transactions[i].RawTransaction)
	}
}

func TestSubmit(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)
	c, _ := newTestClient(t,
		func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[{"id": "tx1"}]`))
		})

	response, err := Submit(context.Background(), c,
		&Template{RawTransaction: "aa"})
	require.NoError(err)
	assert.Equal("tx1", response.ID)
}

func TestSubmitAPIError(t *testing.T) {
	// Submit re-raises a per-item error as a typed error even though
	// the HTTP call itself succeeded.
	assert := assert.New(t)
	c, _ := newTestClient(t,
		func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[{"code": "CH706",
				"message": "invalid signature",
				"detail": "input 0"}]`))
		})

	_, err := Submit(context.Background(), c,
		&Template{RawTransaction: "aa"})
	var apiErr *APIError
	assert.ErrorAs(err, &apiErr)
	assert.Equal("CH706", apiErr.Code)
	assert.Equal("invalid signature", apiErr.Message)
	assert.Equal("input 0", apiErr.Detail)
}

func TestSubmitLengthMismatch(t *testing.T) {
	c, _ := newTestClient(t,
		func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[]`))
		})
	_, err := Submit(context.Background(), c, &Template{})
	var resErr *ResponseError
	assert.ErrorAs(t, err, &resErr)
}

func TestTemplateRoundTrip(t *testing.T) {
	// A signed template re-serializes with all known fields intact, so
	// submitting what an external signer returns preserves the wire
	// shape.
	require := require.New(t)
	original := `{
		"raw_transaction": "beef",
		"signing_instructions": [{
			"asset_id": "a1",
			"amount": 5,
			"position": 0,
			"witness_components": [{
				"type": "signature",
				"quorum": 1,
				"program": "aa",
				"keys": [{"xpub": "xpub1",
					"derivation_path": ["m", "1"]}],
				"signatures": ["sig1"]
			}, {
				"type": "data",
				"data": "deadbeef"
			}]
		}],
		"allow_additional_actions": true
	}`
	var tpl Template
	require.NoError(json.Unmarshal([]byte(original), &tpl))
	data, err := json.Marshal(tpl)
	require.NoError(err)
	require.JSONEq(original, string(data))
}
