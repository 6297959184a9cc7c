package domain

import (
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionalJSON(t *testing.T) {
	type payload struct {
		Limit Optional[int64] `json:"data_limit"`
	}

	encoded, err := json.Marshal(payload{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"data_limit":null}`, string(encoded))

	encoded, err = json.Marshal(payload{Limit: Some[int64](0)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"data_limit":0}`, string(encoded))

	var decoded payload
	require.NoError(t, json.Unmarshal([]byte(`{"data_limit":2048}`), &decoded))
	assert.Equal(t, Some[int64](2048), decoded.Limit)

	decoded = payload{Limit: Some[int64](1)}
	require.NoError(t, json.Unmarshal([]byte(`{"data_limit":null}`), &decoded))
	assert.True(t, decoded.Limit.IsNone())
}

func TestOptionalOrElse(t *testing.T) {
	assert.Equal(t, 7, None[int]().OrElse(7))
	assert.Equal(t, 3, Some(3).OrElse(7))
}

func TestExpiryJSONLeavesUnsetInstantNull(t *testing.T) {
	encoded, err := json.Marshal(EffectiveExpiry(ClientSubscription{}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind":"none","at":null,"pending_days":null}`, string(encoded))

	at := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	encoded, err = json.Marshal(EffectiveExpiry(ClientSubscription{ExpiryDate: Some(at)}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind":"fixed","at":"2026-04-01T00:00:00Z","pending_days":null}`, string(encoded))
}
