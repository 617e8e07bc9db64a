package bussystem

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseResponse(t *testing.T) {
	t.Run("json object", func(t *testing.T) {
		result, err := parseResponse([]byte(`{"order_id": 1044444, "price_total": "123.45"}`))
		require.NoError(t, err)

		// UseNumber сохраняет числа без потери точности
		assert.Equal(t, json.Number("1044444"), result["order_id"])
		assert.Equal(t, "123.45", result["price_total"])
	})

	t.Run("json array wrapped in items", func(t *testing.T) {
		result, err := parseResponse([]byte(`[{"a": 1}, {"a": 2}]`))
		require.NoError(t, err)

		items, ok := result["items"].([]interface{})
		require.True(t, ok)
		assert.Len(t, items, 2)
	})

	t.Run("xml with nested and repeated elements", func(t *testing.T) {
		body := []byte(`<root>
			<order_id>1044444</order_id>
			<item><ticket_id>100</ticket_id></item>
			<item><ticket_id>101</ticket_id></item>
		</root>`)

		result, err := parseResponse(body)
		require.NoError(t, err)
		assert.Equal(t, "1044444", result["order_id"])

		items, ok := result["item"].([]interface{})
		require.True(t, ok)
		require.Len(t, items, 2)

		first, ok := items[0].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "100", first["ticket_id"])
	})

	t.Run("xml single child stays scalar", func(t *testing.T) {
		result, err := parseResponse([]byte(`<root><status>reserve</status></root>`))
		require.NoError(t, err)
		assert.Equal(t, "reserve", result["status"])
	})

	t.Run("garbage is a parse error", func(t *testing.T) {
		_, err := parseResponse([]byte(`%%% neither json nor xml`))
		assert.Error(t, err)
	})
}
