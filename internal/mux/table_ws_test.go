package mux

import (
	"net/http"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type wsResult struct {
	Type      string       `json:"type"`
	Round     *roundResult `json:"round"`
	CardsLeft int          `json:"cardsLeft"`
	Message   string       `json:"message"`
}

func Test_getTableUUIDWS(t *testing.T) {
	ts, registry := newTestServer("")
	defer ts.Close()

	tbl := registry.Create("Heads Up")
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/table/" + tbl.UUID + "/ws"

	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()
	assert.Equal(t, http.StatusSwitchingProtocols, resp.StatusCode)

	var out wsResult
	require.NoError(t, conn.WriteJSON(payloadIn{Action: "status"}))
	require.NoError(t, conn.ReadJSON(&out))
	assert.Equal(t, "status", out.Type)
	assert.Equal(t, 52, out.CardsLeft)

	for i := 1; i <= 5; i++ {
		out = wsResult{}
		require.NoError(t, conn.WriteJSON(payloadIn{Action: "deal"}))
		require.NoError(t, conn.ReadJSON(&out))
		assert.Equal(t, "round", out.Type)
		require.NotNil(t, out.Round)
		assert.Equal(t, i, out.Round.Number)
		assert.Equal(t, 52-10*i, out.CardsLeft)
	}

	out = wsResult{}
	require.NoError(t, conn.WriteJSON(payloadIn{Action: "deal"}))
	require.NoError(t, conn.ReadJSON(&out))
	assert.Equal(t, "error", out.Type)
	assert.Contains(t, out.Message, "the table has run out of cards")

	out = wsResult{}
	require.NoError(t, conn.WriteJSON(payloadIn{Action: "shuffle"}))
	require.NoError(t, conn.ReadJSON(&out))
	assert.Equal(t, "error", out.Type)
	assert.Equal(t, "unknown action: shuffle", out.Message)
}
