package server_test

import (
	"encoding/json"
	"math"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlgen/export"
	"github.com/katalvlaran/lvlgen/rng"
	"github.com/katalvlaran/lvlgen/server"
	"github.com/katalvlaran/lvlgen/store"
)

type frame struct {
	Type    server.MessageType `json:"type"`
	Payload json.RawMessage    `json:"payload"`
}

func dial(t *testing.T, srv *server.Server) *websocket.Conn {
	t.Helper()
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	ws, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { ws.Close() })
	return ws
}

func roundTrip(t *testing.T, ws *websocket.Conn, msg interface{}) frame {
	t.Helper()
	require.NoError(t, ws.WriteJSON(msg))
	require.NoError(t, ws.SetReadDeadline(time.Now().Add(10*time.Second)))
	var f frame
	require.NoError(t, ws.ReadJSON(&f))
	return f
}

func errorCode(t *testing.T, f frame) string {
	t.Helper()
	require.Equal(t, server.MessageTypeError, f.Type)
	var e server.ErrorMessage
	require.NoError(t, json.Unmarshal(f.Payload, &e))
	return e.Code
}

//-----------------------------------------------------------------------------//

func TestGenerate_WithSeed(t *testing.T) {
	ws := dial(t, server.New())
	f := roundTrip(t, ws, map[string]interface{}{
		"type":    "generate",
		"payload": map[string]interface{}{"params": map[string]interface{}{"seed": 888, "width": 40, "height": 20, "rooms": 5}},
	})
	require.Equal(t, server.MessageTypeLevel, f.Type)

	var doc export.Document
	require.NoError(t, json.Unmarshal(f.Payload, &doc))
	require.NoError(t, doc.Validate())
	assert.Equal(t, int64(888), doc.Seed)
	assert.Equal(t, 40, doc.Width)
	assert.Len(t, doc.Tiles, 20)
}

// TestGenerate_DerivedSeeds checks that requests without a seed get the
// derived sequence for the configured base seed.
func TestGenerate_DerivedSeeds(t *testing.T) {
	ws := dial(t, server.New(server.WithBaseSeed(7)))
	for i := uint64(1); i <= 2; i++ {
		f := roundTrip(t, ws, map[string]string{"type": "generate"})
		require.Equal(t, server.MessageTypeLevel, f.Type)
		var doc export.Document
		require.NoError(t, json.Unmarshal(f.Payload, &doc))
		assert.Equal(t, rng.DeriveSeed(7, i), doc.Seed)
	}
}

func TestGenerate_Errors(t *testing.T) {
	ws := dial(t, server.New())

	f := roundTrip(t, ws, map[string]interface{}{
		"type":    "generate",
		"payload": map[string]interface{}{"params": map[string]interface{}{"width": 3}},
	})
	assert.Equal(t, server.CodeInvalidParams, errorCode(t, f))

	// oversized requests are refused before any grid is allocated
	f = roundTrip(t, ws, map[string]interface{}{
		"type":    "generate",
		"payload": map[string]interface{}{"params": map[string]interface{}{"width": 200000, "height": 200000}},
	})
	assert.Equal(t, server.CodeInvalidParams, errorCode(t, f))

	f = roundTrip(t, ws, map[string]interface{}{
		"type":    "generate",
		"payload": map[string]interface{}{"params": map[string]interface{}{"elevation": true, "max_elevation": math.MaxInt64}},
	})
	assert.Equal(t, server.CodeInvalidParams, errorCode(t, f))

	f = roundTrip(t, ws, map[string]interface{}{
		"type":    "generate",
		"payload": map[string]interface{}{"save": true, "name": "x"},
	})
	assert.Equal(t, server.CodeNoStore, errorCode(t, f))

	f = roundTrip(t, ws, map[string]string{"type": "teleport"})
	assert.Equal(t, server.CodeUnknownType, errorCode(t, f))

	require.NoError(t, ws.WriteMessage(websocket.TextMessage, []byte("{oops")))
	var raw frame
	require.NoError(t, ws.ReadJSON(&raw))
	assert.Equal(t, server.CodeBadMessage, errorCode(t, raw))
}

func TestSaveLoadList(t *testing.T) {
	st, err := store.NewJSONStore(filepath.Join(t.TempDir(), "levels.json"))
	require.NoError(t, err)
	ws := dial(t, server.New(server.WithStore(st)))

	f := roundTrip(t, ws, map[string]interface{}{
		"type":    "generate",
		"payload": map[string]interface{}{"name": "first", "save": true, "params": map[string]interface{}{"seed": 3}},
	})
	require.Equal(t, server.MessageTypeLevel, f.Type)

	f = roundTrip(t, ws, map[string]string{"type": "list"})
	require.Equal(t, server.MessageTypeLevels, f.Type)
	var list server.LevelsMessage
	require.NoError(t, json.Unmarshal(f.Payload, &list))
	assert.Equal(t, []string{"first"}, list.Names)

	f = roundTrip(t, ws, map[string]interface{}{"type": "load", "payload": map[string]string{"name": "first"}})
	require.Equal(t, server.MessageTypeLevel, f.Type)
	var doc export.Document
	require.NoError(t, json.Unmarshal(f.Payload, &doc))
	assert.Equal(t, int64(3), doc.Seed)

	f = roundTrip(t, ws, map[string]interface{}{"type": "load", "payload": map[string]string{"name": "second"}})
	assert.Equal(t, server.CodeNotFound, errorCode(t, f))

	f = roundTrip(t, ws, map[string]interface{}{
		"type":    "generate",
		"payload": map[string]interface{}{"name": "bad name", "save": true},
	})
	assert.Equal(t, server.CodeInvalidName, errorCode(t, f))
}

func TestNextSeed(t *testing.T) {
	srv := server.New(server.WithBaseSeed(42))
	assert.Equal(t, rng.DeriveSeed(42, 1), srv.NextSeed())
	assert.Equal(t, rng.DeriveSeed(42, 2), srv.NextSeed())
}
