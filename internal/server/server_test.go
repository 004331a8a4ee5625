package server_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skirmish/internal/battle"
	"skirmish/internal/server"
)

func testCatalog() battle.Catalog {
	return battle.Catalog{
		"Berserkers": {Attack: 100, Defense: 0},
		"Militia":    {Attack: 0, Defense: 0},
	}
}

func newTestServer(t *testing.T, maxRounds int) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(server.New(testCatalog(), maxRounds, nil).Router())
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(raw))
	require.NoError(t, err)
	return resp
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t, 0)

	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ok", body["status"])
}

func TestUnits(t *testing.T) {
	srv := newTestServer(t, 0)

	resp, err := http.Get(srv.URL + "/api/units")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var catalog map[string]battle.UnitDef
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&catalog))
	assert.Contains(t, catalog, "Berserkers")
	assert.Equal(t, 100, catalog["Berserkers"].Attack)
}

func TestSimulate(t *testing.T) {
	srv := newTestServer(t, 0)

	resp := postJSON(t, srv.URL+"/api/battles", server.BattleRequest{
		ArmyA: map[string]int{"Berserkers": 1},
		ArmyB: map[string]int{"Militia": 1},
		Seed:  7,
	})
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var got server.BattleResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.NotEmpty(t, got.ID)
	require.NotNil(t, got.Report)
	assert.Equal(t, battle.WinnerA, got.Report.Summary.Winner)
	assert.Equal(t, 1, got.Report.Summary.Rounds)
}

func TestSimulate_UnknownUnit(t *testing.T) {
	srv := newTestServer(t, 0)

	resp := postJSON(t, srv.URL+"/api/battles", server.BattleRequest{
		ArmyA: map[string]int{"Wyverns": 1},
		ArmyB: map[string]int{"Militia": 1},
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Contains(t, body["error"], "unknown unit type")
}

func TestSimulate_BadJSON(t *testing.T) {
	srv := newTestServer(t, 0)

	resp, err := http.Post(srv.URL+"/api/battles", "application/json", strings.NewReader("{"))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSimulate_MethodNotAllowed(t *testing.T) {
	srv := newTestServer(t, 0)

	resp, err := http.Get(srv.URL + "/api/battles")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestSimulate_ServerRoundCap(t *testing.T) {
	srv := newTestServer(t, 10)

	// Neither militia band can hit, so only the cap ends the battle.
	resp := postJSON(t, srv.URL+"/api/battles", server.BattleRequest{
		ArmyA: map[string]int{"Militia": 5},
		ArmyB: map[string]int{"Militia": 5},
		Seed:  1,
	})
	defer resp.Body.Close()

	var got server.BattleResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, battle.WinnerDraw, got.Report.Summary.Winner)
	assert.Equal(t, 10, got.Report.Summary.Rounds)
}

func dialStream(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/battles"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestStream(t *testing.T) {
	srv := newTestServer(t, 0)
	conn := dialStream(t, srv)

	require.NoError(t, conn.WriteJSON(server.BattleRequest{
		ArmyA: map[string]int{"Berserkers": 1},
		ArmyB: map[string]int{"Militia": 1},
		Seed:  3,
	}))

	var types []string
	var last map[string]any
	for {
		var msg struct {
			Type string         `json:"type"`
			Data map[string]any `json:"data"`
		}
		require.NoError(t, conn.ReadJSON(&msg))
		types = append(types, msg.Type)
		last = msg.Data
		if msg.Type == "summary" || msg.Type == "error" {
			break
		}
	}

	require.NotEmpty(t, types)
	assert.Equal(t, "round", types[0])
	assert.Equal(t, "summary", types[len(types)-1])
	assert.Equal(t, "A", last["winner"])
	assert.EqualValues(t, 1, last["rounds"])
}

func TestStream_UnknownUnit(t *testing.T) {
	srv := newTestServer(t, 0)
	conn := dialStream(t, srv)

	require.NoError(t, conn.WriteJSON(server.BattleRequest{
		ArmyA: map[string]int{"Ghosts": 1},
		ArmyB: map[string]int{"Militia": 1},
	}))

	var msg struct {
		Type string `json:"type"`
		Data string `json:"data"`
	}
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, "error", msg.Type)
	assert.Contains(t, msg.Data, "unknown unit type")
}
