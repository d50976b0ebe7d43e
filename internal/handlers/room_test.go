// internal/handlers/room_test.go
package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ab-dur-Rehman/UNO/internal/auth"
	"github.com/Ab-dur-Rehman/UNO/internal/room"
)

func newTestServer(t *testing.T) *GameServer {
	t.Helper()
	require.NoError(t, auth.Init())
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return NewGameServer(logger)
}

func postJSON(t *testing.T, handler http.HandlerFunc, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(data))
	w := httptest.NewRecorder()
	handler(w, req)
	return w
}

func TestCreateRoom(t *testing.T) {
	srv := newTestServer(t)

	w := postJSON(t, srv.CreateRoomHandler, createRoomRequest{Name: "alice"})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp roomResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Len(t, resp.Code, 6)
	assert.True(t, resp.IsHost)
	assert.NotEmpty(t, resp.Token)
	require.Len(t, resp.Players, 1)
	assert.Equal(t, "alice", resp.Players[0].Name)

	// The token must authenticate as the returned player.
	got, err := auth.VerifyGuestToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.PlayerID, got)

	_, ok := srv.Rooms.Get(resp.Code)
	assert.True(t, ok)
}

func TestCreateRoomRequiresName(t *testing.T) {
	srv := newTestServer(t)
	w := postJSON(t, srv.CreateRoomHandler, createRoomRequest{Name: "  "})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateRoomRejectsGet(t *testing.T) {
	srv := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	srv.CreateRoomHandler(w, req)
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestJoinRoom(t *testing.T) {
	srv := newTestServer(t)

	w := postJSON(t, srv.CreateRoomHandler, createRoomRequest{Name: "alice"})
	require.Equal(t, http.StatusCreated, w.Code)
	var created roomResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&created))

	w = postJSON(t, srv.JoinRoomHandler, joinRoomRequest{Code: created.Code, Name: "bob"})
	require.Equal(t, http.StatusOK, w.Code)

	var joined roomResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&joined))
	assert.Equal(t, created.Code, joined.Code)
	assert.False(t, joined.IsHost)
	require.Len(t, joined.Players, 2)
	assert.Equal(t, "bob", joined.Players[1].Name)
}

func TestJoinUnknownRoom(t *testing.T) {
	srv := newTestServer(t)
	w := postJSON(t, srv.JoinRoomHandler, joinRoomRequest{Code: "ZZZZZZ", Name: "bob"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestJoinRoomInProgress(t *testing.T) {
	srv := newTestServer(t)

	w := postJSON(t, srv.CreateRoomHandler, createRoomRequest{Name: "alice"})
	require.Equal(t, http.StatusCreated, w.Code)
	var created roomResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&created))

	rm, ok := srv.Rooms.Get(created.Code)
	require.True(t, ok)
	rm.SetStatus(room.StatusPlaying)

	w = postJSON(t, srv.JoinRoomHandler, joinRoomRequest{Code: created.Code, Name: "bob"})
	assert.Equal(t, http.StatusConflict, w.Code)
}
