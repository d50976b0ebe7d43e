// internal/handlers/utils.go
package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/coder/websocket"
)

// writeJSON sends a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// sendWsMessage marshals and writes a payload to one connection.
func sendWsMessage(c *websocket.Conn, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()
	_ = c.Write(ctx, websocket.MessageText, data)
}

// sendWsError reports a rejected action back to the sender only.
func sendWsError(c *websocket.Conn, message string) {
	sendWsMessage(c, map[string]string{
		"type":    "error",
		"message": message,
	})
}
