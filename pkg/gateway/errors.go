package gateway

import (
	"encoding/json"
	"net/http"
)

// Fixed messages for the local rejection paths.
const (
	MsgNoToken   = "Token no proporcionado."
	MsgBadToken  = "Token inválido o expirado."
	MsgForbidden = "No tienes permiso para acceder a esta ruta."
)

// Envelope is the uniform error body every failure path produces.
// Raw errors and stack traces never reach the client.
type Envelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// WriteError writes the error envelope with the given status.
func WriteError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(Envelope{Error: msg})
}

// upstreamMessage extracts the human-readable message from an upstream
// error body. Backends answer with either a message or an error field.
func upstreamMessage(body []byte) string {
	var m struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &m); err != nil {
		return ""
	}
	if m.Message != "" {
		return m.Message
	}
	return m.Error
}
