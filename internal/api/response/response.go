package response

import (
	"encoding/json"
	"net/http"
)

// ChatReply is the success payload of the chat endpoint.
type ChatReply struct {
	Response string `json:"response"`
}

// ErrorReply is the structured error payload.
type ErrorReply struct {
	Error string `json:"error"`
}

// JSON sends a JSON response
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// Chat sends a 200 OK chat reply
func Chat(w http.ResponseWriter, text string) {
	JSON(w, http.StatusOK, ChatReply{Response: text})
}

// Error sends an error response
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, ErrorReply{Error: message})
}

// BadRequest sends a 400 Bad Request response
func BadRequest(w http.ResponseWriter, message string) {
	Error(w, http.StatusBadRequest, message)
}

// InternalError sends a 500 Internal Server Error response
func InternalError(w http.ResponseWriter, message string) {
	Error(w, http.StatusInternalServerError, message)
}
