package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/abeeranajam31/Ai-powered-Chatot/internal/api/response"
	"github.com/abeeranajam31/Ai-powered-Chatot/internal/domain"
	"github.com/abeeranajam31/Ai-powered-Chatot/internal/service"
)

var validate = validator.New()

// ChatHandler handles the chat endpoint and session history routes
type ChatHandler struct {
	chatService *service.ChatService
	history     domain.HistoryRepository
}

func NewChatHandler(chatService *service.ChatService, history domain.HistoryRepository) *ChatHandler {
	return &ChatHandler{chatService: chatService, history: history}
}

type chatRequest struct {
	SessionID string `json:"session_id" validate:"required"`
	Message   string `json:"message" validate:"required"`
}

// Chat runs one conversation turn
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Missing session_id or message.")
		return
	}

	if err := validate.Struct(req); err != nil {
		response.BadRequest(w, "Missing session_id or message.")
		return
	}

	reply := h.chatService.Respond(r.Context(), req.SessionID, req.Message)
	response.Chat(w, reply)
}

// History returns all stored messages for a session in insertion order
func (h *ChatHandler) History(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	messages, err := h.history.ListBySession(r.Context(), sessionID)
	if err != nil {
		response.InternalError(w, "Failed to fetch session history")
		return
	}
	if messages == nil {
		messages = []domain.Message{}
	}

	response.JSON(w, http.StatusOK, map[string]any{"messages": messages})
}

// Clear deletes all messages for a session
func (h *ChatHandler) Clear(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	if err := h.history.Clear(r.Context(), sessionID); err != nil {
		response.InternalError(w, "Failed to clear session history")
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{"message": "History cleared"})
}
