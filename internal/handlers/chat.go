package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"sakhiai/internal/models"
	"sakhiai/internal/prompt"
)

// TextGenerator is the one call the gateway makes against the model service.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

const (
	// Reply used when the model fails for any reason other than
	// connectivity/credentials. Returned with a 200 on purpose: the client
	// always gets something to render. See the unavailable branch below for
	// the only errors that surface as real errors.
	fallbackReply = "I'm sorry, I'm having trouble connecting to my knowledge service right now. Please try again in a moment."

	unavailableMessage = "Unable to connect to AI service. Please check your internet connection and API key."
)

type ChatHandler struct {
	model TextGenerator
}

func NewChatHandler(model TextGenerator) *ChatHandler {
	return &ChatHandler{model: model}
}

// Root is the liveness probe the web client pings.
func (h *ChatHandler) Root(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("✅ SakhiAI Gemini backend running!"))
}

// Chat handles one stateless round trip: message + history in, reply out.
// An empty message is passed through unguarded; the client is the
// validation layer for that.
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	p := prompt.Build(req.Message, req.ConversationHistory)

	reply, err := h.model.Generate(r.Context(), p)
	if err != nil {
		log.Printf("Error: %v", err)

		if isUnavailable(err) {
			writeJSON(w, http.StatusServiceUnavailable, models.ServiceError{
				Error:   unavailableMessage,
				Details: err.Error(),
			})
			return
		}

		log.Println("Sending fallback response")
		writeJSON(w, http.StatusOK, models.ChatResponse{Reply: fallbackReply})
		return
	}

	// Diagnostic only; the raw reply is rendered client-side.
	log.Printf("AI Response: %s", reply)

	writeJSON(w, http.StatusOK, models.ChatResponse{Reply: reply})
}

// isUnavailable matches connectivity and credential failures by message
// substring, the same classification the service has always used.
func isUnavailable(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "fetch failed") || strings.Contains(msg, "API key")
}
