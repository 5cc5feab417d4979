package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"sakhiai/internal/models"
)

// stubModel records the prompt it was called with and returns a canned
// reply or error.
type stubModel struct {
	reply  string
	err    error
	prompt string
}

func (s *stubModel) Generate(_ context.Context, prompt string) (string, error) {
	s.prompt = prompt
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

func postChat(t *testing.T, h *ChatHandler, body models.ChatRequest) *httptest.ResponseRecorder {
	t.Helper()

	jsonBody, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, "/chat", bytes.NewReader(jsonBody))
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	h.Chat(rr, req)
	return rr
}

func TestChat_Success(t *testing.T) {
	model := &stubModel{reply: "Hi! How can I help?"}
	h := NewChatHandler(model)

	rr := postChat(t, h, models.ChatRequest{Message: "Hello"})

	if rr.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rr.Code)
	}

	var resp models.ChatResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Reply != "Hi! How can I help?" {
		t.Errorf("Expected model reply, got %q", resp.Reply)
	}
}

func TestChat_PromptForFirstMessage(t *testing.T) {
	model := &stubModel{reply: "ok"}
	h := NewChatHandler(model)

	postChat(t, h, models.ChatRequest{Message: "Hello"})

	if strings.Contains(model.prompt, "Previous conversation") {
		t.Error("Expected no history block for an empty history")
	}
	if !strings.HasSuffix(model.prompt, "Current message: Hello") {
		t.Errorf("Expected prompt to end with the current message, got tail %q",
			model.prompt[len(model.prompt)-40:])
	}
}

func TestChat_HistoryFoldedIntoPrompt(t *testing.T) {
	model := &stubModel{reply: "ok"}
	h := NewChatHandler(model)

	postChat(t, h, models.ChatRequest{
		Message: "and now?",
		ConversationHistory: []models.Turn{
			{Text: "first question", Sender: models.SenderUser},
			{Text: "first answer", Sender: models.SenderAI},
		},
	})

	if !strings.Contains(model.prompt, "Previous conversation:") {
		t.Error("Expected history block in prompt")
	}
	if !strings.Contains(model.prompt, "User: first question") {
		t.Error("Expected user turn in prompt")
	}
	if !strings.Contains(model.prompt, "SakhiAI: first answer") {
		t.Error("Expected ai turn in prompt")
	}
}

func TestChat_CredentialErrorReturns503(t *testing.T) {
	model := &stubModel{err: errors.New("Gemini API error: API key not valid")}
	h := NewChatHandler(model)

	rr := postChat(t, h, models.ChatRequest{Message: "Hello"})

	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("Expected 503, got %d", rr.Code)
	}

	var resp models.ServiceError
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Error == "" {
		t.Error("Expected a human-readable error message")
	}
	if !strings.Contains(resp.Details, "API key") {
		t.Errorf("Expected diagnostic detail, got %q", resp.Details)
	}
}

func TestChat_ConnectivityErrorReturns503(t *testing.T) {
	model := &stubModel{err: errors.New("fetch failed: no route to host")}
	h := NewChatHandler(model)

	rr := postChat(t, h, models.ChatRequest{Message: "Hello"})

	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("Expected 503, got %d", rr.Code)
	}
}

func TestChat_OtherErrorsSoftFallBackTo200(t *testing.T) {
	model := &stubModel{err: errors.New("candidate blocked by safety filters")}
	h := NewChatHandler(model)

	rr := postChat(t, h, models.ChatRequest{Message: "Hello"})

	if rr.Code != http.StatusOK {
		t.Fatalf("Expected soft fallback with 200, got %d", rr.Code)
	}

	var resp models.ChatResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Reply != fallbackReply {
		t.Errorf("Expected the fixed fallback reply, got %q", resp.Reply)
	}
}

func TestChat_InvalidBody(t *testing.T) {
	h := NewChatHandler(&stubModel{reply: "ok"})

	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader("{not json"))
	rr := httptest.NewRecorder()
	h.Chat(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d", rr.Code)
	}
}

func TestRoot_Liveness(t *testing.T) {
	h := NewChatHandler(&stubModel{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	h.Root(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "SakhiAI Gemini backend running") {
		t.Errorf("Expected liveness string, got %q", rr.Body.String())
	}
}
