package models

import "time"

// Turn senders. The wire format keeps the short names the web client used.
const (
	SenderUser = "user"
	SenderAI   = "ai"
)

// Turn is one message in a conversation, tagged by who sent it.
// Turns are immutable once created; ordering is insertion order.
type Turn struct {
	Text      string `json:"text"`
	Sender    string `json:"sender"`
	Timestamp string `json:"timestamp"`
}

// NewTurn stamps a turn with the current time in RFC 3339 form.
func NewTurn(text, sender string) Turn {
	return Turn{
		Text:      text,
		Sender:    sender,
		Timestamp: time.Now().Format(time.RFC3339),
	}
}

// ChatRequest is the payload sent to the chat endpoint.
type ChatRequest struct {
	Message             string `json:"message"`
	ConversationHistory []Turn `json:"conversationHistory,omitempty"`
}

// ChatResponse is the reply from the AI chat.
type ChatResponse struct {
	Reply string `json:"reply"`
}

// ServiceError is the 503 body returned when the AI service cannot be
// reached (connectivity or credential problems).
type ServiceError struct {
	Error   string `json:"error"`
	Details string `json:"details"`
}

type APIError struct {
	Code      string            `json:"code"`
	Message   string            `json:"message"`
	Fields    map[string]string `json:"fields,omitempty"`
	RequestID string            `json:"request_id"`
}

type ErrorResponse struct {
	Error APIError `json:"error"`
}
