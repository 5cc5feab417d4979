// Package session owns the lifecycle of one chat conversation: the
// idle/awaiting state machine, optimistic history appends, onboarding
// affordances, theme preference and the daily affirmation.
package session

import (
	"context"
	"strings"
	"time"

	"sakhiai/internal/history"
	"sakhiai/internal/models"
)

type State int

const (
	StateIdle          State = iota // Accepting input
	StateAwaitingReply              // One request in flight, input disabled
)

// Shown to the user whenever the round trip itself fails.
const connectionApology = "Error: could not connect to SakhiAI server."

// Gateway is the single round trip a session performs per message.
type Gateway interface {
	Send(ctx context.Context, message string, conversationHistory []models.Turn) (string, error)
}

var defaultSuggestions = []string{
	"How can I manage period pain naturally?",
	"Give me a simple self-care routine",
	"How do I deal with stress at work?",
	"Share an easy healthy eating tip",
}

// Session is constructed once per run and torn down with it; it never leaks
// state into package scope.
type Session struct {
	state      State
	gateway    Gateway
	store      *history.Store
	log        *history.Log
	onboarding bool
	replyDelay time.Duration
}

func New(gateway Gateway, store *history.Store, replyDelay time.Duration) *Session {
	l := history.NewLog(store)

	return &Session{
		state:      StateIdle,
		gateway:    gateway,
		store:      store,
		log:        l,
		onboarding: l.Len() == 0,
		replyDelay: replyDelay,
	}
}

func (s *Session) State() State { return s.state }

// ReplyDelay is the short fixed pause between reply arrival and the AI
// bubble appearing.
func (s *Session) ReplyDelay() time.Duration { return s.replyDelay }

// OnboardingVisible reports whether the empty-state view and suggestion
// chips are still shown.
func (s *Session) OnboardingVisible() bool { return s.onboarding }

// Suggestions returns the onboarding prompt chips, or nothing once the
// first message has hidden them.
func (s *Session) Suggestions() []string {
	if !s.onboarding {
		return nil
	}
	return defaultSuggestions
}

// History returns a copy of the conversation so far.
func (s *Session) History() []models.Turn { return s.log.All() }

// Submit moves Idle → AwaitingReply for a non-empty message. It appends the
// user turn optimistically and returns the history snapshot to send with
// the request (the snapshot predates the append so the new message is not
// folded into the prompt twice). ok is false — and nothing changes — for
// blank input or when a request is already in flight.
func (s *Session) Submit(text string) (snapshot []models.Turn, ok bool) {
	if s.state != StateIdle {
		return nil, false
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, false
	}

	snapshot = s.log.All()

	s.log.Append(models.NewTurn(text, models.SenderUser))
	s.onboarding = false // Idempotent: stays hidden for the session.
	s.state = StateAwaitingReply

	return snapshot, true
}

// Send performs the gateway round trip for a submitted message.
func (s *Session) Send(ctx context.Context, message string, snapshot []models.Turn) (string, error) {
	return s.gateway.Send(ctx, message, snapshot)
}

// Resolve finishes the in-flight exchange: the reply (or, on failure, the
// fixed apology) becomes the AI turn, and the session returns to Idle.
func (s *Session) Resolve(reply string, err error) models.Turn {
	if err != nil {
		reply = connectionApology
	}

	turn := models.NewTurn(reply, models.SenderAI)
	s.log.Append(turn)
	s.state = StateIdle

	return turn
}

// ClearChat resets to the initial onboarding view. Available in any state.
func (s *Session) ClearChat() {
	s.log.Clear()
	s.onboarding = true
	s.state = StateIdle
}
