// Package prompt folds conversation history and the incoming message into
// the single text payload sent to the generative model.
package prompt

import (
	"fmt"
	"strings"

	"sakhiai/internal/models"
)

// historyWindow is how many trailing turns (3 exchanges) are folded into the
// prompt. Older turns stay in storage but are not sent to the model.
const historyWindow = 6

const preamble = `You are SakhiAI — a friendly, supportive, and safe AI assistant for women.
Be empathetic, respectful, and helpful when answering private or personal questions.

IMPORTANT: Use very simple, easy words that anyone can understand. Write like you're talking to a friend.

Guidelines for simple responses:
- Use **bold text** for important points
- Use short, simple sentences
- Avoid big or complicated words
- Use everyday language that everyone knows
- Create numbered lists (1. 2. 3.) for step-by-step advice
- Use bullet points (- or *) for simple lists
- Keep paragraphs short (2-3 sentences max)
- Be warm, caring, and encouraging
- Explain things in a way that's easy to follow
- Remember what we talked about before and build on it`

// Build renders the full prompt for one chat round trip. The history block is
// omitted entirely when there are no prior turns. Deterministic and
// side-effect free.
func Build(message string, history []models.Turn) string {
	var b strings.Builder

	b.WriteString(preamble)
	b.WriteString(renderHistory(history))
	b.WriteString(fmt.Sprintf("\nCurrent message: %s", message))

	return b.String()
}

func renderHistory(history []models.Turn) string {
	if len(history) == 0 {
		return ""
	}

	recent := history
	if len(recent) > historyWindow {
		recent = recent[len(recent)-historyWindow:]
	}

	var b strings.Builder
	b.WriteString("\n\nPrevious conversation:\n")
	for _, turn := range recent {
		b.WriteString(fmt.Sprintf("%s: %s\n", roleLabel(turn.Sender), turn.Text))
	}

	return b.String()
}

func roleLabel(sender string) string {
	if sender == models.SenderUser {
		return "User"
	}
	return "SakhiAI"
}
