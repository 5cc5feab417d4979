package session

import (
	"time"

	"sakhiai/internal/history"
)

// Theme preference values.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Theme returns the persisted preference, defaulting to light.
func (s *Session) Theme() string {
	val, ok := s.store.Get(history.ThemeKey)
	if !ok || val != ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// ToggleTheme flips and persists the preference, returning the new value.
func (s *Session) ToggleTheme() string {
	next := ThemeDark
	if s.Theme() == ThemeDark {
		next = ThemeLight
	}
	s.store.Set(history.ThemeKey, next)
	return next
}

var affirmations = []string{
	"You are stronger than you think.",
	"Your feelings are valid, always.",
	"Small steps forward are still progress.",
	"You deserve rest without guilt.",
	"Your body is doing its best for you today.",
	"It's okay to ask for help.",
	"You have survived every hard day so far.",
	"Being kind to yourself is not selfish.",
	"You are allowed to take up space.",
	"Today is a fresh start.",
}

// Affirmation returns the affirmation for the current calendar day. The
// first call of a day derives it from the day-of-year index and persists
// it; later calls the same day return the stored text unchanged.
func (s *Session) Affirmation() string {
	return s.affirmationFor(time.Now())
}

func (s *Session) affirmationFor(now time.Time) string {
	today := now.Format("2006-01-02")

	if date, ok := s.store.Get(history.AffirmationDateKey); ok && date == today {
		if text, ok := s.store.Get(history.AffirmationTextKey); ok && text != "" {
			return text
		}
	}

	text := affirmations[now.YearDay()%len(affirmations)]
	s.store.Set(history.AffirmationDateKey, today)
	s.store.Set(history.AffirmationTextKey, text)

	return text
}
