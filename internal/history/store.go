// Package history persists client-side chat state between runs.
//
// It mirrors browser localStorage: opaque string blobs under fixed keys in a
// state directory. Every failure is soft — a broken or unwritable disk
// degrades the session to memory-only, never crashes it.
package history

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"

	"sakhiai/internal/models"
)

// Storage keys. Kept as the web client named them so an inspecting user sees
// familiar names in the state dir.
const (
	HistoryKey         = "sakhi_chat_history"
	ThemeKey           = "sakhi_theme"
	AffirmationDateKey = "sakhi_affirmation_date"
	AffirmationTextKey = "sakhi_affirmation_text"
)

// Store is a keyed blob store over a state directory, with an in-memory
// shadow that takes over when the disk is unavailable.
type Store struct {
	dir    string
	memory map[string]string
	diskOK bool
}

// Open prepares the state directory. If it cannot be created the store still
// works, memory-only for this session.
func Open(dir string) *Store {
	s := &Store{
		dir:    dir,
		memory: make(map[string]string),
		diskOK: true,
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Printf("history: state dir unavailable, continuing in memory: %v", err)
		s.diskOK = false
	}

	return s
}

// Get returns the stored value for key, preferring disk so a fresh session
// sees previous runs.
func (s *Store) Get(key string) (string, bool) {
	if s.diskOK {
		data, err := os.ReadFile(s.path(key))
		if err == nil {
			return string(data), true
		}
		if !os.IsNotExist(err) {
			log.Printf("history: read %s failed: %v", key, err)
		}
	}

	val, ok := s.memory[key]
	return val, ok
}

// Set writes through to memory and, when possible, to disk. The file is
// replaced via rename so a concurrent reader never sees a torn write.
func (s *Store) Set(key, value string) {
	s.memory[key] = value

	if !s.diskOK {
		return
	}

	tmp := s.path(key) + ".tmp"
	if err := os.WriteFile(tmp, []byte(value), 0o644); err != nil {
		log.Printf("history: write %s failed, keeping in memory: %v", key, err)
		return
	}
	if err := os.Rename(tmp, s.path(key)); err != nil {
		log.Printf("history: replace %s failed, keeping in memory: %v", key, err)
	}
}

// Delete removes the key everywhere. A missing file is not an error.
func (s *Store) Delete(key string) {
	delete(s.memory, key)

	if s.diskOK {
		if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
			log.Printf("history: delete %s failed: %v", key, err)
		}
	}
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key)
}

// Log is the conversation history bound to its storage key. The in-memory
// sequence and the persisted blob stay in sync after every append and clear.
type Log struct {
	store *Store
	turns []models.Turn
}

func NewLog(store *Store) *Log {
	l := &Log{store: store}
	l.turns = l.LoadAll()
	return l
}

// Append adds a turn and persists the full sequence.
func (l *Log) Append(turn models.Turn) {
	l.turns = append(l.turns, turn)
	l.Persist(l.turns)
}

// Clear empties the sequence and removes the persisted entry.
func (l *Log) Clear() {
	l.turns = nil
	l.store.Delete(HistoryKey)
}

// LoadAll deserializes the persisted sequence. A corrupt blob resets to an
// empty history rather than failing the session.
func (l *Log) LoadAll() []models.Turn {
	raw, ok := l.store.Get(HistoryKey)
	if !ok || raw == "" {
		return nil
	}

	var turns []models.Turn
	if err := json.Unmarshal([]byte(raw), &turns); err != nil {
		log.Printf("history: corrupt chat history, starting fresh: %v", err)
		l.store.Delete(HistoryKey)
		return nil
	}

	return turns
}

// Persist serializes the given sequence under the history key.
func (l *Log) Persist(turns []models.Turn) {
	data, err := json.Marshal(turns)
	if err != nil {
		log.Printf("history: marshal failed: %v", err)
		return
	}
	l.store.Set(HistoryKey, string(data))
}

// All returns a copy of the in-memory sequence.
func (l *Log) All() []models.Turn {
	out := make([]models.Turn, len(l.turns))
	copy(out, l.turns)
	return out
}

// Len reports how many turns the session holds.
func (l *Log) Len() int {
	return len(l.turns)
}
