package quiz

import (
	"context"
	"errors"
	"math/rand/v2"
	"sync"

	"exambot/core/logger"
	"log/slog"
)

var (
	// ErrNoSession is returned when the user has no active knowledge check.
	ErrNoSession = errors.New("quiz: no active session")
	// ErrEmptyPool is returned when a quiz is started with no questions available.
	ErrEmptyPool = errors.New("quiz: empty question pool")
)

// Summary reports the outcome of a finished knowledge check.
type Summary struct {
	Total   int
	Correct int
	Wrong   int
}

// Progress locates the cursor inside a running session. Position is 1-based.
type Progress struct {
	Position int
	Total    int
}

type session struct {
	ids     []int
	index   int
	correct int
}

// Manager tracks per-user knowledge-check sessions in memory.
// Sessions live until completion, cancellation, or process exit.
type Manager struct {
	size    int
	shuffle func([]int)

	mu       sync.Mutex
	sessions map[int64]*session
}

// NewManager creates a Manager limiting each session to size questions.
func NewManager(size int) *Manager {
	return &Manager{
		size:     size,
		shuffle:  func(ids []int) { rand.Shuffle(len(ids), func(i, j int) { ids[i], ids[j] = ids[j], ids[i] }) },
		sessions: make(map[int64]*session),
	}
}

// Start begins a knowledge check for the user, replacing any session already
// in progress. A uniform random subset of at most the configured size is
// drawn from poolIDs. Returns the number of questions selected.
func (m *Manager) Start(userID int64, poolIDs []int) (int, error) {
	if len(poolIDs) == 0 {
		return 0, ErrEmptyPool
	}

	ids := make([]int, len(poolIDs))
	copy(ids, poolIDs)
	m.shuffle(ids)
	if m.size > 0 && len(ids) > m.size {
		ids = ids[:m.size]
	}

	m.mu.Lock()
	m.sessions[userID] = &session{ids: ids}
	m.mu.Unlock()

	logger.Quiz.LogAttrs(context.Background(), slog.LevelInfo, "quiz.start",
		slog.String("event", "start"),
		slog.Int64("user_id", userID),
		slog.Int("quiz_total", len(ids)),
	)
	return len(ids), nil
}

// Current returns the question id at the session cursor. Ids the resolver no
// longer recognizes are skipped; content can shrink under a running session
// after a reload. If skipping drains the session it is removed and
// ErrNoSession is returned.
func (m *Manager) Current(userID int64, exists func(id int) bool) (int, Progress, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[userID]
	if !ok {
		return 0, Progress{}, ErrNoSession
	}

	for s.index < len(s.ids) {
		id := s.ids[s.index]
		if exists == nil || exists(id) {
			return id, Progress{Position: s.index + 1, Total: len(s.ids)}, nil
		}
		s.index++
	}

	delete(m.sessions, userID)
	return 0, Progress{}, ErrNoSession
}

// Answer records the user's self-grade for the current question and advances
// the cursor. When the last question is answered the session is removed and
// its Summary returned; otherwise the summary is nil.
func (m *Manager) Answer(userID int64, correct bool) (*Summary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[userID]
	if !ok {
		return nil, ErrNoSession
	}

	if correct {
		s.correct++
	}
	s.index++

	if s.index < len(s.ids) {
		return nil, nil
	}

	delete(m.sessions, userID)
	summary := &Summary{
		Total:   len(s.ids),
		Correct: s.correct,
		Wrong:   len(s.ids) - s.correct,
	}
	logger.Quiz.LogAttrs(context.Background(), slog.LevelInfo, "quiz.finish",
		slog.String("event", "finish"),
		slog.Int64("user_id", userID),
		slog.Int("quiz_total", summary.Total),
		slog.Int("correct", summary.Correct),
		slog.Int("wrong", summary.Wrong),
	)
	return summary, nil
}

// Cancel drops the user's session if one exists. Safe to call repeatedly.
func (m *Manager) Cancel(userID int64) bool {
	m.mu.Lock()
	_, ok := m.sessions[userID]
	delete(m.sessions, userID)
	m.mu.Unlock()

	if ok {
		logger.Quiz.LogAttrs(context.Background(), slog.LevelInfo, "quiz.cancel",
			slog.String("event", "cancel"),
			slog.Int64("user_id", userID),
		)
	}
	return ok
}

// Active reports whether the user has a session in progress.
func (m *Manager) Active(userID int64) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.sessions[userID]
	return ok
}
