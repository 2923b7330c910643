package storage

import (
	"encoding/json"
	"sync"
	"time"

	"project/backend/models"
)

// In-memory fakes. They marshal through JSON like the real stores so
// callers never share a live pointer with the repository.

type MemoryProgressRepository struct {
	mu      sync.Mutex
	records map[string]string
}

func NewMemoryProgressRepository() *MemoryProgressRepository {
	return &MemoryProgressRepository{records: make(map[string]string)}
}

func (r *MemoryProgressRepository) Load(username string) (*models.UserProgress, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, ok := r.records[ProgressKey(username)]
	if !ok {
		return nil, nil
	}
	var p models.UserProgress
	if err := json.Unmarshal([]byte(data), &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *MemoryProgressRepository) Save(p *models.UserProgress) error {
	data, err := json.Marshal(p)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.records[ProgressKey(p.Username)] = string(data)
	return nil
}

func (r *MemoryProgressRepository) Reset() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = make(map[string]string)
	return nil
}

type MemoryCompletionLog struct {
	mu      sync.Mutex
	entries []models.ChallengeCompletion
}

func NewMemoryCompletionLog() *MemoryCompletionLog {
	return &MemoryCompletionLog{}
}

func (l *MemoryCompletionLog) Append(entry models.ChallengeCompletion) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, entry)
	return nil
}

func (l *MemoryCompletionLog) ForDate(username, date string) ([]models.ChallengeCompletion, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var out []models.ChallengeCompletion
	for _, e := range l.entries {
		if e.Username == username && e.Date == date {
			out = append(out, e)
		}
	}
	return out, nil
}

func (l *MemoryCompletionLog) Reset() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = nil
	return nil
}

type MemoryBadgeStore struct {
	mu       sync.Mutex
	unlocked map[string]map[string]time.Time
}

func NewMemoryBadgeStore() *MemoryBadgeStore {
	return &MemoryBadgeStore{unlocked: make(map[string]map[string]time.Time)}
}

func (s *MemoryBadgeStore) Unlocked(username string) (map[string]time.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[string]time.Time, len(s.unlocked[username]))
	for id, at := range s.unlocked[username] {
		out[id] = at
	}
	return out, nil
}

func (s *MemoryBadgeStore) Unlock(username, badgeID string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.unlocked[username] == nil {
		s.unlocked[username] = make(map[string]time.Time)
	}
	if _, ok := s.unlocked[username][badgeID]; !ok {
		s.unlocked[username][badgeID] = at
	}
	return nil
}

func (s *MemoryBadgeStore) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.unlocked = make(map[string]map[string]time.Time)
	return nil
}
