package store

import (
	"context"
	"sync"
	"time"

	"adev-backend/internal/registration/models"
	"adev-backend/pkg/platform/sentinel"
)

// Memory is a mutex-guarded in-memory visitor store. It favors clarity
// over performance; lookups scan the whole slice the same way the SQL
// store scans the table.
type Memory struct {
	mu       sync.RWMutex
	visitors []models.Visitor
	nextID   int64
}

func NewMemory() *Memory {
	return &Memory{nextID: 1}
}

func (s *Memory) Insert(_ context.Context, v *models.Visitor) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	v.ID = s.nextID
	v.CreatedAt = time.Now()
	s.nextID++
	s.visitors = append(s.visitors, *v)
	return nil
}

func (s *Memory) FindByNormalizedPhone(_ context.Context, digits string) (*models.Visitor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.visitors {
		if stripFormatting(s.visitors[i].Whatsapp) == digits {
			found := s.visitors[i]
			return &found, nil
		}
	}
	return nil, sentinel.ErrNotFound
}

// Count reports the number of stored visitors. Used by tests to assert
// that rejected requests leave the store untouched.
func (s *Memory) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.visitors)
}
