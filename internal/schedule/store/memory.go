package store

import (
	"context"
	"sync"

	"adev-backend/internal/schedule/models"
)

// Memory is a mutex-guarded in-memory schedule store. Entries are kept
// in insertion order, which is also id order, so full scans come back
// already sorted.
type Memory struct {
	mu           sync.RWMutex
	cultos       []models.Culto
	eventos      []models.Evento
	nextCultoID  int64
	nextEventoID int64
}

func NewMemory() *Memory {
	return &Memory{nextCultoID: 1, nextEventoID: 1}
}

func (s *Memory) InsertCulto(_ context.Context, c *models.Culto) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.ID = s.nextCultoID
	s.nextCultoID++
	s.cultos = append(s.cultos, *c)
	return c.ID, nil
}

func (s *Memory) ListCultos(_ context.Context) ([]models.Culto, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Culto, len(s.cultos))
	copy(out, s.cultos)
	return out, nil
}

func (s *Memory) DeleteCulto(_ context.Context, id int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.cultos {
		if s.cultos[i].ID == id {
			s.cultos = append(s.cultos[:i], s.cultos[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (s *Memory) InsertEvento(_ context.Context, e *models.Evento) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e.ID = s.nextEventoID
	s.nextEventoID++
	s.eventos = append(s.eventos, *e)
	return e.ID, nil
}

func (s *Memory) ListEventos(_ context.Context) ([]models.Evento, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Evento, len(s.eventos))
	copy(out, s.eventos)
	return out, nil
}

func (s *Memory) DeleteEvento(_ context.Context, id int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.eventos {
		if s.eventos[i].ID == id {
			s.eventos = append(s.eventos[:i], s.eventos[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}
