package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/suite"

	"adev-backend/internal/schedule/models"
	"adev-backend/internal/schedule/store"
	dErrors "adev-backend/pkg/domain-errors"
)

type failingStore struct{}

func (failingStore) InsertCulto(context.Context, *models.Culto) (int64, error) {
	return 0, errors.New("store down")
}
func (failingStore) ListCultos(context.Context) ([]models.Culto, error) {
	return nil, errors.New("store down")
}
func (failingStore) DeleteCulto(context.Context, int64) (int64, error) {
	return 0, errors.New("store down")
}
func (failingStore) InsertEvento(context.Context, *models.Evento) (int64, error) {
	return 0, errors.New("store down")
}
func (failingStore) ListEventos(context.Context) ([]models.Evento, error) {
	return nil, errors.New("store down")
}
func (failingStore) DeleteEvento(context.Context, int64) (int64, error) {
	return 0, errors.New("store down")
}

type ScheduleServiceSuite struct {
	suite.Suite
	store *store.Memory
	svc   *Service
	ctx   context.Context
}

func (s *ScheduleServiceSuite) SetupTest() {
	s.store = store.NewMemory()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc, err := New(s.store, logger, nil)
	s.Require().NoError(err)
	s.svc = svc
	s.ctx = context.Background()
}

func TestScheduleServiceSuite(t *testing.T) {
	suite.Run(t, new(ScheduleServiceSuite))
}

// TestGetScheduleEmpty verifies an empty schedule aggregates to empty
// collections, not an error and not nils.
func (s *ScheduleServiceSuite) TestGetScheduleEmpty() {
	sched, err := s.svc.GetSchedule(s.ctx)
	s.Require().NoError(err)
	s.NotNil(sched.Cultos)
	s.NotNil(sched.Eventos)
	s.Empty(sched.Cultos)
	s.Empty(sched.Eventos)
}

func (s *ScheduleServiceSuite) TestGetScheduleAggregatesBoth() {
	_, err := s.svc.CreateCulto(s.ctx, "Culto de Domingo", "domingo", "18:00")
	s.Require().NoError(err)
	_, err = s.svc.CreateEvento(s.ctx, "Congresso", "2026-10-12", "")
	s.Require().NoError(err)

	sched, err := s.svc.GetSchedule(s.ctx)
	s.Require().NoError(err)
	s.Len(sched.Cultos, 1)
	s.Len(sched.Eventos, 1)
}

// TestGetScheduleFailsWhole verifies no partial aggregate is served when
// a scan fails.
func (s *ScheduleServiceSuite) TestGetScheduleFailsWhole() {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc, err := New(failingStore{}, logger, nil)
	s.Require().NoError(err)

	sched, err := svc.GetSchedule(s.ctx)
	s.Require().Error(err)
	s.Nil(sched)
	s.True(dErrors.Is(err, dErrors.CodeInternal))
}

func (s *ScheduleServiceSuite) TestCreateCultoValidation() {
	_, err := s.svc.CreateCulto(s.ctx, "", "domingo", "18:00")
	s.True(dErrors.Is(err, dErrors.CodeValidation))

	_, err = s.svc.CreateCulto(s.ctx, "Culto", "", "18:00")
	s.True(dErrors.Is(err, dErrors.CodeValidation))

	_, err = s.svc.CreateCulto(s.ctx, "Culto", "domingo", "")
	s.True(dErrors.Is(err, dErrors.CodeValidation))

	cultos, listErr := s.store.ListCultos(s.ctx)
	s.Require().NoError(listErr)
	s.Empty(cultos)
}

// TestCreateEventoDescricaoOptional verifies descricao may be empty.
func (s *ScheduleServiceSuite) TestCreateEventoDescricaoOptional() {
	id, err := s.svc.CreateEvento(s.ctx, "Vigília", "2026-09-05", "")
	s.Require().NoError(err)
	s.Positive(id)

	_, err = s.svc.CreateEvento(s.ctx, "", "2026-09-05", "desc")
	s.True(dErrors.Is(err, dErrors.CodeValidation))
}

func (s *ScheduleServiceSuite) TestDeleteReportsAffectedCount() {
	id, err := s.svc.CreateCulto(s.ctx, "Culto", "sábado", "19:00")
	s.Require().NoError(err)

	affected, err := s.svc.DeleteCulto(s.ctx, id)
	s.Require().NoError(err)
	s.Equal(int64(1), affected)

	affected, err = s.svc.DeleteCulto(s.ctx, id)
	s.Require().NoError(err)
	s.Equal(int64(0), affected, "second delete of the same id is a no-op")
}

func (s *ScheduleServiceSuite) TestStoreFailuresMapToBadRequest() {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc, err := New(failingStore{}, logger, nil)
	s.Require().NoError(err)

	_, err = svc.CreateCulto(s.ctx, "Culto", "domingo", "18:00")
	s.True(dErrors.Is(err, dErrors.CodeBadRequest))

	_, err = svc.DeleteEvento(s.ctx, 1)
	s.True(dErrors.Is(err, dErrors.CodeBadRequest))
}
