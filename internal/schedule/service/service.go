// Package service holds the schedule operations: the public aggregate
// read and the admin mutations. Authorization is not handled here; the
// admin routes are gated by middleware before these methods run.
package service

import (
	"context"
	"fmt"
	"log/slog"

	"adev-backend/internal/platform/metrics"
	"adev-backend/internal/schedule/models"
	"adev-backend/internal/schedule/store"
	dErrors "adev-backend/pkg/domain-errors"
	"adev-backend/pkg/requestcontext"
)

type Service struct {
	store   store.Store
	logger  *slog.Logger
	metrics *metrics.Metrics
}

func New(st store.Store, logger *slog.Logger, m *metrics.Metrics) (*Service, error) {
	if st == nil {
		return nil, fmt.Errorf("schedule store is required")
	}
	return &Service{store: st, logger: logger, metrics: m}, nil
}

// GetSchedule returns both collections ordered by id. A failure in
// either scan fails the whole call; no partial aggregate is served.
func (s *Service) GetSchedule(ctx context.Context) (*models.Schedule, error) {
	cultos, err := s.store.ListCultos(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "list cultos failed")
	}
	eventos, err := s.store.ListEventos(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "list eventos failed")
	}
	if cultos == nil {
		cultos = []models.Culto{}
	}
	if eventos == nil {
		eventos = []models.Evento{}
	}
	return &models.Schedule{Cultos: cultos, Eventos: eventos}, nil
}

// CreateCulto inserts a recurring service slot and returns its id.
func (s *Service) CreateCulto(ctx context.Context, nome, dia, horario string) (int64, error) {
	if nome == "" || dia == "" || horario == "" {
		return 0, dErrors.New(dErrors.CodeValidation, "Campos obrigatórios: nome, dia, horario.")
	}
	id, err := s.store.InsertCulto(ctx, &models.Culto{Nome: nome, Dia: dia, Horario: horario})
	if err != nil {
		return 0, dErrors.Wrap(err, dErrors.CodeBadRequest, "Não foi possível salvar o culto.")
	}
	s.logger.InfoContext(ctx, "culto created",
		"request_id", requestcontext.RequestID(ctx),
		"culto_id", id,
	)
	s.metrics.RecordScheduleWrite("culto", "create")
	return id, nil
}

// DeleteCulto removes a slot by id. Deleting a nonexistent id is not an
// error; it reports zero affected rows.
func (s *Service) DeleteCulto(ctx context.Context, id int64) (int64, error) {
	affected, err := s.store.DeleteCulto(ctx, id)
	if err != nil {
		return 0, dErrors.Wrap(err, dErrors.CodeBadRequest, "Não foi possível remover o culto.")
	}
	s.metrics.RecordScheduleWrite("culto", "delete")
	return affected, nil
}

// CreateEvento inserts a one-off event and returns its id. Descricao is
// optional.
func (s *Service) CreateEvento(ctx context.Context, nome, data, descricao string) (int64, error) {
	if nome == "" || data == "" {
		return 0, dErrors.New(dErrors.CodeValidation, "Campos obrigatórios: nome, data.")
	}
	id, err := s.store.InsertEvento(ctx, &models.Evento{Nome: nome, Data: data, Descricao: descricao})
	if err != nil {
		return 0, dErrors.Wrap(err, dErrors.CodeBadRequest, "Não foi possível salvar o evento.")
	}
	s.logger.InfoContext(ctx, "evento created",
		"request_id", requestcontext.RequestID(ctx),
		"evento_id", id,
	)
	s.metrics.RecordScheduleWrite("evento", "create")
	return id, nil
}

// DeleteEvento removes an event by id with the same idempotent semantics
// as DeleteCulto.
func (s *Service) DeleteEvento(ctx context.Context, id int64) (int64, error) {
	affected, err := s.store.DeleteEvento(ctx, id)
	if err != nil {
		return 0, dErrors.Wrap(err, dErrors.CodeBadRequest, "Não foi possível remover o evento.")
	}
	s.metrics.RecordScheduleWrite("evento", "delete")
	return affected, nil
}
