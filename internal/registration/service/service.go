// Package service implements the registration workflow: duplicate check,
// insert, then best-effort webhook forwarding.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"

	"adev-backend/internal/platform/metrics"
	"adev-backend/internal/registration/models"
	"adev-backend/internal/registration/store"
	dErrors "adev-backend/pkg/domain-errors"
	"adev-backend/pkg/platform/sentinel"
	"adev-backend/pkg/requestcontext"
)

// Notifier receives the raw payload of every accepted registration.
// Implementations must not block; delivery failures stay on their side.
type Notifier interface {
	Dispatch(payload []byte)
}

const confirmationMessage = "Cadastro realizado com sucesso!"

// nonDigits strips everything but digits from the submitted number. The
// stored side of the comparison strips a narrower set (see store.Store).
var nonDigits = regexp.MustCompile(`\D`)

type Service struct {
	store    store.Store
	notifier Notifier
	logger   *slog.Logger
	metrics  *metrics.Metrics
}

func New(st store.Store, notifier Notifier, logger *slog.Logger, m *metrics.Metrics) (*Service, error) {
	if st == nil {
		return nil, fmt.Errorf("visitor store is required")
	}
	if notifier == nil {
		return nil, fmt.Errorf("notifier is required")
	}
	return &Service{store: st, notifier: notifier, logger: logger, metrics: m}, nil
}

// Submit runs the registration flow. rawPayload is the original request
// body, forwarded verbatim to the webhook after a successful insert.
// The duplicate check and the insert are not atomic: two concurrent
// submissions with the same number can both pass the check. Accepted
// risk, matching the store's lack of a uniqueness constraint.
func (s *Service) Submit(ctx context.Context, req *models.RegistrationRequest, rawPayload []byte) (string, error) {
	digits := nonDigits.ReplaceAllString(req.Whatsapp, "")

	existing, err := s.store.FindByNormalizedPhone(ctx, digits)
	if err != nil && !errors.Is(err, sentinel.ErrNotFound) {
		return "", dErrors.Wrap(err, dErrors.CodeInternal, "duplicate check failed")
	}
	if existing != nil {
		s.logger.InfoContext(ctx, "duplicate registration rejected",
			"request_id", requestcontext.RequestID(ctx),
			"whatsapp", req.Whatsapp,
		)
		if s.metrics != nil {
			s.metrics.DuplicatesRejected.Inc()
		}
		return "", dErrors.New(dErrors.CodeConflict, "Este número de WhatsApp já foi cadastrado.")
	}

	visitor := &models.Visitor{
		Name:          req.Name,
		Whatsapp:      req.Whatsapp,
		Age:           req.Age,
		Birthdate:     req.Birthdate,
		MaritalStatus: req.MaritalStatus,
	}
	if err := s.store.Insert(ctx, visitor); err != nil {
		return "", dErrors.Wrap(err, dErrors.CodeInternal, "insert failed")
	}

	s.logger.InfoContext(ctx, "visitor registered",
		"request_id", requestcontext.RequestID(ctx),
		"visitor_id", visitor.ID,
		"name", visitor.Name,
	)
	if s.metrics != nil {
		s.metrics.RegistrationsCreated.Inc()
	}

	// Fire-and-forget: the response does not wait for, or depend on, the
	// webhook in any way.
	s.notifier.Dispatch(rawPayload)

	return confirmationMessage, nil
}
