// Package store persists the schedule (cultos and eventos) in its own
// database, fully independent from the visitor store.
package store

import (
	"context"

	"adev-backend/internal/schedule/models"
)

// Store is the schedule persistence contract. Deletes are idempotent:
// removing an id that does not exist returns affected == 0, not an error.
type Store interface {
	InsertCulto(ctx context.Context, c *models.Culto) (int64, error)
	ListCultos(ctx context.Context) ([]models.Culto, error)
	DeleteCulto(ctx context.Context, id int64) (int64, error)

	InsertEvento(ctx context.Context, e *models.Evento) (int64, error)
	ListEventos(ctx context.Context) ([]models.Evento, error)
	DeleteEvento(ctx context.Context, id int64) (int64, error)
}
