//go:build integration

package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"adev-backend/internal/schedule/models"
	"adev-backend/internal/schedule/store"
	"adev-backend/pkg/testutil/containers"
)

type PostgresStoreSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	store    *store.Postgres
}

func TestPostgresStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) SetupSuite() {
	s.postgres = containers.NewPostgresContainer(s.T())
	s.Require().NoError(store.Migrate(context.Background(), s.postgres.DB))
	s.store = store.NewPostgresFromDB(s.postgres.DB)
}

func (s *PostgresStoreSuite) SetupTest() {
	s.Require().NoError(s.postgres.TruncateTables(context.Background(), "cultos", "eventos"))
}

func (s *PostgresStoreSuite) TestCultoLifecycle() {
	ctx := context.Background()

	id1, err := s.store.InsertCulto(ctx, &models.Culto{Nome: "Culto de Domingo", Dia: "domingo", Horario: "18:00"})
	s.Require().NoError(err)
	id2, err := s.store.InsertCulto(ctx, &models.Culto{Nome: "Círculo de Oração", Dia: "quarta", Horario: "19:30"})
	s.Require().NoError(err)
	s.Less(id1, id2)

	cultos, err := s.store.ListCultos(ctx)
	s.Require().NoError(err)
	s.Require().Len(cultos, 2)
	s.Equal(id1, cultos[0].ID, "full scan must come back ordered by id")

	affected, err := s.store.DeleteCulto(ctx, id1)
	s.Require().NoError(err)
	s.Equal(int64(1), affected)

	affected, err = s.store.DeleteCulto(ctx, id1)
	s.Require().NoError(err)
	s.Equal(int64(0), affected, "repeat delete is a no-op")
}

func (s *PostgresStoreSuite) TestEventoLifecycle() {
	ctx := context.Background()

	id, err := s.store.InsertEvento(ctx, &models.Evento{Nome: "Congresso", Data: "2026-10-12", Descricao: ""})
	s.Require().NoError(err)

	eventos, err := s.store.ListEventos(ctx)
	s.Require().NoError(err)
	s.Require().Len(eventos, 1)
	s.Equal("", eventos[0].Descricao)

	affected, err := s.store.DeleteEvento(ctx, id)
	s.Require().NoError(err)
	s.Equal(int64(1), affected)
}

// TestEmptyScans verifies fresh tables scan to empty non-nil slices.
func (s *PostgresStoreSuite) TestEmptyScans() {
	ctx := context.Background()

	cultos, err := s.store.ListCultos(ctx)
	s.Require().NoError(err)
	s.NotNil(cultos)
	s.Empty(cultos)

	eventos, err := s.store.ListEventos(ctx)
	s.Require().NoError(err)
	s.NotNil(eventos)
	s.Empty(eventos)
}
