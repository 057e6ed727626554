package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"adev-backend/internal/migrations/cadastros"
	"adev-backend/internal/registration/models"
	"adev-backend/pkg/platform/sentinel"
)

// Postgres persists visitors in the dedicated cadastros database.
type Postgres struct {
	db *sql.DB
}

// NewPostgres opens the cadastros database and applies its migrations
// idempotently. The returned store owns the connection pool.
func NewPostgres(ctx context.Context, dsn string) (*Postgres, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open cadastros db: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping cadastros db: %w", err)
	}
	if err := Migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Postgres{db: db}, nil
}

// NewPostgresFromDB wraps an existing connection. The caller keeps
// ownership of db; used by integration tests.
func NewPostgresFromDB(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

// Migrate applies the visitor schema migrations.
func Migrate(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(cadastros.Migrations)
	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("migrate cadastros db: %w", err)
	}
	return nil
}

// Close releases the connection pool.
func (s *Postgres) Close() error {
	return s.db.Close()
}

func (s *Postgres) Insert(ctx context.Context, v *models.Visitor) error {
	const query = `
		INSERT INTO visitantes (name, whatsapp, age, birthdate, marital_status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`

	err := s.db.QueryRowContext(ctx, query,
		v.Name, v.Whatsapp, v.Age, v.Birthdate, v.MaritalStatus,
	).Scan(&v.ID, &v.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert visitante: %w", err)
	}
	return nil
}

func (s *Postgres) FindByNormalizedPhone(ctx context.Context, digits string) (*models.Visitor, error) {
	// The REPLACE chain strips exactly "(", ")", "-", and space from the
	// stored value; see Store.FindByNormalizedPhone for why the set is
	// narrower than full digit normalization.
	const query = `
		SELECT id, name, whatsapp, age, birthdate, marital_status, created_at
		  FROM visitantes
		 WHERE REPLACE(REPLACE(REPLACE(REPLACE(whatsapp, '(', ''), ')', ''), '-', ''), ' ', '') = $1
		 LIMIT 1`

	v := &models.Visitor{}
	err := s.db.QueryRowContext(ctx, query, digits).Scan(
		&v.ID, &v.Name, &v.Whatsapp, &v.Age, &v.Birthdate, &v.MaritalStatus, &v.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find visitante by phone: %w", err)
	}
	return v, nil
}
