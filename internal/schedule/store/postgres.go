package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"adev-backend/internal/migrations/programacao"
	"adev-backend/internal/schedule/models"
)

// Postgres persists the schedule in the dedicated programacao database.
type Postgres struct {
	db *sql.DB
}

// NewPostgres opens the programacao database and applies its migrations
// idempotently. The returned store owns the connection pool.
func NewPostgres(ctx context.Context, dsn string) (*Postgres, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open programacao db: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping programacao db: %w", err)
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

// Migrate applies the schedule schema migrations.
func Migrate(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(programacao.Migrations)
	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("migrate programacao db: %w", err)
	}
	return nil
}

// Close releases the connection pool.
func (s *Postgres) Close() error {
	return s.db.Close()
}

func (s *Postgres) InsertCulto(ctx context.Context, c *models.Culto) (int64, error) {
	const query = `
		INSERT INTO cultos (nome, dia, horario)
		VALUES ($1, $2, $3)
		RETURNING id`

	if err := s.db.QueryRowContext(ctx, query, c.Nome, c.Dia, c.Horario).Scan(&c.ID); err != nil {
		return 0, fmt.Errorf("insert culto: %w", err)
	}
	return c.ID, nil
}

func (s *Postgres) ListCultos(ctx context.Context) ([]models.Culto, error) {
	const query = `SELECT id, nome, dia, horario FROM cultos ORDER BY id`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list cultos: %w", err)
	}
	defer rows.Close()

	cultos := make([]models.Culto, 0)
	for rows.Next() {
		var c models.Culto
		if err := rows.Scan(&c.ID, &c.Nome, &c.Dia, &c.Horario); err != nil {
			return nil, fmt.Errorf("scan culto: %w", err)
		}
		cultos = append(cultos, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list cultos: %w", err)
	}
	return cultos, nil
}

func (s *Postgres) DeleteCulto(ctx context.Context, id int64) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM cultos WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("delete culto: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete culto: %w", err)
	}
	return affected, nil
}

func (s *Postgres) InsertEvento(ctx context.Context, e *models.Evento) (int64, error) {
	const query = `
		INSERT INTO eventos (nome, data, descricao)
		VALUES ($1, $2, $3)
		RETURNING id`

	if err := s.db.QueryRowContext(ctx, query, e.Nome, e.Data, e.Descricao).Scan(&e.ID); err != nil {
		return 0, fmt.Errorf("insert evento: %w", err)
	}
	return e.ID, nil
}

func (s *Postgres) ListEventos(ctx context.Context) ([]models.Evento, error) {
	const query = `SELECT id, nome, data, descricao FROM eventos ORDER BY id`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list eventos: %w", err)
	}
	defer rows.Close()

	eventos := make([]models.Evento, 0)
	for rows.Next() {
		var e models.Evento
		if err := rows.Scan(&e.ID, &e.Nome, &e.Data, &e.Descricao); err != nil {
			return nil, fmt.Errorf("scan evento: %w", err)
		}
		eventos = append(eventos, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list eventos: %w", err)
	}
	return eventos, nil
}

func (s *Postgres) DeleteEvento(ctx context.Context, id int64) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM eventos WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("delete evento: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete evento: %w", err)
	}
	return affected, nil
}
