package dataset

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/lib/pq"
)

// PostgresStore writes processed articles into Postgres instead of a
// dataset directory, one row per chunk, for setups that query the
// corpus directly.
type PostgresStore struct {
	db    *sql.DB
	model string
}

func NewPostgres(dsn, model string) (*PostgresStore, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}
	s := &PostgresStore{db: db, model: model}
	if err := s.migrate(context.Background()); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *PostgresStore) migrate(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS articles (
			article_id TEXT,
			model TEXT,
			created_at TIMESTAMPTZ DEFAULT now(),
			PRIMARY KEY (article_id, model)
		);`,
		`CREATE TABLE IF NOT EXISTS article_chunks (
			article_id TEXT,
			model TEXT,
			ord INT,
			chunk TEXT,
			embedding REAL[],
			PRIMARY KEY (article_id, model, ord)
		);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}

// SaveAll inserts all articles and their chunks in a single transaction.
func (s *PostgresStore) SaveAll(ctx context.Context, articles []ProcessedArticle) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, a := range articles {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO articles (article_id, model) VALUES ($1, $2)
			 ON CONFLICT (article_id, model) DO NOTHING`,
			a.ArticleID, s.model,
		); err != nil {
			return fmt.Errorf("failed to insert article %s: %w", a.ArticleID, err)
		}
		for i, chunk := range a.Chunks {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO article_chunks (article_id, model, ord, chunk, embedding)
				 VALUES ($1, $2, $3, $4, $5)
				 ON CONFLICT (article_id, model, ord) DO UPDATE
				 SET chunk = EXCLUDED.chunk, embedding = EXCLUDED.embedding`,
				a.ArticleID, s.model, i, chunk, pq.Array([]float32(a.Embeddings[i])),
			); err != nil {
				return fmt.Errorf("failed to insert chunk %d of article %s: %w", i, a.ArticleID, err)
			}
		}
	}
	return tx.Commit()
}

// Close releases the database connection pool.
func (s *PostgresStore) Close() error {
	return s.db.Close()
}
