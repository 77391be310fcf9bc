package infra_postgres_watch

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/humanbelnik/imdb-explorer/core/internal/model"
)

type Repository struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

// Store inserts one watch event and returns the store-assigned id. Each
// insert commits on its own; there is no batching.
func (r *Repository) Store(ctx context.Context, we model.WatchEvent) (int64, error) {
	watchDB := FromDomain(we)

	query := `
		INSERT INTO watched_movies
			(imdb_id, title, year, director, writers, actors, genre, runtime, rating, plot, poster_url, watch_date)
		VALUES
			(:imdb_id, :title, :year, :director, :writers, :actors, :genre, :runtime, :rating, :plot, :poster_url, :watch_date)
		RETURNING id
	`

	rows, err := r.db.NamedQueryContext(ctx, query, watchDB)
	if err != nil {
		return 0, fmt.Errorf("failed to store watch event: %w", err)
	}
	defer rows.Close()

	var id int64
	if !rows.Next() {
		return 0, fmt.Errorf("failed to store watch event: no id returned")
	}
	if err := rows.Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to scan watch event id: %w", err)
	}

	return id, nil
}

// LoadAll returns the full watch history. Ties on watch_date keep insertion
// order via the id column.
func (r *Repository) LoadAll(ctx context.Context, order model.WatchOrder) ([]*model.WatchEvent, error) {
	dir := "ASC"
	if order == model.OrderWatchDateDesc {
		dir = "DESC"
	}

	query := fmt.Sprintf(`
		SELECT id, imdb_id, title, year, director, writers, actors, genre, runtime, rating, plot, poster_url, watch_date
		FROM watched_movies
		ORDER BY watch_date %s, id %s
	`, dir, dir)

	var watchesDB []WatchDB
	err := r.db.SelectContext(ctx, &watchesDB, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query watch events: %w", err)
	}

	watches := make([]*model.WatchEvent, len(watchesDB))
	for i, watchDB := range watchesDB {
		domainWatch := watchDB.ToDomain()
		watches[i] = &domainWatch
	}

	return watches, nil
}

// DeleteByID removes the row with that id. A missing id is a no-op, not an
// error: deletes are idempotent.
func (r *Repository) DeleteByID(ctx context.Context, id int64) error {
	query := `DELETE FROM watched_movies WHERE id = $1`

	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("failed to delete watch event: %w", err)
	}

	return nil
}
