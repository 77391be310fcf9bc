package infra_pg_init

import (
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/humanbelnik/imdb-explorer/core/internal/config"
)

const schema = `
CREATE TABLE IF NOT EXISTS watched_movies (
	id          SERIAL PRIMARY KEY,
	imdb_id     TEXT NOT NULL,
	title       TEXT NOT NULL,
	year        INTEGER NOT NULL,
	director    TEXT NOT NULL DEFAULT '',
	writers     TEXT NOT NULL DEFAULT '',
	actors      TEXT NOT NULL DEFAULT '',
	genre       TEXT NOT NULL DEFAULT '',
	runtime     INTEGER NOT NULL DEFAULT 0,
	rating      DOUBLE PRECISION NOT NULL DEFAULT 0,
	plot        TEXT NOT NULL DEFAULT '',
	poster_url  TEXT NOT NULL DEFAULT '',
	watch_date  TEXT NOT NULL
)`

func MustEstablishConn(cfg config.Postgres) *sqlx.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host,
		cfg.Port,
		cfg.User,
		cfg.Password,
		cfg.DBName,
		cfg.SSLMode,
	)
	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		log.Fatal(err)
	}

	return db
}

// MustInitSchema creates the watch-history table on startup if absent.
func MustInitSchema(db *sqlx.DB) {
	if _, err := db.Exec(schema); err != nil {
		log.Fatalf("failed to init schema: %v", err)
	}
}
