package infra_postgres_watch

import (
	"github.com/humanbelnik/imdb-explorer/core/internal/model"
)

type WatchDB struct {
	ID        int64   `db:"id"`
	ImdbID    string  `db:"imdb_id"`
	Title     string  `db:"title"`
	Year      int     `db:"year"`
	Director  string  `db:"director"`
	Writers   string  `db:"writers"`
	Actors    string  `db:"actors"`
	Genre     string  `db:"genre"`
	Runtime   int     `db:"runtime"`
	Rating    float64 `db:"rating"`
	Plot      string  `db:"plot"`
	PosterURL string  `db:"poster_url"`
	WatchDate string  `db:"watch_date"`
}

func (w *WatchDB) ToDomain() model.WatchEvent {
	return model.WatchEvent{
		ID:        w.ID,
		ImdbID:    w.ImdbID,
		Title:     w.Title,
		Year:      w.Year,
		Director:  w.Director,
		Writers:   w.Writers,
		Actors:    w.Actors,
		Genre:     w.Genre,
		Runtime:   w.Runtime,
		Rating:    w.Rating,
		Plot:      w.Plot,
		PosterURL: w.PosterURL,
		WatchDate: w.WatchDate,
	}
}

func FromDomain(we model.WatchEvent) WatchDB {
	return WatchDB{
		ID:        we.ID,
		ImdbID:    we.ImdbID,
		Title:     we.Title,
		Year:      we.Year,
		Director:  we.Director,
		Writers:   we.Writers,
		Actors:    we.Actors,
		Genre:     we.Genre,
		Runtime:   we.Runtime,
		Rating:    we.Rating,
		Plot:      we.Plot,
		PosterURL: we.PosterURL,
		WatchDate: we.WatchDate,
	}
}
