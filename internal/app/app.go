package app

import (
	"net/http"

	"github.com/humanbelnik/imdb-explorer/core/internal/config"
	http_index "github.com/humanbelnik/imdb-explorer/core/internal/delivery/http/index"
	http_init "github.com/humanbelnik/imdb-explorer/core/internal/delivery/http/init"
	http_search "github.com/humanbelnik/imdb-explorer/core/internal/delivery/http/search"
	http_watch "github.com/humanbelnik/imdb-explorer/core/internal/delivery/http/watch"
	infra_omdb "github.com/humanbelnik/imdb-explorer/core/internal/infra/omdb"
	infra_pg_init "github.com/humanbelnik/imdb-explorer/core/internal/infra/postgres/init"
	infra_postgres_watch "github.com/humanbelnik/imdb-explorer/core/internal/infra/postgres/watch"
	usecase_search "github.com/humanbelnik/imdb-explorer/core/internal/usecase/search"
	usecase_watch "github.com/humanbelnik/imdb-explorer/core/internal/usecase/watch"
)

func Go(cfg *config.Config) {
	pgConn := infra_pg_init.MustEstablishConn(cfg.Postgres)
	infra_pg_init.MustInitSchema(pgConn)

	omdbClient := infra_omdb.New(cfg.Omdb, http.DefaultClient)
	watchRepository := infra_postgres_watch.New(pgConn)

	searchUC := usecase_search.New(omdbClient)
	watchUC := usecase_watch.New(watchRepository)

	controllerPool := http_init.NewControllerPool()
	controllerPool.Add(http_index.New())
	controllerPool.Add(http_search.New(searchUC))
	controllerPool.Add(http_watch.New(watchUC))

	controllerPool.Register()
	controllerPool.RunAll(cfg.HTTP.Port)
}
