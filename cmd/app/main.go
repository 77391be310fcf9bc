package main

import (
	"github.com/humanbelnik/imdb-explorer/core/internal/app"
	"github.com/humanbelnik/imdb-explorer/core/internal/config"
)

func main() {
	app.Go(config.Load())
}
