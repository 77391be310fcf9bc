package http_search

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	usecase_search "github.com/humanbelnik/imdb-explorer/core/internal/usecase/search"
)

type SearchRequestDTO struct {
	Query string `json:"query"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type Controller struct {
	uc *usecase_search.Usecase

	logger *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(uc *usecase_search.Usecase, opts ...ControllerOption) *Controller {
	c := &Controller{
		uc:     uc,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/search", c.search)
	router.GET("/movie/:imdb_id", c.movieDetails)
}

// search proxies a free-text lookup to the metadata provider and relays
// the provider envelope verbatim. Bad requests never reach the provider.
func (c *Controller) search(ctx *gin.Context) {
	var req SearchRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn("no JSON data in search request", slog.String("error", err.Error()))
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "No data provided"})
		return
	}

	if req.Query == "" {
		c.logger.Warn("no query parameter in search request")
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "No query provided"})
		return
	}

	raw, err := c.uc.Search(ctx.Request.Context(), req.Query)
	if err != nil {
		c.logger.Error("search request failed",
			slog.String("error", err.Error()),
			slog.String("query", req.Query),
		)
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	ctx.Data(http.StatusOK, "application/json", raw)
}

// movieDetails relays the full-plot detail object for one IMDb id.
func (c *Controller) movieDetails(ctx *gin.Context) {
	imdbID := ctx.Param("imdb_id")

	raw, err := c.uc.MovieByID(ctx.Request.Context(), imdbID)
	if err != nil {
		c.logger.Error("failed to get movie details",
			slog.String("error", err.Error()),
			slog.String("imdb_id", imdbID),
		)
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	ctx.Data(http.StatusOK, "application/json", raw)
}
