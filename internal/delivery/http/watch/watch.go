package http_watch

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/humanbelnik/imdb-explorer/core/internal/model"
	usecase_watch "github.com/humanbelnik/imdb-explorer/core/internal/usecase/watch"
)

// MovieDataDTO carries the provider's movie object as the frontend submits
// it: every numeric field is still a free-text string.
type MovieDataDTO struct {
	Title      string `json:"Title"`
	Year       string `json:"Year"`
	ImdbID     string `json:"imdbID"`
	Director   string `json:"Director"`
	Writer     string `json:"Writer"`
	Actors     string `json:"Actors"`
	Genre      string `json:"Genre"`
	Runtime    string `json:"Runtime"`
	ImdbRating string `json:"imdbRating"`
	Plot       string `json:"Plot"`
	Poster     string `json:"Poster"`
}

type RecordWatchRequestDTO struct {
	WatchDate string        `json:"watchDate" binding:"required"`
	MovieData *MovieDataDTO `json:"movieData" binding:"required"`
}

type WatchResponseDTO struct {
	ID        int64   `json:"id"`
	ImdbID    string  `json:"imdb_id"`
	Title     string  `json:"title"`
	Year      int     `json:"year"`
	Director  string  `json:"director"`
	Writers   string  `json:"writers"`
	Actors    string  `json:"actors"`
	Genre     string  `json:"genre"`
	Runtime   int     `json:"runtime"`
	Rating    float64 `json:"rating"`
	Plot      string  `json:"plot"`
	PosterURL string  `json:"poster_url"`
	WatchDate string  `json:"watch_date"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// ConvertToWatchEvent coerces the free-text provider fields. Runtime keeps
// only the leading number of strings like "136 min" and falls back to 0,
// rating falls back to 0.0; the year must parse.
func (r *RecordWatchRequestDTO) ConvertToWatchEvent() (model.WatchEvent, error) {
	md := r.MovieData

	year, err := strconv.Atoi(strings.TrimSpace(md.Year))
	if err != nil {
		return model.WatchEvent{}, fmt.Errorf("invalid year %q: %w", md.Year, err)
	}

	return model.WatchEvent{
		ImdbID:    md.ImdbID,
		Title:     md.Title,
		Year:      year,
		Director:  md.Director,
		Writers:   md.Writer,
		Actors:    md.Actors,
		Genre:     md.Genre,
		Runtime:   parseRuntime(md.Runtime),
		Rating:    parseRating(md.ImdbRating),
		Plot:      md.Plot,
		PosterURL: md.Poster,
		WatchDate: r.WatchDate,
	}, nil
}

func parseRuntime(s string) int {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return 0
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0
	}
	return n
}

func parseRating(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0.0
	}
	return f
}

func ConvertFromWatchEvent(we model.WatchEvent) WatchResponseDTO {
	return WatchResponseDTO{
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

func ConvertFromWatchEventList(wes []*model.WatchEvent) []WatchResponseDTO {
	watches := make([]WatchResponseDTO, len(wes))
	for i, we := range wes {
		watches[i] = ConvertFromWatchEvent(*we)
	}
	return watches
}

type Controller struct {
	uc *usecase_watch.Usecase

	logger *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(uc *usecase_watch.Usecase, opts ...ControllerOption) *Controller {
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
	router.POST("/movie/watch", c.recordWatch)
	router.GET("/movies/watched", c.watchHistory)
	router.DELETE("/movie/watch/:id", c.deleteWatch)
	router.GET("/visualizations/data", c.visualizationData)
}

func (c *Controller) recordWatch(ctx *gin.Context) {
	var req RecordWatchRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn("invalid watch request body", slog.String("error", err.Error()))
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "No watch data provided"})
		return
	}

	we, err := req.ConvertToWatchEvent()
	if err != nil {
		c.logger.Error("failed to coerce movie data",
			slog.String("error", err.Error()),
			slog.String("title", req.MovieData.Title),
		)
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	if _, err := c.uc.Record(ctx.Request.Context(), we); err != nil {
		c.logger.Error("failed to record watch event",
			slog.String("error", err.Error()),
			slog.String("title", we.Title),
		)
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, SuccessResponse{Success: true})
}

func (c *Controller) watchHistory(ctx *gin.Context) {
	watches, err := c.uc.History(ctx.Request.Context())
	if err != nil {
		c.logger.Error("failed to load watch history", slog.String("error", err.Error()))
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, ConvertFromWatchEventList(watches))
}

// deleteWatch is idempotent: deleting an id that is already gone still
// reports success.
func (c *Controller) deleteWatch(ctx *gin.Context) {
	idParam := ctx.Param("id")
	id, err := strconv.ParseInt(idParam, 10, 64)
	if err != nil {
		c.logger.Warn("invalid watch id",
			slog.String("id", idParam),
			slog.String("error", err.Error()),
		)
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid watch id"})
		return
	}

	if err := c.uc.Remove(ctx.Request.Context(), id); err != nil {
		c.logger.Error("failed to delete watch event",
			slog.String("error", err.Error()),
			slog.Int64("id", id),
		)
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, SuccessResponse{Success: true})
}

func (c *Controller) visualizationData(ctx *gin.Context) {
	data, err := c.uc.Visualizations(ctx.Request.Context())
	if err != nil {
		c.logger.Error("failed to build visualization data", slog.String("error", err.Error()))
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, data)
}
