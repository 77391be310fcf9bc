package usecase_watch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/humanbelnik/imdb-explorer/core/internal/model"
	"github.com/humanbelnik/imdb-explorer/core/internal/service/aggregate"
)

var (
	ErrFailedToStoreWatch  = errors.New("failed to store watch event")
	ErrFailedToLoadHistory = errors.New("failed to load watch history")
	ErrFailedToDeleteWatch = errors.New("failed to delete watch event")
	ErrInvalidWatchDate    = errors.New("invalid watch date")
)

type Repository interface {
	Store(ctx context.Context, we model.WatchEvent) (int64, error)
	LoadAll(ctx context.Context, order model.WatchOrder) ([]*model.WatchEvent, error)
	DeleteByID(ctx context.Context, id int64) error
}

type Usecase struct {
	repository Repository
}

func New(repository Repository) *Usecase {
	return &Usecase{repository: repository}
}

// Record appends one watch event. The date must be a YYYY-MM-DD string so
// that stored rows always satisfy the week-bucketing in the aggregations.
func (u *Usecase) Record(ctx context.Context, we model.WatchEvent) (int64, error) {
	if _, err := time.Parse(model.WatchDateLayout, we.WatchDate); err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidWatchDate, we.WatchDate)
	}

	id, err := u.repository.Store(ctx, we)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrFailedToStoreWatch, err)
	}

	return id, nil
}

// History returns all watch events, newest watch date first.
func (u *Usecase) History(ctx context.Context) ([]*model.WatchEvent, error) {
	watches, err := u.repository.LoadAll(ctx, model.OrderWatchDateDesc)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToLoadHistory, err)
	}
	return watches, nil
}

// Remove deletes a watch event by id. Removing an absent id succeeds.
func (u *Usecase) Remove(ctx context.Context, id int64) error {
	if err := u.repository.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("%w: %w", ErrFailedToDeleteWatch, err)
	}
	return nil
}

// Visualizations recomputes the three aggregate views over the history in
// ascending watch-date order.
func (u *Usecase) Visualizations(ctx context.Context) (model.VisualizationData, error) {
	watches, err := u.repository.LoadAll(ctx, model.OrderWatchDateAsc)
	if err != nil {
		return model.VisualizationData{}, fmt.Errorf("%w: %w", ErrFailedToLoadHistory, err)
	}

	return model.VisualizationData{
		CreatorsNetwork:     aggregate.CreatorsNetwork(watches),
		ViewingPatterns:     aggregate.ViewingPatterns(watches),
		RuntimeDistribution: aggregate.RuntimeDistribution(watches),
	}, nil
}
