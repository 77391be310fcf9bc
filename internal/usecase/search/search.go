package usecase_search

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

var ErrUpstream = errors.New("API request failed")

// Provider is the external movie-metadata API. Responses are opaque JSON
// relayed to the caller unmodified.
type Provider interface {
	Search(ctx context.Context, query string) (json.RawMessage, error)
	GetByID(ctx context.Context, imdbID string) (json.RawMessage, error)
}

type Usecase struct {
	provider Provider
}

func New(provider Provider) *Usecase {
	return &Usecase{provider: provider}
}

func (u *Usecase) Search(ctx context.Context, query string) (json.RawMessage, error) {
	raw, err := u.provider.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUpstream, err)
	}
	return raw, nil
}

func (u *Usecase) MovieByID(ctx context.Context, imdbID string) (json.RawMessage, error) {
	raw, err := u.provider.GetByID(ctx, imdbID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUpstream, err)
	}
	return raw, nil
}
