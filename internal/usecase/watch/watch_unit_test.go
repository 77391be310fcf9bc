//go:build !integration
// +build !integration

package usecase_watch

import (
	"context"
	"errors"
	"testing"

	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/humanbelnik/imdb-explorer/core/internal/model"
)

type RepositoryMock struct {
	mock.Mock
}

func (m *RepositoryMock) Store(ctx context.Context, we model.WatchEvent) (int64, error) {
	args := m.Called(ctx, we)
	return args.Get(0).(int64), args.Error(1)
}

func (m *RepositoryMock) LoadAll(ctx context.Context, order model.WatchOrder) ([]*model.WatchEvent, error) {
	args := m.Called(ctx, order)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.WatchEvent), args.Error(1)
}

func (m *RepositoryMock) DeleteByID(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type UsecaseWatchUnitSuite struct {
	suite.Suite
}

type resources struct {
	usecase    *Usecase
	repository *RepositoryMock
	ctx        context.Context
}

func initResources() *resources {
	repository := new(RepositoryMock)
	return &resources{
		usecase:    New(repository),
		repository: repository,
		ctx:        context.Background(),
	}
}

func matrixWatch() model.WatchEvent {
	return model.WatchEvent{
		ImdbID:    "tt0133093",
		Title:     "The Matrix",
		Year:      1999,
		Director:  "Lana Wachowski, Lilly Wachowski",
		Writers:   "Lana Wachowski, Lilly Wachowski",
		Actors:    "Keanu Reeves, Laurence Fishburne",
		Genre:     "Action, Sci-Fi",
		Runtime:   136,
		Rating:    8.7,
		WatchDate: "2024-10-23",
	}
}

func (suite *UsecaseWatchUnitSuite) TestRecord(t provider.T) {
	t.Parallel()

	testCases := []struct {
		name          string
		setupMocks    func(r *resources, we model.WatchEvent)
		watch         model.WatchEvent
		expectError   bool
		errorIs       error
		errorContains string
	}{
		{
			name: "Should record watch event successfully",
			setupMocks: func(r *resources, we model.WatchEvent) {
				r.repository.On("Store", r.ctx, we).Return(int64(1), nil).Once()
			},
			watch:       matrixWatch(),
			expectError: false,
		},
		{
			name:       "Should reject malformed watch date without touching the store",
			setupMocks: func(r *resources, we model.WatchEvent) {},
			watch: func() model.WatchEvent {
				we := matrixWatch()
				we.WatchDate = "23-10-2024"
				return we
			}(),
			expectError: true,
			errorIs:     ErrInvalidWatchDate,
		},
		{
			name: "Should wrap store failures",
			setupMocks: func(r *resources, we model.WatchEvent) {
				r.repository.On("Store", r.ctx, we).Return(int64(0), errors.New("store error")).Once()
			},
			watch:         matrixWatch(),
			expectError:   true,
			errorIs:       ErrFailedToStoreWatch,
			errorContains: "store error",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			r := initResources()
			tc.setupMocks(r, tc.watch)

			id, err := r.usecase.Record(r.ctx, tc.watch)

			if tc.expectError {
				assert.Error(t, err)
				assert.ErrorIs(t, err, tc.errorIs)
				if tc.errorContains != "" {
					assert.Contains(t, err.Error(), tc.errorContains)
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, int64(1), id)
			}
			r.repository.AssertExpectations(t)
		})
	}
}

func (suite *UsecaseWatchUnitSuite) TestHistory(t provider.T) {
	t.Parallel()

	testCases := []struct {
		name          string
		setupMocks    func(r *resources, expected []*model.WatchEvent)
		expectError   bool
		errorContains string
		expected      []*model.WatchEvent
	}{
		{
			name: "Should load history newest first",
			setupMocks: func(r *resources, expected []*model.WatchEvent) {
				r.repository.On("LoadAll", r.ctx, model.OrderWatchDateDesc).Return(expected, nil).Once()
			},
			expected: func() []*model.WatchEvent {
				we := matrixWatch()
				we.ID = 1
				return []*model.WatchEvent{&we}
			}(),
		},
		{
			name: "Should wrap repository failures",
			setupMocks: func(r *resources, expected []*model.WatchEvent) {
				r.repository.On("LoadAll", r.ctx, model.OrderWatchDateDesc).Return(nil, errors.New("load error")).Once()
			},
			expectError:   true,
			errorContains: "load error",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			r := initResources()
			tc.setupMocks(r, tc.expected)

			watches, err := r.usecase.History(r.ctx)

			if tc.expectError {
				assert.Error(t, err)
				assert.ErrorIs(t, err, ErrFailedToLoadHistory)
				assert.Contains(t, err.Error(), tc.errorContains)
				assert.Nil(t, watches)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.expected, watches)
			}
			r.repository.AssertExpectations(t)
		})
	}
}

func (suite *UsecaseWatchUnitSuite) TestRemove(t provider.T) {
	t.Parallel()

	testCases := []struct {
		name          string
		setupMocks    func(r *resources, id int64)
		id            int64
		expectError   bool
		errorContains string
	}{
		{
			name: "Should remove watch event",
			setupMocks: func(r *resources, id int64) {
				r.repository.On("DeleteByID", r.ctx, id).Return(nil).Once()
			},
			id: 7,
		},
		{
			// The repository treats an absent id as success; Remove must
			// not second-guess that.
			name: "Should succeed for absent id",
			setupMocks: func(r *resources, id int64) {
				r.repository.On("DeleteByID", r.ctx, id).Return(nil).Once()
			},
			id: 9999,
		},
		{
			name: "Should wrap repository failures",
			setupMocks: func(r *resources, id int64) {
				r.repository.On("DeleteByID", r.ctx, id).Return(errors.New("delete error")).Once()
			},
			id:            7,
			expectError:   true,
			errorContains: "delete error",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			r := initResources()
			tc.setupMocks(r, tc.id)

			err := r.usecase.Remove(r.ctx, tc.id)

			if tc.expectError {
				assert.Error(t, err)
				assert.ErrorIs(t, err, ErrFailedToDeleteWatch)
				assert.Contains(t, err.Error(), tc.errorContains)
			} else {
				assert.NoError(t, err)
			}
			r.repository.AssertExpectations(t)
		})
	}
}

func (suite *UsecaseWatchUnitSuite) TestVisualizations(t provider.T) {
	t.Parallel()

	t.Run("Should aggregate the ascending history", func(t provider.T) {
		t.Parallel()
		r := initResources()

		we := matrixWatch()
		we.ID = 1
		r.repository.On("LoadAll", r.ctx, model.OrderWatchDateAsc).
			Return([]*model.WatchEvent{&we}, nil).Once()

		data, err := r.usecase.Visualizations(r.ctx)

		assert.NoError(t, err)
		assert.Equal(t, []int{136}, data.RuntimeDistribution["Action"])
		assert.Equal(t, []int{136}, data.RuntimeDistribution["Sci-Fi"])
		assert.Len(t, data.ViewingPatterns, 1)
		assert.Equal(t, 1, data.ViewingPatterns[0].Count)
		assert.Len(t, data.CreatorsNetwork.Nodes, 2)
		r.repository.AssertExpectations(t)
	})

	t.Run("Should wrap repository failures", func(t provider.T) {
		t.Parallel()
		r := initResources()

		r.repository.On("LoadAll", r.ctx, model.OrderWatchDateAsc).
			Return(nil, errors.New("load error")).Once()

		_, err := r.usecase.Visualizations(r.ctx)

		assert.Error(t, err)
		assert.ErrorIs(t, err, ErrFailedToLoadHistory)
		r.repository.AssertExpectations(t)
	})
}

func TestUsecaseWatchUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(UsecaseWatchUnitSuite))
}
