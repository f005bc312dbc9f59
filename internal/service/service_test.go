package service_test

import (
	"context"
	"io"
	"testing"
	"time"

	"gallery/internal/cache"
	"gallery/internal/service"
	"gallery/internal/unsplash"
	"gallery/mocks"

	"github.com/go-faster/errors"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type clock struct {
	now time.Time
}

func (c *clock) Now() time.Time { return c.now }

func newService(t *testing.T, api *mocks.PhotoAPI) (*service.Service, *clock) {
	t.Helper()

	c := &clock{now: time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)}
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	return service.New(api, cache.New[any](5*time.Minute, cache.WithClock(c.Now)), logger), c
}

func photos(ids ...string) []unsplash.Photo {
	out := make([]unsplash.Photo, 0, len(ids))
	for _, id := range ids {
		out = append(out, unsplash.Photo{ID: id, URLs: unsplash.URLs{Regular: "https://img/" + id}})
	}
	return out
}

func TestSearchPhotos_CacheHitWithinTTL(t *testing.T) {
	api := mocks.NewPhotoAPI(t)
	api.On("HasAccessKey").Return(true)
	api.On("SearchPhotos", mock.Anything, "mountains", 1, 16).
		Return(unsplash.SearchResult{Total: 1, TotalPages: 1, Results: photos("a")}, nil).
		Once()

	svc, c := newService(t, api)

	first := svc.SearchPhotos(context.Background(), "mountains", 1, 16)
	c.now = c.now.Add(4 * time.Minute)
	second := svc.SearchPhotos(context.Background(), "mountains", 1, 16)

	assert.Equal(t, first, second)
	assert.Len(t, second.Results, 1)
	api.AssertNumberOfCalls(t, "SearchPhotos", 1)
}

func TestSearchPhotos_RefetchAfterTTL(t *testing.T) {
	api := mocks.NewPhotoAPI(t)
	api.On("HasAccessKey").Return(true)
	api.On("SearchPhotos", mock.Anything, "mountains", 1, 16).
		Return(unsplash.SearchResult{TotalPages: 1, Results: photos("old")}, nil).
		Once()
	api.On("SearchPhotos", mock.Anything, "mountains", 1, 16).
		Return(unsplash.SearchResult{TotalPages: 1, Results: photos("new")}, nil).
		Once()

	svc, c := newService(t, api)

	assert.Equal(t, "old", svc.SearchPhotos(context.Background(), "mountains", 1, 16).Results[0].ID)

	c.now = c.now.Add(5 * time.Minute)
	assert.Equal(t, "new", svc.SearchPhotos(context.Background(), "mountains", 1, 16).Results[0].ID)

	// the fresh entry replaced the expired one
	assert.Equal(t, "new", svc.SearchPhotos(context.Background(), "mountains", 1, 16).Results[0].ID)
	api.AssertNumberOfCalls(t, "SearchPhotos", 2)
}

func TestSearchPhotos_KeyIncludesAllParams(t *testing.T) {
	api := mocks.NewPhotoAPI(t)
	api.On("HasAccessKey").Return(true)
	api.On("SearchPhotos", mock.Anything, "sea", 1, 16).Return(unsplash.SearchResult{Results: photos("a")}, nil).Once()
	api.On("SearchPhotos", mock.Anything, "sea", 2, 16).Return(unsplash.SearchResult{Results: photos("b")}, nil).Once()
	api.On("SearchPhotos", mock.Anything, "sea", 1, 3).Return(unsplash.SearchResult{Results: photos("c")}, nil).Once()

	svc, _ := newService(t, api)

	assert.Equal(t, "a", svc.SearchPhotos(context.Background(), "sea", 1, 16).Results[0].ID)
	assert.Equal(t, "b", svc.SearchPhotos(context.Background(), "sea", 2, 16).Results[0].ID)
	assert.Equal(t, "c", svc.SearchPhotos(context.Background(), "sea", 1, 3).Results[0].ID)
}

func TestGateway_MissingAccessKeyReturnsEmpty(t *testing.T) {
	api := mocks.NewPhotoAPI(t)
	api.On("HasAccessKey").Return(false)

	svc, _ := newService(t, api)
	ctx := context.Background()

	assert.False(t, svc.AccessKeyConfigured())
	assert.Equal(t, unsplash.SearchResult{}, svc.SearchPhotos(ctx, "q", 1, 16))
	assert.Empty(t, svc.CategoryPhotos(ctx, "nature", 1))
	assert.Empty(t, svc.RandomPhotoURL(ctx, "nature"))

	_, ok := svc.Photo(ctx, "abc")
	assert.False(t, ok)

	assert.ErrorIs(t, svc.TrackDownload(ctx, "https://api/dl"), unsplash.ErrMissingAccessKey)

	api.AssertNotCalled(t, "SearchPhotos", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	api.AssertNotCalled(t, "RandomPhotos", mock.Anything, mock.Anything, mock.Anything)
	api.AssertNotCalled(t, "GetPhoto", mock.Anything, mock.Anything)
}

func TestGateway_FailuresDegradeToEmptyAndAreNotCached(t *testing.T) {
	api := mocks.NewPhotoAPI(t)
	api.On("HasAccessKey").Return(true)
	api.On("SearchPhotos", mock.Anything, "q", 1, 16).
		Return(unsplash.SearchResult{}, &unsplash.APIError{StatusCode: 403, Messages: []string{"Rate Limit Exceeded"}}).
		Twice()
	api.On("RandomPhotos", mock.Anything, "nature", 16).Return(nil, errors.New("connection reset")).Once()
	api.On("RandomPhotos", mock.Anything, "nature", 0).Return(nil, errors.New("connection reset")).Once()
	api.On("GetPhoto", mock.Anything, "missing").Return(unsplash.Photo{}, &unsplash.APIError{StatusCode: 404}).Once()

	svc, _ := newService(t, api)
	ctx := context.Background()

	assert.True(t, svc.SearchPhotos(ctx, "q", 1, 16).Empty())
	assert.True(t, svc.SearchPhotos(ctx, "q", 1, 16).Empty())
	assert.Empty(t, svc.CategoryPhotos(ctx, "nature", 1))
	assert.Empty(t, svc.RandomPhotoURL(ctx, "nature"))

	_, ok := svc.Photo(ctx, "missing")
	assert.False(t, ok)

	api.AssertNumberOfCalls(t, "SearchPhotos", 2)
}

func TestCategoryPhotos_DedupesBatchAndCachesPerPage(t *testing.T) {
	api := mocks.NewPhotoAPI(t)
	api.On("HasAccessKey").Return(true)
	api.On("RandomPhotos", mock.Anything, "nature", service.CategoryBatchSize).
		Return(photos("a", "b", "a", "c"), nil).
		Once()
	api.On("RandomPhotos", mock.Anything, "nature", service.CategoryBatchSize).
		Return(photos("d"), nil).
		Once()

	svc, _ := newService(t, api)
	ctx := context.Background()

	page1 := svc.CategoryPhotos(ctx, "nature", 1)
	assert.Equal(t, photos("a", "b", "c"), page1)
	assert.Equal(t, page1, svc.CategoryPhotos(ctx, "nature", 1))

	assert.Equal(t, photos("d"), svc.CategoryPhotos(ctx, "nature", 2))
	api.AssertNumberOfCalls(t, "RandomPhotos", 2)
}

func TestRandomPhotoURL(t *testing.T) {
	api := mocks.NewPhotoAPI(t)
	api.On("HasAccessKey").Return(true)
	api.On("RandomPhotos", mock.Anything, "space", 0).Return(photos("s1"), nil).Once()
	api.On("RandomPhotos", mock.Anything, "void", 0).Return([]unsplash.Photo{}, nil).Once()

	svc, _ := newService(t, api)
	ctx := context.Background()

	assert.Equal(t, "https://img/s1?w=1920&q=80", svc.RandomPhotoURL(ctx, "space"))
	assert.Equal(t, "https://img/s1?w=1920&q=80", svc.RandomPhotoURL(ctx, "space"))
	assert.Empty(t, svc.RandomPhotoURL(ctx, "void"))
}

func TestPhoto_Cached(t *testing.T) {
	api := mocks.NewPhotoAPI(t)
	api.On("HasAccessKey").Return(true)
	api.On("GetPhoto", mock.Anything, "abc").Return(unsplash.Photo{ID: "abc"}, nil).Once()

	svc, _ := newService(t, api)

	for range 3 {
		p, ok := svc.Photo(context.Background(), "abc")
		assert.True(t, ok)
		assert.Equal(t, "abc", p.ID)
	}
}

func TestTrackDownload(t *testing.T) {
	api := mocks.NewPhotoAPI(t)
	api.On("HasAccessKey").Return(true)
	api.On("TrackDownload", mock.Anything, "https://api/dl").Return(nil).Twice()

	svc, _ := newService(t, api)

	assert.NoError(t, svc.TrackDownload(context.Background(), "https://api/dl"))
	assert.NoError(t, svc.TrackDownload(context.Background(), "https://api/dl"))
}
