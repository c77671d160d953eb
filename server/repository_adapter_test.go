package server

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/readlist/pkg/domain"
	"github.com/umputun/readlist/pkg/repository"
)

type invalidatorMock struct{ calls int }

func (m *invalidatorMock) Invalidate() { m.calls++ }

func setupAdapter(t *testing.T) (*RepositoryAdapter, *repository.Repositories, *invalidatorMock) {
	t.Helper()
	repos, err := repository.NewRepositories(context.Background(), repository.Config{DSN: ":memory:", MaxOpenConns: 1})
	require.NoError(t, err)
	t.Cleanup(func() { _ = repos.Close() })
	inv := &invalidatorMock{}
	return NewRepositoryAdapter(repos, inv), repos, inv
}

func TestRepositoryAdapter_Feeds(t *testing.T) {
	adapter, _, inv := setupAdapter(t)
	ctx := context.Background()

	feed := &domain.Feed{CategoryID: "tech", URL: "https://go.dev/blog/feed.atom", Title: "Go Blog",
		FetchInterval: time.Hour, Enabled: true}
	require.NoError(t, adapter.CreateFeed(ctx, feed))
	assert.NotZero(t, feed.ID)
	assert.Equal(t, 1, inv.calls)

	// duplicate url fails and doesn't invalidate
	require.Error(t, adapter.CreateFeed(ctx, &domain.Feed{URL: "https://go.dev/blog/feed.atom"}))
	assert.Equal(t, 1, inv.calls)

	feeds, err := adapter.GetFeeds(ctx)
	require.NoError(t, err)
	require.Len(t, feeds, 1)
	assert.Equal(t, "Go Blog", feeds[0].Title)

	require.NoError(t, adapter.DeleteFeed(ctx, feed.ID))
	assert.Equal(t, 2, inv.calls)
	require.ErrorIs(t, adapter.DeleteFeed(ctx, feed.ID), repository.ErrNotFound)
	assert.Equal(t, 2, inv.calls)
}

func TestRepositoryAdapter_Articles(t *testing.T) {
	adapter, repos, _ := setupAdapter(t)
	ctx := context.Background()

	feed := &domain.Feed{CategoryID: "news", URL: "https://example.com/rss", Title: "Example", Enabled: true}
	require.NoError(t, adapter.CreateFeed(ctx, feed))
	article := &domain.Article{FeedID: feed.ID, GUID: "a1", Subject: "hello", Published: time.Now()}
	require.NoError(t, repos.Article.CreateArticle(ctx, article))

	got, err := adapter.GetArticle(ctx, article.ID)
	require.NoError(t, err)
	assert.Equal(t, "hello", got.Subject)
	require.NotNil(t, got.Feed)
	assert.Equal(t, "news", got.Feed.CategoryID)

	require.NoError(t, adapter.UpdateArticleStatus(ctx, article.ID, domain.StatusRead))
	require.NoError(t, adapter.UpdateArticleStar(ctx, article.ID, true))
	got, err = adapter.GetArticle(ctx, article.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusRead, got.Status)
	assert.True(t, got.Starred)

	_, err = adapter.GetArticle(ctx, 999)
	require.ErrorIs(t, err, repository.ErrNotFound)
	require.ErrorIs(t, adapter.UpdateArticleStar(ctx, 999, true), repository.ErrNotFound)
}

func TestRepositoryAdapter_NilInvalidator(t *testing.T) {
	_, repos, _ := setupAdapter(t)
	adapter := NewRepositoryAdapter(repos, nil)
	require.NoError(t, adapter.CreateFeed(context.Background(), &domain.Feed{URL: "https://a.example.com", Enabled: true}))
}

func TestRepositoryAdapter_Ping(t *testing.T) {
	adapter, repos, _ := setupAdapter(t)
	require.NoError(t, adapter.Ping(context.Background()))
	require.NoError(t, repos.Close())
	assert.Error(t, adapter.Ping(context.Background()))
}
