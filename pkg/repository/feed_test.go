package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/readlist/pkg/domain"
)

func TestFeedRepository_GetFeedsToFetch(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()

	now := time.Now().UTC()
	past := now.Add(-2 * time.Hour)
	future := now.Add(2 * time.Hour)

	recentFeed := &domain.Feed{URL: "https://example.com/recent.xml", Title: "Recent", FetchInterval: time.Hour, Enabled: true}
	oldFeed := &domain.Feed{URL: "https://example.com/old.xml", Title: "Old", FetchInterval: time.Hour, Enabled: true}
	disabledFeed := &domain.Feed{URL: "https://example.com/disabled.xml", Title: "Disabled", FetchInterval: time.Hour}
	neverFetchedFeed := &domain.Feed{URL: "https://example.com/never.xml", Title: "Never", FetchInterval: time.Hour, Enabled: true}

	for _, feed := range []*domain.Feed{recentFeed, oldFeed, disabledFeed, neverFetchedFeed} {
		require.NoError(t, repos.Feed.CreateFeed(context.Background(), feed))
	}

	require.NoError(t, repos.Feed.UpdateFeedFetched(context.Background(), recentFeed.ID, future))
	require.NoError(t, repos.Feed.UpdateFeedFetched(context.Background(), oldFeed.ID, past))
	require.NoError(t, repos.Feed.UpdateFeedFetched(context.Background(), disabledFeed.ID, past))

	feedsToFetch, err := repos.Feed.GetFeedsToFetch(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, feedsToFetch, 2)

	urls := map[string]bool{}
	for _, f := range feedsToFetch {
		urls[f.URL] = true
	}
	assert.True(t, urls[oldFeed.URL])
	assert.True(t, urls[neverFetchedFeed.URL])

	t.Run("limit", func(t *testing.T) {
		limited, err := repos.Feed.GetFeedsToFetch(context.Background(), 1)
		require.NoError(t, err)
		assert.Len(t, limited, 1)
	})
}

func TestFeedRepository_UpdateFeedError(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()

	feed := &domain.Feed{URL: "https://example.com/feed.xml", Enabled: true}
	require.NoError(t, repos.Feed.CreateFeed(context.Background(), feed))

	require.NoError(t, repos.Feed.UpdateFeedError(context.Background(), feed.ID, "timeout"))
	require.NoError(t, repos.Feed.UpdateFeedError(context.Background(), feed.ID, "bad xml"))

	got, err := repos.Feed.GetFeed(context.Background(), feed.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.ErrorCount)
	assert.Equal(t, "bad xml", got.LastError)

	// successful fetch resets error state
	require.NoError(t, repos.Feed.UpdateFeedFetched(context.Background(), feed.ID, time.Now().Add(time.Hour)))
	got, err = repos.Feed.GetFeed(context.Background(), feed.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.ErrorCount)
	assert.Empty(t, got.LastError)
	require.NotNil(t, got.LastFetched)
	require.NotNil(t, got.NextFetch)
}

func TestFeedRepository_FeedIDsByCategory(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()

	f1 := &domain.Feed{CategoryID: "tech", URL: "https://example.com/f1.xml", Enabled: true}
	f2 := &domain.Feed{CategoryID: "news", URL: "https://example.com/f2.xml", Enabled: true}
	f3 := &domain.Feed{CategoryID: "tech-blogs", URL: "https://example.com/f3.xml"}
	for _, f := range []*domain.Feed{f1, f2, f3} {
		require.NoError(t, repos.Feed.CreateFeed(context.Background(), f))
	}

	tests := []struct {
		name     string
		category string
		want     []int64
	}{
		{name: "wildcard returns all feeds", category: "*", want: []int64{f1.ID, f2.ID, f3.ID}},
		{name: "exact category", category: "news", want: []int64{f2.ID}},
		{name: "category is a like pattern", category: "tech%", want: []int64{f1.ID, f3.ID}},
		{name: "plain value matches only equal categories", category: "tech", want: []int64{f1.ID}},
		{name: "unknown category", category: "sports", want: []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ids, err := repos.Feed.FeedIDsByCategory(context.Background(), tt.category)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestFeedRepository_GetFeedByURLAndDelete(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()

	feed := &domain.Feed{URL: "https://example.com/feed.xml", Title: "Feed", CategoryID: "news", Enabled: true}
	require.NoError(t, repos.Feed.CreateFeed(context.Background(), feed))

	got, err := repos.Feed.GetFeedByURL(context.Background(), feed.URL)
	require.NoError(t, err)
	assert.Equal(t, feed.ID, got.ID)

	_, err = repos.Feed.GetFeedByURL(context.Background(), "https://example.com/other.xml")
	require.ErrorIs(t, err, ErrNotFound)

	// duplicate url rejected
	err = repos.Feed.CreateFeed(context.Background(), &domain.Feed{URL: feed.URL})
	require.Error(t, err)

	feeds, err := repos.Feed.GetFeeds(context.Background(), true)
	require.NoError(t, err)
	assert.Len(t, feeds, 1)

	require.NoError(t, repos.Feed.DeleteFeed(context.Background(), feed.ID))
	require.ErrorIs(t, repos.Feed.DeleteFeed(context.Background(), feed.ID), ErrNotFound)
}
