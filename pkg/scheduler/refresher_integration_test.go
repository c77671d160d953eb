package scheduler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/readlist/pkg/domain"
	"github.com/umputun/readlist/pkg/feed"
	"github.com/umputun/readlist/pkg/repository"
)

func TestRefresher_Integration(t *testing.T) {
	rss := `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
<channel>
	<title>Go News</title>
	<item><title>Go 1.24 released</title><link>https://example.com/1</link><guid>1</guid>
		<description>generic type aliases</description><pubDate>Tue, 11 Feb 2025 10:00:00 +0000</pubDate></item>
	<item><title>Swiss tables</title><link>https://example.com/2</link><guid>2</guid>
		<description>faster maps</description><pubDate>Wed, 12 Feb 2025 10:00:00 +0000</pubDate></item>
</channel>
</rss>`
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(rss))
	}))
	defer ts.Close()

	ctx := context.Background()
	repos, err := repository.NewRepositories(ctx, repository.Config{DSN: ":memory:", MaxOpenConns: 1})
	require.NoError(t, err)
	defer repos.Close()

	f := &domain.Feed{CategoryID: "go", URL: ts.URL, Title: "Go News", FetchInterval: time.Hour, Enabled: true}
	require.NoError(t, repos.Feed.CreateFeed(ctx, f))

	r := NewRefresher(repos.Feed, repos.Article, feed.NewParser(5*time.Second, "readlist-test"), Config{MaxWorkers: 2})
	r.RefreshDue(ctx)

	ids, err := repos.Article.ArticleIDs(ctx, domain.ArticleQuery{FeedIDs: []int64{f.ID}, Status: domain.StatusUnread,
		Search: domain.Wildcard, Sort: "DESC"})
	require.NoError(t, err)
	require.Len(t, ids, 2)

	newest, err := repos.Article.GetArticleWithFeed(ctx, ids[0])
	require.NoError(t, err)
	assert.Equal(t, "Swiss tables", newest.Subject)
	assert.False(t, newest.Starred)

	// second refresh adds nothing, feed is no longer due
	due, err := repos.Feed.GetFeedsToFetch(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, due)

	require.NoError(t, r.RefreshFeed(ctx, f.ID))
	ids, err = repos.Article.ArticleIDs(ctx, domain.ArticleQuery{FeedIDs: []int64{f.ID}, Status: domain.StatusUnread,
		Search: domain.Wildcard, Sort: "ASC"})
	require.NoError(t, err)
	assert.Len(t, ids, 2)

	stored, err := repos.Feed.GetFeed(ctx, f.ID)
	require.NoError(t, err)
	assert.NotNil(t, stored.LastFetched)
	assert.Zero(t, stored.ErrorCount)
}
