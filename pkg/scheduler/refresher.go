// Package scheduler keeps feeds fresh, fetching due feeds periodically and storing their new articles
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/errgroup"

	"github.com/umputun/readlist/pkg/domain"
)

//go:generate moq -out mocks/feed_store.go -pkg mocks -skip-ensure -fmt goimports . FeedStore
//go:generate moq -out mocks/article_store.go -pkg mocks -skip-ensure -fmt goimports . ArticleStore
//go:generate moq -out mocks/parser.go -pkg mocks -skip-ensure -fmt goimports . Parser

// FeedStore is the feed side of the storage
type FeedStore interface {
	GetFeed(ctx context.Context, id int64) (*domain.Feed, error)
	GetFeedsToFetch(ctx context.Context, limit int) ([]*domain.Feed, error)
	UpdateFeedFetched(ctx context.Context, feedID int64, nextFetch time.Time) error
	UpdateFeedError(ctx context.Context, feedID int64, errMsg string) error
}

// ArticleStore is the article side of the storage
type ArticleStore interface {
	ArticleExists(ctx context.Context, feedID int64, guid string) (bool, error)
	CreateArticle(ctx context.Context, article *domain.Article) error
}

// Parser fetches and parses a feed
type Parser interface {
	Parse(ctx context.Context, url string) (*domain.ParsedFeed, error)
}

// Config holds refresher configuration
type Config struct {
	Interval   time.Duration // how often due feeds are checked
	MaxWorkers int           // feeds fetched concurrently
	BatchSize  int           // max feeds picked per check
}

// Refresher periodically fetches feeds due for an update and stores new articles as unread
type Refresher struct {
	feeds    FeedStore
	articles ArticleStore
	parser   Parser

	interval   time.Duration
	maxWorkers int
	batchSize  int

	wg     sync.WaitGroup
	cancel context.CancelFunc
}

// NewRefresher creates a refresher, zero config values replaced by defaults
func NewRefresher(feeds FeedStore, articles ArticleStore, parser Parser, cfg Config) *Refresher {
	if cfg.Interval == 0 {
		cfg.Interval = 5 * time.Minute
	}
	if cfg.MaxWorkers <= 0 {
		cfg.MaxWorkers = 5
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 100
	}
	return &Refresher{
		feeds:      feeds,
		articles:   articles,
		parser:     parser,
		interval:   cfg.Interval,
		maxWorkers: cfg.MaxWorkers,
		batchSize:  cfg.BatchSize,
	}
}

// Start runs refresh cycles in background, the first one right away
func (r *Refresher) Start(ctx context.Context) {
	ctx, r.cancel = context.WithCancel(ctx)

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		ticker := time.NewTicker(r.interval)
		defer ticker.Stop()

		r.RefreshDue(ctx)
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				r.RefreshDue(ctx)
			}
		}
	}()

	lgr.Printf("[INFO] refresher started with interval %v, %d workers", r.interval, r.maxWorkers)
}

// Stop cancels the running cycle and waits for it
func (r *Refresher) Stop() {
	if r.cancel != nil {
		r.cancel()
	}
	r.wg.Wait()
	lgr.Printf("[INFO] refresher stopped")
}

// RefreshDue fetches all enabled feeds due for an update, concurrently up to the workers limit
func (r *Refresher) RefreshDue(ctx context.Context) {
	feeds, err := r.feeds.GetFeedsToFetch(ctx, r.batchSize)
	if err != nil {
		lgr.Printf("[ERROR] failed to get feeds to fetch: %v", err)
		return
	}
	if len(feeds) == 0 {
		return
	}
	lgr.Printf("[DEBUG] refreshing %d feeds", len(feeds))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.maxWorkers)
	for _, f := range feeds {
		g.Go(func() error {
			if _, err := r.refresh(gctx, f); err != nil {
				lgr.Printf("[WARN] %v", err)
			}
			return nil
		})
	}
	_ = g.Wait()
}

// RefreshFeed fetches a single feed right away, regardless of its schedule
func (r *Refresher) RefreshFeed(ctx context.Context, feedID int64) error {
	f, err := r.feeds.GetFeed(ctx, feedID)
	if err != nil {
		return fmt.Errorf("refresh feed %d: %w", feedID, err)
	}
	_, err = r.refresh(ctx, f)
	return err
}

// refresh fetches the feed and stores unseen articles, returning the number added.
// Fetch failures are recorded on the feed.
func (r *Refresher) refresh(ctx context.Context, f *domain.Feed) (int, error) {
	parsed, err := r.parser.Parse(ctx, f.URL)
	if err != nil {
		if uerr := r.feeds.UpdateFeedError(ctx, f.ID, err.Error()); uerr != nil {
			lgr.Printf("[WARN] failed to record error for feed %s: %v", f.URL, uerr)
		}
		return 0, fmt.Errorf("fetch feed %s: %w", f.URL, err)
	}

	added := 0
	for _, item := range parsed.Items {
		exists, err := r.articles.ArticleExists(ctx, f.ID, item.GUID)
		if err != nil {
			lgr.Printf("[WARN] failed to check article %s of feed %s: %v", item.GUID, f.URL, err)
			continue
		}
		if exists {
			continue
		}

		published := item.Published
		if published.IsZero() {
			published = time.Now()
		}
		article := &domain.Article{
			FeedID:    f.ID,
			GUID:      item.GUID,
			Subject:   item.Title,
			Content:   item.Content,
			Link:      item.Link,
			Author:    item.Author,
			Status:    domain.StatusUnread,
			Published: published,
		}
		if err := r.articles.CreateArticle(ctx, article); err != nil {
			lgr.Printf("[WARN] failed to store article %s of feed %s: %v", item.GUID, f.URL, err)
			continue
		}
		added++
	}

	if err := r.feeds.UpdateFeedFetched(ctx, f.ID, time.Now().Add(f.FetchInterval)); err != nil {
		lgr.Printf("[WARN] failed to update fetch time of feed %s: %v", f.URL, err)
	}
	if added > 0 {
		lgr.Printf("[INFO] added %d articles from feed %s", added, f.URL)
	}
	return added, nil
}
