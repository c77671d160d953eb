package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/jmoiron/sqlx"

	"github.com/umputun/readlist/pkg/domain"
)

// FeedRepository handles feed-related database operations
type FeedRepository struct {
	db *sqlx.DB
}

// feedSQL represents a feed for SQL operations
type feedSQL struct {
	ID            int64      `db:"id"`
	CategoryID    string     `db:"category_id"`
	URL           string     `db:"url"`
	Title         string     `db:"title"`
	Description   string     `db:"description"`
	LastFetched   *time.Time `db:"last_fetched"`
	NextFetch     *time.Time `db:"next_fetch"`
	FetchInterval int        `db:"fetch_interval"` // seconds
	ErrorCount    int        `db:"error_count"`
	LastError     string     `db:"last_error"`
	Enabled       bool       `db:"enabled"`
	CreatedAt     time.Time  `db:"created_at"`
}

// NewFeedRepository creates a new feed repository
func NewFeedRepository(database *sqlx.DB) *FeedRepository {
	return &FeedRepository{db: database}
}

// CreateFeed inserts a new feed
func (r *FeedRepository) CreateFeed(ctx context.Context, feed *domain.Feed) error {
	sqlFeed := &feedSQL{
		CategoryID:    feed.CategoryID,
		URL:           feed.URL,
		Title:         feed.Title,
		Description:   feed.Description,
		FetchInterval: int(feed.FetchInterval.Seconds()),
		Enabled:       feed.Enabled,
	}

	query := `
		INSERT INTO feeds (category_id, url, title, description, fetch_interval, enabled)
		VALUES (:category_id, :url, :title, :description, :fetch_interval, :enabled)
	`
	result, err := r.db.NamedExecContext(ctx, query, sqlFeed)
	if err != nil {
		return fmt.Errorf("create feed: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get insert id: %w", err)
	}

	feed.ID = id
	return nil
}

// GetFeed retrieves a feed by ID
func (r *FeedRepository) GetFeed(ctx context.Context, id int64) (*domain.Feed, error) {
	var sqlFeed feedSQL
	err := r.db.GetContext(ctx, &sqlFeed, "SELECT * FROM feeds WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get feed %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get feed: %w", err)
	}
	return r.toDomainFeed(&sqlFeed), nil
}

// GetFeedByURL retrieves a feed by its source URL
func (r *FeedRepository) GetFeedByURL(ctx context.Context, url string) (*domain.Feed, error) {
	var sqlFeed feedSQL
	err := r.db.GetContext(ctx, &sqlFeed, "SELECT * FROM feeds WHERE url = ?", url)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get feed %s: %w", url, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get feed by url: %w", err)
	}
	return r.toDomainFeed(&sqlFeed), nil
}

// GetFeeds retrieves feeds with optional filtering
func (r *FeedRepository) GetFeeds(ctx context.Context, enabledOnly bool) ([]*domain.Feed, error) {
	query := "SELECT * FROM feeds"
	if enabledOnly {
		query += " WHERE enabled = 1"
	}
	query += " ORDER BY category_id, title"

	var sqlFeeds []feedSQL
	err := r.db.SelectContext(ctx, &sqlFeeds, query)
	if err != nil {
		return nil, fmt.Errorf("get feeds: %w", err)
	}

	feeds := make([]*domain.Feed, len(sqlFeeds))
	for i, f := range sqlFeeds {
		feeds[i] = r.toDomainFeed(&f)
	}
	return feeds, nil
}

// GetFeedsToFetch retrieves enabled feeds due for an update
func (r *FeedRepository) GetFeedsToFetch(ctx context.Context, limit int) ([]*domain.Feed, error) {
	query := `
		SELECT * FROM feeds
		WHERE enabled = 1
		AND (next_fetch IS NULL OR next_fetch <= ?)
		ORDER BY next_fetch ASC
		LIMIT ?
	`
	var sqlFeeds []feedSQL
	err := r.db.SelectContext(ctx, &sqlFeeds, query, time.Now().UTC(), limit)
	if err != nil {
		return nil, fmt.Errorf("get feeds to fetch: %w", err)
	}

	feeds := make([]*domain.Feed, len(sqlFeeds))
	for i, f := range sqlFeeds {
		feeds[i] = r.toDomainFeed(&f)
	}
	return feeds, nil
}

// FeedIDsByCategory returns ids of feeds in the category, or all feed ids for the wildcard.
// The category is matched with LIKE, so it may be a pattern itself.
func (r *FeedRepository) FeedIDsByCategory(ctx context.Context, categoryID string) ([]int64, error) {
	query := "SELECT id FROM feeds"
	var args []interface{}
	if categoryID != domain.Wildcard {
		query += " WHERE category_id LIKE ?"
		args = append(args, categoryID)
	}
	query += " ORDER BY id"

	ids := []int64{}
	if err := r.db.SelectContext(ctx, &ids, query, args...); err != nil {
		return nil, fmt.Errorf("get feed ids by category: %w", err)
	}
	return ids, nil
}

// UpdateFeedFetched updates feed after successful fetch
func (r *FeedRepository) UpdateFeedFetched(ctx context.Context, feedID int64, nextFetch time.Time) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		query := `
			UPDATE feeds
			SET last_fetched = ?,
			    next_fetch = ?,
			    error_count = 0,
			    last_error = ''
			WHERE id = ?
		`
		_, err := r.db.ExecContext(ctx, query, time.Now().UTC(), nextFetch.UTC(), feedID)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("update feed fetched: %w", err)}
		}
		return nil
	}, errCritical)
}

// UpdateFeedError updates feed after fetch error
func (r *FeedRepository) UpdateFeedError(ctx context.Context, feedID int64, errMsg string) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		query := `
			UPDATE feeds
			SET error_count = error_count + 1,
			    last_error = ?
			WHERE id = ?
		`
		_, err := r.db.ExecContext(ctx, query, errMsg, feedID)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("update feed error: %w", err)}
		}
		return nil
	}, errCritical)
}

// DeleteFeed removes a feed and all its articles
func (r *FeedRepository) DeleteFeed(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM feeds WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete feed: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete feed rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("delete feed %d: %w", id, ErrNotFound)
	}
	return nil
}

// toDomainFeed converts feedSQL to domain.Feed
func (r *FeedRepository) toDomainFeed(sqlFeed *feedSQL) *domain.Feed {
	return &domain.Feed{
		ID:            sqlFeed.ID,
		CategoryID:    sqlFeed.CategoryID,
		URL:           sqlFeed.URL,
		Title:         sqlFeed.Title,
		Description:   sqlFeed.Description,
		LastFetched:   sqlFeed.LastFetched,
		NextFetch:     sqlFeed.NextFetch,
		FetchInterval: time.Duration(sqlFeed.FetchInterval) * time.Second,
		ErrorCount:    sqlFeed.ErrorCount,
		LastError:     sqlFeed.LastError,
		Enabled:       sqlFeed.Enabled,
		CreatedAt:     sqlFeed.CreatedAt,
	}
}
