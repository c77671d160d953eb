package server

import (
	"context"

	"github.com/umputun/readlist/pkg/domain"
	"github.com/umputun/readlist/pkg/repository"
)

// FeedsInvalidator is notified when the set of feeds changes
type FeedsInvalidator interface {
	Invalidate()
}

// RepositoryAdapter adapts repositories to server.Database interface
type RepositoryAdapter struct {
	repos *repository.Repositories
	feeds FeedsInvalidator
}

// NewRepositoryAdapter creates a new repository adapter. The invalidator may be nil,
// otherwise it is called after every feed creation or removal.
func NewRepositoryAdapter(repos *repository.Repositories, feeds FeedsInvalidator) *RepositoryAdapter {
	return &RepositoryAdapter{repos: repos, feeds: feeds}
}

// GetArticle returns an article with its feed
func (r *RepositoryAdapter) GetArticle(ctx context.Context, id int64) (*domain.Article, error) {
	return r.repos.Article.GetArticleWithFeed(ctx, id)
}

// UpdateArticleStatus sets article status
func (r *RepositoryAdapter) UpdateArticleStatus(ctx context.Context, id int64, status string) error {
	return r.repos.Article.UpdateArticleStatus(ctx, id, status)
}

// UpdateArticleStar sets or clears the starred indicator
func (r *RepositoryAdapter) UpdateArticleStar(ctx context.Context, id int64, starred bool) error {
	return r.repos.Article.UpdateArticleStar(ctx, id, starred)
}

// GetFeeds returns all feeds, enabled or not
func (r *RepositoryAdapter) GetFeeds(ctx context.Context) ([]*domain.Feed, error) {
	return r.repos.Feed.GetFeeds(ctx, false)
}

// CreateFeed stores a new feed
func (r *RepositoryAdapter) CreateFeed(ctx context.Context, feed *domain.Feed) error {
	if err := r.repos.Feed.CreateFeed(ctx, feed); err != nil {
		return err
	}
	r.invalidate()
	return nil
}

// DeleteFeed removes a feed with its articles
func (r *RepositoryAdapter) DeleteFeed(ctx context.Context, id int64) error {
	if err := r.repos.Feed.DeleteFeed(ctx, id); err != nil {
		return err
	}
	r.invalidate()
	return nil
}

// Ping checks the database connection
func (r *RepositoryAdapter) Ping(ctx context.Context) error {
	return r.repos.Ping(ctx)
}

func (r *RepositoryAdapter) invalidate() {
	if r.feeds != nil {
		r.feeds.Invalidate()
	}
}
