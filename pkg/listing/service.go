// Package listing resolves the article listing filter and runs the two-stage listing query:
// feeds selected by category, then article ids of those feeds selected by status, search and sort.
// The resolved filter is persisted so a later first-load request can replay it.
package listing

import (
	"context"
	"fmt"
	"sync"

	"github.com/umputun/readlist/pkg/domain"
)

//go:generate moq -out mocks/feed_selector.go -pkg mocks -skip-ensure -fmt goimports . FeedSelector
//go:generate moq -out mocks/article_selector.go -pkg mocks -skip-ensure -fmt goimports . ArticleSelector
//go:generate moq -out mocks/settings_store.go -pkg mocks -skip-ensure -fmt goimports . SettingsStore

// FeedSelector selects feed ids by category, the wildcard selects all feeds
type FeedSelector interface {
	FeedIDsByCategory(ctx context.Context, categoryID string) ([]int64, error)
}

// ArticleSelector selects ordered article ids
type ArticleSelector interface {
	ArticleIDs(ctx context.Context, q domain.ArticleQuery) ([]int64, error)
}

// SettingsStore keeps the last used filter. ReplaceSettings clears everything and writes the given values.
type SettingsStore interface {
	GetSettings(ctx context.Context, keys []string) (map[string]string, error)
	ReplaceSettings(ctx context.Context, values map[string]string) error
}

// Service runs listing requests
type Service struct {
	feeds    FeedSelector
	articles ArticleSelector
	settings SettingsStore

	persistLock sync.Mutex // one settings rewrite at a time within the process
}

// Response is the listing payload, the query echoes the effective filter without search
type Response struct {
	Query   []QueryEcho `json:"query"`
	ItemIDs []int64     `json:"itemIds"`
}

// QueryEcho is the effective filter as reported back to the caller
type QueryEcho struct {
	CategoryID string `json:"categoryId"`
	FeedID     string `json:"feedId"`
	Sort       string `json:"sort"`
	Status     string `json:"status"`
}

// NewService makes a listing service
func NewService(feeds FeedSelector, articles ArticleSelector, settings SettingsStore) *Service {
	return &Service{feeds: feeds, articles: articles, settings: settings}
}

// List resolves the filter for params and returns the listing response with the filter used.
// Any storage error aborts the listing.
func (s *Service) List(ctx context.Context, params Params) (Response, Filter, error) {
	filter, err := s.Resolve(ctx, params)
	if err != nil {
		return Response{}, Filter{}, err
	}

	ids, err := s.Select(ctx, filter)
	if err != nil {
		return Response{}, Filter{}, err
	}

	return Assemble(filter, ids), filter, nil
}

// Resolve returns the effective filter, reading persisted settings only on first load
func (s *Service) Resolve(ctx context.Context, params Params) (Filter, error) {
	var persisted map[string]string
	if params.FirstLoad {
		var err error
		if persisted, err = s.settings.GetSettings(ctx, domain.SettingKeys); err != nil {
			return Filter{}, fmt.Errorf("read persisted filter: %w", err)
		}
	}
	return Resolve(params, persisted), nil
}

// Select runs the two-stage query for the filter. Explicit feed ids replace the category selection.
func (s *Service) Select(ctx context.Context, filter Filter) ([]int64, error) {
	feedIDs, ok := filter.FeedIDs()
	if !ok {
		var err error
		if feedIDs, err = s.feeds.FeedIDsByCategory(ctx, filter.CategoryID); err != nil {
			return nil, fmt.Errorf("select feeds: %w", err)
		}
	}

	ids, err := s.articles.ArticleIDs(ctx, domain.ArticleQuery{
		FeedIDs: feedIDs,
		Status:  filter.Status,
		Search:  filter.SearchPattern(),
		Sort:    filter.Sort,
	})
	if err != nil {
		return nil, fmt.Errorf("select articles: %w", err)
	}
	return ids, nil
}

// Persist replaces the stored filter with the given one. Rewrites from this process never
// interleave, writers from other processes resolve as last-writer-wins.
func (s *Service) Persist(ctx context.Context, filter Filter) error {
	s.persistLock.Lock()
	defer s.persistLock.Unlock()
	if err := s.settings.ReplaceSettings(ctx, filter.Settings()); err != nil {
		return fmt.Errorf("persist filter: %w", err)
	}
	return nil
}

// Assemble makes the listing response
func Assemble(filter Filter, ids []int64) Response {
	if ids == nil {
		ids = []int64{}
	}
	return Response{
		Query: []QueryEcho{{
			CategoryID: filter.CategoryID,
			FeedID:     filter.FeedID,
			Sort:       filter.Sort,
			Status:     filter.Status,
		}},
		ItemIDs: ids,
	}
}
