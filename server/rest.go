package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/umputun/readlist/pkg/domain"
	"github.com/umputun/readlist/pkg/listing"
	"github.com/umputun/readlist/pkg/repository"
)

// articleView is the JSON form of an article, feed is set by the detail lookup
type articleView struct {
	ID        int64     `json:"id"`
	FeedID    int64     `json:"feedId"`
	GUID      string    `json:"guid"`
	Subject   string    `json:"subject"`
	Content   string    `json:"content"`
	Link      string    `json:"link"`
	Author    string    `json:"author"`
	Status    string    `json:"status"`
	StarInd   int       `json:"starInd"`
	Published time.Time `json:"published"`
	Feed      *feedView `json:"feed,omitempty"`
}

// feedView is the JSON form of a feed
type feedView struct {
	ID            int64      `json:"id"`
	CategoryID    string     `json:"categoryId"`
	URL           string     `json:"url"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	FetchInterval int        `json:"fetchInterval,omitempty"` // minutes
	LastFetched   *time.Time `json:"lastFetched,omitempty"`
	LastError     string     `json:"lastError,omitempty"`
	Enabled       bool       `json:"enabled"`
}

// createFeedRequest is the body of feed creation
type createFeedRequest struct {
	URL           string `json:"url"`
	Title         string `json:"title"`
	CategoryID    string `json:"categoryId"`
	FetchInterval int    `json:"fetchInterval"` // minutes
}

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]any{
		"status":   "ok",
		"version":  s.version,
		"time":     time.Now().UTC(),
		"database": "ok",
	}
	if err := s.db.Ping(r.Context()); err != nil {
		log.Printf("[WARN] database ping failed: %v", err)
		status["status"] = "degraded"
		status["database"] = err.Error()
	}
	renderJSON(w, r, http.StatusOK, status)
}

// listArticlesHandler returns ids of articles matching the listing filter. The effective filter
// is written to settings after the response is sent, a failure there is only logged.
func (s *Server) listArticlesHandler(w http.ResponseWriter, r *http.Request) {
	resp, filter, err := s.lister.List(r.Context(), listParams(r))
	if err != nil {
		log.Printf("[ERROR] failed to list articles: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	renderJSON(w, r, http.StatusOK, resp)
	if f, ok := w.(http.Flusher); ok {
		f.Flush()
	}

	if !s.trackPersist() {
		log.Printf("[WARN] server is closed, listing filter not persisted")
		return
	}
	go func(ctx context.Context) {
		defer s.persistWg.Done()
		if err := s.lister.Persist(ctx, filter); err != nil {
			log.Printf("[WARN] failed to persist listing filter: %v", err)
		}
	}(context.WithoutCancel(r.Context()))
}

// listParams extracts listing parameters from the query, repeated feedId values are joined
func listParams(r *http.Request) listing.Params {
	q := r.URL.Query()
	return listing.Params{
		FirstLoad:  q.Has("firstLoad"),
		CategoryID: q.Get("categoryId"),
		FeedID:     strings.Join(q["feedId"], ","),
		Status:     q.Get("status"),
		Sort:       q.Get("sort"),
		Search:     q.Get("search"),
	}
}

// getArticleHandler returns a single article with its feed
func (s *Server) getArticleHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "articleId")
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	article, err := s.db.GetArticle(r.Context(), id)
	if err != nil {
		s.renderStorageError(w, r, err, "get article")
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]any{"article": toArticleView(article)})
}

// updateArticleStatusHandler sets article status, taken from form or query value "status"
func (s *Server) updateArticleStatusHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "articleId")
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	status := strings.TrimSpace(r.FormValue("status"))
	if status == "" {
		renderError(w, r, errors.New("status is required"), http.StatusBadRequest)
		return
	}
	if status == domain.StatusStar {
		renderError(w, r, errors.New("use the star endpoint to star an article"), http.StatusBadRequest)
		return
	}

	if err := s.db.UpdateArticleStatus(r.Context(), id, status); err != nil {
		s.renderStorageError(w, r, err, "update article status")
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]any{"id": id, "status": status})
}

func (s *Server) starArticleHandler(w http.ResponseWriter, r *http.Request) {
	s.setStar(w, r, true)
}

func (s *Server) unstarArticleHandler(w http.ResponseWriter, r *http.Request) {
	s.setStar(w, r, false)
}

func (s *Server) setStar(w http.ResponseWriter, r *http.Request, starred bool) {
	id, err := pathID(r, "articleId")
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	if err := s.db.UpdateArticleStar(r.Context(), id, starred); err != nil {
		s.renderStorageError(w, r, err, "update article star")
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]any{"id": id, "starred": starred})
}

// listFeedsHandler returns all feeds
func (s *Server) listFeedsHandler(w http.ResponseWriter, r *http.Request) {
	feeds, err := s.db.GetFeeds(r.Context())
	if err != nil {
		log.Printf("[ERROR] failed to get feeds: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	res := make([]feedView, 0, len(feeds))
	for _, f := range feeds {
		res = append(res, toFeedView(f))
	}
	renderJSON(w, r, http.StatusOK, map[string]any{"feeds": res})
}

// createFeedHandler handles feed creation
func (s *Server) createFeedHandler(w http.ResponseWriter, r *http.Request) {
	var req createFeedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body: %w", err), http.StatusBadRequest)
		return
	}

	req.URL = strings.TrimSpace(req.URL)
	if req.URL == "" {
		renderError(w, r, errors.New("feed URL is required"), http.StatusBadRequest)
		return
	}

	fetchInterval := 30 * time.Minute // default 30 minutes
	if req.FetchInterval > 0 {
		fetchInterval = time.Duration(req.FetchInterval) * time.Minute
	}

	feed := &domain.Feed{
		CategoryID:    req.CategoryID,
		URL:           req.URL,
		Title:         req.Title,
		FetchInterval: fetchInterval,
		Enabled:       true,
	}

	if err := s.db.CreateFeed(r.Context(), feed); err != nil {
		log.Printf("[ERROR] failed to create feed: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	log.Printf("[INFO] created feed %d, %s", feed.ID, feed.URL)

	renderJSON(w, r, http.StatusCreated, map[string]any{"feed": toFeedView(feed)})
}

// deleteFeedHandler removes a feed with all its articles
func (s *Server) deleteFeedHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	if err := s.db.DeleteFeed(r.Context(), id); err != nil {
		s.renderStorageError(w, r, err, "delete feed")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// refreshFeedHandler fetches a feed right away
func (s *Server) refreshFeedHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	if err := s.scheduler.RefreshFeed(r.Context(), id); err != nil {
		s.renderStorageError(w, r, err, "refresh feed")
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]any{"id": id, "refreshed": true})
}

// renderStorageError responds 404 for missing records and 500 for anything else
func (s *Server) renderStorageError(w http.ResponseWriter, r *http.Request, err error, op string) {
	if errors.Is(err, repository.ErrNotFound) {
		renderError(w, r, err, http.StatusNotFound)
		return
	}
	log.Printf("[ERROR] failed to %s: %v", op, err)
	renderError(w, r, err, http.StatusInternalServerError)
}

func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s %q", name, r.PathValue(name))
	}
	return id, nil
}

func toArticleView(a *domain.Article) articleView {
	res := articleView{
		ID:        a.ID,
		FeedID:    a.FeedID,
		GUID:      a.GUID,
		Subject:   a.Subject,
		Content:   a.Content,
		Link:      a.Link,
		Author:    a.Author,
		Status:    a.Status,
		Published: a.Published,
	}
	if a.Starred {
		res.StarInd = 1
	}
	if a.Feed != nil {
		fv := toFeedView(a.Feed)
		res.Feed = &fv
	}
	return res
}

func toFeedView(f *domain.Feed) feedView {
	return feedView{
		ID:            f.ID,
		CategoryID:    f.CategoryID,
		URL:           f.URL,
		Title:         f.Title,
		Description:   f.Description,
		FetchInterval: int(f.FetchInterval.Minutes()),
		LastFetched:   f.LastFetched,
		LastError:     f.LastError,
		Enabled:       f.Enabled,
	}
}
