package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/umputun/readlist/pkg/domain"
	"github.com/umputun/readlist/pkg/listing"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/database.go -pkg mocks -skip-ensure -fmt goimports . Database
//go:generate moq -out mocks/lister.go -pkg mocks -skip-ensure -fmt goimports . Lister
//go:generate moq -out mocks/scheduler.go -pkg mocks -skip-ensure -fmt goimports . Scheduler

// Server represents HTTP server instance
type Server struct {
	config    ConfigProvider
	db        Database
	lister    Lister
	scheduler Scheduler
	version   string
	debug     bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
	persistWg  sync.WaitGroup // listing filters still being written after their response was sent
	closed     bool           // set once Run stops accepting filter writes, guarded by lock
}

// Database interface for article and feed operations
type Database interface {
	GetArticle(ctx context.Context, id int64) (*domain.Article, error)
	UpdateArticleStatus(ctx context.Context, id int64, status string) error
	UpdateArticleStar(ctx context.Context, id int64, starred bool) error
	GetFeeds(ctx context.Context) ([]*domain.Feed, error)
	CreateFeed(ctx context.Context, feed *domain.Feed) error
	DeleteFeed(ctx context.Context, id int64) error
	Ping(ctx context.Context) error
}

// Lister runs article listings and keeps the last used filter
type Lister interface {
	List(ctx context.Context, params listing.Params) (listing.Response, listing.Filter, error)
	Persist(ctx context.Context, filter listing.Filter) error
}

// Scheduler interface for on-demand operations
type Scheduler interface {
	RefreshFeed(ctx context.Context, feedID int64) error
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
}

// New initializes a new server instance
func New(cfg ConfigProvider, db Database, lister Lister, scheduler Scheduler, version string, debug bool) *Server {
	s := &Server{
		config:    cfg,
		db:        db,
		lister:    lister,
		scheduler: scheduler,
		version:   version,
		debug:     debug,
		router:    routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown.
// It returns after in-flight requests and pending filter writes are done.
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	log.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:              listen,
		Handler:           s.router,
		ReadHeaderTimeout: timeout,
		ReadTimeout:       timeout,
		WriteTimeout:      timeout,
	}
	s.lock.Unlock()

	shutdownDone := make(chan struct{})
	go func() {
		defer close(shutdownDone)
		<-ctx.Done()
		log.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	<-shutdownDone
	s.lock.Lock()
	s.closed = true
	s.lock.Unlock()
	s.persistWg.Wait()
	return nil
}

// trackPersist registers a pending filter write, false once the server is closed
func (s *Server) trackPersist() bool {
	s.lock.Lock()
	defer s.lock.Unlock()
	if s.closed {
		return false
	}
	s.persistWg.Add(1)
	return true
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("readlist", "umputun", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(1024 * 1024)) // 1MB
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)

		r.HandleFunc("GET /articles", s.listArticlesHandler)
		r.HandleFunc("GET /articles/{articleId}", s.getArticleHandler)
		r.HandleFunc("PUT /articles/{articleId}/status", s.updateArticleStatusHandler)
		r.HandleFunc("PUT /articles/{articleId}/star", s.starArticleHandler)
		r.HandleFunc("DELETE /articles/{articleId}/star", s.unstarArticleHandler)

		r.HandleFunc("GET /feeds", s.listFeedsHandler)
		r.HandleFunc("POST /feeds", s.createFeedHandler)
		r.HandleFunc("DELETE /feeds/{id}", s.deleteFeedHandler)
		r.HandleFunc("POST /feeds/{id}/refresh", s.refreshFeedHandler)
	})
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends error response as JSON
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	renderJSON(w, r, code, map[string]string{"error": errMsg})
}
