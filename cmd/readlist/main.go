package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"github.com/umputun/readlist/pkg/config"
	"github.com/umputun/readlist/pkg/domain"
	"github.com/umputun/readlist/pkg/feed"
	"github.com/umputun/readlist/pkg/listing"
	"github.com/umputun/readlist/pkg/repository"
	"github.com/umputun/readlist/pkg/scheduler"
	"github.com/umputun/readlist/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"c" long:"config" env:"CONFIG" description:"configuration file, defaults used if not set"`
	Listen string `short:"l" long:"listen" env:"LISTEN" description:"listen address, overrides config"`
	DB     string `long:"db" env:"DB" description:"database DSN, overrides config"`

	// common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	if opts.NoColor {
		color.NoColor = true
	}
	setupLog(opts.Debug)
	log.Printf("[INFO] starting readlist version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[INFO] termination signal received")
		cancel()
	}()

	err := run(ctx, opts)
	cancel()
	if err != nil {
		log.Printf("[ERROR] %v", err)
		os.Exit(1)
	}
	log.Print("[INFO] shutdown complete")
}

// run wires storage, listing, refresher and server, blocking until ctx is canceled
func run(ctx context.Context, opts Opts) error {
	cfg := config.Default()
	if opts.Config != "" {
		var err error
		if cfg, err = config.Load(opts.Config); err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
	}
	if opts.Listen != "" {
		cfg.Server.Listen = opts.Listen
	}
	if opts.DB != "" {
		cfg.Database.DSN = opts.DB
	}

	repos, err := repository.NewRepositories(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if err := repos.Close(); err != nil {
			log.Printf("[WARN] failed to close database: %v", err)
		}
	}()

	if err := bootstrapFeeds(ctx, repos.Feed, cfg.Feeds); err != nil {
		return fmt.Errorf("failed to add configured feeds: %w", err)
	}

	feedCache := listing.NewFeedCache(repos.Feed, cfg.Cache.FeedsTTL)
	lister := listing.NewService(feedCache, repos.Article, repos.Setting)

	refresher := scheduler.NewRefresher(repos.Feed, repos.Article,
		feed.NewParser(cfg.Refresh.Timeout, cfg.Refresh.UserAgent),
		scheduler.Config{Interval: cfg.Refresh.Interval, MaxWorkers: cfg.Refresh.MaxWorkers})
	if cfg.Refresh.Enabled {
		refresher.Start(ctx)
		defer refresher.Stop()
	}

	srv := server.New(cfg, server.NewRepositoryAdapter(repos, feedCache), lister, refresher, revision, opts.Debug)
	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// feedCreator is the part of feed storage used to add configured feeds
type feedCreator interface {
	GetFeedByURL(ctx context.Context, url string) (*domain.Feed, error)
	CreateFeed(ctx context.Context, feed *domain.Feed) error
}

// bootstrapFeeds adds configured feeds not stored yet, known feeds are left as they are
func bootstrapFeeds(ctx context.Context, store feedCreator, feeds []config.FeedConfig) error {
	for _, fc := range feeds {
		_, err := store.GetFeedByURL(ctx, fc.URL)
		if err == nil {
			continue
		}
		if !errors.Is(err, repository.ErrNotFound) {
			return err
		}

		f := &domain.Feed{
			CategoryID:    fc.Category,
			URL:           fc.URL,
			Title:         fc.Title,
			FetchInterval: time.Duration(fc.FetchInterval) * time.Minute,
			Enabled:       true,
		}
		if err := store.CreateFeed(ctx, f); err != nil {
			return err
		}
		log.Printf("[INFO] added feed %s (%s)", fc.URL, fc.Category)
	}
	return nil
}

func setupLog(dbg bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.CallerFile, lgr.CallerFunc, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	colorizer := lgr.Mapper{
		ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
		WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
		InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
		DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
		CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
		TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
	}
	logOpts = append(logOpts, lgr.Map(colorizer))
	if len(secs) > 0 {
		logOpts = append(logOpts, lgr.Secret(secs...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
