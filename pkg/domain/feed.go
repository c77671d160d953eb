package domain

import "time"

// Feed represents a news feed source
type Feed struct {
	ID            int64
	CategoryID    string
	URL           string
	Title         string
	Description   string
	LastFetched   *time.Time
	NextFetch     *time.Time
	FetchInterval time.Duration
	ErrorCount    int
	LastError     string
	Enabled       bool
	CreatedAt     time.Time
}

// ParsedFeed is a feed as fetched from its source, before storage
type ParsedFeed struct {
	Title       string
	Description string
	Link        string
	Items       []ParsedItem
}

// ParsedItem is a single entry of a ParsedFeed
type ParsedItem struct {
	GUID      string
	Title     string
	Link      string
	Content   string
	Author    string
	Published time.Time
}
