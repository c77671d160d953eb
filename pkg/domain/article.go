package domain

import "time"

// article status values, any other value stored in the status column is kept as is
const (
	StatusUnread = "unread"
	StatusRead   = "read"
	// StatusStar is not stored, it selects articles by the starred indicator instead of status
	StatusStar = "star"
)

// Article represents a single item of a feed
type Article struct {
	ID        int64
	FeedID    int64
	GUID      string
	Subject   string
	Content   string
	Link      string
	Author    string
	Status    string
	Starred   bool
	Published time.Time
	CreatedAt time.Time

	// Feed is set only by lookups joining the owning feed
	Feed *Feed
}

// ArticleQuery is the second stage of the listing query, selecting article ids
// of the given feeds. Search is a LIKE pattern, "*" disables the text match.
type ArticleQuery struct {
	FeedIDs []int64
	Status  string
	Search  string
	Sort    string
}

// Wildcard matches any category, feed or search text in a listing filter
const Wildcard = "*"
