package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/jmoiron/sqlx"

	"github.com/umputun/readlist/pkg/domain"
)

// ArticleRepository handles article-related database operations
type ArticleRepository struct {
	db *sqlx.DB
}

// articleSQL represents an article for SQL operations
type articleSQL struct {
	ID        int64     `db:"id"`
	FeedID    int64     `db:"feed_id"`
	GUID      string    `db:"guid"`
	Subject   string    `db:"subject"`
	Content   string    `db:"content"`
	Link      string    `db:"link"`
	Author    string    `db:"author"`
	Status    string    `db:"status"`
	StarInd   int       `db:"star_ind"`
	Published time.Time `db:"published"`
	CreatedAt time.Time `db:"created_at"`
}

// articleWithFeedSQL is an article joined with its owning feed
type articleWithFeedSQL struct {
	articleSQL
	FeedCategoryID  string `db:"feed_category_id"`
	FeedURL         string `db:"feed_url"`
	FeedTitle       string `db:"feed_title"`
	FeedDescription string `db:"feed_description"`
	FeedEnabled     bool   `db:"feed_enabled"`
}

// NewArticleRepository creates a new article repository
func NewArticleRepository(database *sqlx.DB) *ArticleRepository {
	return &ArticleRepository{db: database}
}

// CreateArticle inserts a new article, retrying on lock errors
func (r *ArticleRepository) CreateArticle(ctx context.Context, article *domain.Article) error {
	status := article.Status
	if status == "" {
		status = domain.StatusUnread
	}
	sqlArticle := &articleSQL{
		FeedID:    article.FeedID,
		GUID:      article.GUID,
		Subject:   article.Subject,
		Content:   article.Content,
		Link:      article.Link,
		Author:    article.Author,
		Status:    status,
		StarInd:   starInd(article.Starred),
		Published: article.Published.UTC(),
	}

	query := `
		INSERT INTO articles (
			feed_id, guid, subject, content, link, author, status, star_ind, published
		) VALUES (
			:feed_id, :guid, :subject, :content, :link, :author, :status, :star_ind, :published
		)
	`

	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	var id int64
	err := retrier.Do(ctx, func() error {
		result, err := r.db.NamedExecContext(ctx, query, sqlArticle)
		if err != nil {
			if isLockError(err) {
				return err // repeater will retry this
			}
			return &criticalError{err: fmt.Errorf("create article: %w", err)}
		}
		if id, err = result.LastInsertId(); err != nil {
			return &criticalError{err: fmt.Errorf("get insert id: %w", err)}
		}
		return nil
	}, errCritical)
	if err != nil {
		return err
	}

	article.ID = id
	article.Status = status
	return nil
}

// ArticleExists checks if an article with the guid is already stored for the feed
func (r *ArticleRepository) ArticleExists(ctx context.Context, feedID int64, guid string) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists,
		"SELECT EXISTS(SELECT 1 FROM articles WHERE feed_id = ? AND guid = ?)",
		feedID, guid)
	if err != nil {
		return false, fmt.Errorf("check article exists: %w", err)
	}
	return exists, nil
}

// ArticleIDs returns ids of articles of the given feeds matching status and search, ordered by
// the published time in the query's sort direction. The "star" status selects starred articles
// regardless of their status. The search pattern is matched against subject or content.
func (r *ArticleRepository) ArticleIDs(ctx context.Context, q domain.ArticleQuery) ([]int64, error) {
	ids := []int64{}
	if len(q.FeedIDs) == 0 {
		return ids, nil
	}

	where := []string{"feed_id IN (?)"}
	args := []interface{}{q.FeedIDs}

	if q.Status == domain.StatusStar {
		where = append(where, "star_ind = 1")
	} else {
		where = append(where, "status = ?")
		args = append(args, q.Status)
	}

	if q.Search != "" && q.Search != domain.Wildcard {
		where = append(where, "(subject LIKE ? OR content LIKE ?)")
		args = append(args, q.Search, q.Search)
	}

	dir := sortDirection(q.Sort)
	query := fmt.Sprintf("SELECT id FROM articles WHERE %s ORDER BY published %s, id %s",
		strings.Join(where, " AND "), dir, dir)

	query, args, err := sqlx.In(query, args...)
	if err != nil {
		return nil, fmt.Errorf("expand article ids query: %w", err)
	}

	if err := r.db.SelectContext(ctx, &ids, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("get article ids: %w", err)
	}
	return ids, nil
}

// GetArticleWithFeed retrieves an article by ID together with its feed
func (r *ArticleRepository) GetArticleWithFeed(ctx context.Context, id int64) (*domain.Article, error) {
	query := `
		SELECT a.*,
		       f.category_id AS feed_category_id,
		       f.url AS feed_url,
		       f.title AS feed_title,
		       f.description AS feed_description,
		       f.enabled AS feed_enabled
		FROM articles a
		JOIN feeds f ON a.feed_id = f.id
		WHERE a.id = ?
	`
	var row articleWithFeedSQL
	err := r.db.GetContext(ctx, &row, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get article %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get article with feed: %w", err)
	}

	article := r.toDomainArticle(&row.articleSQL)
	article.Feed = &domain.Feed{
		ID:          row.FeedID,
		CategoryID:  row.FeedCategoryID,
		URL:         row.FeedURL,
		Title:       row.FeedTitle,
		Description: row.FeedDescription,
		Enabled:     row.FeedEnabled,
	}
	return article, nil
}

// UpdateArticleStatus sets the status of an article
func (r *ArticleRepository) UpdateArticleStatus(ctx context.Context, id int64, status string) error {
	res, err := r.db.ExecContext(ctx, "UPDATE articles SET status = ? WHERE id = ?", status, id)
	if err != nil {
		return fmt.Errorf("update article status: %w", err)
	}
	return checkAffected(res, "update article status", id)
}

// UpdateArticleStar sets or clears the starred indicator of an article
func (r *ArticleRepository) UpdateArticleStar(ctx context.Context, id int64, starred bool) error {
	res, err := r.db.ExecContext(ctx, "UPDATE articles SET star_ind = ? WHERE id = ?", starInd(starred), id)
	if err != nil {
		return fmt.Errorf("update article star: %w", err)
	}
	return checkAffected(res, "update article star", id)
}

// toDomainArticle converts articleSQL to domain.Article
func (r *ArticleRepository) toDomainArticle(sqlArticle *articleSQL) *domain.Article {
	return &domain.Article{
		ID:        sqlArticle.ID,
		FeedID:    sqlArticle.FeedID,
		GUID:      sqlArticle.GUID,
		Subject:   sqlArticle.Subject,
		Content:   sqlArticle.Content,
		Link:      sqlArticle.Link,
		Author:    sqlArticle.Author,
		Status:    sqlArticle.Status,
		Starred:   sqlArticle.StarInd != 0,
		Published: sqlArticle.Published,
		CreatedAt: sqlArticle.CreatedAt,
	}
}

func starInd(starred bool) int {
	if starred {
		return 1
	}
	return 0
}

func checkAffected(res sql.Result, op string, id int64) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s rows affected: %w", op, err)
	}
	if n == 0 {
		return fmt.Errorf("%s %d: %w", op, id, ErrNotFound)
	}
	return nil
}
