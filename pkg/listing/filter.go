package listing

import (
	"strconv"
	"strings"

	"github.com/umputun/readlist/pkg/domain"
)

// Params are the raw listing request parameters, an empty value means the parameter is absent
type Params struct {
	FirstLoad  bool
	CategoryID string
	FeedID     string
	Status     string
	Sort       string
	Search     string
}

// Filter is the effective listing filter, resolved per request
type Filter struct {
	CategoryID string
	FeedID     string // wildcard, a single feed id or comma separated ids
	Status     string
	Sort       string
	Search     string
}

// DefaultFilter returns the filter used when nothing else is known
func DefaultFilter() Filter {
	return Filter{
		CategoryID: domain.Wildcard,
		FeedID:     domain.Wildcard,
		Status:     domain.StatusUnread,
		Sort:       "DESC",
		Search:     domain.Wildcard,
	}
}

// Resolve builds the effective filter from three sources, lowest precedence first:
// defaults, persisted settings and request parameters. Persisted settings are nil
// unless the caller asked for them, i.e. on first load. Resolve never fails, values
// it can't use fall back to defaults.
func Resolve(params Params, persisted map[string]string) Filter {
	f := DefaultFilter()
	f = f.override(Filter{
		CategoryID: persisted[domain.SettingCategoryID],
		FeedID:     persisted[domain.SettingFeedID],
		Status:     persisted[domain.SettingStatus],
		Sort:       persisted[domain.SettingSort],
	})
	f = f.override(Filter{
		CategoryID: params.CategoryID,
		FeedID:     params.FeedID,
		Status:     params.Status,
		Sort:       params.Sort,
		Search:     params.Search,
	})
	return f.normalize()
}

// override returns a copy of f with every non-empty field of o replacing its counterpart
func (f Filter) override(o Filter) Filter {
	if o.CategoryID != "" {
		f.CategoryID = o.CategoryID
	}
	if o.FeedID != "" {
		f.FeedID = o.FeedID
	}
	if o.Status != "" {
		f.Status = o.Status
	}
	if o.Sort != "" {
		f.Sort = o.Sort
	}
	if o.Search != "" {
		f.Search = o.Search
	}
	return f
}

// normalize brings sort to ASC/DESC and feed id to a canonical id list or wildcard
func (f Filter) normalize() Filter {
	switch strings.ToUpper(strings.TrimSpace(f.Sort)) {
	case "ASC":
		f.Sort = "ASC"
	default:
		f.Sort = "DESC"
	}

	if f.FeedID != domain.Wildcard {
		ids := parseFeedIDs(f.FeedID)
		if len(ids) == 0 {
			f.FeedID = domain.Wildcard
		} else {
			strIDs := make([]string, len(ids))
			for i, id := range ids {
				strIDs[i] = strconv.FormatInt(id, 10)
			}
			f.FeedID = strings.Join(strIDs, ",")
		}
	}
	return f
}

// FeedIDs returns the explicit feed ids of the filter, false for the wildcard
func (f Filter) FeedIDs() ([]int64, bool) {
	if f.FeedID == domain.Wildcard {
		return nil, false
	}
	ids := parseFeedIDs(f.FeedID)
	return ids, len(ids) > 0
}

// SearchPattern returns the search term wrapped for substring matching, wildcard stays as is
func (f Filter) SearchPattern() string {
	if f.Search == domain.Wildcard || f.Search == "" {
		return domain.Wildcard
	}
	return "%" + f.Search + "%"
}

// Settings returns the persisted form of the filter, search is not persisted
func (f Filter) Settings() map[string]string {
	return map[string]string{
		domain.SettingSort:       f.Sort,
		domain.SettingStatus:     f.Status,
		domain.SettingCategoryID: f.CategoryID,
		domain.SettingFeedID:     f.FeedID,
	}
}

// parseFeedIDs extracts positive numeric ids from a comma separated list, skipping anything else
func parseFeedIDs(s string) []int64 {
	var ids []int64
	seen := map[int64]bool{}
	for _, part := range strings.Split(s, ",") {
		id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil || id <= 0 || seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	return ids
}
