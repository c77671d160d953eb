package domain

// keys of the persisted listing filter
const (
	SettingSort       = "sort"
	SettingStatus     = "status"
	SettingCategoryID = "categoryId"
	SettingFeedID     = "feedId"
)

// SettingKeys lists every setting key the listing reads and writes
var SettingKeys = []string{SettingSort, SettingStatus, SettingCategoryID, SettingFeedID}
