package shared

const (
	VisitorID = "visitor_id"

	PlatformIOS     = "ios"
	PlatformAndroid = "android"
	PlatformWeb     = "web"

	SelectionModeAll          = "all"
	SelectionModeByCategory   = "by_category"
	SelectionModeFavorites    = "favorites"
	SelectionModeFavoritesAll = "favorites_all"

	FavoriteStatusAdded   = "added"
	FavoriteStatusRemoved = "removed"
)

const (
	// Fallback preference pair applied when neither the request nor the
	// visitor record carries language ids. Overridable via
	// DEFAULT_SOURCE_LANG_ID / DEFAULT_TARGET_LANG_ID.
	DefaultSourceLanguageID uint = 1
	DefaultTargetLanguageID uint = 1

	DefaultRandomWordCount = 10
	MaxRandomWordCount     = 50
)
