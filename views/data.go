package views

import "github.com/dcode-github/property_portal_web/models"

// BaseData carries what every page needs: the visitor's session (nil when
// anonymous) and an optional page-level error banner.
type BaseData struct {
	Session       *models.Session
	Authenticated bool
	Error         string
}

func NewBaseData(sess *models.Session) BaseData {
	return BaseData{Session: sess, Authenticated: sess != nil}
}

type PageLink struct {
	Number  int
	URL     string
	Current bool
}

type SearchData struct {
	BaseData
	Filters    models.SearchFilters
	Properties []models.Property
	TotalCount int
	Pager      []PageLink
}

type DetailData struct {
	BaseData
	Property *models.Property
}

type FavoritesData struct {
	BaseData
	Favorites []models.Property
}

type AuthFormData struct {
	BaseData
	Email string
	From  string
}
