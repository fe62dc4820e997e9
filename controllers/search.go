package controllers

import (
	"log"
	"net/http"

	"github.com/dcode-github/property_portal_web/api"
	"github.com/dcode-github/property_portal_web/models"
	"github.com/dcode-github/property_portal_web/session"
	"github.com/dcode-github/property_portal_web/views"
)

// SearchPage renders the home page: the filter form plus the search results
// for the filters carried in the query string. Every page view runs a fresh
// search.
func SearchPage(apiClient *api.Client, sessions *session.Manager, renderer *views.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := sessions.Current(r)
		filters := models.ParseFilters(r.URL.Query())

		data := views.SearchData{
			BaseData: views.NewBaseData(sess),
			Filters:  filters,
		}

		result, err := apiClient.SearchProperties(r.Context(), bearerToken(sess), filters)
		if err != nil {
			log.Printf("Search request failed: %v", err)
			data.Error = "Failed to load properties. Please try again."
			renderer.Render(w, http.StatusOK, "search.html", data)
			return
		}

		data.Properties = result.Properties
		data.TotalCount = result.TotalCount
		if result.TotalPages > 1 {
			data.Pager = buildPager(filters, result)
		}
		renderer.Render(w, http.StatusOK, "search.html", data)
	}
}

func buildPager(filters models.SearchFilters, result *models.SearchResult) []views.PageLink {
	links := make([]views.PageLink, 0, result.TotalPages)
	for n := 1; n <= result.TotalPages; n++ {
		links = append(links, views.PageLink{
			Number:  n,
			URL:     "/?" + filters.WithPage(n).Values().Encode(),
			Current: n == result.Page,
		})
	}
	return links
}
