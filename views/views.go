// Package views renders the portal's pages from an embedded template set.
package views

import (
	"embed"
	"fmt"
	"html/template"
	"log"
	"net/http"

	"github.com/dcode-github/property_portal_web/models"
	"github.com/dcode-github/property_portal_web/utils"
)

//go:embed templates
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

var sharedTemplates = []string{
	"templates/layout.html",
	"templates/navbar.html",
	"templates/card.html",
	"templates/filters.html",
	"templates/pager.html",
}

var pageTemplates = []string{
	"search.html",
	"detail.html",
	"favorites.html",
	"login.html",
	"register.html",
}

type cardData struct {
	Property      models.Property
	Authenticated bool
}

var funcMap = template.FuncMap{
	"formatPrice": utils.FormatPrice,
	"cardData": func(p models.Property, authenticated bool) cardData {
		return cardData{Property: p, Authenticated: authenticated}
	},
	"intval": func(p *int) int {
		if p == nil {
			return 0
		}
		return *p
	},
	"seq": func(n int) []int {
		nums := make([]int, n)
		for i := range nums {
			nums[i] = i + 1
		}
		return nums
	},
}

// Renderer holds one parsed template set per page, each sharing the layout
// and partials.
type Renderer struct {
	templates map[string]*template.Template
}

func NewRenderer() (*Renderer, error) {
	templates := make(map[string]*template.Template, len(pageTemplates))
	for _, page := range pageTemplates {
		files := append(append([]string{}, sharedTemplates...), "templates/"+page)
		tmpl, err := template.New("layout.html").Funcs(funcMap).ParseFS(templateFS, files...)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", page, err)
		}
		templates[page] = tmpl
	}
	return &Renderer{templates: templates}, nil
}

func (r *Renderer) Render(w http.ResponseWriter, status int, page string, data interface{}) {
	tmpl, ok := r.templates[page]
	if !ok {
		log.Printf("Unknown page template: %s", page)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := tmpl.ExecuteTemplate(w, "layout.html", data); err != nil {
		log.Printf("Failed to render %s: %v", page, err)
	}
}

// StaticHandler serves the embedded JS and CSS under /static/.
func StaticHandler() http.Handler {
	return http.FileServer(http.FS(staticFS))
}
