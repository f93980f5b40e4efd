package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"storefront/internal/models"
)

//go:embed templates/*.html
var templateFS embed.FS

// PageData is the payload every page template receives. User, IsAdmin
// and Flash are filled by the render helper from session state; Content
// carries the page-specific data.
type PageData struct {
	Title   string
	User    *models.User
	IsAdmin bool
	Flash   string
	Error   string
	Content any
}

// Renderer holds the parsed navigation shell plus one template set per
// page.
type Renderer struct {
	pages map[string]*template.Template
}

var pageNames = []string{
	"home",
	"products",
	"product",
	"cart",
	"orders",
	"login",
	"register",
	"admin",
	"loading",
	"error",
}

func NewRenderer() (*Renderer, error) {
	pages := make(map[string]*template.Template, len(pageNames))

	for _, name := range pageNames {
		tmpl, err := template.New("layout.html").Funcs(template.FuncMap{
			"money": formatMoney,
		}).ParseFS(templateFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("failed to parse page %q: %w", name, err)
		}
		pages[name] = tmpl
	}

	return &Renderer{pages: pages}, nil
}

func (r *Renderer) Render(w io.Writer, page string, data *PageData) error {
	tmpl, ok := r.pages[page]
	if !ok {
		return fmt.Errorf("unknown page %q", page)
	}

	return tmpl.ExecuteTemplate(w, "layout.html", data)
}

func formatMoney(amount float64) string {
	return fmt.Sprintf("$%.2f", amount)
}
