package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

//go:embed views/*.html
var viewsFS embed.FS

// Pages rendered by the reader-facing site.
const (
	PageHome       = "home"
	PageBlog       = "blog"
	PageResults    = "results"
	PagePreLanding = "prelanding"
	PageThankYou   = "thankyou"
	PageStatus     = "status"
)

var pageNames = []string{PageHome, PageBlog, PageResults, PagePreLanding, PageThankYou, PageStatus}

// View is what every page template receives.
type View struct {
	SiteName string
	Title    string
	Data     interface{}
}

// Renderer executes one layout-wrapped template per page.
type Renderer struct {
	siteName string
	pages    map[string]*template.Template
}

var funcs = template.FuncMap{
	"deref": func(s *string) string {
		if s == nil {
			return ""
		}
		return *s
	},
	"date": func(t *time.Time) string {
		if t == nil {
			return ""
		}
		return t.Format("January 2, 2006")
	},
	"paragraphs": func(s string) []string {
		var out []string
		for _, p := range strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n\n") {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
		return out
	},
	"css": func(s string) template.CSS {
		// colors come from operators and the generator; keep them to hex
		if len(s) >= 4 && len(s) <= 9 && s[0] == '#' && strings.Trim(s[1:], "0123456789abcdefABCDEF") == "" {
			return template.CSS(s)
		}
		return template.CSS("#ffffff")
	},
}

func NewRenderer(siteName string) (*Renderer, error) {
	r := &Renderer{siteName: siteName, pages: make(map[string]*template.Template, len(pageNames))}
	for _, name := range pageNames {
		tmpl, err := template.New("layout.html").Funcs(funcs).ParseFS(viewsFS, "views/layout.html", "views/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s view: %w", name, err)
		}
		r.pages[name] = tmpl
	}
	return r, nil
}

// Render writes page with status. The page is buffered so a template error
// never leaves a half-written response.
func (r *Renderer) Render(c *fiber.Ctx, status int, page, title string, data interface{}) error {
	tmpl, ok := r.pages[page]
	if !ok {
		return fmt.Errorf("unknown view %q", page)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", View{SiteName: r.siteName, Title: title, Data: data}); err != nil {
		return fmt.Errorf("failed to render %s: %w", page, err)
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Status(status).Send(buf.Bytes())
}
