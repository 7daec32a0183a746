package views

import (
	"bytes"
	"embed"
	"html/template"
	"io/fs"
	"net/http"
	"storefront/structs"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

const (
	StorefrontTemplate = "storefront.html"
	LoginTemplate      = "login.html"
)

const (
	NoticeSuccess = "success"
	NoticeError   = "error"
)

// Notice is the banner shown above the product list after an action.
type Notice struct {
	Kind string
	Text string
}

type StorefrontPage struct {
	AppName   string
	UserName  string
	CSRFToken string
	Products  []structs.Product
	Notice    *Notice
}

type LoginPage struct {
	AppName   string
	CSRFToken string
	Email     string
	Error     string
}

// Render executes the template into a buffer first so a template error never
// leaves a half written page behind.
func Render(w http.ResponseWriter, status int, name string, data any) error {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return err
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}

// StaticHandler serves the embedded stylesheet under /static/.
func StaticHandler() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
}
