package site

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
)

// Handler serves the marketing site assets and the root redirect.
type Handler struct {
	// Dir is the directory mounted under /static/.
	Dir string
	// Index is the path the root URL redirects to.
	Index string
}

// Redirect sends GET / to the site's landing page.
func (h Handler) Redirect(w http.ResponseWriter, r *http.Request) {
	target := h.Index
	if target == "" {
		target = "/static/index.html"
	}
	http.Redirect(w, r, target, http.StatusFound)
}

// Mount registers the redirect and the static file tree on r.
func (h Handler) Mount(r chi.Router) {
	r.Get("/", h.Redirect)
	r.Handle("/static/*", http.StripPrefix("/static", h.Static()))
}

// Static returns a file server for Dir that never lists directories.
func (h Handler) Static() http.Handler {
	return http.FileServer(noListingFS{http.Dir(h.Dir)})
}

type noListingFS struct {
	fs http.FileSystem
}

// Open hides directories unless they contain an index.html.
func (n noListingFS) Open(name string) (http.File, error) {
	if strings.Contains(filepath.ToSlash(name), "..") {
		return nil, os.ErrNotExist
	}
	f, err := n.fs.Open(name)
	if err != nil {
		return nil, err
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	if !info.IsDir() {
		return f, nil
	}
	index, err := n.fs.Open(path.Join(name, "index.html"))
	if err != nil {
		_ = f.Close()
		return nil, os.ErrNotExist
	}
	_ = index.Close()
	return f, nil
}
