package web

import (
	"bytes"
	"io/fs"
	"net/http"
	"strings"
	"time"
)

// PublicRoute describes a handler for a single file served at the site root.
type PublicRoute struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
}

// DistServer serves files from subdir of fsys with urlPrefix stripped from the request path.
func DistServer(fsys fs.FS, subdir, urlPrefix string) http.HandlerFunc {
	sub, err := fs.Sub(fsys, subdir)
	if err != nil {
		return http.NotFound
	}
	return http.StripPrefix(urlPrefix, http.FileServer(http.FS(sub))).ServeHTTP
}

// PublicFile serves a single named file from subdir of fsys.
func PublicFile(fsys fs.FS, subdir, name string) http.HandlerFunc {
	path := strings.TrimSuffix(subdir, "/") + "/" + name
	return func(w http.ResponseWriter, r *http.Request) {
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			http.NotFound(w, r)
			return
		}
		http.ServeContent(w, r, name, time.Time{}, bytes.NewReader(data))
	}
}

// PublicFileRoutes builds a GET route at the site root for each named file.
func PublicFileRoutes(fsys fs.FS, subdir string, names ...string) []PublicRoute {
	routes := make([]PublicRoute, 0, len(names))
	for _, name := range names {
		routes = append(routes, PublicRoute{
			Method:  http.MethodGet,
			Pattern: "/" + name,
			Handler: PublicFile(fsys, subdir, name),
		})
	}
	return routes
}
