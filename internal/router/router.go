// Package router is a deliberately small request dispatcher: an exact-path
// route table with per-method handlers. It replaces the one piece of a web
// framework this project refuses to import.
//
// There are no patterns, wildcards, or prefixes. A request either hits a
// registered (method, path) pair or is answered with 404/405 directly.
package router

import (
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// Router dispatches requests against a static route table built at startup.
// Registration is not safe for concurrent use; serving is, because the table
// is read-only once the server starts.
type Router struct {
	routes map[string]map[string]http.Handler // path → method → handler
}

// New returns an empty Router.
func New() *Router {
	return &Router{routes: make(map[string]map[string]http.Handler)}
}

// Handle binds handler to the exact (method, path) pair. Binding the same
// pair twice is a programming error and panics, matching how the standard
// mux treats conflicting patterns.
func (r *Router) Handle(method, path string, handler http.Handler) {
	if method == "" || path == "" {
		panic("router: method and path must be non-empty")
	}
	if handler == nil {
		panic("router: nil handler for " + method + " " + path)
	}

	byMethod, ok := r.routes[path]
	if !ok {
		byMethod = make(map[string]http.Handler)
		r.routes[path] = byMethod
	}
	if _, exists := byMethod[method]; exists {
		panic(fmt.Sprintf("router: duplicate registration for %s %s", method, path))
	}
	byMethod[method] = handler
}

// HandleFunc is Handle for plain functions.
func (r *Router) HandleFunc(method, path string, handler http.HandlerFunc) {
	r.Handle(method, path, handler)
}

// ServeHTTP looks the request up in the table. Unknown path → 404, known
// path with an unregistered method → 405 plus an Allow header, otherwise the
// registered handler runs. Rejections have empty bodies.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	byMethod, ok := r.routes[req.URL.Path]
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	handler, ok := byMethod[req.Method]
	if !ok {
		w.Header().Set("Allow", allowed(byMethod))
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	handler.ServeHTTP(w, req)
}

func allowed(byMethod map[string]http.Handler) string {
	methods := make([]string, 0, len(byMethod))
	for m := range byMethod {
		methods = append(methods, m)
	}
	sort.Strings(methods)
	return strings.Join(methods, ", ")
}
