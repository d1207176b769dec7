// Package routes collects HTTP endpoints into groups and builds a ServeMux from them.
package routes

import "net/http"

// System registers routes and groups and builds an http.Handler serving them.
type System interface {
	RegisterGroup(group Group)
	RegisterRoute(route Route)
	Build() http.Handler
	Groups() []Group
	Routes() []Route
}

type system struct {
	routes []Route
	groups []Group
}

// New creates an empty route system.
func New() System {
	return &system{}
}

func (s *system) Groups() []Group {
	return s.groups
}

func (s *system) Routes() []Route {
	return s.routes
}

func (s *system) RegisterRoute(route Route) {
	s.routes = append(s.routes, route)
}

func (s *system) RegisterGroup(group Group) {
	s.groups = append(s.groups, group)
}

// Build registers every route on a new ServeMux as "METHOD prefix+pattern".
func (s *system) Build() http.Handler {
	mux := http.NewServeMux()

	for _, route := range s.routes {
		mux.HandleFunc(route.Method+" "+route.Pattern, route.Handler)
	}
	for _, group := range s.groups {
		registerGroup(mux, "", group)
	}

	return mux
}

func registerGroup(mux *http.ServeMux, parentPrefix string, group Group) {
	prefix := parentPrefix + group.Prefix
	for _, route := range group.Routes {
		mux.HandleFunc(route.Method+" "+prefix+route.Pattern, route.Handler)
	}
	for _, child := range group.Children {
		registerGroup(mux, prefix, child)
	}
}
