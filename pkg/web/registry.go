package web

import (
	"errors"
	"fmt"
	"slices"

	"github.com/JaimeStill/page-router/pkg/route"
)

var (
	ErrUnregisteredComponent = errors.New("unregistered component")
	ErrDuplicateComponent    = errors.New("duplicate component")
)

// Registry resolves component identifiers referenced by route records to views.
type Registry struct {
	views []ViewDef
	index map[string]int
}

// NewRegistry indexes views by component identifier.
func NewRegistry(views ...ViewDef) (*Registry, error) {
	r := &Registry{
		views: views,
		index: make(map[string]int, len(views)),
	}
	for i, v := range views {
		if v.Component == "" {
			return nil, fmt.Errorf("view %s: component identifier required", v.Template)
		}
		if _, exists := r.index[v.Component]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateComponent, v.Component)
		}
		r.index[v.Component] = i
	}
	return r, nil
}

// Lookup returns the view registered for component.
func (r *Registry) Lookup(component string) (ViewDef, bool) {
	i, ok := r.index[component]
	if !ok {
		return ViewDef{}, false
	}
	return r.views[i], true
}

// Views returns the registered views in registration order.
func (r *Registry) Views() []ViewDef {
	return slices.Clone(r.views)
}

// Check verifies every component referenced by the table is registered.
func (r *Registry) Check(table *route.Table) error {
	var errs []error
	for _, rec := range table.Records() {
		if rec.Component == "" {
			continue
		}
		if _, ok := r.index[rec.Component]; !ok {
			errs = append(errs, fmt.Errorf("%w: %s (route %s)", ErrUnregisteredComponent, rec.Component, rec.Path))
		}
	}
	return errors.Join(errs...)
}
