package route

import (
	"fmt"
	"strings"
)

// Record maps a path to either a redirect target or a component.
// Empty strings mark absent optional fields.
type Record struct {
	Path      string `json:"path" yaml:"path"`
	Redirect  string `json:"redirect,omitempty" yaml:"redirect,omitempty"`
	Name      string `json:"name,omitempty" yaml:"name,omitempty"`
	Component string `json:"component,omitempty" yaml:"component,omitempty"`
}

// IsRedirect reports whether navigating to the record's path is rewritten.
func (r Record) IsRedirect() bool {
	return r.Redirect != ""
}

func (r Record) validate() error {
	if !strings.HasPrefix(r.Path, "/") {
		return fmt.Errorf("%w: path %q must start with /", ErrInvalidRecord, r.Path)
	}

	switch {
	case r.Redirect != "" && r.Component != "":
		return fmt.Errorf("%w: %s sets both redirect and component", ErrInvalidRecord, r.Path)
	case r.Redirect == "" && r.Component == "":
		return fmt.Errorf("%w: %s sets neither redirect nor component", ErrInvalidRecord, r.Path)
	}

	if r.Redirect != "" && !strings.HasPrefix(r.Redirect, "/") {
		return fmt.Errorf("%w: redirect %q must start with /", ErrInvalidRecord, r.Redirect)
	}

	return nil
}
