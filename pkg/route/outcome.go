package route

// Kind identifies what a navigation path resolves to.
type Kind string

const (
	KindRender   Kind = "render"
	KindRedirect Kind = "redirect"
	KindNone     Kind = "none"
)

// Outcome is the result of matching a single path against the table.
// Target is set for redirects; Name and Component are set for renders.
type Outcome struct {
	Kind      Kind   `json:"kind" yaml:"kind"`
	Path      string `json:"path" yaml:"path"`
	Target    string `json:"target,omitempty" yaml:"target,omitempty"`
	Name      string `json:"name,omitempty" yaml:"name,omitempty"`
	Component string `json:"component,omitempty" yaml:"component,omitempty"`
}

// Resolution is the final outcome of a path after all redirects are followed.
// Redirects lists each redirect hop in the order it was taken.
type Resolution struct {
	Requested string    `json:"requested" yaml:"requested"`
	Outcome   Outcome   `json:"outcome" yaml:"outcome"`
	Redirects []Outcome `json:"redirects" yaml:"redirects"`
}

// Redirected reports whether at least one redirect was followed.
func (r Resolution) Redirected() bool {
	return len(r.Redirects) > 0
}
