// Package route implements a declarative history-mode route table.
// A table is an immutable ordered list of records; resolution is a pure
// function of the table and the requested path, safe for concurrent use.
package route

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Table is an ordered, read-only sequence of route records.
// The first record whose path equals the requested path wins.
type Table struct {
	records      []Record
	names        map[string]int
	base         string
	maxRedirects int
}

// New validates the records and builds a table using the history base and
// redirect bound from cfg. Zero config values receive defaults.
func New(cfg Config, records ...Record) (*Table, error) {
	if err := cfg.Finalize(nil); err != nil {
		return nil, err
	}

	t := &Table{
		records:      slices.Clone(records),
		names:        make(map[string]int, len(records)),
		base:         cfg.Base,
		maxRedirects: cfg.MaxRedirects,
	}

	for i, r := range t.records {
		if err := r.validate(); err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		t.records[i].Path = norm.NFC.String(r.Path)
		t.records[i].Redirect = norm.NFC.String(r.Redirect)

		if r.Name == "" {
			continue
		}
		if _, exists := t.names[r.Name]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateName, r.Name)
		}
		t.names[r.Name] = i
	}

	return t, nil
}

// Base returns the history base path.
func (t *Table) Base() string {
	return t.base
}

// Records returns a copy of the records in table order.
func (t *Table) Records() []Record {
	return slices.Clone(t.records)
}

// Lookup returns the record registered under name.
func (t *Table) Lookup(name string) (Record, bool) {
	i, ok := t.names[name]
	if !ok {
		return Record{}, false
	}
	return t.records[i], true
}

// Href converts an in-app path into a URL path under the history base.
func (t *Table) Href(path string) string {
	if t.base == "/" {
		return path
	}
	return strings.TrimSuffix(t.base, "/") + path
}

// Match performs a single resolution step for the requested URL path.
// A redirect record yields a KindRedirect outcome without following it.
func (t *Table) Match(requested string) Outcome {
	path, ok := t.local(requested)
	if !ok {
		return Outcome{Kind: KindNone, Path: path}
	}
	return t.match(path)
}

// Resolve follows redirects from the requested URL path until a render or
// no-match outcome is reached. Revisiting a path, or exceeding the
// configured number of hops, fails with ErrRedirectLoop.
func (t *Table) Resolve(requested string) (Resolution, error) {
	path, ok := t.local(requested)
	res := Resolution{
		Requested: path,
		Redirects: []Outcome{},
	}
	if !ok {
		res.Outcome = Outcome{Kind: KindNone, Path: path}
		return res, nil
	}

	visited := make(map[string]struct{})
	for {
		out := t.match(path)
		if out.Kind != KindRedirect {
			res.Outcome = out
			return res, nil
		}

		if _, seen := visited[path]; seen || len(res.Redirects) == t.maxRedirects {
			return res, fmt.Errorf("%w: %s", ErrRedirectLoop, chain(res.Redirects, path))
		}
		visited[path] = struct{}{}

		res.Redirects = append(res.Redirects, out)
		path = clean(out.Target)
	}
}

func (t *Table) match(path string) Outcome {
	for _, r := range t.records {
		if r.Path != path {
			continue
		}
		if r.IsRedirect() {
			return Outcome{Kind: KindRedirect, Path: path, Target: r.Redirect}
		}
		return Outcome{
			Kind:      KindRender,
			Path:      path,
			Name:      r.Name,
			Component: r.Component,
		}
	}
	return Outcome{Kind: KindNone, Path: path}
}

// local cleans a URL path and strips the history base from it.
// It reports false when the path lies outside the base.
func (t *Table) local(requested string) (string, bool) {
	path := clean(requested)
	if t.base == "/" {
		return path, true
	}

	prefix := strings.TrimSuffix(t.base, "/")
	switch {
	case path == prefix:
		return "/", true
	case strings.HasPrefix(path, t.base):
		return path[len(prefix):], true
	default:
		return path, false
	}
}

// clean drops any query or fragment, applies NFC normalization and forces a
// leading slash. Trailing slashes are significant and kept.
func clean(path string) string {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	path = norm.NFC.String(path)
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return path
}

func chain(hops []Outcome, next string) string {
	var b strings.Builder
	for _, h := range hops {
		b.WriteString(h.Path)
		b.WriteString(" -> ")
	}
	b.WriteString(next)
	return b.String()
}
