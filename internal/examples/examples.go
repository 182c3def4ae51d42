// Package examples ships a few built-in schemas for demos and quick
// experimentation. Each example bundles a relation declaration with its
// functional dependencies, embedded at build time.
package examples

import (
	"embed"
	"errors"
	"fmt"
	"sort"
	"strings"
)

//go:embed data
var data embed.FS

// ErrUnknownExample indicates a name List does not report.
var ErrUnknownExample = errors.New("relnorm/examples: unknown example")

// Example is a named relation-and-dependencies pair in the parser's
// text formats.
type Example struct {
	Name        string
	Description string
	Relation    string
	FDs         string
}

var descriptions = map[string]string{
	"freelancers": "Freelancer profiles, already in BCNF",
	"gigs":        "Gig listings, already in BCNF",
	"marketplace": "Denormalized milestone payments, decomposes into four tables",
}

// List returns the available example names in sorted order.
func List() []string {
	names := make([]string, 0, len(descriptions))
	for name := range descriptions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Load returns the named example.
func Load(name string) (Example, error) {
	desc, ok := descriptions[name]
	if !ok {
		return Example{}, fmt.Errorf("%w: %q (available: %s)", ErrUnknownExample, name, strings.Join(List(), ", "))
	}

	rel, err := data.ReadFile("data/" + name + ".relation")
	if err != nil {
		return Example{}, fmt.Errorf("reading example %s: %w", name, err)
	}
	fds, err := data.ReadFile("data/" + name + ".fds")
	if err != nil {
		return Example{}, fmt.Errorf("reading example %s: %w", name, err)
	}

	return Example{
		Name:        name,
		Description: desc,
		Relation:    strings.TrimSpace(string(rel)),
		FDs:         string(fds),
	}, nil
}
