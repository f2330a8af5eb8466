// Package convert projects a canonical article into each destination's
// accepted markup subset. Destinations form a closed set: a lookup table maps
// each identifier to a converter function, and unknown names are a hard
// error, never a silent default.
package convert

import (
	"errors"
	"fmt"
	"sort"

	"github.com/secure-auto-lab/crosspost/internal/links"
	"github.com/secure-auto-lab/crosspost/internal/rewrite"
	"github.com/secure-auto-lab/crosspost/internal/sections"
	"github.com/secure-auto-lab/crosspost/pkg/interfaces"
)

// Destination identifies one publishing surface.
type Destination string

const (
	DestinationNote  Destination = "note"
	DestinationZenn  Destination = "zenn"
	DestinationQiita Destination = "qiita"
	DestinationBlog  Destination = "blog"
)

// ErrUnknownDestination is returned when a destination name is not in the
// registry.
var ErrUnknownDestination = errors.New("convert: unknown destination")

type convertFunc func(article *interfaces.Article) (string, error)

// Options configures a Registry. Zero values select the production defaults.
type Options struct {
	Links    *links.Builder
	Sections sections.Config
}

// Registry holds the per-destination converter functions. It is immutable
// after construction and safe for concurrent use; the only non-determinism in
// its output is the fresh block tokens generated per note conversion.
type Registry struct {
	links      *links.Builder
	filter     *sections.Filter
	note       *rewrite.NoteRenderer
	converters map[Destination]convertFunc
}

// NewRegistry constructs the converter registry for the four destinations.
func NewRegistry(opts Options) *Registry {
	if opts.Links == nil {
		opts.Links = links.New(links.Options{})
	}
	if opts.Sections.Keywords == nil {
		opts.Sections = sections.DefaultConfig()
	}

	r := &Registry{
		links:  opts.Links,
		filter: sections.New(opts.Sections),
		note:   rewrite.NewNoteRenderer(),
	}
	r.converters = map[Destination]convertFunc{
		DestinationNote:  r.convertNote,
		DestinationZenn:  r.convertZenn,
		DestinationQiita: r.convertQiita,
		DestinationBlog:  r.convertBlog,
	}
	return r
}

// Convert renders the article for one destination.
func (r *Registry) Convert(article *interfaces.Article, dest Destination) (string, error) {
	fn, ok := r.converters[dest]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownDestination, dest)
	}
	return fn(article)
}

// ConvertEnabled renders the article for every destination enabled in its
// platform settings, keyed by destination name.
func (r *Registry) ConvertEnabled(article *interfaces.Article) (map[string]string, error) {
	out := make(map[string]string)
	for _, name := range article.EnabledDestinations() {
		rendered, err := r.Convert(article, Destination(name))
		if err != nil {
			return nil, err
		}
		out[name] = rendered
	}
	return out, nil
}

// Destinations lists the registered destination identifiers in name order.
func (r *Registry) Destinations() []Destination {
	out := make([]Destination, 0, len(r.converters))
	for dest := range r.converters {
		out = append(out, dest)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
