/*
Package article holds published articles and orders them chronologically.

A Collection is built from the full set of articles with Sort, and is the
single source of ordering for a site: listing pages and previous/next
navigation both read from the same Collection, so adjacency always
matches the visible reading order.

Articles are located by ID, never by comparing other fields, so two
articles sharing a title or timestamp cannot be confused.
*/
package article

import (
	"fmt"
	"strings"
	"time"
)

// DefaultKind is the kind given to content that does not declare one.
const DefaultKind = "article"

// Article is a single published content entry.
type Article struct {
	ID      string    // Unique identifier; the content path without extension
	Title   string    // Title from front matter or file name
	Created time.Time // Creation timestamp, the ordering key
	Kind    string    // Kind or category tag
	Tags    []string  // Tags assigned to the article
	Body    []byte    // Raw Markdown content
}

// URL returns the site path where the rendered article is served.
func (a Article) URL() string {
	return "/" + strings.TrimPrefix(a.ID, "/") + ".html"
}

// clone returns a copy of a that shares no memory with it.
func (a Article) clone() Article {
	if a.Tags != nil {
		a.Tags = append([]string(nil), a.Tags...)
	}
	if a.Body != nil {
		a.Body = append([]byte(nil), a.Body...)
	}
	return a
}

// Order is the direction articles are sorted by creation time.
type Order int

const (
	// Descending puts the newest article first.
	Descending Order = iota
	// Ascending puts the oldest article first.
	Ascending
)

// String returns the name used for the order in configuration files.
func (o Order) String() string {
	if o == Ascending {
		return "ascending"
	}
	return "descending"
}

// MarshalText implements encoding.TextMarshaler.
func (o Order) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *Order) UnmarshalText(text []byte) error {
	p, err := ParseOrder(string(text))
	if err != nil {
		return err
	}
	*o = p
	return nil
}

// ParseOrder converts a name such as "asc" or "descending" into an Order.
// An empty string yields Descending.
func ParseOrder(s string) (Order, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "desc", "descending":
		return Descending, nil
	case "asc", "ascending":
		return Ascending, nil
	}
	return Descending, fmt.Errorf("ParseOrder: unknown order %q", s)
}
