/*
Package content reads Markdown content with front matter and turns it into
articles and HTML.

Front matter may be TOML, delimited by "+++" lines, or YAML, delimited by
"---" lines, at the very start of the file:

	+++
	title = "My glorious page"
	date = 2021-01-01
	+++
	# This is my Heading

Both formats accept the same fields:

	Name        Type               Description
	----------  -----------------  -----------------------------------------
	title       string             Title of page
	date        time               Publish date
	created_at  time               Publish date, used when date is absent
	kind        string             Kind of content; "article" when absent
	tags        array of strings   Tags for the article
	template    string             Override the template to render this file
	expires     duration           Use for pages that need an Expires header
	redirect    string             Issue an HTML meta-tag redirect
*/
package content

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// FrontMatter holds data scraped from a Markdown page.
type FrontMatter struct {
	Title     string    `toml:"title"`
	Date      time.Time `toml:"date"`
	CreatedAt time.Time `toml:"created_at"`
	Kind      string    `toml:"kind"`
	Tags      []string  `toml:"tags"`
	Template  string    `toml:"template"`
	Expires   Duration  `toml:"expires"`
	Redirect  string    `toml:"redirect"`
}

// Created returns the publish date, preferring date over created_at.
func (fm FrontMatter) Created() time.Time {
	if !fm.Date.IsZero() {
		return fm.Date
	}
	return fm.CreatedAt
}

// Format identifies the syntax of front matter.
type Format int

const (
	None Format = iota
	TOML
	YAML
)

func (f Format) String() string {
	switch f {
	case TOML:
		return "toml"
	case YAML:
		return "yaml"
	}
	return "none"
}

var (
	tomlFence = regexp.MustCompile(`(?m)^\s*\+\+\+\s*$`)
	yamlFence = regexp.MustCompile(`(?m)^\s*---\s*$`)
)

// Extract splits the front matter and Markdown content.
// When no front matter is present the format is None and r is x.
func Extract(x []byte) (format Format, fm, r []byte) {
	if fm, r, ok := split(tomlFence, x); ok {
		return TOML, fm, r
	}
	if fm, r, ok := split(yamlFence, x); ok {
		return YAML, fm, r
	}
	return None, nil, x
}

func split(fence *regexp.Regexp, x []byte) (fm, r []byte, ok bool) {
	subs := fence.Split(string(x), 3)
	if len(subs) != 3 {
		return nil, x, false
	}
	if s := strings.TrimSpace(subs[0]); len(s) > 0 {
		return nil, x, false
	}
	return []byte(strings.TrimSpace(subs[1])), []byte(strings.TrimSpace(subs[2])), true
}

// Parse extracts and unmarshals the front matter in b, returning it with
// the remaining Markdown.
func Parse(b []byte) (FrontMatter, []byte, error) {
	var fm FrontMatter
	format, raw, body := Extract(b)
	if len(raw) == 0 {
		return fm, body, nil
	}
	switch format {
	case TOML:
		if err := toml.Unmarshal(raw, &fm); err != nil {
			return fm, body, fmt.Errorf("Parse: %w", err)
		}
	case YAML:
		var y yamlFrontMatter
		if err := yaml.Unmarshal(raw, &y); err != nil {
			return fm, body, fmt.Errorf("Parse: %w", err)
		}
		fm = y.frontMatter()
	}
	return fm, body, nil
}

// yamlFrontMatter mirrors FrontMatter with YAML-friendly field types.
type yamlFrontMatter struct {
	Title     string   `yaml:"title"`
	Date      yamlTime `yaml:"date"`
	CreatedAt yamlTime `yaml:"created_at"`
	Kind      string   `yaml:"kind"`
	Tags      []string `yaml:"tags"`
	Template  string   `yaml:"template"`
	Expires   Duration `yaml:"expires"`
	Redirect  string   `yaml:"redirect"`
}

func (y yamlFrontMatter) frontMatter() FrontMatter {
	return FrontMatter{
		Title:     y.Title,
		Date:      time.Time(y.Date),
		CreatedAt: time.Time(y.CreatedAt),
		Kind:      y.Kind,
		Tags:      y.Tags,
		Template:  y.Template,
		Expires:   y.Expires,
		Redirect:  y.Redirect,
	}
}

// timeLayouts are the timestamp forms accepted in YAML front matter.
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05 -0700",
	"2006-01-02 15:04:05 -07:00",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// yamlTime accepts the timestamp forms found in existing articles, which
// are wider than what YAML resolves as a timestamp on its own.
type yamlTime time.Time

func (t *yamlTime) UnmarshalYAML(value *yaml.Node) error {
	s := strings.TrimSpace(value.Value)
	if s == "" {
		*t = yamlTime{}
		return nil
	}
	for _, layout := range timeLayouts {
		if p, err := time.Parse(layout, s); err == nil {
			*t = yamlTime(p)
			return nil
		}
	}
	return fmt.Errorf("line %d: cannot parse %q as a time", value.Line, s)
}
