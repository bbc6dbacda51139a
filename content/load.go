package content

import (
	"fmt"
	"io/fs"
	"path"
	"strings"
	"time"

	"github.com/mctaylorpants/alextaylor-ca/article"
	log "github.com/sirupsen/logrus"
)

// LoadOptions controls which content Load turns into articles.
type LoadOptions struct {
	Kind string    // Only load content of this kind; empty loads every kind
	Now  time.Time // Content dated after Now is unpublished; zero means time.Now()
}

// skippedFiles are Markdown files that are pages rather than articles.
var skippedFiles = []string{"index.md", "404.md", "500.md"}

// Load walks dir in fsys and returns an article for every published
// Markdown file. Files with unreadable front matter are logged and skipped.
func Load(fsys fs.FS, dir string, opts LoadOptions) ([]article.Article, error) {
	dir = path.Clean(strings.TrimPrefix(dir, "/"))
	if dir == "" || dir == "/" {
		dir = "."
	}
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}
	var r []article.Article
	err := fs.WalkDir(fsys, dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if p != dir && (strings.HasPrefix(d.Name(), ".") || p == "template") {
				return fs.SkipDir
			}
			return nil
		}
		if path.Ext(p) != ".md" || strings.HasPrefix(d.Name(), ".") || isSkipped(d.Name()) {
			return nil
		}
		a, fm, err := readArticle(fsys, p, d)
		if err != nil {
			log.WithField("path", p).Warnf("Load: %s", err)
			return nil
		}
		// redirect stubs are not articles of their own
		if fm.Redirect != "" {
			return nil
		}
		if opts.Kind != "" && a.Kind != opts.Kind {
			return nil
		}
		if a.Created.After(now) {
			return nil
		}
		r = append(r, a)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("Load: %w", err)
	}
	return r, nil
}

func isSkipped(name string) bool {
	for _, s := range skippedFiles {
		if name == s {
			return true
		}
	}
	return false
}

// readArticle builds the article stored at p, along with its front matter.
func readArticle(fsys fs.FS, p string, d fs.DirEntry) (article.Article, FrontMatter, error) {
	b, err := fs.ReadFile(fsys, p)
	if err != nil {
		return article.Article{}, FrontMatter{}, err
	}
	fm, body, err := Parse(b)
	if err != nil {
		return article.Article{}, fm, err
	}
	a := article.Article{
		ID:      strings.TrimSuffix(p, ".md"),
		Title:   fm.Title,
		Created: fm.Created(),
		Kind:    fm.Kind,
		Tags:    fm.Tags,
		Body:    body,
	}
	if a.Title == "" {
		a.Title = strings.TrimSuffix(d.Name(), ".md")
	}
	if a.Kind == "" {
		a.Kind = article.DefaultKind
	}
	if a.Created.IsZero() {
		if fi, err := d.Info(); err == nil {
			a.Created = fi.ModTime()
		}
	}
	return a, fm, nil
}
