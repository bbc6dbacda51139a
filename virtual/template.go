package virtual

import (
	_ "embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"path"
	"strings"
	"time"

	"github.com/mctaylorpants/alextaylor-ca/content"
	log "github.com/sirupsen/logrus"
)

//go:embed default.html
var defaultTemplate string

// PageInfo has information about the current page.
type PageInfo struct {
	Path     string // path from URL
	Filename string // end portion (file) from URL
}

// Pathname joins the path and filename.
func (p PageInfo) Pathname() string {
	return path.Join(p.Path, p.Filename)
}

// ID returns the article ID of the page, which is its path without the
// leading slash and extension.
func (p PageInfo) ID() string {
	return strings.TrimPrefix(strings.TrimSuffix(p.Pathname(), path.Ext(p.Filename)), "/")
}

// data is what is passed to markdown templates.
type data struct {
	FrontMatter content.FrontMatter // front matter from Markdown file or defaults
	Page        PageInfo            // information about current page
	Site        *Config             // site configuration
	Content     template.HTML       // rendered Markdown
}

// getTemplates returns the parsed templates.
func (vfs *FS) getTemplates() *template.Template {
	vfs.tplMutex.RLock()
	defer vfs.tplMutex.RUnlock()
	return vfs.tpl
}

// funcs returns the helper functions available to page templates.
func (vfs *FS) funcs() template.FuncMap {
	return template.FuncMap{
		// articles and navigation
		"articles":    vfs.articles,
		"next":        next,
		"prev":        prev,
		"articlehtml": vfs.articleHTML,
		"summary":     vfs.summary,

		// folder listings
		"dir":        vfs.dir,
		"sortbyname": sortByName,
		"sortbytime": sortByTime,
		"reverse":    reverse,
		"match":      match,
		"filter":     filter,

		// strings and paths
		"join":       path.Join,
		"ext":        path.Ext,
		"trimsuffix": strings.TrimSuffix,
		"trimprefix": strings.TrimPrefix,
		"trimspace":  strings.TrimSpace,

		"markdown":    vfs.md,
		"frontmatter": vfs.fm,
		"now":         func() time.Time { return vfs.now() },
	}
}

// loadTemplates parses the site's templates from the "template" folder, or
// the built-in templates when the site has none.
func (vfs *FS) loadTemplates() error {
	tpl := template.New("site").Funcs(vfs.funcs())
	fi, err := fs.Stat(vfs.fs, "template")
	switch {
	case errors.Is(err, fs.ErrNotExist), err == nil && !fi.IsDir():
		log.Debug("Using built-in templates")
		tpl, err = tpl.Parse(defaultTemplate)
	case err != nil:
		return fmt.Errorf("loadTemplates: %w", err)
	default:
		log.Debug("Using site templates")
		tpl, err = tpl.ParseFS(vfs.fs, "template/*.html")
	}
	if err != nil {
		return fmt.Errorf("loadTemplates: %w", err)
	}
	vfs.tplMutex.Lock()
	vfs.tpl = tpl
	vfs.tplMutex.Unlock()
	return nil
}
