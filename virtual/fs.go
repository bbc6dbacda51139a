/*
Package virtual implements a "virtual" view over a fs.FS that makes a blog folder suitable for serving
Markdown and other files in a web format. It includes a template system and helpers for presenting
articles in chronological order with previous/next navigation.

A special file "blog.cfg" at the root exposes settings you can use via the Config() function.
This file is hidden from view.

A special folder "template" at the root holds HTML templates should you want to customize. At
minimum, a template called "default" is required for handling Markdown files, and a template
called "image" is required for handling image files.

Hidden files and folders (those starting with ".") are ignored.

If the above conditions are not met, then the file is provided as-is from the underlying file system.

# Special File Handling

When an endpoint like "/foo/bar.html" is called and it does not exist, the virtual file system first looks for
a Markdown file named "/foo/bar.md". If present, a "virtual" file "/foo/bar.html" is presented that will
render the underlying Markdown file into HTML. The Markdown file itself is hidden. By default, a template
called "default" is used to render the Markdown, unless the front matter of the file specifies a different
template. Pages dated in the future do not exist until their date passes. Pages with a "redirect" in their
front matter render an HTML meta-tag redirect.

If a Markdown file is not found, the system will look for an image file. If an image file is found, a virtual
file "/foo/bar.html" is created that will render an HTML file using the "image" template. This only happens
when the top-level folder is one of the following:

	"photos", "images", "pictures", "cartoons", "toons", "sketches", "artwork", "drawings"

# Site Map

If a file in the root named "sitemap.txt" is present, it is run as a text template that receives the
list of page paths as a slice of strings.

# Articles

Markdown files in the articles folder (see ArticlesConfig) are articles. Templates get the articles
as an article.Collection sorted once in the configured order, and use the same collection for listings
and for previous/next links:

	{{$all := articles "articles"}}
	{{range $all.Articles}}<a href="{{.URL}}">{{.Title}}</a>{{end}}
	{{with prev $all .Page.ID}}<a href="{{.URL}}">{{.Title}}</a>{{end}}
	{{with next $all .Page.ID}}<a href="{{.URL}}">{{.Title}}</a>{{end}}

# Templates

Templates are passed page information (virtual.PageInfo), front matter (content.FrontMatter), the site
configuration, and rendered HTML from Markdown (template.HTML). These helper functions are available:

	articles(folder string) article.Collection
		Load the folder's articles sorted in the configured order
	next(article.Collection, id string) *article.Article
		The article after id, or nil
	prev(article.Collection, id string) *article.Article
		The article before id, or nil
	articlehtml(article.Article) template.HTML
		Render an article's Markdown
	summary(article.Article, ...int) string
		Plain-text summary of an article
	dir(path string) []virtual.File
		Return the contents of the given folder, excluding special files
	sortbyname([]virtual.File) []virtual.File
		Sort by name (reverse)
	sortbytime([]virtual.File) []virtual.File
		Sort by time (reverse)
	match(string, ...string) bool
		Match string against file patterns
	filter([]virtual.File, ...string) []virtual.File
		Filter list against file patterns
	join(parts ...string) string
		The same as path.Join
	ext(path string) string
		The same as path.Ext
	reverse([]virtual.File) []virtual.File
		Reverse the list
	trimsuffix, trimprefix, trimspace
		The same as the strings functions
	markdown(string) template.HTML
		Render Markdown file into HTML
	frontmatter(string) *content.FrontMatter
		Read front matter from file
	now() time.Time
		Current time

# Errors

Create 404.md and 500.md files in the root of the file system to design error pages. The sitemap,
article listings, and the "dir" template function do not show them.
*/
package virtual

import (
	"errors"
	"html/template"
	"io/fs"
	"path"
	"strings"
	"sync"
	"time"

	"github.com/mctaylorpants/alextaylor-ca/content"
)

// FS provides a virtual view of the file system suitable for serving Markdown
// and other files in a web format.
type FS struct {
	fs       fs.FS
	cfg      Config
	renderer content.Renderer
	now      func() time.Time
	tpl      *template.Template
	tplMutex sync.RWMutex
}

// New returns a new FS that presents a virtual view of innerFS.
func New(innerFS fs.FS) (*FS, error) {
	cfg, err := readConfig(innerFS)
	if err != nil {
		return nil, err
	}
	renderer, err := content.NewRenderer(cfg.Renderer)
	if err != nil {
		return nil, err
	}
	vfs := &FS{
		fs:       innerFS,
		cfg:      cfg,
		renderer: renderer,
		now:      time.Now,
	}
	if err := vfs.loadTemplates(); err != nil {
		return nil, err
	}
	return vfs, nil
}

// Open opens the named file. Markdown, images in image folders, and the
// sitemap are presented as rendered pages. Configuration, templates, and
// hidden files do not exist.
func (vfs *FS) Open(name string) (fs.File, error) {
	// Make sure the path is valid per fs rules
	if !fs.ValidPath(name) {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrInvalid}
	}
	// Don't show hidden or special files, or the Markdown behind pages
	if isHiddenFile(name) || (name != "." && containsSpecialFile(name)) || path.Ext(name) == ".md" {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}

	// open the file with the underlying file system
	f, err := vfs.fs.Open(name)
	if err != nil {
		// for files that don't exist, check for underlying matching files
		if errors.Is(err, fs.ErrNotExist) && path.Ext(name) == ".html" {
			return vfs.openVirtual(name, err)
		}
		// no matching underlying file; return error from opening the underlying file
		return nil, err
	}
	// check for directory
	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	// Directories need to be virtual so that we don't
	// accidentally pick up the wrong ReadDir implementation.
	if fi.IsDir() {
		// don't close f because it will be used for ReadDir
		return &virtualDir{File: f, vfs: vfs, path: name}, nil
	}
	// The sitemap file, if present, needs to be handled as a virtual
	// file to process the template.
	if name == "sitemap.txt" {
		defer f.Close()
		return vfs.newSitemapFile(f, name)
	}
	return f, nil
}

// openVirtual finds the Markdown or image file behind a virtual HTML page.
// notFound is returned when there is none.
func (vfs *FS) openVirtual(name string, notFound error) (fs.File, error) {
	if f, err := vfs.fs.Open(strings.TrimSuffix(name, path.Ext(name)) + ".md"); err == nil {
		defer f.Close()
		return vfs.newMarkdownFile(f, name)
	}
	// only image folders check image files
	img, ok := findImage(vfs.fs, name)
	if !ok {
		return nil, notFound
	}
	f, err := vfs.fs.Open(img)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return vfs.newImageFile(f, name)
}
