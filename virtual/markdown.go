package virtual

import (
	"fmt"
	"html/template"
	"io/fs"
	"path"
	"strings"
	"time"

	"github.com/mctaylorpants/alextaylor-ca/content"
	log "github.com/sirupsen/logrus"
)

// pathToMarkdown takes a URL path and converts it into the path to the associated Markdown file.
func pathToMarkdown(filename string) string {
	// check for folder - if so, add index.md
	if strings.HasSuffix(filename, "/") {
		filename += "index.md"
	}
	filename = path.Clean(filename)
	// removing leading / so we find it on the file system
	filename = strings.TrimPrefix(filename, "/")
	// make sure the extension is Markdown
	switch path.Ext(filename) {
	case "":
		filename += ".md"
	case ".html":
		filename = strings.TrimSuffix(filename, ".html") + ".md"
	}
	return filename
}

// renderMarkdown renders the markdown for the given file and returns the frontmatter.
func (vfs *FS) renderMarkdown(filename string) (*content.FrontMatter, template.HTML, time.Time, error) {
	var modTime time.Time
	filename = pathToMarkdown(filename)
	s, err := fs.Stat(vfs.fs, filename)
	if err != nil {
		return nil, "", modTime, fmt.Errorf("renderMarkdown: %w", err)
	}
	b, err := fs.ReadFile(vfs.fs, filename)
	if err != nil {
		return nil, "", modTime, fmt.Errorf("renderMarkdown: %w", err)
	}
	fm, r, err := content.Parse(b)
	if err != nil {
		return nil, "", modTime, fmt.Errorf("renderMarkdown: %w", err)
	}
	md, err := vfs.renderer.Render(r)
	if err != nil {
		return nil, "", modTime, fmt.Errorf("renderMarkdown: %w", err)
	}
	return &fm, template.HTML(md), s.ModTime(), nil
}

// readFrontMatter reads only the front matter of the given file.
func (vfs *FS) readFrontMatter(name string, fm *content.FrontMatter) error {
	b, err := fs.ReadFile(vfs.fs, name)
	if err != nil {
		return fmt.Errorf("readFrontMatter: %w", err)
	}
	*fm, _, err = content.Parse(b)
	if err != nil {
		return fmt.Errorf("readFrontMatter: %w", err)
	}
	return nil
}

// md convert the given markdown file to HTML and is used in templates.
func (vfs *FS) md(filename string) template.HTML {
	_, md, _, err := vfs.renderMarkdown(filename)
	if err != nil {
		log.WithField("file", filename).Warnf("markdown: %s", err)
		return ""
	}
	return md
}

// fm returns front matter for the given file and is used in templates.
func (vfs *FS) fm(filename string) *content.FrontMatter {
	var fm content.FrontMatter
	err := vfs.readFrontMatter(pathToMarkdown(filename), &fm)
	if err != nil {
		log.WithField("file", filename).Warnf("frontmatter: %s", err)
		return nil
	}
	return &fm
}
