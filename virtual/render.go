package virtual

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"sort"
	"strings"
	texttemplate "text/template"

	"github.com/mctaylorpants/alextaylor-ca/content"
	log "github.com/sirupsen/logrus"
)

// redirectTemplate is used for pages whose front matter has a redirect.
var redirectTemplate = template.Must(template.New("redirect").Parse(`<!DOCTYPE html>
<html lang="en">
	<head>
		<meta charset="utf-8">
		<meta http-equiv="refresh" content="0; url={{.}}">
		<link rel="canonical" href="{{.}}">
		<title>Redirecting</title>
	</head>
	<body>
		<a href="{{.}}">Redirecting...</a>
	</body>
</html>
`))

// newMarkdownFile reads the underlying markdown file, extracts the front matter,
// renders the markdown, and executes the specified template, returning the
// resulting renderFile.
func (vfs *FS) newMarkdownFile(f fs.File, pathname string) (fs.File, error) {
	fi, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("newMarkdownFile: %w", err)
	}
	b, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("newMarkdownFile: %w", err)
	}

	front, r, err := content.Parse(b)
	if err != nil {
		return nil, &fs.PathError{Op: "open", Path: pathname, Err: err}
	}

	// Don't render until date/time is passed
	if front.Created().After(vfs.now()) {
		return nil, &fs.PathError{Op: "open", Path: pathname, Err: fs.ErrNotExist}
	}

	p, bn := path.Split(pathname)
	var wtr bytes.Buffer

	if front.Redirect != "" {
		err = redirectTemplate.Execute(&wtr, front.Redirect)
		if err != nil {
			return nil, fmt.Errorf("newMarkdownFile: %w", err)
		}
		return newRenderFile(fi, bn, wtr.Bytes()), nil
	}

	md, err := vfs.renderer.Render(r)
	if err != nil {
		return nil, fmt.Errorf("newMarkdownFile: %w", err)
	}

	// prepare template data
	var data = data{
		FrontMatter: front,
		Page: PageInfo{
			Path:     "/" + p,
			Filename: bn,
		},
		Site:    vfs.Config(),
		Content: template.HTML(md),
	}

	// Render the HTML template
	templateName := "default"
	if data.FrontMatter.Template != "" {
		templateName = data.FrontMatter.Template
	}
	tpl := vfs.getTemplates()
	err = tpl.ExecuteTemplate(&wtr, templateName, data)
	if err != nil {
		log.WithField("page", pathname).Errorf("Error executing template: %s", err)
	}

	return newRenderFile(fi, bn, wtr.Bytes()), nil
}

// newImageFile reads the underlying image file, creates front matter,
// and executes the image template, returning the resulting renderFile.
func (vfs *FS) newImageFile(f fs.File, pathname string) (fs.File, error) {
	fi, err := f.Stat()
	if err != nil {
		return nil, err
	}

	// prepare template data
	p, bn := path.Split(pathname)
	var data = data{
		FrontMatter: content.FrontMatter{
			Title: strings.TrimSuffix(bn, path.Ext(bn)),
			Date:  fi.ModTime(),
		},
		Page: PageInfo{
			Path:     "/" + p,
			Filename: fi.Name(),
		},
		Site: vfs.Config(),
	}

	// Render the HTML template
	tpl := vfs.getTemplates()
	var wtr bytes.Buffer
	err = tpl.ExecuteTemplate(&wtr, "image", data)
	if err != nil {
		log.WithField("page", pathname).Errorf("Error executing template: %s", err)
	}

	return newRenderFile(fi, bn, wtr.Bytes()), nil
}

// newSitemapFile parses the underlying text file as a template, lists the
// pages of the site, and executes the template, returning the resulting
// renderFile.
func (vfs *FS) newSitemapFile(f fs.File, pathname string) (fs.File, error) {
	fi, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("newSitemapFile: %w", err)
	}
	b, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("newSitemapFile: %w", err)
	}
	tpl, err := texttemplate.New("sitemap").Parse(string(b))
	if err != nil {
		return nil, fmt.Errorf("newSitemapFile: %w", err)
	}
	pages, err := vfs.sitemapPages()
	if err != nil {
		return nil, fmt.Errorf("newSitemapFile: %w", err)
	}
	var wtr bytes.Buffer
	err = tpl.Execute(&wtr, pages)
	if err != nil {
		return nil, fmt.Errorf("newSitemapFile: %w", err)
	}
	_, bn := path.Split(pathname)
	return newRenderFile(fi, bn, wtr.Bytes()), nil
}

// sitemapPages walks the virtual file system and returns the path of every page.
// Folder index pages are listed as the folder itself.
func (vfs *FS) sitemapPages() ([]string, error) {
	var result []string
	err := fs.WalkDir(vfs, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || path.Ext(p) != ".html" {
			return nil
		}
		switch path.Base(p) {
		case "404.html", "500.html":
			return nil
		case "index.html":
			p = strings.TrimSuffix(p, "index.html")
		}
		result = append(result, "/"+p)
		return nil
	})
	sort.Strings(result)
	return result, err
}
