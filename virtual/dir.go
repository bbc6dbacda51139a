package virtual

import (
	"errors"
	"io"
	"io/fs"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/mctaylorpants/alextaylor-ca/content"
	log "github.com/sirupsen/logrus"
)

// File holds data about a page endpoint.
type File struct {
	FrontMatter  content.FrontMatter
	Filename     string
	OriginalFile string // image behind an image page
}

// virtualDir presents a directory with Markdown files renamed to the HTML
// pages they render, and with hidden and unpublished files removed.
type virtualDir struct {
	fs.File

	vfs     *FS
	path    string
	entries []fs.DirEntry
	loaded  bool
	pos     int
}

// ReadDir reads the contents of the directory and returns
// a slice of up to n DirEntry values in directory order.
// Subsequent calls on the same file will yield further DirEntry values.
//
// If n > 0, ReadDir returns at most n DirEntry structures.
// In this case, if ReadDir returns an empty slice, it will return
// a non-nil error explaining why.
// At the end of a directory, the error is io.EOF.
//
// If n <= 0, ReadDir returns all the DirEntry values from the directory
// in a single slice.
func (d *virtualDir) ReadDir(n int) ([]fs.DirEntry, error) {
	if !d.loaded {
		err := d.load()
		if err != nil {
			return nil, err
		}
	}
	rest := len(d.entries) - d.pos
	if n <= 0 {
		r := make([]fs.DirEntry, rest)
		copy(r, d.entries[d.pos:])
		d.pos = len(d.entries)
		return r, nil
	}
	if rest == 0 {
		return nil, io.EOF
	}
	if n > rest {
		n = rest
	}
	r := make([]fs.DirEntry, n)
	copy(r, d.entries[d.pos:d.pos+n])
	d.pos += n
	return r, nil
}

// load reads the underlying directory and builds the virtual entries.
func (d *virtualDir) load() error {
	rdf, ok := d.File.(fs.ReadDirFile)
	if !ok {
		return &fs.PathError{Op: "readdir", Path: d.path, Err: errors.New("not implemented")}
	}
	entries, err := rdf.ReadDir(-1)
	if err != nil {
		return err
	}
	names := make(map[string]bool, len(entries))
	for _, entry := range entries {
		names[entry.Name()] = true
	}
	add := func(fi fs.FileInfo, name string) {
		d.entries = append(d.entries, virtualDirEntry{virtualFileInfo{FileInfo: fi, name: name}})
	}
	imageFolder := hasImageFolderPrefix(d.path)
	for _, entry := range entries {
		name := entry.Name()
		full := path.Join(d.path, name)
		if strings.HasPrefix(name, ".") || isHiddenFile(full) {
			continue
		}
		fi, err := entry.Info()
		if err != nil {
			return err
		}
		switch {
		case !entry.IsDir() && path.Ext(name) == ".md":
			page := strings.TrimSuffix(name, ".md") + ".html"
			if names[page] || !d.vfs.published(full) {
				continue
			}
			add(fi, page)
		case !entry.IsDir() && imageFolder && hasImageExtension(name):
			add(fi, name)
			page := strings.TrimSuffix(name, path.Ext(name)) + ".html"
			if !names[page] && !names[strings.TrimSuffix(name, path.Ext(name))+".md"] {
				names[page] = true
				add(fi, page)
			}
		default:
			add(fi, name)
		}
	}
	sort.Slice(d.entries, func(i, j int) bool { return d.entries[i].Name() < d.entries[j].Name() })
	d.loaded = true
	return nil
}

// published reports whether the Markdown file at name is visible now.
// Files with broken front matter are listed so their errors surface on open.
func (vfs *FS) published(name string) bool {
	var fm content.FrontMatter
	err := vfs.readFrontMatter(name, &fm)
	if err != nil {
		return true
	}
	return !fm.Created().After(vfs.now())
}

// dir returns a slice of files and is used in templates.
func (vfs *FS) dir(folderpath string) []File {
	folderpath = "./" + strings.TrimPrefix(folderpath, "/")
	folderpath = path.Clean(folderpath)
	entries, err := fs.ReadDir(vfs, folderpath)
	if err != nil {
		log.WithField("folder", folderpath).Warnf("dir: %s", err)
		return nil
	}
	f := make([]File, 0, len(entries))
	for _, entry := range entries {
		if entry.Name() == "index.html" || entry.Name() == "404.html" || entry.Name() == "500.html" {
			continue
		}
		var (
			fm       content.FrontMatter
			modTime  time.Time
			original string
		)
		fi, err := entry.Info()
		if err == nil {
			modTime = fi.ModTime().Local()
		}
		if !entry.IsDir() && path.Ext(entry.Name()) == ".html" {
			base := strings.TrimSuffix(entry.Name(), ".html")
			err = vfs.readFrontMatter(path.Join(folderpath, base+".md"), &fm)
			if err != nil {
				if !errors.Is(err, fs.ErrNotExist) {
					log.WithField("file", entry.Name()).Warnf("dir: %s", err)
				} else if img, ok := findImage(vfs.fs, path.Join(folderpath, entry.Name())); ok {
					original = path.Base(img)
				}
			}
		}
		if fm.Title == "" {
			fm.Title = strings.TrimSuffix(entry.Name(), path.Ext(entry.Name()))
		}
		if fm.Created().IsZero() {
			fm.Date = modTime
		}
		f = append(f, File{FrontMatter: fm, Filename: entry.Name(), OriginalFile: original})
	}
	return f
}

// sortByTime sorts the files by the time in reverse order
func sortByTime(f []File) []File {
	sort.SliceStable(f, func(i, j int) bool { return f[j].FrontMatter.Created().Before(f[i].FrontMatter.Created()) })
	return f
}

// sortByName sorts the files by name in reverse order
func sortByName(f []File) []File {
	sort.Slice(f, func(i, j int) bool { return f[j].Filename < f[i].Filename })
	return f
}

// reverse reverses the order of the file list.
func reverse(f []File) []File {
	j := len(f) - 1
	for i := 0; i < len(f)/2; i++ {
		f[i], f[j] = f[j], f[i]
		j--
	}
	return f
}

// filter trims out non-matching files based on name.
func filter(f []File, pat ...string) []File {
	var r []File
	for i := range f {
		if match(f[i].Filename, pat...) {
			r = append(r, f[i])
		}
	}
	return r
}

// match uses path.Match to test for a match.
func match(s string, pat ...string) bool {
	for i := range pat {
		b, err := path.Match(pat[i], s)
		if err != nil {
			log.WithField("pattern", pat[i]).Warnf("match: %s", err)
		}
		if b {
			return true
		}
	}
	return false
}
