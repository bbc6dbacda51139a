package virtual

import (
	"io/fs"
	"path"
	"strings"
)

// imageFolders are top-level folders whose images get an HTML page.
var imageFolders = []string{"photos", "images", "pictures", "cartoons", "toons", `sketches`, `artwork`, `drawings`}

// imageExtensions are the image types that get an HTML page.
var imageExtensions = []string{".png", ".jpg", ".gif", ".webp", ".jpeg"}

// isHiddenFile returns true if the given file is considered
// hidden from outside view.
func isHiddenFile(name string) bool {
	if name == configFile {
		return true
	}
	first, _, _ := strings.Cut(name, "/")
	return first == "template"
}

// containsSpecialFile reports whether name contains a path element starting with a period.
// The name is assumed to be a delimited by forward slashes, as guaranteed by the fs.FS interface.
func containsSpecialFile(name string) bool {
	parts := strings.Split(name, "/")
	for _, part := range parts {
		if strings.HasPrefix(part, ".") {
			return true
		}
	}
	return false
}

// hasImageFolderPrefix checks if the entry is in an image folder.
func hasImageFolderPrefix(s string) bool {
	s = strings.TrimPrefix(s, "/")
	for _, f := range imageFolders {
		if s == f || strings.HasPrefix(s, f+"/") {
			return true
		}
	}
	return false
}

// hasImageExtension checks if the path ends in an image type.
func hasImageExtension(s string) bool {
	ext := strings.ToLower(path.Ext(s))
	for _, e := range imageExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// findImage returns the image behind the page name when name is in an image
// folder. Extensions match without regard to case, as in directory listings.
func findImage(fsys fs.FS, name string) (string, bool) {
	if !hasImageFolderPrefix(name) {
		return "", false
	}
	dir, file := path.Split(name)
	base := strings.TrimSuffix(file, path.Ext(file))
	entries, err := fs.ReadDir(fsys, path.Clean(dir))
	if err != nil {
		return "", false
	}
	for _, entry := range entries {
		n := entry.Name()
		if !entry.IsDir() && hasImageExtension(n) && strings.TrimSuffix(n, path.Ext(n)) == base {
			return path.Join(dir, n), true
		}
	}
	return "", false
}
