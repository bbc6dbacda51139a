package virtual

import (
	"bytes"
	"io/fs"
)

/*
Types of virtual files:

	Directory
	Markdown page
	Image page
	Redirect page
	Sitemap
*/

// renderFile holds the output of rendering a page. The underlying file
// is closed once rendering finishes, so renderFile only keeps its info.
type renderFile struct {
	info   renderFileInfo
	reader *bytes.Reader
}

func newRenderFile(fi fs.FileInfo, name string, b []byte) *renderFile {
	return &renderFile{
		info: renderFileInfo{
			virtualFileInfo: virtualFileInfo{FileInfo: fi, name: name},
			size:            int64(len(b)),
		},
		reader: bytes.NewReader(b),
	}
}

// Stat returns a FileInfo describing the rendered file.
func (f *renderFile) Stat() (fs.FileInfo, error) {
	return f.info, nil
}

// Read reads up to len(b) bytes from the File. It returns the number of bytes read
// and any error encountered. At end of file, Read returns 0, io.EOF.
func (f *renderFile) Read(b []byte) (int, error) {
	return f.reader.Read(b)
}

// Seek sets the offset for the next Read, interpreted according to whence.
// It makes rendered files usable with http.ServeContent.
func (f *renderFile) Seek(offset int64, whence int) (int64, error) {
	return f.reader.Seek(offset, whence)
}

// Close closes the file. Rendered files are in memory, so this function does nothing.
func (f *renderFile) Close() error {
	return nil
}

// virtualFileInfo renames an underlying file.
type virtualFileInfo struct {
	fs.FileInfo
	name string
}

// Name returns the base name of the file.
func (fi virtualFileInfo) Name() string {
	return fi.name
}

// renderFileInfo reports the length of the rendered data rather than the
// length of the source file.
type renderFileInfo struct {
	virtualFileInfo

	size int64 // Size of file data
}

// Size reports the length of the file.
func (rfi renderFileInfo) Size() int64 {
	return rfi.size
}

// Mode returns the mode of a regular file.
func (rfi renderFileInfo) Mode() fs.FileMode {
	return rfi.virtualFileInfo.Mode() &^ fs.ModeType
}

// IsDir reports false; rendered files are never directories.
func (rfi renderFileInfo) IsDir() bool {
	return false
}

// virtualDirEntry is a special version of fileInfo to represent directory entries.
type virtualDirEntry struct {
	virtualFileInfo
}

// Type returns the type bits for the entry.
// The type bits are a subset of the usual FileMode bits, those returned by the FileMode.Type method.
func (di virtualDirEntry) Type() fs.FileMode {
	return di.virtualFileInfo.Mode().Type()
}

// Info returns the FileInfo for the file or subdirectory described by the entry.
// The returned info is from the time of the directory read.
func (di virtualDirEntry) Info() (fs.FileInfo, error) {
	return di.virtualFileInfo, nil
}
