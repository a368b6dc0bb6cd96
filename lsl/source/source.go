// Package source provides the input container for LSL compilation.
package source

// File represents a single Loom schema source file with its content.
type File struct {
	Path string
	Data string
}

// NewFile creates a new source File.
func NewFile(path, data string) File {
	return File{
		Path: path,
		Data: data,
	}
}
