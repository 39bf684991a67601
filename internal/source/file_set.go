package source

import (
	"fmt"
	"os"

	"fortio.org/safecast"
)

// FileSet manages a collection of source files keyed by normalized path.
// Reading from disk happens here, before any diagnostic is rendered; the
// renderer itself never touches IO.
type FileSet struct {
	files []*File
	index map[string]FileID // path -> id
}

// NewFileSet creates a new empty FileSet.
func NewFileSet() *FileSet {
	return &FileSet{
		files: make([]*File, 0),
		index: make(map[string]FileID),
	}
}

// Add scrubs raw bytes (BOM, CRLF) and stores the resulting file. It always
// creates a new FileID even if a file with the same path already exists; the
// index tracks the latest version.
func (fileSet *FileSet) Add(path string, content []byte, flags FileFlags) *File {
	text, scrubbed := scrub(content)
	normalizedPath := cleanPath(path)

	lenFiles, err := safecast.Conv[uint32](len(fileSet.files))
	if err != nil {
		panic(fmt.Errorf("len files overflow: %w", err))
	}
	id := FileID(lenFiles)

	f := NewFile(normalizedPath, text)
	f.ID = id
	f.Flags = flags | scrubbed
	fileSet.files = append(fileSet.files, f)
	// Всегда обновляем индекс на последнюю версию файла
	fileSet.index[normalizedPath] = id
	return f
}

// Load reads a file from disk and calls Add.
func (fileSet *FileSet) Load(path string) (*File, error) {
	// #nosec G304 -- path is provided by the caller
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return fileSet.Add(path, content, 0), nil
}

// AddVirtual adds a virtual file (stdin, test, or generated) with the FileVirtual flag.
func (fileSet *FileSet) AddVirtual(name, content string) *File {
	return fileSet.Add(name, []byte(content), FileVirtual)
}

// Get returns the file for the given ID.
func (fileSet *FileSet) Get(id FileID) *File {
	return fileSet.files[id]
}

// GetByPath возвращает *File по пути, если был загружен в этот FileSet.
func (fileSet *FileSet) GetByPath(path string) (*File, bool) {
	if id, ok := fileSet.index[cleanPath(path)]; ok {
		return fileSet.files[id], true
	}
	return nil, false
}

// Len returns the number of stored files.
func (fileSet *FileSet) Len() int {
	return len(fileSet.files)
}
