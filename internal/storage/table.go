package storage

import (
	"bufio"
	"fmt"
	"os"

	kverrors "exdb/internal/errors"
)

// TableStore defines the interface for snapshot persistence of the full
// key-value mapping.
type TableStore interface {
	Load() (map[string]string, error)
	Save(data map[string]string) error
}

// FileTableStore implements TableStore on a flat text file, one
// whitespace-separated "key value" line per entry. The file is opened
// lazily on each call and never held open.
type FileTableStore struct {
	path string
}

// NewFileTableStore creates a new FileTableStore instance
func NewFileTableStore(path string) *FileTableStore {
	return &FileTableStore{path: path}
}

// Load reads the snapshot file into a mapping. An absent file yields an
// empty mapping; any other I/O failure is returned. Tokens are consumed
// pairwise, so a trailing key with no value at end-of-file is ignored.
func (s *FileTableStore) Load() (map[string]string, error) {
	data := make(map[string]string)

	file, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return data, nil
		}
		return nil, kverrors.New(kverrors.ErrorTypeStorage,
			fmt.Sprintf("failed to open table file %s", s.path), err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		key := scanner.Text()
		if !scanner.Scan() {
			break
		}
		data[key] = scanner.Text()
	}
	if err := scanner.Err(); err != nil {
		return nil, kverrors.New(kverrors.ErrorTypeStorage,
			"failed to read table file", err)
	}

	return data, nil
}

// Save overwrites the snapshot file with one line per entry. The file is
// truncated on open; there is no temporary file or atomic rename, so a
// failure mid-write loses entries not yet flushed. Iteration order of the
// mapping is unspecified and so is the output order.
func (s *FileTableStore) Save(data map[string]string) error {
	file, err := os.Create(s.path)
	if err != nil {
		return kverrors.New(kverrors.ErrorTypeStorage,
			fmt.Sprintf("failed to create table file %s", s.path), err)
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	for key, value := range data {
		if _, err := fmt.Fprintf(w, "%s %s\n", key, value); err != nil {
			return kverrors.New(kverrors.ErrorTypeStorage,
				"failed to write table entry", err)
		}
	}
	if err := w.Flush(); err != nil {
		return kverrors.New(kverrors.ErrorTypeStorage,
			"failed to flush table file", err)
	}

	return nil
}
