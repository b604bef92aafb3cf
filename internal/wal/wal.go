package wal

import (
	"bufio"
	"fmt"
	"os"

	kverrors "exdb/internal/errors"
	"exdb/internal/metrics"
)

// Operation tokens as written to the log file.
const (
	OpPut    = "PUT"
	OpDelete = "DEL"
)

// WAL defines the interface for the write-ahead log: an ordered, durable
// record of operations not yet merged into the table store.
type WAL interface {
	LogPut(key, value string) error
	LogDelete(key string) error
	Replay(data map[string]string) (int, error)
	Clear() error
}

// FileWAL implements WAL on an append-only text file, one operation per
// line: "PUT <key> <value>" or "DEL <key>". The file is opened for each
// call and closed again; it is read only at startup.
type FileWAL struct {
	path string
}

// NewFileWAL creates a new FileWAL instance
func NewFileWAL(path string) *FileWAL {
	return &FileWAL{path: path}
}

// LogPut appends a PUT record for the given pair.
func (w *FileWAL) LogPut(key, value string) error {
	if err := w.append(fmt.Sprintf("%s %s %s\n", OpPut, key, value)); err != nil {
		return err
	}
	metrics.Default.WALAppends.WithLabelValues(metrics.OpPut).Inc()
	return nil
}

// LogDelete appends a DEL record for the given key.
func (w *FileWAL) LogDelete(key string) error {
	if err := w.append(fmt.Sprintf("%s %s\n", OpDelete, key)); err != nil {
		return err
	}
	metrics.Default.WALAppends.WithLabelValues(metrics.OpDelete).Inc()
	return nil
}

func (w *FileWAL) append(record string) error {
	file, err := os.OpenFile(w.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return kverrors.New(kverrors.ErrorTypeStorage,
			fmt.Sprintf("failed to open WAL file %s", w.path), err)
	}
	defer file.Close()

	if _, err := file.WriteString(record); err != nil {
		return kverrors.New(kverrors.ErrorTypeStorage,
			"failed to append WAL record", err)
	}
	return nil
}

// Replay reads the log from the start and applies each record to the given
// mapping in file order. It returns the number of records applied. An
// absent file is an empty log.
//
// Token consumption is asymmetric and must stay that way for on-disk
// compatibility: PUT consumes operation, key and value tokens, DEL consumes
// operation and key only. A PUT whose value token is missing at end-of-file
// is dropped. An unrecognized operation token still consumes the token
// after it and applies nothing.
func (w *FileWAL) Replay(data map[string]string) (int, error) {
	file, err := os.Open(w.path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, kverrors.New(kverrors.ErrorTypeStorage,
			fmt.Sprintf("failed to open WAL file %s", w.path), err)
	}
	defer file.Close()

	applied := 0
	scanner := bufio.NewScanner(file)
	scanner.Split(bufio.ScanWords)
scan:
	for scanner.Scan() {
		op := scanner.Text()
		if !scanner.Scan() {
			break
		}
		key := scanner.Text()

		switch op {
		case OpPut:
			if !scanner.Scan() {
				break scan
			}
			data[key] = scanner.Text()
			applied++
		case OpDelete:
			delete(data, key)
			applied++
		}
	}
	if err := scanner.Err(); err != nil {
		return applied, kverrors.New(kverrors.ErrorTypeStorage,
			"failed to read WAL file", err)
	}

	metrics.Default.WALReplayed.Add(float64(applied))
	return applied, nil
}

// Clear truncates the log to empty. Callers must only invoke it after a
// successful table store save of the exact mapping the log implies; the
// save and the truncate are not atomic as a pair.
func (w *FileWAL) Clear() error {
	file, err := os.OpenFile(w.path, os.O_TRUNC|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return kverrors.New(kverrors.ErrorTypeStorage,
			fmt.Sprintf("failed to truncate WAL file %s", w.path), err)
	}
	return file.Close()
}
