package db

import (
	"fmt"
	"strings"
	"sync"

	kverrors "exdb/internal/errors"
	"exdb/internal/metrics"
	"exdb/internal/shared"
	"exdb/internal/storage"
	"exdb/internal/wal"
)

// KeyValueDB is the database façade. It owns the in-memory mapping and
// coordinates the table store and the write-ahead log under a single
// reader-writer lock. One instance per pair of files; there is no
// cross-process locking.
type KeyValueDB struct {
	mutex  sync.RWMutex
	data   map[string]string
	store  storage.TableStore
	log    wal.WAL
	logger *shared.Logger
}

// New creates a façade over the given table store and WAL and recovers the
// mapping: the snapshot is loaded first, then the WAL is replayed on top of
// it. Recovery failures are returned, not masked.
func New(store storage.TableStore, log wal.WAL) (*KeyValueDB, error) {
	data, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load table store: %w", err)
	}

	replayed, err := log.Replay(data)
	if err != nil {
		return nil, fmt.Errorf("failed to replay WAL: %w", err)
	}

	d := &KeyValueDB{
		data:   data,
		store:  store,
		log:    log,
		logger: shared.DefaultLogger,
	}

	d.logger.Info("recovered %d entries (%d WAL records replayed)", len(data), replayed)
	metrics.Default.LiveKeys.Set(float64(len(data)))
	return d, nil
}

// Open constructs a façade over file-backed implementations at the given
// paths. Both files are opened lazily per operation, not held open.
func Open(tablePath, walPath string) (*KeyValueDB, error) {
	return New(storage.NewFileTableStore(tablePath), wal.NewFileWAL(walPath))
}

// Put inserts or updates a key-value pair. The mapping is mutated first,
// then the WAL record is appended; a crash between the two loses the pair
// on recovery since only the log is replayed.
func (d *KeyValueDB) Put(key, value string) error {
	if err := validateToken("key", key); err != nil {
		return err
	}
	if err := validateToken("value", value); err != nil {
		return err
	}

	d.mutex.Lock()
	defer d.mutex.Unlock()

	d.data[key] = value
	if err := d.log.LogPut(key, value); err != nil {
		metrics.Default.OpErrors.WithLabelValues(metrics.OpPut).Inc()
		return err
	}

	metrics.Default.OpTotal.WithLabelValues(metrics.OpPut).Inc()
	metrics.Default.LiveKeys.Set(float64(len(d.data)))
	return nil
}

// Get retrieves the value for a key. Absence is reported as a typed
// not-found error, distinguishable via errors.IsNotFound.
func (d *KeyValueDB) Get(key string) (string, error) {
	d.mutex.RLock()
	defer d.mutex.RUnlock()

	metrics.Default.OpTotal.WithLabelValues(metrics.OpGet).Inc()

	value, exists := d.data[key]
	if !exists {
		metrics.Default.NotFound.Inc()
		return "", kverrors.New(kverrors.ErrorTypeNotFound,
			fmt.Sprintf("key not found: %s", key), nil)
	}
	return value, nil
}

// Remove deletes a key-value pair. The DEL record is appended even when the
// key did not exist; WAL growth is not gated on whether a change occurred.
func (d *KeyValueDB) Remove(key string) error {
	if err := validateToken("key", key); err != nil {
		return err
	}

	d.mutex.Lock()
	defer d.mutex.Unlock()

	delete(d.data, key)
	if err := d.log.LogDelete(key); err != nil {
		metrics.Default.OpErrors.WithLabelValues(metrics.OpDelete).Inc()
		return err
	}

	metrics.Default.OpTotal.WithLabelValues(metrics.OpDelete).Inc()
	metrics.Default.LiveKeys.Set(float64(len(d.data)))
	return nil
}

// MergeLogs snapshots the mapping to the table store, then truncates the
// WAL. This is the only way the WAL is bounded; callers must invoke it
// periodically. The save and the truncate are not atomic as a pair, so a
// crash between them is an open correctness gap.
func (d *KeyValueDB) MergeLogs() error {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	if err := d.store.Save(d.data); err != nil {
		metrics.Default.OpErrors.WithLabelValues(metrics.OpMerge).Inc()
		return fmt.Errorf("failed to save table store: %w", err)
	}
	if err := d.log.Clear(); err != nil {
		metrics.Default.OpErrors.WithLabelValues(metrics.OpMerge).Inc()
		return fmt.Errorf("failed to clear WAL: %w", err)
	}

	d.logger.Info("merged %d entries into table store", len(d.data))
	metrics.Default.OpTotal.WithLabelValues(metrics.OpMerge).Inc()
	metrics.Default.MergeTotal.Inc()
	return nil
}

// Len returns the number of live entries in the mapping.
func (d *KeyValueDB) Len() int {
	d.mutex.RLock()
	defer d.mutex.RUnlock()
	return len(d.data)
}

// validateToken rejects keys and values the flat text encoding cannot
// represent: empty strings and anything containing whitespace.
func validateToken(what, token string) error {
	if token == "" {
		return kverrors.New(kverrors.ErrorTypeInvalidInput,
			fmt.Sprintf("%s must not be empty", what), nil)
	}
	if strings.ContainsAny(token, " \t\n\r\v\f") {
		return kverrors.New(kverrors.ErrorTypeInvalidInput,
			fmt.Sprintf("%s must not contain whitespace: %q", what, token), nil)
	}
	return nil
}
