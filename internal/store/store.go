// Package store implements the persisted collection store backing the
// ledger. Two backends are provided: a JSON-file-per-collection backend
// and a SQLite backend holding each collection as a JSON document row.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"reflect"

	"github.com/leandrodevsilva/Gestoque/pkg/types"
)

// Open creates the data directory if needed and returns a Store for the
// configured backend.
func Open(config types.Config) (types.Store, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	switch config.Backend {
	case types.BackendFile:
		return newFileStore(dataDir), nil
	case types.BackendSQLite:
		return newSQLiteStore(dataDir)
	default:
		return nil, types.ErrBackendUnknown
	}
}

// decodeLenient unmarshals data into out, but only on full success. A
// direct json.Unmarshal partially populates out before failing on
// wrong-shape input; decoding into a fresh value first keeps the
// caller-supplied default intact on any failure.
func decodeLenient(data []byte, out any) {
	rv := reflect.ValueOf(out)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return
	}
	fresh := reflect.New(rv.Elem().Type())
	if err := json.Unmarshal(data, fresh.Interface()); err != nil {
		return
	}
	rv.Elem().Set(fresh.Elem())
}
