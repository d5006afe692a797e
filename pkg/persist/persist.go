package persist

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// ErrCorrupt is returned when a file exists but cannot be decoded or does not
// match its schema. The file is never overwritten in that case.
var ErrCorrupt = errors.New("corrupt document")

// Persistor loads and saves a whole JSON document.
type Persistor interface {
	Save(v interface{}) error
	Load(v interface{}) error
}

var _ Persistor = &JSON{}

type JSON struct {
	file   string
	schema *jsonschema.Schema
}

// InJSON binds a document to a file. schema may be nil to skip validation.
func InJSON(file string, schema *jsonschema.Schema) *JSON {
	return &JSON{file: file, schema: schema}
}

func (j JSON) File() string {
	return j.file
}

// Save replaces the whole file with v
func (j JSON) Save(v interface{}) error {
	bs, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	dir := filepath.Dir(j.file)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	return atomicWriteFile(j.file, append(bs, '\n'), 0660)
}

// Load decodes the file into v.
// A missing file is not an error: v keeps whatever empty document the caller
// put in it.
func (j JSON) Load(v interface{}) error {
	bs, err := os.ReadFile(j.file)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	if j.schema != nil {
		var doc interface{}
		if err := json.Unmarshal(bs, &doc); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrCorrupt, j.file, err)
		}
		if err := j.schema.Validate(doc); err != nil {
			return fmt.Errorf("%w: %s: %s", ErrCorrupt, j.file, describe(err))
		}
	}
	if err := json.Unmarshal(bs, v); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrCorrupt, j.file, err)
	}
	return nil
}

// atomicWriteFile writes to a temp file in the same directory and renames it
// over path, so readers see either the old or the new document.
func atomicWriteFile(path string, content []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	base := filepath.Base(path)

	tmp, err := os.CreateTemp(dir, base+".tmp.*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Chmod(perm); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}
