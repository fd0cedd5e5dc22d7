package contract

import (
	"encoding/json"
	"os"
)

// Store is the key/value state the contract persists into. The host
// platform provides the real one; tests use MemoryState and the local
// runner a FileState or SQLiteState.
type Store interface {
	Set(key, value string)
	Get(key string) *string
	Delete(key string)
}

// MemoryState is a plain in-memory Store.
type MemoryState struct {
	db map[string]string
}

func NewMemoryState() *MemoryState {
	return &MemoryState{db: make(map[string]string)}
}

func (m *MemoryState) Set(key, value string) {
	m.db[key] = value
}

func (m *MemoryState) Get(key string) *string {
	val, ok := m.db[key]
	if !ok {
		return nil
	}
	return &val
}

func (m *MemoryState) Delete(key string) {
	delete(m.db, key)
}

// FileState persists the whole state map to a JSON file on every write.
// Slow but trivially inspectable; used for local debugging only.
type FileState struct {
	db       map[string]string
	filename string
}

func NewFileState(filename string) *FileState {
	f := &FileState{
		db:       make(map[string]string),
		filename: filename,
	}
	f.loadFromFile()
	return f
}

func (f *FileState) Set(key, value string) {
	f.db[key] = value
	if err := f.saveToFile(); err != nil {
		panic(err)
	}
}

func (f *FileState) Get(key string) *string {
	val, ok := f.db[key]
	if !ok {
		return nil
	}
	return &val
}

func (f *FileState) Delete(key string) {
	delete(f.db, key)
	if err := f.saveToFile(); err != nil {
		panic(err)
	}
}

func (f *FileState) loadFromFile() {
	data, err := os.ReadFile(f.filename)
	if err != nil {
		if os.IsNotExist(err) {
			return
		}
		panic(err)
	}
	if err := json.Unmarshal(data, &f.db); err != nil {
		panic(err)
	}
}

func (f *FileState) saveToFile() error {
	// indent so the file can be inspected manually
	finalData, err := json.MarshalIndent(f.db, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(f.filename, finalData, 0644)
}
