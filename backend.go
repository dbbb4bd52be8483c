package pyrostock

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/lzhou/pyrostock/date"
)

// File names of the two durable documents inside the store directory.
const (
	inventoryFile = "inventory.jsonl"
	historyFile   = "history.jsonl"
)

// DirBackend persists the store documents as JSONL files in a directory.
type DirBackend struct {
	Dir string
}

// LoadItems reads and decodes the inventory document.
func (b *DirBackend) LoadItems() ([]Item, error) {
	path := filepath.Join(b.Dir, inventoryFile)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open inventory file %q: %w", path, err)
	}
	defer f.Close()

	items, err := DecodeItems(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode inventory file %q: %w", path, err)
	}
	return items, nil
}

// SaveItems rewrites the inventory document wholesale.
func (b *DirBackend) SaveItems(items []Item) error {
	if err := os.MkdirAll(b.Dir, 0755); err != nil {
		return fmt.Errorf("could not create store directory %q: %w", b.Dir, err)
	}
	path := filepath.Join(b.Dir, inventoryFile)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error opening inventory file %q for writing: %w", path, err)
	}
	defer f.Close()

	return EncodeItems(f, items)
}

// LoadHistory reads and decodes the history document.
func (b *DirBackend) LoadHistory() (*date.History[Money], error) {
	path := filepath.Join(b.Dir, historyFile)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open history file %q: %w", path, err)
	}
	defer f.Close()

	h, err := DecodeHistory(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode history file %q: %w", path, err)
	}
	return h, nil
}

// SaveHistory rewrites the history document wholesale.
func (b *DirBackend) SaveHistory(h *date.History[Money]) error {
	if err := os.MkdirAll(b.Dir, 0755); err != nil {
		return fmt.Errorf("could not create store directory %q: %w", b.Dir, err)
	}
	path := filepath.Join(b.Dir, historyFile)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error opening history file %q for writing: %w", path, err)
	}
	defer f.Close()

	return EncodeHistory(f, h)
}
