// internal/storefront/storage.go
package storefront

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/ateliernord/gallery/internal/models"
)

// FileCartStorage persists cart snapshots to a single JSON file, the local
// equivalent of the web client's "cart.v1" storage key.
type FileCartStorage struct {
	path string
}

func NewFileCartStorage(path string) *FileCartStorage {
	return &FileCartStorage{path: path}
}

// DefaultCartPath places the cart file under the user config directory.
func DefaultCartPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "gallery", "cart.v1.json"), nil
}

func (s *FileCartStorage) Load() ([]models.CartItem, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, err
	}

	var items []models.CartItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *FileCartStorage) Save(items []models.CartItem) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(s.path, raw, 0o600)
}
