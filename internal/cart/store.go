package cart

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pal-lokesh/storefront/internal/model"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// Store persists a user's cart across program runs.
type Store interface {
	// Load reads the cart for a user. A missing file is an empty cart; a
	// corrupt file is an error, never a silent truncation.
	Load(userPhone string) ([]model.CartItem, error)

	// Save writes the cart for a user.
	Save(userPhone string, items []model.CartItem) error
}

// fileStore implements Store as one JSON file per user under dir.
type fileStore struct {
	fs     afero.Fs
	dir    string
	logger zerolog.Logger
}

// NewFileStore creates a file-backed cart store rooted at dir.
func NewFileStore(fs afero.Fs, dir string, logger zerolog.Logger) Store {
	return &fileStore{
		fs:     fs,
		dir:    dir,
		logger: logger.With().Str("component", "cart-store").Logger(),
	}
}

func (s *fileStore) path(userPhone string) string {
	return filepath.Join(s.dir, "cart-"+userPhone+".json")
}

func (s *fileStore) Load(userPhone string) ([]model.CartItem, error) {
	path := s.path(userPhone)

	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read cart file %s: %w", path, err)
	}

	var items []model.CartItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("cart file %s is corrupt: %w", path, err)
	}

	s.logger.Debug().Str("path", path).Int("items", len(items)).Msg("cart loaded")
	return items, nil
}

func (s *fileStore) Save(userPhone string, items []model.CartItem) error {
	if err := s.fs.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create cart directory %s: %w", s.dir, err)
	}

	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode cart: %w", err)
	}

	path := s.path(userPhone)
	if err := afero.WriteFile(s.fs, path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write cart file %s: %w", path, err)
	}

	s.logger.Debug().Str("path", path).Int("items", len(items)).Msg("cart saved")
	return nil
}
