package project

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/mistrywoodworks/panelquote/internal/model"
)

// DefaultRateBookPath returns the default file path for the rate book.
// This is located at ~/.panelquote/rates.json.
func DefaultRateBookPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".panelquote", "rates.json"), nil
}

// SaveRateBook writes the rate book to the specified JSON file.
// It creates parent directories if they do not exist.
func SaveRateBook(path string, book model.RateBook) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(book, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadRateBook reads the rate book from the specified JSON file.
// If the file does not exist, it returns the built-in book and saves it.
// A book with no presets also falls back to the built-in presets, so a
// preset lookup always has something to find.
func LoadRateBook(path string) (model.RateBook, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			book := model.DefaultRateBook()
			if saveErr := SaveRateBook(path, book); saveErr != nil {
				return book, saveErr
			}
			return book, nil
		}
		return model.RateBook{}, err
	}
	var book model.RateBook
	if err := json.Unmarshal(data, &book); err != nil {
		return model.RateBook{}, err
	}
	if len(book.Presets) == 0 {
		return model.DefaultRateBook(), nil
	}
	return book, nil
}

// LoadOrCreateRateBook loads the rate book from the default path.
// If the file does not exist, it creates one with the built-in presets.
func LoadOrCreateRateBook() (model.RateBook, string, error) {
	path, err := DefaultRateBookPath()
	if err != nil {
		return model.DefaultRateBook(), "", err
	}
	book, err := LoadRateBook(path)
	return book, path, err
}
