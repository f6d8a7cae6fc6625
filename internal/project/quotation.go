package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mistrywoodworks/panelquote/internal/model"
)

// DefaultQuotationsDir returns the default directory for saved quotations.
func DefaultQuotationsDir() string {
	return filepath.Join(DefaultConfigDir(), "quotations")
}

// SaveQuotation persists a quotation to the given path as JSON, stamping
// UpdatedAt on the way out. It creates any missing parent directories
// automatically.
func SaveQuotation(path string, q *model.Quotation) error {
	q.UpdatedAt = time.Now()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(q, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadQuotation reads a quotation from the given path.
func LoadQuotation(path string) (model.Quotation, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Quotation{}, fmt.Errorf("failed to read quotation file: %w", err)
	}
	var q model.Quotation
	if err := json.Unmarshal(data, &q); err != nil {
		return model.Quotation{}, fmt.Errorf("failed to parse quotation file: %w", err)
	}
	if q.ID == "" {
		return model.Quotation{}, fmt.Errorf("invalid quotation file: missing id field")
	}
	// Hand-edited or older files may omit the collections entirely
	if q.Rooms == nil {
		q.Rooms = []model.Room{}
	}
	if q.Adjustments.Deleted == nil {
		q.Adjustments.Deleted = map[string]bool{}
	}
	if q.Adjustments.Laminate == nil {
		q.Adjustments.Laminate = map[string]string{}
	}
	if q.Adjustments.Gaddi == nil {
		q.Adjustments.Gaddi = map[string]bool{}
	}
	return q, nil
}
