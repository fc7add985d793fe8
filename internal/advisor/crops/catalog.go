package crops

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/agrosmart-advisor/server/internal/advisor/model"
)

// Catalog is the read-only crop list bundled with the application.
type Catalog struct {
	crops []model.Crop
}

// LoadCatalog reads the JSON crop file. The server refuses to start when this fails.
func LoadCatalog(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read crop catalog: %w", err)
	}

	var list []model.Crop
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("parse crop catalog %s: %w", path, err)
	}
	for i, c := range list {
		if strings.TrimSpace(c.Name) == "" {
			return nil, fmt.Errorf("parse crop catalog %s: entry %d has no name", path, i)
		}
	}
	return &Catalog{crops: list}, nil
}

// NewCatalog wraps an in-memory list.
func NewCatalog(list []model.Crop) *Catalog {
	return &Catalog{crops: list}
}

// All returns a copy of every crop in file order.
func (c *Catalog) All() []model.Crop {
	out := make([]model.Crop, len(c.crops))
	copy(out, c.crops)
	return out
}

// Find looks a crop up by name, case-insensitively.
func (c *Catalog) Find(name string) (model.Crop, bool) {
	name = strings.TrimSpace(name)
	for _, crop := range c.crops {
		if strings.EqualFold(crop.Name, name) {
			return crop, true
		}
	}
	return model.Crop{}, false
}
