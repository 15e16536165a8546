package domain

import (
	"fmt"
	"strings"
)

// CatalogEntry is a course definition available to be added to a study plan.
// The catalog is persisted as a single document per identity, not one
// document per entry.
type CatalogEntry struct {
	Code     string   `json:"code"`
	Name     string   `json:"name"`
	Credits  int      `json:"nz"`
	Category Category `json:"category"`
}

// Validate checks that the entry is well formed.
func (e *CatalogEntry) Validate() error {
	if strings.TrimSpace(e.Code) == "" {
		return fmt.Errorf("course code is required")
	}
	if strings.TrimSpace(e.Name) == "" {
		return fmt.Errorf("course name is required")
	}
	if e.Credits <= 0 {
		return fmt.Errorf("credits must be positive, got %d", e.Credits)
	}
	if !ValidCategories[string(e.Category)] {
		return fmt.Errorf("unknown category %q", e.Category)
	}
	return nil
}

// Catalog is the ordered list of course definitions for one identity.
type Catalog []CatalogEntry

// FindByCode returns the entry with the given code, or nil.
func (c Catalog) FindByCode(code string) *CatalogEntry {
	for i := range c {
		if c[i].Code == code {
			return &c[i]
		}
	}
	return nil
}

// ContainsCode reports whether an entry with the given code exists.
func (c Catalog) ContainsCode(code string) bool {
	return c.FindByCode(code) != nil
}

// Search returns entries whose code or name contains the term
// (case-insensitive substring match). An empty term matches everything.
func (c Catalog) Search(term string) Catalog {
	if term == "" {
		return c
	}
	lower := strings.ToLower(term)
	var out Catalog
	for _, e := range c {
		if strings.Contains(strings.ToLower(e.Name), lower) || strings.Contains(e.Code, term) {
			out = append(out, e)
		}
	}
	return out
}

// FilterCategory returns entries of the given category.
func (c Catalog) FilterCategory(cat Category) Catalog {
	var out Catalog
	for _, e := range c {
		if e.Category == cat {
			out = append(out, e)
		}
	}
	return out
}
