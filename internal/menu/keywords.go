package menu

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Keywords are the heuristic vocabularies the extractors match against
// class/id attributes, field names and link text. They are plain data so a
// deployment can override them for another language or domain without
// touching extraction logic.
type Keywords struct {
	// Container matches class/id values of menu container elements.
	Container []string `json:"container" yaml:"container" validate:"min=1,dive,required"`
	// Name, Price and Description match class values of item sub-fields.
	Name        []string `json:"name" yaml:"name" validate:"min=1,dive,required"`
	Price       []string `json:"price" yaml:"price" validate:"min=1,dive,required"`
	Description []string `json:"description" yaml:"description" validate:"min=1,dive,required"`
	// Link matches anchor text and URL paths of candidate menu pages.
	Link []string `json:"link" yaml:"link" validate:"min=1,dive,required"`
}

// DefaultKeywords returns the built-in vocabulary, tuned for Turkish and
// English restaurant sites.
func DefaultKeywords() Keywords {
	return Keywords{
		Container:   []string{"menu", "menü", "food", "dish", "meal", "yemek", "ürün", "urun", "category"},
		Name:        []string{"name", "title", "heading"},
		Price:       []string{"price", "cost", "amount", "fiyat"},
		Description: []string{"description", "desc", "detail", "info"},
		Link:        []string{"menu", "menü", "food", "yemek"},
	}
}

// KeywordsFromFile loads an overriding vocabulary from a JSON or YAML file.
func KeywordsFromFile(path string) (Keywords, error) {
	data, err := os.ReadFile(path) //#nosec G304 -- caller-chosen config file
	if err != nil {
		return Keywords{}, fmt.Errorf("failed to read keywords file: %w", err)
	}

	var kw Keywords
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		if err := json.Unmarshal(data, &kw); err != nil {
			return Keywords{}, fmt.Errorf("failed to parse JSON keywords: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &kw); err != nil {
			return Keywords{}, fmt.Errorf("failed to parse YAML keywords: %w", err)
		}
	default:
		return Keywords{}, fmt.Errorf("unsupported keywords file format: %s", ext)
	}

	if err := validator.New().Struct(kw); err != nil {
		return Keywords{}, fmt.Errorf("invalid keywords file: %w", err)
	}
	return kw, nil
}

// matchAny reports whether value contains any keyword, case-insensitively.
func matchAny(value string, keywords []string) bool {
	if value == "" {
		return false
	}
	value = strings.ToLower(value)
	for _, kw := range keywords {
		if strings.Contains(value, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}
