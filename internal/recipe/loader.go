package recipe

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/osse101/CraftPlanner_Go/internal/domain"
	"github.com/osse101/CraftPlanner_Go/internal/validation"
)

// Catalog is the on-disk recipe catalog format
type Catalog struct {
	Version     string          `json:"version" yaml:"version"`
	Description string          `json:"description,omitempty" yaml:"description,omitempty"`
	Recipes     []domain.Recipe `json:"recipes" yaml:"recipes"`
}

// Loader reads and checks recipe catalog files
type Loader interface {
	// Load reads a .yaml, .yml or .json catalog and normalizes its recipes
	Load(path string) (*Catalog, error)
	// Validate returns an error joining every rule violation, plus non-fatal warnings
	Validate(catalog *Catalog) (warnings []string, err error)
}

type loader struct{}

// NewLoader creates a new Loader instance
func NewLoader() Loader {
	return &loader{}
}

func (l *loader) Load(path string) (*Catalog, error) {
	format, err := formatFor(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadCatalogFmt, path, err)
	}
	catalog, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgParseCatalogFmt, path, err)
	}
	return catalog, nil
}

var schemas = validation.NewSchemaValidator()

// Parse checks catalog bytes against the catalog schema for their format,
// decodes them and normalizes each recipe
func Parse(data []byte, format string) (*Catalog, error) {
	var catalog Catalog
	switch format {
	case FormatYAML:
		var doc any
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, err
		}
		if err := schemas.ValidateDocument(doc, validation.SchemaRecipeCatalogYAML); err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(data, &catalog); err != nil {
			return nil, err
		}
	case FormatJSON:
		if err := schemas.ValidateBytes(data, validation.SchemaRecipeCatalogJSON); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(data, &catalog); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf(ErrMsgUnknownFormatFmt, format)
	}
	for i := range catalog.Recipes {
		Normalize(&catalog.Recipes[i])
	}
	return &catalog, nil
}

func formatFor(path string) (string, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf(ErrMsgUnknownFormatFmt, ext)
	}
}

func (l *loader) Validate(catalog *Catalog) ([]string, error) {
	var (
		warnings []string
		errs     []error
	)
	if catalog.Version == "" {
		warnings = append(warnings, ErrMsgEmptyCatalogVersion)
	}

	ids := make(map[string]struct{}, len(catalog.Recipes))
	for i := range catalog.Recipes {
		r := &catalog.Recipes[i]
		if _, dup := ids[r.ID]; dup {
			errs = append(errs, fmt.Errorf(ErrMsgDuplicateIDFmt, domain.ErrInvalidRecipe, r.ID))
			continue
		}
		ids[r.ID] = struct{}{}
		if err := Validate(r); err != nil {
			errs = append(errs, err)
		}
	}

	// Ingredients without a recipe are skipped during expansion, so they only warn
	for i := range catalog.Recipes {
		r := &catalog.Recipes[i]
		for _, ing := range r.Ingredients {
			if _, ok := ids[ing.ItemID]; !ok {
				warnings = append(warnings, fmt.Sprintf(ErrMsgDanglingIngrFmt, r.ID, ing.ItemID))
			}
		}
	}

	return warnings, errors.Join(errs...)
}
