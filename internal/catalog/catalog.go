// Package catalog provides the immutable skill catalog and profession keyword
// table shared by all analysis invocations. Both are loaded once from embedded
// JSON, validated against embedded JSON Schemas, and safe for concurrent reads.
package catalog

import (
	_ "embed"
	"encoding/json"
)

//go:embed skills.json
var skillsJSON []byte

//go:embed skills_schema.json
var skillsSchemaJSON []byte

//go:embed professions.json
var professionsJSON []byte

//go:embed professions_schema.json
var professionsSchemaJSON []byte

// Category is a named, ordered set of skill keywords.
type Category struct {
	Name     string   `json:"name"`
	Keywords []string `json:"keywords"`
}

// Profession is a profession name with the keywords that signal it.
type Profession struct {
	Name     string   `json:"name"`
	Keywords []string `json:"keywords"`
}

// Catalog holds the skill categories and the profession keyword table.
// Slices preserve declaration order; tie-breaks throughout the analyzer
// are first-seen-wins over that order.
type Catalog struct {
	Categories  []Category
	Professions []Profession
}

type skillsFile struct {
	Categories []Category `json:"categories"`
}

type professionsFile struct {
	Professions []Profession `json:"professions"`
}

// Load parses and validates the embedded catalog data.
func Load() (*Catalog, error) {
	if err := validateSchema(skillsSchemaJSON, skillsJSON, "skills.json"); err != nil {
		return nil, err
	}
	if err := validateSchema(professionsSchemaJSON, professionsJSON, "professions.json"); err != nil {
		return nil, err
	}

	var skills skillsFile
	if err := json.Unmarshal(skillsJSON, &skills); err != nil {
		return nil, &LoadError{Message: "failed to parse skills.json", Cause: err}
	}

	var professions professionsFile
	if err := json.Unmarshal(professionsJSON, &professions); err != nil {
		return nil, &LoadError{Message: "failed to parse professions.json", Cause: err}
	}

	return &Catalog{
		Categories:  skills.Categories,
		Professions: professions.Professions,
	}, nil
}

// Contains reports whether keyword belongs to any category in the catalog.
func (c *Catalog) Contains(keyword string) bool {
	for _, category := range c.Categories {
		for _, kw := range category.Keywords {
			if kw == keyword {
				return true
			}
		}
	}
	return false
}

// Keywords returns every skill keyword in catalog order. Duplicates across
// categories are preserved as declared.
func (c *Catalog) Keywords() []string {
	var keywords []string
	for _, category := range c.Categories {
		keywords = append(keywords, category.Keywords...)
	}
	return keywords
}
