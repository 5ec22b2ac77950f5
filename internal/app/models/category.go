package models

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/electives/cutoffs/internal/pkg/apperrors"
)

// Category is the elective slot a course was offered in.
// The zero value is not a category; filters use it to mean "any".
type Category uint8

const (
	OpenElective Category = iota + 1
	ProgramElectiveI
	ProgramElectiveII
)

// AllCategoriesValue is accepted wherever a category filter is parsed and means no constraint.
const AllCategoriesValue = "all"

var categoryCodes = map[Category]string{
	OpenElective:      "OE",
	ProgramElectiveI:  "PE I",
	ProgramElectiveII: "PE II",
}

var categoryLabels = map[Category]string{
	OpenElective:      "Open Elective (OE)",
	ProgramElectiveI:  "Program Elective I (PE I)",
	ProgramElectiveII: "Program Elective II (PE II)",
}

// Categories returns every category in display order.
func Categories() []Category {
	return []Category{OpenElective, ProgramElectiveI, ProgramElectiveII}
}

// IsValid reports whether c is one of the three known categories.
func (c Category) IsValid() bool {
	_, ok := categoryCodes[c]
	return ok
}

// Code returns the short code, e.g. "PE I".
func (c Category) Code() string {
	return categoryCodes[c]
}

// Label returns the human readable name, e.g. "Program Elective I (PE I)".
func (c Category) Label() string {
	return categoryLabels[c]
}

func (c Category) String() string {
	if !c.IsValid() {
		return fmt.Sprintf("Category(%d)", uint8(c))
	}
	return c.Code()
}

// ParseCategory resolves a category code such as "oe" or "PE II".
// Empty input and "all" return ok=false without an error.
func ParseCategory(s string) (c Category, ok bool, err error) {
	normalized := strings.ToUpper(strings.Join(strings.Fields(s), " "))
	if normalized == "" || strings.EqualFold(normalized, AllCategoriesValue) {
		return 0, false, nil
	}

	for _, cat := range Categories() {
		if normalized == cat.Code() || strings.EqualFold(normalized, cat.goName()) {
			return cat, true, nil
		}
	}

	return 0, false, apperrors.NewValidationError("category",
		fmt.Sprintf("unknown category %q, expected one of OE, PE I, PE II", s))
}

func (c Category) goName() string {
	switch c {
	case OpenElective:
		return "OpenElective"
	case ProgramElectiveI:
		return "ProgramElectiveI"
	case ProgramElectiveII:
		return "ProgramElectiveII"
	}
	return ""
}

// MarshalText encodes the category as its code.
func (c Category) MarshalText() ([]byte, error) {
	if !c.IsValid() {
		return nil, fmt.Errorf("cannot marshal invalid category %d", uint8(c))
	}
	return []byte(c.Code()), nil
}

// UnmarshalText decodes a category code. "all" and empty input are rejected here.
func (c *Category) UnmarshalText(text []byte) error {
	parsed, ok, err := ParseCategory(string(text))
	if err != nil {
		return err
	}
	if !ok {
		return apperrors.NewValidationError("category", "category is required")
	}
	*c = parsed
	return nil
}

// UnmarshalYAML decodes a category from a records file.
func (c *Category) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	if err := c.UnmarshalText([]byte(s)); err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	return nil
}
