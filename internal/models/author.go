package models

import "strings"

// Author represents a catalog author with their name and lifespan.
// Name is stored in "Family, Given" form and Lifespan as "YYYY-YYYY".
type Author struct {
	Name     string `json:"name" yaml:"name" db:"name" validate:"required,familyname"`
	Lifespan string `json:"lifespan" yaml:"lifespan" db:"lifespan" validate:"required,lifespan"`
}

// FamilyName returns the portion of the name before the first comma.
func (a Author) FamilyName() string {
	return FamilyName(a.Name)
}

// FamilyName extracts the sort key from a "Family, Given" name. Names without
// a comma are treated as a bare family name.
func FamilyName(name string) string {
	family, _, _ := strings.Cut(name, ",")
	return strings.TrimSpace(family)
}
