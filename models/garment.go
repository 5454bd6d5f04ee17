package models

import (
	"regexp"

	"github.com/go-playground/validator"
)

type ClothingType string

const (
	ClothingTop    ClothingType = "top"
	ClothingBottom ClothingType = "bottom"
	ClothingBoth   ClothingType = "both"
)

var garmentRule = regexp.MustCompile(`^(top|bottom)$`)
var outfitRule = regexp.MustCompile(`^(top|bottom|both)$`)

func (t ClothingType) String() string {
	return string(t)
}

// NeedsTop reports whether a try-on of this type requires a top garment image.
func (t ClothingType) NeedsTop() bool {
	return t == ClothingTop || t == ClothingBoth
}

// NeedsBottom reports whether a try-on of this type requires a bottom garment image.
func (t ClothingType) NeedsBottom() bool {
	return t == ClothingBottom || t == ClothingBoth
}

// ValidateGarment accepts a single garment slot: top or bottom.
func ValidateGarment(fl validator.FieldLevel) bool {
	return garmentRule.MatchString(fl.Field().String())
}

// ValidateClothingType accepts a try-on outfit type: top, bottom or both.
func ValidateClothingType(fl validator.FieldLevel) bool {
	return outfitRule.MatchString(fl.Field().String())
}
