// Package validation checks raw brand-check input and normalizes it into
// a (brand, category) pair.
package validation

import (
	"errors"
	"regexp"
	"strings"
)

// Input constraints for brand names.
const (
	maxBrandLength  = 100
	DefaultCategory = "general"
)

// brandPattern is the full charset allowed in brand names. Keeping it this
// tight means a validated brand can later be used as a literal search
// pattern without escaping.
var brandPattern = regexp.MustCompile(`^[a-zA-Z0-9\s\-.&']+$`)

// Validation failures surfaced to API clients.
var (
	ErrBrandRequired = errors.New("Brand name is required")
	ErrBrandTooLong  = errors.New("Brand name must be less than 100 characters")
	ErrBrandCharset  = errors.New("Brand name contains invalid characters")
)

// Category describes one entry of the category catalogue.
type Category struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Categories is the catalogue of supported brand categories. The category
// field itself is free text; this list exists for UIs and CLI help.
var Categories = []Category{
	{Value: "general", Label: "General / Auto-detect"},
	{Value: "smartphones", Label: "Smartphones & Electronics"},
	{Value: "automotive", Label: "Automotive"},
	{Value: "fashion", Label: "Fashion & Apparel"},
	{Value: "food", Label: "Food & Beverage"},
	{Value: "technology", Label: "Technology / Software"},
	{Value: "ecommerce", Label: "E-commerce"},
	{Value: "beauty", Label: "Beauty & Personal Care"},
	{Value: "finance", Label: "Financial Services"},
	{Value: "healthcare", Label: "Healthcare"},
	{Value: "entertainment", Label: "Entertainment & Media"},
	{Value: "travel", Label: "Travel & Hospitality"},
}

// BrandInput is a validated, normalized brand-check request.
type BrandInput struct {
	Brand    string
	Category string
}

// ValidateBrandInput validates the raw request fields and returns the
// normalized input: brand whitespace-trimmed, category defaulted to
// "general" when empty.
func ValidateBrandInput(brand, category string) (BrandInput, error) {
	if brand == "" {
		return BrandInput{}, ErrBrandRequired
	}
	if len(brand) > maxBrandLength {
		return BrandInput{}, ErrBrandTooLong
	}
	if !brandPattern.MatchString(brand) {
		return BrandInput{}, ErrBrandCharset
	}

	trimmed := strings.TrimSpace(brand)
	if trimmed == "" {
		return BrandInput{}, ErrBrandRequired
	}

	if category == "" {
		category = DefaultCategory
	}

	return BrandInput{Brand: trimmed, Category: category}, nil
}
