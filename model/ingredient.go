package model

import (
	"fmt"
	"strings"
)

// IngredientKind distinguishes ingredient items from group headings
type IngredientKind int

const (
	// KindItem is an ingredient with quantity, unit and text
	KindItem IngredientKind = iota
	// KindHeading labels the group of items that follows it
	KindHeading
)

// String returns the string representation of the kind
func (k IngredientKind) String() string {
	switch k {
	case KindHeading:
		return "heading"
	default:
		return "item"
	}
}

// MarshalText encodes the kind as "item" or "heading".
func (k IngredientKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText decodes "item" or "heading".
func (k *IngredientKind) UnmarshalText(b []byte) error {
	switch strings.ToLower(string(b)) {
	case "item", "":
		*k = KindItem
	case "heading":
		*k = KindHeading
	default:
		return fmt.Errorf("unknown ingredient kind %q", string(b))
	}
	return nil
}

// Ingredient is either an ingredient item or an ingredient heading.
// Headings only use Text.
type Ingredient struct {
	Kind IngredientKind `json:"kind" yaml:"kind"`

	// Quantity is the amount as written (e.g. "1 1/2", ".5"), possibly empty
	Quantity string `json:"quantity,omitempty" yaml:"quantity,omitempty"`

	// Unit is the measure as written (e.g. "tb", "Cup"), possibly empty
	Unit string `json:"unit,omitempty" yaml:"unit,omitempty"`

	// Text is the ingredient text or the heading text
	Text string `json:"text" yaml:"text"`

	// Preparation is the preparation method (e.g. "softened"), possibly empty
	Preparation string `json:"preparation,omitempty" yaml:"preparation,omitempty"`
}

// Heading creates an ingredient heading
func Heading(text string) Ingredient {
	return Ingredient{Kind: KindHeading, Text: text}
}

// Item creates an ingredient item
func Item(quantity, unit, text, preparation string) Ingredient {
	return Ingredient{
		Kind:        KindItem,
		Quantity:    quantity,
		Unit:        unit,
		Text:        text,
		Preparation: preparation,
	}
}

// IsHeading returns true for ingredient headings
func (i Ingredient) IsHeading() bool {
	return i.Kind == KindHeading
}

// String joins the ingredient fields back into a single line of text.
// Empty fields do not leave doubled spaces behind.
func (i Ingredient) String() string {
	if i.IsHeading() {
		return i.Text
	}

	text := strings.TrimSpace(i.Unit + " " + i.Text)
	text = strings.TrimSpace(i.Quantity + " " + text)
	if i.Preparation != "" {
		text += " -- " + i.Preparation
	}
	return text
}

// IngredientGroup is a heading together with the items that follow it.
// The first group of a recipe has an empty heading when items precede the
// first heading line.
type IngredientGroup struct {
	Heading string
	Items   []Ingredient
}
