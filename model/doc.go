// Package model provides the output representation for parsed recipes.
//
// Every format parser produces the same types, making them the primary API
// for consuming extracted content.
//
// # Recipe Structure
//
// A [Recipe] holds scalar metadata (title, yield, servings, author, timing),
// categories, an ordered list of [Ingredient] entries, direction paragraphs
// and note paragraphs:
//
//	r := model.NewRecipe("Meal-Master")
//	r.Title = "Chili"
//	r.AddIngredient(model.Heading("SAUCE"))
//	r.AddIngredient(model.Item("1 1/2", "lb", "Hamburger", ""))
//
// NewRecipe initializes every collection, so a recipe whose sections are
// missing from the source still has empty, non-nil values.
//
// # Ingredients
//
// [Ingredient] is a tagged variant: [KindHeading] entries label the group of
// items that follows them, [KindItem] entries carry quantity, unit, text and
// an optional preparation method.
//
// # Attributes
//
// Labels that the parsers do not map onto a Recipe field are kept in
// [Attributes], an insertion-ordered string map whose keys come from the
// data. JSON and YAML encodings preserve the insertion order.
package model
