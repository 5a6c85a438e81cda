// Package mmf parses recipes exported in the Meal-Master plaintext format.
//
// A Meal-Master export holds any number of recipes, each framed by a header
// and a footer line:
//
//	---------- Recipe via Meal-Master (tm) v8.05
//
//	      Title: Chili
//	 Categories: Main dish, Beef
//	      Yield: 6 servings
//
//	  1 1/2 lb Hamburger                           1 ds Salt
//	      1 c  Onion; chopped                    1/2 c  Water
//
//	  Brown the meat.
//
//	-----
//
// Ingredient lines use fixed columns (quantity, unit, text) and may be laid
// out in two columns. Lines starting with "-" continue the previous
// ingredient. Directions are grouped into paragraphs.
//
// Basic usage:
//
//	recipes := mmf.Parse(lines)
//	for _, r := range recipes {
//		fmt.Println(r.Title)
//	}
package mmf
