package mmf

import (
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsawler/recipetext/layout"
	"github.com/tsawler/recipetext/lines"
	"github.com/tsawler/recipetext/model"
)

// ============================================================================
// Sentinels
// ============================================================================

func TestIsHeader(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"", false},
		{"---------- Recipe via Meal-Master (tm) v8.05", true},
		{"MMMMM----- Recipe via Meal-Master (tm) v8.05", true},
		{"mmmmm----- Recipe via Meal-Master (tm) v8.05", false},
		{"----------- Recipe via Meal-Master (tm) v8.05", false},
		{"MMMMMM----- Recipe via Meal-Master (tm) v8.05", false},
		{"--------- Recipe via Meal-Master (tm) v8.05", false},
		{"MMMM----- Recipe via Meal-Master (tm) v8.05", false},
		{" ---------- Recipe via Meal-Master (tm) v8.05", false},
		{"---------- Recipe via Meal-Master (tm) v8.05 ", true},
		{"----------", false},
		{"---------- ", true},
		{"---------- Anything goes here", true},
		{"MMMMM-----", false},
		{"MMMMM----- ", true},
		{"MMMMM----- Anything goes here", true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsHeader(tt.line), "line %q", tt.line)
	}
}

func TestIsFooter(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"-----", true},
		{"MMMMM", true},
		{"", false},
		{" -----", false},
		{"----- ", false},
		{"------", false},
		{"----", false},
		{"-----TEXT", false},
		{" MMMMM", false},
		{"MMMMM ", false},
		{"MMMMMM", false},
		{"MMMM", false},
		{"MMMMMTEXT", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsFooter(tt.line), "line %q", tt.line)
	}
}

// ============================================================================
// Metadata
// ============================================================================

func TestSplitCategories(t *testing.T) {
	tests := []struct {
		value string
		want  []string
	}{
		{"None", []string{}},
		{"noNE", []string{}},
		{"", []string{}},
		{"Dessert", []string{"Dessert"}},
		{"Dessert,Italian,Easy", []string{"Dessert", "Italian", "Easy"}},
		{"Dessert, Italian, Easy", []string{"Dessert", "Italian", "Easy"}},
		{" Dessert , Italian , Easy   ", []string{"Dessert", "Italian", "Easy"}},
		{"None, Dessert", []string{"None", "Dessert"}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, SplitCategories(tt.value), "value %q", tt.value)
	}
}

func TestParseServingsOrYield(t *testing.T) {
	tests := []struct {
		value        string
		wantYield    string
		wantServings int
	}{
		{"", "", 0},
		{"10", "", 10},
		{"24 cookies", "24 cookies", 0},
		{"6 servings", "", 6},
		{"1 Serving", "", 1},
		{"4 SERVINGS", "", 4},
		{"servings", "servings", 0},
		{"1 loaf", "1 loaf", 0},
	}

	for _, tt := range tests {
		yield, servings := ParseServingsOrYield(tt.value)
		assert.Equal(t, tt.wantYield, yield, "value %q", tt.value)
		assert.Equal(t, tt.wantServings, servings, "value %q", tt.value)
	}
}

// ============================================================================
// Ingredients
// ============================================================================

func TestIsIngredient(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"", false},
		{"In large bowl, blend oil and sugars on low until well mixed. Add", false},
		{"     ab qt Milk", false},
		{"        21 Apples", false},
		{"     1 qt Milk", false},
		{"      1 qt Milk", true},
		{"  1 1/2 c  Whipped cream", true},
		{"      1    Vanilla bean", true},
		{"           Raisins (optional)", true},
		{"    1.5 qt Milk", true},
		{"      1 c  Oil                                 1 t  Baking soda", true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsIngredient(tt.line), "line %q", tt.line)
	}
}

func TestParseIngredient(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{"", "{} {} {}"},
		{"                   ", "{} {} {}"},
		{"      1 qt Milk", "{1} {qt} {Milk}"},
		{"    1/2 qt Milk", "{1/2} {qt} {Milk}"},
		{"  3 1/2 qt Milk", "{3 1/2} {qt} {Milk}"},
		{"    1.5 qt Milk", "{1.5} {qt} {Milk}"},
		{"     .5 qt Milk", "{.5} {qt} {Milk}"},
		{"    3/4 c  Long-grained rice", "{3/4} {c} {Long-grained rice}"},
		{"           Raisins (optional)", "{} {} {Raisins (optional)}"},
		{"      1    Egg yolk", "{1} {} {Egg yolk}"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, braces(ParseIngredient(tt.line)), "line %q", tt.line)
	}
}

// braces renders an ingredient as "{quantity} {unit} {text}" or a heading as
// "----- text -----"
func braces(ing model.Ingredient) string {
	if ing.IsHeading() {
		return "----- " + ing.Text + " -----"
	}
	return "{" + ing.Quantity + "} {" + ing.Unit + "} {" + ing.Text + "}"
}

func parseIngredients(t *testing.T, in []string) []string {
	t.Helper()
	p := NewParser()
	c := lines.NewCursor(in)
	out := []string{}
	for _, entry := range p.table.Scan(c).Entries {
		if entry.IsHeading {
			out = append(out, braces(model.Heading(entry.Heading)))
			continue
		}
		out = append(out, braces(candidateIngredient(entry.Candidate)))
	}
	require.False(t, c.HasMore(), "unconsumed line %q", c.Current())
	return out
}

func TestIngredients_Empty(t *testing.T) {
	assert.Empty(t, parseIngredients(t, nil))
	assert.Empty(t, parseIngredients(t, []string{"  "}))
	assert.Empty(t, parseIngredients(t, []string{"  ", "  ", "  "}))
}

func TestIngredients_OneColumn(t *testing.T) {
	in := []string{
		"  ",
		"      1 qt Milk",
		"      1 pt Heavy cream",
		"    1/2 ts Salt",
		"      1    Vanilla bean",
		"    3/4 c  Long-grained rice",
		"  ",
		"      1 c  Granulated sugar",
		"      1    Egg yolk",
		"  1 1/2 c  Whipped cream",
		"           Raisins (optional)",
		"  ",
	}

	assert.Equal(t, []string{
		"{1} {qt} {Milk}",
		"{1} {pt} {Heavy cream}",
		"{1/2} {ts} {Salt}",
		"{1} {} {Vanilla bean}",
		"{3/4} {c} {Long-grained rice}",
		"{1} {c} {Granulated sugar}",
		"{1} {} {Egg yolk}",
		"{1 1/2} {c} {Whipped cream}",
		"{} {} {Raisins (optional)}",
	}, parseIngredients(t, in))
}

func TestIngredients_OneColumnWithHeadings(t *testing.T) {
	in := []string{
		"-----------------------------FOR THE PIE-----------------------------",
		"  1 1/2 c  All-Purpose Flour",
		"    1/2 ts Salt",
		"      1 ts Cinnamon, Ground",
		"",
		"MMMMM------------------------FOR THE TOPPING-------------------------",
		"    1/2 c  Granulated Sugar",
		"      1 lg Paper Bag",
		"           Vanilla Ice Cream",
	}

	assert.Equal(t, []string{
		"----- FOR THE PIE -----",
		"{1 1/2} {c} {All-Purpose Flour}",
		"{1/2} {ts} {Salt}",
		"{1} {ts} {Cinnamon, Ground}",
		"----- FOR THE TOPPING -----",
		"{1/2} {c} {Granulated Sugar}",
		"{1} {lg} {Paper Bag}",
		"{} {} {Vanilla Ice Cream}",
	}, parseIngredients(t, in))
}

func TestIngredients_TwoColumns(t *testing.T) {
	in := []string{
		"  1 1/2 lb Hamburger                           1 ds Salt",
		"      1 c  Onion; chopped                    1/2 c  Water",
		"      1 c  Green pepper; chopped             1/8 t  Hot pepper sauce",
		"      1 T  Oil                           ",
	}

	assert.Equal(t, []string{
		"{1 1/2} {lb} {Hamburger}",
		"{1} {c} {Onion; chopped}",
		"{1} {c} {Green pepper; chopped}",
		"{1} {T} {Oil}",
		"{1} {ds} {Salt}",
		"{1/2} {c} {Water}",
		"{1/8} {t} {Hot pepper sauce}",
	}, parseIngredients(t, in))
}

func TestIngredients_TwoColumnsWithHeadings(t *testing.T) {
	in := []string{
		"-----------------------------HEADING 1-----------------------------",
		"  1 1/2 lb Hamburger                           1 ds Salt",
		"      1 c  Onion; chopped                    1/2 c  Water",
		"-----------------------------HEADING 2-----------------------------",
		"      1 c  Green pepper; chopped             1/8 t  Hot pepper sauce",
		"      1 T  Oil                           ",
		"-----------------------------HEADING 3-----------------------------",
		"      7 oz Jack/Mozz. cheese slices          1/2 c  Parmesan cheese; grated",
	}

	assert.Equal(t, []string{
		"----- HEADING 1 -----",
		"{1 1/2} {lb} {Hamburger}",
		"{1} {c} {Onion; chopped}",
		"{1} {ds} {Salt}",
		"{1/2} {c} {Water}",
		"----- HEADING 2 -----",
		"{1} {c} {Green pepper; chopped}",
		"{1} {T} {Oil}",
		"{1/8} {t} {Hot pepper sauce}",
		"----- HEADING 3 -----",
		"{7} {oz} {Jack/Mozz. cheese slices}",
		"{1/2} {c} {Parmesan cheese; grated}",
	}, parseIngredients(t, in))
}

func TestIngredients_OneColumnWithContinuations(t *testing.T) {
	in := []string{
		"      1 ts Salt",
		"           Fresh ground",
		"           -black pepper to",
		"           -taste",
		"      1 cn (6-oz) tomato paste",
		"      1 cn (30-oz) red kidney beans",
		"           -drained",
	}

	assert.Equal(t, []string{
		"{1} {ts} {Salt}",
		"{} {} {Fresh ground black pepper to taste}",
		"{1} {cn} {(6-oz) tomato paste}",
		"{1} {cn} {(30-oz) red kidney beans drained}",
	}, parseIngredients(t, in))
}

func TestIngredients_TwoColumnsWithContinuations(t *testing.T) {
	in := []string{
		"      1 lg Artichoke; -=OR=-                        - and thinly sliced",
		"      2 md -Artichokes                         6    Leaves butter lettuce",
		"      1 c  Water; acidulated with                   - sliced into 1/4\" strips",
		"           - the juice of                           -=OR=- a handful of",
		"      1    Lemon                                    - Sorrel leaves, sliced",
		"      2    Garlic cloves                       1 tb Chopped parsley",
		"      1 tb Virgin olive oil                    2    Mint leaves; chopped",
		"      1 lg Leek; white part only -=OR=-             Salt",
		"      2 md Leeks, white part only          5 1/2 c  Water",
		"           - washed and sliced                 1 lb Fresh peas; shucked, -=OR=-",
		"      1 sm New potato; quartered               1 c  -Frozen peas",
	}

	assert.Equal(t, []string{
		"{1} {lg} {Artichoke; -=OR=-}",
		"{2} {md} {-Artichokes}",
		"{1} {c} {Water; acidulated with the juice of}",
		"{1} {} {Lemon}",
		"{2} {} {Garlic cloves}",
		"{1} {tb} {Virgin olive oil}",
		"{1} {lg} {Leek; white part only -=OR=-}",
		"{2} {md} {Leeks, white part only washed and sliced}",
		"{1} {sm} {New potato; quartered and thinly sliced}",
		"{6} {} {Leaves butter lettuce sliced into 1/4\" strips =OR=- a handful of Sorrel leaves, sliced}",
		"{1} {tb} {Chopped parsley}",
		"{2} {} {Mint leaves; chopped}",
		"{} {} {Salt}",
		"{5 1/2} {c} {Water}",
		"{1} {lb} {Fresh peas; shucked, -=OR=-}",
		"{1} {c} {-Frozen peas}",
	}, parseIngredients(t, in))
}

func TestIngredients_AcrossThenDown(t *testing.T) {
	p := NewParserWithConfig(Config{ColumnOrder: layout.AcrossThenDown})
	r, _ := p.ParseRecipe([]string{
		"  1 1/2 lb Hamburger                           1 ds Salt",
		"      1 c  Onion; chopped                    1/2 c  Water",
		"-----",
	})

	var got []string
	for _, ing := range r.Ingredients {
		got = append(got, braces(ing))
	}
	assert.Equal(t, []string{
		"{1 1/2} {lb} {Hamburger}",
		"{1} {ds} {Salt}",
		"{1} {c} {Onion; chopped}",
		"{1/2} {c} {Water}",
	}, got)
}

// ============================================================================
// Whole recipes
// ============================================================================

const chili = `---------- Recipe via Meal-Master (tm) v8.05

      Title: Chili
 Categories: Main dish, Beef
      Yield: 6 servings
  Cook Time: 1 hour

  1 1/2 lb Hamburger                           1 ds Salt
      1 c  Onion; chopped                    1/2 c  Water
      1 c  Green pepper; chopped             1/8 t  Hot pepper sauce
      1 T  Oil

  Brown cut up pieces of meat.Season with chili powder,salt and black
  pepper.Add chopped vegetables and V - 8 vegetable juice. Add ketchup
  and Worcestershire sauce to taste.

  Simmer for one hour.

-----
`

func TestParse_WholeRecipe(t *testing.T) {
	recipes := Parse(lines.Split(chili))
	require.Len(t, recipes, 1)

	r := recipes[0]
	assert.Equal(t, FormatName, r.Format)
	assert.Equal(t, "Chili", r.Title)
	assert.Equal(t, []string{"Main dish", "Beef"}, r.Categories)
	assert.Equal(t, "", r.Yield)
	assert.Equal(t, 6, r.Servings)

	v, ok := r.Attributes.Get("Cook Time")
	assert.True(t, ok)
	assert.Equal(t, "1 hour", v)

	require.Len(t, r.Ingredients, 7)
	assert.Equal(t, "1 1/2 lb Hamburger", r.Ingredients[0].String())
	assert.Equal(t, "1 ds Salt", r.Ingredients[4].String())

	assert.Equal(t, []string{
		"Brown cut up pieces of meat.Season with chili powder,salt and black pepper.Add chopped vegetables and V - 8 vegetable juice. Add ketchup and Worcestershire sauce to taste.",
		"Simmer for one hour.",
	}, r.Directions)
	assert.Empty(t, r.Notes)
}

func TestParse_MultipleRecipes(t *testing.T) {
	input := []string{
		"Some preamble",
		"MMMMM----- Recipe via Meal-Master (tm) v8.05",
		"      Title: First",
		"      Yield: 24 cookies",
		"",
		"      1 c  Flour",
		"",
		"  Bake.",
		"MMMMM",
		"",
		"---------- Recipe via Meal-Master (tm) v8.05",
		"      Title: Second",
		" Categories: None",
		"-----",
	}

	recipes := Parse(input)
	require.Len(t, recipes, 2)

	assert.Equal(t, "First", recipes[0].Title)
	assert.Equal(t, "24 cookies", recipes[0].Yield)
	assert.Equal(t, 0, recipes[0].Servings)
	assert.Equal(t, []string{"Bake."}, recipes[0].Directions)

	assert.Equal(t, "Second", recipes[1].Title)
	assert.Empty(t, recipes[1].Categories)
	assert.Empty(t, recipes[1].Ingredients)
	assert.Empty(t, recipes[1].Directions)
}

func TestParseRecipe_Empty(t *testing.T) {
	r := ParseRecipe(nil)
	require.NotNil(t, r)
	assert.True(t, r.IsEmpty())
	assert.NotNil(t, r.Categories)
	assert.NotNil(t, r.Ingredients)
	assert.NotNil(t, r.Directions)
}

func TestParseRecipe_MetadataOrder(t *testing.T) {
	// Categories before Title is not recognized: the stage stops at the
	// first line that does not match and it becomes an attribute.
	r, issues := NewParser().ParseRecipe([]string{
		" Categories: Soup",
		"      Title: Late title",
		"-----",
	})

	assert.Equal(t, "", r.Title)
	assert.Equal(t, []string{"Soup"}, r.Categories)
	v, ok := r.Attributes.Get("Title")
	assert.True(t, ok)
	assert.Equal(t, "Late title", v)
	require.Len(t, issues, 1)
	assert.Equal(t, layout.IssueStructuralGap, issues[0].Kind)
}

func TestParseRecipe_AttributesDisabled(t *testing.T) {
	p := NewParserWithConfig(Config{})
	r, _ := p.ParseRecipe([]string{
		"      Title: Toast",
		"     Source: Grandma",
		"-----",
	})

	assert.Equal(t, 0, r.Attributes.Len())
	assert.Equal(t, []string{"Source: Grandma"}, r.Directions)
}

func TestParseRecipe_NonIngredientGoesToDirections(t *testing.T) {
	r := ParseRecipe([]string{
		"      Title: Tea",
		"      1 c  Water",
		"Boil the water.",
		"      1    Tea bag",
		"-----",
	})

	require.Len(t, r.Ingredients, 1)
	assert.Equal(t, []string{"Boil the water. 1    Tea bag"}, r.Directions)
}

func TestParseBlock_Truncated(t *testing.T) {
	input := []string{
		"---------- Recipe via Meal-Master (tm) v8.05",
		"      Title: Cut short",
		"      1 c  Water",
		"---------- Recipe via Meal-Master (tm) v8.05",
		"      Title: Whole",
		"-----",
	}

	p := NewParser()
	blocks := slices.Collect(p.Split(slices.Values(input)))
	require.Len(t, blocks, 2)

	r, issues := p.ParseBlock(blocks[0])
	assert.Equal(t, "Cut short", r.Title)
	require.Len(t, r.Ingredients, 1)
	require.Len(t, issues, 1)
	assert.Equal(t, layout.IssueTruncation, issues[0].Kind)

	r, issues = p.ParseBlock(blocks[1])
	assert.Equal(t, "Whole", r.Title)
	assert.Empty(t, issues)
}

func TestParseBlock_Unclassifiable(t *testing.T) {
	r, issues := NewParser().ParseRecipe([]string{
		"      Title: Odd",
		"      1 c  Water",
		"   1 1/2 cup flour",
		"-----",
	})

	require.Len(t, r.Ingredients, 1)
	assert.Equal(t, []string{"1 1/2 cup flour"}, r.Directions)
	require.Len(t, issues, 1)
	assert.Equal(t, layout.IssueUnclassifiable, issues[0].Kind)
	assert.Equal(t, 2, issues[0].Line)
}

func TestParseBlock_NumberedDirections(t *testing.T) {
	r, issues := NewParser().ParseRecipe([]string{
		"MMMMM----- Recipe via Meal-Master (tm) v8.05",
		"      Title: Bread",
		"",
		"      2 c  Flour",
		"      1 t  Salt",
		"",
		"  1. Mix the flour.",
		"  2. Add the salt.",
		"MMMMM",
	})

	assert.Empty(t, issues)
	require.Len(t, r.Ingredients, 2)
	assert.Equal(t, []string{"1. Mix the flour. 2. Add the salt."}, r.Directions)
}

func TestParseRecipe_HeadingAfterMetadata(t *testing.T) {
	r, issues := NewParser().ParseRecipe([]string{
		"      Title: Pie",
		"  Cook Time: 1 hour",
		"MMMMM-----FILLING: APPLE-----",
		"      2    Apples",
		"-----",
	})

	assert.Empty(t, issues)
	assert.Equal(t, []string{"Cook Time"}, r.Attributes.Keys())
	require.Len(t, r.Ingredients, 2)
	assert.True(t, r.Ingredients[0].IsHeading())
	assert.Equal(t, "FILLING: APPLE", r.Ingredients[0].Text)
	assert.Equal(t, "Apples", r.Ingredients[1].Text)
}

func TestSplitRecipeLines(t *testing.T) {
	input := strings.Split("x\n---------- a\nTitle: A\n-----\ny\nMMMMM----- b\nMMMMM", "\n")

	var got [][]string
	for block := range SplitRecipeLines(slices.Values(input)) {
		got = append(got, block)
	}
	assert.Equal(t, [][]string{
		{"---------- a", "Title: A", "-----"},
		{"MMMMM----- b", "MMMMM"},
	}, got)
}
