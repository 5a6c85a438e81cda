package mmf

import (
	"iter"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/tsawler/recipetext/layout"
	"github.com/tsawler/recipetext/lines"
	"github.com/tsawler/recipetext/model"
)

// FormatName is the value of model.Recipe.Format for Meal-Master recipes
const FormatName = "Meal-Master"

// Column layout of an ingredient line: "QQQQQQQ UU TTTTTTTT..."
const (
	quantityEnd = 7
	unitStart   = 8
	unitEnd     = 10
	textStart   = 11

	// columnWidth is where the second ingredient column starts
	columnWidth = 41
)

var (
	// 7 digits, periods, slashes or spaces, a space, 2 letters or spaces, a space
	ingredientPattern = regexp.MustCompile(`^[\d./ ]{7} [A-Za-z ]{2} `)

	// "MMMMM-----SAUCE-----" group headings
	headingMatcher = layout.NewHeadingMatcherWithConfig(layout.HeadingConfig{
		Prefix:    "MMMMM",
		MinDashes: 5,
	})

	// metadata ends at the ingredient list
	endOfMetadata = layout.AnySentinel(IsIngredient, headingMatcher.IsHeading)

	isHeader = layout.PrefixSentinel("---------- ", "MMMMM----- ")
	isFooter = layout.ExactSentinel("-----", "MMMMM")
)

// IsHeader reports whether a line starts a Meal-Master recipe
func IsHeader(line string) bool {
	return isHeader(line)
}

// IsFooter reports whether a line ends a Meal-Master recipe
func IsFooter(line string) bool {
	return isFooter(line)
}

// Config holds configuration for the Meal-Master parser
type Config struct {
	// ColumnOrder is the reading order of two-column ingredient lists
	// Default: layout.DownThenAcross
	ColumnOrder layout.ColumnOrder

	// Attributes enables capturing unknown "Label: value" metadata lines
	// Default: true
	Attributes bool
}

// DefaultConfig returns the default parser configuration
func DefaultConfig() Config {
	return Config{
		ColumnOrder: layout.DownThenAcross,
		Attributes:  true,
	}
}

// Parser parses Meal-Master recipes. A Parser holds no per-recipe state and
// is safe for concurrent use.
type Parser struct {
	config   Config
	splitter *layout.BlockSplitter
	table    *layout.TableScanner
	grouper  *layout.ParagraphGrouper
}

// NewParser creates a parser with default configuration
func NewParser() *Parser {
	return NewParserWithConfig(DefaultConfig())
}

// NewParserWithConfig creates a parser with custom configuration
func NewParserWithConfig(config Config) *Parser {
	return &Parser{
		config: config,
		splitter: layout.NewBlockSplitter(layout.SplitterConfig{
			Header: IsHeader,
			Footer: IsFooter,
		}),
		table: layout.NewTableScanner(layout.TableConfig{
			Heading:            headingMatcher,
			IsItem:             IsIngredient,
			Columns:            layout.ColumnConfig{SplitAt: columnWidth, Order: config.ColumnOrder},
			ContinuationMarker: '-',
			Suspect:            layout.LooksLikeItem,
		}),
		grouper: layout.NewParagraphGrouper(),
	}
}

// FormatName returns the name of the format this parser reads
func (p *Parser) FormatName() string {
	return FormatName
}

// Split returns the recipe blocks of a line stream
func (p *Parser) Split(seq iter.Seq[string]) iter.Seq[layout.Block] {
	return p.splitter.Split(seq)
}

// Parse parses every recipe in lines
func (p *Parser) Parse(in []string) []*model.Recipe {
	var recipes []*model.Recipe
	for block := range p.splitter.SplitLines(in) {
		r, _ := p.ParseBlock(block)
		recipes = append(recipes, r)
	}
	return recipes
}

// ParseRecipe parses the lines of a single recipe. The header line is
// optional; a missing footer is reported as a truncation.
func (p *Parser) ParseRecipe(in []string) (*model.Recipe, []layout.Issue) {
	trimmed := make([]string, len(in))
	for i, line := range in {
		trimmed[i] = lines.TrimRight(line)
	}
	return p.parse(trimmed, false)
}

// ParseBlock parses a block produced by Split
func (p *Parser) ParseBlock(block layout.Block) (*model.Recipe, []layout.Issue) {
	return p.parse(block.Lines, block.Truncated)
}

func (p *Parser) parse(in []string, truncated bool) (*model.Recipe, []layout.Issue) {
	recipe := model.NewRecipe(FormatName)
	var issues []layout.Issue
	c := lines.NewCursor(in)

	// header
	if c.SkipBlank() && IsHeader(c.Current()) {
		c.Advance()
	}

	p.parseMetadata(c, recipe)
	if recipe.Title == "" {
		issues = append(issues, layout.NewIssue(layout.IssueStructuralGap, "recipe has no title"))
	}

	table := p.table.Scan(c)
	for _, entry := range table.Entries {
		if entry.IsHeading {
			recipe.AddIngredient(model.Heading(entry.Heading))
			continue
		}
		recipe.AddIngredient(candidateIngredient(entry.Candidate))
	}
	issues = append(issues, table.Issues...)

	directions, found := p.grouper.Consume(c, IsFooter)
	recipe.Directions = append(recipe.Directions, directions...)

	if truncated || !found {
		issues = append(issues, layout.NewIssue(layout.IssueTruncation, "recipe ends without a footer"))
	}
	return recipe, issues
}

// parseMetadata reads Title, Categories and Yield/Servings in that order,
// each optional, followed by any other labelled lines.
func (p *Parser) parseMetadata(c *lines.Cursor, recipe *model.Recipe) {
	if value, ok := labelled(c, "title"); ok {
		recipe.Title = value
		c.Advance()
	}
	if value, ok := labelled(c, "categories"); ok {
		recipe.Categories = SplitCategories(value)
		c.Advance()
	}
	if value, ok := labelled(c, "yield", "servings"); ok {
		recipe.Yield, recipe.Servings = ParseServingsOrYield(value)
		c.Advance()
	}

	if !p.config.Attributes {
		return
	}
	layout.ScanAttributes(c, endOfMetadata, recipe.Attributes.Set)
}

// labelled skips blank lines and returns the value of the current line when
// its label is one of names, compared case-insensitively
func labelled(c *lines.Cursor, names ...string) (string, bool) {
	if !c.SkipBlank() {
		return "", false
	}
	label, value, ok := layout.LabelValue(c.Current())
	if !ok || !slices.Contains(names, strings.ToLower(label)) {
		return "", false
	}
	return value, true
}

// candidateIngredient builds an ingredient from a merged table candidate
func candidateIngredient(cand layout.Candidate) model.Ingredient {
	ing := ParseIngredient(cand.Line)
	ing.Text = cand.JoinText(ing.Text)
	return ing
}

// ParseIngredient splits an ingredient line into its fixed columns.
// Short lines give empty fields.
func ParseIngredient(line string) model.Ingredient {
	return model.Item(
		layout.Column(line, 0, quantityEnd),
		layout.Column(line, unitStart, unitEnd),
		layout.Column(line, textStart, -1),
		"",
	)
}

// IsIngredient reports whether a line has the shape of an ingredient line.
// Continuation lines are ingredient lines too.
func IsIngredient(line string) bool {
	return ingredientPattern.MatchString(line)
}

// SplitCategories splits a comma separated category list. A single
// category named "none" (any case) means no categories.
func SplitCategories(value string) []string {
	categories := []string{}
	for _, c := range strings.Split(value, ",") {
		if c = strings.TrimSpace(c); c != "" {
			categories = append(categories, c)
		}
	}
	if len(categories) == 1 && strings.EqualFold(categories[0], "none") {
		return []string{}
	}
	return categories
}

// ParseServingsOrYield interprets a Yield or Servings value. An integer,
// optionally followed by "serving" or "servings", is a servings count;
// anything else is a yield.
func ParseServingsOrYield(value string) (yield string, servings int) {
	value = strings.TrimSpace(value)
	count := value
	for _, suffix := range []string{"servings", "serving"} {
		if n := len(value) - len(suffix); n >= 0 && strings.EqualFold(value[n:], suffix) {
			count = value[:n]
			break
		}
	}

	n, err := strconv.Atoi(strings.TrimSpace(count))
	if err != nil {
		return value, 0
	}
	return "", n
}

// Parse parses every Meal-Master recipe in lines with the default
// configuration
func Parse(in []string) []*model.Recipe {
	return NewParser().Parse(in)
}

// ParseRecipe parses a single Meal-Master recipe with the default
// configuration
func ParseRecipe(in []string) *model.Recipe {
	r, _ := NewParser().ParseRecipe(in)
	return r
}

// SplitRecipeLines yields the lines of each recipe in a line stream
func SplitRecipeLines(seq iter.Seq[string]) iter.Seq[[]string] {
	return func(yield func([]string) bool) {
		for block := range NewParser().Split(seq) {
			if !yield(block.Lines) {
				return
			}
		}
	}
}
