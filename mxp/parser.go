package mxp

import (
	"iter"
	"regexp"
	"strings"

	"github.com/tsawler/recipetext/layout"
	"github.com/tsawler/recipetext/lines"
	"github.com/tsawler/recipetext/model"
)

// FormatName is the value of model.Recipe.Format for MasterCook recipes
const FormatName = "MasterCook"

const (
	// fixed columns of the categories section
	categoryStart  = 16
	categorySecond = 48

	// preparation separator inside the ingredient text
	preparationSep = " -- "

	categoriesLabel = "Categories    :"
)

var (
	// "  AAAAAA  MMMMMMMMMMMM  text": amount, measure and text two spaces apart
	ingredientPattern = regexp.MustCompile(`^  ([\d./ ]{6})  (.{12})  (.*)`)

	servingSizePattern = regexp.MustCompile(`^ *Serving Size *: *(\d*) *Preparation Time *: *(.*)`)

	categoryIndent = strings.Repeat(" ", categoryStart)

	isHeader = layout.FramedSentinel('*', "Exported from")
	isFooter = layout.SpacedRunSentinel('-', 18)
)

// Ingredient table column titles
var tableHeaders = []string{
	"Amount  Measure       Ingredient -- Preparation Method",
	"--------  ------------  --------------------------------",
}

// IsHeader reports whether a line starts a MasterCook recipe
func IsHeader(line string) bool {
	return isHeader(line)
}

// IsFooter reports whether a line separates the directions from the notes
func IsFooter(line string) bool {
	return isFooter(line)
}

// Config holds configuration for the MasterCook parser
type Config struct {
	// Attributes enables capturing unknown "Label: value" metadata lines
	// Default: true
	Attributes bool
}

// DefaultConfig returns the default parser configuration
func DefaultConfig() Config {
	return Config{
		Attributes: true,
	}
}

// Parser parses MasterCook recipes. A Parser holds no per-recipe state and
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
		}),
		table: layout.NewTableScanner(layout.TableConfig{
			TableHeaders: tableHeaders,
			IsItem:       IsIngredient,
			Suspect:      layout.LooksLikeItem,
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
// optional.
func (p *Parser) ParseRecipe(in []string) (*model.Recipe, []layout.Issue) {
	trimmed := make([]string, len(in))
	for i, line := range in {
		trimmed[i] = lines.TrimRight(line)
	}
	return p.parse(trimmed)
}

// ParseBlock parses a block produced by Split
func (p *Parser) ParseBlock(block layout.Block) (*model.Recipe, []layout.Issue) {
	return p.parse(block.Lines)
}

func (p *Parser) parse(in []string) (*model.Recipe, []layout.Issue) {
	recipe := model.NewRecipe(FormatName)
	var issues []layout.Issue
	c := lines.NewCursor(in)

	if c.SkipBlank() && IsHeader(c.Current()) {
		c.Advance()
	}

	p.parseMetadata(c, recipe)
	if recipe.Title == "" {
		issues = append(issues, layout.NewIssue(layout.IssueStructuralGap, "recipe has no title"))
	}

	table := p.table.Scan(c)
	if table.HeadersSeen == 0 {
		issues = append(issues, layout.NewIssue(layout.IssueStructuralGap, "ingredient table header missing"))
	}
	for _, entry := range table.Entries {
		ing := ParseIngredient(entry.Line)
		recipe.AddIngredient(ing)
	}
	issues = append(issues, table.Issues...)

	directions, found := p.grouper.Consume(c, IsFooter)
	recipe.Directions = append(recipe.Directions, directions...)
	if !found {
		issues = append(issues, layout.NewIssue(layout.IssueTruncation, "recipe ends before the directions footer"))
		return recipe, issues
	}

	notes, _ := p.grouper.Consume(c, nil)
	recipe.Notes = append(recipe.Notes, notes...)
	return recipe, issues
}

// parseMetadata reads the title, Recipe By, the serving size line and the
// categories in that order, followed by any other labelled lines
func (p *Parser) parseMetadata(c *lines.Cursor, recipe *model.Recipe) {
	// The first non-blank line is the title, whatever it holds
	if !c.SkipBlank() {
		return
	}
	recipe.Title = strings.TrimSpace(c.Current())
	c.Advance()

	if c.SkipBlank() {
		if label, value, ok := layout.LabelValue(c.Current()); ok && strings.EqualFold(label, "recipe by") {
			recipe.RecipeBy = value
			c.Advance()
		}
	}

	if c.SkipBlank() {
		if size, prep, ok := ParseServingSize(c.Current()); ok {
			recipe.ServingSize = size
			recipe.PreparationTime = prep
			c.Advance()
		}
	}

	if c.SkipBlank() && hasCategoriesLabel(c.Current()) {
		for c.HasMore() {
			first, second, ok := ParseCategories(c.Current())
			if !ok {
				break
			}
			for _, category := range []string{first, second} {
				if category != "" {
					recipe.Categories = append(recipe.Categories, category)
				}
			}
			c.Advance()
		}
	}

	if !p.config.Attributes {
		return
	}
	layout.ScanAttributes(c, IsIngredient, recipe.Attributes.Set)
}

// ParseServingSize matches the "Serving Size : N  Preparation Time : T" line
// and returns both values
func ParseServingSize(line string) (servingSize, preparationTime string, ok bool) {
	m := servingSizePattern.FindStringSubmatch(lines.TrimRight(line))
	if m == nil {
		return "", "", false
	}
	return m[1], m[2], true
}

// ParseCategories matches a categories line or one of its continuation
// lines and returns the two category columns. Continuation lines start with
// 16 spaces and must have a first category.
func ParseCategories(line string) (first, second string, ok bool) {
	if hasCategoriesLabel(line) {
		return layout.Column(line, categoryStart, categorySecond), layout.Column(line, categorySecond, -1), true
	}
	if strings.HasPrefix(line, categoryIndent) {
		first = layout.Column(line, categoryStart, categorySecond)
		if first == "" {
			return "", "", false
		}
		return first, layout.Column(line, categorySecond, -1), true
	}
	return "", "", false
}

func hasCategoriesLabel(line string) bool {
	return len(line) >= len(categoriesLabel) && strings.EqualFold(line[:len(categoriesLabel)], categoriesLabel)
}

// IsIngredient reports whether a line has the column layout of an
// ingredient line. Blank lines are not ingredients.
func IsIngredient(line string) bool {
	return !lines.IsBlank(line) && ingredientPattern.MatchString(line)
}

// ParseIngredient splits an ingredient line into amount, measure, text and
// preparation method. Lines that do not match give an item holding only the
// trimmed text.
func ParseIngredient(line string) model.Ingredient {
	m := ingredientPattern.FindStringSubmatch(line)
	if m == nil {
		return model.Item("", "", strings.TrimSpace(line), "")
	}

	text := strings.TrimSpace(m[3])
	preparation := ""
	if i := strings.Index(text, preparationSep); i >= 0 {
		text, preparation = text[:i], text[i+len(preparationSep):]
	}
	return model.Item(strings.TrimSpace(m[1]), strings.TrimSpace(m[2]), text, preparation)
}

// Parse parses every MasterCook recipe in lines with the default
// configuration
func Parse(in []string) []*model.Recipe {
	return NewParser().Parse(in)
}

// ParseRecipe parses a single MasterCook recipe with the default
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
