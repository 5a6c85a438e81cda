package export

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/tsawler/recipetext/model"
)

// field is a labelled metadata value shown above the ingredients
type field struct {
	label string
	value string
}

// metadataFields lists the non-empty metadata of r in display order
func metadataFields(r *model.Recipe) []field {
	var fields []field
	add := func(label, value string) {
		if value != "" {
			fields = append(fields, field{label: label, value: value})
		}
	}

	add("Categories", strings.Join(r.Categories, ", "))
	add("Yield", r.Yield)
	if r.Servings > 0 {
		add("Servings", strconv.Itoa(r.Servings))
	}
	add("Recipe By", r.RecipeBy)
	add("Serving Size", r.ServingSize)
	add("Preparation Time", r.PreparationTime)
	for label, value := range r.Attributes.All() {
		add(label, value)
	}
	return fields
}

// exportMarkdown exports recipes as Markdown, separated by rules
func (e *Exporter) exportMarkdown(recipes []*model.Recipe, w io.Writer) error {
	var sb strings.Builder
	for i, r := range recipes {
		if i > 0 {
			sb.WriteString("\n---\n\n")
		}
		writeMarkdownRecipe(&sb, r)
	}

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("failed to write markdown: %w", err)
	}
	return nil
}

func writeMarkdownRecipe(sb *strings.Builder, r *model.Recipe) {
	title := r.Title
	if title == "" {
		title = "Untitled"
	}
	sb.WriteString("# " + escapeMarkdown(title) + "\n")

	if fields := metadataFields(r); len(fields) > 0 {
		sb.WriteString("\n")
		for _, f := range fields {
			sb.WriteString("- **" + f.label + ":** " + escapeMarkdown(f.value) + "\n")
		}
	}

	if len(r.Ingredients) > 0 {
		sb.WriteString("\n## Ingredients\n")
		for _, group := range r.IngredientGroups() {
			if group.Heading != "" {
				sb.WriteString("\n### " + escapeMarkdown(group.Heading) + "\n")
			}
			if len(group.Items) > 0 {
				sb.WriteString("\n")
			}
			for _, ing := range group.Items {
				sb.WriteString("- " + escapeMarkdown(ing.String()) + "\n")
			}
		}
	}

	writeMarkdownSection(sb, "Directions", r.Directions)
	writeMarkdownSection(sb, "Notes", r.Notes)
}

func writeMarkdownSection(sb *strings.Builder, heading string, paragraphs []string) {
	if len(paragraphs) == 0 {
		return
	}
	sb.WriteString("\n## " + heading + "\n")
	for _, p := range paragraphs {
		sb.WriteString("\n" + escapeMarkdown(p) + "\n")
	}
}

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	"*", `\*`,
	"_", `\_`,
	"`", "\\`",
	"[", `\[`,
	"]", `\]`,
)

// escapeMarkdown escapes the inline characters that would change the
// meaning of recipe text
func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}
