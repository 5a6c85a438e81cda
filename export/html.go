package export

import (
	"fmt"
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/tsawler/recipetext/model"
)

// exportHTML exports recipes as a standalone HTML document with one
// <article> per recipe
func (e *Exporter) exportHTML(recipes []*model.Recipe, w io.Writer) error {
	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})

	head := element(atom.Head,
		element(atom.Meta, attr("charset", "utf-8")),
		element(atom.Title, text(e.config.DocumentTitle)),
	)
	body := element(atom.Body)
	for _, r := range recipes {
		body.AppendChild(recipeNode(r))
	}
	doc.AppendChild(element(atom.Html, attr("lang", "en"), head, body))

	if err := html.Render(w, doc); err != nil {
		return fmt.Errorf("failed to render HTML: %w", err)
	}
	return nil
}

func recipeNode(r *model.Recipe) *html.Node {
	article := element(atom.Article, attr("class", "recipe"))

	title := r.Title
	if title == "" {
		title = "Untitled"
	}
	article.AppendChild(element(atom.H1, text(title)))

	if fields := metadataFields(r); len(fields) > 0 {
		dl := element(atom.Dl, attr("class", "metadata"))
		for _, f := range fields {
			dl.AppendChild(element(atom.Dt, text(f.label)))
			dl.AppendChild(element(atom.Dd, text(f.value)))
		}
		article.AppendChild(dl)
	}

	if len(r.Ingredients) > 0 {
		section := element(atom.Section, attr("class", "ingredients"), element(atom.H2, text("Ingredients")))
		for _, group := range r.IngredientGroups() {
			if group.Heading != "" {
				section.AppendChild(element(atom.H3, text(group.Heading)))
			}
			if len(group.Items) == 0 {
				continue
			}
			ul := element(atom.Ul)
			for _, ing := range group.Items {
				ul.AppendChild(ingredientNode(ing))
			}
			section.AppendChild(ul)
		}
		article.AppendChild(section)
	}

	if n := paragraphSection("directions", "Directions", r.Directions); n != nil {
		article.AppendChild(n)
	}
	if n := paragraphSection("notes", "Notes", r.Notes); n != nil {
		article.AppendChild(n)
	}
	return article
}

func ingredientNode(ing model.Ingredient) *html.Node {
	li := element(atom.Li)
	if ing.Quantity != "" {
		li.AppendChild(element(atom.Span, attr("class", "quantity"), text(ing.Quantity)))
		li.AppendChild(text(" "))
	}
	if ing.Unit != "" {
		li.AppendChild(element(atom.Span, attr("class", "unit"), text(ing.Unit)))
		li.AppendChild(text(" "))
	}
	li.AppendChild(element(atom.Span, attr("class", "text"), text(ing.Text)))
	if ing.Preparation != "" {
		li.AppendChild(text(" "))
		li.AppendChild(element(atom.Span, attr("class", "preparation"), text(ing.Preparation)))
	}
	return li
}

func paragraphSection(class, heading string, paragraphs []string) *html.Node {
	if len(paragraphs) == 0 {
		return nil
	}
	section := element(atom.Section, attr("class", class), element(atom.H2, text(heading)))
	for _, p := range paragraphs {
		section.AppendChild(element(atom.P, text(p)))
	}
	return section
}

// htmlAttr marks an attribute argument of element
type htmlAttr html.Attribute

func attr(key, val string) htmlAttr {
	return htmlAttr{Key: key, Val: val}
}

// element builds an element node. Arguments are attributes (from attr) or
// child nodes, in order.
func element(a atom.Atom, args ...any) *html.Node {
	n := &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
	for _, arg := range args {
		switch v := arg.(type) {
		case htmlAttr:
			n.Attr = append(n.Attr, html.Attribute(v))
		case *html.Node:
			n.AppendChild(v)
		}
	}
	return n
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}
