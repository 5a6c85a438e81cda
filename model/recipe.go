package model

// Recipe is a recipe recovered from a plaintext export file
type Recipe struct {
	// Format names the source format (e.g. "Meal-Master", "MasterCook")
	Format string `json:"format" yaml:"format"`

	Title      string   `json:"title" yaml:"title"`
	Categories []string `json:"categories" yaml:"categories"`

	// Yield and Servings come from one source value; at most one is set
	Yield    string `json:"yield,omitempty" yaml:"yield,omitempty"`
	Servings int    `json:"servings,omitempty" yaml:"servings,omitempty"`

	// MasterCook metadata
	RecipeBy        string `json:"recipe_by,omitempty" yaml:"recipe_by,omitempty"`
	ServingSize     string `json:"serving_size,omitempty" yaml:"serving_size,omitempty"`
	PreparationTime string `json:"preparation_time,omitempty" yaml:"preparation_time,omitempty"`

	Ingredients []Ingredient `json:"ingredients" yaml:"ingredients"`
	Directions  []string     `json:"directions" yaml:"directions"`
	Notes       []string     `json:"notes" yaml:"notes"`

	// Attributes holds labelled metadata without a dedicated field
	Attributes *Attributes `json:"attributes,omitempty" yaml:"attributes,omitempty"`
}

// NewRecipe creates a recipe with every collection initialized
func NewRecipe(format string) *Recipe {
	return &Recipe{
		Format:      format,
		Categories:  []string{},
		Ingredients: []Ingredient{},
		Directions:  []string{},
		Notes:       []string{},
		Attributes:  NewAttributes(),
	}
}

// AddIngredient appends an ingredient or heading
func (r *Recipe) AddIngredient(ing Ingredient) {
	r.Ingredients = append(r.Ingredients, ing)
}

// Items returns the ingredient items without headings
func (r *Recipe) Items() []Ingredient {
	var items []Ingredient
	for _, ing := range r.Ingredients {
		if !ing.IsHeading() {
			items = append(items, ing)
		}
	}
	return items
}

// Headings returns the ingredient heading texts in order
func (r *Recipe) Headings() []string {
	var headings []string
	for _, ing := range r.Ingredients {
		if ing.IsHeading() {
			headings = append(headings, ing.Text)
		}
	}
	return headings
}

// IngredientGroups splits the ingredient list at each heading.
// Items before the first heading form a group with an empty heading; that
// group is omitted when there are no such items.
func (r *Recipe) IngredientGroups() []IngredientGroup {
	var groups []IngredientGroup
	current := IngredientGroup{}
	for _, ing := range r.Ingredients {
		if ing.IsHeading() {
			if current.Heading != "" || len(current.Items) > 0 {
				groups = append(groups, current)
			}
			current = IngredientGroup{Heading: ing.Text}
			continue
		}
		current.Items = append(current.Items, ing)
	}
	if current.Heading != "" || len(current.Items) > 0 {
		groups = append(groups, current)
	}
	return groups
}

// IsEmpty returns true when nothing was recovered from the source
func (r *Recipe) IsEmpty() bool {
	return r.Title == "" &&
		len(r.Categories) == 0 &&
		len(r.Ingredients) == 0 &&
		len(r.Directions) == 0 &&
		len(r.Notes) == 0 &&
		r.Attributes.Len() == 0
}
