package export

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/invopop/jsonschema"

	"github.com/tsawler/recipetext/model"
)

// SchemaID is the $id of the recipe schema
const SchemaID = "https://github.com/tsawler/recipetext/schema/recipe.json"

var (
	attributesType = reflect.TypeOf(&model.Attributes{})
	kindType       = reflect.TypeOf(model.KindItem)
)

// RecipeSchema returns the JSON Schema of a single exported recipe
func RecipeSchema() *jsonschema.Schema {
	r := &jsonschema.Reflector{
		ExpandedStruct: true,
		DoNotReference: true,
		Mapper:         mapType,
	}

	s := r.Reflect(&model.Recipe{})
	s.ID = jsonschema.ID(SchemaID)
	s.Title = "Recipe"
	s.Description = "A recipe recovered from a Meal-Master or MasterCook export"
	return s
}

// Schema returns the indented JSON Schema of a single exported recipe
func Schema() ([]byte, error) {
	data, err := json.MarshalIndent(RecipeSchema(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode schema: %w", err)
	}
	return data, nil
}

// mapType describes the model types that marshal themselves
func mapType(t reflect.Type) *jsonschema.Schema {
	switch t {
	case attributesType, attributesType.Elem():
		return &jsonschema.Schema{
			Type:                 "object",
			Description:          "Labelled metadata in source order",
			AdditionalProperties: &jsonschema.Schema{Type: "string"},
		}
	case kindType:
		return &jsonschema.Schema{
			Type: "string",
			Enum: []any{model.KindItem.String(), model.KindHeading.String()},
		}
	default:
		return nil
	}
}
