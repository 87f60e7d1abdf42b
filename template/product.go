package template

import "github.com/hupe1980/contentforge/core"

// ProductSections holds the named sections of a product page.
type ProductSections struct {
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Concentration string   `json:"concentration,omitempty"`
	SkinTypes     []string `json:"skin_type,omitempty"`
	Ingredients   []string `json:"ingredients"`
	Benefits      []string `json:"benefits"`
	Usage         string   `json:"usage"`
	SideEffects   string   `json:"side_effects,omitempty"`
	Price         string   `json:"price"`
}

// ProductPage is the assembled product detail document.
type ProductPage struct {
	PageType string          `json:"page_type"`
	Sections ProductSections `json:"sections"`
}

// BuildProductPage assembles a product page from a parsed product. Name,
// ingredients, benefits, usage and price are required sections; the rest
// are carried when present.
func BuildProductPage(p *core.Product, description string) (*ProductPage, error) {
	switch {
	case p == nil || p.Name == "":
		return nil, &FieldError{Page: PageTypeProduct, Field: "name", Index: -1}
	case len(p.KeyIngredients) == 0:
		return nil, &FieldError{Page: PageTypeProduct, Field: "key_ingredients", Index: -1}
	case len(p.Benefits) == 0:
		return nil, &FieldError{Page: PageTypeProduct, Field: "benefits", Index: -1}
	case p.HowToUse == "":
		return nil, &FieldError{Page: PageTypeProduct, Field: "how_to_use", Index: -1}
	case p.Price == "":
		return nil, &FieldError{Page: PageTypeProduct, Field: "price", Index: -1}
	}

	return &ProductPage{
		PageType: PageTypeProduct,
		Sections: ProductSections{
			Name:          p.Name,
			Description:   description,
			Concentration: p.Concentration,
			SkinTypes:     p.SkinTypes,
			Ingredients:   p.KeyIngredients,
			Benefits:      p.Benefits,
			Usage:         p.HowToUse,
			SideEffects:   p.SideEffects,
			Price:         p.Price,
		},
	}, nil
}
