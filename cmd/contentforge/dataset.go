package main

import (
	"encoding/json"
	"fmt"
	"os"
)

// sampleProduct is the built-in product record used when no dataset is given.
func sampleProduct() map[string]any {
	return map[string]any{
		"name":            "GlowBoost Vitamin C Serum",
		"concentration":   "10% Vitamin C",
		"skin_type":       []any{"Oily", "Combination"},
		"key_ingredients": []any{"Vitamin C", "Hyaluronic Acid"},
		"benefits":        []any{"Brightening", "Fades dark spots"},
		"how_to_use":      "Apply 2-3 drops in the morning before sunscreen",
		"side_effects":    "Mild tingling for sensitive skin",
		"price":           "₹699",
	}
}

// dataset is the on-disk dataset document shape.
type dataset struct {
	Products []map[string]any `json:"products"`
}

// loadProduct returns the product record at index from the dataset file, or
// the built-in sample when path is empty.
func loadProduct(path string, index int) (map[string]any, error) {
	if path == "" {
		if index != 0 {
			return nil, fmt.Errorf("--product-index requires --dataset")
		}

		return sampleProduct(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}

	var ds dataset
	if err := json.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("parse dataset %q: %w", path, err)
	}

	if len(ds.Products) == 0 {
		return nil, fmt.Errorf("dataset %q has no products", path)
	}

	if index < 0 || index >= len(ds.Products) {
		return nil, fmt.Errorf("product index %d out of range, dataset has %d products", index, len(ds.Products))
	}

	return ds.Products[index], nil
}
