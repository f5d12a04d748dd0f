// Package goat holds the GOAT domain rules: the variant catalog, XTB method
// detection, and the cross-field compatibility checks run before any file is
// generated.
package goat

import "github.com/pepconf/goatgen/pkg/config"

// VariantInfo describes a GOAT variant for selection menus
type VariantInfo struct {
	Variant     config.Variant
	Description string
}

// VariantCatalog lists the supported variants with their descriptions,
// in menu order
var VariantCatalog = []VariantInfo{
	{config.VariantGoat, "Find global minimum and conformational ensemble"},
	{config.VariantEntropy, "Maximize conformational entropy (most complete ensemble)"},
	{config.VariantExplore, "Topology-free search (can break bonds)"},
	{config.VariantDiversity, "Maximize structural diversity (ignore energies)"},
}

// Describe returns the description for a variant, or the empty string for an
// unknown one
func Describe(v config.Variant) string {
	for _, info := range VariantCatalog {
		if info.Variant == v {
			return info.Description
		}
	}
	return ""
}
