package goat

import (
	"strings"

	"github.com/pepconf/goatgen/pkg/config"
)

// xtbMethods is the set of XTB/GFN family method names, normalized by
// normalizeMethod. Covers the ORCA spellings and common aliases.
var xtbMethods = map[string]bool{
	"XTB":     true,
	"XTB0":    true,
	"XTB1":    true,
	"XTB2":    true,
	"GFNXTB":  true,
	"GFN0XTB": true,
	"GFN1XTB": true,
	"GFN2XTB": true,
	"GFNFF":   true,
}

// normalizeMethod uppercases a method name and strips separators so that
// "GFN2-xTB", "gfn2 xtb", and "GFN2XTB" all compare equal
func normalizeMethod(name string) string {
	name = strings.ToUpper(strings.TrimSpace(name))
	name = strings.ReplaceAll(name, "-", "")
	name = strings.ReplaceAll(name, "_", "")
	name = strings.ReplaceAll(name, " ", "")
	return name
}

// IsXTBMethod reports whether the method belongs to the XTB/GFN family.
// Matching is case-insensitive and ignores separators.
func IsXTBMethod(name string) bool {
	return xtbMethods[normalizeMethod(name)]
}

// xtbSolventModels are the implicit solvation models available with XTB
// methods. The continuum models CPCM, SMD, and COSMO are not implemented for
// the tight-binding Hamiltonians.
var xtbSolventModels = map[string]bool{
	strings.ToUpper(config.ModelALPB):    true,
	strings.ToUpper(config.ModelDDCOSMO): true,
	strings.ToUpper(config.ModelCPCMX):   true,
}

// SolventModelAllowedForXTB reports whether the solvation model can be
// combined with an XTB method
func SolventModelAllowedForXTB(model string) bool {
	return xtbSolventModels[strings.ToUpper(model)]
}
