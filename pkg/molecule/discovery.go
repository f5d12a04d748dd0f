// Package molecule locates XYZ coordinate files for generation. The files
// themselves are never parsed; only their names and paths matter.
package molecule

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// Molecule identifies one coordinate file: the base name (used for derived
// file names) and the path to the .xyz file
type Molecule struct {
	Name string
	Path string
}

// Discover scans a directory for .xyz files and returns them sorted by name
func Discover(dir string) ([]Molecule, error) {
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("coordinate directory not found: %s", dir)
		}
		return nil, fmt.Errorf("failed to access %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", dir, err)
	}

	var molecules []Molecule
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.EqualFold(filepath.Ext(name), ".xyz") {
			continue
		}
		molecules = append(molecules, Molecule{
			Name: strings.TrimSuffix(name, filepath.Ext(name)),
			Path: filepath.Join(dir, name),
		})
	}

	sort.Slice(molecules, func(i, j int) bool {
		return molecules[i].Name < molecules[j].Name
	})

	return molecules, nil
}

// Select picks molecules from the list by a selection string: "all" for
// everything, otherwise 1-based indices separated by spaces or commas.
// Invalid entries are skipped and reported in the returned warnings.
func Select(molecules []Molecule, selection string) ([]Molecule, []string) {
	selection = strings.TrimSpace(selection)
	if strings.EqualFold(selection, "all") {
		return molecules, nil
	}

	var (
		selected []Molecule
		warnings []string
	)
	fields := strings.FieldsFunc(selection, func(r rune) bool {
		return r == ' ' || r == ','
	})
	for _, field := range fields {
		idx, err := strconv.Atoi(field)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("invalid input: %s (skipped)", field))
			continue
		}
		if idx < 1 || idx > len(molecules) {
			warnings = append(warnings, fmt.Sprintf("invalid index: %d (skipped)", idx))
			continue
		}
		selected = append(selected, molecules[idx-1])
	}

	return selected, warnings
}
