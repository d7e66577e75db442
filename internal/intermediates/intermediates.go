// Package intermediates defines the handles for the entities a pair map is
// built over. The engine treats them as opaque keys; only their index and
// display name matter here.
package intermediates

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Intermediate is a single entity to be compared. Name may be empty, in
// which case a positional fallback name is rendered.
type Intermediate struct {
	Name string `yaml:"name" json:"name"`
}

// List is an ordered collection of intermediates. Indices into the list are
// the node IDs of the generated map.
type List []Intermediate

// FromNames builds a List from display names. Empty strings are preserved
// and resolved lazily by NameAt.
func FromNames(names []string) List {
	list := make(List, len(names))
	for i, name := range names {
		list[i] = Intermediate{Name: name}
	}
	return list
}

// NameAt returns the display name of the intermediate at index i, falling
// back to "intermediate-%04d" when no name was supplied.
func (l List) NameAt(i int) string {
	if i >= 0 && i < len(l) && l[i].Name != "" {
		return l[i].Name
	}
	return fmt.Sprintf("intermediate-%04d", i)
}

// Names returns the resolved display names for every intermediate.
func (l List) Names() []string {
	names := make([]string, len(l))
	for i := range l {
		names[i] = l.NameAt(i)
	}
	return names
}

// LoadNames reads a names file: one name per line, blank lines and lines
// starting with '#' ignored.
func LoadNames(path string) (List, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open names file: %w", err)
	}
	defer f.Close()

	var list List
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		list = append(list, Intermediate{Name: line})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read names file: %w", err)
	}
	return list, nil
}
