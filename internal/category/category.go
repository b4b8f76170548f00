package category

// UnknownName is the sentinel display name for null or unresolvable ids.
const UnknownName = "Unknown"

// Category is one entry of the flat id→name table.
type Category struct {
	ID   string
	Name string
}

// Table is an id→name lookup built once per aggregation pass and treated as
// read-only during it.
type Table map[string]string

// NewTable builds a lookup table from the fetched category list.
func NewTable(categories []Category) Table {
	t := make(Table, len(categories))
	for _, c := range categories {
		t[c.ID] = c.Name
	}

	return t
}

// Resolve maps a category id to its display name. An empty (null upstream) or
// unknown id resolves to UnknownName rather than failing.
func (t Table) Resolve(id string) string {
	if id == "" {
		return UnknownName
	}

	name, ok := t[id]
	if !ok {
		return UnknownName
	}

	return name
}
