package chat

// Category is the topic a visitor's question was classified into.
type Category string

const (
	Destinations  Category = "destinations"
	Culture       Category = "culture"
	Food          Category = "food"
	Travel        Category = "travel"
	Accommodation Category = "accommodation"
	Activities    Category = "activities"
	General       Category = "general"
)

// Categories lists every category in the default priority order, General last.
func Categories() []Category {
	return []Category{Destinations, Culture, Food, Travel, Accommodation, Activities, General}
}

// Valid reports whether c belongs to the closed set of categories.
func (c Category) Valid() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

func (c Category) String() string { return string(c) }
