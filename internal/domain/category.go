package domain

// Category is a user-facing spending bucket. Expenses reference categories by
// display name, not by ID, so deleting or renaming a category never touches
// the expenses that were logged under it.
type Category struct {
	ID    string
	Name  string
	Icon  string
	Color string
}

var defaultCategories = []Category{
	{ID: "1", Name: "Food & Dining", Icon: "restaurant", Color: "#FF6B6B"},
	{ID: "2", Name: "Transportation", Icon: "directions-car", Color: "#4ECDC4"},
	{ID: "3", Name: "Shopping", Icon: "shopping-cart", Color: "#45B7D1"},
	{ID: "4", Name: "Entertainment", Icon: "movie", Color: "#96CEB4"},
	{ID: "5", Name: "Bills & Utilities", Icon: "receipt", Color: "#FFEAA7"},
	{ID: "6", Name: "Healthcare", Icon: "local-hospital", Color: "#DDA0DD"},
	{ID: "7", Name: "Education", Icon: "school", Color: "#98D8C8"},
	{ID: "8", Name: "Other", Icon: "more-horiz", Color: "#A8A8A8"},
}

// DefaultCategories returns the seed category set used when no category store
// exists yet. The returned slice is a copy and safe to modify.
func DefaultCategories() []Category {
	out := make([]Category, len(defaultCategories))
	copy(out, defaultCategories)
	return out
}

// FindCategory looks up a category by display name. The second return value
// reports whether the name was found.
func FindCategory(categories []Category, name string) (Category, bool) {
	for _, c := range categories {
		if c.Name == name {
			return c, true
		}
	}
	return Category{}, false
}
