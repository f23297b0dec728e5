package domain

import "testing"

func TestDefaultCategories(t *testing.T) {
	t.Parallel()

	categories := DefaultCategories()

	if len(categories) != 8 {
		t.Fatalf("expected 8 default categories, got %d", len(categories))
	}

	names := make(map[string]bool)
	for _, c := range categories {
		if c.Name == "" || c.Icon == "" || c.Color == "" {
			t.Errorf("category %q has empty fields: %+v", c.ID, c)
		}
		if names[c.Name] {
			t.Errorf("duplicate category name %q", c.Name)
		}
		names[c.Name] = true
	}

	if !names["Food & Dining"] || !names["Other"] {
		t.Errorf("expected seed set to include Food & Dining and Other, got %v", names)
	}
}

func TestDefaultCategoriesReturnsCopy(t *testing.T) {
	t.Parallel()

	first := DefaultCategories()
	first[0].Name = "mutated"

	second := DefaultCategories()
	if second[0].Name != "Food & Dining" {
		t.Fatalf("mutating the returned slice leaked into the seed set: %q", second[0].Name)
	}
}

func TestFindCategory(t *testing.T) {
	t.Parallel()

	categories := DefaultCategories()

	if cat, ok := FindCategory(categories, "Healthcare"); !ok || cat.Icon != "local-hospital" {
		t.Errorf("expected Healthcare with local-hospital icon, got %+v ok=%v", cat, ok)
	}

	if _, ok := FindCategory(categories, "Not A Category"); ok {
		t.Error("expected lookup miss for unknown name")
	}
}
