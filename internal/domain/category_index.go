package domain

// CategoryIndex is the category store: an ordered list of categories
// with id lookup. Order is insertion order, which is also presentation
// order in day cells and summaries.
type CategoryIndex struct {
	list []Category
	byID map[string]int
}

// NewCategoryIndex creates an empty category index.
func NewCategoryIndex() *CategoryIndex {
	return &CategoryIndex{
		byID: make(map[string]int),
	}
}

// Add appends a category. Categories with duplicate ids are rejected.
func (ci *CategoryIndex) Add(category Category) bool {
	if _, exists := ci.byID[category.ID]; exists {
		return false
	}
	ci.byID[category.ID] = len(ci.list)
	ci.list = append(ci.list, category)
	return true
}

// Get returns the category with the given id.
func (ci *CategoryIndex) Get(id string) (Category, bool) {
	i, ok := ci.byID[id]
	if !ok {
		return Category{}, false
	}
	return ci.list[i], true
}

// Replace swaps the stored category with the same id in place,
// preserving its position in the order.
func (ci *CategoryIndex) Replace(category Category) bool {
	i, ok := ci.byID[category.ID]
	if !ok {
		return false
	}
	ci.list[i] = category
	return true
}

// Remove drops the category with the given id.
func (ci *CategoryIndex) Remove(id string) bool {
	i, ok := ci.byID[id]
	if !ok {
		return false
	}
	ci.list = append(ci.list[:i], ci.list[i+1:]...)
	delete(ci.byID, id)
	for j := i; j < len(ci.list); j++ {
		ci.byID[ci.list[j].ID] = j
	}
	return true
}

// List returns the categories in order. The returned slice is a copy.
func (ci *CategoryIndex) List() []Category {
	out := make([]Category, len(ci.list))
	copy(out, ci.list)
	return out
}

// First returns the first category in order, if any.
func (ci *CategoryIndex) First() (Category, bool) {
	if len(ci.list) == 0 {
		return Category{}, false
	}
	return ci.list[0], true
}

// Len returns the number of categories.
func (ci *CategoryIndex) Len() int {
	return len(ci.list)
}
