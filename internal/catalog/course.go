package catalog

// Course is a complete course pack: an ordered list of modules, each
// holding the items that become reviewable once the module completes.
type Course struct {
	ID      string   `json:"id" validate:"required"`
	Title   string   `json:"title" validate:"required"`
	Modules []Module `json:"modules" validate:"required,min=1,dive"`
}

// Module is one chapter of a course. Module order in the slice is the
// canonical chapter order.
type Module struct {
	ID    string `json:"id" validate:"required"`
	Title string `json:"title" validate:"required"`
	Items []Item `json:"items" validate:"required,min=1,dive"`
}

// Module returns the module with the given ID, or false.
func (c *Course) Module(id string) (*Module, bool) {
	for i := range c.Modules {
		if c.Modules[i].ID == id {
			return &c.Modules[i], true
		}
	}
	return nil, false
}

// Item returns the item with the given ID along with its owning
// module, or false when the ID is unknown.
func (c *Course) Item(id string) (*Item, *Module, bool) {
	for i := range c.Modules {
		m := &c.Modules[i]
		for j := range m.Items {
			if m.Items[j].ID == id {
				return &m.Items[j], m, true
			}
		}
	}
	return nil, nil, false
}

// ItemCount returns the total number of items across all modules.
func (c *Course) ItemCount() int {
	n := 0
	for i := range c.Modules {
		n += len(c.Modules[i].Items)
	}
	return n
}

// FlashcardCount returns how many of the module's items are flashcards.
func (m *Module) FlashcardCount() int {
	n := 0
	for i := range m.Items {
		if m.Items[i].Kind == KindFlashcard {
			n++
		}
	}
	return n
}

// ActivityCount returns how many of the module's items are activities.
func (m *Module) ActivityCount() int {
	return len(m.Items) - m.FlashcardCount()
}
