// Package catalog defines the course pack model: courses split into
// modules (chapters), each containing flashcards and activities. Packs
// are JSON files, either embedded in the binary or loaded from disk.
package catalog

import (
	"fmt"
	"sort"
)

// Catalog indexes a set of loaded courses for lookup by ID.
type Catalog struct {
	courses map[string]*Course
}

// New builds a catalog from loaded courses. Duplicate course IDs are
// rejected.
func New(courses []*Course) (*Catalog, error) {
	byID := make(map[string]*Course, len(courses))
	for _, c := range courses {
		if _, ok := byID[c.ID]; ok {
			return nil, fmt.Errorf("duplicate course ID %q", c.ID)
		}
		byID[c.ID] = c
	}
	return &Catalog{courses: byID}, nil
}

// Course returns the course with the given ID, or false.
func (cat *Catalog) Course(id string) (*Course, bool) {
	c, ok := cat.courses[id]
	return c, ok
}

// Courses returns all courses sorted by ID.
func (cat *Catalog) Courses() []*Course {
	out := make([]*Course, 0, len(cat.courses))
	for _, c := range cat.courses {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
