package catalog

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

//go:embed courses/*.json
var builtinFS embed.FS

// LoadBuiltin loads and validates the course packs embedded in the
// binary.
func LoadBuiltin() ([]*Course, error) {
	entries, err := fs.ReadDir(builtinFS, "courses")
	if err != nil {
		return nil, fmt.Errorf("read embedded courses: %w", err)
	}
	var courses []*Course
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		data, err := fs.ReadFile(builtinFS, "courses/"+e.Name())
		if err != nil {
			return nil, fmt.Errorf("read embedded course %s: %w", e.Name(), err)
		}
		c, err := Parse(data)
		if err != nil {
			return nil, fmt.Errorf("course %s: %w", e.Name(), err)
		}
		courses = append(courses, c)
	}
	sort.Slice(courses, func(i, j int) bool { return courses[i].ID < courses[j].ID })
	return courses, nil
}

// LoadFile loads and validates a single course pack from disk.
func LoadFile(path string) (*Course, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read course file: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("course %s: %w", filepath.Base(path), err)
	}
	return c, nil
}

// LoadDir loads every .json course pack in a directory.
func LoadDir(dir string) ([]*Course, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read course dir: %w", err)
	}
	var courses []*Course
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		c, err := LoadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, err
		}
		courses = append(courses, c)
	}
	sort.Slice(courses, func(i, j int) bool { return courses[i].ID < courses[j].ID })
	return courses, nil
}

// Parse decodes and validates a course pack from raw JSON.
func Parse(data []byte) (*Course, error) {
	var c Course
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("parse course: %w", err)
	}
	if err := Validate(&c); err != nil {
		return nil, err
	}
	return &c, nil
}
