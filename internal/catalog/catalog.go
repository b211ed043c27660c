// Package catalog maps proficiency levels to their lesson number ranges.
// Ranges are supplied externally (product content team) and loaded from
// configuration; the scheduler only ever sees one LessonRange at a time.
package catalog

import "sort"

// LessonRange is the inclusive bounds of valid lesson numbers for a
// proficiency level.
type LessonRange struct {
	Start int
	End   int
}

// Valid reports whether the range is usable for scheduling.
func (r LessonRange) Valid() bool {
	return r.Start > 0 && r.Start <= r.End
}

// Size returns the number of lesson slots in the range.
func (r LessonRange) Size() int {
	if !r.Valid() {
		return 0
	}
	return r.End - r.Start + 1
}

// Contains reports whether n falls inside the range.
func (r LessonRange) Contains(n int) bool {
	return n >= r.Start && n <= r.End
}

// Catalog resolves proficiency levels to lesson ranges.
type Catalog struct {
	levels map[string]LessonRange
}

// New builds a catalog from a level map, dropping invalid ranges.
func New(levels map[string]LessonRange) *Catalog {
	c := &Catalog{levels: make(map[string]LessonRange, len(levels))}
	for level, r := range levels {
		if r.Valid() {
			c.levels[level] = r
		}
	}
	return c
}

// Default returns the built-in level catalog used when no configuration
// overrides it.
func Default() *Catalog {
	return New(map[string]LessonRange{
		"beginner":     {Start: 1, End: 60},
		"elementary":   {Start: 61, End: 120},
		"intermediate": {Start: 121, End: 180},
		"advanced":     {Start: 181, End: 240},
	})
}

// Range looks up the lesson range for a level.
func (c *Catalog) Range(level string) (LessonRange, bool) {
	r, ok := c.levels[level]
	return r, ok
}

// Levels returns the known level names in sorted order.
func (c *Catalog) Levels() []string {
	names := make([]string, 0, len(c.levels))
	for name := range c.levels {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
