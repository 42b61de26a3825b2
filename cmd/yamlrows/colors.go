package main

import (
	"github.com/signadot/yamlrows/schema"

	"github.com/fatih/color"
)

type colors struct {
	Name   func(string, ...any) string
	Scalar func(string, ...any) string
	Nested func(string, ...any) string
	Pass   func(string, ...any) string
	Sep    func(string, ...any) string
}

func newColors() *colors {
	return &colors{
		Name:   rgb(128, 168, 196),
		Scalar: rgb(8, 196, 16),
		Nested: rgb(196, 168, 128),
		Pass:   rgb(168, 0, 196),
		Sep:    rgb(96, 96, 96),
	}
}

// rgb returns a formatter which ignores color.NoColor.
func rgb(r, g, b int) func(string, ...any) string {
	c := color.RGB(r, g, b)
	c.EnableColor()
	return c.SprintfFunc()
}

func (c *colors) name(s string) string {
	if c == nil {
		return s
	}
	return c.Name("%s", s)
}

func (c *colors) sep(s string) string {
	if c == nil {
		return s
	}
	return c.Sep("%s", s)
}

func (c *colors) typ(t *schema.Type) string {
	s := t.String()
	if c == nil {
		return s
	}
	switch {
	case t.ID == schema.YAML:
		return c.Pass("%s", s)
	case t.ID.IsNested():
		return c.Nested("%s", s)
	}
	return c.Scalar("%s", s)
}
