package settings

import (
	"fmt"
	"slices"
	"strings"
)

// Role tags a collection with the side of the command it configures.
type Role int

const (
	// RoleUnset marks the zero Collection; it is never accepted by the graph.
	RoleUnset Role = iota
	RoleInput
	RoleOutput
)

func (r Role) String() string {
	switch r {
	case RoleInput:
		return "input"
	case RoleOutput:
		return "output"
	default:
		return "unset"
	}
}

// ParseRole converts "input"/"output" (case-insensitive) into a Role.
func ParseRole(value string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "input", "in":
		return RoleInput, nil
	case "output", "out":
		return RoleOutput, nil
	default:
		return RoleUnset, fmt.Errorf("unknown settings role %q", value)
	}
}

// Setting is a single opaque configuration entry.
type Setting struct {
	Name  string `toml:"name" json:"name"`
	Value string `toml:"value" json:"value,omitempty"`
}

// Collection is an ordered, role-tagged set of settings. Collections are
// values; every mutator returns a copy.
type Collection struct {
	role  Role
	items []Setting
}

// ForInput returns an input collection holding the provided settings.
func ForInput(items ...Setting) Collection {
	return Collection{role: RoleInput, items: cleanItems(items)}
}

// ForOutput returns an output collection holding the provided settings.
func ForOutput(items ...Setting) Collection {
	return Collection{role: RoleOutput, items: cleanItems(items)}
}

// For returns a collection for an arbitrary role.
func For(role Role, items ...Setting) Collection {
	return Collection{role: role, items: cleanItems(items)}
}

// Role reports the collection's declared role.
func (c Collection) Role() Role { return c.role }

// IsZero reports whether the collection was never initialised.
func (c Collection) IsZero() bool { return c.role == RoleUnset }

// Len returns the number of entries.
func (c Collection) Len() int { return len(c.items) }

// Items returns a copy of the entries in insertion order.
func (c Collection) Items() []Setting { return slices.Clone(c.items) }

// With returns a copy with the supplied entries appended.
func (c Collection) With(items ...Setting) Collection {
	next := Collection{role: c.role, items: slices.Clone(c.items)}
	next.items = append(next.items, cleanItems(items)...)
	return next
}

// Lookup returns the value of the last entry with the given name.
func (c Collection) Lookup(name string) (string, bool) {
	name = strings.TrimSpace(name)
	for i := len(c.items) - 1; i >= 0; i-- {
		if c.items[i].Name == name {
			return c.items[i].Value, true
		}
	}
	return "", false
}

func (c Collection) String() string {
	parts := make([]string, 0, len(c.items))
	for _, item := range c.items {
		if item.Value == "" {
			parts = append(parts, item.Name)
			continue
		}
		parts = append(parts, item.Name+"="+item.Value)
	}
	return c.role.String() + "[" + strings.Join(parts, " ") + "]"
}

func cleanItems(items []Setting) []Setting {
	if len(items) == 0 {
		return nil
	}
	out := make([]Setting, 0, len(items))
	for _, item := range items {
		name := strings.TrimSpace(item.Name)
		if name == "" {
			continue
		}
		out = append(out, Setting{Name: name, Value: strings.TrimSpace(item.Value)})
	}
	return out
}
