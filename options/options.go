// Package options implements a typed, three-scope option registry: editor
// scope, inherited into a window scope on split, inherited into a buffer
// scope on buffer creation. A scope that has never had a name set for it
// falls back to its parent, and ultimately to the built-in default table.
package options

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrNoSuchOption is returned for an unknown option name.
var ErrNoSuchOption = errors.New("no such option")

// Value is the typed value of an option: bool, int, or string.
type Value struct {
	Bool   bool
	Int    int
	Str    string
	IsBool bool
	IsInt  bool
}

func boolValue(b bool) Value   { return Value{Bool: b, IsBool: true} }
func intValue(i int) Value     { return Value{Int: i, IsInt: true} }
func stringValue(s string) Value { return Value{Str: s} }

// defaults is the exhaustive option table.
var defaults = map[string]Value{
	"autoindent":     boolValue(false),
	"smartindent":    boolValue(false),
	"shiftwidth":     intValue(8),
	"cinwords":       stringValue("if,else,while,do,for,switch"),
	"modifiable":     boolValue(true),
	"numberwidth":    intValue(4),
	"number":         boolValue(false),
	"relativenumber": boolValue(false),
	"cursorline":     boolValue(false),
	"history":        intValue(50),
	"sidescroll":     intValue(0),
	"ignorecase":     boolValue(false),
	"smartcase":      boolValue(false),
	"splitright":     boolValue(false),
	"splitbelow":     boolValue(false),
	"equalalways":    boolValue(true),
	"hlsearch":       boolValue(false),
	"incsearch":      boolValue(false),
	"ruler":          boolValue(false),
	"tabstop":        intValue(8),
}

// Registry is the editor-scope option table: the root of the inheritance
// chain.
type Registry struct {
	values map[string]Value
}

// NewRegistry returns a registry seeded with the built-in defaults.
func NewRegistry() *Registry {
	values := make(map[string]Value, len(defaults))
	for k, v := range defaults {
		values[k] = v
	}

	return &Registry{values: values}
}

// Scope is a window- or buffer-level option table that falls back to its
// parent for any name it hasn't overridden locally.
type Scope struct {
	parent *Scope
	root   *Registry
	local  map[string]Value
}

// NewWindowScope returns a new scope inheriting from the editor registry;
// the editor uses one as its global scope for :set.
func (r *Registry) NewWindowScope() *Scope {
	return &Scope{root: r, local: make(map[string]Value)}
}

// NewBufferScope returns a new scope inheriting directly from the editor
// registry, used when a buffer is created.
func (r *Registry) NewBufferScope() *Scope {
	return &Scope{root: r, local: make(map[string]Value)}
}

// NewChildScope returns a scope inheriting from this one, so the child
// sees the parent's local overrides. Window splits do not create scopes.
func (s *Scope) NewChildScope() *Scope {
	return &Scope{parent: s, root: s.root, local: make(map[string]Value)}
}

// Get resolves name through the scope chain, then the registry, then the
// built-in defaults.
func (s *Scope) Get(name string) (Value, error) {
	for scope := s; scope != nil; scope = scope.parent {
		if v, ok := scope.local[name]; ok {
			return v, nil
		}
	}

	if v, ok := s.root.values[name]; ok {
		return v, nil
	}

	if v, ok := defaults[name]; ok {
		return v, nil
	}

	return Value{}, fmt.Errorf("%w: %s", ErrNoSuchOption, name)
}

// Default returns the built-in default value for name, ignoring any
// registry or scope override, used by ":set name&".
func Default(name string) (Value, error) {
	if v, ok := defaults[name]; ok {
		return v, nil
	}

	return Value{}, fmt.Errorf("%w: %s", ErrNoSuchOption, name)
}

// Set sets name at this scope (local override), or at the editor registry
// if global is true (used by :setg and plain :set at the editor level).
func (s *Scope) Set(name string, v Value, global bool) error {
	if _, ok := defaults[name]; !ok {
		return fmt.Errorf("%w: %s", ErrNoSuchOption, name)
	}

	if global {
		s.root.values[name] = v

		return nil
	}

	s.local[name] = v

	return nil
}

// SetGlobal sets name at the editor-scope registry directly (:setg).
func (r *Registry) SetGlobal(name string, v Value) error {
	if _, ok := defaults[name]; !ok {
		return fmt.Errorf("%w: %s", ErrNoSuchOption, name)
	}

	r.values[name] = v

	return nil
}

// ParseValue parses a raw :set argument string into a Value typed like the
// named option's default.
func ParseValue(name, raw string) (Value, error) {
	def, ok := defaults[name]
	if !ok {
		return Value{}, fmt.Errorf("%w: %s", ErrNoSuchOption, name)
	}

	switch {
	case def.IsBool:
		switch raw {
		case "", "true", "1", "on":
			return boolValue(true), nil
		case "false", "0", "off":
			return boolValue(false), nil
		default:
			return Value{}, fmt.Errorf("%w: bad boolean %q for %s", ErrNoSuchOption, raw, name)
		}
	case def.IsInt:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return Value{}, fmt.Errorf("%w: bad integer %q for %s", ErrNoSuchOption, raw, name)
		}

		return intValue(n), nil
	default:
		return stringValue(raw), nil
	}
}

// Convenience typed accessors used throughout the editor; each falls back
// to the given fallback if the option is missing from the table above.

func (s *Scope) Modifiable() bool  { return s.boolOr("modifiable", true) }
func (s *Scope) AutoIndent() bool  { return s.boolOr("autoindent", false) }
func (s *Scope) SmartIndent() bool { return s.boolOr("smartindent", false) }
func (s *Scope) IgnoreCase() bool  { return s.boolOr("ignorecase", false) }
func (s *Scope) SmartCase() bool   { return s.boolOr("smartcase", false) }
func (s *Scope) IncSearch() bool   { return s.boolOr("incsearch", false) }
func (s *Scope) HlSearch() bool    { return s.boolOr("hlsearch", false) }
func (s *Scope) Number() bool      { return s.boolOr("number", false) }
func (s *Scope) RelativeNumber() bool { return s.boolOr("relativenumber", false) }
func (s *Scope) CursorLine() bool  { return s.boolOr("cursorline", false) }
func (s *Scope) Ruler() bool       { return s.boolOr("ruler", false) }
func (s *Scope) SplitRight() bool  { return s.boolOr("splitright", false) }
func (s *Scope) SplitBelow() bool  { return s.boolOr("splitbelow", false) }
func (s *Scope) EqualAlways() bool { return s.boolOr("equalalways", true) }

func (s *Scope) ShiftWidth() int  { return s.intOr("shiftwidth", 8) }
func (s *Scope) NumberWidth() int { return s.intOr("numberwidth", 4) }
func (s *Scope) History() int    { return s.intOr("history", 50) }
func (s *Scope) SideScroll() int { return s.intOr("sidescroll", 0) }
func (s *Scope) TabStop() int    { return s.intOr("tabstop", 8) }

func (s *Scope) boolOr(name string, fallback bool) bool {
	v, err := s.Get(name)
	if err != nil {
		return fallback
	}

	return v.Bool
}

func (s *Scope) intOr(name string, fallback int) int {
	v, err := s.Get(name)
	if err != nil {
		return fallback
	}

	return v.Int
}
