package debugme

import (
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strings"
)

// Sigils distinguishing instance fields and shared (type-level) fields from
// locals and constants.
const (
	FieldSigil  = "@"
	SharedSigil = "@@"
)

// Category is a class of named bindings in a [Scope].
type Category int

// Categories in sweep order.
const (
	CategoryLocal Category = iota
	CategoryField
	CategoryShared
	CategoryConst
	numCategories
)

// Binding is a resolved name and its value.
// The value is [Undefined] if the name could not be resolved.
type Binding struct {
	Name  string
	Value any
}

// Scope is a snapshot of the bindings visible at a call site.
//
// Go cannot enumerate a caller's variables at run time, so the caller builds
// the snapshot explicitly:
//
//	sc := debugme.Locals("a", a, "b", b).
//		FieldsOf(s).
//		Const("Limit", Limit)
//
// Bindings are kept in the order they were first added. Binding an existing
// name again in the same category replaces its value in place.
//
// A nil *Scope is valid and has no bindings. The builder methods allocate a
// new Scope when called on nil, so they can start a chain.
type Scope struct {
	sets [numCategories][]Binding
}

// NewScope returns an empty Scope.
func NewScope() *Scope { return &Scope{} }

// Locals returns a new Scope holding the given local variables as
// alternating name, value pairs. A trailing name without a value is bound to
// nil. Names that are not strings are formatted with [fmt.Sprint].
func Locals(nameValue ...any) *Scope {
	s := NewScope()

	for i := 0; i < len(nameValue); i += 2 {
		var val any
		if i+1 < len(nameValue) {
			val = nameValue[i+1]
		}

		s.set(CategoryLocal, fmt.Sprint(nameValue[i]), val)
	}

	return s
}

// Local binds a local variable.
func (s *Scope) Local(name string, value any) *Scope {
	return s.set(CategoryLocal, name, value)
}

// Field binds an instance field. The name is given the [FieldSigil] if it
// does not already start with one.
func (s *Scope) Field(name string, value any) *Scope {
	if !strings.HasPrefix(name, FieldSigil) {
		name = FieldSigil + name
	}

	return s.set(CategoryField, name, value)
}

// Shared binds a shared (type-level) field. The name is given the
// [SharedSigil], replacing any leading [FieldSigil] characters.
func (s *Scope) Shared(name string, value any) *Scope {
	return s.set(CategoryShared, SharedSigil+strings.TrimLeft(name, FieldSigil), value)
}

// Const binds a named constant. Qualified names such as "Type::Name" are
// stored verbatim and only match the same qualified name.
func (s *Scope) Const(name string, value any) *Scope {
	return s.set(CategoryConst, name, value)
}

// FieldsOf binds every exported field of the struct v (or the struct v
// points to) as an instance field, in declaration order. Any other v is
// ignored.
func (s *Scope) FieldsOf(v any) *Scope {
	return s.structOf(v, (*Scope).Field)
}

// SharedOf binds every exported field of the struct v (or the struct v
// points to) as a shared field, in declaration order. Any other v is ignored.
func (s *Scope) SharedOf(v any) *Scope {
	return s.structOf(v, (*Scope).Shared)
}

// ConstsOf binds every entry of m as a constant, ordered by name.
func (s *Scope) ConstsOf(m map[string]any) *Scope {
	if s == nil {
		s = NewScope()
	}

	for _, name := range slices.Sorted(maps.Keys(m)) {
		s.Const(name, m[name])
	}

	return s
}

// Names returns every bound name in sweep order: locals, instance fields,
// shared fields, then constants.
func (s *Scope) Names() []string {
	if s == nil {
		return nil
	}

	var names []string

	for _, set := range s.sets {
		for _, b := range set {
			names = append(names, b.Name)
		}
	}

	return names
}

// Category returns the bindings of a single category in binding order.
func (s *Scope) Category(c Category) []Binding {
	if s == nil || c < 0 || c >= numCategories {
		return nil
	}

	return slices.Clone(s.sets[c])
}

// Lookup resolves name against the scope.
//
// Bound names are searched first, in sweep order. Otherwise name is
// evaluated as an expression over the scope's locals and constants (for
// example "user.Name", "items[0]", or "a + b"). If that fails as well, Lookup
// returns [Undefined] and false. Lookup never panics.
func (s *Scope) Lookup(name string) (any, bool) {
	if s != nil {
		for _, set := range s.sets {
			for _, b := range set {
				if b.Name == name {
					return b.Value, true
				}
			}
		}
	}

	return s.eval(name)
}

// Bindings resolves the bindings to report.
//
// If names is non-empty, exactly those names are resolved in the given
// order, duplicates included. Otherwise every binding of each category
// enabled in cfg is returned, in sweep order.
func (s *Scope) Bindings(cfg Config, names []string) []Binding {
	if len(names) > 0 {
		out := make([]Binding, 0, len(names))

		for _, name := range names {
			val, _ := s.Lookup(name)
			out = append(out, Binding{Name: name, Value: val})
		}

		return out
	}

	if s == nil {
		return nil
	}

	var out []Binding

	for c, enabled := range []bool{cfg.Locals, cfg.Fields, cfg.Shared, cfg.Constants} {
		if enabled {
			out = append(out, s.sets[c]...)
		}
	}

	return out
}

func (s *Scope) set(c Category, name string, value any) *Scope {
	if s == nil {
		s = NewScope()
	}

	i := slices.IndexFunc(s.sets[c], func(b Binding) bool { return b.Name == name })
	if i < 0 {
		s.sets[c] = append(s.sets[c], Binding{Name: name, Value: value})
	} else {
		s.sets[c][i].Value = value
	}

	return s
}

func (s *Scope) structOf(v any, bind func(*Scope, string, any) *Scope) *Scope {
	if s == nil {
		s = NewScope()
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return s
		}

		rv = rv.Elem()
	}

	if rv.Kind() != reflect.Struct {
		return s
	}

	rt := rv.Type()
	for i := range rt.NumField() {
		if f := rt.Field(i); f.IsExported() {
			s = bind(s, f.Name, rv.Field(i).Interface())
		}
	}

	return s
}
