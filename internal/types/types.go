// Package types defines the semantic Type sum — Primitive, Pointer,
// Array, Function — produced by lowering a parser TypeExpr. Each Type
// variant owns the Types nested inside it and carries an is_const flag.
package types

import (
	"fmt"
	"strings"
)

// Type is the interface every semantic type variant implements.
type Type interface {
	String() string
	IsConst() bool
	// WithConst returns a copy of this type with IsConst set to c.
	WithConst(c bool) Type
}

// Primitive is a named base type (e.g. "i32", "bool", or an
// as-yet-unvalidated name — lowering never rejects an unknown base
// name; that is left to a later semantic phase).
type Primitive struct {
	Name  string
	Const bool
}

func (p Primitive) String() string {
	return withConstPrefix(p.Const, p.Name)
}
func (p Primitive) IsConst() bool         { return p.Const }
func (p Primitive) WithConst(c bool) Type { p.Const = c; return p }

// Pointer is "pointer to Of".
type Pointer struct {
	Of    Type
	Const bool
}

func (p Pointer) String() string {
	return withConstPrefix(p.Const, p.Of.String()+"*")
}
func (p Pointer) IsConst() bool         { return p.Const }
func (p Pointer) WithConst(c bool) Type { p.Const = c; return p }

// Array is "array of Of", with Size 0 meaning unspecified.
type Array struct {
	Of    Type
	Size  int64
	Const bool
}

func (a Array) String() string {
	size := ""
	if a.Size > 0 {
		size = fmt.Sprintf("%d", a.Size)
	}
	return withConstPrefix(a.Const, fmt.Sprintf("%s[%s]", a.Of.String(), size))
}
func (a Array) IsConst() bool         { return a.Const }
func (a Array) WithConst(c bool) Type { a.Const = c; return a }

// Function is "fn(Params...) -> Return". Return is nil for a function
// with no declared return type.
type Function struct {
	Return Type
	Params []Type
	Const  bool
}

func (f Function) String() string {
	parts := make([]string, len(f.Params))
	for i, p := range f.Params {
		parts[i] = p.String()
	}
	ret := "void"
	if f.Return != nil {
		ret = f.Return.String()
	}
	return withConstPrefix(f.Const, fmt.Sprintf("fn(%s) -> %s", strings.Join(parts, ", "), ret))
}
func (f Function) IsConst() bool         { return f.Const }
func (f Function) WithConst(c bool) Type { f.Const = c; return f }

func withConstPrefix(isConst bool, s string) string {
	if isConst {
		return "const " + s
	}
	return s
}

// Equal reports structural equality between two types, ignoring
// const-ness (useful for tests comparing lowering output).
func Equal(a, b Type) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch av := a.(type) {
	case Primitive:
		bv, ok := b.(Primitive)
		return ok && av.Name == bv.Name
	case Pointer:
		bv, ok := b.(Pointer)
		return ok && Equal(av.Of, bv.Of)
	case Array:
		bv, ok := b.(Array)
		return ok && av.Size == bv.Size && Equal(av.Of, bv.Of)
	case Function:
		bv, ok := b.(Function)
		if !ok || len(av.Params) != len(bv.Params) || !Equal(av.Return, bv.Return) {
			return false
		}
		for i := range av.Params {
			if !Equal(av.Params[i], bv.Params[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
