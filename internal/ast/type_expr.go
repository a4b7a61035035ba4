package ast

import "github.com/malphas-lang/coretype/internal/token"

// TypeExprShape tags which of the three disjoint syntactic type shapes
// a TypeExpr represents.
type TypeExprShape int

const (
	// ShapeRegular is a base type name with pre-star/array/post-star
	// suffixes, e.g. `const i32**[10]`.
	ShapeRegular TypeExprShape = iota
	// ShapeFunction is an inline `fn(...) -> T` type, with the same
	// suffix envelope applied to the function as a whole.
	ShapeFunction
	// ShapeGrouped is a parenthesized type with its own suffix
	// envelope applied on top of the inner type's already-lowered
	// result, e.g. `(i32*)[10]`.
	ShapeGrouped
)

// TypeExpr is the parser's syntactic representation of a type: still
// containing unevaluated array-size expressions, not yet lowered to a
// semantic types.Type.
type TypeExpr struct {
	base
	Shape TypeExprShape

	// Regular shape (BaseIsConst is also set for the Function and
	// Grouped shapes)
	BaseName    string
	BaseIsConst bool

	// Function shape
	IsFunction bool // kept for readability alongside Shape == ShapeFunction
	Params     []*TypeExpr
	Return     *TypeExpr // nil if absent

	// Grouped shape
	Inner *TypeExpr

	// Suffix envelope, shared by all three shapes.
	PreStars  int
	Sizes     []Expression // nil element means absent ("[]")
	PostStars int
}

// NewRegularTypeExpr constructs a Regular-shape TypeExpr.
func NewRegularTypeExpr(tok token.Token, baseName string, baseIsConst bool) *TypeExpr {
	return &TypeExpr{base: base{tok: tok}, Shape: ShapeRegular, BaseName: baseName, BaseIsConst: baseIsConst}
}

// NewFunctionTypeExpr constructs a Function-shape TypeExpr.
func NewFunctionTypeExpr(tok token.Token, params []*TypeExpr, ret *TypeExpr, baseIsConst bool) *TypeExpr {
	return &TypeExpr{base: base{tok: tok}, Shape: ShapeFunction, IsFunction: true, Params: params, Return: ret, BaseIsConst: baseIsConst}
}

// NewGroupedTypeExpr constructs a Grouped-shape TypeExpr.
func NewGroupedTypeExpr(tok token.Token, inner *TypeExpr) *TypeExpr {
	return &TypeExpr{base: base{tok: tok}, Shape: ShapeGrouped, Inner: inner}
}
