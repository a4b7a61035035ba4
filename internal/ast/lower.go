package ast

import (
	"github.com/malphas-lang/coretype/internal/types"
)

// Lower converts a syntactic TypeExpr into a semantic Type, applying
// the suffix envelope (pre-stars, then arrays in index order, then
// post-stars) in that exact order.
func Lower(t *TypeExpr) types.Type {
	if t == nil {
		return nil
	}
	var base types.Type
	switch t.Shape {
	case ShapeFunction:
		params := make([]types.Type, len(t.Params))
		for i, p := range t.Params {
			params[i] = Lower(p)
		}
		base = types.Function{Return: Lower(t.Return), Params: params, Const: t.BaseIsConst}
	case ShapeGrouped:
		// The inner TypeExpr's own envelope was already applied by
		// its own Lower call; only this group's envelope applies on
		// top. A 'const' written before the group marks the inner
		// type.
		base = Lower(t.Inner)
		if t.BaseIsConst && base != nil {
			base = base.WithConst(true)
		}
	default: // ShapeRegular
		base = types.Primitive{Name: t.BaseName, Const: t.BaseIsConst}
	}
	return applySuffixEnvelope(base, t)
}

// applySuffixEnvelope wraps base with t's pre-stars, then array
// dimensions in index order, then post-stars.
func applySuffixEnvelope(base types.Type, t *TypeExpr) types.Type {
	result := base
	for i := 0; i < t.PreStars; i++ {
		result = types.Pointer{Of: result}
	}
	for _, sizeExpr := range t.Sizes {
		result = types.Array{Of: result, Size: arraySize(sizeExpr)}
	}
	for i := 0; i < t.PostStars; i++ {
		result = types.Pointer{Of: result}
	}
	return result
}

// arraySize extracts a size from a dimension expression: only an
// integer literal yields a nonzero size; anything else (including an
// absent dimension) is 0, meaning unspecified.
func arraySize(sizeExpr Expression) int64 {
	if sizeExpr == nil {
		return 0
	}
	lit, ok := sizeExpr.(*Literal)
	if !ok || lit.Kind != LitInt {
		return 0
	}
	return parseIntLiteral(lit.Text)
}

func parseIntLiteral(text string) int64 {
	var n int64
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c < '0' || c > '9' {
			return 0
		}
		n = n*10 + int64(c-'0')
	}
	return n
}

// FunctionDeclType lowers a *FunctionDeclaration directly into its
// Function type: the return type (absent ⇒ nil) and every parameter's
// type.
func FunctionDeclType(d *FunctionDeclaration) types.Function {
	params := make([]types.Type, len(d.Params))
	for i, p := range d.Params {
		params[i] = Lower(p.Type)
	}
	return types.Function{Return: Lower(d.ReturnType), Params: params}
}
