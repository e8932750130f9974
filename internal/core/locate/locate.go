// Package locate maps a definition name to the line ranges of its
// signature, its doc comment, and its body. All functions are pure views
// over lowered definitions; nothing is cached.
package locate

import "docdrift/internal/model"

// FindDefinitions returns every definition matching name, in source order.
// Multiple matches are overload-style redeclarations and are never
// deduplicated.
func FindDefinitions(defs []model.Definition, name string) []model.Definition {
	var matches []model.Definition
	for _, def := range defs {
		if def.Name == name {
			matches = append(matches, def)
		}
	}
	return matches
}

// IsOverload reports whether any decorator resolves to the identifier
// "overload", either bare or as an attribute tail. The check is syntactic
// on purpose; the import source of the name is irrelevant.
func IsOverload(def model.Definition) bool {
	for _, dec := range def.Decorators {
		if isOverloadRef(dec.Ref) {
			return true
		}
	}
	return false
}

func isOverloadRef(ref model.DecoratorRef) bool {
	switch ref.Kind {
	case model.RefSimple, model.RefQualified:
		return ref.Name == "overload"
	default:
		return false
	}
}

// DefinitionRange spans the whole definition, starting at the first
// decorator when decorators exist.
func DefinitionRange(def model.Definition) model.LineRange {
	start := def.Start
	if len(def.Decorators) > 0 {
		start = def.Decorators[0].Line
	}
	return model.LineRange{Start: start, End: def.End}
}

// SignatureRange spans the header portion. An overload's whole range is
// signature, as is an empty-bodied definition's. A definition whose first
// body statement shares the header line collapses to that single line;
// line granularity cannot separate header from body there.
func SignatureRange(def model.Definition) model.LineRange {
	full := DefinitionRange(def)
	if IsOverload(def) || len(def.Body) == 0 {
		return full
	}

	first := def.Body[0]
	sigEnd := first.Start - 1
	if sigEnd < full.Start {
		sigEnd = full.Start
	}
	if first.Start == def.Start {
		sigEnd = def.Start
	}
	return model.LineRange{Start: full.Start, End: sigEnd}
}

// DocCommentRange returns the exact lines of the doc comment, present only
// when the first body statement is a bare string-literal expression.
// Overload-marked definitions are never inspected for documentation.
func DocCommentRange(def model.Definition) (model.LineRange, bool) {
	if IsOverload(def) || len(def.Body) == 0 || !def.Body[0].IsString {
		return model.LineRange{}, false
	}
	return model.LineRange{Start: def.Body[0].Start, End: def.Body[0].End}, true
}

// BodyWithoutDocRanges spans the definition minus its doc comment: the
// sub-range before the doc (usually empty, kept for generality) and the
// sub-range after it, each only when non-empty. Without a doc comment the
// whole definition range is returned.
func BodyWithoutDocRanges(def model.Definition) []model.LineRange {
	full := DefinitionRange(def)
	doc, ok := DocCommentRange(def)
	if !ok {
		return []model.LineRange{full}
	}

	var out []model.LineRange
	if doc.Start > full.Start {
		out = append(out, model.LineRange{Start: full.Start, End: doc.Start - 1})
	}
	if doc.End < full.End {
		out = append(out, model.LineRange{Start: doc.End + 1, End: full.End})
	}
	return out
}

// BodyRange spans the implementation body for history queries: from the
// first statement after the doc comment (or the first statement) to the
// definition's end. Overloads and empty bodies yield nothing.
func BodyRange(def model.Definition) (model.LineRange, bool) {
	if IsOverload(def) || len(def.Body) == 0 {
		return model.LineRange{}, false
	}

	start := def.Body[0].Start
	if doc, ok := DocCommentRange(def); ok {
		start = doc.End + 1
	}
	if start > def.End {
		return model.LineRange{}, false
	}
	return model.LineRange{Start: start, End: def.End}, true
}

// DefinitionRanges flattens DefinitionRange across definitions.
func DefinitionRanges(defs []model.Definition) []model.LineRange {
	var out []model.LineRange
	for _, def := range defs {
		out = append(out, DefinitionRange(def))
	}
	return out
}

// SignatureRanges flattens SignatureRange across definitions.
func SignatureRanges(defs []model.Definition) []model.LineRange {
	var out []model.LineRange
	for _, def := range defs {
		out = append(out, SignatureRange(def))
	}
	return out
}

// DocCommentRanges flattens DocCommentRange across definitions, skipping
// definitions without one.
func DocCommentRanges(defs []model.Definition) []model.LineRange {
	var out []model.LineRange
	for _, def := range defs {
		if r, ok := DocCommentRange(def); ok {
			out = append(out, r)
		}
	}
	return out
}

// BodyRanges flattens BodyRange across definitions, skipping overloads and
// empty bodies.
func BodyRanges(defs []model.Definition) []model.LineRange {
	var out []model.LineRange
	for _, def := range defs {
		if r, ok := BodyRange(def); ok {
			out = append(out, r)
		}
	}
	return out
}

// BodyWithoutDocAll flattens BodyWithoutDocRanges across definitions.
func BodyWithoutDocAll(defs []model.Definition) []model.LineRange {
	var out []model.LineRange
	for _, def := range defs {
		out = append(out, BodyWithoutDocRanges(def)...)
	}
	return out
}
