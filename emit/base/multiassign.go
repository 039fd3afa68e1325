package base

import "github.com/rubyshade/rubyshade/ir"

// MultiAssignPlan describes how a MultipleAssignment lowers to a
// temporary plus per-target accessor expressions: a tuple-returning
// source reads back via field access (tempVar.v0, tempVar.v1, ...), an
// array-returning source reads back via indexing (tempVar[0],
// tempVar[1], ...).
type MultiAssignPlan struct {
	TempVar    string
	TempType   ir.TypeTag
	Names      []string
	Accessors  []ir.Node
	IsTupleSrc bool
}

// PlanMultiAssign builds the temporary-binding plan for ma. tempVar
// names the synthetic local the target backend declares to hold
// ma.Source's value before distributing it across ma.Targets.
func PlanMultiAssign(ma *ir.MultipleAssignment, tempVar string) MultiAssignPlan {
	sourceType := typeTagOf(ma.Source)
	plan := MultiAssignPlan{
		TempVar:    tempVar,
		TempType:   sourceType,
		Names:      make([]string, len(ma.Targets)),
		Accessors:  make([]ir.Node, len(ma.Targets)),
		IsTupleSrc: sourceType.Kind == ir.TypeTuple,
	}

	for i, target := range ma.Targets {
		if ref, ok := target.(*ir.VarRef); ok {
			plan.Names[i] = ref.Name
		}
		if plan.IsTupleSrc {
			plan.Accessors[i] = &ir.FieldAccess{
				Receiver: &ir.VarRef{Name: tempVar},
				Field:    TupleFieldName(i),
			}
		} else {
			plan.Accessors[i] = &ir.ArrayIndex{
				Array: &ir.VarRef{Name: tempVar},
				Index: &ir.Literal{Value: float64(i), IntSyntax: true},
			}
		}
	}
	return plan
}
