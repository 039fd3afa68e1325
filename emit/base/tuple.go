package base

import (
	"fmt"

	"github.com/rubyshade/rubyshade/ir"
)

// TupleStructName returns the synthesized struct type name for a
// function whose return type is a tuple, e.g. "split_result" for a
// function named "split".
func TupleStructName(functionName string) string {
	return functionName + "_result"
}

// TupleFieldName returns the field name of the i-th tuple component.
func TupleFieldName(i int) string {
	return fmt.Sprintf("v%d", i)
}

// WriteTupleStruct emits the struct definition backing a tuple-valued
// function return, one field per component typed per hooks.TypeName.
func WriteTupleStruct(w *Writer, hooks Hooks, structName string, components []ir.TypeTag) {
	w.WriteLine("struct %s {", structName)
	w.PushIndent()
	for i, t := range components {
		w.WriteLine("%s", hooks.StructFieldLine(TupleFieldName(i), hooks.TypeName(t)))
	}
	w.PopIndent()
	w.WriteLine("};")
}
