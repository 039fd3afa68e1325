package c

import (
	"fmt"
	"strings"

	"github.com/rubyshade/rubyshade/emit/base"
)

// declLine renders "<type> <name>[ = <value>];", moving a trailing
// "[]" on the type to its idiomatic C position after the name.
func declLine(name, typeName, value string) string {
	elem, isArray := strings.CutSuffix(typeName, "[]")
	decl := typeName + " " + name
	if isArray {
		decl = elem + " " + name + "[]"
	}
	if value == "" {
		return decl + ";"
	}
	return decl + " = " + value + ";"
}

func (hooks) VarDeclLine(name, typeName, value string) string {
	return declLine(name, typeName, value)
}

func (hooks) GlobalDeclLine(name, typeName, value string, isConst bool) string {
	prefix := "static "
	if isConst {
		prefix = "static const "
	}
	return prefix + declLine(name, typeName, value)
}

func (hooks) ForHeaderLine(index, startExpr, endExpr string) string {
	return fmt.Sprintf("for (int %s = %s; %s < %s; %s++) {", index, startExpr, index, endExpr, index)
}

func (hooks) ReturnLine(value string) string {
	if value == "" {
		return "return;"
	}
	return "return " + value + ";"
}

func (hooks) FunctionHeaderLine(name, returnType string, params []base.Param) string {
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = p.TypeName + " " + p.Name
	}
	return fmt.Sprintf("%s %s(%s) {", returnType, name, strings.Join(parts, ", "))
}

func (hooks) TupleReturnLine(structName string, elems []string) string {
	return fmt.Sprintf("return (%s){%s};", structName, strings.Join(elems, ", "))
}

func (hooks) StructFieldLine(fieldName, typeName string) string {
	return declLine(fieldName, typeName, "")
}
