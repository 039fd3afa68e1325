package wgsl

import (
	"fmt"
	"strings"

	"github.com/rubyshade/rubyshade/emit/base"
)

func (hooks) VarDeclLine(name, typeName, value string) string {
	if value == "" {
		return fmt.Sprintf("var %s: %s;", name, typeName)
	}
	return fmt.Sprintf("let %s: %s = %s;", name, typeName, value)
}

func (hooks) GlobalDeclLine(name, typeName, value string, isConst bool) string {
	keyword := "var<private>"
	if isConst {
		keyword = "const"
	}
	if value == "" {
		return fmt.Sprintf("%s %s: %s;", keyword, name, typeName)
	}
	return fmt.Sprintf("%s %s: %s = %s;", keyword, name, typeName, value)
}

func (hooks) ForHeaderLine(index, startExpr, endExpr string) string {
	return fmt.Sprintf("for (var %s: i32 = %s; %s < %s; %s++) {", index, startExpr, index, endExpr, index)
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
		parts[i] = p.Name + ": " + p.TypeName
	}
	return fmt.Sprintf("fn %s(%s) -> %s {", name, strings.Join(parts, ", "), returnType)
}

func (hooks) TupleReturnLine(structName string, elems []string) string {
	return fmt.Sprintf("return %s(%s);", structName, strings.Join(elems, ", "))
}

func (hooks) StructFieldLine(fieldName, typeName string) string {
	return fieldName + ": " + typeName + ","
}
