package msl

import (
	"fmt"
	"strings"

	"github.com/rubyshade/rubyshade/emit/base"
)

func (hooks) VarDeclLine(name, typeName, value string) string {
	if value == "" {
		return typeName + " " + name + ";"
	}
	return typeName + " " + name + " = " + value + ";"
}

func (hooks) GlobalDeclLine(name, typeName, value string, isConst bool) string {
	prefix := "constant "
	if !isConst {
		prefix = ""
	}
	if value == "" {
		return prefix + typeName + " " + name + ";"
	}
	return prefix + typeName + " " + name + " = " + value + ";"
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
	return fmt.Sprintf("return %s{%s};", structName, strings.Join(elems, ", "))
}

func (hooks) StructFieldLine(fieldName, typeName string) string {
	return typeName + " " + fieldName + ";"
}
