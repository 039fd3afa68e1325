package builtins

import "github.com/rubyshade/rubyshade/ir"

// ReturnRuleKind is the tagged-variant discriminator for ReturnRule,
// following the registry design the language-agnostic notes call for:
// a ReturnRule variant of Same|First|Second|Third|Concrete(TypeTag).
type ReturnRuleKind uint8

const (
	RuleSame ReturnRuleKind = iota
	RuleFirst
	RuleSecond
	RuleThird
	RuleConcrete
)

// ReturnRule describes how a function's return type is derived from
// its argument types.
type ReturnRule struct {
	Kind     ReturnRuleKind
	Concrete ir.TypeTag // set when Kind == RuleConcrete
}

func sameRule() ReturnRule               { return ReturnRule{Kind: RuleSame} }
func argRule(kind ReturnRuleKind) ReturnRule { return ReturnRule{Kind: kind} }
func concreteRule(t ir.TypeTag) ReturnRule { return ReturnRule{Kind: RuleConcrete, Concrete: t} }

// Resolve applies the rule to a list of already-inferred argument
// types, defaulting to float when an indexed rule names an argument
// that isn't present.
func (r ReturnRule) Resolve(argTypes []ir.TypeTag) ir.TypeTag {
	pick := func(i int) ir.TypeTag {
		if i < len(argTypes) {
			return argTypes[i]
		}
		return ir.Float()
	}
	switch r.Kind {
	case RuleSame, RuleFirst:
		return pick(0)
	case RuleSecond:
		return pick(1)
	case RuleThird:
		return pick(2)
	case RuleConcrete:
		return r.Concrete
	default:
		return ir.Float()
	}
}

// ParamClass names the expected shape of a parameter slot. Every
// built-in currently accepts "any" and defers to the actual argument,
// but the slot is kept as a distinct type so a future built-in can
// narrow it without reshaping the table.
type ParamClass uint8

const (
	ParamAny ParamClass = iota
)

// FunctionSignature is one row of the function table: the expected
// parameter classes, the minimum arity, whether trailing arguments are
// accepted beyond that, and the return-type rule.
type FunctionSignature struct {
	Params   []ParamClass
	Variadic bool
	MinArity int
	Return   ReturnRule
}

func anyParams(n int) []ParamClass {
	p := make([]ParamClass, n)
	for i := range p {
		p[i] = ParamAny
	}
	return p
}

// Functions is the static table of every built-in the registry knows.
var Functions = map[string]FunctionSignature{
	// Vector and matrix constructors: variadic, minimum arity 1.
	"vec2": {Params: anyParams(1), Variadic: true, MinArity: 1, Return: concreteRule(ir.Vec(2))},
	"vec3": {Params: anyParams(1), Variadic: true, MinArity: 1, Return: concreteRule(ir.Vec(3))},
	"vec4": {Params: anyParams(1), Variadic: true, MinArity: 1, Return: concreteRule(ir.Vec(4))},
	"mat2": {Params: anyParams(1), Variadic: true, MinArity: 1, Return: concreteRule(ir.Mat(2))},
	"mat3": {Params: anyParams(1), Variadic: true, MinArity: 1, Return: concreteRule(ir.Mat(3))},
	"mat4": {Params: anyParams(1), Variadic: true, MinArity: 1, Return: concreteRule(ir.Mat(4))},

	// Trigonometric, exponential, logarithmic, and common math: unary,
	// type-preserving (scalar in, scalar out; vector in, vector out).
	"sin":   {Params: anyParams(1), MinArity: 1, Return: sameRule()},
	"cos":   {Params: anyParams(1), MinArity: 1, Return: sameRule()},
	"tan":   {Params: anyParams(1), MinArity: 1, Return: sameRule()},
	"asin":  {Params: anyParams(1), MinArity: 1, Return: sameRule()},
	"acos":  {Params: anyParams(1), MinArity: 1, Return: sameRule()},
	"atan":  {Params: anyParams(1), MinArity: 1, Return: sameRule()},
	"exp":   {Params: anyParams(1), MinArity: 1, Return: sameRule()},
	"exp2":  {Params: anyParams(1), MinArity: 1, Return: sameRule()},
	"log":   {Params: anyParams(1), MinArity: 1, Return: sameRule()},
	"log2":  {Params: anyParams(1), MinArity: 1, Return: sameRule()},
	"sqrt":  {Params: anyParams(1), MinArity: 1, Return: sameRule()},
	"abs":   {Params: anyParams(1), MinArity: 1, Return: sameRule()},
	"floor": {Params: anyParams(1), MinArity: 1, Return: sameRule()},
	"ceil":  {Params: anyParams(1), MinArity: 1, Return: sameRule()},
	"fract": {Params: anyParams(1), MinArity: 1, Return: sameRule()},
	"sign":  {Params: anyParams(1), MinArity: 1, Return: sameRule()},
	"pow":   {Params: anyParams(2), MinArity: 2, Return: sameRule()},
	"mod":   {Params: anyParams(2), MinArity: 2, Return: sameRule()},
	"min":   {Params: anyParams(2), MinArity: 2, Return: sameRule()},
	"max":   {Params: anyParams(2), MinArity: 2, Return: sameRule()},
	"clamp": {Params: anyParams(3), MinArity: 3, Return: sameRule()},
	"mix":   {Params: anyParams(3), MinArity: 3, Return: sameRule()},
	"step":  {Params: anyParams(2), MinArity: 2, Return: argRule(RuleSecond)},
	"smoothstep": {Params: anyParams(3), MinArity: 3, Return: argRule(RuleThird)},

	// Vector ops.
	"length":    {Params: anyParams(1), MinArity: 1, Return: concreteRule(ir.Float())},
	"distance":  {Params: anyParams(2), MinArity: 2, Return: concreteRule(ir.Float())},
	"dot":       {Params: anyParams(2), MinArity: 2, Return: concreteRule(ir.Float())},
	"cross":     {Params: anyParams(2), MinArity: 2, Return: concreteRule(ir.Vec(3))},
	"normalize": {Params: anyParams(1), MinArity: 1, Return: sameRule()},
	"reflect":   {Params: anyParams(2), MinArity: 2, Return: sameRule()},
	"refract":   {Params: anyParams(3), MinArity: 3, Return: sameRule()},

	// Matrix ops.
	"inverse":     {Params: anyParams(1), MinArity: 1, Return: sameRule()},
	"transpose":   {Params: anyParams(1), MinArity: 1, Return: sameRule()},
	"determinant": {Params: anyParams(1), MinArity: 1, Return: concreteRule(ir.Float())},

	// Texture functions.
	"texture2D":  {Params: anyParams(2), MinArity: 2, Return: concreteRule(ir.Vec(4))},
	"texture":    {Params: anyParams(2), MinArity: 2, Return: concreteRule(ir.Vec(4))},
	"textureLod": {Params: anyParams(3), MinArity: 3, Return: concreteRule(ir.Vec(4))},

	// Hash helpers.
	"hash":  {Params: anyParams(1), MinArity: 1, Return: concreteRule(ir.Float())},
	"hash2": {Params: anyParams(1), MinArity: 1, Return: concreteRule(ir.Vec(2))},
	"hash3": {Params: anyParams(1), MinArity: 1, Return: concreteRule(ir.Vec(3))},

	// Per-component comparison helpers.
	"lessThan":         {Params: anyParams(2), MinArity: 2, Return: sameRule()},
	"greaterThan":       {Params: anyParams(2), MinArity: 2, Return: sameRule()},
	"equal":            {Params: anyParams(2), MinArity: 2, Return: sameRule()},
}
