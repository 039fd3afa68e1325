package ir

// Block is an ordered sequence of statements. Its Type mirrors the
// type of its last statement, which is what lets an If expression's
// branches be typed without a separate expression-statement split.
type Block struct {
	Stmts []Node
	Type  TypeTag
}

func (*Block) node()                  {}
func (n *Block) TypeTag() TypeTag     { return n.Type }
func (n *Block) SetTypeTag(t TypeTag) { n.Type = t }

// VarDecl introduces a local binding, e.g. `x = 1.0`.
type VarDecl struct {
	Name string
	Init Node
	Type TypeTag
}

func (*VarDecl) node()                  {}
func (n *VarDecl) TypeTag() TypeTag     { return n.Type }
func (n *VarDecl) SetTypeTag(t TypeTag) { n.Type = t }

// Assignment rebinds an already-declared name or writes through an
// indexable/field target, e.g. `x = 2.0` or `a[i] = v`.
type Assignment struct {
	Target Node
	Value  Node
	Type   TypeTag
}

func (*Assignment) node()                  {}
func (n *Assignment) TypeTag() TypeTag     { return n.Type }
func (n *Assignment) SetTypeTag(t TypeTag) { n.Type = t }

// MultipleAssignment lowers `a, b = f(...)` style destructuring of a
// tuple-returning call into per-target bindings at emission time.
type MultipleAssignment struct {
	Targets []Node
	Source  Node
	Type    TypeTag
}

func (*MultipleAssignment) node()                  {}
func (n *MultipleAssignment) TypeTag() TypeTag     { return n.Type }
func (n *MultipleAssignment) SetTypeTag(t TypeTag) { n.Type = t }

// IfStatement is a conditional. Else is nil, a *Block (plain else), or
// a *IfStatement (an elsif chain) — the frontend lowers `elsif` into
// nested IfStatements and emitters flatten them back into `else if`.
type IfStatement struct {
	Cond Node
	Then *Block
	Else Node
	Type TypeTag
}

func (*IfStatement) node()                  {}
func (n *IfStatement) TypeTag() TypeTag     { return n.Type }
func (n *IfStatement) SetTypeTag(t TypeTag) { n.Type = t }

// ForLoop is a bounded counting loop, lowered both from explicit
// `for i in start..end` and from `N.times do |i| ... end`.
type ForLoop struct {
	Index string
	Start Node
	End   Node
	Body  *Block
	Type  TypeTag
}

func (*ForLoop) node()                  {}
func (n *ForLoop) TypeTag() TypeTag     { return n.Type }
func (n *ForLoop) SetTypeTag(t TypeTag) { n.Type = t }

// WhileLoop is a condition-guarded loop.
type WhileLoop struct {
	Cond Node
	Body *Block
	Type TypeTag
}

func (*WhileLoop) node()                  {}
func (n *WhileLoop) TypeTag() TypeTag     { return n.Type }
func (n *WhileLoop) SetTypeTag(t TypeTag) { n.Type = t }

// Break exits the nearest enclosing loop.
type Break struct {
	Type TypeTag
}

func (*Break) node()                  {}
func (n *Break) TypeTag() TypeTag     { return n.Type }
func (n *Break) SetTypeTag(t TypeTag) { n.Type = t }

// Return exits a function, optionally carrying a value.
type Return struct {
	Value Node // nil for a bare return
	Type  TypeTag
}

func (*Return) node()                  {}
func (n *Return) TypeTag() TypeTag     { return n.Type }
func (n *Return) SetTypeTag(t TypeTag) { n.Type = t }

// GlobalDecl is a top-level declaration. IsConst/IsStatic distinguish
// the frontend's two sigil forms: an uppercase-written name lowers to
// a const+static global, a sigil-prefixed name lowers to a static
// (mutable) global. ArraySize/ElemType are set only when the
// initializer is an array literal, so emitters can size a fixed array
// without re-deriving it from Init.
type GlobalDecl struct {
	Name      string
	Init      Node
	IsConst   bool
	IsStatic  bool
	ArraySize *int
	ElemType  *TypeTag
	Type      TypeTag
}

func (*GlobalDecl) node()                  {}
func (n *GlobalDecl) TypeTag() TypeTag     { return n.Type }
func (n *GlobalDecl) SetTypeTag(t TypeTag) { n.Type = t }

// FunctionDefinition is a user-defined function. During inference,
// every parameter without a ParamTypes entry gets float (how Body uses
// the parameter is not consulted), and a nil ReturnType is set to the
// type of Body's last statement.
type FunctionDefinition struct {
	Name       string
	Params     []string
	Body       *Block
	ReturnType *TypeTag
	ParamTypes map[string]TypeTag
	Type       TypeTag
}

func (*FunctionDefinition) node()                  {}
func (n *FunctionDefinition) TypeTag() TypeTag     { return n.Type }
func (n *FunctionDefinition) SetTypeTag(t TypeTag) { n.Type = t }
