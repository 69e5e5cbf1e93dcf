// Package pyast holds a small Python syntax tree: the declarations,
// assignments and expressions the style rules look at, each carrying the
// 1-based line it starts on.
package pyast

// Node is any element of the tree.
type Node interface {
	Line() int
}

// Stmt is a statement node.
type Stmt interface {
	Node
	stmtNode()
}

// Expr is an expression node.
type Expr interface {
	Node
	exprNode()
}

// Pos records where a node starts.
type Pos struct {
	Lineno int
}

// Line implements Node.
func (p Pos) Line() int { return p.Lineno }

// Module is the root of a parsed file.
type Module struct {
	Body []Stmt
}

// Line implements Node. A module always starts on line 1.
func (m *Module) Line() int { return 1 }

// FunctionDef is a def or async def statement.
type FunctionDef struct {
	Pos
	Name  string
	Async bool
	Args  *Arguments
	Body  []Stmt
}

// Arguments is the parameter list of a function. Defaults is aligned to
// the trailing entries of PosOnly followed by Args; KwDefaults has one
// entry per KwOnly argument, nil when that argument has no default.
type Arguments struct {
	PosOnly    []*Arg
	Args       []*Arg
	Vararg     *Arg
	KwOnly     []*Arg
	KwDefaults []Expr
	Kwarg      *Arg
	Defaults   []Expr
}

// Arg is a single parameter.
type Arg struct {
	Pos
	Name string
}

// ClassDef is a class statement.
type ClassDef struct {
	Pos
	Name string
	Body []Stmt
}

// AssignKind tells plain, augmented and annotated assignments apart.
type AssignKind int

const (
	PlainAssign AssignKind = iota
	AugAssign
	AnnAssign
)

// Assign is an assignment statement. Chained assignments (a = b = 1)
// have one target per name on the left.
type Assign struct {
	Pos
	Kind    AssignKind
	Targets []Expr
	Value   Expr
}

// Block is a compound statement (if, for, while, try, with, match). Body
// holds the statements of all its clauses in source order.
type Block struct {
	Pos
	Kind string
	Body []Stmt
}

// ExprStmt is an expression evaluated for its side effects.
type ExprStmt struct {
	Pos
	Value Expr
}

func (*FunctionDef) stmtNode() {}
func (*ClassDef) stmtNode()    {}
func (*Assign) stmtNode()      {}
func (*Block) stmtNode()       {}
func (*ExprStmt) stmtNode()    {}

// Name is a bare identifier.
type Name struct {
	Pos
	ID string
}

// Attribute is value.attr.
type Attribute struct {
	Pos
	Value Expr
	Attr  string
}

// Subscript is value[...].
type Subscript struct {
	Pos
	Value Expr
}

// Tuple is a tuple display or a tuple/pattern-list target.
type Tuple struct {
	Pos
	Elts []Expr
}

// List is a list display or a list target.
type List struct {
	Pos
	Elts []Expr
}

// Dict is a dict display.
type Dict struct {
	Pos
}

// Set is a set display.
type Set struct {
	Pos
	Elts []Expr
}

// Comprehension is a list, dict or set comprehension or a generator
// expression. Kind is one of "list", "dict", "set", "generator".
type Comprehension struct {
	Pos
	Kind string
}

// Call is func(...).
type Call struct {
	Pos
	Func Expr
	Args []Expr
}

// Starred is *value, in targets or displays.
type Starred struct {
	Pos
	Value Expr
}

// Literal is any other expression; Kind is the grammar's node type
// (integer, string, lambda, ...).
type Literal struct {
	Pos
	Kind string
}

func (*Name) exprNode()          {}
func (*Attribute) exprNode()     {}
func (*Subscript) exprNode()     {}
func (*Tuple) exprNode()         {}
func (*List) exprNode()          {}
func (*Dict) exprNode()          {}
func (*Set) exprNode()           {}
func (*Comprehension) exprNode() {}
func (*Call) exprNode()          {}
func (*Starred) exprNode()       {}
func (*Literal) exprNode()       {}
