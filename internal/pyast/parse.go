package pyast

import (
	"context"
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"
)

// SyntaxError reports source that could not be parsed as Python.
type SyntaxError struct {
	Line int
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at line %d: %s", e.Line, e.Msg)
}

// Parse parses src as a Python module. Any syntax error in the file is
// returned as a *SyntaxError and no tree is produced.
func Parse(ctx context.Context, src []byte) (*Module, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(python.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("parsing: %w", err)
	}

	root := tree.RootNode()
	if root.HasError() {
		return nil, syntaxError(root)
	}

	c := &converter{src: src}
	mod := &Module{Body: c.stmts(root)}
	if c.err != nil {
		return nil, c.err
	}
	return mod, nil
}

// syntaxError locates the first ERROR or MISSING node under root.
func syntaxError(root *sitter.Node) *SyntaxError {
	n := firstError(root)
	if n == nil {
		return &SyntaxError{Line: 1, Msg: "invalid syntax"}
	}
	if n.IsMissing() {
		return &SyntaxError{Line: lineOf(n), Msg: fmt.Sprintf("missing %q", n.Type())}
	}
	return &SyntaxError{Line: lineOf(n), Msg: "invalid syntax"}
}

func firstError(n *sitter.Node) *sitter.Node {
	if n.Type() == "ERROR" || n.IsMissing() {
		return n
	}
	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(i)
		if child == nil {
			continue
		}
		if found := firstError(child); found != nil {
			return found
		}
	}
	return nil
}

func lineOf(n *sitter.Node) int {
	return int(n.StartPoint().Row) + 1
}

func posOf(n *sitter.Node) Pos {
	return Pos{Lineno: lineOf(n)}
}

// named returns the named children of n, skipping comments.
func named(n *sitter.Node) []*sitter.Node {
	count := int(n.NamedChildCount())
	out := make([]*sitter.Node, 0, count)
	for i := 0; i < count; i++ {
		child := n.NamedChild(i)
		if child == nil || child.Type() == "comment" {
			continue
		}
		out = append(out, child)
	}
	return out
}

// converter turns a tree-sitter concrete syntax tree into a Module.
type converter struct {
	src []byte
	err *SyntaxError
}

func (c *converter) fail(n *sitter.Node, msg string) {
	if c.err == nil {
		c.err = &SyntaxError{Line: lineOf(n), Msg: msg}
	}
}

func (c *converter) text(n *sitter.Node) string {
	return n.Content(c.src)
}

func (c *converter) stmts(n *sitter.Node) []Stmt {
	var out []Stmt
	for _, child := range named(n) {
		out = append(out, c.stmt(child)...)
	}
	return out
}

func (c *converter) stmt(n *sitter.Node) []Stmt {
	switch n.Type() {
	case "function_definition":
		return []Stmt{c.function(n)}
	case "class_definition":
		return []Stmt{c.class(n)}
	case "decorated_definition":
		if def := n.ChildByFieldName("definition"); def != nil {
			return c.stmt(def)
		}
		return nil
	case "expression_statement":
		return c.expressionStatement(n)
	case "block":
		return c.stmts(n)
	case "print_statement", "exec_statement":
		// Python 2 forms the grammar still accepts.
		c.fail(n, "invalid syntax")
		return nil
	}

	// Compound statements and their clauses: gather every nested block.
	if body := c.clauseBodies(n); len(body) > 0 {
		return []Stmt{&Block{
			Pos:  posOf(n),
			Kind: strings.TrimSuffix(n.Type(), "_statement"),
			Body: body,
		}}
	}
	return nil
}

func (c *converter) clauseBodies(n *sitter.Node) []Stmt {
	var out []Stmt
	for _, child := range named(n) {
		switch {
		case child.Type() == "block":
			out = append(out, c.stmts(child)...)
		case strings.HasSuffix(child.Type(), "_clause"):
			out = append(out, c.clauseBodies(child)...)
		}
	}
	return out
}

func (c *converter) expressionStatement(n *sitter.Node) []Stmt {
	var out []Stmt
	for _, child := range named(n) {
		switch child.Type() {
		case "assignment", "augmented_assignment":
			out = append(out, c.assignment(child))
		default:
			out = append(out, &ExprStmt{Pos: posOf(child), Value: c.expr(child)})
		}
	}
	return out
}

func (c *converter) assignment(n *sitter.Node) *Assign {
	a := &Assign{Pos: posOf(n)}
	if n.Type() == "augmented_assignment" {
		a.Kind = AugAssign
	}

	// a = b = 1 nests the second assignment as the right-hand side.
	cur := n
	for {
		if left := cur.ChildByFieldName("left"); left != nil {
			a.Targets = append(a.Targets, c.expr(left))
		}
		if a.Kind == PlainAssign && cur.ChildByFieldName("type") != nil {
			a.Kind = AnnAssign
		}
		right := cur.ChildByFieldName("right")
		if right == nil {
			break
		}
		if right.Type() != "assignment" {
			a.Value = c.expr(right)
			break
		}
		cur = right
	}
	return a
}

func (c *converter) class(n *sitter.Node) *ClassDef {
	cd := &ClassDef{Pos: posOf(n)}
	if name := n.ChildByFieldName("name"); name != nil {
		cd.Name = c.text(name)
	}
	if body := n.ChildByFieldName("body"); body != nil {
		cd.Body = c.stmts(body)
	}
	return cd
}

func (c *converter) function(n *sitter.Node) *FunctionDef {
	fn := &FunctionDef{Pos: posOf(n), Args: &Arguments{}}
	if name := n.ChildByFieldName("name"); name != nil {
		fn.Name = c.text(name)
	}
	for i := 0; i < int(n.ChildCount()); i++ {
		if child := n.Child(i); child != nil && child.Type() == "async" {
			fn.Async = true
		}
	}
	if params := n.ChildByFieldName("parameters"); params != nil {
		fn.Args = c.arguments(params)
	}
	if body := n.ChildByFieldName("body"); body != nil {
		fn.Body = c.stmts(body)
	}
	return fn
}

func (c *converter) arguments(n *sitter.Node) *Arguments {
	args := &Arguments{}
	kwOnly := false

	addNamed := func(at, name *sitter.Node, def Expr) {
		if name == nil {
			return
		}
		arg := &Arg{Pos: posOf(name), Name: c.text(name)}
		if kwOnly {
			args.KwOnly = append(args.KwOnly, arg)
			args.KwDefaults = append(args.KwDefaults, def)
			return
		}
		if def != nil {
			args.Defaults = append(args.Defaults, def)
		} else if len(args.Defaults) > 0 {
			c.fail(at, "non-default argument follows default argument")
		}
		args.Args = append(args.Args, arg)
	}

	for _, p := range named(n) {
		switch p.Type() {
		case "identifier":
			addNamed(p, p, nil)
		case "default_parameter", "typed_default_parameter":
			var def Expr
			if v := p.ChildByFieldName("value"); v != nil {
				def = c.expr(v)
			}
			addNamed(p, p.ChildByFieldName("name"), def)
		case "typed_parameter":
			inner := named(p)
			if len(inner) == 0 {
				continue
			}
			switch inner[0].Type() {
			case "identifier":
				addNamed(p, inner[0], nil)
			case "list_splat_pattern":
				args.Vararg = c.splatArg(inner[0])
				kwOnly = true
			case "dictionary_splat_pattern":
				args.Kwarg = c.splatArg(inner[0])
			}
		case "list_splat_pattern":
			// A bare * has no name and only starts the keyword-only section.
			args.Vararg = c.splatArg(p)
			kwOnly = true
		case "dictionary_splat_pattern":
			args.Kwarg = c.splatArg(p)
		case "keyword_separator":
			kwOnly = true
		case "positional_separator":
			args.PosOnly = append(args.PosOnly, args.Args...)
			args.Args = nil
		}
	}
	return args
}

func (c *converter) splatArg(n *sitter.Node) *Arg {
	for _, child := range named(n) {
		if child.Type() == "identifier" {
			return &Arg{Pos: posOf(child), Name: c.text(child)}
		}
	}
	return nil
}

func (c *converter) exprs(n *sitter.Node) []Expr {
	children := named(n)
	out := make([]Expr, 0, len(children))
	for _, child := range children {
		out = append(out, c.expr(child))
	}
	return out
}

func (c *converter) expr(n *sitter.Node) Expr {
	p := posOf(n)
	switch n.Type() {
	case "identifier":
		return &Name{Pos: p, ID: c.text(n)}
	case "attribute":
		a := &Attribute{Pos: p}
		if obj := n.ChildByFieldName("object"); obj != nil {
			a.Value = c.expr(obj)
		}
		if attr := n.ChildByFieldName("attribute"); attr != nil {
			a.Attr = c.text(attr)
		}
		return a
	case "subscript":
		s := &Subscript{Pos: p}
		if v := n.ChildByFieldName("value"); v != nil {
			s.Value = c.expr(v)
		}
		return s
	case "tuple", "tuple_pattern", "pattern_list", "expression_list":
		return &Tuple{Pos: p, Elts: c.exprs(n)}
	case "list", "list_pattern":
		return &List{Pos: p, Elts: c.exprs(n)}
	case "set":
		return &Set{Pos: p, Elts: c.exprs(n)}
	case "dictionary":
		return &Dict{Pos: p}
	case "list_comprehension":
		return &Comprehension{Pos: p, Kind: "list"}
	case "dictionary_comprehension":
		return &Comprehension{Pos: p, Kind: "dict"}
	case "set_comprehension":
		return &Comprehension{Pos: p, Kind: "set"}
	case "generator_expression":
		return &Comprehension{Pos: p, Kind: "generator"}
	case "call":
		call := &Call{Pos: p}
		if fn := n.ChildByFieldName("function"); fn != nil {
			call.Func = c.expr(fn)
		}
		if args := n.ChildByFieldName("arguments"); args != nil && args.Type() == "argument_list" {
			call.Args = c.exprs(args)
		}
		return call
	case "list_splat_pattern", "list_splat":
		if inner := named(n); len(inner) == 1 {
			return &Starred{Pos: p, Value: c.expr(inner[0])}
		}
	case "parenthesized_expression":
		if inner := named(n); len(inner) == 1 {
			return c.expr(inner[0])
		}
	}
	return &Literal{Pos: p, Kind: n.Type()}
}
