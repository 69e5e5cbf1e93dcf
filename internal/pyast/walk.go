package pyast

// Inspect traverses the tree rooted at n in depth-first order. It calls
// f(n) for each node; if f returns true, Inspect descends into the node's
// children. Function defaults are visited before the function body.
func Inspect(n Node, f func(Node) bool) {
	if n == nil || !f(n) {
		return
	}

	switch n := n.(type) {
	case *Module:
		inspectStmts(n.Body, f)
	case *FunctionDef:
		if n.Args != nil {
			for _, d := range n.Args.Defaults {
				Inspect(d, f)
			}
			for _, d := range n.Args.KwDefaults {
				if d != nil {
					Inspect(d, f)
				}
			}
		}
		inspectStmts(n.Body, f)
	case *ClassDef:
		inspectStmts(n.Body, f)
	case *Block:
		inspectStmts(n.Body, f)
	case *Assign:
		for _, t := range n.Targets {
			Inspect(t, f)
		}
		if n.Value != nil {
			Inspect(n.Value, f)
		}
	case *ExprStmt:
		Inspect(n.Value, f)
	case *Attribute:
		Inspect(n.Value, f)
	case *Subscript:
		Inspect(n.Value, f)
	case *Tuple:
		inspectExprs(n.Elts, f)
	case *List:
		inspectExprs(n.Elts, f)
	case *Set:
		inspectExprs(n.Elts, f)
	case *Call:
		Inspect(n.Func, f)
		inspectExprs(n.Args, f)
	case *Starred:
		Inspect(n.Value, f)
	}
}

func inspectStmts(list []Stmt, f func(Node) bool) {
	for _, s := range list {
		Inspect(s, f)
	}
}

func inspectExprs(list []Expr, f func(Node) bool) {
	for _, e := range list {
		Inspect(e, f)
	}
}

// Functions returns every function definition in the tree, nested ones
// and methods included, in source order.
func Functions(root Node) []*FunctionDef {
	var out []*FunctionDef
	Inspect(root, func(n Node) bool {
		if fn, ok := n.(*FunctionDef); ok {
			out = append(out, fn)
		}
		return true
	})
	return out
}

// Classes returns every class definition in the tree in source order.
func Classes(root Node) []*ClassDef {
	var out []*ClassDef
	Inspect(root, func(n Node) bool {
		if cd, ok := n.(*ClassDef); ok {
			out = append(out, cd)
		}
		return true
	})
	return out
}

// TargetNames returns the simple names bound by an assignment target,
// looking through tuple, list and starred targets. Attribute and
// subscript targets bind no local name.
func TargetNames(target Expr) []*Name {
	switch t := target.(type) {
	case *Name:
		return []*Name{t}
	case *Tuple:
		return targetNames(t.Elts)
	case *List:
		return targetNames(t.Elts)
	case *Starred:
		return TargetNames(t.Value)
	}
	return nil
}

func targetNames(elts []Expr) []*Name {
	var out []*Name
	for _, e := range elts {
		out = append(out, TargetNames(e)...)
	}
	return out
}
