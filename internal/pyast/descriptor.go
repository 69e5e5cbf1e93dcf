package pyast

// Local is a name bound by an assignment in a function body.
type Local struct {
	Name string
	Line int
}

// FunctionDescriptor flattens what the naming and default-value rules
// need to know about one function definition.
type FunctionDescriptor struct {
	Name string
	Line int

	// Args lists every parameter name in declaration order: positional-only,
	// regular, *args, keyword-only, **kwargs.
	Args []string

	// Positional lists positional-only and regular parameter names.
	// Defaults[i] belongs to Positional[len(Positional)-len(Defaults)+i].
	Positional []string
	Defaults   []Expr

	// KwOnly and KwDefaults are aligned one to one.
	KwOnly     []string
	KwDefaults []Expr

	// Locals are the simple-name targets assigned in the function's own
	// body. Bodies of nested functions and classes are not included.
	Locals []Local
}

// Describe builds the descriptor of fn.
func Describe(fn *FunctionDef) FunctionDescriptor {
	d := FunctionDescriptor{Name: fn.Name, Line: fn.Line()}

	if a := fn.Args; a != nil {
		for _, arg := range a.PosOnly {
			d.Positional = append(d.Positional, arg.Name)
		}
		for _, arg := range a.Args {
			d.Positional = append(d.Positional, arg.Name)
		}
		d.Defaults = a.Defaults

		d.Args = append(d.Args, d.Positional...)
		if a.Vararg != nil {
			d.Args = append(d.Args, a.Vararg.Name)
		}
		for _, arg := range a.KwOnly {
			d.KwOnly = append(d.KwOnly, arg.Name)
			d.Args = append(d.Args, arg.Name)
		}
		d.KwDefaults = a.KwDefaults
		if a.Kwarg != nil {
			d.Args = append(d.Args, a.Kwarg.Name)
		}
	}

	for _, stmt := range fn.Body {
		Inspect(stmt, func(n Node) bool {
			switch n := n.(type) {
			case *FunctionDef, *ClassDef:
				return false
			case *Assign:
				for _, t := range n.Targets {
					for _, name := range TargetNames(t) {
						d.Locals = append(d.Locals, Local{Name: name.ID, Line: n.Line()})
					}
				}
				return false
			}
			return true
		})
	}

	return d
}

// DefaultOwner returns the name of the positional parameter that the i-th
// entry of Defaults belongs to.
func (d FunctionDescriptor) DefaultOwner(i int) string {
	return d.Positional[len(d.Positional)-len(d.Defaults)+i]
}
