package compress

import (
	"jsmin/internal/ast"
	"jsmin/internal/source"
	"jsmin/internal/usage"
)

// slotKey addresses one parameter position of a registered function.
type slotKey struct {
	fn   ast.Id
	slot int
}

// paramCollector records, for every named function, which values its direct
// calls pass in each parameter slot. It never mutates the tree: logged
// values are deep copies in data.Scratch.
type paramCollector struct {
	b    *ast.Builder
	data *usage.ProgramData

	// params maps a function to its parameters; ast.NoId marks a slot
	// whose pattern is not a plain identifier.
	params map[ast.Id][]ast.Id
	logs   map[slotKey][]ast.ExprID
	// order keeps log keys in first-seen order so finalize is
	// deterministic.
	order []slotKey
}

// AnalyzeParams computes a ParamValues verdict for every parameter of every
// named function that has at least one logged call, and stores it on the
// parameter's usage record in data.
func AnalyzeParams(b *ast.Builder, file ast.FileID, data *usage.ProgramData) {
	c := &paramCollector{
		b:      b,
		data:   data,
		params: make(map[ast.Id][]ast.Id),
		logs:   make(map[slotKey][]ast.ExprID),
	}
	c.register(file)
	c.collect(file)
	c.finalize()
}

// register records every function declaration and named function expression
// whose binding is a plain, never rebound function only ever called
// directly. Registration happens before any call is inspected, so forward
// references and mutual recursion are covered.
func (c *paramCollector) register(file ast.FileID) {
	ast.WalkFile(c.b, ast.Inspector{
		OnFunc: func(id ast.FuncID) bool {
			fn := c.b.Funcs.Get(id)
			if !fn.HasName || fn.IsArrow {
				return true
			}
			name := fn.Ident()
			if !callableBinding(c.data.Var(name)) || dynamicOwner(c.data, name) {
				return true
			}
			ids := make([]ast.Id, len(fn.Params))
			for i, p := range fn.Params {
				if d, ok := c.b.Pats.Ident(p); ok {
					ids[i] = d.Id()
				}
			}
			c.params[name] = ids
			return true
		},
	}, file)
}

// callableBinding: the name is bound once, to a function, never reassigned
// and never used other than as a direct callee.
func callableBinding(v *usage.VarInfo) bool {
	if v == nil {
		return false
	}
	if !v.DeclaredAsFnDecl && !v.DeclaredAsFnExpr {
		return false
	}
	return !v.Reassigned && !v.Redeclared() && !v.Escapes()
}

// dynamicOwner reports eval or with in the function that declares name:
// code there can call the function in ways no walk sees.
func dynamicOwner(data *usage.ProgramData, name ast.Id) bool {
	if data.Table == nil {
		return true
	}
	flags := data.Scope(data.Table.FunctionOf(name.Ctxt))
	return flags.HasEvalCall || flags.HasWithStmt
}

func (c *paramCollector) collect(file ast.FileID) {
	ast.WalkFile(c.b, ast.Inspector{
		OnExpr: func(id ast.ExprID) bool {
			if c.b.Exprs.Get(id).Kind == ast.ExprCall {
				c.call(id)
			}
			return true
		},
	}, file)
}

func (c *paramCollector) call(id ast.ExprID) {
	d, _ := c.b.Exprs.Call(id)
	callee, ok := c.b.Exprs.Ident(d.Callee)
	if !ok {
		return
	}
	fn := callee.Id()
	params, ok := c.params[fn]
	if !ok {
		return
	}

	for i, arg := range d.Args {
		if i >= len(params) {
			break
		}
		if arg.Spread {
			// дальше позиции аргументов неизвестны
			return
		}
		if !params[i].IsValid() || !IsTrackable(c.b, arg.Expr) {
			continue
		}
		c.log(slotKey{fn: fn, slot: i}, c.value(arg.Expr))
	}

	// пропущенные аргументы равны undefined
	for i := len(d.Args); i < len(params); i++ {
		if !params[i].IsValid() {
			continue
		}
		c.log(slotKey{fn: fn, slot: i}, c.undefined())
	}
}

func (c *paramCollector) log(key slotKey, value ast.ExprID) {
	if _, seen := c.logs[key]; !seen {
		c.order = append(c.order, key)
	}
	c.logs[key] = append(c.logs[key], value)
}

// value copies a trackable argument into the scratch arena. The global
// undefined is logged as void 0 so an omitted argument and an explicit one
// compare equal.
func (c *paramCollector) value(id ast.ExprID) ast.ExprID {
	if d, ok := c.b.Exprs.Ident(id); ok {
		if d.Scope == ast.NoScopeID && c.b.Name(d.Name) == "undefined" {
			return c.undefined()
		}
	}
	return ast.CloneExpr(c.data.Scratch, c.b, id)
}

// undefined makes a fresh void 0 in the scratch arena. The name undefined
// can be rebound at the injection site, void 0 cannot.
func (c *paramCollector) undefined() ast.ExprID {
	x := c.data.Scratch.Exprs
	zero := x.NewLiteral(source.Span{}, ast.ExprLiteralData{Kind: ast.LitNum})
	return x.NewUnary(source.Span{}, ast.UnaryVoid, zero)
}

// finalize folds each slot log into a verdict on the parameter's record.
func (c *paramCollector) finalize() {
	scratch := c.data.Scratch
	for _, key := range c.order {
		values := c.logs[key]
		if len(values) == 0 {
			continue
		}
		params, ok := c.params[key.fn]
		if !ok || key.slot >= len(params) || !params[key.slot].IsValid() {
			continue
		}

		first := values[0]
		same := true
		for _, v := range values[1:] {
			if !ast.EqualExpr(scratch, first, scratch, v) {
				same = false
				break
			}
		}

		verdict := &usage.ParamValues{CallsiteCount: len(values), Consistent: same}
		if same {
			verdict.Value = first
		}
		c.data.VarOrDefault(params[key.slot]).Params = verdict
	}
}
