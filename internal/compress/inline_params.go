package compress

import (
	"fmt"
	"slices"

	"jsmin/internal/ast"
	"jsmin/internal/format"
	"jsmin/internal/trace"
)

// InlinedParam describes one applied rewrite.
type InlinedParam struct {
	Func  string
	Param string
	Value string
	Pass  int
}

// InlineParams replaces every parameter of fn whose verdict says all calls
// pass the same constant with a const binding at the top of the body, and
// removes it from the parameter list. Call sites are left untouched. name
// is the function's own binding. Returns the number of inlined parameters.
func (o *Optimizer) InlineParams(fn ast.FuncID, name ast.Id) int {
	f := o.b.Funcs.Get(fn)
	if f == nil || o.data == nil || o.rewritten[fn] {
		// после переписывания слоты сдвинуты, старые вызовы к ним не относятся
		return 0
	}
	if _, ok := o.b.Stmts.Block(f.Body); !ok {
		return 0
	}
	reason, slots := o.plan(f, name)
	if reason != ReasonInlined {
		return 0
	}

	var decls []ast.VarDeclarator
	kept := make([]ast.PatID, 0, len(f.Params))
	for i, p := range f.Params {
		if i >= len(slots) || slots[i] != ReasonInlined {
			kept = append(kept, p)
			continue
		}
		pd, _ := o.b.Pats.Ident(p)
		verdict := o.data.Var(pd.Id()).Params
		// копия: значение из журнала остаётся в scratch
		value := ast.CloneExpr(o.b, o.data.Scratch, verdict.Value)
		decls = append(decls, ast.VarDeclarator{Name: p, Init: value})
	}
	if len(decls) == 0 {
		return 0
	}

	span := o.b.Pats.Get(decls[0].Name).Span
	decl := o.b.Stmts.NewVar(span, ast.VarConst, decls)

	// арены могли вырасти: указатели берём заново
	f = o.b.Funcs.Get(fn)
	blk, _ := o.b.Stmts.Block(f.Body)
	blk.Stmts = slices.Insert(blk.Stmts, o.prologueLen(blk.Stmts), decl)
	f.Params = kept
	o.changed = true
	o.rewritten[fn] = true

	for _, d := range decls {
		o.record(name, d)
	}
	return len(decls)
}

// plan runs the function-level and per-parameter gates without touching the
// tree. The first result is ReasonInlined when the function itself is
// eligible; slots then holds one reason per parameter.
func (o *Optimizer) plan(f *ast.Func, name ast.Id) (Reason, []Reason) {
	if !o.opts.Unused {
		return ReasonDisabled, nil
	}
	flags := o.data.Scope(f.Scope)
	if flags.HasEvalCall || flags.HasWithStmt {
		return ReasonDynamicScope, nil
	}
	if flags.UsedArguments {
		return ReasonArguments, nil
	}
	self := o.data.Var(name)
	if !callableBinding(self) {
		return ReasonCallee, nil
	}
	if dynamicOwner(o.data, name) {
		return ReasonEnclosingDynamic, nil
	}
	if self.DeclaredAsFnExpr {
		// вызовы через переменную, которой присвоено выражение, не видны
		return ReasonFnExprValue, nil
	}

	slots := make([]Reason, len(f.Params))
	for i, p := range f.Params {
		slots[i] = o.paramReason(p, self.CalleeCount)
	}
	if o.opts.PreserveArgPositions {
		tail := true
		for i := len(slots) - 1; i >= 0; i-- {
			switch {
			case slots[i] != ReasonInlined:
				tail = false
			case !tail:
				slots[i] = ReasonArgPositions
			}
		}
	}
	return ReasonInlined, slots
}

func (o *Optimizer) paramReason(p ast.PatID, calls int) Reason {
	d, ok := o.b.Pats.Ident(p)
	if !ok {
		return ReasonPattern
	}
	v := o.data.Var(d.Id())
	if v == nil || v.Params == nil {
		return ReasonNoVerdict
	}
	switch {
	case !v.Params.Consistent:
		return ReasonInconsistent
	case !IsTrackable(o.data.Scratch, v.Params.Value):
		return ReasonUntrackable
	case v.Params.CallsiteCount != calls:
		return ReasonPartialCoverage
	case v.Reassigned || v.Redeclared():
		return ReasonReassigned
	case v.UsedInParams:
		return ReasonUsedInParams
	}
	return ReasonInlined
}

// prologueLen counts leading directives ("use strict") that must stay first.
func (o *Optimizer) prologueLen(stmts []ast.StmtID) int {
	n := 0
	for _, s := range stmts {
		d, ok := o.b.Stmts.Expr(s)
		if !ok || !d.Directive {
			break
		}
		n++
	}
	return n
}

func (o *Optimizer) record(name ast.Id, d ast.VarDeclarator) {
	pd, _ := o.b.Pats.Ident(d.Name)
	ip := InlinedParam{
		Func:  o.b.IdName(name),
		Param: o.b.Name(pd.Name),
		Value: format.Expr(o.b, d.Init),
		Pass:  o.pass,
	}
	o.inlined = append(o.inlined, ip)
	trace.Point(o.tracer, trace.ScopeNode, "inline_params",
		fmt.Sprintf("%s: %s = %s", ip.Func, ip.Param, ip.Value), o.spanID,
		map[string]string{"fn": ip.Func, "param": ip.Param, "value": ip.Value})
}
