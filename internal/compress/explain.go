package compress

import (
	"jsmin/internal/ast"
	"jsmin/internal/format"
)

// ParamReport is the analysis outcome for one parameter, as shown by
// 'jsmin analyze'.
type ParamReport struct {
	Func        string
	Param       string
	Slot        int
	Verdict     string // consistent, inconsistent or none
	Value       string
	Calls       int
	CalleeCount int
	Reason      Reason
}

// Explain analyzes file without rewriting it and reports, for every
// parameter of every named function, its verdict and whether InlineParams
// would inline it.
func Explain(b *ast.Builder, file ast.FileID, opts Options) []ParamReport {
	o := NewOptimizer(b, file, opts)
	o.Analyze()

	var out []ParamReport
	for _, nf := range o.namedFuncs() {
		fn := b.Funcs.Get(nf.id)
		reason, slots := o.plan(fn, nf.name)
		callees := 0
		if v := o.data.Var(nf.name); v != nil {
			callees = v.CalleeCount
		}
		for i, p := range fn.Params {
			r := ParamReport{
				Func:        b.IdName(nf.name),
				Slot:        i,
				Verdict:     "none",
				CalleeCount: callees,
				Reason:      reason,
			}
			if reason == ReasonInlined {
				r.Reason = slots[i]
			}
			if d, ok := b.Pats.Ident(p); ok {
				r.Param = b.Name(d.Name)
				if v := o.data.Var(d.Id()); v != nil && v.Params != nil {
					r.Calls = v.Params.CallsiteCount
					r.Verdict = "inconsistent"
					if v.Params.Consistent {
						r.Verdict = "consistent"
						r.Value = format.Expr(o.data.Scratch, v.Params.Value)
					}
				}
			} else {
				r.Param = "<pattern>"
			}
			out = append(out, r)
		}
	}
	return out
}
