package compress

import (
	"context"
	"strconv"

	"jsmin/internal/ast"
	"jsmin/internal/symbols"
	"jsmin/internal/trace"
	"jsmin/internal/usage"
)

// Report summarizes one optimizer run.
type Report struct {
	Changed bool
	Passes  int
	Inlined []InlinedParam
}

// Optimizer rewrites one file in place. It is not safe for concurrent use;
// separate files get separate optimizers.
type Optimizer struct {
	b    *ast.Builder
	file ast.FileID
	opts Options

	// data is rebuilt at the start of every iteration.
	data *usage.ProgramData

	tracer  trace.Tracer
	spanID  uint64
	pass    int
	changed bool
	inlined []InlinedParam
	// rewritten holds functions whose parameter lists already shrank; calls
	// to them no longer line up with their slots.
	rewritten map[ast.FuncID]bool
}

func NewOptimizer(b *ast.Builder, file ast.FileID, opts Options) *Optimizer {
	return &Optimizer{b: b, file: file, opts: opts, tracer: trace.Nop, rewritten: make(map[ast.FuncID]bool)}
}

// Optimize runs the optimizer over file with the tracer carried by ctx.
func Optimize(ctx context.Context, b *ast.Builder, file ast.FileID, opts Options) Report {
	return NewOptimizer(b, file, opts).Run(ctx)
}

// Analyze refreshes scopes, usage facts and parameter verdicts for the
// current tree.
func (o *Optimizer) Analyze() *usage.ProgramData {
	table := symbols.Resolve(o.b, o.file)
	o.data = usage.Analyze(o.b, o.file, table)
	AnalyzeParams(o.b, o.file, o.data)
	return o.data
}

// Run iterates analysis and rewriting until nothing changes or the pass
// limit is reached.
func (o *Optimizer) Run(ctx context.Context) Report {
	o.tracer = trace.FromContext(ctx)
	parent := trace.CurrentSpan(ctx).SpanID

	var rep Report
	for i := 0; i < o.opts.passes(); i++ {
		o.pass = i + 1
		o.changed = false
		span := trace.Begin(o.tracer, trace.ScopePass, "compress.pass", parent)
		o.spanID = span.ID()

		o.Analyze()
		inlined := 0
		for _, fn := range o.namedFuncs() {
			inlined += o.InlineParams(fn.id, fn.name)
		}
		rep.Passes++

		span.WithExtra("pass", strconv.Itoa(o.pass)).
			WithExtra("inlined", strconv.Itoa(inlined)).
			End("")
		if !o.changed {
			break
		}
		rep.Changed = true
	}
	rep.Inlined = o.inlined
	return rep
}

type namedFunc struct {
	id   ast.FuncID
	name ast.Id
}

// namedFuncs lists function declarations and named function expressions in
// source order. Must run after Analyze so names carry fresh scopes.
func (o *Optimizer) namedFuncs() []namedFunc {
	var out []namedFunc
	ast.WalkFile(o.b, ast.Inspector{
		OnFunc: func(id ast.FuncID) bool {
			fn := o.b.Funcs.Get(id)
			if fn.HasName && !fn.IsArrow {
				out = append(out, namedFunc{id: id, name: fn.Ident()})
			}
			return true
		},
	}, o.file)
	return out
}
