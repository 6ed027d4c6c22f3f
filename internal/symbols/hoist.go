package symbols

import "jsmin/internal/ast"

// hoistVars declares every 'var' binding found in stmts (nested blocks
// included, nested functions excluded) in the function scope.
func (r *Resolver) hoistVars(scope ast.ScopeID, stmts []ast.StmtID) {
	for _, s := range stmts {
		r.hoistVarsStmt(scope, s)
	}
}

func (r *Resolver) hoistVarsStmt(scope ast.ScopeID, id ast.StmtID) {
	if !id.IsValid() {
		return
	}
	st := r.b.Stmts
	switch r.b.Stmts.Get(id).Kind {
	case ast.StmtVar:
		v, _ := st.Var(id)
		if v.Kind == ast.VarVar {
			for _, d := range v.Decls {
				r.declarePat(scope, d.Name)
			}
		}
	case ast.StmtIf:
		d, _ := st.If(id)
		r.hoistVarsStmt(scope, d.Cons)
		r.hoistVarsStmt(scope, d.Alt)
	case ast.StmtBlock:
		d, _ := st.Block(id)
		r.hoistVars(scope, d.Stmts)
	case ast.StmtWhile, ast.StmtDoWhile, ast.StmtFor:
		d, _ := st.Loop(id)
		r.hoistVarsStmt(scope, d.InitDecl)
		r.hoistVarsStmt(scope, d.Body)
	case ast.StmtForIn, ast.StmtForOf:
		d, _ := st.ForInOf(id)
		r.hoistVarsStmt(scope, d.LeftDecl)
		r.hoistVarsStmt(scope, d.Body)
	case ast.StmtTry:
		d, _ := st.Try(id)
		r.hoistVarsStmt(scope, d.Block)
		r.hoistVarsStmt(scope, d.Handler)
		r.hoistVarsStmt(scope, d.Finalizer)
	case ast.StmtWith:
		d, _ := st.With(id)
		r.hoistVarsStmt(scope, d.Body)
	case ast.StmtLabeled:
		d, _ := st.LabeledStmt(id)
		r.hoistVarsStmt(scope, d.Body)
	}
}

// hoistLexical declares let/const and function declarations that appear
// directly in stmts.
func (r *Resolver) hoistLexical(scope ast.ScopeID, stmts []ast.StmtID) {
	for _, s := range stmts {
		switch r.b.Stmts.Get(s).Kind {
		case ast.StmtVar:
			v, _ := r.b.Stmts.Var(s)
			if v.Kind != ast.VarVar {
				for _, d := range v.Decls {
					r.declarePat(scope, d.Name)
				}
			}
		case ast.StmtFnDecl:
			fnID, _ := r.b.Stmts.FnDecl(s)
			fn := r.b.Funcs.Get(fnID)
			r.declare(scope, fn.Name)
		}
	}
}
