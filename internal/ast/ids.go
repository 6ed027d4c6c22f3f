package ast

import "jsmin/internal/source"

type (
	// главные сущности
	FileID uint32
	StmtID uint32
	ExprID uint32
	PatID  uint32
	FuncID uint32
	// подсущности
	PayloadID uint32
	// ScopeID names a declaration context assigned by the resolver.
	ScopeID uint32
)

const (
	NoFileID    FileID    = 0
	NoStmtID    StmtID    = 0
	NoExprID    ExprID    = 0
	NoPatID     PatID     = 0
	NoFuncID    FuncID    = 0
	NoPayloadID PayloadID = 0
	// NoScopeID is the context of unresolved (global) references.
	NoScopeID ScopeID = 0
)

func (id FileID) IsValid() bool  { return id != NoFileID }
func (id StmtID) IsValid() bool  { return id != NoStmtID }
func (id ExprID) IsValid() bool  { return id != NoExprID }
func (id PatID) IsValid() bool   { return id != NoPatID }
func (id FuncID) IsValid() bool  { return id != NoFuncID }
func (id ScopeID) IsValid() bool { return id != NoScopeID }

// Id is a resolved identifier: its name together with the scope that
// declares it. Two references denote the same binding iff their Ids are
// equal.
type Id struct {
	Name source.StringID
	Ctxt ScopeID
}

// NoId is the zero identifier, used as a placeholder.
var NoId = Id{}

func (id Id) IsValid() bool { return id.Name != source.NoStringID }
