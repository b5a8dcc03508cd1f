package analyzer

import (
	"github.com/hashicorp/go-hclog"
	"github.com/hdltools/vhdlang/internal/ast"
	"github.com/hdltools/vhdlang/internal/symbols"
)

// Analyzer performs semantic analysis over a parsed design file against
// an entity arena. It is a pure transformation: all findings go to the
// diagnostic sink handed into each call, and the arena is only extended
// through declarations, never mutated behind existing ids.
type Analyzer struct {
	arena   *symbols.Arena
	log     hclog.Logger
	TypeMap map[ast.Node]*symbols.TypeEnt // resolved target types
}

// New creates a new Analyzer over the given arena.
func New(arena *symbols.Arena) *Analyzer {
	return &Analyzer{
		arena:   arena,
		log:     hclog.NewNullLogger(),
		TypeMap: make(map[ast.Node]*symbols.TypeEnt),
	}
}

// SetLogger installs a logger for trace-level resolution output.
func (a *Analyzer) SetLogger(log hclog.Logger) {
	if log != nil {
		a.log = log
	}
}
