// Package interpreters assembles the optional leaf factories this
// module ships beyond core.DefaultRegistry: leaves that need an
// external dependency (interpreters/goja) or that are useful only as
// test/example scaffolding (interpreters/noop).
package interpreters

import (
	"github.com/btreelite/bht/core"
	"github.com/btreelite/bht/interpreters/goja"
	"github.com/btreelite/bht/interpreters/noop"
)

// Register adds every optional leaf in this package to reg, under
// the same names a host would use in DSL source:
//
//	Noop   -- always succeeds, no side effect
//	Script -- evaluates the ECMAScript snippet bound to its "code" port
func Register(reg *core.Registry) {
	reg.Register("Noop", noop.NewFactory())
	reg.Register("Script", goja.NewFactory())
}
