// Package noop provides a trivial stand-in leaf: a node that does
// nothing but succeed. It's useful as a placeholder child in tests
// and examples, where the behavior under test is the composite or
// decorator around it rather than the leaf itself.
package noop

import "github.com/btreelite/bht/core"

// node always succeeds and has no side effect.
type node struct {
	Silent bool
}

func (n *node) Tick(ctx *core.Context) (core.Result, error) {
	if !n.Silent {
		core.Logf("noop: ticked")
	}
	return core.Success, nil
}

// NewFactory returns a core.Factory for the stand-in leaf, registered
// under the name "Noop" by interpreters.Register.
func NewFactory() core.Factory {
	return func() core.BehaviorNode { return &node{} }
}

// NewSilentFactory is like NewFactory but never logs.
func NewSilentFactory() core.Factory {
	return func() core.BehaviorNode { return &node{Silent: true} }
}
