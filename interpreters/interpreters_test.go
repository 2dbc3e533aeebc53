package interpreters

import (
	"testing"

	"github.com/btreelite/bht/core"
)

func TestRegisterAddsBothLeaves(t *testing.T) {
	reg := core.DefaultRegistry()
	Register(reg)

	src, err := core.ParseSource(`tree main = Sequence { Noop Script(code <- "true") }`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	root, err := core.Load(src, reg)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	res, err := core.TickNode(root, core.NewBlackboard())
	if err != nil {
		t.Fatalf("tick: %v", err)
	}
	if res != core.Success {
		t.Fatalf("res = %v, want Success", res)
	}
}
