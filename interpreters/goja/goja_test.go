package goja

import (
	"testing"

	"github.com/btreelite/bht/core"
)

func tick(n core.BehaviorNode, bbmap core.BBMap, bb *core.Blackboard) (core.Result, error) {
	c := &core.BehaviorNodeContainer{Node: n, BBMap: bbmap}
	return core.TickNode(c, bb)
}

func TestScriptReadsAndWritesPorts(t *testing.T) {
	n := NewFactory()()
	bbmap := core.BBMap{
		"code": core.Literal(`
			var x = _.get("x");
			_.set("y", x + "!");
			true;
		`),
		"x": core.Variable{Name: "in", Direction: core.Input},
		"y": core.Variable{Name: "out", Direction: core.Output},
	}
	bb := core.NewBlackboard()
	bb.Set("in", "hello")

	res, err := tick(n, bbmap, bb)
	if err != nil {
		t.Fatalf("tick: %v", err)
	}
	if res != core.Success {
		t.Fatalf("res = %v, want Success", res)
	}
	if v, ok := bb.Get("out"); !ok || v != "hello!" {
		t.Fatalf("bb[out] = %q, %v, want hello!, true", v, ok)
	}
}

func TestScriptRunningResult(t *testing.T) {
	n := NewFactory()()
	bbmap := core.BBMap{"code": core.Literal(`"running"`)}
	res, err := tick(n, bbmap, core.NewBlackboard())
	if err != nil {
		t.Fatalf("tick: %v", err)
	}
	if res != core.Running {
		t.Fatalf("res = %v, want Running", res)
	}
}

func TestScriptFailResult(t *testing.T) {
	n := NewFactory()()
	bbmap := core.BBMap{"code": core.Literal(`false`)}
	res, err := tick(n, bbmap, core.NewBlackboard())
	if err != nil {
		t.Fatalf("tick: %v", err)
	}
	if res != core.Fail {
		t.Fatalf("res = %v, want Fail", res)
	}
}

func TestScriptMissingCode(t *testing.T) {
	n := NewFactory()()
	_, err := tick(n, core.BBMap{}, core.NewBlackboard())
	if err == nil {
		t.Fatalf("expected an error for a missing \"code\" port")
	}
}
