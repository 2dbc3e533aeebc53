package core

import "testing"

// printLeaf appends its "input" port to a shared log, standing in for
// a host leaf that has an observable side effect.
type printLeaf struct {
	log *[]string
}

func (p *printLeaf) Tick(ctx *Context) (Result, error) {
	v, _ := ctx.Get("input")
	*p.log = append(*p.log, v)
	return Success, nil
}

// setValueLeaf copies its "input" port to its "output" port. Unlike
// SetBool it reads "input" rather than "value" and fails when that
// port is unbound. It always writes through "output", so a call site
// that binds some other name to the write arrow leaves "output"
// undeclared in this call's BBMap.
type setValueLeaf struct{}

func (s *setValueLeaf) Tick(ctx *Context) (Result, error) {
	v, ok := ctx.Get("input")
	if !ok {
		return Fail, nil
	}
	if err := ctx.Set("output", v); err != nil {
		return Fail, err
	}
	return Success, nil
}

// countDownLeaf reports Running for as many ticks as its "count" port
// says, then Success.
type countDownLeaf struct {
	n    int
	init bool
}

func (c *countDownLeaf) Tick(ctx *Context) (Result, error) {
	if !c.init {
		v, ok := ctx.Get("count")
		if !ok {
			return Fail, &InvalidCountError{Port: "count"}
		}
		n, err := atoiStrict(v)
		if err != nil {
			return Fail, &InvalidCountError{Port: "count", Value: v}
		}
		c.n = n
		c.init = true
	}
	if c.n > 0 {
		c.n--
		return Running, nil
	}
	return Success, nil
}

func testRegistry(log *[]string) *Registry {
	r := DefaultRegistry()
	r.Register("Print", func() BehaviorNode { return &printLeaf{log: log} })
	r.Register("SetValue", func() BehaviorNode { return &setValueLeaf{} })
	r.Register("CountDown", func() BehaviorNode { return &countDownLeaf{} })
	return r
}

func TestEndToEndSinglePrint(t *testing.T) {
	var log []string
	src, err := ParseSource(`tree main = Sequence { Print(input <- "hey") }`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	root, err := Load(src, testRegistry(&log))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	res, err := TickNode(root, NewBlackboard())
	if err != nil {
		t.Fatalf("tick: %v", err)
	}
	if res != Success {
		t.Fatalf("res = %v, want Success", res)
	}
	if len(log) != 1 || log[0] != "hey" {
		t.Fatalf("log = %v, want [hey]", log)
	}
}

func TestEndToEndReadModifyWrite(t *testing.T) {
	var log []string
	src, err := ParseSource(`
tree main = Sequence {
    Print(input <- foo)
    SetValue(input <- "Hey", output -> foo)
    Print(input <- foo)
}
`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	root, err := Load(src, testRegistry(&log))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	bb := NewBlackboard()
	bb.Set("foo", "bar")

	res, err := TickNode(root, bb)
	if err != nil {
		t.Fatalf("tick: %v", err)
	}
	if res != Success {
		t.Fatalf("res = %v, want Success", res)
	}
	if len(log) != 2 || log[0] != "bar" || log[1] != "Hey" {
		t.Fatalf("log = %v, want [bar Hey]", log)
	}
	if v, ok := bb.Get("foo"); !ok || v != "Hey" {
		t.Fatalf("bb[foo] = %q, %v, want Hey, true", v, ok)
	}
}

func TestEndToEndCountDownThenPrint(t *testing.T) {
	var log []string
	src, err := ParseSource(`
tree main = Sequence {
    CountDown(count <- "3")
    Print(input <- "Boom!")
}
`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	root, err := Load(src, testRegistry(&log))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	bb := NewBlackboard()

	for i := 0; i < 3; i++ {
		res, err := TickNode(root, bb)
		if err != nil {
			t.Fatalf("tick %d: %v", i, err)
		}
		if res != Running {
			t.Fatalf("tick %d = %v, want Running", i, res)
		}
		if len(log) != 0 {
			t.Fatalf("tick %d: log = %v, want empty", i, log)
		}
	}

	res, err := TickNode(root, bb)
	if err != nil {
		t.Fatalf("final tick: %v", err)
	}
	if res != Success {
		t.Fatalf("final tick = %v, want Success", res)
	}
	if len(log) != 1 || log[0] != "Boom!" {
		t.Fatalf("log = %v, want [Boom!]", log)
	}
}

func TestEndToEndIfElse(t *testing.T) {
	var log []string
	src, err := ParseSource(`
tree main = if (false) {
    Print(input <- "yes")
} else {
    Print(input <- "no")
}
`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	root, err := Load(src, testRegistry(&log))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	res, err := TickNode(root, NewBlackboard())
	if err != nil {
		t.Fatalf("tick: %v", err)
	}
	if res != Success {
		t.Fatalf("res = %v, want Success", res)
	}
	if len(log) != 1 || log[0] != "no" {
		t.Fatalf("log = %v, want [no]", log)
	}
}

func TestEndToEndReactiveFallbackStar(t *testing.T) {
	var log []string
	src, err := ParseSource(`
tree main = ReactiveFallbackStar {
    false
    Print(input <- "rescued")
}
`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	root, err := Load(src, testRegistry(&log))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	bb := NewBlackboard()

	res, err := TickNode(root, bb)
	if err != nil {
		t.Fatalf("tick 1: %v", err)
	}
	if res != Success {
		t.Fatalf("tick 1 = %v, want Success (the failed first child falls through to the second)", res)
	}

	res, err = TickNode(root, bb)
	if err != nil {
		t.Fatalf("tick 2: %v", err)
	}
	if res != Success {
		t.Fatalf("tick 2 = %v, want Success", res)
	}
	if len(log) != 2 || log[0] != "rescued" || log[1] != "rescued" {
		t.Fatalf("log = %v, want [rescued rescued] (no memory: it re-tries the failed first child every tick)", log)
	}
}

func TestEndToEndSubtreeScoping(t *testing.T) {
	var log []string
	src, err := ParseSource(`
tree main = Sequence {
    SubTree(param <- "Hello")
}

tree SubTree(in param) = Sequence {
    Print(input <- param)
}
`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	root, err := Load(src, testRegistry(&log))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	bb := NewBlackboard()
	res, err := TickNode(root, bb)
	if err != nil {
		t.Fatalf("tick: %v", err)
	}
	if res != Success {
		t.Fatalf("res = %v, want Success", res)
	}
	if len(log) != 1 || log[0] != "Hello" {
		t.Fatalf("log = %v, want [Hello]", log)
	}
	if _, ok := bb.Get("param"); ok {
		t.Fatalf("the subtree's local \"param\" leaked into the outer blackboard")
	}
}

func TestEndToEndUndefinedPort(t *testing.T) {
	var log []string
	src, err := ParseSource(`
tree main = Sequence {
    SetValue(input <- "x", non_existent_port_name -> bar)
}
`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	root, err := Load(src, testRegistry(&log))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	_, err = TickNode(root, NewBlackboard())
	if err == nil {
		t.Fatalf("expected an UndefinedPortError")
	}
	if _, ok := err.(*UndefinedPortError); !ok {
		t.Fatalf("err = %#v, want *UndefinedPortError", err)
	}
}
