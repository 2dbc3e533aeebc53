package core

// sequenceNode ticks its children in order, remembering which child
// it's on between ticks (so a Running child resumes there next time
// instead of re-ticking earlier siblings). It succeeds when every
// child has succeeded, and fails (advancing past the failed child) as
// soon as one fails.
type sequenceNode struct {
	currentChild int
}

func (n *sequenceNode) Tick(ctx *Context) (Result, error) {
	result := Success
	for n.currentChild < ctx.NumChildren() {
		res, err := ctx.TickChild(n.currentChild)
		if err != nil {
			return Fail, err
		}
		result = res
		breakOut := false
		switch res {
		case Success:
			n.currentChild++
		case Fail:
			n.currentChild++
			breakOut = true
		case Running:
			breakOut = true
		}
		if breakOut {
			break
		}
	}
	if n.currentChild == ctx.NumChildren() {
		n.currentChild = 0
	}
	return result, nil
}

// reactiveSequenceNode is a Sequence with no memory across ticks: it
// always restarts from its first child, so an early sibling that can
// fail on a later tick is re-checked every time.
type reactiveSequenceNode struct{}

func (n *reactiveSequenceNode) Tick(ctx *Context) (Result, error) {
	result := Success
	current := 0
	for current < ctx.NumChildren() {
		res, err := ctx.TickChild(current)
		if err != nil {
			return Fail, err
		}
		result = res
		breakOut := false
		switch res {
		case Success:
			current++
		case Fail:
			current++
			breakOut = true
		case Running:
			breakOut = true
		}
		if breakOut {
			break
		}
	}
	return result, nil
}

// fallbackNode ticks its children in order, remembering which child
// it's on between ticks. It succeeds (advancing past the successful
// child) as soon as one succeeds, and fails only once every child
// has failed.
type fallbackNode struct {
	currentChild int
}

func (n *fallbackNode) Tick(ctx *Context) (Result, error) {
	result := Fail
	for n.currentChild < ctx.NumChildren() {
		res, err := ctx.TickChild(n.currentChild)
		if err != nil {
			return Fail, err
		}
		result = res
		breakOut := false
		switch res {
		case Success:
			n.currentChild++
			breakOut = true
		case Fail:
			n.currentChild++
		case Running:
			breakOut = true
		}
		if breakOut {
			break
		}
	}
	if n.currentChild == ctx.NumChildren() {
		n.currentChild = 0
	}
	return result, nil
}

// reactiveFallbackNode is a Fallback with no memory across ticks.
type reactiveFallbackNode struct{}

func (n *reactiveFallbackNode) Tick(ctx *Context) (Result, error) {
	result := Fail
	current := 0
	for current < ctx.NumChildren() {
		res, err := ctx.TickChild(current)
		if err != nil {
			return Fail, err
		}
		result = res
		breakOut := false
		switch res {
		case Success:
			current++
			breakOut = true
		case Fail:
			current++
		case Running:
			breakOut = true
		}
		if breakOut {
			break
		}
	}
	return result, nil
}

// forceSuccessNode ticks its single child (if any) and reports
// Success unless the child is still Running.
type forceSuccessNode struct{}

func (n *forceSuccessNode) Tick(ctx *Context) (Result, error) {
	if ctx.NumChildren() > 0 {
		res, err := ctx.TickChild(0)
		if err != nil {
			return Fail, err
		}
		if res == Running {
			return Running, nil
		}
	}
	return Success, nil
}

// forceFailureNode ticks its single child (if any) and reports Fail
// unless the child is still Running.
type forceFailureNode struct{}

func (n *forceFailureNode) Tick(ctx *Context) (Result, error) {
	if ctx.NumChildren() > 0 {
		res, err := ctx.TickChild(0)
		if err != nil {
			return Fail, err
		}
		if res == Running {
			return Running, nil
		}
	}
	return Fail, nil
}

// inverterNode flips its single child's Success/Fail outcome and
// passes Running through unchanged. A childless Inverter fails.
type inverterNode struct{}

func (n *inverterNode) Tick(ctx *Context) (Result, error) {
	if ctx.NumChildren() == 0 {
		return Fail, nil
	}
	res, err := ctx.TickChild(0)
	if err != nil {
		return Fail, err
	}
	switch res {
	case Success:
		return Fail, nil
	case Fail:
		return Success, nil
	default:
		return res, nil
	}
}

// repeatNode counts down from n (read from its "n" port on first
// use), decrementing once per tick. While the counter stays above
// zero it ticks its single child and reports Running on child Success
// or Running; the tick that brings the counter to zero reports
// Success without ticking the child, so the child runs at most n-1
// times. A child Fail surfaces immediately, resetting the counter.
type repeatNode struct {
	n int
}

func (rn *repeatNode) Tick(ctx *Context) (Result, error) {
	nStr, ok := ctx.Get("n")
	if !ok {
		return Fail, &InvalidCountError{Port: "n", Value: ""}
	}
	if rn.n == 0 {
		v, err := atoiStrict(nStr)
		if err != nil || v == 0 {
			return Fail, &InvalidCountError{Port: "n", Value: nStr}
		}
		rn.n = v
	}
	rn.n--
	if rn.n == 0 {
		return Success, nil
	}
	res, err := ctx.TickChild(0)
	if err != nil {
		return Fail, err
	}
	if res == Success || res == Running {
		return Running, nil
	}
	rn.n = 0
	return res, nil
}

// retryNode counts down from n (read from its "n" port on first use)
// like Repeat, retrying on child Fail and reporting Running between
// attempts. A child Success surfaces immediately, resetting the
// counter -- the mirror image of Repeat. The tick that brings the
// counter to zero reports Success without ticking the child, so the
// child runs at most n-1 times.
type retryNode struct {
	n int
}

func (rn *retryNode) Tick(ctx *Context) (Result, error) {
	nStr, ok := ctx.Get("n")
	if !ok {
		return Fail, &InvalidCountError{Port: "n", Value: ""}
	}
	if rn.n == 0 {
		v, err := atoiStrict(nStr)
		if err != nil || v == 0 {
			return Fail, &InvalidCountError{Port: "n", Value: nStr}
		}
		rn.n = v
	}
	rn.n--
	if rn.n == 0 {
		return Success, nil
	}
	res, err := ctx.TickChild(0)
	if err != nil {
		return Fail, err
	}
	if res == Fail || res == Running {
		return Running, nil
	}
	rn.n = 0
	return res, nil
}

// trueNode always succeeds; it's the condition side of an "if" with
// no runtime effect of its own.
type trueNode struct{}

func (n *trueNode) Tick(ctx *Context) (Result, error) { return Success, nil }

// falseNode always fails.
type falseNode struct{}

func (n *falseNode) Tick(ctx *Context) (Result, error) { return Fail, nil }

// setBoolNode copies its "value" input port to its "output" port,
// and succeeds unless that write fails. It's injected by the parser to implement a
// "var x = true|false" initializer, and is also directly usable.
type setBoolNode struct{}

func (n *setBoolNode) Tick(ctx *Context) (Result, error) {
	if v, ok := ctx.Get("value"); ok {
		if err := ctx.Set("output", v); err != nil {
			return Fail, err
		}
	}
	return Success, nil
}

// ifNode ticks its condition child (index 0); on Fail it ticks the
// else branch (index 2, Fail if absent), otherwise it ticks the true
// branch (index 1, Fail if absent). It is the desugaring target of
// "if (cond) { ... } else { ... }".
type ifNode struct{}

func (n *ifNode) Tick(ctx *Context) (Result, error) {
	res, err := ctx.TickChild(0)
	if err != nil {
		return Fail, err
	}
	if res == Fail {
		res2, err := ctx.TickChild(2)
		if err != nil {
			return Fail, err
		}
		return res2, nil
	}
	res2, err := ctx.TickChild(1)
	if err != nil {
		return Fail, err
	}
	return res2, nil
}

// subtreeNode is the runtime form of invoking another named tree. It
// carries the target tree's formal ports and has exactly one child:
// the target tree's loaded root. local is the subtree's own
// Blackboard, allocated once when the container is loaded and reused
// on every tick after that -- not reallocated per Tick -- so that a
// local variable a multi-tick subtree writes on one Running tick is
// still there on the next. It is imported from and exported back to
// the caller's ports according to each port's declared direction.
type subtreeNode struct {
	ports []PortSpec
	local *Blackboard
}

func (n *subtreeNode) Tick(ctx *Context) (Result, error) {
	for _, p := range n.ports {
		if p.Direction == Input || p.Direction == InOut {
			if v, ok := ctx.Get(p.Key); ok {
				n.local.Set(p.Key, v)
			}
		}
	}

	res, err := ctx.tickChildWithBlackboard(0, n.local)
	if err != nil {
		return Fail, err
	}

	for _, p := range n.ports {
		if p.Direction == Output || p.Direction == InOut {
			if v, ok := n.local.Get(p.Key); ok {
				if err := ctx.Set(p.Key, v); err != nil {
					return Fail, err
				}
			}
		}
	}

	return res, nil
}
