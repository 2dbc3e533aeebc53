// Package goja provides an optional scripted leaf, "Script", for
// hosts that want lightweight conditions or actions expressed as
// small ECMAScript snippets instead of Go code.
//
// See https://github.com/dop251/goja.
package goja

import (
	"fmt"

	"github.com/dop251/goja"

	"github.com/btreelite/bht/core"
)

// scriptNode compiles the snippet bound to its "code" port once (the
// first time it's ticked) and evaluates the compiled program on every
// tick after that.
//
// Inside the snippet, the global `_` exposes:
//
//	_.get(name)         -- read a blackboard variable through this
//	                        call's ports; undefined if unbound
//	_.set(name, value)  -- write a blackboard variable through this
//	                        call's ports
//
// The snippet's completion value selects the tick result: the string
// "running" reports core.Running, a falsy value reports core.Fail,
// and anything else reports core.Success.
type scriptNode struct {
	program *goja.Program
}

// NewFactory returns a core.Factory for the Script leaf. It is never
// part of core.DefaultRegistry: a host opts in explicitly with
//
//	reg.Register("Script", goja.NewFactory())
func NewFactory() core.Factory {
	return func() core.BehaviorNode { return &scriptNode{} }
}

func (n *scriptNode) Tick(ctx *core.Context) (core.Result, error) {
	if n.program == nil {
		src, ok := ctx.Get("code")
		if !ok {
			return core.Fail, fmt.Errorf("goja: Script node has no \"code\" port bound")
		}
		p, err := goja.Compile("", src, true)
		if err != nil {
			return core.Fail, fmt.Errorf("goja: compile: %w", err)
		}
		n.program = p
	}

	vm := goja.New()
	vm.Set("_", map[string]interface{}{
		"get": func(name string) interface{} {
			v, ok := ctx.Get(name)
			if !ok {
				return goja.Undefined()
			}
			return v
		},
		"set": func(name, value string) {
			if err := ctx.Set(name, value); err != nil {
				panic(vm.ToValue(err.Error()))
			}
		},
	})

	v, err := vm.RunProgram(n.program)
	if err != nil {
		return core.Fail, fmt.Errorf("goja: exec: %w", err)
	}

	if s, ok := v.Export().(string); ok && s == "running" {
		return core.Running, nil
	}
	if !v.ToBoolean() {
		return core.Fail, nil
	}
	return core.Success, nil
}
