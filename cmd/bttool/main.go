// Command bttool is a small command-line diagnostic for the tree
// DSL: parse a ".bt" file, load it against a registry carrying both
// the built-in nodes and the optional interpreters, then tick it
// until it stops returning Running (or a tick budget runs out),
// printing the result of each tick and, once ticking stops, the
// final blackboard.
package main

import (
	"flag"
	"fmt"
	"io/ioutil"
	"os"
	"sort"
	"strings"

	"github.com/btreelite/bht/core"
	"github.com/btreelite/bht/interpreters"
)

type Opts struct {
	file    string
	bb      string
	maxTick int
	verbose bool
}

func main() {
	opts := &Opts{}
	flag.StringVar(&opts.file, "f", "", "path to a .bt source file (required)")
	flag.StringVar(&opts.bb, "bb", "", "initial blackboard, as comma-separated key=value pairs")
	flag.IntVar(&opts.maxTick, "n", 10, "maximum number of ticks before giving up on a Running root")
	flag.BoolVar(&opts.verbose, "v", false, "enable core's internal load/tick logging")
	flag.Parse()

	if err := opts.run(os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "bttool: %v\n", err)
		os.Exit(1)
	}
}

func (opts *Opts) run(w *os.File) error {
	if opts.file == "" {
		return fmt.Errorf("-f is required")
	}
	core.Logging = opts.verbose

	text, err := ioutil.ReadFile(opts.file)
	if err != nil {
		return fmt.Errorf("reading %q: %w", opts.file, err)
	}

	source, err := core.ParseSource(string(text))
	if err != nil {
		return fmt.Errorf("parsing %q: %w", opts.file, err)
	}

	reg := core.DefaultRegistry()
	interpreters.Register(reg)

	root, err := core.Load(source, reg)
	if err != nil {
		return fmt.Errorf("loading %q: %w", opts.file, err)
	}

	bb, err := parseBlackboard(opts.bb)
	if err != nil {
		return err
	}

	for tick := 1; tick <= opts.maxTick; tick++ {
		res, err := core.TickNode(root, bb)
		if err != nil {
			return fmt.Errorf("tick %d: %w", tick, err)
		}
		fmt.Fprintf(w, "tick %d: %s\n", tick, res)
		if res != core.Running {
			printBlackboard(w, bb)
			return nil
		}
	}
	fmt.Fprintf(w, "root still Running after %d ticks\n", opts.maxTick)
	printBlackboard(w, bb)
	return nil
}

// parseBlackboard turns "a=1,b=2" into a populated Blackboard. An
// empty string yields an empty Blackboard.
func parseBlackboard(s string) (*core.Blackboard, error) {
	bb := core.NewBlackboard()
	if s == "" {
		return bb, nil
	}
	for _, pair := range strings.Split(s, ",") {
		kv := strings.SplitN(pair, "=", 2)
		if len(kv) != 2 {
			return nil, fmt.Errorf("malformed -bb entry %q, want key=value", pair)
		}
		bb.Set(strings.TrimSpace(kv[0]), strings.TrimSpace(kv[1]))
	}
	return bb, nil
}

func printBlackboard(w *os.File, bb *core.Blackboard) {
	vars := bb.Vars()
	if len(vars) == 0 {
		fmt.Fprintln(w, "blackboard: (empty)")
		return
	}
	keys := make([]string, 0, len(vars))
	for k := range vars {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	fmt.Fprint(w, "blackboard:")
	for _, k := range keys {
		fmt.Fprintf(w, " %s=%s", k, vars[k])
	}
	fmt.Fprintln(w)
}
