// Package core provides the core gear for a reactive behavior-tree
// runtime.
//
// A textual tree description (see ParseSource) is loaded (see Load)
// against a Registry of leaf-node factories to produce a
// *BehaviorNodeContainer, which is the root of a runtime tree. The
// host then repeatedly calls TickNode until the root stops returning
// Running.
//
// The tree carries data through a Blackboard, a flat string-to-string
// map. Each node sees only the ports it declared at its call site
// (its BBMap), bound either to a literal string or to a named
// blackboard variable. A Subtree node introduces a fresh local
// Blackboard, importing its Input/InOut parameters on entry and
// exporting its Output/InOut parameters on exit.
package core
