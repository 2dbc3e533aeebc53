// Package bht provides a reactive behavior-tree runtime: a small DSL
// for describing trees of composites, decorators, and leaves; a
// loader that turns parsed source into a runnable tree; and a tick
// engine that walks it to Success, Fail, or Running.
//
// The grammar and AST are in package core, along with the built-in
// node set, the blackboard, and the error taxonomy. Optional leaves
// that need an external dependency live under interpreters. catalog
// loads a directory of named tree sources from a YAML manifest.
// cmd/bttool is a diagnostic CLI for parsing, loading, and ticking a
// single tree file from the command line.
package bht
