package core

// This file implements the grammar in spec.md §4.2 as a recursive
// descent parser. Each parse function takes a cursor and returns
// either (rest, value, nil) on success or (_, _, err) on failure,
// following the lexical primitives in lex.go.
//
// The "parse as long as it succeeds" loops described in the grammar
// (a tree's children, a port-map list, ...) stop without error the
// moment the next token can't even start the production (e.g. the
// next byte isn't an identifier at all) -- that's a legitimate end of
// list. But once a production has committed to starting (its leading
// identifier or opening delimiter matched), any later parse failure
// is a real syntax error and is propagated, not silently discarded.
// Port-map lists are the exception: a list whose closing paren is
// missing, or whose entry has an arrow followed by neither a string
// literal nor an identifier, is treated as "no port maps here", and
// parsing then fails on the text left unconsumed.

// ParseSource parses a complete source text into a TreeSource. It is
// the library's top-level DSL entry point (spec.md §6: source_text).
func ParseSource(text string) (TreeSource, error) {
	i := cursor(text)
	var trees []Tree
	for {
		i = emptyLines(i)
		if len(i) == 0 {
			break
		}
		rest, tree, err := parseTree(i)
		if err != nil {
			return nil, err
		}
		trees = append(trees, tree)
		i = rest
	}
	return TreeSource(trees), nil
}

// parseTree parses "tree" ident subtree_ports? "=" tree_child.
func parseTree(i cursor) (cursor, Tree, error) {
	i = emptyLines(i)
	rest, kw, err := identifier(i)
	if err != nil {
		return i, Tree{}, &ParseError{Msg: "Did not recognize the first identifier: " + err.Error()}
	}
	if kw != "tree" {
		return i, Tree{}, &ParseError{Msg: `The first identifier must be "tree"`}
	}
	rest, name, err := identifier(rest)
	if err != nil {
		return i, Tree{}, &ParseError{Msg: "Missing tree name: " + err.Error()}
	}

	var ports []PortDef
	if r2, p, ok := tryParsePorts(rest); ok {
		rest, ports = r2, p
	}

	rest2, err := matchChar(rest, '=')
	if err != nil {
		return i, Tree{}, &ParseError{Msg: "Tree name should be followed by a equal (=)"}
	}
	rest = rest2

	rest, elem, err := parseTreeChild(rest)
	if err != nil {
		return i, Tree{}, err
	}
	def, isTreeDef := elem.(TreeDef)
	if !isTreeDef {
		return i, Tree{}, &ParseError{Msg: "Tree root cannot be a variable definition"}
	}

	rest = emptyLines(rest)
	return rest, Tree{Name: name, Root: def, Ports: ports}, nil
}

// tryParsePorts parses "(" (port_def ("," port_def)*)? ")" for a
// subtree's formal port signature. Absence of an opening paren is
// not an error at this call site: it just means no formal ports.
func tryParsePorts(i cursor) (cursor, []PortDef, bool) {
	rest, err := matchChar(i, '(')
	if err != nil {
		return i, nil, false
	}
	var ports []PortDef
	for {
		r2, def, ok := tryParsePortDef(rest)
		if !ok {
			break
		}
		ports = append(ports, def)
		rest = r2
		r3, err := matchChar(rest, ',')
		if err != nil {
			break
		}
		rest = r3
	}
	rest2, err := matchChar(rest, ')')
	if err != nil {
		return i, nil, false
	}
	return rest2, ports, true
}

func tryParsePortDef(i cursor) (cursor, PortDef, bool) {
	rest, kw, err := identifier(i)
	if err != nil {
		return i, PortDef{}, false
	}
	var dir PortDirection
	switch kw {
	case "in":
		dir = Input
	case "out":
		dir = Output
	case "inout":
		dir = InOut
	default:
		return i, PortDef{}, false
	}
	rest, name, err := identifier(rest)
	if err != nil {
		return i, PortDef{}, false
	}
	return rest, PortDef{Direction: dir, Name: name}, true
}

// treeElem is the sum type returned by parseTreeChild: either a
// TreeDef (a node invocation, possibly desugared from "if") or a
// VarDef (a "var" declaration).
type treeElem interface{}

// parseTreeChild parses one tree_child production:
//
//	tree_child := "if" cond_node | "var" var_decl | tree_node
func parseTreeChild(i cursor) (cursor, treeElem, error) {
	rest, kw, err := identifier(i)
	if err != nil {
		return i, nil, err
	}
	switch kw {
	case "if":
		return parseCondNode(rest)
	case "var":
		return parseVarDecl(rest)
	}
	// Not "if" or "var": re-parse from i as a plain tree_node
	// (parseTreeNode re-reads the identifier itself).
	rest2, def, err := parseTreeNode(i)
	if err != nil {
		return i, nil, err
	}
	return rest2, def, nil
}

// parseCondNode parses cond_node := "(" tree_node ")" block ("else"
// block)? and desugars it into a synthetic "if" TreeDef with
// children [cond, Sequence{T}, Sequence{F}] (F omitted without else).
func parseCondNode(i cursor) (cursor, treeElem, error) {
	rest, err := matchChar(i, '(')
	if err != nil {
		return i, nil, err
	}
	rest, cond, err := parseTreeNode(rest)
	if err != nil {
		return i, nil, err
	}
	rest, err = matchChar(rest, ')')
	if err != nil {
		return i, nil, err
	}

	children := []TreeDef{cond}

	r2, body, err := parseBlock(rest)
	if err != nil {
		return i, nil, err
	}
	rest = r2
	children = append(children, sequenceOf(body))

	r3 := emptyLines(rest)
	if r4, kw, err := identifier(r3); err == nil && kw == "else" {
		r5, body, err := parseBlock(r4)
		if err != nil {
			return i, nil, err
		}
		children = append(children, sequenceOf(body))
		rest = r5
	}

	return rest, TreeDef{Name: "if", Children: children}, nil
}

// parseVarDecl parses var_decl := ident ("=" ("true"|"false"))?.
func parseVarDecl(i cursor) (cursor, treeElem, error) {
	rest, name, err := identifier(i)
	if err != nil {
		return i, nil, err
	}
	r2 := emptyLines(rest)
	if len(r2) > 0 && r2[0] == '=' {
		r3, init, err := identifier(r2[1:])
		if err != nil {
			return i, nil, err
		}
		if init != "true" && init != "false" {
			return i, nil, &ParseError{Msg: "true or false expected as the initializer"}
		}
		return r3, VarDef{Name: name, Init: &init}, nil
	}
	return rest, VarDef{Name: name}, nil
}

// parseTreeNode parses tree_node := ident port_maps? block?.
func parseTreeNode(i cursor) (cursor, TreeDef, error) {
	rest, name, err := identifier(i)
	if err != nil {
		return i, TreeDef{}, &ParseError{Msg: "Expected node name: " + err.Error()}
	}

	var maps []PortMap
	r2, pm, ok, err := tryParsePortMaps(rest)
	if err != nil {
		return i, TreeDef{}, err
	}
	if ok {
		rest, maps = r2, pm
	}

	var body []treeElem
	r3, b, ok, err := tryParseBlock(rest)
	if err != nil {
		return i, TreeDef{}, err
	}
	if ok {
		rest, body = r3, b
	}

	return rest, treeDefFromElems(name, maps, body), nil
}

// treeChildren parses tree_child* -- as many tree_child productions as
// appear. It stops without error as soon as the next token isn't an
// identifier, since that unambiguously means there's no more children
// here (e.g. a block's closing "}"). Once a tree_child commits to an
// identifier, though, any later parse failure is a real syntax error
// and is propagated rather than silently discarded.
func treeChildren(i cursor) (cursor, []treeElem, error) {
	var elems []treeElem
	for {
		if _, _, err := identifier(i); err != nil {
			break
		}
		rest, elem, err := parseTreeChild(i)
		if err != nil {
			return i, nil, err
		}
		elems = append(elems, elem)
		i = rest
	}
	return i, elems, nil
}

// tryParseBlock parses block := "{" tree_child* "}", returning ok
// false (and the original cursor, no error) if there's no opening
// brace. Once the opening brace is matched, though, this block is no
// longer optional: a malformed body is a hard error, propagated
// rather than treated as "there was no block here".
func tryParseBlock(i cursor) (cursor, []treeElem, bool, error) {
	rest, err := matchChar(i, '{')
	if err != nil {
		return i, nil, false, nil
	}
	rest, elems, err := parseBlockBody(rest)
	if err != nil {
		return i, nil, false, err
	}
	return rest, elems, true, nil
}

// parseBlock is like tryParseBlock but propagates a missing opening
// brace as an error; used after "else", where a block is mandatory.
func parseBlock(i cursor) (cursor, []treeElem, error) {
	rest, err := matchChar(i, '{')
	if err != nil {
		return i, nil, err
	}
	return parseBlockBody(rest)
}

func parseBlockBody(i cursor) (cursor, []treeElem, error) {
	rest, elems, err := treeChildren(i)
	if err != nil {
		return i, nil, err
	}
	rest, err = matchChar(rest, '}')
	if err != nil {
		return i, nil, err
	}
	return rest, elems, nil
}

// tryParsePortMaps parses port_maps := "(" (port_map ("," port_map)*)? ")".
// Once the opening paren is matched, an entry with a missing or
// unrecognized arrow is a hard error (see tryParsePortMap),
// propagated rather than treated as "no port maps here". A missing
// closing paren reports ok false with no error.
func tryParsePortMaps(i cursor) (cursor, []PortMap, bool, error) {
	rest, err := matchChar(i, '(')
	if err != nil {
		return i, nil, false, nil
	}
	var maps []PortMap
	for {
		r2, pm, ok, err := tryParsePortMap(rest)
		if err != nil {
			return i, nil, false, err
		}
		if !ok {
			break
		}
		maps = append(maps, pm)
		rest = r2
		r3, err := matchChar(rest, ',')
		if err != nil {
			break
		}
		rest = r3
	}
	rest2, err := matchChar(rest, ')')
	if err != nil {
		return i, nil, false, nil
	}
	return rest2, maps, true, nil
}

// tryParsePortMap parses port_map := ident ("<-"|"->"|"<->") (string | ident).
// ok is false, with no error, when there is no identifier at the
// cursor, or when the arrow is followed by neither a string literal
// nor an identifier. An identifier not followed by a valid arrow is
// a hard error, since a bare identifier is never a legitimate end of
// a port-map list on its own: ok is then true and err is non-nil.
func tryParsePortMap(i cursor) (cursor, PortMap, bool, error) {
	rest, name, err := identifier(i)
	if err != nil {
		return i, PortMap{}, false, nil
	}

	var dir PortDirection
	var rest2 cursor
	var ok bool
	if rest2, ok = matchString(rest, "<->"); ok {
		dir = InOut
	} else if rest2, ok = matchString(rest, "<-"); ok {
		dir = Input
	} else if rest2, ok = matchString(rest, "->"); ok {
		dir = Output
	} else {
		return i, PortMap{}, true, &ParseError{Msg: `Expected "<-", "->" or "<->"`}
	}

	if r3, lit, err := stringLiteral(rest2); err == nil {
		return r3, PortMap{NodePort: name, Direction: dir, Value: Literal(lit)}, true, nil
	}
	r3, varName, err := identifier(rest2)
	if err != nil {
		return i, PortMap{}, false, nil
	}
	return r3, PortMap{NodePort: name, Direction: dir, Value: Variable{Name: varName, Direction: dir}}, true, nil
}

// sequenceOf wraps a block's elements in a synthetic Sequence TreeDef,
// used for the true/false branches of a desugared "if".
func sequenceOf(elems []treeElem) TreeDef {
	return treeDefFromElems("Sequence", nil, elems)
}

// treeDefFromElems splits a block's elements into child TreeDefs and
// VarDefs, injecting a synthetic SetBool child for each var with an
// initializer, in order among its siblings.
func treeDefFromElems(name string, portMaps []PortMap, elems []treeElem) TreeDef {
	var children []TreeDef
	var vars []VarDef
	for _, elem := range elems {
		switch v := elem.(type) {
		case TreeDef:
			children = append(children, v)
		case VarDef:
			if v.Init != nil {
				children = append(children, setBoolTreeDef(v.Name, *v.Init))
			}
			vars = append(vars, v)
		}
	}
	return TreeDef{Name: name, PortMaps: portMaps, Children: children, Vars: vars}
}

// setBoolTreeDef builds the synthetic SetBool{value <- init, output
// -> name} node injected for a "var x = true|false" declaration.
func setBoolTreeDef(name, init string) TreeDef {
	return TreeDef{
		Name: "SetBool",
		PortMaps: []PortMap{
			{NodePort: "value", Direction: Input, Value: Literal(init)},
			{NodePort: "output", Direction: Output, Value: Variable{Name: name, Direction: Output}},
		},
	}
}
