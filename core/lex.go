package core

import (
	"strconv"
	"strings"
)

// cursor is the input slice the lexical primitives consume: the
// not-yet-consumed remainder of the source text, as a plain string.
type cursor string

// space is infallible: it advances past leading ASCII whitespace
// (but not CR/LF, which can be significant between top-level trees).
func space(i cursor) cursor {
	for len(i) > 0 && isHSpace(i[0]) {
		i = i[1:]
	}
	return i
}

func isHSpace(c byte) bool {
	return c == ' ' || c == '\t'
}

// emptyLines is like space but also eats CR/LF; used between
// top-level tree definitions.
func emptyLines(i cursor) cursor {
	for len(i) > 0 && isSpaceByte(i[0]) {
		i = i[1:]
	}
	return i
}

func isSpaceByte(c byte) bool {
	switch c {
	case ' ', '\t', '\r', '\n':
		return true
	}
	return false
}

// identifier requires [A-Za-z_] followed by [A-Za-z0-9_]*, skipping
// leading space first.
func identifier(i cursor) (cursor, string, error) {
	i = emptyLines(i)
	if len(i) == 0 || !isIdentStart(i[0]) {
		return i, "", &ParseError{Msg: "Expected an identifier"}
	}
	n := 1
	for n < len(i) && isIdentCont(i[n]) {
		n++
	}
	return i[n:], string(i[:n]), nil
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

func isIdentCont(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}

// matchChar requires the given byte at the cursor head, skipping
// leading space first.
func matchChar(i cursor, c byte) (cursor, error) {
	i2 := emptyLines(i)
	if len(i2) == 0 || i2[0] != c {
		return i, &ParseError{Msg: "Expected token '" + string(c) + "'"}
	}
	return i2[1:], nil
}

// unmatchChar requires the given byte NOT be at the cursor head,
// skipping leading space first. It succeeds without consuming
// anything, so it's a pure lookahead guard.
func unmatchChar(i cursor, c byte) (cursor, error) {
	i2 := emptyLines(i)
	if len(i2) > 0 && i2[0] == c {
		return i, &ParseError{Msg: "Did not expect token '" + string(c) + "'"}
	}
	return i, nil
}

// matchString requires the given literal token (e.g. an arrow) at
// the cursor head, skipping leading space first.
func matchString(i cursor, s string) (cursor, bool) {
	i2 := emptyLines(i)
	if strings.HasPrefix(string(i2), s) {
		return i2[len(s):], true
	}
	return i, false
}

// stringLiteral requires a double-quoted string, skipping leading
// space first. No escape processing is performed: any byte except
// '"' is allowed inside.
func stringLiteral(i cursor) (cursor, string, error) {
	i2 := emptyLines(i)
	if len(i2) == 0 || i2[0] != '"' {
		return i, "", &ParseError{Msg: "Expected token '\"'"}
	}
	rest := i2[1:]
	n := 0
	for n < len(rest) && rest[n] != '"' {
		n++
	}
	if n == len(rest) {
		return i, "", &ParseError{Msg: "Unterminated string literal"}
	}
	return rest[n+1:], string(rest[:n]), nil
}

// atoiStrict parses a decimal integer, rejecting empty or malformed
// input. Used by Repeat/Retry to parse their "n" port.
func atoiStrict(s string) (int, error) {
	return strconv.Atoi(s)
}
