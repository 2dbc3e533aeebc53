package core

import (
	"errors"
	"testing"
)

func TestLoadNoMainTree(t *testing.T) {
	src, err := ParseSource(`tree Helper = true`)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	_, err = Load(src, DefaultRegistry())
	if !errors.Is(err, ErrNoMainTree) {
		t.Fatalf("err = %v, want ErrNoMainTree", err)
	}
}

func TestLoadUndefinedNode(t *testing.T) {
	src, err := ParseSource(`tree main = TotallyUnknownNode`)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	_, err = Load(src, DefaultRegistry())
	if err == nil {
		t.Fatalf("expected an UndefinedNodeError")
	}
	var target *UndefinedNodeError
	if !errors.As(err, &target) {
		t.Fatalf("err = %#v, want *UndefinedNodeError", err)
	}
	if target.Name != "TotallyUnknownNode" {
		t.Fatalf("Name = %q, want TotallyUnknownNode", target.Name)
	}
}

func TestLoadSimpleTree(t *testing.T) {
	src, err := ParseSource(`
tree main = Sequence {
    true
    false
}
`)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	root, err := Load(src, DefaultRegistry())
	if err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}
	if root.Name != "Sequence" {
		t.Fatalf("root.Name = %q, want Sequence", root.Name)
	}
	if len(root.Children) != 2 {
		t.Fatalf("len(Children) = %d, want 2", len(root.Children))
	}
	if root.Children[0].Name != "true" || root.Children[1].Name != "false" {
		t.Fatalf("children = %q, %q", root.Children[0].Name, root.Children[1].Name)
	}

	res, err := TickNode(root, NewBlackboard())
	if err != nil || res != Fail {
		t.Fatalf("tick = %v, %v, want Fail, nil", res, err)
	}
}

func TestLoadSubtree(t *testing.T) {
	src, err := ParseSource(`
tree Helper(in a, out b) = SetBool(value <- a, output -> b)

tree main = Helper(a <- "42", b -> result)
`)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	root, err := Load(src, DefaultRegistry())
	if err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}
	if _, ok := root.Node.(*subtreeNode); !ok {
		t.Fatalf("root.Node = %T, want *subtreeNode", root.Node)
	}
	if len(root.Children) != 1 || root.Children[0].Name != "SetBool" {
		t.Fatalf("root.Children = %+v", root.Children)
	}

	bb := NewBlackboard()
	res, err := TickNode(root, bb)
	if err != nil || res != Success {
		t.Fatalf("tick = %v, %v, want Success, nil", res, err)
	}
	if v, ok := bb.Get("result"); !ok || v != "42" {
		t.Fatalf("bb[result] = %q, %v, want 42, true", v, ok)
	}
}
