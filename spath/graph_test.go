package spath

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestGraph_AddNode(t *testing.T) {
	g := NewGraph()

	for i, id := range []int{4, 0, 7} {
		n, err := g.AddNode(id)
		if err != nil {
			t.Fatalf("AddNode(%d): unexpected error: %s", id, err)
		}
		if want := (Node{ID: id, Index: i}); n != want {
			t.Errorf("AddNode(%d): want %+v, got %+v", id, want, n)
		}
	}

	if diff := cmp.Diff([]int{4, 0, 7}, g.Nodes()); diff != "" {
		t.Errorf("Nodes(): mismatch (-want +got):\n%s", diff)
	}
	if got := g.Len(); got != 3 {
		t.Errorf("Len(): want 3, got %d", got)
	}
}

func TestGraph_AddNode_duplicate(t *testing.T) {
	g := NewGraph()
	if _, err := g.AddNode(1); err != nil {
		t.Fatal(err)
	}

	_, err := g.AddNode(1)

	if !errors.Is(err, ErrDuplicateNode) {
		t.Errorf("AddNode(): want ErrDuplicateNode, got %v", err)
	}
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("AddNode(): want error of class ErrInvalidArgument, got %v", err)
	}
	if got := g.Len(); got != 1 {
		t.Errorf("Len(): want 1, got %d", got)
	}
}

func TestGraph_AddNodes(t *testing.T) {
	g := NewGraph()

	err := g.AddNodes(1, 2, 3, 2, 5)

	if !errors.Is(err, ErrDuplicateNode) {
		t.Errorf("AddNodes(): want ErrDuplicateNode, got %v", err)
	}
	if diff := cmp.Diff([]int{1, 2, 3}, g.Nodes()); diff != "" {
		t.Errorf("Nodes(): mismatch (-want +got):\n%s", diff)
	}
}

func TestGraph_AddEdge(t *testing.T) {
	testCases := []struct {
		desc    string
		from    int
		to      int
		weight  float64
		wantErr error
	}{
		{desc: "valid edge", from: 0, to: 1, weight: 2.5},
		{desc: "zero weight", from: 1, to: 0, weight: 0},
		{desc: "self loop", from: 1, to: 1, weight: 1},
		{desc: "infinite weight", from: 0, to: 1, weight: math.Inf(1)},
		{desc: "negative weight", from: 0, to: 1, weight: -1, wantErr: ErrNegativeWeight},
		{desc: "NaN weight", from: 0, to: 1, weight: math.NaN(), wantErr: ErrNegativeWeight},
		{desc: "unknown source", from: 9, to: 1, weight: 1, wantErr: ErrNodeNotFound},
		{desc: "unknown target", from: 0, to: 9, weight: 1, wantErr: ErrNodeNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			g := NewGraph()
			if err := g.AddNodes(0, 1); err != nil {
				t.Fatal(err)
			}

			err := g.AddEdge(tc.from, tc.to, tc.weight)

			if tc.wantErr == nil {
				if err != nil {
					t.Fatalf("AddEdge(): unexpected error: %s", err)
				}
				if got := g.NumEdges(); got != 1 {
					t.Errorf("NumEdges(): want 1, got %d", got)
				}
				return
			}
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("AddEdge(): want %v, got %v", tc.wantErr, err)
			}
			if !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("AddEdge(): want error of class ErrInvalidArgument, got %v", err)
			}
			if got := g.NumEdges(); got != 0 {
				t.Errorf("NumEdges(): want 0, got %d", got)
			}
		})
	}
}

func TestGraph_Edges(t *testing.T) {
	g := NewGraph()
	if err := g.AddNodes(0, 1, 2); err != nil {
		t.Fatal(err)
	}
	mustAddEdge(t, g, 0, 2, 3)
	mustAddEdge(t, g, 1, 0, 1)
	mustAddEdge(t, g, 0, 1, 4)
	if err := g.AddBiEdge(1, 2, 5); err != nil {
		t.Fatal(err)
	}

	want := map[int][]Edge{
		0: {{0, 2, 3}, {0, 1, 4}},
		1: {{1, 0, 1}, {1, 2, 5}},
		2: {{2, 1, 5}},
		3: nil, // not in the graph
	}
	for id, w := range want {
		if diff := cmp.Diff(w, g.Edges(id)); diff != "" {
			t.Errorf("Edges(%d): mismatch (-want +got):\n%s", id, diff)
		}
	}
}

func TestGraph_Node(t *testing.T) {
	g := NewGraph()
	if err := g.AddNodes(10, 20); err != nil {
		t.Fatal(err)
	}

	if n, ok := g.Node(20); !ok || n != (Node{ID: 20, Index: 1}) {
		t.Errorf("Node(20): want {20 1} true, got %+v %v", n, ok)
	}
	if _, ok := g.Node(30); ok {
		t.Errorf("Node(30): want false, got true")
	}
	if !g.HasNode(10) || g.HasNode(30) {
		t.Errorf("HasNode(): wrong membership")
	}
}

func mustAddEdge(t *testing.T, g *Graph, from int, to int, w float64) {
	t.Helper()
	if err := g.AddEdge(from, to, w); err != nil {
		t.Fatalf("AddEdge(%d, %d, %v): %s", from, to, w, err)
	}
}
