package datastructure

import (
	"testing"
)

func TestEdgeReverse(t *testing.T) {
	start := NewJunction(NewPoint(0, 0), 12)
	end := NewJunction(NewPoint(1, 0), 15)

	testCases := []struct {
		name string
		edge Edge
	}{
		{
			name: "real forward edge",
			edge: NewEdge(7, true, 3, start, end),
		},
		{
			name: "fake edge part of real",
			edge: MakeFakeEdge(start, end, true),
		},
		{
			name: "fake edge off road",
			edge: MakeFakeEdge(start, end, false),
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			rev := tt.edge.Reverse()

			if !rev.GetStartJunction().Equal(tt.edge.GetEndJunction()) {
				t.Errorf("reverse start = %v, want %v", rev.GetStartJunction(), tt.edge.GetEndJunction())
			}
			if !rev.GetEndJunction().Equal(tt.edge.GetStartJunction()) {
				t.Errorf("reverse end = %v, want %v", rev.GetEndJunction(), tt.edge.GetStartJunction())
			}
			if rev.IsForward() == tt.edge.IsForward() {
				t.Error("reverse must flip the forward flag")
			}
			if rev.IsPartOfReal() != tt.edge.IsPartOfReal() {
				t.Error("reverse must preserve partOfReal")
			}
			if rev.GetFeatureId() != tt.edge.GetFeatureId() {
				t.Error("reverse must preserve the feature id")
			}

			if !rev.Reverse().Equal(tt.edge) {
				t.Errorf("reverse(reverse(e)) = %v, want %v", rev.Reverse(), tt.edge)
			}
		})
	}
}

func TestEdgeFakeness(t *testing.T) {
	start := NewJunction(NewPoint(0, 0), 0)
	end := NewJunction(NewPoint(1, 0), 0)

	real := NewEdge(1, true, 0, start, end)
	if real.IsFake() {
		t.Error("edge with a valid feature id must not be fake")
	}

	fake := MakeFakeEdge(start, end, true)
	if !fake.IsFake() {
		t.Error("edge made by MakeFakeEdge must be fake")
	}
	if !fake.IsPartOfReal() {
		t.Error("partOfReal flag lost")
	}
}

func TestEdgeOrdering(t *testing.T) {
	j0 := NewJunction(NewPoint(0, 0), 0)
	j1 := NewJunction(NewPoint(1, 0), 0)

	testCases := []struct {
		name string
		a, b Edge
		want bool
	}{
		{
			name: "feature id dominates",
			a:    NewEdge(1, true, 9, j0, j1),
			b:    NewEdge(2, true, 0, j0, j1),
			want: true,
		},
		{
			name: "segment idx breaks feature tie",
			a:    NewEdge(1, true, 0, j0, j1),
			b:    NewEdge(1, true, 1, j0, j1),
			want: true,
		},
		{
			name: "equal edges are not less",
			a:    NewEdge(1, true, 0, j0, j1),
			b:    NewEdge(1, true, 0, j0, j1),
			want: false,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Less(tt.b); got != tt.want {
				t.Errorf("Less = %v, want %v", got, tt.want)
			}
		})
	}
}
