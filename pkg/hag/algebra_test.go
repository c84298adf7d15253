package hag

import (
	"slices"
	"testing"
)

func TestUnion(t *testing.T) {
	t.Run("MergesAllCollections", func(t *testing.T) {
		a := New()
		a.AddEdge("x", "y", "p")
		a.AddConstraint("shared")
		a.AddConstraint("only-a")

		b := New()
		b.AddEdge("y", "z", "q")
		b.AddEdge("x", "y", "p") // identical triple, merges
		b.AddConstraint("shared")

		u := a.Union(b)

		wantVertices := []ID{"x", "y", "z"}
		if got := u.Vertices(); !slices.Equal(got, wantVertices) {
			t.Errorf("Vertices = %v, want %v", got, wantVertices)
		}
		wantEdges := []Edge{
			{From: "x", To: "y", Label: "p"},
			{From: "y", To: "z", Label: "q"},
		}
		if got := u.Edges(); !slices.Equal(got, wantEdges) {
			t.Errorf("Edges = %v, want %v", got, wantEdges)
		}
		wantConstraints := []string{"only-a", "shared"}
		if got := u.Constraints(); !slices.Equal(got, wantConstraints) {
			t.Errorf("Constraints = %v, want %v", got, wantConstraints)
		}
	})

	t.Run("OtherSideWinsHyperVertexConflicts", func(t *testing.T) {
		a := New()
		a.AddHyperVertex("H", []ID{"1", "2"})
		b := New()
		b.AddHyperVertex("H", []ID{"3"})

		u := a.Union(b)

		members, ok := u.HyperVertex("H")
		if !ok {
			t.Fatal("H missing from union")
		}
		if want := []ID{"3"}; !slices.Equal(members, want) {
			t.Errorf("members = %v, want the overriding side's %v", members, want)
		}
	})

	t.Run("EmptyGraphIsIdentityOnVerticesAndEdges", func(t *testing.T) {
		g := New()
		g.AddEdge("a", "b", "calls")
		g.AddVertex("lone")

		u := g.Union(New())

		if !slices.Equal(u.Vertices(), g.Vertices()) {
			t.Errorf("Vertices = %v, want %v", u.Vertices(), g.Vertices())
		}
		if !slices.Equal(u.Edges(), g.Edges()) {
			t.Errorf("Edges = %v, want %v", u.Edges(), g.Edges())
		}
	})

	t.Run("DoesNotMutateOperands", func(t *testing.T) {
		a := New()
		a.AddVertex("a")
		b := New()
		b.AddVertex("b")

		u := a.Union(b)
		u.AddVertex("u-only")
		u.AddHyperVertex("H", []ID{"a"})

		if a.VertexCount() != 1 || b.VertexCount() != 1 {
			t.Error("union mutated an operand")
		}
	})
}

func TestIntersection(t *testing.T) {
	t.Run("KeepsOnlySharedMembers", func(t *testing.T) {
		a := New()
		a.AddEdge("x", "y", "p")
		a.AddEdge("x", "z", "q")
		a.AddConstraint("shared")
		a.AddConstraint("only-a")

		b := New()
		b.AddEdge("x", "y", "p")
		b.AddEdge("y", "w", "r")
		b.AddConstraint("shared")

		i := a.Intersection(b)

		wantVertices := []ID{"x", "y"}
		if got := i.Vertices(); !slices.Equal(got, wantVertices) {
			t.Errorf("Vertices = %v, want %v", got, wantVertices)
		}
		wantEdges := []Edge{{From: "x", To: "y", Label: "p"}}
		if got := i.Edges(); !slices.Equal(got, wantEdges) {
			t.Errorf("Edges = %v, want %v", got, wantEdges)
		}
		if want := []string{"shared"}; !slices.Equal(i.Constraints(), want) {
			t.Errorf("Constraints = %v, want %v", i.Constraints(), want)
		}
	})

	t.Run("SameLabelRequired", func(t *testing.T) {
		a := New()
		a.AddEdge("x", "y", "p")
		b := New()
		b.AddEdge("x", "y", "q")

		i := a.Intersection(b)

		if got := i.Edges(); len(got) != 0 {
			t.Errorf("Edges = %v, want none: labels differ", got)
		}
	})

	t.Run("DropsHyperVertexWithDifferingMembers", func(t *testing.T) {
		a := New()
		a.AddHyperVertex("H", []ID{"1", "2"})
		b := New()
		b.AddHyperVertex("H", []ID{"1", "3"})

		i := a.Intersection(b)

		if _, ok := i.HyperVertex("H"); ok {
			t.Error("H present in intersection despite differing membership")
		}
	})

	t.Run("KeepsHyperVertexWithEqualMembers", func(t *testing.T) {
		a := New()
		a.AddHyperVertex("H", []ID{"1", "2"})
		b := New()
		b.AddHyperVertex("H", []ID{"2", "1"})

		i := a.Intersection(b)

		members, ok := i.HyperVertex("H")
		if !ok {
			t.Fatal("H missing despite equal membership")
		}
		if want := []ID{"1", "2"}; !slices.Equal(members, want) {
			t.Errorf("members = %v, want %v", members, want)
		}
	})
}

func TestSubtract(t *testing.T) {
	t.Run("RemovesSharedMembers", func(t *testing.T) {
		a := New()
		a.AddEdge("x", "y", "p")
		a.AddEdge("x", "z", "q")
		a.AddConstraint("keep")
		a.AddConstraint("drop")

		b := New()
		b.AddEdge("x", "z", "q")
		b.AddConstraint("drop")

		s := a.Subtract(b)

		wantVertices := []ID{"y"}
		if got := s.Vertices(); !slices.Equal(got, wantVertices) {
			t.Errorf("Vertices = %v, want %v", got, wantVertices)
		}
		wantEdges := []Edge{{From: "x", To: "y", Label: "p"}}
		if got := s.Edges(); !slices.Equal(got, wantEdges) {
			t.Errorf("Edges = %v, want %v", got, wantEdges)
		}
		if want := []string{"keep"}; !slices.Equal(s.Constraints(), want) {
			t.Errorf("Constraints = %v, want %v", s.Constraints(), want)
		}
	})

	t.Run("LabelSensitive", func(t *testing.T) {
		a := New()
		a.AddEdge("x", "y", "p")
		b := New()
		b.AddEdge("x", "y", "q")

		s := a.Subtract(b)

		// b's edge has a different label, so a's edge survives.
		wantEdges := []Edge{{From: "x", To: "y", Label: "p"}}
		if got := s.Edges(); !slices.Equal(got, wantEdges) {
			t.Errorf("Edges = %v, want %v", got, wantEdges)
		}
	})

	t.Run("SameNameRemovesHyperVertexRegardlessOfMembers", func(t *testing.T) {
		a := New()
		a.AddHyperVertex("H", []ID{"1", "2"})
		a.AddHyperVertex("K", []ID{"3"})
		b := New()
		b.AddHyperVertex("H", []ID{"completely", "different"})

		s := a.Subtract(b)

		if _, ok := s.HyperVertex("H"); ok {
			t.Error("H survived subtraction despite name match in other graph")
		}
		if _, ok := s.HyperVertex("K"); !ok {
			t.Error("K missing: its name does not appear in the other graph")
		}
	})

	t.Run("ConstraintOrderPreserved", func(t *testing.T) {
		a := New()
		a.AddConstraint("z-last")
		a.AddConstraint("drop")
		a.AddConstraint("a-first")
		b := New()
		b.AddConstraint("drop")

		s := a.Subtract(b)

		want := []string{"z-last", "a-first"}
		if got := s.Constraints(); !slices.Equal(got, want) {
			t.Errorf("Constraints = %v, want A's order %v", got, want)
		}
	})
}
