package layout

import (
	"strings"
	"testing"
)

func TestLayout_HorizontalAlignment(t *testing.T) {
	type tc struct {
		halign     HAlign
		expectedX0 int
		expectedX1 int
	}

	// Container width 100, two 30x10 children, gap 10: row width 70.
	tests := map[string]tc{
		"start": {
			halign:     HAlignStart,
			expectedX0: 0,
			expectedX1: 40,
		},
		"end": {
			halign:     HAlignEnd,
			expectedX0: 30, // 100 - 70
			expectedX1: 70, // 30 + 30 + 10
		},
		"center": {
			halign:     HAlignCenter,
			expectedX0: 15, // 100/2 - 70/2
			expectedX1: 55,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			container := newTestNode(DefaultStyle())
			container.style.Width = Fixed(100)
			container.style.Gravity.Horizontal = tt.halign
			container.style.Gap = 10

			c0 := sizedNode(30, 10)
			c1 := sizedNode(30, 10)
			container.AddChild(c0, c1)

			p := Measure(container, 100, Unbounded)
			p.Layout(NewRect(0, 0, 100, 10), false)

			if c0.layout.Rect.X != tt.expectedX0 {
				t.Errorf("c0.X = %d, want %d", c0.layout.Rect.X, tt.expectedX0)
			}
			if c1.layout.Rect.X != tt.expectedX1 {
				t.Errorf("c1.X = %d, want %d", c1.layout.Rect.X, tt.expectedX1)
			}
		})
	}
}

func TestLayout_VerticalAlignment(t *testing.T) {
	type tc struct {
		valign    VAlign
		expectedY int
	}

	// Row height 20 (set by the tall sibling), child height 10.
	tests := map[string]tc{
		"top":    {valign: VAlignTop, expectedY: 0},
		"bottom": {valign: VAlignBottom, expectedY: 10},
		"center": {valign: VAlignCenter, expectedY: 5},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			container := newTestNode(DefaultStyle())
			container.style.Gravity.Vertical = tt.valign

			short := sizedNode(30, 10)
			tall := sizedNode(30, 20)
			container.AddChild(short, tall)

			p := Measure(container, 100, Unbounded)
			p.Layout(NewRect(0, 0, 100, 20), false)

			if short.layout.Rect.Y != tt.expectedY {
				t.Errorf("short.Y = %d, want %d", short.layout.Rect.Y, tt.expectedY)
			}
			if tall.layout.Rect.Y != 0 {
				t.Errorf("tall.Y = %d, want 0 (fills the row)", tall.layout.Rect.Y)
			}
		})
	}
}

func TestLayout_VAlignSelfOverridesGravity(t *testing.T) {
	container := newTestNode(DefaultStyle())
	container.style.Gravity.Vertical = VAlignTop

	inherits := sizedNode(30, 10)
	bottom := VAlignBottom
	overrides := sizedNode(30, 10)
	overrides.style.VAlignSelf = &bottom
	tall := sizedNode(30, 20)
	container.AddChild(inherits, overrides, tall)

	p := Measure(container, 200, Unbounded)
	p.Layout(NewRect(0, 0, 200, 20), false)

	if inherits.layout.Rect.Y != 0 {
		t.Errorf("inheriting child Y = %d, want 0 (container gravity)", inherits.layout.Rect.Y)
	}
	if overrides.layout.Rect.Y != 10 {
		t.Errorf("overriding child Y = %d, want 10 (own bottom alignment)", overrides.layout.Rect.Y)
	}
}

func TestLayout_PaddingAndMarginOffsets(t *testing.T) {
	container := newTestNode(DefaultStyle())
	container.style.Padding = EdgeTRBL(4, 0, 0, 6)

	child := sizedNode(30, 10)
	child.style.Margin = EdgeTRBL(2, 0, 0, 3)
	container.AddChild(child)

	p := Measure(container, 100, Unbounded)
	p.Layout(NewRect(10, 20, 100, 30), false)

	// X = final.X + padding.Left + margin.Left; Y adds padding.Top + margin.Top.
	if child.layout.Rect.X != 10+6+3 {
		t.Errorf("child.X = %d, want 19", child.layout.Rect.X)
	}
	if child.layout.Rect.Y != 20+4+2 {
		t.Errorf("child.Y = %d, want 26", child.layout.Rect.Y)
	}
	if child.layout.Rect.Width != 30 || child.layout.Rect.Height != 10 {
		t.Errorf("child size = %dx%d, want 30x10",
			child.layout.Rect.Width, child.layout.Rect.Height)
	}
}

func TestLayout_CursorPreservesMarginsBetweenSiblings(t *testing.T) {
	container := newTestNode(DefaultStyle())

	c0 := sizedNode(20, 10)
	c0.style.Margin = EdgeSymmetric(0, 5)
	c1 := sizedNode(20, 10)
	c1.style.Margin = EdgeTRBL(0, 0, 0, 4)
	container.AddChild(c0, c1)

	p := Measure(container, Unbounded, Unbounded)
	p.Layout(NewRect(0, 0, 100, 10), false)

	// c0 sits at its own left margin; the cursor advances past c0's full
	// margin-inclusive width before c1's left margin applies.
	if c0.layout.Rect.X != 5 {
		t.Errorf("c0.X = %d, want 5", c0.layout.Rect.X)
	}
	if c1.layout.Rect.X != 30+4 {
		t.Errorf("c1.X = %d, want 34 (after c0's margins plus own left margin)", c1.layout.Rect.X)
	}
}

func TestLayout_SecondRowBelowFirst(t *testing.T) {
	container := newTestNode(DefaultStyle())
	container.AddChild(sizedNode(30, 10), sizedNode(30, 15), sizedNode(30, 5))

	p := Measure(container, 70, Unbounded)
	p.Layout(NewRect(0, 0, 70, 20), false)

	third := container.children[2]
	if third.layout.Rect.Y != 15 {
		t.Errorf("third child Y = %d, want 15 (height of row 0)", third.layout.Rect.Y)
	}
	if third.layout.Rect.X != 0 {
		t.Errorf("third child X = %d, want 0 (first in its row)", third.layout.Rect.X)
	}
}

func TestLayout_GoneChildGetsZeroRect(t *testing.T) {
	container := newTestNode(DefaultStyle())

	c0 := sizedNode(20, 10)
	gone := sizedNode(20, 10)
	gone.visibility = Gone
	// Stale geometry from an earlier pass must be cleared.
	gone.layout = Layout{Rect: NewRect(5, 5, 20, 10)}
	c2 := sizedNode(20, 10)
	container.AddChild(c0, gone, c2)

	p := Measure(container, 100, Unbounded)
	p.Layout(NewRect(0, 0, 100, 10), false)

	if gone.layout != (Layout{}) {
		t.Errorf("gone child layout = %+v, want zero value", gone.layout)
	}
	// The two visible children pack as if the gone child did not exist.
	if c2.layout.Rect.X != 20 {
		t.Errorf("c2.X = %d, want 20 (gone sibling takes no space)", c2.layout.Rect.X)
	}
}

func TestLayout_ParentHiddenIsNoOp(t *testing.T) {
	container := newTestNode(DefaultStyle())
	child := sizedNode(20, 10)
	child.layout = Layout{Rect: NewRect(1, 2, 3, 4)}
	container.AddChild(child)

	p := Measure(container, 100, Unbounded)
	p.Layout(NewRect(0, 0, 100, 10), true)

	if child.layout.Rect != NewRect(1, 2, 3, 4) {
		t.Errorf("hidden layout assigned a rect: %+v", child.layout.Rect)
	}
}

func TestLayout_NoOverlapWithinRows(t *testing.T) {
	container := newTestNode(DefaultStyle())
	container.style.Gap = 2
	widths := []int{15, 25, 10, 30, 20, 5, 40}
	for _, w := range widths {
		container.AddChild(sizedNode(w, 10))
	}

	p := Measure(container, 60, Unbounded)
	p.Layout(NewRect(0, 0, 60, 100), false)

	for _, r := range p.rows {
		for i := 1; i < len(r.children); i++ {
			prev := r.children[i-1].GetLayout().Rect
			cur := r.children[i].GetLayout().Rect
			if cur.X < prev.Right() {
				t.Errorf("child at X=%d overlaps previous ending at %d", cur.X, prev.Right())
			}
		}
	}
	for i := 1; i < len(p.rows); i++ {
		if p.rows[i].y < p.rows[i-1].y+p.rows[i-1].height {
			t.Errorf("row %d at y=%d overlaps previous", i, p.rows[i].y)
		}
	}
}

func TestLayout_StalePassPanics(t *testing.T) {
	type tc struct {
		mutate func(container *testNode)
	}

	tests := map[string]tc{
		"child added": {
			mutate: func(c *testNode) { c.AddChild(sizedNode(10, 10)) },
		},
		"child removed": {
			mutate: func(c *testNode) { c.children = c.children[:1] },
		},
		"visibility changed": {
			mutate: func(c *testNode) { c.children[0].visibility = Gone },
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			container := newTestNode(DefaultStyle())
			container.AddChild(sizedNode(20, 10), sizedNode(20, 10))

			p := Measure(container, 100, Unbounded)
			tt.mutate(container)

			defer func() {
				r := recover()
				if r == nil {
					t.Fatal("Layout on a stale pass did not panic")
				}
				if msg, ok := r.(string); !ok || !strings.Contains(msg, "re-measure") {
					t.Errorf("panic = %v, want a must re-measure message", r)
				}
			}()
			p.Layout(NewRect(0, 0, 100, 10), false)
		})
	}
}

func TestLayout_FreshPassAfterMutation(t *testing.T) {
	// A stale pass is fatal, but re-measuring after the mutation yields a
	// pass that lays out cleanly and reflects the new child set.
	container := newTestNode(DefaultStyle())
	shown := sizedNode(20, 10)
	container.AddChild(shown, sizedNode(20, 10))
	Measure(container, 100, Unbounded)

	container.children[1].visibility = Gone

	p := Measure(container, 100, Unbounded)
	p.Layout(NewRect(0, 0, 100, 10), false)

	if got := shown.GetLayout().Rect; got != NewRect(0, 0, 20, 10) {
		t.Errorf("visible child = %+v, want {0 0 20 10}", got)
	}
	if got := container.children[1].GetLayout().Rect; got != (Rect{}) {
		t.Errorf("gone child = %+v, want zero", got)
	}
}

func TestLayout_RightAlignedOverwideRow(t *testing.T) {
	// A singleton over-wide row keeps its child at right - row.width even
	// when that lands left of the container.
	container := newTestNode(DefaultStyle())
	container.style.Gravity.Horizontal = HAlignEnd

	child := sizedNode(80, 10)
	container.AddChild(child)

	p := Measure(container, 50, Unbounded)
	p.Layout(NewRect(0, 0, 50, 10), false)

	if child.layout.Rect.X != -30 {
		t.Errorf("child.X = %d, want -30 (50 - 80)", child.layout.Rect.X)
	}
}
