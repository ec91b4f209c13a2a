package layout

import "fmt"

// row is one horizontal band of packed children. Rows are rebuilt from
// scratch on every Measure call and never persist across passes.
type row struct {
	children []Layoutable
	width    int // accumulated child widths + margins + gaps consumed
	height   int // max child height in the row
	y        int // offset from the container's content top
}

// childState snapshots a child's identity and visibility at measure time,
// so a stale Pass can be detected before it hands out old geometry.
type childState struct {
	child      Layoutable
	visibility Visibility
}

// Pass holds the result of one measurement: the row partition, the
// container's resolved size, and the deferred Gone children. It is the
// explicit value threaded from Measure into Layout; a geometry change in
// between requires a fresh Measure.
type Pass struct {
	container Layoutable
	style     Style
	rows      []row
	gone      []Layoutable
	size      Size
	snapshot  []childState
}

// Size returns the container size resolved by the measurement.
func (p *Pass) Size() Size {
	return p.size
}

// Measure packs the container's visible children into rows by greedy
// first-fit wrapping and computes the container's required size.
//
// Children are measured in declaration order. Each child is offered the
// available width minus the container's horizontal padding and the child's
// own horizontal margins, and the available height minus the child's
// vertical margins. An Unbounded dimension propagates unchanged and, for
// width, disables wrapping entirely.
//
// Measurement is idempotent: identical inputs over unchanged children yield
// an identical row partition and size.
func Measure(container Layoutable, availableWidth, availableHeight int) *Pass {
	style := container.LayoutStyle()
	p := &Pass{container: container, style: style}

	rows := []row{{}}
	cur := 0
	maxRowWidth := 0

	for _, child := range container.LayoutChildren() {
		p.snapshot = append(p.snapshot, childState{child: child, visibility: child.Visibility()})
		if child.Visibility() == Gone {
			p.gone = append(p.gone, child)
			continue
		}

		cs := child.LayoutStyle()
		offeredW := Shrink(availableWidth, style.Padding.Horizontal()+cs.Margin.Horizontal())
		offeredH := Shrink(availableHeight, cs.Margin.Vertical())
		m := child.Measure(offeredW, offeredH)

		width := m.Width + cs.Margin.Horizontal()
		gap := style.Gap
		if len(rows[cur].children) == 0 {
			gap = 0
		}

		// First-fit wrap: close the row if this child would overflow, but
		// never reject the first candidate of a row.
		if len(rows[cur].children) > 0 && availableWidth != Unbounded &&
			rows[cur].width+width+gap > availableWidth {
			rows = append(rows, row{y: rows[cur].y + rows[cur].height})
			cur++
			gap = 0
		}

		rows[cur].children = append(rows[cur].children, child)
		rows[cur].width += width + gap
		if m.Height > rows[cur].height {
			rows[cur].height = m.Height
		}
		if rows[cur].width > maxRowWidth {
			maxRowWidth = rows[cur].width
		}
	}

	last := rows[len(rows)-1]
	contentWidth := maxRowWidth + style.Padding.Horizontal()
	contentHeight := last.y + last.height + style.Padding.Vertical()
	p.size = Size{
		Width:  style.Width.Resolve(availableWidth, contentWidth),
		Height: style.Height.Resolve(availableHeight, contentHeight),
	}
	p.rows = rows
	return p
}

// Layout assigns every child its final rectangle within final, using the row
// partition built by the matching Measure call.
//
// If parentHidden is true the call is a silent no-op: no rectangles are
// assigned to any descendant. Gone children always receive an explicit zero
// rectangle so downstream consumers never see a stale one.
func (p *Pass) Layout(final Rect, parentHidden bool) {
	if parentHidden {
		return
	}
	p.checkFresh()

	for _, child := range p.gone {
		child.SetLayout(Layout{})
	}

	st := p.style
	for _, r := range p.rows {
		var x int
		switch st.Gravity.Horizontal {
		case HAlignEnd:
			x = final.Right() - r.width + st.Padding.Left
		case HAlignCenter:
			x = final.X + final.Width/2 - r.width/2 + st.Padding.Left
		default:
			x = final.X + st.Padding.Left
		}

		for i, child := range r.children {
			if i > 0 {
				x += st.Gap
			}
			cs := child.LayoutStyle()
			m := child.MeasuredSize()

			y := final.Y + r.y + st.Padding.Top + cs.Margin.Top
			valign := st.Gravity.Vertical
			if cs.VAlignSelf != nil {
				valign = *cs.VAlignSelf
			}
			switch valign {
			case VAlignBottom:
				y += r.height - m.Height
			case VAlignCenter:
				y += (r.height - m.Height) / 2
			}

			rect := NewRect(x+cs.Margin.Left, y, m.Width, m.Height)
			child.SetLayout(Layout{Rect: rect, ContentRect: rect.Inset(cs.Padding)})

			x += m.Width + cs.Margin.Horizontal()
		}
	}
}

// checkFresh panics if the container's child set or any child's visibility
// changed since this Pass was measured. Laying out from a stale pass would
// silently hand out old geometry, so fail fast instead.
func (p *Pass) checkFresh() {
	children := p.container.LayoutChildren()
	if len(children) != len(p.snapshot) {
		panic(fmt.Sprintf("layout: container children changed since measure (%d -> %d); must re-measure",
			len(p.snapshot), len(children)))
	}
	for i, child := range children {
		if p.snapshot[i].child != child {
			panic(fmt.Sprintf("layout: child %d replaced since measure; must re-measure", i))
		}
		if p.snapshot[i].visibility != child.Visibility() {
			panic(fmt.Sprintf("layout: child %d visibility changed since measure; must re-measure", i))
		}
	}
}
