package layout

// testNode is a minimal Layoutable for exercising the engine directly.
// Leaves resolve their style against an intrinsic content size; containers
// run the flow measurer over their children.
type testNode struct {
	style      Style
	visibility Visibility
	children   []*testNode

	intrinsic Size
	measured  Size
	layout    Layout
	pass      *Pass

	measureCalls int
}

var _ Layoutable = (*testNode)(nil)

func newTestNode(style Style) *testNode {
	return &testNode{style: style}
}

// sizedNode returns a leaf with a fixed width and height.
func sizedNode(w, h int) *testNode {
	s := DefaultStyle()
	s.Width = Fixed(w)
	s.Height = Fixed(h)
	return newTestNode(s)
}

func (n *testNode) AddChild(children ...*testNode) {
	n.children = append(n.children, children...)
}

func (n *testNode) LayoutStyle() Style { return n.style }

func (n *testNode) Visibility() Visibility { return n.visibility }

func (n *testNode) LayoutChildren() []Layoutable {
	result := make([]Layoutable, len(n.children))
	for i, child := range n.children {
		result[i] = child
	}
	return result
}

func (n *testNode) Measure(offeredWidth, offeredHeight int) Size {
	n.measureCalls++
	if len(n.children) > 0 {
		n.pass = Measure(n, offeredWidth, offeredHeight)
		n.measured = n.pass.Size()
		return n.measured
	}
	n.measured = Size{
		Width:  n.style.Width.Resolve(offeredWidth, n.intrinsic.Width),
		Height: n.style.Height.Resolve(offeredHeight, n.intrinsic.Height),
	}
	return n.measured
}

func (n *testNode) MeasuredSize() Size { return n.measured }

func (n *testNode) SetLayout(l Layout) { n.layout = l }

func (n *testNode) GetLayout() Layout { return n.layout }
