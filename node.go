package onscreen

// HitShape is used for custom hit testing regions in local coordinates.
type HitShape interface {
	Contains(x, y float64) bool
}

// HitRect is an axis-aligned rectangular hit area in local coordinates.
type HitRect struct {
	X, Y, Width, Height float64
}

// Contains reports whether (x, y) lies inside the rectangle.
func (r HitRect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// HitCircle is a circular hit area in local coordinates.
type HitCircle struct {
	CenterX, CenterY, Radius float64
}

// Contains reports whether (x, y) lies inside or on the circle.
func (c HitCircle) Contains(x, y float64) bool {
	dx := x - c.CenterX
	dy := y - c.CenterY
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

// PointerHandler receives pointer events from the scene's dispatcher.
// A returned error is collected and surfaced from Scene.Update.
type PointerHandler func(ev *PointerEventData) error

// nodeIDCounter is a plain counter (no atomic, the scene is single-threaded).
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// Node is a UI element. Nodes form a tree rooted at Scene.Root; children
// inherit their parent's transform.
type Node struct {
	ID   uint32
	Name string
	Type NodeType

	Parent   *Node
	children []*Node

	// Local transform. X and Y are the anchored position inside the parent.
	X, Y           float64
	ScaleX, ScaleY float64
	Rotation       float64
	PivotX, PivotY float64

	// Size of a graphic node in local units. Used for the default hit region.
	Width, Height float64

	Visible      bool
	Interactable bool

	// HitShape overrides the default Width x Height hit region.
	HitShape HitShape

	// Canvas is set on nodes created with NewCanvas.
	Canvas *Canvas

	// EntityID links the node to an ECS entity for the EntityStore bridge.
	EntityID uint32
	UserData any

	// Per-node pointer callbacks (nil by default).
	OnPointerDown PointerHandler
	OnDrag        PointerHandler
	OnPointerUp   PointerHandler

	world          affine
	transformDirty bool
}

func nodeDefaults(n *Node) {
	n.ID = nextNodeID()
	n.ScaleX = 1
	n.ScaleY = 1
	n.Visible = true
	n.transformDirty = true
	n.world = identityAffine
}

// NewContainer creates a grouping node with no size of its own.
func NewContainer(name string) *Node {
	n := &Node{Name: name, Type: NodeTypeContainer}
	nodeDefaults(n)
	return n
}

// NewGraphic creates a sized, hit-testable node. Set Interactable to receive
// pointer events.
func NewGraphic(name string, width, height float64) *Node {
	n := &Node{Name: name, Type: NodeTypeGraphic, Width: width, Height: height}
	nodeDefaults(n)
	return n
}

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("onscreen: cannot add nil child")
	}
	if isAncestor(child, n) {
		panic("onscreen: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
	child.transformDirty = true
	if debugEnabled {
		debugCheckTreeDepth(child)
	}
}

// RemoveChild detaches child from this node.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if child.Parent != n {
		panic("onscreen: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.Parent = nil
	child.transformDirty = true
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// containsLocal tests whether p falls inside the node's hit region.
// Containers with no HitShape are not hit-testable.
func (n *Node) containsLocal(p Vec2) bool {
	if n.HitShape != nil {
		return n.HitShape.Contains(p.X, p.Y)
	}
	if n.Type == NodeTypeContainer || (n.Width == 0 && n.Height == 0) {
		return false
	}
	return p.X >= 0 && p.X <= n.Width && p.Y >= 0 && p.Y <= n.Height
}

func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}
