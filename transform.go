package onscreen

import "math"

// affine is a 2D affine matrix stored as [a, b, c, d, tx, ty]:
//
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
type affine [6]float64

var identityAffine = affine{1, 0, 0, 1, 0, 0}

// localAffine builds the node's local matrix.
//
//	Translate(-Pivot) -> Scale -> Rotate -> Translate(X, Y)
func localAffine(n *Node) affine {
	sin, cos := math.Sincos(n.Rotation)
	sx, sy := n.ScaleX, n.ScaleY
	preTx := -n.PivotX * sx
	preTy := -n.PivotY * sy
	return affine{
		cos * sx, sin * sx,
		-sin * sy, cos * sy,
		cos*preTx - sin*preTy + n.X,
		sin*preTx + cos*preTy + n.Y,
	}
}

// mul returns p * c.
func (p affine) mul(c affine) affine {
	return affine{
		p[0]*c[0] + p[2]*c[1],
		p[1]*c[0] + p[3]*c[1],
		p[0]*c[2] + p[2]*c[3],
		p[1]*c[2] + p[3]*c[3],
		p[0]*c[4] + p[2]*c[5] + p[4],
		p[1]*c[4] + p[3]*c[5] + p[5],
	}
}

// invert returns the inverse matrix. ok is false when the matrix is singular.
func (m affine) invert() (inv affine, ok bool) {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return identityAffine, false
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return affine{a, b, c, d, -(a*m[4] + c*m[5]), -(b*m[4] + d*m[5])}, true
}

func (m affine) apply(p Vec2) Vec2 {
	return Vec2{m[0]*p.X + m[2]*p.Y + m[4], m[1]*p.X + m[3]*p.Y + m[5]}
}

// updateWorldTransforms recomputes world matrices for dirty subtrees.
func updateWorldTransforms(n *Node, parent affine, parentRecomputed bool) {
	recompute := n.transformDirty || parentRecomputed
	if recompute {
		n.world = parent.mul(localAffine(n))
		n.transformDirty = false
	}
	for _, child := range n.children {
		updateWorldTransforms(child, n.world, recompute)
	}
}

// SetPosition sets the node's local X and Y and marks it dirty.
func (n *Node) SetPosition(x, y float64) {
	n.X = x
	n.Y = y
	n.transformDirty = true
}

// Position returns the node's local position.
func (n *Node) Position() Vec2 {
	return Vec2{n.X, n.Y}
}

// SetScale sets the node's ScaleX and ScaleY and marks it dirty.
func (n *Node) SetScale(sx, sy float64) {
	n.ScaleX = sx
	n.ScaleY = sy
	n.transformDirty = true
}

// SetRotation sets the node's rotation (in radians) and marks it dirty.
func (n *Node) SetRotation(r float64) {
	n.Rotation = r
	n.transformDirty = true
}

// SetPivot sets the node's PivotX and PivotY and marks it dirty.
func (n *Node) SetPivot(px, py float64) {
	n.PivotX = px
	n.PivotY = py
	n.transformDirty = true
}

// MarkDirty forces the node's world matrix to be recomputed on the next update.
func (n *Node) MarkDirty() {
	n.transformDirty = true
}

// worldMatrix returns an up-to-date world matrix for n, walking up the
// ancestor chain when any link is dirty.
func (n *Node) worldMatrix() affine {
	if !n.anyDirty() {
		return n.world
	}
	if n.Parent == nil {
		return localAffine(n)
	}
	return n.Parent.worldMatrix().mul(localAffine(n))
}

func (n *Node) anyDirty() bool {
	for p := n; p != nil; p = p.Parent {
		if p.transformDirty {
			return true
		}
	}
	return false
}

// WorldToLocal converts a world-space point to this node's local coordinate
// space. ok is false when the node's transform is degenerate (zero scale).
func (n *Node) WorldToLocal(world Vec2) (local Vec2, ok bool) {
	inv, ok := n.worldMatrix().invert()
	if !ok {
		return Vec2{}, false
	}
	return inv.apply(world), true
}

// LocalToWorld converts a local-space point to world space.
func (n *Node) LocalToWorld(local Vec2) Vec2 {
	return n.worldMatrix().apply(local)
}
