package onscreen

// Canvas describes how a subtree of UI nodes is placed on screen.
type Canvas struct {
	RenderMode RenderMode
	// WorldCamera is the camera used by ScreenSpaceCamera and WorldSpace
	// canvases. It may be nil.
	WorldCamera *Camera
}

// NewCanvas creates a canvas root node. The canvas node spans the whole
// screen and is not itself hit-testable.
func NewCanvas(name string, mode RenderMode, cam *Camera) *Node {
	n := &Node{Name: name, Type: NodeTypeCanvas, Canvas: &Canvas{RenderMode: mode, WorldCamera: cam}}
	nodeDefaults(n)
	n.Interactable = true
	return n
}

// enclosingCanvas returns the canvas of n or its nearest ancestor, or nil.
func enclosingCanvas(n *Node) *Canvas {
	for p := n; p != nil; p = p.Parent {
		if p.Canvas != nil {
			return p.Canvas
		}
	}
	return nil
}

// resolveEventCamera picks the camera that converts screen positions for
// nodes under n. A nil result means pure screen space.
//
// Overlay canvases, and camera canvases without a camera, use no camera.
// Otherwise the canvas camera wins, then the scene main camera.
func resolveEventCamera(n *Node, main *Camera) *Camera {
	c := enclosingCanvas(n)
	if c != nil {
		switch {
		case c.RenderMode == ScreenSpaceOverlay:
			return nil
		case c.RenderMode == ScreenSpaceCamera && c.WorldCamera == nil:
			return nil
		case c.WorldCamera != nil:
			return c.WorldCamera
		}
	}
	return main
}

// ScreenPointToLocalPointInRectangle converts a screen point into rect's
// local coordinate space. cam may be nil for overlay UI, in which case the
// screen point is used as the world point directly. ok is false when rect
// has a degenerate transform.
func ScreenPointToLocalPointInRectangle(rect *Node, screen Vec2, cam *Camera) (local Vec2, ok bool) {
	world := screen
	if cam != nil {
		world = cam.ScreenToWorld(screen)
	}
	return rect.WorldToLocal(world)
}
