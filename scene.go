package onscreen

import "errors"

// EntityStore is the interface for optional ECS integration.
// When set on a Scene, interaction events and stick values are forwarded to the ECS.
type EntityStore interface {
	EmitEvent(event InteractionEvent)
}

// InteractionEvent carries interaction data for the ECS bridge.
type InteractionEvent struct {
	Type      EventType
	EntityID  uint32
	PointerID int
	ScreenX   float64
	ScreenY   float64
	LocalX    float64
	LocalY    float64
	Button    MouseButton
	Canceled  bool
	// Stick fields (valid for EventStickValue)
	ValueX float64
	ValueY float64
}

// Scene is the top-level object that owns the node tree, cameras, the input
// system, and pointer dispatch.
type Scene struct {
	root  *Node
	store EntityStore
	debug bool

	cameras    []*Camera
	mainCamera *Camera

	input        *InputSystem
	switchHandle SwitchHandle

	pointers     [maxPointers]pointerState
	events       [maxPointers]PointerEventData
	hitBuf       []*Node
	raycastBuf   []RaycastResult
	probe        PointerEventData
	dragDeadZone float64

	script *ScriptRunner

	errs []error
}

// NewScene creates a scene with a root container, reading input from
// Ebitengine.
func NewScene() *Scene {
	return NewSceneWithSource(NewEbitenSource())
}

// NewSceneWithSource creates a scene reading input from src.
func NewSceneWithSource(src InputSource) *Scene {
	root := NewContainer("root")
	root.Interactable = true
	s := &Scene{
		root:         root,
		input:        NewInputSystem(src),
		dragDeadZone: defaultDragDeadZone,
	}
	s.switchHandle = s.input.OnDeviceSwitch(func(from, to Device) {
		s.cancelPointers()
	})
	return s
}

// Root returns the scene's root container node.
func (s *Scene) Root() *Node {
	return s.root
}

// Input returns the scene's input system.
func (s *Scene) Input() *InputSystem {
	return s.input
}

// Update refreshes transforms, updates the input system, and dispatches
// pointer events. Errors returned by node handlers during this frame are
// joined and returned.
func (s *Scene) Update() error {
	updateWorldTransforms(s.root, identityAffine, false)
	if s.script != nil {
		s.script.step()
	}
	s.input.Update()
	s.processInput()

	if len(s.errs) == 0 {
		return nil
	}
	err := errors.Join(s.errs...)
	s.errs = s.errs[:0]
	return err
}

// NewCamera creates a camera with the given viewport and adds it to the scene.
// The first camera becomes the main camera unless SetMainCamera is used.
func (s *Scene) NewCamera(viewport Rect) *Camera {
	cam := NewCamera(viewport)
	s.cameras = append(s.cameras, cam)
	return cam
}

// RemoveCamera removes a camera from the scene.
func (s *Scene) RemoveCamera(cam *Camera) {
	for i, c := range s.cameras {
		if c == cam {
			s.cameras = append(s.cameras[:i], s.cameras[i+1:]...)
			break
		}
	}
	if s.mainCamera == cam {
		s.mainCamera = nil
	}
}

// Cameras returns the scene's camera list. The returned slice MUST NOT be mutated.
func (s *Scene) Cameras() []*Camera {
	return s.cameras
}

// SetMainCamera designates the camera used when a canvas has none.
func (s *Scene) SetMainCamera(cam *Camera) {
	s.mainCamera = cam
}

// MainCamera returns the designated main camera, else the first camera, else nil.
func (s *Scene) MainCamera() *Camera {
	if s.mainCamera != nil {
		return s.mainCamera
	}
	if len(s.cameras) > 0 {
		return s.cameras[0]
	}
	return nil
}

// SetEntityStore sets the optional ECS bridge.
func (s *Scene) SetEntityStore(store EntityStore) {
	s.store = store
}

// SetDebugMode enables or disables debug mode. When enabled, ignored
// presses, device switches, handler errors, and tree depth warnings are
// logged to stderr.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	setDebugLogging(enabled)
}

func (s *Scene) emitStickValue(node *Node, v Vec2) {
	if s.store == nil || node.EntityID == 0 {
		return
	}
	s.store.EmitEvent(InteractionEvent{
		Type:     EventStickValue,
		EntityID: node.EntityID,
		LocalX:   node.X,
		LocalY:   node.Y,
		ValueX:   v.X,
		ValueY:   v.Y,
	})
}
