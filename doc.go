// Package onscreen provides on-screen controls for [Ebitengine] games: UI
// widgets that turn pointer input into values on a virtual gamepad.
//
// The main control is [Stick], a joystick knob the player drags with a mouse,
// pen, or finger. The knob follows the pointer up to a configurable movement
// range and reports its displacement, normalized to [-1, 1] per axis, to a
// bound gamepad control such as "<Gamepad>/leftStick".
//
// # Quick start
//
//	scene := onscreen.NewScene()
//	hud := onscreen.NewCanvas("hud", onscreen.ScreenSpaceOverlay, nil)
//	scene.Root().AddChild(hud)
//
//	base := onscreen.NewContainer("base")
//	base.Interactable = true
//	base.SetPosition(80, 360)
//	hud.AddChild(base)
//
//	knob := onscreen.NewGraphic("knob", 60, 60)
//	base.AddChild(knob)
//
//	stick, err := onscreen.NewStick(knob, onscreen.DefaultStickConfig())
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := stick.Start(scene); err != nil {
//		log.Fatal(err)
//	}
//
// Call [Scene.Update] once per tick from your [ebiten.Game] and read the
// result with [Stick.Value] or from the virtual gamepad returned by
// [InputSystem.VirtualDevice].
//
// # Scene graph
//
// Every UI element is a [Node]. Nodes form a tree rooted at [Scene.Root];
// children inherit their parent's position, scale, rotation, and pivot.
// [NewCanvas] creates a canvas node whose [RenderMode] decides which camera,
// if any, converts screen positions for the nodes below it. A stick's knob
// moves in its parent's local space, so the parent is normally the visual
// base of the stick.
//
// # Input
//
// [Scene] owns an [InputSystem] that polls an [InputSource] once per frame.
// [EbitenSource] reads real devices; [InjectSource] replays scripted frames
// for tests. The system exposes devices ([Mouse], [Pen], [Touchscreen],
// [XRController], and the virtual [Gamepad]) and evaluates [Action] values
// bound to their controls with paths like "<Touchscreen>/touch*/press".
//
// The scene runs a per-pointer press, drag, and release state machine and
// calls OnPointerDown, OnDrag, and OnPointerUp on the node under the
// pointer. [Scene.RaycastAll] exposes the same hit test.
//
// # Direct and isolated sticks
//
// A stick in direct mode (the default) follows the scene's pointer dispatch.
// When the input system switches devices automatically (see
// [InputSystem.SetAutoSwitch]), the gamepad actuation produced by the stick
// itself switches the current device away from the pointer. Held presses are
// then canceled and the knob springs back to its rest position.
//
// Setting [StickConfig.UseIsolatedInputActions] makes the stick create its
// own private pointer-down and pointer-move actions instead. It hit-tests
// presses itself and only listens for movement while one of its presses is
// held, and device switching never cancels private actions.
//
// # Configuration
//
// [StickConfig] can be loaded from YAML or TOML with [LoadStickConfig]. A
// [StickConfig.ResponseCurve] reshapes the output magnitude with one of the
// easing curves listed by [ResponseCurveNames].
//
// # Debug mode
//
// [Scene.SetDebugMode] turns on debug logging to stderr: ignored presses,
// device switches, failing pointer handlers, and overly deep trees.
//
// # ECS integration
//
// Set an [EntityStore] with [Scene.SetEntityStore] to receive pointer and
// stick events for nodes with a non-zero EntityID. The ecs subpackage
// provides a Donburi adapter.
//
// [Ebitengine]: https://ebitengine.org
package onscreen
