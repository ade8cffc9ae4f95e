// Package tipview draws tooltips anchored to on-screen elements for
// [Ebitengine] games.
//
// A tip is a box of text with an optional pointing triangle.
// It is placed next to an [Anchor] on the side named by a [Direction],
// clamped to the screen edges, and faded in and out by an [Animator] driven
// from the game's own clock.
//
// # Quick start
//
// Create one [Overlay] per screen and call its Update and Draw after the
// game's own:
//
//	overlay := tipview.NewOverlay(640, 480)
//
//	button := tipview.NewStaticAnchor(tipview.R(100, 200, 180, 240))
//	overlay.Show(button, "Save the game", tipview.DirectionTop)
//
//	func (g *Game) Update() error        { g.overlay.Update(); return nil }
//	func (g *Game) Draw(s *ebiten.Image) { g.drawWorld(s); g.overlay.Draw(s) }
//
// For a zero-boilerplate window use [Run].
//
// # Tips and anchors
//
// A [Registry] keeps at most one tip per anchor. Showing a tip for an anchor
// that already has one reuses it; hiding keeps it for the next show.
// [Registry.ShowAdvanced] creates a word-wrapping tip whose text first goes
// through a [TextDelegate]. Switching an anchor between the basic and
// advanced variants replaces its tip.
//
// Anchors are compared by identity, so pointers such as [*StaticAnchor] or
// the value returned by [AnchorFunc] make good anchors.
//
// # Style
//
// Every show applies the registry's current [Style]: background and
// triangle templates, font, text size and color, padding, screen margin,
// animation and touch behaviour. Styles can be loaded from TOML or YAML with
// [LoadStyle]. Style changes never affect a tip already on screen.
//
// # Touch
//
// The overlay polls the mouse and touch screen every Update. With
// Style.InterceptTouches set, a quick tap on a visible tip hides it and the
// touch is consumed; anything else reaches the handler set with
// [Overlay.OnPassThrough]. Input can be injected for tests with
// [Overlay.InjectClick] and friends, or scripted with [LoadTestScript].
//
// # Events and logging
//
// Lifecycle events go to an [EventSink]; the tipview/ecs module publishes
// them on a [Donburi] world. Debug output goes through [charmbracelet/log];
// install a logger with [SetLogger].
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
// [charmbracelet/log]: https://github.com/charmbracelet/log
package tipview
