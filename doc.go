// Package weave renders an animated backdrop of drifting particles joined by
// lines when they come near each other or near the pointer, tinted by a
// single accent color supplied by the application.
//
// # Quick start
//
// The desktop host runs on [Ebitengine]. Create a host, bind an [Engine] to
// it and run the window:
//
//	host := weave.NewEbitenHost(weave.RunConfig{
//		Title: "Backdrop", Width: 1280, Height: 720,
//	})
//	eng := weave.NewEngine(host, weave.DefaultConfig())
//	if err := eng.Start(weave.MustParseColor("#e23636")); err != nil {
//		log.Print(err) // the backdrop stays idle; the window still runs
//	}
//	defer eng.Stop()
//	if err := weave.Run(host); err != nil {
//		log.Fatal(err)
//	}
//
// A terminal host built on tcell lives in weave/tui.
//
// # Frames
//
// Every host frame the engine advances the particles, builds the proximity
// graph against the advanced positions and the latest pointer position, and
// redraws. Pointer and resize events arriving between frames only update
// engine state; they are observed by the next frame. A resize discards the
// particle set and spawns a new one inside the new bounds.
//
// Edges are yielded lazily by [Edges]. Particle pairs closer than the
// connection distance D are joined with strength 1-d/D; particles closer than
// 1.5·D to the pointer are joined to it with strength 1-d/(1.5·D). The
// strength is drawn as the edge's alpha. Particles are always filled opaque
// before any edge changes the surface alpha, and the alpha is restored when
// the frame ends.
//
// # Lifecycle
//
// [Engine.Start] registers a pointer listener, a resize listener and a frame
// callback with the [Host]; [Engine.Stop] removes exactly those handles. Stop
// is idempotent and safe after a failed Start.
//
// [Ebitengine]: https://ebitengine.org
package weave
