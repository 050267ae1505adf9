// Package render turns an explicit session.State into draw commands.
//
// 🚀 What is render?
//
//	Every view is a pure function
//
//	  scene(state, surface[, frame][, rng]) → []Panel
//
//	A Panel is one drawing area (the "code" plot, the "spectrum" plot, ...)
//	holding an ordered list of Commands. Commands are plain data: polylines,
//	point sets, rectangles, circles and text in surface coordinates with
//	the origin at the top left. The package never touches a real canvas, so
//	a host can replay the commands onto SVG, a terminal or an HTML canvas.
//
// ✨ Scenes
//
//	RangingCode, Carrier, BOC, Combined, L1 and Playground draw the static
//	views; CombinedFrame, L1Frame and PlaygroundFrame draw one animation
//	frame. Scene dispatches on state.Tab.
//
// A zero Surface is replaced by DefaultSurface.
package render
