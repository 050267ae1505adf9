// Package animation turns "redraw every display refresh" demos into pull
// iterators of frames.
//
// A Frame carries the step counter and the progress fraction in [0, 1) a
// renderer needs to draw one picture. Sequences are finite (RepeatOnce) or
// endless: RepeatRestart resets the step counter after the last frame while
// RepeatLoop keeps it growing and only wraps the progress.
//
// ⚙️ Usage
//
//	var p animation.Player
//	p.Start("combined", animation.SignalPropagation)
//	for f, ok := p.Next(); ok; f, ok = p.Next() {
//		draw(f)
//		if userClickedStop {
//			p.Stop()
//		}
//	}
//
// Cancellation is simply ceasing to pull. Player.Start stops any sequence
// that is still active, so at most one animation runs at a time.
package animation
