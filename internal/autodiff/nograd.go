package autodiff

// noGradDepth counts nested NoGrad scopes. Graph recording is suspended
// while it is positive. The counter is package state and is not safe for
// concurrent use; run inference loops that share it from a single goroutine.
var noGradDepth int

// NoGrad suspends graph recording until the returned restore function runs.
// Scopes nest; recording resumes only when every restore has run. The usual
// shape is
//
//	defer autodiff.NoGrad()()
//
// which guarantees the scope is popped even when the body returns early or
// panics.
func NoGrad() func() {
	noGradDepth++
	return func() {
		noGradDepth--
	}
}

// GradEnabled reports whether operations currently record graph nodes.
func GradEnabled() bool {
	return noGradDepth == 0
}
