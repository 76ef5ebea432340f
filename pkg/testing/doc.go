// Package testing provides helpers for testing view trees, spinners and
// page-state containers deterministically.
//
// # Animation Testing
//
// Control time for deterministic animation tests:
//
//	clk := pstest.InstallFakeClock(t.Cleanup)
//	pstest.StepFrames(clk, 10, 16*time.Millisecond)
//
// # Paint Assertions
//
// Paint a tree into a RecordingCanvas and inspect the draw operations:
//
//	var canvas pstest.RecordingCanvas
//	root.Paint(&canvas)
//	dots := canvas.Circles()
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import pstest "github.com/go-drift/pagestate/pkg/testing"
package testing
