// Package widgets provides the leaf views used by the page-state templates:
// the rotating-dot [DotSpinner], [Label] and [Icon].
//
// All widgets embed [view.Base], so they can be placed in any [view.Group]
// and carry layout params, visibility and click handlers.
package widgets
