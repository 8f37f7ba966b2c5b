// Package view is the declarative composition layer.
//
// A view tree is built fresh from application state on every update, rendered
// once with a backend and then dropped. Every node implements View[M, R]:
//
//	Render(ctx, backend) R       // fold into the backend's output
//	Describe(ctx) semantic.Node  // the same tree for agents and assistive tech
//
// # Ownership
//
// Composite views own their children as a plain []View[M, R]. Builders use
// value receivers and copy on append, so deriving two variants from a shared
// prefix never aliases. There are no back references and no shared children.
//
// # Layout
//
// Widths and heights use style.Length: Fixed(n), Fill or Shrink. Grid picks
// its column count from the context width through Columns, which both Render
// and Describe call so an observer reading "responsive_columns: N" sees the
// layout a human sees:
//
//	width < 600   1 column
//	width < 900   2 columns
//	width < 1200  3 columns
//	width < 1600  4 columns
//	otherwise     5 columns
//
// # Modifiers
//
// Tag, Document, Protect, Lift, Billboarded, Transform and OnTap wrap any
// view. Tag and Protect change only the description; Document also adds a
// tooltip; Lift, Billboarded and Transform affect spatial output; OnTap routes
// a press through the backend's mouse area.
//
// # Kit
//
// Kit[M, R] fixes the type arguments once so pages read like markup. A page
// written against a Kit can be instantiated for every backend by choosing R.
package view
