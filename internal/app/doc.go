// Package app is the composition root for facet.
//
// # Overview
//
// This package wires configuration, preferences, the memory database, the
// action dispatcher and the accessibility bridge into a Runtime, then runs
// the long-lived services that share it: the exposure API, the view
// exporter, the optional transcript follower and the interactive preview.
//
// # Architecture
//
// Open builds a Runtime in a fixed order:
//
//  1. Load config.toml (default ~/.config/facet/config.toml)
//  2. Build the zap logger (stderr for headless commands, a file for the preview)
//  3. Load prefs.toml and seed the initial theme, tone and render mode
//  4. Open the bbolt memory database under the data directory
//  5. Create the state.Store and a dispatcher with local tools rooted at the cwd
//  6. Create the accessibility bridge with a flat Tree visitor
//
// Serve and Run start the services inside one errgroup. The first service
// to fail cancels the others.
//
// # Components
//
//   - app.go: Options, Runtime, Open, Serve and Run
//   - exporter.go: Revision-driven loop that publishes the current view
//
// # Data Flow
//
//	┌──────────────┐
//	│   Open()     │ Build the runtime
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()      Read config.toml
//	       ├─────> prefs.Load()       Seed appearance
//	       ├─────> memory.Open()      bbolt records
//	       ├─────> dispatch.New()     Actions -> store, memory, tools
//	       └─────> a11y.NewBridge()   Accessibility tree
//
//	Services (errgroup):
//	┌─────────────────────────────────────────┐
//	│ exposure.Server   /schema /view /actions│
//	│ Exporter          store rev -> view JSON│
//	│ transcript.Watch  new actions -> dispatch│
//	│ ui.Run            preview (Run only)    │
//	└─────────────────────────────────────────┘
//
// # Export Behavior
//
// The exporter polls the store revision (default every 250ms). When it
// changes, the catalog screen is described, pushed through the
// accessibility bridge and written to current_view.json with a
// temp-file-and-rename so readers never see a partial file. Write failures
// back off exponentially up to 30 seconds and never stop the loop.
//
// # Error Handling
//
// Fatal errors (returned from Open, Serve or Run):
//   - Invalid configuration such as an unknown render_mode or locale
//   - Memory database that cannot be opened
//   - Exposure bind address that cannot be listened on
//   - Transcript directory that does not exist
//
// Recoverable errors (logged, services continue):
//   - View export failures
//   - Unreadable preferences, which degrade to defaults field by field
//   - Failed actions, which are recorded in the store and the activity log
//
// # Usage Example
//
//	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
//	defer cancel()
//
//	if err := app.Run(ctx, app.Options{TranscriptPath: "agent.log"}); err != nil {
//		log.Fatalf("facet failed: %v", err)
//	}
package app
