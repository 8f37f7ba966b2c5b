// Package config handles loading and parsing the facet configuration file.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/facet/config.toml (default)
//  3. If the config file doesn't exist, fall back to hardcoded defaults
//  4. If the file exists but fields are missing/empty, use defaults
//
// # Default Values
//
//   - Exposure API: 127.0.0.1:8081
//   - Data directory: ~/.local/share/facet
//   - Memory database: <data_dir>/memory.db
//   - Exported view: <data_dir>/current_view.json
//   - Log file: <data_dir>/facet.log
//   - Log level: info
//   - Accessibility bridge: enabled
//   - Render mode: Terminal
//   - Locale: en
//   - Viewport: 1280x800
//
// # TOML Format
//
//	exposure_bind = "127.0.0.1:8081"
//	data_dir = "~/.local/share/facet"
//	log_level = "debug"
//	accessibility = false
//	render_mode = "Neural"
//	locale = "de-DE"
//	width = 800
//
// Every field is optional. Tilde expansion is performed on paths. An unknown
// render mode or malformed locale is a parse error rather than a silent
// default.
package config
