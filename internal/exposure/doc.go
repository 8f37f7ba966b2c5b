// Package exposure publishes the running interface to agents over HTTP.
//
// The server answers:
//
//	GET  /schema        action variants, pages and render modes as JSON
//	GET  /instructions  the action protocol as Markdown
//	GET  /view          the current semantic tree in compact form
//	POST /actions       {"actions": [...]} validated, decoded and dispatched
//	POST /text          {"text": "..."} parsed for embedded actions
//
// Every response carries the protocol version in the X-Facet-Protocol
// header. Client wraps these endpoints and refuses servers whose major
// version differs from its own.
package exposure
