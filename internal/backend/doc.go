// Package backend defines the capability surface that turns a view tree into
// a concrete output.
//
// # Overview
//
// Backend[M, R] has one method per renderable primitive. M is the message
// type an application uses for callbacks; R is whatever the backend produces.
// Four implementations live in subpackages:
//
//   - term: ANSI strings for terminals
//   - ai: semantic.Node trees for agents
//   - spatial: 3D node graphs with hit testing
//   - canvas: a retained scene graph that owns full styling
//
// # Contract
//
// Methods receive already rendered children, typed parameters and the
// rendering style.Context. They never block, never mutate shared state and
// never panic on zero-valued parameters. When a primitive has no meaningful
// rendition in a target the method returns the closest empty value: an empty
// string, an empty node, a zero sized spatial node.
//
// # Messages
//
// Interactive parameters carry messages as *M (absent when nil) or as
// functions producing M. Backends that can deliver input, such as the
// spatial and canvas graphs, keep them on their nodes and hand them to a
// Sink when an interaction is resolved.
package backend
