// Package semantic defines the tree every view can describe itself as.
//
// # Overview
//
// A Node is the dense, machine-readable form of one UI element. External
// agents read it to understand the screen, and the accessibility bridge maps
// it onto platform accessibility trees. The tree is built fresh on every
// describe pass and is never shared between passes.
//
// # Wire Format
//
// Nodes serialize with short keys:
//
//	r    role            l    label          c    content
//	ch   children        t    neural tag     d    documentation
//	a    accessibility   dis  disabled       hid  hidden
//	p    protected       pr   protection     z    depth
//	s    scale           col  color          id   identifier
//
// Every key except r is omitted when its value is empty, false or unset, so a
// bare node encodes as {"r":""}.
//
// # Invariants
//
//   - Children are stored in render order.
//   - A protected node always carries a non-empty protection reason.
//
// Validate reports violations of both, and Fingerprint hashes the RFC 8785
// canonical form so two describe passes can be compared cheaply.
package semantic
