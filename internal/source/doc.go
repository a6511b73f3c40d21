// Package source holds the immutable text buffers the rest of the
// compiler reads from.
// Invariants:
//   - File.Content is never mutated after Add/Load returns.
//   - File.LineIdx holds the byte offset of every '\n' in Content, in order.
//   - Span.File/Start/End always index into a File that belongs to the same FileSet.
package source
