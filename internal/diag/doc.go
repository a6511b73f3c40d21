// Package diag defines the core diagnostic model shared by all pipeline phases.
//
// # Purpose
//
//   - Provide deterministic, serialisable data structures that capture findings
//     produced by the lexer, preprocessor, parser, resolver and validator passes.
//   - Offer light-weight utilities (Reporter, Bag) that let producers emit
//     diagnostics without coupling to concrete storage or formatting layers.
//   - Model the @allow suppression mechanism so validators can skip emitting a
//     diagnostic for a code explicitly silenced on its target entity.
//
// # Scope
//
// Package diag does not perform any formatting, IO, or CLI integration.
// Rendering responsibilities live in internal/diagfmt; orchestration across
// files lives in internal/compiler.
//
// # Data model
//
// Diagnostic is the central record. It contains:
//
//   - Severity – tri-level enum (Info, Warning, Error) defined in severity.go.
//   - Code – compact numeric identifier (see codes.go) with a stable string form.
//   - Message – human oriented text; keep it short and actionable.
//   - Primary span – the canonical source.Span pointing to the issue.
//   - Notes – optional secondary spans/messages for additional context.
//
// Notes should be used sparingly: each note must add new context (e.g. "first
// defined here") rather than repeating the diagnostic message.
//
// # Emitting diagnostics
//
// Phases use a diag.Reporter to decouple emission from storage. Code
// constructs a ReportBuilder via NewReportBuilder (or the helper functions
// ReportError/ReportWarning/ReportInfo), chains WithNote, then calls Emit.
//
// When no additional metadata is needed, phases may call Reporter.Report(...)
// directly. diag.BagReporter aggregates diagnostics into a Bag, which
// supports sorting, deduplication, filtering, and transformation.
//
// # Consumers
//
//   - internal/diagfmt: renders Diagnostics into pretty/json formats (its
//     Sarif entry point writes nothing).
//   - internal/compiler: coordinates bag collection per file and exposes the
//     combined CompilationData to callers.
//
// Keep the data model deterministic: any new fields should honour the
// package's layering constraints and avoid side effects.
package diag
