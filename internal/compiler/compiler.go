// Package compiler orchestrates the front-end pipeline (spec.md §2) over a
// set of input files: intake, preprocessing, parsing, scope indexing,
// reference patching, cycle detection, encoding feasibility, and
// validation, in that fixed order, producing one CompilationData.
package compiler

import (
	"context"
	"fmt"

	"slicec/internal/ast"
	"slicec/internal/cycle"
	"slicec/internal/diag"
	"slicec/internal/encoding"
	"slicec/internal/lexer"
	"slicec/internal/parser"
	"slicec/internal/preproc"
	"slicec/internal/resolver"
	"slicec/internal/source"
	"slicec/internal/symbols"
	"slicec/internal/trace"
	"slicec/internal/validate"
)

// Options configures a single Compile call (spec.md §6.1's CLI surface,
// minus the driver-owned concerns of output directory and diagnostic
// rendering format).
type Options struct {
	// Sources are compiled and, in a full toolchain, handed to a code
	// generator; References are parsed into the same symbol space so their
	// definitions are visible to Sources, but are not themselves emitted.
	Sources    []string
	References []string

	BaseDir        string
	Definitions    []string
	WarnAsError    bool
	MaxDiagnostics int

	// Trace, if non-nil, is given one Begin call per pipeline stage
	// (internal/trace); the CLI driver's --timings flag reads it back
	// via Timer.Summary after Compile returns.
	Trace *trace.Timer

	// Events, if non-nil, receives progress notifications for a UI to
	// drive (internal/ui); Compile never blocks on a full channel.
	Events chan<- Event
}

func (o *Options) beginPhase(name string) func() {
	if o.Trace == nil {
		return func() {}
	}
	return o.Trace.Begin(name)
}

// Compile runs the full pipeline and returns a *CompilationData that is
// never nil, even when err is non-nil: a caller can always render whatever
// diagnostics were collected, per spec.md §6.2 and §7's propagation policy.
func Compile(ctx context.Context, opts Options) (*CompilationData, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	files := source.NewFileSetWithBase(opts.BaseDir)
	maxDiags := opts.MaxDiagnostics
	if maxDiags <= 0 {
		maxDiags = 10000
	}
	bag := diag.NewBag(maxDiags)
	data := &CompilationData{AST: nil, Files: files, Diags: bag}

	if len(opts.Sources) == 0 && len(opts.References) == 0 {
		data.AST = ast.NewStore(nil)
		return data, fmt.Errorf("compiler: no input files")
	}

	interner := source.NewInterner()
	store := ast.NewStore(interner)
	scopes := symbols.NewScopes(64)
	reporter := &diag.BagReporter{Bag: bag}

	paths := make([]string, 0, len(opts.Sources)+len(opts.References))
	paths = append(paths, opts.Sources...)
	paths = append(paths, opts.References...)

	func() {
		end := opts.beginPhase("parse")
		defer end()
		for _, path := range paths {
			if err := ctx.Err(); err != nil {
				return
			}
			emit(opts.Events, Event{Stage: "parse", File: path, Status: StatusWorking})
			fileID, err := files.Load(path)
			if err != nil {
				emit(opts.Events, Event{Stage: "parse", File: path, Status: StatusError})
				diag.ReportError(reporter, diag.IoFileNotFound, source.Span{},
					fmt.Sprintf("cannot read %q: %v", path, err)).Emit()
				continue
			}
			parseFile(fileID, files, store, scopes, opts.Definitions, reporter)
			emit(opts.Events, Event{Stage: "parse", File: path, Status: StatusDone})
		}
	}()
	if err := ctx.Err(); err != nil {
		data.AST = store
		return data, err
	}

	table := symbols.NewTable(symbols.Hints{Scopes: 64}, interner, store)
	for _, stage := range []string{"index", "resolve", "cycle", "encoding", "validate"} {
		emit(opts.Events, Event{Stage: stage, Status: StatusQueued})
	}

	func() {
		emit(opts.Events, Event{Stage: "index", Status: StatusWorking})
		end := opts.beginPhase("index")
		defer end()
		table.Index(store, reporter)
		emit(opts.Events, Event{Stage: "index", Status: StatusDone})
	}()
	func() {
		emit(opts.Events, Event{Stage: "resolve", Status: StatusWorking})
		end := opts.beginPhase("resolve")
		defer end()
		resolver.Patch(store, table, reporter)
		emit(opts.Events, Event{Stage: "resolve", Status: StatusDone})
	}()

	func() {
		emit(opts.Events, Event{Stage: "cycle", Status: StatusWorking})
		end := opts.beginPhase("cycle")
		defer end()
		cycle.Detect(store, reporter)
		emit(opts.Events, Event{Stage: "cycle", Status: StatusDone})
	}()
	if !bag.HasErrors() {
		emit(opts.Events, Event{Stage: "encoding", Status: StatusWorking})
		end := opts.beginPhase("encoding")
		encoding.Patch(store)
		for _, unit := range store.Units {
			encoding.CheckFile(store, unit, reporter)
		}
		end()
		emit(opts.Events, Event{Stage: "encoding", Status: StatusDone})
	}
	store.Freeze()

	func() {
		emit(opts.Events, Event{Stage: "validate", Status: StatusWorking})
		end := opts.beginPhase("validate")
		defer end()
		validate.Run(store, reporter)
		emit(opts.Events, Event{Stage: "validate", Status: StatusDone})
	}()

	data.AST = store
	data.table = table

	if bag.HasErrors() || (opts.WarnAsError && bag.HasWarnings()) {
		return data, fmt.Errorf("compiler: compilation reported diagnostics")
	}
	return data, nil
}

// parseFile lexes, preprocesses, and parses one file into store. It is
// sequential by design: the parser and the arena it fills are not
// concurrency-safe, since every ParseFile call threads the same scope
// stack through symbols.Scopes. Concurrent multi-file intake (spec.md §5's
// "parallelism across independent compilation units is safe") applies
// across separate Compile calls, each owning its own Store, not across
// files within one call sharing a single process-local arena (spec.md
// §3.1).
func parseFile(fileID source.FileID, files *source.FileSet, store *ast.Store, scopes *symbols.Scopes, defines []string, reporter diag.Reporter) {
	f := files.Get(fileID)
	lx := lexer.New(f, lexer.Options{Reporter: reporter})
	stream := preproc.New(lx, preproc.NewDefines(defines...), reporter)
	parser.ParseFile(fileID, stream, store, scopes, parser.Options{Reporter: reporter})
}
