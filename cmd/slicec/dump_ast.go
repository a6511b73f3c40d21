package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/vmihailenco/msgpack/v5"

	"slicec/internal/ast"
	"slicec/internal/compiler"
	"slicec/internal/source"
)

var dumpASTOut string

func init() {
	dumpASTCmd.Flags().StringVarP(&dumpASTOut, "out", "o", "", "write the snapshot to this file instead of stdout")
}

var dumpASTCmd = &cobra.Command{
	Use:   "dump-ast [sources...]",
	Short: "Compile and serialize a flat AST snapshot for golden-file regression tests",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runDumpAST,
}

// nodeSnapshot is one definition's identity, independent of arena handle
// numbering, so two compiles of equivalent source produce byte-identical
// snapshots (ground: teacher's diag/golden.go golden-file idiom, applied
// here to AST shape instead of diagnostics).
type nodeSnapshot struct {
	Kind string `msgpack:"kind"`
	Name string `msgpack:"name"`
	File string `msgpack:"file"`
}

type snapshot struct {
	Definitions []nodeSnapshot `msgpack:"definitions"`
	Diagnostics int            `msgpack:"diagnostic_count"`
	HasErrors   bool           `msgpack:"has_errors"`
}

type collector struct {
	compiler.VisitorBase
	out []nodeSnapshot
}

func (c *collector) EnterModule(m *ast.Module)      { c.push("module", m.Identifier, m.Span) }
func (c *collector) EnterStruct(s *ast.Struct)       { c.push("struct", s.Identifier, s.Span) }
func (c *collector) EnterClass(cl *ast.Class)        { c.push("class", cl.Identifier, cl.Span) }
func (c *collector) EnterException(e *ast.Exception) { c.push("exception", e.Identifier, e.Span) }
func (c *collector) EnterInterface(i *ast.Interface) { c.push("interface", i.Identifier, i.Span) }
func (c *collector) EnterOperation(o *ast.Operation) { c.push("operation", o.Identifier, o.Span) }
func (c *collector) EnterField(f *ast.Field)         { c.push("field", f.Identifier, f.Span) }
func (c *collector) EnterEnum(e *ast.Enum)           { c.push("enum", e.Identifier, e.Span) }
func (c *collector) EnterEnumerator(e *ast.Enumerator) {
	c.push("enumerator", e.Identifier, e.Span)
}
func (c *collector) EnterCustomType(t *ast.CustomType) { c.push("custom_type", t.Identifier, t.Span) }
func (c *collector) EnterTypeAlias(t *ast.TypeAlias)   { c.push("type_alias", t.Identifier, t.Span) }

func (c *collector) push(kind, name string, span source.Span) {
	c.out = append(c.out, nodeSnapshot{Kind: kind, Name: name, File: span.String()})
}

func runDumpAST(cmd *cobra.Command, args []string) error {
	data, compileErr := compiler.Compile(cmd.Context(), compiler.Options{Sources: args})

	c := &collector{}
	data.VisitWith(c)

	snap := snapshot{
		Definitions: c.out,
		Diagnostics: data.Diags.Len(),
		HasErrors:   data.Diags.HasErrors(),
	}

	encoded, err := msgpack.Marshal(snap)
	if err != nil {
		return fmt.Errorf("dump-ast: encode snapshot: %w", err)
	}

	if dumpASTOut == "" {
		_, err = cmd.OutOrStdout().Write(encoded)
		return err
	}
	if err := os.WriteFile(dumpASTOut, encoded, 0o644); err != nil {
		return fmt.Errorf("dump-ast: write %q: %w", dumpASTOut, err)
	}

	if compileErr != nil {
		return compileErr
	}
	return nil
}
