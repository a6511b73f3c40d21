package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"slicec/internal/compiler"
	"slicec/internal/diagfmt"
	"slicec/internal/project"
	"slicec/internal/trace"
	"slicec/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
)

var (
	compileReferences   []string
	compileDefines      []string
	compileWarnAsError  bool
	compileFormat       string
	compileDisableColor bool
	compileDryRun       bool
	compileOutputDir    string
	compileUIMode       string
)

func init() {
	compileCmd.Flags().StringArrayVarP(&compileReferences, "reference", "R", nil, "a reference file parsed for its definitions but not emitted")
	compileCmd.Flags().StringArrayVarP(&compileDefines, "define", "D", nil, "a preprocessor symbol to define")
	compileCmd.Flags().BoolVar(&compileWarnAsError, "warn-as-error", false, "treat warnings as errors")
	compileCmd.Flags().StringVar(&compileFormat, "diagnostic-format", "pretty", "diagnostic output format (pretty|json)")
	compileCmd.Flags().BoolVar(&compileDisableColor, "disable-color", false, "disable colored diagnostic output")
	compileCmd.Flags().BoolVar(&compileDryRun, "dry-run", false, "run the pipeline and report diagnostics without any further output")
	compileCmd.Flags().StringVar(&compileOutputDir, "output-dir", "", "directory a code generator would write to (accepted for CLI-surface parity; CORE has no generator)")
	compileCmd.Flags().StringVar(&compileUIMode, "ui", "auto", "progress UI mode (auto|on|off)")
}

var compileCmd = &cobra.Command{
	Use:   "compile [sources...]",
	Short: "Compile Slice source files and report diagnostics",
	RunE:  runCompile,
}

func runCompile(cmd *cobra.Command, args []string) error {
	sources := args
	references := compileReferences
	defines := compileDefines
	warnAsError := compileWarnAsError

	if len(sources) == 0 {
		manifest, ok, err := project.Load(".")
		if err != nil {
			return err
		}
		if !ok {
			return errors.New(project.NoManifestMessage)
		}
		srcs, refs, defs := manifest.ResolvePaths()
		sources = srcs
		references = append(references, refs...)
		defines = append(defines, defs...)
		warnAsError = warnAsError || manifest.Compile.WarnAsError
	}

	timer := &trace.Timer{}
	var events chan compiler.Event
	var program *tea.Program
	if wantUI() {
		events = make(chan compiler.Event, 64)
		program = tea.NewProgram(ui.NewProgressModel("slicec compile", sources, events))
	}

	opts := compiler.Options{
		Sources:     sources,
		References:  references,
		Definitions: defines,
		WarnAsError: warnAsError,
		Trace:       timer,
		Events:      events,
	}

	var data *compiler.CompilationData
	var compileErr error
	done := make(chan struct{})
	go func() {
		defer close(done)
		data, compileErr = compiler.Compile(cmd.Context(), opts)
		if events != nil {
			close(events)
		}
	}()
	if program != nil {
		if _, err := program.Run(); err != nil {
			return fmt.Errorf("progress UI failed: %w", err)
		}
	}
	<-done

	data.Diags.Sort()

	showTimings, _ := cmd.Root().PersistentFlags().GetBool("timings")
	colorMode, _ := cmd.Root().PersistentFlags().GetString("color")

	if !compileDryRun {
		useColor := resolveColor(colorMode, compileDisableColor)
		switch compileFormat {
		case "pretty":
			diagfmt.Pretty(cmd.OutOrStdout(), data.Diags, data.Files, diagfmt.PrettyOpts{
				Color: useColor, Context: 1, PathMode: diagfmt.PathModeAuto, ShowNotes: true,
			})
		case "json":
			if err := diagfmt.JSON(cmd.OutOrStdout(), data.Diags, data.Files, diagfmt.JSONOpts{
				PathMode: diagfmt.PathModeAuto, IncludeNotes: true,
			}); err != nil {
				return err
			}
		default:
			return fmt.Errorf("unsupported diagnostic format %q (must be pretty or json)", compileFormat)
		}
	}

	if showTimings {
		fmt.Fprint(cmd.ErrOrStderr(), timer.Summary())
	}

	if compileErr != nil {
		return compileErr
	}
	return nil
}

func resolveColor(mode string, disable bool) bool {
	if disable {
		return false
	}
	switch mode {
	case "on":
		return true
	case "off":
		return false
	default:
		return isatty.IsTerminal(os.Stdout.Fd())
	}
}

func wantUI() bool {
	switch compileUIMode {
	case "on":
		return true
	case "off":
		return false
	default: // "auto"
		return isatty.IsTerminal(os.Stdout.Fd())
	}
}
