// Package project reads slice.toml, the project manifest the CLI driver
// consults for its default compile/reference/definition list (SPEC_FULL.md
// §5), grounded on the teacher's cmd/surge/project_manifest.go loader and
// internal/project/root.go directory-walk, adapted from surge.toml's
// [package]/[run] shape to Slice's [package]/[compile] shape.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

const NoManifestMessage = "no slice.toml found; pass explicit source files or create slice.toml"

// Manifest is the decoded contents of a slice.toml file plus the
// filesystem location it was loaded from.
type Manifest struct {
	Path string
	Root string
	Config
}

// Config is the TOML-decodable shape of slice.toml.
type Config struct {
	Package packageConfig `toml:"package"`
	Compile compileConfig `toml:"compile"`
}

type packageConfig struct {
	Name string `toml:"name"`
}

type compileConfig struct {
	Sources        []string `toml:"sources"`
	References     []string `toml:"references"`
	Definitions    []string `toml:"definitions"`
	WarnAsError    bool     `toml:"warn_as_error"`
	MaxDiagnostics int      `toml:"max_diagnostics"`
}

// FindManifest walks up from startDir looking for slice.toml, the same
// upward-search FindSurgeToml does in the teacher.
func FindManifest(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "slice.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load walks up from startDir and decodes the manifest it finds, if any.
// ok is false (with a nil error) when no slice.toml exists anywhere above
// startDir; ambiguous input is reported by the caller via NoManifestMessage.
func Load(startDir string) (*Manifest, bool, error) {
	path, ok, err := FindManifest(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	cfg, err := decode(path)
	if err != nil {
		return nil, true, err
	}
	return &Manifest{Path: path, Root: filepath.Dir(path), Config: cfg}, true, nil
}

func decode(path string) (Config, error) {
	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("package") || strings.TrimSpace(cfg.Package.Name) == "" {
		return Config{}, fmt.Errorf("%s: missing or empty [package].name", path)
	}
	if !meta.IsDefined("compile") || len(cfg.Compile.Sources) == 0 {
		return Config{}, fmt.Errorf("%s: missing [compile].sources", path)
	}
	return cfg, nil
}

// ResolvePaths rewrites every relative path in Compile against the
// manifest's directory, the same join-against-manifest-root the teacher's
// resolveProjectRunTarget performs for [run].main.
func (m *Manifest) ResolvePaths() (sources, references, definitions []string) {
	join := func(list []string) []string {
		out := make([]string, len(list))
		for i, p := range list {
			if filepath.IsAbs(p) {
				out[i] = p
			} else {
				out[i] = filepath.Join(m.Root, filepath.FromSlash(p))
			}
		}
		return out
	}
	return join(m.Compile.Sources), join(m.Compile.References), m.Compile.Definitions
}
