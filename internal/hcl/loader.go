package hcl

import (
	"context"
	"errors"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/gridkata/internal/ctxlog"
	"github.com/specialistvlad/gridkata/internal/fsutil"
	"github.com/specialistvlad/gridkata/internal/puzzle"
)

// FileExtension is the suffix of puzzle files.
const FileExtension = ".hcl"

// ErrNoPuzzleFiles is returned when the given paths hold no puzzle files.
var ErrNoPuzzleFiles = errors.New("no " + FileExtension + " files found")

// Loader is the HCL implementation of puzzle.Loader.
type Loader struct{}

// NewLoader creates a new HCL puzzle loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses every .hcl file under paths and merges all declared puzzles
// into a single, validated set.
func (l *Loader) Load(ctx context.Context, paths ...string) (*puzzle.Set, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	files, err := fsutil.FindFilesByExtension(FileExtension, paths...)
	if err != nil {
		return nil, fmt.Errorf("failed to discover puzzle files: %w", err)
	}
	if len(files) == 0 {
		return nil, ErrNoPuzzleFiles
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	set := &puzzle.Set{}
	parser := hclparse.NewParser()

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root fileRoot
		if diags := gohcl.DecodeBody(hclFile.Body, nil, &root); diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		for _, b := range root.Trees {
			spec, err := l.translateTree(b)
			if err != nil {
				return nil, fmt.Errorf("tree %q in %s: %w", b.Name, file, err)
			}
			set.Trees = append(set.Trees, spec)
		}
		for _, b := range root.Grids {
			set.Grids = append(set.Grids, l.translateGrid(b))
		}
		for _, b := range root.Stairs {
			set.Stairs = append(set.Stairs, l.translateStairs(b))
		}
		logger.Debug("Decoded HCL file.", "file", file, "trees", len(root.Trees), "grids", len(root.Grids), "stairs", len(root.Stairs))
	}

	if err := set.Validate(); err != nil {
		return nil, err
	}

	logger.Debug("HCL loading complete.", "trees", len(set.Trees), "grids", len(set.Grids), "stairs", len(set.Stairs))
	return set, nil
}
