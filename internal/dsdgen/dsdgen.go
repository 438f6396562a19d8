// Package dsdgen wraps the official TPC-DS toolkit binaries for users who
// have the kit built locally. The synthetic generator covers development and
// testing; dsdgen remains the source of spec-compliant data at audit scale.
package dsdgen

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
)

// Kit points at a directory containing the built dsdgen and dsqgen binaries
// alongside their idx and template files.
type Kit struct {
	Path string
}

var commonKitDirs = []string{
	"/opt/tpcds-kit/tools",
	"/usr/local/tpcds-kit/tools",
	"/usr/local/share/tpcds-kit/tools",
}

// Locate finds the toolkit. The configured path wins; otherwise common
// install locations and PATH are tried in order.
func Locate(configured string) (*Kit, error) {
	var candidates []string
	if configured != "" {
		candidates = append(candidates, configured)
	}
	candidates = append(candidates, commonKitDirs...)
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, "tpcds-kit", "tools"))
	}

	for _, dir := range candidates {
		if hasBinary(dir, "dsdgen") {
			return &Kit{Path: dir}, nil
		}
	}
	if path, err := exec.LookPath("dsdgen"); err == nil {
		return &Kit{Path: filepath.Dir(path)}, nil
	}
	return nil, fmt.Errorf("dsdgen not found; set kit_path or install the TPC-DS kit")
}

func hasBinary(dir, name string) bool {
	st, err := os.Stat(filepath.Join(dir, name))
	return err == nil && !st.IsDir() && st.Mode()&0o111 != 0
}

// GenerateData runs dsdgen for the given scale. The command runs from the
// kit directory because dsdgen resolves tpcds.idx relative to its working
// directory.
func (k *Kit) GenerateData(ctx context.Context, scale int, outputDir string) error {
	if scale < 1 {
		return fmt.Errorf("dsdgen requires a scale factor of at least 1, got %d", scale)
	}
	absOut, err := filepath.Abs(outputDir)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(absOut, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	cmd := exec.CommandContext(ctx, filepath.Join(k.Path, "dsdgen"),
		"-scale", strconv.Itoa(scale),
		"-dir", absOut,
		"-force", "Y",
	)
	cmd.Dir = k.Path
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("dsdgen failed: %w\n%s", err, out)
	}

	files, err := filepath.Glob(filepath.Join(absOut, "*.dat"))
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("dsdgen reported success but wrote no .dat files to %s", absOut)
	}
	return nil
}

// GenerateQueries runs dsqgen over the standard template set.
func (k *Kit) GenerateQueries(ctx context.Context, scale int, outputDir, dialect string) error {
	if scale < 1 {
		return fmt.Errorf("dsqgen requires a scale factor of at least 1, got %d", scale)
	}
	if dialect == "" {
		dialect = "netezza"
	}
	absOut, err := filepath.Abs(outputDir)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(absOut, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	templateDir := filepath.Join(k.Path, "..", "query_templates")
	cmd := exec.CommandContext(ctx, filepath.Join(k.Path, "dsqgen"),
		"-directory", templateDir,
		"-input", filepath.Join(templateDir, "templates.lst"),
		"-scale", strconv.Itoa(scale),
		"-dialect", dialect,
		"-output_dir", absOut,
	)
	cmd.Dir = k.Path
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("dsqgen failed: %w\n%s", err, out)
	}
	return nil
}
