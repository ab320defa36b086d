// Package templgen compiles .templ sources with the templ generator
// library, so code generation needs no templ binary on PATH.
package templgen

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/a-h/templ/generator"
	"github.com/a-h/templ/parser/v2"
)

type Config struct {
	Files    []string
	Paths    []string
	BasePath string

	// Check compares generated output with the files on disk and writes
	// nothing.
	Check bool
}

type Result struct {
	// Written lists targets that were created or changed.
	Written []string
	// Stale lists targets whose content differs from the generator output.
	// Only filled in check mode.
	Stale []string
}

func Run(cfg Config) (Result, error) {
	basePath := strings.TrimSpace(cfg.BasePath)
	if basePath == "" {
		basePath = "."
	}

	resolvedFiles, err := collectFiles(cfg.Files, cfg.Paths)
	if err != nil {
		return Result{}, err
	}
	if len(resolvedFiles) == 0 {
		return Result{}, errors.New("no templ files found")
	}

	baseAbs, err := filepath.Abs(basePath)
	if err != nil {
		return Result{}, fmt.Errorf("resolve base path %q: %w", basePath, err)
	}

	var result Result
	for _, fileName := range resolvedFiles {
		target, generated, err := generateFile(fileName, baseAbs)
		if err != nil {
			return Result{}, err
		}

		existing, readErr := os.ReadFile(target)
		if readErr == nil && bytes.Equal(existing, generated) {
			continue
		}
		if readErr != nil && !errors.Is(readErr, fs.ErrNotExist) {
			return Result{}, fmt.Errorf("read %q: %w", target, readErr)
		}

		if cfg.Check {
			result.Stale = append(result.Stale, target)
			continue
		}
		if err := os.WriteFile(target, generated, 0o644); err != nil {
			return Result{}, fmt.Errorf("write %q: %w", target, err)
		}
		result.Written = append(result.Written, target)
	}

	return result, nil
}

func collectFiles(files []string, paths []string) ([]string, error) {
	seen := make(map[string]struct{})
	all := make([]string, 0, len(files)+8)

	for _, fileName := range files {
		absPath, err := filepath.Abs(fileName)
		if err != nil {
			return nil, fmt.Errorf("resolve file %q: %w", fileName, err)
		}
		if filepath.Ext(absPath) != ".templ" {
			return nil, fmt.Errorf("file %q must have .templ extension", fileName)
		}
		if _, ok := seen[absPath]; ok {
			continue
		}
		seen[absPath] = struct{}{}
		all = append(all, absPath)
	}

	for _, root := range paths {
		rootAbs, err := filepath.Abs(root)
		if err != nil {
			return nil, fmt.Errorf("resolve path %q: %w", root, err)
		}
		walkErr := filepath.WalkDir(rootAbs, func(filePath string, entry fs.DirEntry, walkErr error) error {
			if walkErr != nil {
				return walkErr
			}
			if entry.IsDir() {
				return nil
			}
			if filepath.Ext(filePath) != ".templ" {
				return nil
			}
			absPath, err := filepath.Abs(filePath)
			if err != nil {
				return err
			}
			if _, ok := seen[absPath]; ok {
				return nil
			}
			seen[absPath] = struct{}{}
			all = append(all, absPath)
			return nil
		})
		if walkErr != nil {
			return nil, fmt.Errorf("walk path %q: %w", root, walkErr)
		}
	}

	sort.Strings(all)
	return all, nil
}

func generateFile(fileName string, baseAbs string) (string, []byte, error) {
	t, err := parser.Parse(fileName)
	if err != nil {
		return "", nil, fmt.Errorf("parse %q: %w", fileName, err)
	}

	relFileName, err := filepath.Rel(baseAbs, fileName)
	if err != nil {
		return "", nil, fmt.Errorf("compute relative filename for %q: %w", fileName, err)
	}
	relFileName = filepath.ToSlash(relFileName)

	var output bytes.Buffer
	_, err = generator.Generate(t, &output, generator.WithFileName(relFileName))
	if err != nil {
		return "", nil, fmt.Errorf("generate %q: %w", fileName, err)
	}

	formatted, err := format.Source(output.Bytes())
	if err != nil {
		return "", nil, fmt.Errorf("format generated output for %q: %w", fileName, err)
	}

	return strings.TrimSuffix(fileName, ".templ") + "_templ.go", formatted, nil
}
