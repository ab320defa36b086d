package templgen

import (
	"os"
	"path/filepath"
	"testing"
)

const helloTempl = "package sample\n\ntempl Hello(name string) { <div>hello { name }</div> }\n"

func TestRunGeneratesOutputFromPath(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	sourcePath := filepath.Join(root, "hello.templ")
	writeTestFile(t, sourcePath, helloTempl)

	result, err := Run(Config{
		Paths:    []string{root},
		BasePath: root,
	})
	if err != nil {
		t.Fatalf("run templgen: %v", err)
	}

	generatedPath := filepath.Join(root, "hello_templ.go")
	if _, statErr := os.Stat(generatedPath); statErr != nil {
		t.Fatalf("expected generated file %q: %v", generatedPath, statErr)
	}
	if len(result.Written) != 1 || result.Written[0] != generatedPath {
		t.Fatalf("expected %q to be reported written, got %v", generatedPath, result.Written)
	}
}

func TestRunSkipsUnchangedOutput(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeTestFile(t, filepath.Join(root, "hello.templ"), helloTempl)

	if _, err := Run(Config{Paths: []string{root}, BasePath: root}); err != nil {
		t.Fatalf("first run: %v", err)
	}
	result, err := Run(Config{Paths: []string{root}, BasePath: root})
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if len(result.Written) != 0 {
		t.Fatalf("expected nothing written on second run, got %v", result.Written)
	}
}

func TestRunCheckReportsStaleWithoutWriting(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	sourcePath := filepath.Join(root, "hello.templ")
	generatedPath := filepath.Join(root, "hello_templ.go")
	writeTestFile(t, sourcePath, helloTempl)
	writeTestFile(t, generatedPath, "package sample\n")

	result, err := Run(Config{
		Files:    []string{sourcePath},
		BasePath: root,
		Check:    true,
	})
	if err != nil {
		t.Fatalf("run templgen: %v", err)
	}
	if len(result.Stale) != 1 || result.Stale[0] != generatedPath {
		t.Fatalf("expected %q to be stale, got %v", generatedPath, result.Stale)
	}

	content, err := os.ReadFile(generatedPath)
	if err != nil {
		t.Fatalf("read generated file: %v", err)
	}
	if string(content) != "package sample\n" {
		t.Fatal("check mode must not rewrite generated files")
	}
}

func TestRunRejectsNonTemplFile(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	sourcePath := filepath.Join(root, "hello.go")
	writeTestFile(t, sourcePath, "package sample\n")

	if _, err := Run(Config{Files: []string{sourcePath}, BasePath: root}); err == nil {
		t.Fatal("expected extension error")
	}
}

func TestRunReturnsErrorForEmptySelection(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	_, err := Run(Config{
		BasePath: root,
	})
	if err == nil {
		t.Fatal("expected no templ files error")
	}
}

func writeTestFile(t *testing.T, filePath string, content string) {
	t.Helper()
	if err := os.WriteFile(filePath, []byte(content), 0o644); err != nil {
		t.Fatalf("write %q: %v", filePath, err)
	}
}
