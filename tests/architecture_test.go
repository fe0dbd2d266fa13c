package architecture_test

import (
	"go/parser"
	"go/token"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const projectImportPath = "github.com/kruglovma/sklad"

// Layer rules, hexagonal layout:
//   - core/domain imports nothing from the project
//   - core/port may import domain and its own mocks
//   - the rest of core stays inside core
//   - the http adapter may only reach other adapters through adapters/config
//   - the client package may import core but never adapters
func TestArchitecturalRules(t *testing.T) {
	projectRoot, err := findProjectRoot()
	if err != nil {
		t.Fatal("failed to find project root:", err)
	}

	err = filepath.WalkDir(projectRoot, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			if entry.Name() == "_examples" || strings.HasPrefix(entry.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return nil
		}

		fset := token.NewFileSet()
		node, err := parser.ParseFile(fset, path, nil, parser.ImportsOnly)
		if err != nil {
			t.Errorf("failed to parse %s: %v", path, err)
			return nil
		}

		relPath, err := filepath.Rel(projectRoot, path)
		if err != nil {
			return err
		}
		relPath = strings.ReplaceAll(relPath, "\\", "/")

		for _, imp := range node.Imports {
			importPath := strings.Trim(imp.Path.Value, "\"")
			if isViolation(relPath, importPath) {
				position := fset.Position(imp.Pos())
				t.Errorf("architecture violation at %v: %s imports %s", position, relPath, importPath)
			}
		}
		return nil
	})
	if err != nil {
		t.Fatal("failed to walk project files:", err)
	}
}

func isViolation(filePath, importPath string) bool {
	if !strings.Contains(importPath, projectImportPath) {
		return false
	}

	internalImportPath := strings.TrimPrefix(importPath, projectImportPath)
	if !strings.HasPrefix(internalImportPath, "/") {
		internalImportPath = "/" + internalImportPath
	}

	allowed := func(prefixes ...string) bool {
		for _, prefix := range prefixes {
			if strings.Contains(internalImportPath, prefix) {
				return true
			}
		}
		return false
	}

	switch {
	case strings.Contains(filePath, "/core/domain"):
		return !allowed("/core/domain")

	case strings.Contains(filePath, "/core/port"):
		return !allowed("/core/domain", "/core/port")

	case strings.Contains(filePath, "/core"):
		return !allowed("/core")

	case strings.Contains(filePath, "/adapters/http"):
		if strings.Contains(internalImportPath, "/adapters") {
			return !allowed("/adapters/config", "/adapters/http")
		}
		return false

	case strings.Contains(filePath, "internal/client"):
		return strings.Contains(internalImportPath, "/adapters")
	}

	return false
}

func findProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", os.ErrNotExist
		}
		dir = parent
	}
}
