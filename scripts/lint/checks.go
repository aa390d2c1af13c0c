// If you are AI: This file implements the convention checks run by the lint script.

package main

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Check walks root and returns one message per violation.
// Directories starting with "_" or "." are skipped, as the go tool does.
func Check(root string, maxLines int) ([]string, error) {
	var failures []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			name := d.Name()
			if path != root && (strings.HasPrefix(name, "_") || strings.HasPrefix(name, ".") ||
				name == "vendor" || name == "testdata") {
				return filepath.SkipDir
			}
			return nil
		}

		// Only check Go source files
		if !strings.HasSuffix(path, ".go") {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		failures = append(failures, checkLines(path, data, maxLines)...)

		// Test files may omit headers and comments
		if !strings.HasSuffix(path, "_test.go") {
			failures = append(failures, checkComments(path, data)...)
		}
		return nil
	})
	return failures, err
}

// checkLines reports a file longer than maxLines.
func checkLines(path string, data []byte, maxLines int) []string {
	lines := strings.Count(string(data), "\n")
	if lines > maxLines {
		return []string{fmt.Sprintf("%s: %d lines (max %d)", path, lines, maxLines)}
	}
	return nil
}

// checkComments reports a missing AI header and functions without a doc comment.
func checkComments(path string, data []byte) []string {
	var failures []string
	if !strings.Contains(string(data), "If you are AI:") {
		failures = append(failures, fmt.Sprintf("%s: missing 'If you are AI:' header", path))
	}

	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, path, data, parser.ParseComments)
	if err != nil {
		// Skip files that don't parse (might be generated)
		return failures
	}

	for _, decl := range f.Decls {
		fn, ok := decl.(*ast.FuncDecl)
		if !ok {
			continue
		}
		if fn.Doc == nil || len(fn.Doc.List) == 0 {
			pos := fset.Position(fn.Pos())
			failures = append(failures, fmt.Sprintf("%s:%d: function %s missing comment", path, pos.Line, fn.Name.Name))
		}
	}
	return failures
}
