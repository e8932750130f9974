// Package pysrc loads a Python source file and lowers its definitions into
// plain line-addressed values. The cgo tree lives only for the duration of
// a Load; everything downstream works on the lowered values.
package pysrc

import (
	"fmt"
	"os"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_python "github.com/tree-sitter/tree-sitter-python/bindings/go"

	"docdrift/internal/model"
)

// File is a one-time snapshot of a parsed source file. It is never
// refreshed; construct a new one to see later edits.
type File struct {
	Path string
	defs []model.Definition
}

// Definitions returns every function/async-function/class definition in
// source order, across all nesting levels.
func (f *File) Definitions() []model.Definition {
	out := make([]model.Definition, len(f.defs))
	copy(out, f.defs)
	return out
}

func Load(path string) (*File, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, err
	}
	return Parse(path, src)
}

func Parse(path string, src []byte) (*File, error) {
	parser := tree_sitter.NewParser()
	defer parser.Close()

	lang := tree_sitter.NewLanguage(tree_sitter_python.Language())
	if err := parser.SetLanguage(lang); err != nil {
		return nil, err
	}

	tree := parser.Parse(src, nil)
	if tree == nil {
		return nil, fmt.Errorf("%w: %s", ErrParse, path)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root == nil || root.Kind() != "module" || root.HasError() {
		return nil, fmt.Errorf("%w: %s", ErrParse, path)
	}

	f := &File{Path: path}
	f.defs = lowerModule(root, src)
	return f, nil
}
