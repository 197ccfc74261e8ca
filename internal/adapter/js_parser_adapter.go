package adapter

import (
	"context"
	"fmt"
	"log/slog"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"
	m "unitgen.dev/pkg/unitgen/internal/model"
)

// JSParserAdapter turns JavaScript source text into a syntax tree. Every
// analysis stage consumes the tree it returns.
type JSParserAdapter interface {
	// Parse builds a tree for src. Source with syntax errors fails with an
	// error wrapping model.ErrParse; the caller owns the returned tree and
	// must Close it.
	Parse(ctx context.Context, src []byte) (*sitter.Tree, error)
}

// TreeSitterJSParserAdapter is a JSParserAdapter backed by tree-sitter's
// JavaScript grammar.
type TreeSitterJSParserAdapter struct {
	language *sitter.Language
}

// NewTreeSitterJSParserAdapter constructs a TreeSitterJSParserAdapter.
func NewTreeSitterJSParserAdapter() *TreeSitterJSParserAdapter {
	return &TreeSitterJSParserAdapter{
		language: javascript.GetLanguage(),
	}
}

// Parse builds a tree for src with a fresh parser per call; tree-sitter
// parsers are not safe for concurrent use.
func (a *TreeSitterJSParserAdapter) Parse(ctx context.Context, src []byte) (*sitter.Tree, error) {
	parser := sitter.NewParser()
	defer parser.Close()

	parser.SetLanguage(a.language)

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		slog.Error("Failed to parse source", "error", err)
		return nil, fmt.Errorf("%w: %w", m.ErrParse, err)
	}

	root := tree.RootNode()
	if root.HasError() {
		defer tree.Close()

		if bad := firstErrorNode(root); bad != nil {
			point := bad.StartPoint()
			return nil, fmt.Errorf("%w: syntax error at line %d, column %d", m.ErrParse, point.Row+1, point.Column+1)
		}

		return nil, fmt.Errorf("%w: syntax error", m.ErrParse)
	}

	return tree, nil
}

const errorNodeType = "ERROR"

func firstErrorNode(node *sitter.Node) *sitter.Node {
	if node == nil {
		return nil
	}

	if node.Type() == errorNodeType || node.IsMissing() {
		return node
	}

	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		if child == nil || !child.HasError() && !child.IsMissing() {
			continue
		}

		if found := firstErrorNode(child); found != nil {
			return found
		}
	}

	return nil
}
