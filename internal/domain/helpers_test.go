package domain

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/stretchr/testify/require"
	"unitgen.dev/pkg/unitgen/internal/adapter"
)

func parseSource(t *testing.T, src string) (*sitter.Node, []byte) {
	t.Helper()

	tree, err := adapter.NewTreeSitterJSParserAdapter().Parse(context.Background(), []byte(src))
	require.NoError(t, err)
	t.Cleanup(tree.Close)

	return tree.RootNode(), []byte(src)
}

func readExample(t *testing.T, parts ...string) []byte {
	t.Helper()

	path := filepath.Join(append([]string{"..", "..", "examples"}, parts...)...)

	src, err := os.ReadFile(path)
	require.NoError(t, err, "reading fixture %s", path)

	return src
}

func findFunction(t *testing.T, root *sitter.Node, src []byte, name string) *sitter.Node {
	t.Helper()

	var found *sitter.Node

	Walk(root, VisitorFunc(func(node *sitter.Node) VisitDecision {
		if isFunctionDeclaration(node) && text(node.ChildByFieldName("name"), src) == name {
			found = node
			return StopWalk
		}

		return VisitChildren
	}))

	require.NotNil(t, found, "function %s not found", name)

	return found
}
