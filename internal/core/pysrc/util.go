package pysrc

import (
	"strings"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"
)

// nodeLines converts a node's zero-based positions to 1-based start and end
// lines. A node ending at column 0 stops on the previous line.
func nodeLines(n *tree_sitter.Node) (start, end int) {
	if n == nil {
		return 0, 0
	}
	sp := n.StartPosition()
	ep := n.EndPosition()

	start = int(sp.Row) + 1
	end = int(ep.Row) + 1

	if ep.Column == 0 && end > start {
		end--
	}
	if end < start {
		end = start
	}
	return start, end
}

func trimNodeText(n *tree_sitter.Node, src []byte) string {
	if n == nil {
		return ""
	}
	return strings.TrimSpace(n.Utf8Text(src))
}
