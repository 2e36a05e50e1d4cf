package driver

import (
	"fmt"
	"slices"

	"github.com/qtyi/luna-sub005/internal/source"
	"github.com/qtyi/luna-sub005/internal/syntax"
	"github.com/qtyi/luna-sub005/internal/tree"
)

// FmtCheckResult описывает результат round-trip проверки одного файла.
type FmtCheckResult struct {
	OK      bool
	Message string
	// Offset of the first differing byte when printing is not lossless, else -1.
	Offset int
}

// RunFmtCheck parses the file, prints the tree back, and verifies that the
// printed text equals the input byte for byte. The printed text is then
// re-parsed and the pre-order sequences of node kinds must match.
// Syntax errors do not fail the check: a tree with missing and skipped
// tokens must round-trip too.
func RunFmtCheck(sf *source.File, opts Options) FmtCheckResult {
	first, _ := parseFile(sf, opts)

	done := opts.Timer.Track("format")
	out := tree.FullText(first.Root)
	done("")

	if at := firstDifference(out, sf.Content); at >= 0 {
		return FmtCheckResult{
			Message: fmt.Sprintf("fmt-check: printed tree differs from input at byte %d", at),
			Offset:  at,
		}
	}

	fs2 := source.NewFileSet()
	id2 := fs2.AddVirtual(sf.Path, []byte(out))
	second, _ := parseFile(fs2.Get(id2), opts)
	if !slices.Equal(nodeKinds(first.Root), nodeKinds(second.Root)) {
		return FmtCheckResult{Message: "fmt-check: node kinds differ after round-trip", Offset: -1}
	}
	return FmtCheckResult{OK: true, Message: "fmt-check: OK", Offset: -1}
}

func firstDifference(printed string, content []byte) int {
	n := min(len(printed), len(content))
	for i := range n {
		if printed[i] != content[i] {
			return i
		}
	}
	if len(printed) != len(content) {
		return n
	}
	return -1
}

func nodeKinds(root *tree.Node) []syntax.Kind {
	kinds := make([]syntax.Kind, 0, 64)
	tree.Inspect(root, func(n *tree.Node) bool {
		kinds = append(kinds, n.Kind())
		return true
	})
	return kinds
}
