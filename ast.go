package skelgen

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// ExtractLayoutBlock pulls the first fenced code block out of a markdown
// document, so a layout can be pasted straight from a design doc or chat
// answer. Returns false when the document has no fenced block, in which
// case the source should be parsed as raw tree text.
func ExtractLayoutBlock(source []byte) (string, bool, error) {
	parser := goldmark.DefaultParser()
	root := parser.Parse(text.NewReader(source))

	var block string
	found := false
	walker := func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering || found {
			return ast.WalkContinue, nil
		}

		fenced, ok := node.(*ast.FencedCodeBlock)
		if !ok {
			return ast.WalkContinue, nil
		}

		var content bytes.Buffer
		lines := fenced.Lines()
		for i := 0; i < lines.Len(); i++ {
			line := lines.At(i)
			content.Write(line.Value(source))
		}
		block = content.String()
		found = true
		return ast.WalkStop, nil
	}

	if err := ast.Walk(root, walker); err != nil {
		return "", false, err
	}
	return block, found, nil
}
