package skelgen

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"
)

// SourceProvider reads a layout override: from a file, from piped stdin, or
// from the clipboard when stdin is a terminal.
type SourceProvider struct{}

func NewSourceProvider() *SourceProvider {
	return &SourceProvider{}
}

// GetContent returns the text behind the --layout argument. "-" selects
// stdin (or the clipboard when nothing is piped).
func (sp *SourceProvider) GetContent(layoutPath string) (string, error) {
	if layoutPath != "-" {
		data, err := os.ReadFile(layoutPath)
		if err != nil {
			return "", fmt.Errorf("read layout %s: %w", layoutPath, err)
		}
		return string(data), nil
	}

	stat, _ := os.Stdin.Stat()
	if (stat.Mode() & os.ModeCharDevice) == 0 {
		c, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", err
		}
		return string(c), nil
	}

	c, err := clipboard.ReadAll()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(c), nil
}
