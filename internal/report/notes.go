package report

import (
	"fmt"
	"os"
	"strings"
)

func WriteNotesMarkdown(path string, notes []string) error {
	var b strings.Builder
	fmt.Fprintf(&b, "# Estimate notes\n\n")
	for _, note := range notes {
		fmt.Fprintf(&b, "- %s\n", note)
	}
	return os.WriteFile(path, []byte(b.String()), 0644)
}
