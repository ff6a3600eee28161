package files

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// ParseKeywords splits newline separated keywords, trimming each line.
// Blank lines are kept as empty strings so callers decide how to filter them.
func ParseKeywords(r io.Reader) ([]string, error) {
	var keywords []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		keywords = append(keywords, strings.TrimSpace(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read keywords: %w", err)
	}
	return keywords, nil
}

// ReadKeywordsFile reads keywords from path, or from stdin when path is "-"
func ReadKeywordsFile(path string, stdin io.Reader) ([]string, error) {
	if path == "-" {
		return ParseKeywords(stdin)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open keywords file %s: %w", path, err)
	}
	defer f.Close()

	return ParseKeywords(f)
}
