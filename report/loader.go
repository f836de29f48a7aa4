package report

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode"
)

var (
	ErrEmptyInput = errors.New("no e-mail addresses found")
)

// LoadAddresses reads one address per line from fileName. Trailing whitespace of the file is dropped, so a final
// newline doesn't produce an empty address. Lines are otherwise left as they are.
func LoadAddresses(fileName string) ([]string, error) {
	b, err := os.ReadFile(fileName)
	if err != nil {
		return nil, fmt.Errorf("unable to read %q, reason: %w", fileName, err)
	}

	return ParseAddresses(string(b))
}

// ParseAddresses splits content the way LoadAddresses does
func ParseAddresses(content string) ([]string, error) {
	content = strings.TrimRightFunc(content, unicode.IsSpace)
	if content == "" {
		return nil, ErrEmptyInput
	}

	return strings.Split(content, "\n"), nil
}
