// Package keyio reads classification-code lists from files.
package keyio

import (
	"bufio"
	"os"
	"strings"
)

// ReadCodes reads codes from a file, one per line. Blank lines and lines
// starting with '#' are skipped.
func ReadCodes(filename string) ([]string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var codes []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		code := strings.TrimSpace(scanner.Text())
		if code != "" && !strings.HasPrefix(code, "#") {
			codes = append(codes, code)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return codes, nil
}
