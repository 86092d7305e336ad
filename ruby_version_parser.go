package nodejsgems

import (
	"bufio"
	"os"
	"strings"
)

// RubyVersionParser reads a .ruby-version file. Blank lines and comments are
// skipped and a leading "ruby-" prefix is dropped, so both "3.3.5" and
// "ruby-3.3.5" resolve to the same version.
type RubyVersionParser struct{}

func NewRubyVersionParser() RubyVersionParser {
	return RubyVersionParser{}
}

func (p RubyVersionParser) ParseVersion(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		return strings.TrimPrefix(line, "ruby-"), nil
	}

	return "", scanner.Err()
}
