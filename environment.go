package nodejsgems

import (
	"os"
	"path/filepath"
	"strings"
)

// LoadEnvironment overlays the contents of a platform env directory onto a
// base environment. Each regular file becomes one variable: the filename is
// the name, the file contents (with the trailing newline trimmed) are the
// value. A missing or empty directory leaves the base environment untouched.
func LoadEnvironment(dir string, base []string) ([]string, error) {
	if dir == "" {
		return base, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return base, nil
		}
		return nil, err
	}

	variables := base
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		contents, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}

		value := strings.TrimRight(string(contents), "\r\n")
		variables = append(variables, entry.Name()+"="+value)
	}

	return variables, nil
}
