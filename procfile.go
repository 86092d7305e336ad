package nodejsgems

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/paketo-buildpacks/packit/v2/fs"
)

// ProcfileGenerator writes a default Procfile when the application ships
// without one. An existing Procfile always wins, whatever it contains.
type ProcfileGenerator struct{}

func NewProcfileGenerator() ProcfileGenerator {
	return ProcfileGenerator{}
}

// Write returns the web process line it settled on, or the empty string when
// the application already has a Procfile or offers nothing to run.
func (g ProcfileGenerator) Write(workingDir string, pkg PackageJSON) (string, error) {
	exists, err := fs.Exists(filepath.Join(workingDir, "Procfile"))
	if err != nil {
		return "", err
	}

	if exists {
		return "", nil
	}

	var process string
	switch {
	case pkg.StartScript != "":
		process = "web: npm start"
	default:
		exists, err = fs.Exists(filepath.Join(workingDir, "server.js"))
		if err != nil {
			return "", err
		}

		if !exists {
			return "", nil
		}

		process = "web: node server.js"
	}

	err = os.WriteFile(filepath.Join(workingDir, "Procfile"), []byte(fmt.Sprintf("%s\n", process)), 0644)
	if err != nil {
		return "", err
	}

	return process, nil
}
