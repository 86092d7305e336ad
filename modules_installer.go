package nodejsgems

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/paketo-buildpacks/packit/v2/fs"
	"github.com/paketo-buildpacks/packit/v2/pexec"
)

const modulesDir = "node_modules"

// NodeModulesInstaller provisions node_modules. An application that ships its
// own node_modules gets it pruned and rebuilt against the vendored Node;
// otherwise the cached tree is restored before npm install fills the gaps.
type NodeModulesInstaller struct {
	npm    Executable
	logger LogEmitter
}

func NewNodeModulesInstaller(npm Executable, logger LogEmitter) NodeModulesInstaller {
	return NodeModulesInstaller{
		npm:    npm,
		logger: logger,
	}
}

func (i NodeModulesInstaller) Install(workingDir, cacheDir string, env []string) error {
	modules := filepath.Join(workingDir, modulesDir)
	cached := filepath.Join(cacheDir, modulesDir)

	exists, err := fs.Exists(modules)
	if err != nil {
		return err
	}

	if exists {
		i.logger.Subprocess("Found existing node_modules, rebuilding against the vendored Node.js")
		for _, command := range [][]string{{"prune"}, {"rebuild"}} {
			err = i.run(workingDir, env, command...)
			if err != nil {
				return err
			}
		}
	} else {
		restore, err := fs.Exists(cached)
		if err != nil {
			return err
		}

		if restore {
			i.logger.Subprocess("Restoring node_modules from cache")
			err = fs.Copy(cached, modules)
			if err != nil {
				return err
			}
		}
	}

	err = i.run(workingDir, env, "install", "--production")
	if err != nil {
		return err
	}

	exists, err = fs.Exists(modules)
	if err != nil {
		return err
	}

	if !exists {
		return nil
	}

	err = os.RemoveAll(cached)
	if err != nil {
		return err
	}

	return fs.Copy(modules, cached)
}

func (i NodeModulesInstaller) run(workingDir string, env []string, args ...string) error {
	i.logger.Subprocess("Running 'npm %s'", strings.Join(args, " "))

	buffer := bytes.NewBuffer(nil)
	err := i.npm.Execute(pexec.Execution{
		Args:   args,
		Dir:    workingDir,
		Env:    env,
		Stdout: buffer,
		Stderr: buffer,
	})
	if err != nil {
		i.logger.Action("%s", buffer.String())
		return fmt.Errorf("failed to execute 'npm %s': %w", args[0], err)
	}

	return nil
}
