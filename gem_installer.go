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

const (
	// GemsetMarker records which Ruby the cached gemset was built against.
	// Native extensions are ABI-bound, so a Ruby change invalidates the whole
	// gemset.
	GemsetMarker = "gemset.version"

	gemsetCacheDir = "gemset"
)

// GemsetInstaller provisions the application gemset: it restores a cached
// gemset when the Ruby version still matches, installs bundler and the gs
// gemset tool, and runs bundle install when the application ships a Gemfile.
type GemsetInstaller struct {
	gem    Executable
	bundle Executable
	logger LogEmitter
}

func NewGemsetInstaller(gem, bundle Executable, logger LogEmitter) GemsetInstaller {
	return GemsetInstaller{
		gem:    gem,
		bundle: bundle,
		logger: logger,
	}
}

func (i GemsetInstaller) Install(workingDir, cacheDir, rubyVersion string, env []string) error {
	section := filepath.Join(cacheDir, Ruby)
	gemset := filepath.Join(workingDir, GemsetDir)

	restored, err := i.restore(section, gemset, rubyVersion)
	if err != nil {
		return err
	}

	if restored {
		i.logger.Subprocess("Reusing cached gemset")
	}

	err = os.MkdirAll(gemset, os.ModePerm)
	if err != nil {
		return err
	}

	i.logger.Subprocess("Running 'gem install bundler gs --no-document'")
	buffer := bytes.NewBuffer(nil)
	err = i.gem.Execute(pexec.Execution{
		Args:   []string{"install", "bundler", "gs", "--no-document"},
		Dir:    workingDir,
		Env:    env,
		Stdout: buffer,
		Stderr: buffer,
	})
	if err != nil {
		i.logger.Action("%s", buffer.String())
		return fmt.Errorf("failed to execute 'gem install': %w", err)
	}

	exists, err := fs.Exists(filepath.Join(workingDir, "Gemfile"))
	if err != nil {
		return err
	}

	if exists {
		i.logger.Subprocess("Running 'bundle install'")
		buffer.Reset()
		err = i.bundle.Execute(pexec.Execution{
			Args:   []string{"install"},
			Dir:    workingDir,
			Env:    env,
			Stdout: buffer,
			Stderr: buffer,
		})
		if err != nil {
			i.logger.Action("%s", buffer.String())
			return fmt.Errorf("failed to execute 'bundle install': %w", err)
		}
	} else {
		i.logger.Debug.Subprocess("Skipping 'bundle install': no Gemfile present")
	}

	return i.snapshot(section, gemset, rubyVersion)
}

func (i GemsetInstaller) restore(section, gemset, rubyVersion string) (bool, error) {
	contents, err := os.ReadFile(filepath.Join(section, GemsetMarker))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}

	if strings.TrimSpace(string(contents)) != rubyVersion {
		return false, nil
	}

	exists, err := fs.Exists(filepath.Join(section, gemsetCacheDir))
	if err != nil || !exists {
		return false, err
	}

	err = fs.Copy(filepath.Join(section, gemsetCacheDir), gemset)
	if err != nil {
		return false, err
	}

	return true, nil
}

func (i GemsetInstaller) snapshot(section, gemset, rubyVersion string) error {
	err := os.RemoveAll(filepath.Join(section, gemsetCacheDir))
	if err != nil {
		return err
	}

	err = os.MkdirAll(section, os.ModePerm)
	if err != nil {
		return err
	}

	err = fs.Copy(gemset, filepath.Join(section, gemsetCacheDir))
	if err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(section, GemsetMarker), []byte(rubyVersion+"\n"), 0644)
}
