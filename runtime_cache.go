package nodejsgems

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/paketo-buildpacks/packit/v2/fs"
)

const (
	// VersionMarker is the file inside a cache section that records which
	// runtime version the cached tree was built from. Freshness is decided by
	// comparing this string against the resolved version, nothing else.
	VersionMarker = "version"

	// distDir holds the cached runtime tree itself, keeping it apart from
	// sibling entries like the gemset.
	distDir = "dist"
)

// RuntimeCache stores vendored runtimes across builds. A section is one
// directory under the cache dir (ruby/, node/) holding a version marker and
// the unpacked runtime.
type RuntimeCache struct{}

func NewRuntimeCache() RuntimeCache {
	return RuntimeCache{}
}

// Match reports whether the section holds a runtime for exactly the given
// version.
func (c RuntimeCache) Match(section, version string) (bool, error) {
	contents, err := os.ReadFile(filepath.Join(section, VersionMarker))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}

	if strings.TrimSpace(string(contents)) != version {
		return false, nil
	}

	exists, err := fs.Exists(filepath.Join(section, distDir))
	if err != nil {
		return false, err
	}

	return exists, nil
}

// Restore copies the cached runtime into the destination directory.
func (c RuntimeCache) Restore(section, destination string) error {
	err := os.MkdirAll(filepath.Dir(destination), os.ModePerm)
	if err != nil {
		return err
	}

	err = os.RemoveAll(destination)
	if err != nil {
		return err
	}

	return fs.Copy(filepath.Join(section, distDir), destination)
}

// Cache snapshots an installed runtime back into the section and records its
// version, replacing whatever the section held before.
func (c RuntimeCache) Cache(section, source, version string) error {
	err := os.RemoveAll(filepath.Join(section, distDir))
	if err != nil {
		return err
	}

	err = os.MkdirAll(section, os.ModePerm)
	if err != nil {
		return err
	}

	err = fs.Copy(source, filepath.Join(section, distDir))
	if err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(section, VersionMarker), []byte(version+"\n"), 0644)
}
