package nodejsgems

import (
	"errors"
	"path/filepath"

	"github.com/paketo-buildpacks/packit/v2/fs"
)

// Fail is returned by detection when the application does not qualify for
// this buildpack. bin/detect translates it into the classic API's exit 1.
var Fail = errors.New("failed detection")

// DetectContext carries the positional argument of bin/detect.
type DetectContext struct {
	WorkingDir string
}

type DetectFunc func(DetectContext) (string, error)

// Detect passes iff the application root holds a package.json. The returned
// name is printed by bin/detect on success.
func Detect() DetectFunc {
	return func(context DetectContext) (string, error) {
		exists, err := fs.Exists(filepath.Join(context.WorkingDir, PackageJSONSource))
		if err != nil {
			return "", err
		}

		if !exists {
			return "", Fail
		}

		return DetectName, nil
	}
}
