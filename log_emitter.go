package nodejsgems

import (
	"io"
	"time"

	"github.com/paketo-buildpacks/packit/v2/postal"
	"github.com/paketo-buildpacks/packit/v2/scribe"
)

type LogEmitter struct {
	// Emitter is embedded and therefore delegates all of its functions to the
	// LogEmitter.
	scribe.Emitter
}

func NewLogEmitter(output io.Writer) LogEmitter {
	return LogEmitter{
		Emitter: scribe.NewEmitter(output),
	}
}

func (l LogEmitter) WithLevel(level string) LogEmitter {
	l.Emitter = l.Emitter.WithLevel(level)
	return l
}

// SelectedDependency reports which concrete version was chosen and where the
// request came from, and warns when that version is near or past its
// deprecation date.
func (l LogEmitter) SelectedDependency(source string, dependency postal.Dependency, now time.Time) {
	if source == "" {
		source = "<unknown>"
	}
	l.Subprocess("Selected %s version (using %s): %s", dependency.Name, source, dependency.Version)

	if (dependency.DeprecationDate != time.Time{}) {
		deprecationDate := dependency.DeprecationDate
		switch {
		case now.After(deprecationDate) || now.Equal(deprecationDate):
			l.Action("Version %s of %s is deprecated.", dependency.Version, dependency.Name)
			l.Action("Migrate your application to a supported version of %s.", dependency.Name)
		case now.After(deprecationDate.Add(-30 * 24 * time.Hour)):
			l.Action("Version %s of %s will be deprecated after %s.", dependency.Version, dependency.Name, deprecationDate.Format("2006-01-02"))
			l.Action("Migrate your application to a supported version of %s before this time.", dependency.Name)
		}
	}
	l.Break()
}

// Environment reports the variables exported for the runtime environment by
// the generated profile scripts.
func (l LogEmitter) Environment(variables scribe.FormattedMap) {
	l.Process("Configuring launch environment")
	l.Subprocess("%s", variables)
	l.Break()
}
