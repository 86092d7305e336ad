// Package nodejsgems implements the classic buildpack API for Node.js
// applications that carry a Ruby gemset toolchain alongside their npm
// dependencies. The compile phase vendors both runtimes into the build
// directory, installs gems and node modules against a cross-build cache, and
// finishes by running the application's own make target.
package nodejsgems

const (
	Node = "node"
	Ruby = "ruby"

	// DetectName is printed by bin/detect when the app qualifies.
	DetectName = "NodeJS Gems"

	// DefaultStack is assumed when the platform does not export $STACK.
	DefaultStack = "heroku-24"

	// RuntimeDir is the directory under the build dir that receives vendored
	// runtimes and version markers.
	RuntimeDir = ".heroku"

	// GemsetDir is the gemset location under the build dir, matching the
	// layout the gs tool activates at runtime.
	GemsetDir = ".gs"

	// RubyVersionSource and PackageJSONSource are the files version
	// resolution reads from the application root.
	RubyVersionSource = ".ruby-version"
	PackageJSONSource = "package.json"

	// NodeVersionFile records the resolved Node.js version under RuntimeDir.
	NodeVersionFile = "node-version"

	// DefaultTelemetryEndpoint receives a copy of the application's
	// package.json on every build. The POST is best-effort.
	DefaultTelemetryEndpoint = "https://telemetry.nodebp.dev/v1/reports"
)
