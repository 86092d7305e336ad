package nodejsgems

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/paketo-buildpacks/packit/v2/cargo"
	"github.com/paketo-buildpacks/packit/v2/chronos"
	"github.com/paketo-buildpacks/packit/v2/pexec"
	"github.com/paketo-buildpacks/packit/v2/postal"
	"github.com/paketo-buildpacks/packit/v2/scribe"
)

//go:generate faux --interface VersionParser --output fakes/version_parser.go
//go:generate faux --interface PackageParser --output fakes/package_parser.go
//go:generate faux --interface DependencyManager --output fakes/dependency_manager.go
//go:generate faux --interface CacheManager --output fakes/cache_manager.go
//go:generate faux --interface GemInstaller --output fakes/gem_installer.go
//go:generate faux --interface ModulesInstaller --output fakes/modules_installer.go
//go:generate faux --interface ProcfileWriter --output fakes/procfile_writer.go
//go:generate faux --interface ProfileWriter --output fakes/profile_writer.go
//go:generate faux --interface TelemetryClient --output fakes/telemetry_client.go
//go:generate faux --interface Executable --output fakes/executable.go

type VersionParser interface {
	ParseVersion(path string) (version string, err error)
}

type PackageParser interface {
	Parse(path string) (PackageJSON, error)
}

type DependencyManager interface {
	Resolve(path, id, version, stack string) (postal.Dependency, error)
	Deliver(dependency postal.Dependency, buildpackDir, destination, platformDir string) error
}

type CacheManager interface {
	Match(section, version string) (match bool, err error)
	Restore(section, destination string) error
	Cache(section, source, version string) error
}

type GemInstaller interface {
	Install(workingDir, cacheDir, rubyVersion string, env []string) error
}

type ModulesInstaller interface {
	Install(workingDir, cacheDir string, env []string) error
}

type ProcfileWriter interface {
	Write(workingDir string, pkg PackageJSON) (process string, err error)
}

type ProfileWriter interface {
	Write(workingDir string) error
}

type TelemetryClient interface {
	Post(raw []byte) error
}

type Executable interface {
	Execute(pexec.Execution) error
}

// CompileContext carries the positional arguments of bin/compile plus the
// platform configuration resolved by the entrypoint.
type CompileContext struct {
	WorkingDir    string
	CacheDir      string
	EnvDir        string
	BuildpackDir  string
	Stack         string
	BuildpackInfo cargo.ConfigBuildpack
}

type CompileFunc func(CompileContext) error

func Compile(
	rubyVersions VersionParser,
	packages PackageParser,
	dependencies DependencyManager,
	cache CacheManager,
	gems GemInstaller,
	modules ModulesInstaller,
	procfile ProcfileWriter,
	profile ProfileWriter,
	telemetry TelemetryClient,
	makeExec Executable,
	logger LogEmitter,
	clock chronos.Clock,
) CompileFunc {
	return func(context CompileContext) error {
		logger.Title("%s %s", context.BuildpackInfo.Name, context.BuildpackInfo.Version)

		catalog := filepath.Join(context.BuildpackDir, "buildpack.toml")

		// vendor installs a runtime into the build dir, going to the network
		// only when the cache does not already hold the resolved version.
		vendor := func(dependency postal.Dependency, destination, section string) error {
			match, err := cache.Match(section, dependency.Version)
			if err != nil {
				return err
			}

			if match {
				logger.Process("Reusing cached %s %s", dependency.Name, dependency.Version)
				logger.Break()
				return cache.Restore(section, destination)
			}

			logger.Process("Executing build process")
			logger.Subprocess("Installing %s %s", dependency.Name, dependency.Version)
			duration, err := clock.Measure(func() error {
				logger.Debug.Subprocess("Installation path: %s", destination)
				logger.Debug.Subprocess("Source URI: %s", dependency.URI)

				err := dependencies.Deliver(dependency, context.BuildpackDir, destination, "")
				if err != nil {
					return err
				}

				return cache.Cache(section, destination, dependency.Version)
			})
			if err != nil {
				return err
			}

			logger.Action("Completed in %s", duration.Round(time.Millisecond))
			logger.Break()

			return nil
		}

		logger.Process("Resolving Ruby version")
		rubyVersion, err := rubyVersions.ParseVersion(filepath.Join(context.WorkingDir, RubyVersionSource))
		if err != nil {
			return err
		}

		rubySource := RubyVersionSource
		if rubyVersion == "" {
			rubySource = "default"
		}

		rubyDependency, err := dependencies.Resolve(catalog, Ruby, rubyVersion, context.Stack)
		if err != nil {
			return err
		}

		logger.SelectedDependency(rubySource, rubyDependency, clock.Now())

		rubyDir := filepath.Join(context.WorkingDir, RuntimeDir, Ruby)
		err = vendor(rubyDependency, rubyDir, filepath.Join(context.CacheDir, Ruby))
		if err != nil {
			return err
		}

		gemset := filepath.Join(context.WorkingDir, GemsetDir)

		logger.Debug.Process("Adding %s to the $PATH", filepath.Join(rubyDir, "bin"))
		logger.Debug.Break()
		os.Setenv("PATH", fmt.Sprintf("%s:%s", filepath.Join(rubyDir, "bin"), os.Getenv("PATH")))
		os.Setenv("GEM_HOME", gemset)
		os.Setenv("GEM_PATH", gemset)

		env, err := LoadEnvironment(context.EnvDir, os.Environ())
		if err != nil {
			return err
		}

		logger.Process("Installing gem environment")
		duration, err := clock.Measure(func() error {
			return gems.Install(context.WorkingDir, context.CacheDir, rubyDependency.Version, env)
		})
		if err != nil {
			return err
		}

		logger.Action("Completed in %s", duration.Round(time.Millisecond))
		logger.Break()

		logger.Process("Resolving Node.js version")
		pkg, err := packages.Parse(filepath.Join(context.WorkingDir, PackageJSONSource))
		if err != nil {
			return err
		}

		// Best effort: the report must never delay or fail the build.
		go func() {
			_ = telemetry.Post(pkg.Raw)
		}()

		nodeSource := PackageJSONSource
		if pkg.NodeVersion == "" {
			nodeSource = "default"
		}

		nodeDependency, err := dependencies.Resolve(catalog, Node, pkg.NodeVersion, context.Stack)
		if err != nil {
			return err
		}

		logger.SelectedDependency(nodeSource, nodeDependency, clock.Now())

		nodeDir := filepath.Join(context.WorkingDir, RuntimeDir, Node)
		err = vendor(nodeDependency, nodeDir, filepath.Join(context.CacheDir, Node))
		if err != nil {
			return err
		}

		err = os.WriteFile(filepath.Join(context.WorkingDir, RuntimeDir, NodeVersionFile), []byte(nodeDependency.Version+"\n"), 0644)
		if err != nil {
			return err
		}

		logger.Debug.Process("Adding %s to the $PATH", filepath.Join(nodeDir, "bin"))
		logger.Debug.Break()
		os.Setenv("PATH", fmt.Sprintf("%s:%s", filepath.Join(nodeDir, "bin"), os.Getenv("PATH")))

		env, err = LoadEnvironment(context.EnvDir, os.Environ())
		if err != nil {
			return err
		}

		logger.Process("Installing node modules")
		duration, err = clock.Measure(func() error {
			return modules.Install(context.WorkingDir, context.CacheDir, env)
		})
		if err != nil {
			return err
		}

		logger.Action("Completed in %s", duration.Round(time.Millisecond))
		logger.Break()

		process, err := procfile.Write(context.WorkingDir, pkg)
		if err != nil {
			return err
		}

		if process != "" {
			logger.Process("Writing Procfile")
			logger.Subprocess("%s", process)
			logger.Break()
		}

		err = profile.Write(context.WorkingDir)
		if err != nil {
			return err
		}

		logger.Environment(scribe.FormattedMap{
			"GEM_HOME":  "$HOME/.gs",
			"GEM_PATH":  "$HOME/.gs",
			"NODE_HOME": "$HOME/.heroku/node",
			"PATH":      "$HOME/.heroku/node/bin:$HOME/node_modules/.bin:$HOME/.gs/bin:$HOME/.heroku/ruby/bin:$PATH",
		})

		logger.Process("Running 'make compile'")
		buffer := bytes.NewBuffer(nil)
		err = makeExec.Execute(pexec.Execution{
			Args:   []string{"compile"},
			Dir:    context.WorkingDir,
			Stdout: buffer,
			Stderr: buffer,
		})
		if err != nil {
			logger.Subprocess("%s", buffer.String())
			return fmt.Errorf("failed to execute 'make compile': %w", err)
		}

		logger.Break()

		return nil
	}
}
