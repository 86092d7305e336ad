package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/paketo-buildpacks/packit/v2/cargo"
	"github.com/paketo-buildpacks/packit/v2/chronos"
	"github.com/paketo-buildpacks/packit/v2/pexec"
	"github.com/paketo-buildpacks/packit/v2/postal"
	nodejsgems "github.com/paketo-community/nodejs-gems"
)

func main() {
	if len(os.Args) < 3 {
		fmt.Fprintln(os.Stderr, "usage: compile <build-dir> <cache-dir> [<env-dir>]")
		os.Exit(1)
	}

	var envDir string
	if len(os.Args) > 3 {
		envDir = os.Args[3]
	}

	buildpackDir, err := locateBuildpackDir()
	if err != nil {
		fail(err)
	}

	config, err := cargo.NewBuildpackParser().Parse(filepath.Join(buildpackDir, "buildpack.toml"))
	if err != nil {
		fail(err)
	}

	stack := os.Getenv("STACK")
	if stack == "" {
		stack = nodejsgems.DefaultStack
	}

	logEmitter := nodejsgems.NewLogEmitter(os.Stdout).WithLevel(os.Getenv("BP_LOG_LEVEL"))
	dependencyManager := postal.NewService(cargo.NewTransport())

	compile := nodejsgems.Compile(
		nodejsgems.NewRubyVersionParser(),
		nodejsgems.NewPackageJSONParser(),
		dependencyManager,
		nodejsgems.NewRuntimeCache(),
		nodejsgems.NewGemsetInstaller(pexec.NewExecutable("gem"), pexec.NewExecutable("bundle"), logEmitter),
		nodejsgems.NewNodeModulesInstaller(pexec.NewExecutable("npm"), logEmitter),
		nodejsgems.NewProcfileGenerator(),
		nodejsgems.NewProfileScriptWriter(),
		nodejsgems.NewTelemetryReporter(nodejsgems.DefaultTelemetryEndpoint),
		pexec.NewExecutable("make"),
		logEmitter,
		chronos.DefaultClock,
	)

	err = compile(nodejsgems.CompileContext{
		WorkingDir:    os.Args[1],
		CacheDir:      os.Args[2],
		EnvDir:        envDir,
		BuildpackDir:  buildpackDir,
		Stack:         stack,
		BuildpackInfo: config.Buildpack,
	})
	if err != nil {
		fail(err)
	}
}

// locateBuildpackDir finds the buildpack root. The compiled binary lives in
// the buildpack's bin directory, so the root is its grandparent unless the
// platform says otherwise.
func locateBuildpackDir() (string, error) {
	if dir, ok := os.LookupEnv("BUILDPACK_DIR"); ok {
		return dir, nil
	}

	executable, err := os.Executable()
	if err != nil {
		return "", err
	}

	return filepath.Dir(filepath.Dir(executable)), nil
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
