package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/paketo-buildpacks/packit/v2/cargo"
	"github.com/paketo-community/nodejs-gems/dependency/retrieval/components"
)

const (
	nodeDist        = "https://nodejs.org/dist"
	rubyReleaseFeed = "https://raw.githubusercontent.com/ruby/www.ruby-lang.org/master/_data/releases.yml"
)

var targets = []string{"heroku-22", "heroku-24"}

// Retrieval fetches upstream Node.js and Ruby versions that are newer than
// the ones in buildpack.toml and writes a metadata.json describing them for
// the catalog update workflow.
func main() {
	var flags struct {
		buildpackTomlPath string
		output            string
	}

	flag.StringVar(&flags.buildpackTomlPath, "buildpackTomlPath", "", "the path to the buildpack.toml file")
	flag.StringVar(&flags.output, "output", "", "path to file into which an output metadata JSON will be written")
	flag.Parse()
	if flags.buildpackTomlPath == "" {
		fail(errors.New(`missing required input "buildpackTomlPath"`))
	}
	if flags.output == "" {
		fail(errors.New(`missing required input "output"`))
	}

	buildpackConfig, err := cargo.NewBuildpackParser().Parse(flags.buildpackTomlPath)
	if err != nil {
		fail(err)
	}

	licenseRetriever := components.NewLicenseRetriever()
	dependencies := []components.Dependency{}

	nodeFetcher := components.NewNodeReleaseFetcher(nodeDist)
	nodeReleases, err := nodeFetcher.GetUpstreamReleases()
	if err != nil {
		fail(err)
	}

	nodeVersions := []string{}
	for version := range nodeReleases {
		nodeVersions = append(nodeVersions, version)
	}

	newNodeVersions, err := components.FindNewVersions("node", buildpackConfig, nodeVersions)
	if err != nil {
		fail(err)
	}
	fmt.Printf("New node versions: %v\n", newNodeVersions)

	for _, version := range newNodeVersions {
		release, err := nodeFetcher.ResolveChecksums(nodeReleases[version])
		if err != nil {
			fail(err)
		}

		// Confirm the artifact matches the published digest before it goes
		// into the catalog.
		valid, err := components.Validate(release.URI, release.SHA256)
		if err != nil {
			fail(err)
		}
		if !valid {
			fail(fmt.Errorf("failed to validate dependency checksum for version %s", version))
		}

		entries, err := components.GenerateNodeMetadata(release, targets, licenseRetriever, components.NewNodeDeprecationRetriever())
		if err != nil {
			fail(err)
		}
		dependencies = append(dependencies, entries...)
	}

	rubyFetcher := components.NewRubyReleaseFetcher(rubyReleaseFeed)
	rubyReleases, err := rubyFetcher.GetUpstreamReleases()
	if err != nil {
		fail(err)
	}

	rubyVersions := []string{}
	for version := range rubyReleases {
		rubyVersions = append(rubyVersions, version)
	}

	newRubyVersions, err := components.FindNewVersions("ruby", buildpackConfig, rubyVersions)
	if err != nil {
		fail(err)
	}
	fmt.Printf("New ruby versions: %v\n", newRubyVersions)

	for _, version := range newRubyVersions {
		release := rubyReleases[version]

		valid, err := components.Validate(release.URL.Gz, release.SHA256.Gz)
		if err != nil {
			fail(err)
		}
		if !valid {
			fail(fmt.Errorf("failed to validate dependency checksum for version %s", version))
		}

		// The prebuilt runtime tarballs have no published digests, so
		// compute them from the mirror itself.
		checksums := map[string]string{}
		for _, target := range targets {
			sum, err := components.Checksum(components.RubyMirrorURI(target, version))
			if err != nil {
				fail(err)
			}
			checksums[target] = sum
		}

		entries, err := components.GenerateRubyMetadata(release, targets, checksums, licenseRetriever, components.NewRubyDeprecationRetriever())
		if err != nil {
			fail(err)
		}
		dependencies = append(dependencies, entries...)
	}

	err = components.WriteOutput(flags.output, dependencies)
	if err != nil {
		fail(err)
	}

	fmt.Printf("Succeeded! Metadata written to %s\n", flags.output)
}

func fail(err error) {
	fmt.Printf("Error: %s", err)
	os.Exit(1)
}
