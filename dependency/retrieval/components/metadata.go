package components

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/Masterminds/semver"
	"github.com/paketo-buildpacks/packit/v2/cargo"
)

const (
	rubyBranchFeed   = "https://raw.githubusercontent.com/ruby/www.ruby-lang.org/master/_data/branches.yml"
	nodeScheduleFeed = "https://raw.githubusercontent.com/nodejs/Release/main/schedule.json"

	rubyMirror = "https://heroku-buildpack-ruby.s3.us-east-1.amazonaws.com"
)

// Dependency is a buildpack.toml metadata entry plus the stack target it was
// generated for, which the update workflow uses to slot the entry into place.
type Dependency struct {
	cargo.ConfigMetadataDependency
	Target string `json:"target,omitempty"`
}

//go:generate faux --interface License --output fakes/license.go
type License interface {
	LookupLicenses(dependencyName, sourceURL string) ([]interface{}, error)
}

//go:generate faux --interface DeprecationDate --output fakes/deprecation_date.go
type DeprecationDate interface {
	GetDate(feed, version string) (string, error)
}

// GenerateNodeMetadata builds the catalog entry for a Node.js release. The
// published linux-x64 tarball serves every stack, so a single entry carries
// all of the targets.
func GenerateNodeMetadata(release NodeRelease, targets []string, licenseRetriever License, deprecationDate DeprecationDate) ([]Dependency, error) {
	dependencies := []Dependency{}

	if _, err := semver.NewVersion(release.Version); err != nil {
		return dependencies, err
	}

	licenses, err := licenseRetriever.LookupLicenses("node", release.Source)
	if err != nil {
		return dependencies, fmt.Errorf("could not retrieve licenses: %w", err)
	}

	date, err := deprecationDate.GetDate(nodeScheduleFeed, release.Version)
	if err != nil {
		return dependencies, err
	}

	dependency := Dependency{}
	dependency.ConfigMetadataDependency = cargo.ConfigMetadataDependency{
		Version:         release.Version,
		ID:              "node",
		Name:            "Node.js",
		URI:             release.URI,
		Checksum:        checksumField(release.SHA256),
		Source:          release.Source,
		SourceChecksum:  checksumField(release.SourceSHA256),
		StripComponents: 1,
		CPE:             fmt.Sprintf("cpe:2.3:a:nodejs:node.js:%s:*:*:*:*:*:*:*", release.Version),
		PURL:            GeneratePurl("node", release.Version, release.SHA256, release.URI),
		Stacks:          targets,
		Licenses:        licenses,
	}

	if date != "" {
		dateFormatted, err := time.Parse("2006-01-02", date)
		if err != nil {
			return dependencies, fmt.Errorf("invalid EOL date: %w", err)
		}
		dependency.ConfigMetadataDependency.DeprecationDate = &dateFormatted
	}

	return append(dependencies, dependency), nil
}

// GenerateRubyMetadata builds one catalog entry per target for a Ruby
// release. The runtime tarballs are compiled per stack, so every target gets
// its own URI and checksum, while the source coordinates come from the
// ruby-lang release feed.
func GenerateRubyMetadata(release RubyRelease, targets []string, checksums map[string]string, licenseRetriever License, deprecationDate DeprecationDate) ([]Dependency, error) {
	dependencies := []Dependency{}

	if _, err := semver.NewVersion(release.Version); err != nil {
		return dependencies, err
	}

	licenses, err := licenseRetriever.LookupLicenses("ruby", release.URL.Gz)
	if err != nil {
		return dependencies, fmt.Errorf("could not retrieve licenses: %w", err)
	}

	date, err := deprecationDate.GetDate(rubyBranchFeed, release.Version)
	if err != nil {
		return dependencies, err
	}

	for _, target := range targets {
		uri := RubyMirrorURI(target, release.Version)

		dependency := Dependency{
			Target: target,
		}
		dependency.ConfigMetadataDependency = cargo.ConfigMetadataDependency{
			Version:        release.Version,
			ID:             "ruby",
			Name:           "Ruby",
			URI:            uri,
			Checksum:       checksumField(checksums[target]),
			Source:         release.URL.Gz,
			SourceChecksum: checksumField(release.SHA256.Gz),
			CPE:            fmt.Sprintf("cpe:2.3:a:ruby-lang:ruby:%s:*:*:*:*:*:*:*", release.Version),
			PURL:           GeneratePurl("ruby", release.Version, checksums[target], uri),
			Stacks:         []string{target},
			Licenses:       licenses,
		}

		if date != "" {
			dateFormatted, err := time.Parse("2006-01-02", date)
			if err != nil {
				return dependencies, fmt.Errorf("invalid EOL date: %w", err)
			}
			dependency.ConfigMetadataDependency.DeprecationDate = &dateFormatted
		}

		dependencies = append(dependencies, dependency)
	}

	return dependencies, nil
}

// RubyMirrorURI returns the prebuilt runtime tarball location for a stack.
func RubyMirrorURI(target, version string) string {
	return fmt.Sprintf("%s/%s/ruby-%s.tgz", rubyMirror, target, version)
}

func checksumField(sum string) string {
	if sum == "" {
		return ""
	}
	if _, _, found := strings.Cut(sum, ":"); found {
		return sum
	}
	return "sha256:" + sum
}

func WriteOutput(outputPath string, dependencies []Dependency) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return err
	}
	defer file.Close()

	err = json.NewEncoder(file).Encode(dependencies)
	if err != nil {
		// untested
		return err
	}
	return nil
}
