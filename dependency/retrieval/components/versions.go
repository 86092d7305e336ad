package components

import (
	"sort"

	"github.com/Masterminds/semver"
	"github.com/paketo-buildpacks/packit/v2/cargo"
	"k8s.io/utils/strings/slices"
)

// FindNewVersions takes a dependency ID, a buildpack.toml in the form of a
// cargo.Config, and the full list of upstream versions. It filters the
// upstream versions by the constraints registered for that ID and returns
// the ones that fit the constraint and patch window and are not already in
// the buildpack.toml.
func FindNewVersions(id string, buildpackConfig cargo.Config, allVersions []string) ([]string, error) {
	newVersions := []string{}

	for _, c := range buildpackConfig.Metadata.DependencyConstraints {
		if c.ID != id {
			continue
		}
		constraint, err := semver.NewConstraint(c.Constraint)
		if err != nil {
			return nil, err
		}

		// versions the buildpack.toml already carries for this constraint
		existingVersions := []string{}
		for _, dependency := range buildpackConfig.Metadata.Dependencies {
			version := semver.MustParse(dependency.Version)
			if constraint.Check(version) && id == dependency.ID {
				existingVersions = append(existingVersions, dependency.Version)
			}
		}

		matchingVersions := []string{}
		for _, v := range allVersions {
			version := semver.MustParse(v)
			if constraint.Check(version) {
				matchingVersions = append(matchingVersions, v)
			}
		}

		sort.Slice(matchingVersions, func(i, j int) bool {
			iVersion := semver.MustParse(matchingVersions[i])
			jVersion := semver.MustParse(matchingVersions[j])
			return iVersion.LessThan(jVersion)
		})

		// Return the newest `patches` versions, or all of them when fewer
		// match than the window allows. Pre-existing versions are excluded
		// either way.
		if c.Patches > len(matchingVersions) {
			for _, match := range matchingVersions {
				if !slices.Contains(existingVersions, match) {
					newVersions = append(newVersions, match)
				}
			}
		} else {
			for i := len(matchingVersions) - int(c.Patches); i < len(matchingVersions); i++ {
				if !slices.Contains(existingVersions, matchingVersions[i]) {
					newVersions = append(newVersions, matchingVersions[i])
				}
			}
		}
	}
	return newVersions, nil
}
