package components

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"gopkg.in/yaml.v2"
	"k8s.io/utils/strings/slices"
)

// NodeRelease holds the artifact and source tarball coordinates for one
// Node.js release, as they appear in the dependency catalog.
type NodeRelease struct {
	Version      string
	URI          string
	SHA256       string
	Source       string
	SourceSHA256 string
}

type nodeIndexEntry struct {
	Version string   `json:"version"`
	Files   []string `json:"files"`
}

type NodeReleaseFetcher struct {
	dist string
}

func NewNodeReleaseFetcher(dist string) NodeReleaseFetcher {
	return NodeReleaseFetcher{
		dist: dist,
	}
}

// GetUpstreamReleases parses the dist index and returns every release that
// ships a linux-x64 binary, keyed by version with the leading "v" stripped.
// The index carries no digests, so checksums are filled in later by
// ResolveChecksums.
func (nf NodeReleaseFetcher) GetUpstreamReleases() (map[string]NodeRelease, error) {
	releases := make(map[string]NodeRelease)

	index := fmt.Sprintf("%s/index.json", nf.dist)
	resp, err := http.Get(index) // nolint
	if err != nil {
		return releases, err
	}
	if resp.StatusCode != http.StatusOK {
		return releases, fmt.Errorf("failed to query %s: %d", index, resp.StatusCode)
	}
	defer resp.Body.Close()

	var entries []nodeIndexEntry
	err = json.NewDecoder(resp.Body).Decode(&entries)
	if err != nil {
		return releases, err
	}

	for _, entry := range entries {
		if !slices.Contains(entry.Files, "linux-x64") {
			continue
		}

		version := strings.TrimPrefix(entry.Version, "v")
		releases[version] = NodeRelease{
			Version: version,
			URI:     fmt.Sprintf("%s/%s/node-%s-linux-x64.tar.gz", nf.dist, entry.Version, entry.Version),
			Source:  fmt.Sprintf("%s/%s/node-%s.tar.gz", nf.dist, entry.Version, entry.Version),
		}
	}
	return releases, nil
}

// ResolveChecksums reads the SHASUMS256.txt published alongside a release
// and fills in the artifact and source tarball digests.
func (nf NodeReleaseFetcher) ResolveChecksums(release NodeRelease) (NodeRelease, error) {
	shasums := fmt.Sprintf("%s/v%s/SHASUMS256.txt", nf.dist, release.Version)
	resp, err := http.Get(shasums) // nolint
	if err != nil {
		return NodeRelease{}, err
	}
	if resp.StatusCode != http.StatusOK {
		return NodeRelease{}, fmt.Errorf("failed to query %s: %d", shasums, resp.StatusCode)
	}
	defer resp.Body.Close()

	sums := make(map[string]string)
	scanner := bufio.NewScanner(resp.Body)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) != 2 {
			continue
		}
		sums[fields[1]] = fields[0]
	}
	if err := scanner.Err(); err != nil {
		// untested
		return NodeRelease{}, err
	}

	artifact := fmt.Sprintf("node-v%s-linux-x64.tar.gz", release.Version)
	sum, ok := sums[artifact]
	if !ok {
		return NodeRelease{}, fmt.Errorf("no checksum for %s in %s", artifact, shasums)
	}

	release.SHA256 = sum
	release.SourceSHA256 = sums[fmt.Sprintf("node-v%s.tar.gz", release.Version)]
	return release, nil
}

type URL struct {
	Gz string `yaml:"gz"`
}

type SHA256 struct {
	Gz string `yaml:"gz"`
}

// RubyRelease holds the source tarball coordinates for one Ruby release as
// published in the ruby-lang release feed.
type RubyRelease struct {
	Version string `yaml:"version"`
	URL     URL    `yaml:"url"`
	SHA256  SHA256 `yaml:"sha256"`
}

type RubyReleaseFetcher struct {
	releaseIndex string
}

func NewRubyReleaseFetcher(feed string) RubyReleaseFetcher {
	return RubyReleaseFetcher{
		releaseIndex: feed,
	}
}

// GetUpstreamReleases parses the ruby-lang release feed and returns every
// published release keyed by version.
func (rf RubyReleaseFetcher) GetUpstreamReleases() (map[string]RubyRelease, error) {
	releases := make(map[string]RubyRelease)

	resp, err := http.Get(rf.releaseIndex) // nolint
	if err != nil {
		return releases, err
	}
	if resp.StatusCode != http.StatusOK {
		return releases, fmt.Errorf("failed to query %s: %d", rf.releaseIndex, resp.StatusCode)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return releases, err
	}

	var entries []RubyRelease
	err = yaml.Unmarshal(body, &entries)
	if err != nil {
		return releases, err
	}

	for _, entry := range entries {
		releases[entry.Version] = entry
	}
	return releases, nil
}
