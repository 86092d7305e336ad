package components

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/Masterminds/semver"
	"gopkg.in/yaml.v2"
)

type RubyBranch struct {
	Name    string `yaml:"name"`
	EolDate string `yaml:"eol_date"`
}

type RubyDeprecationRetriever struct{}

func NewRubyDeprecationRetriever() RubyDeprecationRetriever {
	return RubyDeprecationRetriever{}
}

// GetDate looks up the EOL date of the branch a version belongs to,
// returning "" when the feed does not list one.
func (RubyDeprecationRetriever) GetDate(feed, version string) (string, error) {
	resp, err := http.Get(feed) // nolint
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		// untested
		return "", err
	}

	var branches []RubyBranch
	err = yaml.Unmarshal(body, &branches)
	if err != nil {
		return "", err
	}

	for _, branch := range branches {
		branchVersion := semver.MustParse(branch.Name)
		releaseVersion := semver.MustParse(version)

		if releaseVersion.Major() == branchVersion.Major() && releaseVersion.Minor() == branchVersion.Minor() {
			return branch.EolDate, nil
		}
	}
	return "", nil
}

type nodeScheduleEntry struct {
	End string `json:"end"`
}

type NodeDeprecationRetriever struct{}

func NewNodeDeprecationRetriever() NodeDeprecationRetriever {
	return NodeDeprecationRetriever{}
}

// GetDate looks up the end-of-life date of the release line a version
// belongs to in the Node.js release schedule, returning "" when the line is
// not scheduled.
func (NodeDeprecationRetriever) GetDate(feed, version string) (string, error) {
	resp, err := http.Get(feed) // nolint
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	schedule := map[string]nodeScheduleEntry{}
	err = json.NewDecoder(resp.Body).Decode(&schedule)
	if err != nil {
		return "", err
	}

	line := fmt.Sprintf("v%d", semver.MustParse(version).Major())
	entry, ok := schedule[line]
	if !ok {
		return "", nil
	}
	return entry.End, nil
}
