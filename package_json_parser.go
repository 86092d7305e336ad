package nodejsgems

import (
	"encoding/json"
	"fmt"
	"os"
)

// PackageJSON holds the fields of an application's package.json that drive
// the build, along with the raw document for telemetry reporting.
type PackageJSON struct {
	NodeVersion string
	StartScript string
	Raw         []byte
}

type PackageJSONParser struct{}

func NewPackageJSONParser() PackageJSONParser {
	return PackageJSONParser{}
}

func (p PackageJSONParser) Parse(path string) (PackageJSON, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return PackageJSON{}, err
	}

	var contents struct {
		Engines struct {
			Node string `json:"node"`
		} `json:"engines"`
		Scripts map[string]string `json:"scripts"`
	}

	err = json.Unmarshal(raw, &contents)
	if err != nil {
		return PackageJSON{}, fmt.Errorf("failed to parse package.json: %w", err)
	}

	return PackageJSON{
		NodeVersion: contents.Engines.Node,
		StartScript: contents.Scripts["start"],
		Raw:         raw,
	}, nil
}
