package components

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"sort"

	"github.com/go-enry/go-license-detector/v4/licensedb"
	"github.com/go-enry/go-license-detector/v4/licensedb/filer"
	"github.com/paketo-buildpacks/packit/v2/vacation"
)

type LicenseRetriever struct{}

func NewLicenseRetriever() LicenseRetriever {
	return LicenseRetriever{}
}

// LookupLicenses downloads the source tarball for a dependency and scans it
// for license files, returning the detected license IDs in alphabetical
// order.
func (LicenseRetriever) LookupLicenses(dependencyName, sourceURL string) ([]interface{}, error) {
	url := sourceURL
	resp, err := http.Get(url) // nolint
	if err != nil {
		return []interface{}{}, fmt.Errorf("failed to query url: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return []interface{}{}, fmt.Errorf("failed to query url %s with: status code %d", url, resp.StatusCode)
	}

	tempDir, err := os.MkdirTemp("", "destination")
	if err != nil {
		return []interface{}{}, err
	}
	defer os.RemoveAll(tempDir)

	// Both the node and ruby source tarballs nest everything under one
	// top-level directory.
	err = decompress(resp.Body, tempDir, 1)
	if err != nil {
		return []interface{}{}, err
	}

	filer, err := filer.FromDirectory(tempDir)
	if err != nil {
		return []interface{}{}, fmt.Errorf("failed to setup a licensedb filer: %w", err)
	}

	licenses, err := licensedb.Detect(filer)
	// a source tree without a license file is not an error
	if err != nil {
		if err.Error() != "no license file was found" {
			return []interface{}{}, fmt.Errorf("failed to detect licenses: %w", err)
		}
		return []interface{}{}, nil
	}

	licenseIDs := []string{}
	for key := range licenses {
		licenseIDs = append(licenseIDs, key)
	}
	sort.Strings(licenseIDs)

	licenseInterface := []interface{}{}
	for _, license := range licenseIDs {
		licenseInterface = append(licenseInterface, license)
	}

	return licenseInterface, nil
}

func decompress(artifact io.Reader, destination string, stripComponents int) error {
	archive := vacation.NewArchive(artifact)

	err := archive.StripComponents(stripComponents).Decompress(destination)
	if err != nil {
		return fmt.Errorf("failed to decompress source file: %w", err)
	}

	return nil
}
