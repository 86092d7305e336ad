package components

import (
	"net/url"

	"github.com/package-url/packageurl-go"
)

// GeneratePurl generates a package URL for a dependency artifact.
func GeneratePurl(name, version, checksum, source string) string {
	purl := packageurl.NewPackageURL(
		packageurl.TypeGeneric,
		"",
		name,
		version,
		packageurl.QualifiersFromMap(map[string]string{
			"checksum":     checksum,
			"download_url": source,
		}),
		"",
	)

	// packageurl-go percent-encodes the qualifier values. Prefer the decoded
	// form when unescaping succeeds, since both are valid purls.
	purlString, err := url.PathUnescape(purl.ToString())
	if err != nil {
		return purl.ToString()
	}
	return purlString
}
