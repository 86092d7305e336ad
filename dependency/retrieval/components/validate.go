package components

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/paketo-buildpacks/packit/v2/cargo"
)

// Validate downloads an artifact and confirms it matches the digest
// published for it.
func Validate(uri, checksum string) (bool, error) {
	resp, err := http.Get(uri) // nolint
	if err != nil {
		return false, fmt.Errorf("failed to get %s: %w", uri, err)
	}
	defer resp.Body.Close()

	vr := cargo.NewValidatedReader(resp.Body, checksum)
	valid, err := vr.Valid()
	if err != nil {
		return false, err
	}
	if !valid {
		return false, errors.New("failed to validate dependency checksum")
	}
	return true, nil
}

// Checksum downloads an artifact and returns its hex-encoded SHA256 digest,
// for mirrors that do not publish one.
func Checksum(uri string) (string, error) {
	resp, err := http.Get(uri) // nolint
	if err != nil {
		return "", fmt.Errorf("failed to get %s: %w", uri, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("failed to get %s: %d", uri, resp.StatusCode)
	}

	hash := sha256.New()
	_, err = io.Copy(hash, resp.Body)
	if err != nil {
		// untested
		return "", err
	}
	return hex.EncodeToString(hash.Sum(nil)), nil
}
