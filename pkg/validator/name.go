package validator

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// MaxNameLength is the upper bound for environment and variable names,
// counted in characters.
const MaxNameLength = 100

var (
	ErrNameRequired = errors.New("name is required")
	ErrNameTooLong  = errors.New("name must be at most 100 characters")
	ErrNameInvalid  = errors.New("name must not contain path separators or dot segments")
)

// NormalizeEnvironmentName trims surrounding whitespace and upper-cases the
// name. Every read and write path that touches an environment name goes
// through this function, so "prod", "Prod" and "PROD" always address the
// same record.
func NormalizeEnvironmentName(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}

// StripJSONSuffix removes a trailing ".json" from a path parameter. The
// environment detail route doubles as the flattened dump route, where the
// parameter is ambiguous between a resource name and a file extension.
func StripJSONSuffix(name string) (string, bool) {
	if stripped, ok := strings.CutSuffix(name, ".json"); ok {
		return stripped, true
	}
	return name, false
}

// ValidateName checks presence, length and character safety. Names appear
// in URLs and in storage object keys, so slashes, backslashes, NUL bytes
// and ".." segments are rejected at creation time. It does not normalize;
// callers normalize first where case-insensitivity applies.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameRequired
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return ErrNameTooLong
	}
	if strings.ContainsAny(name, "/\\\x00") || strings.Contains(name, "..") {
		return ErrNameInvalid
	}
	return nil
}
