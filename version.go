// Package procode holds the editor's release version.
package procode

import (
	_ "embed"
	"fmt"
	"regexp"
	"strings"
)

var semverRE = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?(?:\+[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?$`)

//go:embed VERSION
var embeddedVersion string

// Version is the release version in SemVer form, without a leading v.
func Version() string {
	return strings.TrimSpace(embeddedVersion)
}

// IsSemver reports whether v matches SemVer 2.0.0.
func IsSemver(v string) bool {
	return semverRE.MatchString(strings.TrimSpace(v))
}

// Describe is the string printed by --version. Empty build fields are
// omitted.
func Describe(version, commit, date string) string {
	if version == "" {
		version = Version()
	}
	var meta []string
	if commit != "" {
		meta = append(meta, "commit: "+commit)
	}
	if date != "" {
		meta = append(meta, "built: "+date)
	}
	if len(meta) == 0 {
		return version
	}
	return fmt.Sprintf("%s (%s)", version, strings.Join(meta, ", "))
}
