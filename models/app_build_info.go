// SPDX-License-Identifier: Apache-2.0

package models

// AppBuildInfo carries immutable build-time metadata embedded into binaries.
//
// Values are typically injected by linker flags during CI/CD and printed on
// server startup for diagnostics and release traceability.
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

// NewAppBuildInfo constructs [AppBuildInfo] from the provided build metadata.
func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: buildVersion,
		buildDate:    buildDate,
		buildCommit:  buildCommit,
	}
}

// BuildVersion returns the semantic version string of the build.
func (a AppBuildInfo) BuildVersion() string {
	return a.buildVersion
}

// BuildDate returns the build timestamp string.
func (a AppBuildInfo) BuildDate() string {
	return a.buildDate
}

// BuildCommit returns the source-control commit hash used for the build.
func (a AppBuildInfo) BuildCommit() string {
	return a.buildCommit
}

// String renders the build metadata in the canonical startup banner format.
// Empty fields are shown as "N/A".
func (a AppBuildInfo) String() string {
	return "Build version: " + orNA(a.buildVersion) + "\n" +
		"Build date: " + orNA(a.buildDate) + "\n" +
		"Build commit: " + orNA(a.buildCommit) + "\n"
}

func orNA(value string) string {
	if value == "" {
		return "N/A"
	}
	return value
}
