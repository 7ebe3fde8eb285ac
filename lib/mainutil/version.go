package mainutil

import (
	_ "embed"
	"strings"
)

//go:embed version.txt
var mimetableVersion string

var appVersion string = "unset"

// MimetableVersion returns the version of mimetable itself.
func MimetableVersion() string {
	return strings.Trim(mimetableVersion, " \t\r\n")
}

// SetAppVersion changes the application version.
func SetAppVersion(version string) {
	appVersion = strings.Trim(version, " \t\r\n")
}

// AppVersion returns the application version.
func AppVersion() string {
	return appVersion
}
