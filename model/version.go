package model

// VersionInfo holds build-time version metadata.
type VersionInfo struct {
	Version string
	Commit  string
	Date    string
}
