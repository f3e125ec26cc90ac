package parsley

// Library version.
const (
	Version       = "1.1.1"
	VersionString = "parsley " + Version
)
