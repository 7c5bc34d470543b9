package utils

// Build-time variables, set via -ldflags by the release script.
var (
	// Tag is the release tag.
	Tag string
	// GitHash is the commit the binary was built from.
	GitHash string
	// BuildStamp is the UTC build time.
	BuildStamp string
)
