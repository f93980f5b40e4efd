package version

// Set via -ldflags at build time.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

func Short() string {
	return Version
}

func Full() string {
	return Version + " (commit: " + GitCommit + ", built: " + BuildTime + ")"
}
