// Package version holds build metadata injected at release time via ldflags.
package version

var (
	Version   = "dev"
	Sha       = "HEAD"
	Buildtime = "dev"
)
