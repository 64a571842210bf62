// Package version holds build metadata set through -ldflags.
package version

// Version is the application version.
//
//	go build -ldflags "-X github.com/ndewijer/Fund-Growth-Calculator/internal/version.Version=1.2.0"
var Version = "dev"
