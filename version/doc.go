// Package version reports the build version of github2.
//
// Version and the commit are set at compile time via -ldflags:
//
//	go build -ldflags "-X github.com/kbukum/github2/version.Version=0.3.0" ./cmd/github2
//
// When they are not set, the VCS stamp of the Go build is used.
package version
