// Package platform describes the operating system nixpm is checking for.
//
// Code that behaves differently on macOS receives a [Platform] value instead
// of consulting runtime.GOOS, so every branch can run under test on any host.
package platform

import (
	"fmt"
	"runtime"
	"slices"
)

// Known operating system identifiers (GOOS values).
const (
	Darwin  = "darwin"
	Linux   = "linux"
	Windows = "windows"
)

// ValidOverrides lists the values accepted by --platform.
var ValidOverrides = []string{Darwin, Linux}

// Platform identifies the target operating system.
type Platform struct {
	OS string
}

// Current returns the platform of the running binary.
func Current() Platform {
	return Platform{OS: runtime.GOOS}
}

// Parse returns the platform named by os. Only ValidOverrides are accepted.
func Parse(os string) (Platform, error) {
	if !slices.Contains(ValidOverrides, os) {
		return Platform{}, fmt.Errorf("invalid platform %q: must be %q or %q", os, Darwin, Linux)
	}
	return Platform{OS: os}, nil
}

// IsDarwin reports whether the platform is macOS, where Homebrew is managed.
func (p Platform) IsDarwin() bool {
	return p.OS == Darwin
}

// LookupCommand returns the command used to resolve executables on PATH.
func (p Platform) LookupCommand() string {
	if p.OS == Windows {
		return "where"
	}
	return "which"
}

func (p Platform) String() string {
	return p.OS
}
