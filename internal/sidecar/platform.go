// Package sidecar resolves where a host keeps Finder info and resource fork
// data, and opens the primitives that hold them.
package sidecar

import (
	"os"
	"runtime"
	"strings"

	"github.com/deploymenttheory/go-afp/internal/types"
)

// Key names one side-car primitive. For SidecarStream keys Name is a suffix
// appended to the file path; for SidecarXattr keys it is the attribute name.
type Key struct {
	Kind types.SidecarKind
	Name string
}

// Platform describes the side-car conventions of one host OS. The names must
// match what native Finder, AFP and SMB tooling write.
type Platform struct {
	GOOS string

	FinderInfo       Key
	FinderInfoFormat types.RecordFormat

	ResourceFork Key

	// ResourceForkAttr is the extended attribute used when the blob backend is
	// requested on a host whose native resource fork is a stream. Empty when
	// the host has no extended attributes.
	ResourceForkAttr string
}

const (
	// Linux only permits unprivileged attributes in the user namespace.
	linuxFinderInfoAttr   = "user.com.apple.FinderInfo"
	linuxResourceForkAttr = "user.com.apple.ResourceFork"

	appleFinderInfoAttr   = "com.apple.FinderInfo"
	appleResourceForkAttr = "com.apple.ResourceFork"

	// Darwin exposes the resource fork as a path below the file.
	darwinResourceForkPath = "/..namedfork/rsrc"

	// NTFS alternate data streams used by the Windows AFP/SMB stack.
	windowsFinderInfoStream   = ":AFP_AfpInfo"
	windowsResourceForkStream = ":AFP_Resource"
)

var appleXattrPlatform = Platform{
	FinderInfo:       Key{Kind: types.SidecarXattr, Name: appleFinderInfoAttr},
	FinderInfoFormat: types.FormatPlain,
	ResourceFork:     Key{Kind: types.SidecarXattr, Name: appleResourceForkAttr},
	ResourceForkAttr: appleResourceForkAttr,
}

var platforms = map[string]Platform{
	"darwin": {
		FinderInfo:       Key{Kind: types.SidecarXattr, Name: appleFinderInfoAttr},
		FinderInfoFormat: types.FormatPlain,
		ResourceFork:     Key{Kind: types.SidecarStream, Name: darwinResourceForkPath},
		ResourceForkAttr: appleResourceForkAttr,
	},
	"linux": {
		FinderInfo:       Key{Kind: types.SidecarXattr, Name: linuxFinderInfoAttr},
		FinderInfoFormat: types.FormatPlain,
		ResourceFork:     Key{Kind: types.SidecarXattr, Name: linuxResourceForkAttr},
		ResourceForkAttr: linuxResourceForkAttr,
	},
	"windows": {
		FinderInfo:       Key{Kind: types.SidecarStream, Name: windowsFinderInfoStream},
		FinderInfoFormat: types.FormatEnvelope,
		ResourceFork:     Key{Kind: types.SidecarStream, Name: windowsResourceForkStream},
	},
	"freebsd": appleXattrPlatform,
	"netbsd":  appleXattrPlatform,
	"solaris": appleXattrPlatform,
	"illumos": appleXattrPlatform,
}

func init() {
	platforms["ios"] = platforms["darwin"]
	platforms["android"] = platforms["linux"]
	for goos, p := range platforms {
		p.GOOS = goos
		platforms[goos] = p
	}
}

// Lookup returns the conventions for goos. Unknown systems get a Platform
// whose keys are all SidecarNone.
func Lookup(goos string) Platform {
	if p, ok := platforms[goos]; ok {
		return p
	}
	return Platform{GOOS: goos, FinderInfoFormat: types.FormatPlain}
}

// Host returns the conventions for the running OS.
func Host() Platform {
	return Lookup(runtime.GOOS)
}

// StreamPath returns the path of a stream side-car for file.
func StreamPath(file string, key Key) string {
	return file + key.Name
}

// WithFinderInfoFormat returns a copy of p using format for Finder info
// records. FormatAuto leaves p unchanged.
func (p Platform) WithFinderInfoFormat(format types.RecordFormat) Platform {
	if format != types.FormatAuto {
		p.FinderInfoFormat = format
	}
	return p
}

// IsSidecarPath reports whether path names a stream side-car of another
// existing file. Some hosts list those streams as ordinary directory
// entries.
func (p Platform) IsSidecarPath(path string) bool {
	for _, key := range []Key{p.FinderInfo, p.ResourceFork} {
		if key.Kind != types.SidecarStream || strings.Contains(key.Name, "/") {
			continue
		}
		base, ok := strings.CutSuffix(path, key.Name)
		if !ok || base == "" {
			continue
		}
		if fi, err := os.Stat(base); err == nil && fi.Mode().IsRegular() {
			return true
		}
	}
	return false
}
