package info

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
	"sync"
)

// version and buildTime may be set with -ldflags "-X".
// Underscores stand in for spaces.
var (
	version   = "dev_build"
	buildTime = "unknown"

	name    string
	license string

	info     *Info
	loadInfo sync.Once
)

// Info holds the program meta information.
type Info struct {
	Name      string
	Version   string
	License   string
	BuildTime string

	GoVersion string
	CGO       bool

	Commit     string
	CommitTime string
	Dirty      bool
}

// Set sets the program name and license, and overrides the version if
// setVersion is not empty. It must be called before GetInfo.
func Set(setName, setVersion, setLicense string) {
	name = setName
	license = setLicense
	if setVersion != "" {
		version = setVersion
	}
}

// GetInfo returns the program meta information. It is collected once.
func GetInfo() *Info {
	loadInfo.Do(func() {
		info = &Info{
			Name:       name,
			Version:    strings.ReplaceAll(strings.TrimPrefix(version, "v"), "_", " "),
			License:    license,
			BuildTime:  strings.ReplaceAll(buildTime, "_", " "),
			GoVersion:  runtime.Version(),
			Commit:     "unknown",
			CommitTime: "unknown",
		}

		buildInfo, ok := debug.ReadBuildInfo()
		if !ok {
			return
		}
		info.GoVersion = buildInfo.GoVersion
		for _, setting := range buildInfo.Settings {
			switch setting.Key {
			case "CGO_ENABLED":
				info.CGO = setting.Value == "1"
			case "vcs.revision":
				info.Commit = setting.Value
			case "vcs.time":
				info.CommitTime = setting.Value
			case "vcs.modified":
				info.Dirty = setting.Value == "true"
			}
		}
		if info.Dirty && !strings.HasSuffix(info.Version, "dev build") {
			info.Version += " dev build"
		}
	})

	return info
}

// Version returns the annotated version.
func Version() string {
	return GetInfo().Version
}

// VersionNumber returns the version without annotations, or 0.0.0 for dev builds.
func VersionNumber() string {
	number := strings.TrimSpace(strings.TrimSuffix(Version(), "dev build"))
	if number == "" {
		return "0.0.0"
	}
	return number
}

// FullVersion returns a multi line description of the version and build.
func FullVersion() string {
	i := GetInfo()

	cgo := "-cgo"
	if i.CGO {
		cgo = "+cgo"
	}
	state := "clean"
	if i.Dirty {
		state = "dirty"
	}

	b := new(strings.Builder)
	fmt.Fprintf(b, "%s %s\n\n", i.Name, i.Version)
	fmt.Fprintf(b, "built with %s (%s %s) for %s/%s\n", i.GoVersion, runtime.Compiler, cgo, runtime.GOOS, runtime.GOARCH)
	fmt.Fprintf(b, "  at %s\n\n", i.BuildTime)
	fmt.Fprintf(b, "commit %s (%s)\n", i.Commit, state)
	fmt.Fprintf(b, "  at %s\n\n", i.CommitTime)
	fmt.Fprintf(b, "Licensed under the %s license.", i.License)
	return b.String()
}
