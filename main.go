package main

import (
	"runtime/debug"

	"github.com/marcus/remind/cmd"
)

// Version may be set at build time via -ldflags "-X main.Version=...".
// If left as "dev", a version is derived from Go build info instead.
var Version = "dev"

// effectiveVersion resolves the version string shown by `remind version`:
// an injected release version wins, then the module version from
// `go install remind@vX.Y.Z`, then a devel tag built from VCS metadata.
func effectiveVersion(v string) string {
	if v != "" && v != "dev" {
		return v
	}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return v
	}
	if mv := info.Main.Version; mv != "" && mv != "(devel)" {
		return mv
	}

	var rev string
	dirty := false
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			rev = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}
	if rev == "" {
		return v
	}
	if len(rev) > 12 {
		rev = rev[:12]
	}
	if dirty {
		return "devel+" + rev + "+dirty"
	}
	return "devel+" + rev
}

func main() {
	cmd.SetVersion(effectiveVersion(Version))
	cmd.Execute()
}
