package app

import (
	"runtime/debug"
	"sync"
)

// Set at link time:
//
//	go build -ldflags "-X github.com/heartmarshall/restoration-backend/internal/app.Version=1.4.0 \
//	  -X github.com/heartmarshall/restoration-backend/internal/app.Commit=$(git rev-parse --short HEAD)" ./cmd/server
var (
	Version   = "dev"
	Commit    = ""
	BuildTime = ""
)

var buildInfoOnce = sync.OnceValue(func() (info struct{ commit, at string }) {
	info.commit, info.at = Commit, BuildTime
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	for _, s := range bi.Settings {
		switch {
		case s.Key == "vcs.revision" && info.commit == "":
			info.commit = s.Value
		case s.Key == "vcs.time" && info.at == "":
			info.at = s.Value
		}
	}
	return info
})

// BuildVersion is reported in startup logs and on /health. Without ldflags the
// commit and time fall back to the VCS stamp embedded by the go tool.
func BuildVersion() string {
	info := buildInfoOnce()
	v := Version
	if info.commit != "" {
		c := info.commit
		if len(c) > 12 {
			c = c[:12]
		}
		v += " (" + c
		if info.at != "" {
			v += ", " + info.at
		}
		v += ")"
	}
	return v
}
