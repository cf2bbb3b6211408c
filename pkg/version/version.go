// Package version derives the build identity from linker flags or VCS build
// metadata.
package version

import "runtime/debug"

// AppName appears in version strings, logs and the LLM user agent.
const AppName = "scout"

// commitOverride is set with -ldflags for container builds where no .git
// directory exists.
var commitOverride string

// GitCommit is the short commit hash identifying this build, or "dev" when no
// build metadata is available (go test, non-git builds).
var GitCommit = resolveCommit()

func resolveCommit() string {
	if commitOverride != "" {
		return shortRev(commitOverride)
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" && s.Value != "" {
				return shortRev(s.Value)
			}
		}
	}
	return "dev"
}

func shortRev(rev string) string {
	if len(rev) > 8 {
		return rev[:8]
	}
	return rev
}

// Full returns "scout/<commit>" for user-agent strings and logging.
func Full() string {
	return AppName + "/" + GitCommit
}
