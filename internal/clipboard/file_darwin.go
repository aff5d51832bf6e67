//go:build darwin

package clipboard

import (
	"os/exec"
	"strings"
)

// copyFileRef uses osascript so pasting into Finder/Slack/Mail drops the
// actual file, not its path.
func copyFileRef(path string) error {
	escaped := strings.ReplaceAll(path, `"`, `\"`)
	script := `set the clipboard to (POSIX file "` + escaped + `")`
	return exec.Command("osascript", "-e", script).Run()
}
