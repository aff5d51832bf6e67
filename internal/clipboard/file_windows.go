//go:build windows

package clipboard

import (
	"os/exec"
	"strings"
)

// copyFileRef uses PowerShell's Set-Clipboard, which puts a real file drop
// on the clipboard for Explorer paste.
func copyFileRef(path string) error {
	escaped := strings.ReplaceAll(path, "'", "''")
	return exec.Command("powershell", "-NoProfile", "-Command",
		"Set-Clipboard -LiteralPath '"+escaped+"'").Run()
}
