//go:build linux

package clipboard

import (
	"os"
	"os/exec"
	"strings"
)

// copyFileRef writes a text/uri-list clipboard target, which file managers
// (Nautilus, Dolphin) interpret as a copied file. Prefers wl-copy on Wayland
// sessions, falls back to xclip.
func copyFileRef(path string) error {
	uri := "file://" + path + "\n"

	if os.Getenv("WAYLAND_DISPLAY") != "" {
		if wlCopy, err := exec.LookPath("wl-copy"); err == nil {
			cmd := exec.Command(wlCopy, "--type", "text/uri-list")
			cmd.Stdin = strings.NewReader(uri)
			return cmd.Run()
		}
	}

	xclip, err := exec.LookPath("xclip")
	if err != nil {
		return err
	}
	cmd := exec.Command(xclip, "-selection", "clipboard", "-t", "text/uri-list")
	cmd.Stdin = strings.NewReader(uri)
	return cmd.Run()
}
