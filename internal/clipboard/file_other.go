//go:build !darwin && !linux && !windows

package clipboard

import "errors"

func copyFileRef(path string) error {
	return errors.New("file clipboard not supported on this platform")
}
