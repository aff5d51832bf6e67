package clipboard

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCopyFile_MissingFileFailsWithoutTouchingClipboard(t *testing.T) {
	err := CopyFile(filepath.Join(t.TempDir(), "Amazon-EC2.png"))

	assert.ErrorIs(t, err, ErrFileNotFound)
}
