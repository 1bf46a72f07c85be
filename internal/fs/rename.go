package fs

import "os"

// wraps os.Rename, which replaces an existing destination on both Unix and Windows.
// The staging file is in the same directory as dst, so the rename never crosses volumes.

func replace(stagingPath, dst string) error {
	return os.Rename(stagingPath, dst)
}
