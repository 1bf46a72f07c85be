package fs

import (
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// implements whole-file copying with overwrite semantics.
// Bytes go to a staging file next to dst which is then renamed over it,
// so readers of dst see either the old or the new content.

const stagingPrefix = ".tmp-"

func stagingPath(dst string) string {
	return filepath.Join(filepath.Dir(dst), stagingPrefix+uuid.NewString())
}

func copyOnce(src, dst string) (n int64, err error) {
	in, err := os.Open(src)
	if err != nil {
		return 0, err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return 0, err
	}

	tmp := stagingPath(dst)
	out, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_EXCL, info.Mode().Perm())
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			_ = out.Close()
			_ = os.Remove(tmp)
		}
	}()

	if n, err = io.Copy(out, in); err != nil {
		return 0, err
	}
	if err = out.Sync(); err != nil {
		return 0, err
	}
	if err = out.Close(); err != nil {
		return 0, err
	}
	if err = replace(tmp, dst); err != nil {
		return 0, err
	}
	return n, nil
}
