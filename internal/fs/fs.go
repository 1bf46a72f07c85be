// Package fs defines the filesystem abstraction used to read the save directory
// and copy files within it.
//
// Copies are staged in a hidden .tmp-<uuid> file next to the destination. Failed
// copies remove it, but killing the process mid-copy can leave it behind.
package fs

import "context"

type FS interface {
	// ReadDirNames returns the names of the immediate entries of dir in
	// the order the filesystem enumerates them.
	ReadDirNames(dir string) ([]string, error)
	// Exists reports whether path is present.
	Exists(path string) (bool, error)
	// CopyFile replaces dst with the bytes of src and reports how many were copied.
	CopyFile(ctx context.Context, src, dst string) (int64, error)
}
