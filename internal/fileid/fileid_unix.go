//go:build unix

package fileid

import (
	"io/fs"

	"golang.org/x/sys/unix"
)

// Of returns the identity of the file at path, following symlinks.
// ok is false when the platform cannot report one.
func Of(path string) (key Key, ok bool, err error) {
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return Key{}, false, &fs.PathError{Op: "stat", Path: path, Err: err}
	}
	return Key{Dev: uint64(st.Dev), Ino: uint64(st.Ino)}, true, nil
}
