// Package fileid identifies files by their on-disk identity rather than by path,
// so a traversal can tell when two paths lead to the same directory.
package fileid

import "fmt"

// Key is the (device, inode) pair of a file.
type Key struct {
	Dev uint64
	Ino uint64
}

func (k Key) String() string {
	return fmt.Sprintf("%d:%d", k.Dev, k.Ino)
}
