//go:build !unix

package fileid

// Of reports no identity on platforms without device/inode numbers.
func Of(path string) (key Key, ok bool, err error) {
	return Key{}, false, nil
}
