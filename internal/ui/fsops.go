package ui

import (
	"io"
	"path"

	"github.com/cokacdir/cokacdir/internal/vfs"
)

// crossCopy copies src (on srcFS) to dst (on dstFS), recursing into
// directories. srcFS and dstFS may be the same backend (same-panel
// duplication) or different ones (local-to-SFTP and back), since it only
// goes through the vfs.FS interface.
func crossCopy(srcFS, dstFS vfs.FS, src, dst string) error {
	info, err := srcFS.Stat(src)
	if err != nil {
		return err
	}
	if info.IsDir() {
		if err := dstFS.Mkdir(dst); err != nil {
			return err
		}
		entries, err := srcFS.ReadDir(src)
		if err != nil {
			return err
		}
		for _, e := range entries {
			if err := crossCopy(srcFS, dstFS, path.Join(src, e.Name()), path.Join(dst, e.Name())); err != nil {
				return err
			}
		}
		return nil
	}
	r, err := srcFS.OpenRead(src)
	if err != nil {
		return err
	}
	defer r.Close()
	w, err := dstFS.OpenWrite(dst)
	if err != nil {
		return err
	}
	defer w.Close()
	_, err = io.Copy(w, r)
	return err
}

// crossMove relocates src to dst, trying a same-backend Rename first (the
// only way to preserve a directory's contents atomically) and falling back
// to copy-then-remove when srcFS and dstFS are different backends or the
// backend's Rename can't do it.
func crossMove(srcFS, dstFS vfs.FS, src, dst string) error {
	if srcFS == dstFS {
		if err := srcFS.Rename(src, dst); err == nil {
			return nil
		}
	}
	if err := crossCopy(srcFS, dstFS, src, dst); err != nil {
		return err
	}
	return srcFS.Remove(src)
}

// deletePath removes src, recursively if it's a directory.
func deletePath(fsys vfs.FS, src string) error {
	return fsys.Remove(src)
}
