// Package diff implements the directory-comparison and line-level file
// diff engines behind the Diff Engine screen.
package diff

import (
	"crypto/md5"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// EntryStatus classifies one relative path's comparison result.
type EntryStatus int

const (
	Same EntryStatus = iota
	Differing
	OnlyLeft
	OnlyRight
)

// Entry is one row of a directory diff.
type Entry struct {
	RelPath string
	Status  EntryStatus
	LeftIsDir  bool
	RightIsDir bool
}

// CompareMethod selects how two regular files are judged equal.
type CompareMethod int

const (
	CompareByContent CompareMethod = iota
	CompareBySize
	CompareByModTime
)

// Directories walks left and right and reports a status for the union of
// relative paths found in either tree.
func Directories(left, right string, method CompareMethod) ([]Entry, error) {
	leftSet, err := collect(left)
	if err != nil {
		return nil, err
	}
	rightSet, err := collect(right)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var entries []Entry
	for rel, li := range leftSet {
		seen[rel] = true
		ri, ok := rightSet[rel]
		if !ok {
			entries = append(entries, Entry{RelPath: rel, Status: OnlyLeft, LeftIsDir: li.IsDir()})
			continue
		}
		if li.IsDir() || ri.IsDir() {
			status := Same
			if li.IsDir() != ri.IsDir() {
				status = Differing
			}
			entries = append(entries, Entry{RelPath: rel, Status: status, LeftIsDir: li.IsDir(), RightIsDir: ri.IsDir()})
			continue
		}
		equal, err := filesEqual(filepath.Join(left, rel), filepath.Join(right, rel), li, ri, method)
		if err != nil {
			return nil, err
		}
		status := Same
		if !equal {
			status = Differing
		}
		entries = append(entries, Entry{RelPath: rel, Status: status})
	}
	for rel, ri := range rightSet {
		if seen[rel] {
			continue
		}
		entries = append(entries, Entry{RelPath: rel, Status: OnlyRight, RightIsDir: ri.IsDir()})
	}
	return entries, nil
}

func collect(root string) (map[string]fs.FileInfo, error) {
	out := make(map[string]fs.FileInfo)
	err := filepath.Walk(root, func(path string, info fs.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if path == root {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		out[rel] = info
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func filesEqual(leftPath, rightPath string, li, ri fs.FileInfo, method CompareMethod) (bool, error) {
	switch method {
	case CompareBySize:
		return li.Size() == ri.Size(), nil
	case CompareByModTime:
		return li.ModTime().Equal(ri.ModTime()), nil
	default:
		if li.Size() != ri.Size() {
			return false, nil
		}
		lh, err := md5File(leftPath)
		if err != nil {
			return false, err
		}
		rh, err := md5File(rightPath)
		if err != nil {
			return false, err
		}
		return lh == rh, nil
	}
}

func md5File(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	h := md5.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return string(h.Sum(nil)), nil
}
