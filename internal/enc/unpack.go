package enc

import (
	"context"
	"crypto/md5"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// UnpackGroup reassembles every .cokacenc chunk sharing groupID in dir back
// into the original file, verifying sequence continuity, per-chunk metadata
// consistency, and the whole-file MD5 digest before replacing the chunk
// files with the restored original. It returns the path of the restored
// file.
func UnpackGroup(ctx context.Context, dir, groupID string, password []byte, progress ProgressFunc) (string, error) {
	groups, err := GroupEncFiles(dir)
	if err != nil {
		return "", err
	}
	files, ok := groups[groupID]
	if !ok || len(files) == 0 {
		return "", fmt.Errorf("%w: %s", ErrNoEncFiles, groupID)
	}
	for i, f := range files {
		if f.SeqIndex != i {
			label, _ := SeqLabel(i)
			return "", &MissingChunkError{ExpectedSeq: label}
		}
	}

	tmpPath := filepath.Join(dir, groupID+".cokacdir.tmp")
	tmp, err := os.OpenFile(tmpPath, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return "", err
	}

	var first ChunkMetadata
	var totalWritten int64

	fail := func(err error) (string, error) {
		tmp.Close()
		os.Remove(tmpPath)
		return "", err
	}

	// Every chunk is written at its own meta.Offset rather than appended in
	// processing order, so a chunk group decrypts correctly under any
	// permutation of files. A chunk whose Idx disagrees with its
	// filename-derived position in the sequence, or whose Offset plus data
	// length runs past the total size, is caught here rather than silently
	// accepted.
	for i, fi := range files {
		if err := ctx.Err(); err != nil {
			return fail(err)
		}
		plain, meta, err := decryptChunkFile(fi.Path, password)
		if err != nil {
			return fail(err)
		}
		if i == 0 {
			first = meta
			if err := tmp.Truncate(first.Size); err != nil {
				return fail(err)
			}
		} else {
			if meta.Group != first.Group || meta.Chunks != first.Chunks ||
				meta.Name != first.Name || meta.MD5 != first.MD5 ||
				meta.Size != first.Size {
				return fail(ErrGroupMismatch)
			}
		}
		if meta.Chunks != len(files) {
			return fail(ErrGroupMismatch)
		}
		if meta.Idx != i || meta.Offset+int64(len(plain)) > first.Size {
			return fail(ErrChunkOffsetMismatch)
		}
		if _, err := tmp.WriteAt(plain, meta.Offset); err != nil {
			return fail(err)
		}
		totalWritten += int64(len(plain))
		if progress != nil {
			progress(totalWritten, first.Size)
		}
	}

	if _, err := tmp.Seek(0, io.SeekStart); err != nil {
		return fail(err)
	}
	hasher := md5.New()
	if _, err := io.Copy(hasher, tmp); err != nil {
		return fail(err)
	}
	if err := tmp.Close(); err != nil {
		return fail(err)
	}

	actualMD5 := fmt.Sprintf("%x", hasher.Sum(nil))
	if actualMD5 != first.MD5 || totalWritten != first.Size {
		defer os.Remove(tmpPath)
		return "", &Md5MismatchError{Expected: first.MD5, Actual: actualMD5}
	}

	finalPath := filepath.Join(dir, first.Name)
	if err := os.Rename(tmpPath, finalPath); err != nil {
		return "", err
	}
	if err := os.Chmod(finalPath, os.FileMode(first.Perm)); err != nil {
		return "", err
	}
	mtime := unixToTime(first.MTime)
	if err := os.Chtimes(finalPath, mtime, mtime); err != nil {
		return "", err
	}

	for _, fi := range files {
		os.Remove(fi.Path)
	}

	return finalPath, nil
}

// decryptChunkFile reads and decrypts one chunk file, returning its file
// data slice and embedded metadata.
func decryptChunkFile(path string, password []byte) ([]byte, ChunkMetadata, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ChunkMetadata{}, err
	}
	defer f.Close()

	header, err := ReadHeader(f)
	if err != nil {
		return nil, ChunkMetadata{}, err
	}
	ciphertext, err := io.ReadAll(f)
	if err != nil {
		return nil, ChunkMetadata{}, err
	}
	key := DeriveKey(password, header.Salt)
	plaintext, err := DecryptChunkStreaming(key, header.IV, ciphertext)
	if err != nil {
		return nil, ChunkMetadata{}, err
	}
	meta, data, err := decodeMetadataBlock(plaintext)
	if err != nil {
		return nil, ChunkMetadata{}, err
	}
	return data, meta, nil
}
