package enc

import (
	"context"
	"io"
	"os"
	"path/filepath"
)

// copyBufSize is the buffer size used when streaming a chunk's file-data
// slice through the encryptor, so packing never holds a whole chunk's
// plaintext in memory.
const copyBufSize = 1 << 20

// ProgressFunc reports cumulative bytes processed against the total for a
// pack or unpack operation.
type ProgressFunc func(done, total int64)

// PackFile splits path into one or more encrypted .cokacenc chunks of at
// most splitSize bytes of original file data each, writes them alongside
// path, and deletes path once every chunk has been written successfully.
// If writing any chunk fails (or ctx is cancelled), chunks already written
// for this call are removed and path is left untouched. If only the final
// removal of path fails, the written chunk paths are returned with that
// error.
func PackFile(ctx context.Context, path string, password []byte, splitSize int64, progress ProgressFunc) ([]string, error) {
	if splitSize <= 0 {
		splitSize = 1 << 30
	}
	info, err := gatherFileInfo(path)
	if err != nil {
		return nil, err
	}
	groupID, err := GenerateGroupID()
	if err != nil {
		return nil, err
	}
	// written chunk names carry no key prefix; ParseEncFilename still
	// accepts one so chunks named by the original tool group correctly.
	keyPrefix := ""
	dir := filepath.Dir(path)

	numChunks := 1
	if info.size > 0 {
		numChunks = int((info.size + splitSize - 1) / splitSize)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var written []string
	cleanup := func() {
		for _, p := range written {
			os.Remove(p)
		}
	}

	var done int64
	for i := 0; i < numChunks; i++ {
		if err := ctx.Err(); err != nil {
			cleanup()
			return nil, err
		}
		offset := int64(i) * splitSize
		length := splitSize
		if offset+length > info.size {
			length = info.size - offset
		}
		if info.size == 0 {
			length = 0
		}

		meta := ChunkMetadata{
			V: Version, Group: groupID, Name: info.name, Size: info.size,
			MD5: info.md5, MTime: info.mtime.Unix(), Perm: uint32(info.perm),
			Chunks: numChunks, Idx: i, Offset: offset, Len: length,
		}
		metaBlock, err := encodeMetadataBlock(meta)
		if err != nil {
			cleanup()
			return nil, err
		}

		salt, err := GenerateSalt()
		if err != nil {
			cleanup()
			return nil, err
		}
		iv, err := GenerateIV()
		if err != nil {
			cleanup()
			return nil, err
		}
		key := DeriveKey(password, salt)
		encryptor, err := NewChunkEncryptor(key, iv)
		if err != nil {
			cleanup()
			return nil, err
		}

		chunkPath, err := ChunkFilename(dir, keyPrefix, groupID, i)
		if err != nil {
			cleanup()
			return nil, err
		}
		out, err := os.OpenFile(chunkPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
		if err != nil {
			cleanup()
			return nil, err
		}
		written = append(written, chunkPath)

		if err := WriteHeader(out, Header{Version: Version, Salt: salt, IV: iv}); err != nil {
			out.Close()
			cleanup()
			return nil, err
		}
		if ct := encryptor.Update(metaBlock); len(ct) > 0 {
			if _, err := out.Write(ct); err != nil {
				out.Close()
				cleanup()
				return nil, err
			}
		}

		if _, err := f.Seek(offset, io.SeekStart); err != nil {
			out.Close()
			cleanup()
			return nil, err
		}
		remaining := length
		buf := make([]byte, copyBufSize)
		for remaining > 0 {
			if err := ctx.Err(); err != nil {
				out.Close()
				cleanup()
				return nil, err
			}
			n := int64(len(buf))
			if remaining < n {
				n = remaining
			}
			rn, rerr := f.Read(buf[:n])
			if rn > 0 {
				if ct := encryptor.Update(buf[:rn]); len(ct) > 0 {
					if _, werr := out.Write(ct); werr != nil {
						out.Close()
						cleanup()
						return nil, werr
					}
				}
				remaining -= int64(rn)
				done += int64(rn)
				if progress != nil {
					progress(done, info.size)
				}
			}
			if rerr != nil && rerr != io.EOF {
				out.Close()
				cleanup()
				return nil, rerr
			}
			if rerr == io.EOF {
				break
			}
		}

		if _, err := out.Write(encryptor.Finalize()); err != nil {
			out.Close()
			cleanup()
			return nil, err
		}
		if err := out.Close(); err != nil {
			cleanup()
			return nil, err
		}
	}

	f.Close()
	if err := os.Remove(path); err != nil {
		return written, err
	}
	return written, nil
}
