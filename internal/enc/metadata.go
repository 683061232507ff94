package enc

import (
	"crypto/md5"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"
)

// ChunkMetadata is the JSON blob embedded, length-prefixed, at the front of
// every chunk's decrypted plaintext. Every chunk in a group carries the
// whole-file fields (name/size/md5/mtime/perm/chunks) so a consumer can
// validate consistency without needing chunk 0 specifically in hand, plus
// this chunk's own idx/offset/len.
type ChunkMetadata struct {
	V      int    `json:"v"`
	Group  string `json:"group"`
	Name   string `json:"name"`
	Size   int64  `json:"size"`
	MD5    string `json:"md5"`
	MTime  int64  `json:"mtime"`
	Perm   uint32 `json:"perm"`
	Chunks int    `json:"chunks"`
	Idx    int    `json:"idx"`
	Offset int64  `json:"offset"`
	Len    int64  `json:"len"`
}

// fileInfo holds the whole-file facts gathered before chunking begins.
type fileInfo struct {
	name  string
	size  int64
	md5   string
	mtime time.Time
	perm  os.FileMode
}

// gatherFileInfo stats path and computes its whole-file MD5 digest.
func gatherFileInfo(path string) (fileInfo, error) {
	st, err := os.Stat(path)
	if err != nil {
		return fileInfo{}, err
	}
	f, err := os.Open(path)
	if err != nil {
		return fileInfo{}, err
	}
	defer f.Close()
	h := md5.New()
	if _, err := io.Copy(h, f); err != nil {
		return fileInfo{}, err
	}
	return fileInfo{
		name:  st.Name(),
		size:  st.Size(),
		md5:   fmt.Sprintf("%x", h.Sum(nil)),
		mtime: st.ModTime(),
		perm:  st.Mode().Perm(),
	}, nil
}

// encodeMetadataBlock serializes metadata with its 4-byte little-endian
// length prefix, the layout every chunk's plaintext begins with.
func encodeMetadataBlock(meta ChunkMetadata) ([]byte, error) {
	j, err := json.Marshal(meta)
	if err != nil {
		return nil, err
	}
	out := make([]byte, 4+len(j))
	binary.LittleEndian.PutUint32(out[:4], uint32(len(j)))
	copy(out[4:], j)
	return out, nil
}

// decodeMetadataBlock reads the length-prefixed metadata JSON from the
// front of plaintext and returns the metadata plus the remaining bytes
// (the chunk's file data).
func decodeMetadataBlock(plaintext []byte) (ChunkMetadata, []byte, error) {
	if len(plaintext) < 4 {
		return ChunkMetadata{}, nil, fmt.Errorf("cokacenc: chunk plaintext too short for metadata length")
	}
	mlen := binary.LittleEndian.Uint32(plaintext[:4])
	if uint64(4)+uint64(mlen) > uint64(len(plaintext)) {
		return ChunkMetadata{}, nil, fmt.Errorf("cokacenc: metadata length %d exceeds chunk plaintext", mlen)
	}
	var meta ChunkMetadata
	if err := json.Unmarshal(plaintext[4:4+mlen], &meta); err != nil {
		return ChunkMetadata{}, nil, fmt.Errorf("cokacenc: metadata parse error: %w", err)
	}
	return meta, plaintext[4+mlen:], nil
}
