package enc

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Ext is the extension every cokacenc chunk file carries.
const Ext = ".cokacenc"

// MaxSeqIndex is the highest sequence index representable by a four-letter
// base-26 label ("zzzz" = 26^4 - 1).
const MaxSeqIndex = 26*26*26*26 - 1

// GenerateGroupID returns a fresh 16-character lowercase hex group id.
func GenerateGroupID() (string, error) {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "", err
	}
	return hex.EncodeToString(b[:]), nil
}

// SeqLabel encodes index as a four-letter base-26 label: 0 -> "aaaa",
// MaxSeqIndex -> "zzzz".
func SeqLabel(index int) (string, error) {
	if index < 0 || index > MaxSeqIndex {
		return "", &SeqOverflowError{Index: index}
	}
	a := byte('a' + index/(26*26*26))
	b := byte('a' + (index/(26*26))%26)
	c := byte('a' + (index/26)%26)
	d := byte('a' + index%26)
	return string([]byte{a, b, c, d}), nil
}

// parseSeqLabel decodes a four-letter base-26 label back to its index, or
// returns ok=false if s isn't a valid label.
func parseSeqLabel(s string) (int, bool) {
	if len(s) != 4 {
		return 0, false
	}
	idx := 0
	for _, c := range []byte(s) {
		if c < 'a' || c > 'z' {
			return 0, false
		}
		idx = idx*26 + int(c-'a')
	}
	return idx, true
}

// KeyPrefix extracts the optional filename prefix derived from a password:
// the first 6 bytes, filtered down to ASCII alphanumerics.
func KeyPrefix(password []byte) string {
	n := len(password)
	if n > 6 {
		n = 6
	}
	var sb strings.Builder
	for _, b := range password[:n] {
		if (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9') {
			sb.WriteByte(b)
		}
	}
	return sb.String()
}

// ChunkFilename builds the path for chunk seq within group in dir. keyPrefix
// may be empty, in which case the filename omits that segment entirely.
func ChunkFilename(dir, keyPrefix, groupID string, seq int) (string, error) {
	label, err := SeqLabel(seq)
	if err != nil {
		return "", err
	}
	if keyPrefix == "" {
		return filepath.Join(dir, fmt.Sprintf("%s_%s%s", groupID, label, Ext)), nil
	}
	return filepath.Join(dir, fmt.Sprintf("%s_%s_%s%s", keyPrefix, groupID, label, Ext)), nil
}

// EncFileInfo is what ParseEncFilename extracts from a chunk's basename.
type EncFileInfo struct {
	GroupID  string
	SeqIndex int
	Path     string
}

// ParseEncFilename parses a chunk filename of the form
// [<key_prefix>_]<group_id:16hex>_<seq:4 letters>.cokacenc, parsing from the
// end of the base name so an arbitrary-length optional key prefix works.
func ParseEncFilename(path string) (EncFileInfo, bool) {
	filename := filepath.Base(path)
	if !strings.HasSuffix(filename, Ext) {
		return EncFileInfo{}, false
	}
	base := filename[:len(filename)-len(Ext)]
	if len(base) < 21 { // 16 hex + '_' + 4 letter seq
		return EncFileInfo{}, false
	}

	seqStr := base[len(base)-4:]
	seqIndex, ok := parseSeqLabel(seqStr)
	if !ok {
		return EncFileInfo{}, false
	}

	rest := base[:len(base)-4]
	if !strings.HasSuffix(rest, "_") {
		return EncFileInfo{}, false
	}
	rest = rest[:len(rest)-1]

	if len(rest) < 16 {
		return EncFileInfo{}, false
	}
	groupID := rest[len(rest)-16:]
	if !isHex(groupID) {
		return EncFileInfo{}, false
	}

	prefixPart := rest[:len(rest)-16]
	if prefixPart != "" {
		if !strings.HasSuffix(prefixPart, "_") {
			return EncFileInfo{}, false
		}
		kp := prefixPart[:len(prefixPart)-1]
		if kp == "" || !isAlnum(kp) {
			return EncFileInfo{}, false
		}
	}

	return EncFileInfo{GroupID: groupID, SeqIndex: seqIndex, Path: path}, true
}

func isHex(s string) bool {
	for _, c := range s {
		if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')) {
			return false
		}
	}
	return true
}

func isAlnum(s string) bool {
	for _, c := range s {
		if !((c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')) {
			return false
		}
	}
	return true
}

// GroupEncFiles scans dir for .cokacenc chunk files and groups them by
// group id, each group's entries sorted by sequence index.
func GroupEncFiles(dir string) (map[string][]EncFileInfo, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	groups := make(map[string][]EncFileInfo)
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if info, ok := ParseEncFilename(filepath.Join(dir, e.Name())); ok {
			groups[info.GroupID] = append(groups[info.GroupID], info)
		}
	}
	for _, files := range groups {
		sort.Slice(files, func(i, j int) bool { return files[i].SeqIndex < files[j].SeqIndex })
	}
	return groups, nil
}
