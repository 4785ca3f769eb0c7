package standardize

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"

	"github.com/ohana-solucoes/padroniza-backend/internal/domain"
)

// fingerprint derives a cache key from the run mode, cutoff, selected
// columns, and the full table content. Identical inputs always produce the
// same key; cell values are length-prefixed so concatenations cannot collide.
func fingerprint(mode string, cutoff int, table *domain.Table, columns ...string) string {
	h := sha256.New()
	writeString := func(s string) {
		var n [4]byte
		binary.BigEndian.PutUint32(n[:], uint32(len(s)))
		h.Write(n[:])
		h.Write([]byte(s))
	}

	writeString(mode)
	var c [4]byte
	binary.BigEndian.PutUint32(c[:], uint32(cutoff))
	h.Write(c[:])
	for _, col := range columns {
		writeString(col)
	}
	for _, col := range table.Columns {
		writeString(col)
	}
	for _, row := range table.Rows {
		for _, cell := range row {
			writeString(cell)
		}
		writeString("\n")
	}

	return hex.EncodeToString(h.Sum(nil))
}
