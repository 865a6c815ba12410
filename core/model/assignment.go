package model

import (
	"encoding/binary"
	"hash/fnv"
)

// Assignment holds the visit day of each family, indexed by family position.
// Days are 1-based.
type Assignment []int

// Hash fingerprints the assignment so identical records can be recognised
// across runs.
func (a Assignment) Hash() uint32 {
	h := fnv.New32a()
	var buf [4]byte
	for _, d := range a {
		binary.LittleEndian.PutUint32(buf[:], uint32(d))
		_, _ = h.Write(buf[:])
	}
	return h.Sum32()
}

// ValidDay reports whether d lies in [1, NumDays].
func ValidDay(d int) bool { return d >= 1 && d <= NumDays }
