// Package hashtable implements the fixed-capacity name table used to
// resolve state names to state ids while building an automaton (spec.md
// [MODULE] Name Table). It is grounded directly on the original compiler's
// HashTable: a fixed number of rows, each row a small bounded bucket of
// key/value mappings, addressed by a DJB2-style hash of the key.
//
// A Go map would hide the capacity-overflow failure mode this module is
// required to surface (spec.md §4.1, §7), so the row/bucket layout is kept
// explicit rather than delegated to the builtin map type.
package hashtable

import "fmt"

// Row and bucket sizing mirrors HT_ROW_COUNT / HT_MAX_SAME_HASHES /
// HT_MAX_KEYS from the original compiler's hashtable.h.
const (
	DefaultRowCount      = 16000
	DefaultMaxSameHashes = 15
	DefaultMaxKeys       = 2000
)

type entry struct {
	key   string
	value int
}

// Table is a fixed-row, bounded-bucket name table mapping string keys to
// integer values (state ids, in this compiler's only use of it).
type Table struct {
	rows        [][]entry
	rowCount    int
	maxPerRow   int
	maxKeys     int
	nKeys       int
}

// New creates a Table with the given row count, per-row bucket bound, and
// total key budget. Passing zero for any parameter selects the
// corresponding Default constant.
func New(rowCount, maxSameHashes, maxKeys int) *Table {
	if rowCount <= 0 {
		rowCount = DefaultRowCount
	}
	if maxSameHashes <= 0 {
		maxSameHashes = DefaultMaxSameHashes
	}
	if maxKeys <= 0 {
		maxKeys = DefaultMaxKeys
	}
	return &Table{
		rows:      make([][]entry, rowCount),
		rowCount:  rowCount,
		maxPerRow: maxSameHashes,
		maxKeys:   maxKeys,
	}
}

// hash computes the DJB2-style hash used by the original compiler's
// hash.c: hash = 5381, then hash = hash*33 + c for every byte.
func hash(key string) uint64 {
	var h uint64 = 5381
	for i := 0; i < len(key); i++ {
		h = (h << 5) + h + uint64(key[i])
	}
	return h
}

// Insert maps key to value, replacing any existing mapping for the same
// key in place (so re-inserting a known key never consumes additional
// bucket or key budget). Returns an error if the table's global key budget
// or a row's bucket budget would be exceeded by a genuinely new key —
// the Go analogue of the original's ASSERT_FITS_IN_BOUND aborting the
// process; here it is surfaced as a capacity error for the caller to
// report and abort on (spec.md §7, Capacity).
func (t *Table) Insert(key string, value int) error {
	row := int(hash(key) % uint64(t.rowCount))

	for i := range t.rows[row] {
		if t.rows[row][i].key == key {
			t.rows[row][i].value = value
			return nil
		}
	}

	if len(t.rows[row]) >= t.maxPerRow {
		return fmt.Errorf("hashtable: row %d exceeds bucket capacity %d inserting key %q", row, t.maxPerRow, key)
	}
	if t.nKeys >= t.maxKeys {
		return fmt.Errorf("hashtable: exceeded key capacity %d inserting key %q", t.maxKeys, key)
	}

	t.rows[row] = append(t.rows[row], entry{key: key, value: value})
	t.nKeys++
	return nil
}

// Get returns the value mapped to key and whether it was found.
func (t *Table) Get(key string) (int, bool) {
	row := int(hash(key) % uint64(t.rowCount))
	for i := range t.rows[row] {
		if t.rows[row][i].key == key {
			return t.rows[row][i].value, true
		}
	}
	return 0, false
}

// Len returns the number of distinct keys currently stored.
func (t *Table) Len() int {
	return t.nKeys
}

// Clear empties the table, matching the original's empty_ht.
func (t *Table) Clear() {
	for i := range t.rows {
		t.rows[i] = nil
	}
	t.nKeys = 0
}
