package index

import (
	"encoding/binary"
	"fmt"
	"os"
)

// KeywordEntry is one decoded row from the keyword file: a key plus its
// OR-folded class bitmask and the record it points into.
type KeywordEntry struct {
	Keyword string
	Class   Class
	Record  uint32
}

// Records loads every record in dir's record file, indexed 1-based (the
// returned slice's index 0 holds record number 1). There is no on-disk
// offset table — each record is a fixed five-field, nil-terminated run,
// so loading means a single sequential scan.
func Records(dir string) ([]Record, error) {
	b, err := os.ReadFile(dir + "/" + RecordFile)
	if err != nil {
		return nil, fmt.Errorf("index: reading record file: %w", err)
	}
	var out []Record
	for len(b) > 0 {
		rec, n, err := decodeRecordPrefix(b)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
		b = b[n:]
	}
	return out, nil
}

// RecordAt returns the record numbered n (1-based) from an already
// loaded Records slice.
func RecordAt(records []Record, n uint32) (Record, bool) {
	if n == 0 || int(n) > len(records) {
		return Record{}, false
	}
	return records[n-1], true
}

// ScanKeywords streams dir's keyword file in on-disk (key-sorted) order,
// calling visit for each decoded entry. It stops and returns visit's
// error, if any, without reading further. This is the only read path
// internal/search's query engine needs: spec.md's evaluation model
// streams the keyword file exactly once per query.
//
// Each record is a 4-byte little-endian key length, the raw UTF-8
// keyword bytes (no terminator, matching spec.md §6's on-disk contract
// for the key itself), then the 8-byte class+record value. The length
// prefix is framing outside the key proper, not a terminator appended
// to it — it lets this flat-file encoding recover key boundaries
// without relying on a B-tree engine's own framing, the way the
// database spec.md §6 pins the format against actually does.
func ScanKeywords(dir string, visit func(KeywordEntry) error) error {
	b, err := os.ReadFile(dir + "/" + KeywordFile)
	if err != nil {
		return fmt.Errorf("index: reading keyword file: %w", err)
	}
	for len(b) > 0 {
		if len(b) < 4 {
			return fmt.Errorf("index: truncated keyword file: short key length")
		}
		klen := binary.LittleEndian.Uint32(b[0:4])
		b = b[4:]
		if uint64(len(b)) < uint64(klen) {
			return fmt.Errorf("index: truncated keyword file: short key")
		}
		keyword := string(b[:klen])
		b = b[klen:]
		if len(b) < 8 {
			return fmt.Errorf("index: truncated keyword file: short value for %q", keyword)
		}
		class := Class(binary.LittleEndian.Uint32(b[0:4]))
		record := binary.LittleEndian.Uint32(b[4:8])
		b = b[8:]
		if err := visit(KeywordEntry{Keyword: keyword, Class: class, Record: record}); err != nil {
			return err
		}
	}
	return nil
}
