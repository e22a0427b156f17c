package index

import (
	"bytes"
	"fmt"
)

func errTruncatedRecord(field int) error {
	return fmt.Errorf("index: truncated record, field %d missing terminator", field)
}

// Record is one indexed document's metadata, stored in the record file
// at a dense record number starting at 1. Keyword-file entries carry only
// a record number; looking up filename/title/etc. is always a record-file
// read by that number.
type Record struct {
	Filename     string
	Section      string
	Title        string
	Architecture string
	Description  string
}

// recordFields fixes the on-disk field order: filename, section, title,
// architecture, description, each terminated by a nil byte.
func recordFields(r Record) []string {
	return []string{r.Filename, r.Section, r.Title, r.Architecture, r.Description}
}

// encodeRecord concatenates r's fields in fixed order, each nil-terminated.
func encodeRecord(r Record) []byte {
	var buf bytes.Buffer
	for _, f := range recordFields(r) {
		buf.WriteString(f)
		buf.WriteByte(0)
	}
	return buf.Bytes()
}

// decodeRecordPrefix decodes one nil-terminated-field record from the
// front of b and reports how many bytes it consumed, so callers can walk
// a concatenation of records without a length prefix. Defined here
// alongside encodeRecord so the two stay in lockstep on field order.
func decodeRecordPrefix(b []byte) (Record, int, error) {
	var fields [5]string
	start := 0
	for i := 0; i < 5; i++ {
		nl := bytes.IndexByte(b[start:], 0)
		if nl < 0 {
			return Record{}, 0, errTruncatedRecord(i)
		}
		fields[i] = string(b[start : start+nl])
		start += nl + 1
	}
	return Record{
		Filename:     fields[0],
		Section:      fields[1],
		Title:        fields[2],
		Architecture: fields[3],
		Description:  fields[4],
	}, start, nil
}
