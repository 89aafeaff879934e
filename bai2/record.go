package bai2

import (
	"strings"

	"github.com/rs/zerolog"
)

const (
	fieldDelimiter   = ","
	recordTerminator = "/"
)

// RecordType is the two digit code that starts every BAI2 record.
type RecordType string

const (
	FileHeader        RecordType = "01"
	GroupHeader       RecordType = "02"
	AccountIdentifier RecordType = "03"
	TransactionDetail RecordType = "16"
	AccountTrailer    RecordType = "49"
	Continuation      RecordType = "88"
	GroupTrailer      RecordType = "98"
	FileTrailer       RecordType = "99"
)

var recordTypeNames = map[RecordType]string{
	FileHeader:        "file header",
	GroupHeader:       "group header",
	AccountIdentifier: "account identifier",
	TransactionDetail: "transaction detail",
	AccountTrailer:    "account trailer",
	Continuation:      "continuation",
	GroupTrailer:      "group trailer",
	FileTrailer:       "file trailer",
}

func (t RecordType) String() string {
	if name, ok := recordTypeNames[t]; ok {
		return name + " (" + string(t) + ")"
	}
	return string(t)
}

func (t RecordType) known() bool {
	_, ok := recordTypeNames[t]
	return ok
}

// foldable reports whether continuation records may extend a record of this type.
// Trailers close their context, so a continuation after one is an orphan.
func (t RecordType) foldable() bool {
	switch t {
	case FileHeader, GroupHeader, AccountIdentifier, TransactionDetail:
		return true
	}
	return false
}

// record is one classified physical line plus, after folding, the continuation
// lines that extend it. fields[0] is the record type code.
type record struct {
	kind          RecordType
	line          int
	fields        []string
	continuations []continuation
}

// continuation carries the fields of an 88 record without its type code.
type continuation struct {
	line   int
	fields []string
}

func (c continuation) text() string {
	return strings.TrimSpace(strings.Join(c.fields, fieldDelimiter))
}

// classifyLine splits one line into its fields. A trailing record terminator is
// optional since a record continued on the next line may omit it.
func classifyLine(raw string, lineNumber int) (record, error) {
	line := strings.TrimRight(raw, " \t\r")
	line = strings.TrimSuffix(line, recordTerminator)

	fields := strings.Split(line, fieldDelimiter)
	kind := RecordType(strings.TrimSpace(fields[0]))
	if !kind.known() {
		return record{}, &UnknownRecordTypeError{Line: lineNumber, Code: string(kind)}
	}
	fields[0] = string(kind)

	return record{kind: kind, line: lineNumber, fields: fields}, nil
}

// classify runs the line classifier over every non-blank line. Line numbers are
// one based and count blank lines.
func classify(lines []string, log zerolog.Logger) ([]record, error) {
	records := make([]record, 0, len(lines))
	for i, raw := range lines {
		if strings.TrimSpace(raw) == "" {
			continue
		}

		rec, err := classifyLine(raw, i+1)
		if err != nil {
			return nil, err
		}
		log.Debug().Int("line", rec.line).Str("record_type", rec.kind.String()).Msg("classified record")
		records = append(records, rec)
	}
	return records, nil
}

// fold attaches every continuation record to the record before it and drops it
// from the stream.
func fold(records []record, log zerolog.Logger) ([]record, error) {
	folded := make([]record, 0, len(records))
	for _, rec := range records {
		if rec.kind != Continuation {
			folded = append(folded, rec)
			continue
		}

		if len(folded) == 0 {
			return nil, &OrphanContinuationError{Line: rec.line}
		}

		prev := &folded[len(folded)-1]
		if !prev.kind.foldable() {
			return nil, &OrphanContinuationError{Line: rec.line, Previous: prev.kind}
		}

		prev.continuations = append(prev.continuations, continuation{line: rec.line, fields: rec.fields[1:]})
		log.Debug().Int("line", rec.line).Int("continues", prev.line).Msg("folded continuation")
	}
	return folded, nil
}

// field returns the trimmed field at index i of the record's own line, or "".
func (r record) field(i int) string {
	if i < len(r.fields) {
		return strings.TrimSpace(r.fields[i])
	}
	return ""
}
