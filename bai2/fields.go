package bai2

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/criswit/bai2/model"
)

var (
	errDateShape     = errors.New("want YYMMDD")
	errTimeShape     = errors.New("want HHMM")
	errCurrencyShape = errors.New("want a three letter currency code")
	errNegativeCount = errors.New("negative count")
)

// fieldReader reads positional fields of a record. Continuation fields are appended
// after the line's own fields so that positions run on across continuation lines.
type fieldReader struct {
	kind   RecordType
	fields []string
	lines  []int
}

func newFieldReader(rec record, withContinuations bool) *fieldReader {
	r := &fieldReader{kind: rec.kind}
	for _, f := range rec.fields {
		r.fields = append(r.fields, f)
		r.lines = append(r.lines, rec.line)
	}
	if withContinuations {
		for _, c := range rec.continuations {
			r.extend(c)
		}
	}
	return r
}

// extend appends the fields of one continuation.
func (r *fieldReader) extend(c continuation) {
	for _, f := range c.fields {
		r.fields = append(r.fields, f)
		r.lines = append(r.lines, c.line)
	}
}

func (r *fieldReader) len() int {
	return len(r.fields)
}

func (r *fieldReader) get(i int) string {
	if i < len(r.fields) {
		return strings.TrimSpace(r.fields[i])
	}
	return ""
}

func (r *fieldReader) line(i int) int {
	if i < len(r.lines) {
		return r.lines[i]
	}
	return r.lines[len(r.lines)-1]
}

func (r *fieldReader) fail(i int, name, value string, err error) error {
	return &FieldParseError{Line: r.line(i), RecordType: r.kind, Field: name, Value: value, Err: err}
}

// require returns the field at i, failing when the record is too short to hold it.
func (r *fieldReader) require(i int, name string) (string, error) {
	if i >= len(r.fields) {
		return "", r.fail(i, name, "", ErrMissingField)
	}
	return r.get(i), nil
}

func (r *fieldReader) date(i int, name string) (civil.Date, error) {
	raw, err := r.require(i, name)
	if err != nil {
		return civil.Date{}, err
	}
	d, err := parseDate(raw)
	if err != nil {
		return civil.Date{}, r.fail(i, name, raw, err)
	}
	return d, nil
}

func (r *fieldReader) optionalDate(i int, name string) (*civil.Date, error) {
	raw := r.get(i)
	if raw == "" {
		return nil, nil
	}
	d, err := parseDate(raw)
	if err != nil {
		return nil, r.fail(i, name, raw, err)
	}
	return &d, nil
}

func (r *fieldReader) optionalTime(i int, name string) (*model.Time, error) {
	raw := r.get(i)
	if raw == "" {
		return nil, nil
	}
	t, err := parseTime(raw)
	if err != nil {
		return nil, r.fail(i, name, raw, err)
	}
	return &t, nil
}

func (r *fieldReader) amount(i int, name string) (int64, error) {
	raw, err := r.require(i, name)
	if err != nil {
		return 0, err
	}
	if raw == "" {
		return 0, r.fail(i, name, raw, ErrMissingField)
	}
	v, err := parseAmount(raw)
	if err != nil {
		return 0, r.fail(i, name, raw, err)
	}
	return v, nil
}

// optionalAmount treats a blank field as absent rather than zero.
func (r *fieldReader) optionalAmount(i int, name string) (*int64, error) {
	raw := r.get(i)
	if raw == "" {
		return nil, nil
	}
	v, err := parseAmount(raw)
	if err != nil {
		return nil, r.fail(i, name, raw, err)
	}
	return &v, nil
}

func (r *fieldReader) count(i int, name string) (int, error) {
	raw, err := r.require(i, name)
	if err != nil {
		return 0, err
	}
	n, err := parseCount(raw)
	if err != nil {
		return 0, r.fail(i, name, raw, err)
	}
	return n, nil
}

func (r *fieldReader) optionalCount(i int, name string) (*int, error) {
	raw := r.get(i)
	if raw == "" {
		return nil, nil
	}
	n, err := parseCount(raw)
	if err != nil {
		return nil, r.fail(i, name, raw, err)
	}
	return &n, nil
}

func (r *fieldReader) currency(i int, name string) (string, error) {
	raw := r.get(i)
	c, err := parseCurrency(raw)
	if err != nil {
		return "", r.fail(i, name, raw, err)
	}
	return c, nil
}

// parseDate reads YYMMDD. Years are taken to be in the 2000s.
func parseDate(s string) (civil.Date, error) {
	if len(s) != 6 || !isDigits(s) {
		return civil.Date{}, errDateShape
	}
	yy, _ := strconv.Atoi(s[0:2])
	mm, _ := strconv.Atoi(s[2:4])
	dd, _ := strconv.Atoi(s[4:6])

	d := civil.Date{Year: 2000 + yy, Month: time.Month(mm), Day: dd}
	if !d.IsValid() {
		return civil.Date{}, fmt.Errorf("%w: no such date", errDateShape)
	}
	return d, nil
}

// parseTime reads HHMM, where 2400 is end of day and 9999 means not stated.
func parseTime(s string) (model.Time, error) {
	switch s {
	case "9999":
		return model.Time{Unknown: true}, nil
	case "2400":
		return model.Time{EndOfDay: true}, nil
	}

	if len(s) != 4 || !isDigits(s) {
		return model.Time{}, errTimeShape
	}
	hh, _ := strconv.Atoi(s[0:2])
	mm, _ := strconv.Atoi(s[2:4])

	t := civil.Time{Hour: hh, Minute: mm}
	if !t.IsValid() {
		return model.Time{}, fmt.Errorf("%w: no such time", errTimeShape)
	}
	return model.Time{Clock: t}, nil
}

// parseAmount reads a signed integer amount in minor currency units.
func parseAmount(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}

func parseCount(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, errNegativeCount
	}
	return n, nil
}

func parseCurrency(s string) (string, error) {
	if s == "" {
		return "", nil
	}
	if len(s) != 3 {
		return "", errCurrencyShape
	}
	for _, c := range s {
		if (c < 'A' || c > 'Z') && (c < 'a' || c > 'z') {
			return "", errCurrencyShape
		}
	}
	return strings.ToUpper(s), nil
}

func isDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
