// Package bai2 parses BAI2 cash management files into the typed tree of package model.
//
// Parsing runs in two phases. Scanning classifies each line, folds continuation
// records into the record they extend and assembles the File > Group > Account >
// Transaction nesting. Resolution then reads typed fields, resolves code values and
// applies currency defaults. Both phases are pure: the same lines always give the same
// result or the same error, and the first error found fails the whole parse.
package bai2

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/criswit/bai2/model"
	"github.com/rs/zerolog"
)

type options struct {
	log zerolog.Logger
}

// Option configures a parse.
type Option func(*options)

// WithLogger sends debug events for each stage to log. Parsing is silent by default.
func WithLogger(log zerolog.Logger) Option {
	return func(o *options) {
		o.log = log
	}
}

func newOptions(opts []Option) options {
	o := options{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Parse parses the lines of one BAI2 file.
func Parse(lines []string, opts ...Option) (*model.FileRecord, error) {
	o := newOptions(opts)

	tree, err := scan(lines, o.log)
	if err != nil {
		return nil, err
	}

	r := &resolver{log: o.log}
	file, err := r.file(tree)
	if err != nil {
		return nil, err
	}
	applyDefaults(file)

	o.log.Debug().
		Int("groups", len(file.Groups)).
		Int("transactions", file.TransactionCount()).
		Msg("parsed file")
	return file, nil
}

// ParseString parses a whole file held in memory.
func ParseString(content string, opts ...Option) (*model.FileRecord, error) {
	return Parse(strings.Split(content, "\n"), opts...)
}

// ParseReader reads every line from rd before parsing. Read errors are returned
// wrapped; they are never parse errors.
func ParseReader(rd io.Reader, opts ...Option) (*model.FileRecord, error) {
	lines, err := ReadLines(rd)
	if err != nil {
		return nil, err
	}
	return Parse(lines, opts...)
}

// ReadLines splits rd into lines without interpreting them.
func ReadLines(rd io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(rd)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read BAI2 input: %w", err)
	}
	return lines, nil
}

// scan is the scanning phase: classify, fold, build.
func scan(lines []string, log zerolog.Logger) (*fileNode, error) {
	records, err := classify(lines, log)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrEmptyInput
	}

	folded, err := fold(records, log)
	if err != nil {
		return nil, err
	}
	return buildTree(folded, log)
}
