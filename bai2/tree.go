package bai2

import "github.com/rs/zerolog"

// The untyped record tree produced by the scanning phase. Trailers are kept so the
// control total check can read them; the resolved model drops them.
type fileNode struct {
	header  record
	groups  []*groupNode
	trailer record
}

type groupNode struct {
	header   record
	accounts []*accountNode
	trailer  record
}

type accountNode struct {
	header       record
	transactions []record
	trailer      record
}

// builder assembles the tree in a single pass, tracking the open group and open
// account explicitly instead of recursing into nested blocks.
type builder struct {
	log     zerolog.Logger
	file    *fileNode
	group   *groupNode
	account *accountNode
	closed  bool
}

func (b *builder) context() string {
	switch {
	case b.closed:
		return "closed file"
	case b.account != nil:
		return "account " + b.account.header.field(1)
	case b.group != nil:
		return "group"
	case b.file != nil:
		return "file"
	default:
		return "empty"
	}
}

func (b *builder) reject(rec record, reason string) error {
	return &UnexpectedRecordOrderError{
		Line:       rec.line,
		RecordType: rec.kind,
		Context:    b.context(),
		Reason:     reason,
	}
}

func (b *builder) add(rec record) error {
	if b.closed {
		return b.reject(rec, "record after the file trailer")
	}
	if b.file == nil && rec.kind != FileHeader {
		return b.reject(rec, "the file header must be the first record")
	}

	switch rec.kind {
	case FileHeader:
		if b.file != nil {
			return b.reject(rec, "second file header before the file trailer")
		}
		b.file = &fileNode{header: rec}
		b.log.Debug().Int("line", rec.line).Msg("opened file")

	case GroupHeader:
		if b.account != nil {
			return b.reject(rec, "group header while an account is open")
		}
		if b.group != nil {
			return b.reject(rec, "group header while a group is open")
		}
		b.group = &groupNode{header: rec}
		b.file.groups = append(b.file.groups, b.group)
		b.log.Debug().Int("line", rec.line).Msg("opened group")

	case AccountIdentifier:
		if b.group == nil {
			return b.reject(rec, "account identifier without an open group")
		}
		if b.account != nil {
			return b.reject(rec, "account identifier while an account is open")
		}
		b.account = &accountNode{header: rec}
		b.group.accounts = append(b.group.accounts, b.account)
		b.log.Debug().Int("line", rec.line).Str("account", rec.field(1)).Msg("opened account")

	case TransactionDetail:
		if b.account == nil {
			return b.reject(rec, "transaction detail without an open account")
		}
		b.account.transactions = append(b.account.transactions, rec)

	case AccountTrailer:
		if b.account == nil {
			return b.reject(rec, "account trailer without an open account")
		}
		b.account.trailer = rec
		b.account = nil
		b.log.Debug().Int("line", rec.line).Msg("closed account")

	case GroupTrailer:
		if b.group == nil {
			return b.reject(rec, "group trailer without an open group")
		}
		if b.account != nil {
			return b.reject(rec, "group trailer while an account is open")
		}
		b.group.trailer = rec
		b.group = nil
		b.log.Debug().Int("line", rec.line).Msg("closed group")

	case FileTrailer:
		if b.group != nil {
			return b.reject(rec, "file trailer while a group is open")
		}
		b.file.trailer = rec
		b.closed = true
		b.log.Debug().Int("line", rec.line).Msg("closed file")

	default:
		return b.reject(rec, "record type cannot appear here")
	}

	return nil
}

// buildTree consumes the folded record stream. records must not be empty.
func buildTree(records []record, log zerolog.Logger) (*fileNode, error) {
	b := &builder{log: log}
	for _, rec := range records {
		if err := b.add(rec); err != nil {
			return nil, err
		}
	}

	if !b.closed {
		return nil, &UnexpectedRecordOrderError{
			Line:    records[len(records)-1].line,
			Context: b.context(),
			Reason:  "input ended before the file trailer",
		}
	}
	return b.file, nil
}
