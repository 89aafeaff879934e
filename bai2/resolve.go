package bai2

import (
	"errors"
	"strings"

	"cloud.google.com/go/civil"
	"github.com/criswit/bai2/model"
	"github.com/rs/zerolog"
)

// Positional layout of the fixed fields of each record type.
const (
	fileSenderField       = 1
	fileReceiverField     = 2
	fileCreationDateField = 3
	fileCreationTimeField = 4
	fileIDField           = 5
	fileRecordLengthField = 6
	fileBlockSizeField    = 7
	fileVersionField      = 8

	groupReceiverField   = 1
	groupOriginatorField = 2
	groupStatusField     = 3
	groupAsOfDateField   = 4
	groupAsOfTimeField   = 5
	groupCurrencyField   = 6
	groupModifierField   = 7

	accountNumberField   = 1
	accountCurrencyField = 2
	accountSummaryStart  = 3

	detailTypeField   = 1
	detailAmountField = 2
	detailFundsField  = 3
)

type resolver struct {
	log zerolog.Logger
}

func (r *resolver) file(node *fileNode) (*model.FileRecord, error) {
	f := newFieldReader(node.header, true)

	creationDate, err := f.date(fileCreationDateField, "creation_date")
	if err != nil {
		return nil, err
	}
	creationTime, err := f.optionalTime(fileCreationTimeField, "creation_time")
	if err != nil {
		return nil, err
	}
	if _, err := f.require(fileIDField, "file_id"); err != nil {
		return nil, err
	}
	recordLength, err := f.optionalCount(fileRecordLengthField, "physical_record_length")
	if err != nil {
		return nil, err
	}
	blockSize, err := f.optionalCount(fileBlockSizeField, "block_size")
	if err != nil {
		return nil, err
	}
	version, err := f.optionalCount(fileVersionField, "version_number")
	if err != nil {
		return nil, err
	}

	file := &model.FileRecord{
		SenderID:             f.get(fileSenderField),
		ReceiverID:           f.get(fileReceiverField),
		CreationDate:         creationDate,
		CreationTime:         creationTime,
		FileID:               f.get(fileIDField),
		PhysicalRecordLength: recordLength,
		BlockSize:            blockSize,
		VersionNumber:        version,
		Groups:               make([]model.Group, 0, len(node.groups)),
	}

	for _, g := range node.groups {
		group, err := r.group(g)
		if err != nil {
			return nil, err
		}
		file.Groups = append(file.Groups, group)
	}
	return file, nil
}

func (r *resolver) group(node *groupNode) (model.Group, error) {
	f := newFieldReader(node.header, true)

	status, err := f.require(groupStatusField, "group_status")
	if err != nil {
		return model.Group{}, err
	}
	asOfDate, err := f.date(groupAsOfDateField, "as_of_date")
	if err != nil {
		return model.Group{}, err
	}
	asOfTime, err := f.optionalTime(groupAsOfTimeField, "as_of_time")
	if err != nil {
		return model.Group{}, err
	}
	currency, err := f.currency(groupCurrencyField, "currency_code")
	if err != nil {
		return model.Group{}, err
	}

	group := model.Group{
		UltimateReceiverID: f.get(groupReceiverField),
		OriginatorID:       f.get(groupOriginatorField),
		Status:             model.LookupGroupStatus(status),
		AsOfDate:           asOfDate,
		AsOfTime:           asOfTime,
		CurrencyCode:       currency,
		Accounts:           make([]model.Account, 0, len(node.accounts)),
	}
	if code := f.get(groupModifierField); code != "" {
		modifier := model.LookupAsOfDateModifier(code)
		group.AsOfDateModifier = &modifier
	}

	for _, a := range node.accounts {
		account, err := r.account(a)
		if err != nil {
			return model.Group{}, err
		}
		group.Accounts = append(group.Accounts, account)
	}
	return group, nil
}

func (r *resolver) account(node *accountNode) (model.Account, error) {
	f := newFieldReader(node.header, true)

	number, err := f.require(accountNumberField, "account_number")
	if err != nil {
		return model.Account{}, err
	}
	currency, err := f.currency(accountCurrencyField, "currency_code")
	if err != nil {
		return model.Account{}, err
	}
	amounts, err := r.summaries(f)
	if err != nil {
		return model.Account{}, err
	}

	account := model.Account{
		AccountNumber: number,
		CurrencyCode:  currency,
		Amounts:       amounts,
		Transactions:  make([]model.Transaction, 0, len(node.transactions)),
	}
	if len(amounts) > 0 {
		first := amounts[0]
		account.TypeCode = first.Type
		account.Amount = first.Value
		account.ItemCount = first.ItemCount
		account.FundsType = first.FundsType
	}

	for _, rec := range node.transactions {
		txn, err := r.transaction(rec)
		if err != nil {
			return model.Account{}, err
		}
		account.Transactions = append(account.Transactions, txn)
	}
	return account, nil
}

// summaries reads the repeating type code, amount, item count, funds type groups of
// an account identifier. A group whose four fields are all blank is skipped.
func (r *resolver) summaries(f *fieldReader) ([]model.Amount, error) {
	var amounts []model.Amount
	for i := accountSummaryStart; i < f.len(); {
		code := f.get(i)
		if code == "" && f.get(i+1) == "" && f.get(i+2) == "" && f.get(i+3) == "" {
			i += 4
			continue
		}
		if code == "" {
			return nil, f.fail(i, "type_code", code, ErrMissingField)
		}

		value, err := f.optionalAmount(i+1, "amount")
		if err != nil {
			return nil, err
		}
		items, err := f.optionalCount(i+2, "item_count")
		if err != nil {
			return nil, err
		}

		amount := model.Amount{
			Type:      model.LookupAmountType(code),
			Value:     value,
			ItemCount: items,
			FundsType: model.LookupFundsType(f.get(i + 3)),
		}
		r.noteUnclassified("amount_type", code, amount.Type.Category == model.AmountUnclassified)

		details, next, err := r.fundsDetails(f, amount.FundsType, i+4)
		if err != nil {
			return nil, err
		}
		amount.Availability = details.availability
		amount.ValueDate = details.valueDate
		amount.ValueTime = details.valueTime

		amounts = append(amounts, amount)
		i = next
	}
	return amounts, nil
}

type fundsDetails struct {
	availability []model.Availability
	valueDate    *civil.Date
	valueTime    *model.Time
}

// fundsDetails reads the fields a funds type code implies, starting at i, and
// returns the index of the first field after them.
func (r *resolver) fundsDetails(f *fieldReader, funds model.FundsType, i int) (fundsDetails, int, error) {
	var details fundsDetails

	switch {
	case funds.Category == model.FundsValueDated:
		d, err := f.date(i, "value_date")
		if err != nil {
			return details, i, err
		}
		t, err := f.optionalTime(i+1, "value_time")
		if err != nil {
			return details, i, err
		}
		details.valueDate = &d
		details.valueTime = t
		return details, i + 2, nil

	case funds.FixedDistribution():
		for days := 0; days < 3; days++ {
			v, err := f.amount(i+days, "availability_amount")
			if err != nil {
				return details, i, err
			}
			details.availability = append(details.availability, model.Availability{Days: days, Amount: v})
		}
		return details, i + 3, nil

	case funds.VariableDistribution():
		n, err := f.count(i, "availability_count")
		if err != nil {
			return details, i, err
		}
		i++
		for k := 0; k < n; k++ {
			days, err := f.count(i, "availability_days")
			if err != nil {
				return details, i, err
			}
			v, err := f.amount(i+1, "availability_amount")
			if err != nil {
				return details, i, err
			}
			details.availability = append(details.availability, model.Availability{Days: days, Amount: v})
			i += 2
		}
		return details, i, nil
	}

	return details, i, nil
}

// transaction resolves a transaction detail. Continuations extend the fixed fields
// positionally until the customer reference is reached; once the text field has
// started, each further continuation is one more line of text.
func (r *resolver) transaction(rec record) (model.Transaction, error) {
	f := newFieldReader(rec, false)

	for consumed := 0; ; consumed++ {
		txn, next, err := r.detailFields(f)
		remaining := rec.continuations[consumed:]
		switch {
		case err != nil && (len(remaining) == 0 || !errors.Is(err, ErrMissingField)):
			return model.Transaction{}, err
		case err == nil && (f.len() > next+1 || len(remaining) == 0):
			r.noteUnclassified("transaction_type", txn.Type.Code, txn.Type.Category == model.TxnUnclassified)
			txn.Text = detailText(f, next+2, remaining)
			return txn, nil
		}
		f.extend(remaining[0])
	}
}

// detailFields reads the fixed fields of a transaction detail and returns the index
// of the bank reference.
func (r *resolver) detailFields(f *fieldReader) (model.Transaction, int, error) {
	code, err := f.require(detailTypeField, "type_code")
	if err != nil {
		return model.Transaction{}, 0, err
	}
	if code == "" {
		return model.Transaction{}, 0, f.fail(detailTypeField, "type_code", code, ErrMissingField)
	}
	amount, err := f.amount(detailAmountField, "amount")
	if err != nil {
		return model.Transaction{}, 0, err
	}

	txn := model.Transaction{
		Type:      model.LookupTransactionType(code),
		Amount:    amount,
		FundsType: model.LookupFundsType(f.get(detailFundsField)),
	}

	details, next, err := r.fundsDetails(f, txn.FundsType, detailFundsField+1)
	if err != nil {
		return model.Transaction{}, 0, err
	}
	txn.Availability = details.availability
	txn.ValueDate = details.valueDate
	txn.ValueTime = details.valueTime

	txn.BankReferenceNumber = f.get(next)
	txn.CustomerReferenceNumber = f.get(next + 1)
	return txn, next, nil
}

// detailText rejoins the fields from i on into the first text line and adds one
// line per continuation that follows.
func detailText(f *fieldReader, i int, continuations []continuation) []string {
	text := make([]string, 0, 1+len(continuations))
	if i < f.len() {
		if first := strings.TrimSpace(strings.Join(f.fields[i:], fieldDelimiter)); first != "" {
			text = append(text, first)
		}
	}
	for _, c := range continuations {
		text = append(text, c.text())
	}
	return text
}

func (r *resolver) noteUnclassified(kind, code string, unclassified bool) {
	if unclassified {
		r.log.Debug().Str("kind", kind).Str("code", code).Msg("code not in the standard list")
	}
}
