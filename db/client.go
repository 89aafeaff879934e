package db

import (
	"context"
	"fmt"
	"strings"

	"cloud.google.com/go/civil"
	"github.com/criswit/bai2/model"
	"github.com/jmoiron/sqlx"
)

const fileTable = "BAI2_FILE"
const accountTable = "BAI2_ACCOUNT"
const transactionTable = "BAI2_TRANSACTION"

const schema = `
CREATE TABLE IF NOT EXISTS BAI2_FILE (
	RUN_ID TEXT PRIMARY KEY,
	SENDER_ID TEXT NOT NULL,
	RECEIVER_ID TEXT NOT NULL,
	FILE_ID TEXT NOT NULL,
	CREATION_DATE TEXT NOT NULL,
	CREATION_TIME TEXT,
	VERSION_NUMBER INTEGER,
	GROUP_COUNT INTEGER NOT NULL,
	CREATED_AT TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	UNIQUE(SENDER_ID, FILE_ID, CREATION_DATE)
);

CREATE TABLE IF NOT EXISTS BAI2_ACCOUNT (
	RUN_ID TEXT NOT NULL,
	GROUP_INDEX INTEGER NOT NULL,
	ACCOUNT_INDEX INTEGER NOT NULL,
	ORIGINATOR_ID TEXT NOT NULL,
	AS_OF_DATE TEXT NOT NULL,
	ACCOUNT_NUMBER TEXT NOT NULL,
	CURRENCY_CODE TEXT NOT NULL,
	TYPE_CODE TEXT,
	AMOUNT_MINOR INTEGER,
	AMOUNT TEXT,
	CREDITS TEXT NOT NULL,
	DEBITS TEXT NOT NULL,
	PRIMARY KEY(RUN_ID, GROUP_INDEX, ACCOUNT_INDEX),
	FOREIGN KEY(RUN_ID) REFERENCES BAI2_FILE(RUN_ID)
);

CREATE TABLE IF NOT EXISTS BAI2_TRANSACTION (
	RUN_ID TEXT NOT NULL,
	GROUP_INDEX INTEGER NOT NULL,
	ACCOUNT_INDEX INTEGER NOT NULL,
	TRANSACTION_INDEX INTEGER NOT NULL,
	ACCOUNT_NUMBER TEXT NOT NULL,
	TYPE_CODE TEXT NOT NULL,
	DIRECTION TEXT NOT NULL,
	CATEGORY TEXT NOT NULL,
	AMOUNT_MINOR INTEGER NOT NULL,
	AMOUNT TEXT NOT NULL,
	CURRENCY_CODE TEXT NOT NULL,
	FUNDS_TYPE TEXT NOT NULL,
	VALUE_DATE TEXT,
	BANK_REFERENCE TEXT NOT NULL,
	CUSTOMER_REFERENCE TEXT NOT NULL,
	TEXT TEXT NOT NULL,
	PRIMARY KEY(RUN_ID, GROUP_INDEX, ACCOUNT_INDEX, TRANSACTION_INDEX),
	FOREIGN KEY(RUN_ID) REFERENCES BAI2_FILE(RUN_ID)
);

CREATE INDEX IF NOT EXISTS idx_bai2_account_number ON BAI2_ACCOUNT(ACCOUNT_NUMBER);
CREATE INDEX IF NOT EXISTS idx_bai2_transaction_account ON BAI2_TRANSACTION(ACCOUNT_NUMBER);
`

type fileRow struct {
	RunID         string  `db:"RUN_ID"`
	SenderID      string  `db:"SENDER_ID"`
	ReceiverID    string  `db:"RECEIVER_ID"`
	FileID        string  `db:"FILE_ID"`
	CreationDate  string  `db:"CREATION_DATE"`
	CreationTime  *string `db:"CREATION_TIME"`
	VersionNumber *int    `db:"VERSION_NUMBER"`
	GroupCount    int     `db:"GROUP_COUNT"`
}

type accountRow struct {
	RunID         string  `db:"RUN_ID"`
	GroupIndex    int     `db:"GROUP_INDEX"`
	AccountIndex  int     `db:"ACCOUNT_INDEX"`
	OriginatorID  string  `db:"ORIGINATOR_ID"`
	AsOfDate      string  `db:"AS_OF_DATE"`
	AccountNumber string  `db:"ACCOUNT_NUMBER"`
	CurrencyCode  string  `db:"CURRENCY_CODE"`
	TypeCode      *string `db:"TYPE_CODE"`
	AmountMinor   *int64  `db:"AMOUNT_MINOR"`
	Amount        *string `db:"AMOUNT"`
	Credits       string  `db:"CREDITS"`
	Debits        string  `db:"DEBITS"`
}

type transactionRow struct {
	RunID             string  `db:"RUN_ID"`
	GroupIndex        int     `db:"GROUP_INDEX"`
	AccountIndex      int     `db:"ACCOUNT_INDEX"`
	TransactionIndex  int     `db:"TRANSACTION_INDEX"`
	AccountNumber     string  `db:"ACCOUNT_NUMBER"`
	TypeCode          string  `db:"TYPE_CODE"`
	Direction         string  `db:"DIRECTION"`
	Category          string  `db:"CATEGORY"`
	AmountMinor       int64   `db:"AMOUNT_MINOR"`
	Amount            string  `db:"AMOUNT"`
	CurrencyCode      string  `db:"CURRENCY_CODE"`
	FundsType         string  `db:"FUNDS_TYPE"`
	ValueDate         *string `db:"VALUE_DATE"`
	BankReference     string  `db:"BANK_REFERENCE"`
	CustomerReference string  `db:"CUSTOMER_REFERENCE"`
	Text              string  `db:"TEXT"`
}

var (
	insertFileQuery = fmt.Sprintf(`INSERT INTO %s
		(RUN_ID, SENDER_ID, RECEIVER_ID, FILE_ID, CREATION_DATE, CREATION_TIME, VERSION_NUMBER, GROUP_COUNT)
		VALUES (:RUN_ID, :SENDER_ID, :RECEIVER_ID, :FILE_ID, :CREATION_DATE, :CREATION_TIME, :VERSION_NUMBER, :GROUP_COUNT)`, fileTable)

	insertAccountQuery = fmt.Sprintf(`INSERT INTO %s
		(RUN_ID, GROUP_INDEX, ACCOUNT_INDEX, ORIGINATOR_ID, AS_OF_DATE, ACCOUNT_NUMBER, CURRENCY_CODE, TYPE_CODE, AMOUNT_MINOR, AMOUNT, CREDITS, DEBITS)
		VALUES (:RUN_ID, :GROUP_INDEX, :ACCOUNT_INDEX, :ORIGINATOR_ID, :AS_OF_DATE, :ACCOUNT_NUMBER, :CURRENCY_CODE, :TYPE_CODE, :AMOUNT_MINOR, :AMOUNT, :CREDITS, :DEBITS)`, accountTable)

	insertTransactionQuery = fmt.Sprintf(`INSERT INTO %s
		(RUN_ID, GROUP_INDEX, ACCOUNT_INDEX, TRANSACTION_INDEX, ACCOUNT_NUMBER, TYPE_CODE, DIRECTION, CATEGORY, AMOUNT_MINOR, AMOUNT, CURRENCY_CODE, FUNDS_TYPE, VALUE_DATE, BANK_REFERENCE, CUSTOMER_REFERENCE, TEXT)
		VALUES (:RUN_ID, :GROUP_INDEX, :ACCOUNT_INDEX, :TRANSACTION_INDEX, :ACCOUNT_NUMBER, :TYPE_CODE, :DIRECTION, :CATEGORY, :AMOUNT_MINOR, :AMOUNT, :CURRENCY_CODE, :FUNDS_TYPE, :VALUE_DATE, :BANK_REFERENCE, :CUSTOMER_REFERENCE, :TEXT)`, transactionTable)
)

type DatabaseClient struct {
	db *sqlx.DB
}

func NewDatabaseClient(path string) (*DatabaseClient, error) {
	db, err := sqlx.Connect("sqlite3", path)
	if err != nil {
		return nil, err
	}
	return &DatabaseClient{db: db}, nil
}

func (c *DatabaseClient) Close() {
	c.db.Close()
}

// EnsureSchema creates the statement tables when they do not exist yet.
func (c *DatabaseClient) EnsureSchema() error {
	if _, err := c.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// PutStatement writes the file, its accounts and its transactions in one SQL
// transaction. Either every row is written or none is.
func (c *DatabaseClient) PutStatement(ctx context.Context, runID string, file *model.FileRecord) error {
	tx, err := c.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.NamedExecContext(ctx, insertFileQuery, newFileRow(runID, file)); err != nil {
		return fmt.Errorf("failed to insert file: %w", err)
	}

	for gi := range file.Groups {
		group := &file.Groups[gi]
		for ai := range group.Accounts {
			row := newAccountRow(runID, gi, ai, group, &group.Accounts[ai])
			if _, err := tx.NamedExecContext(ctx, insertAccountQuery, row); err != nil {
				return fmt.Errorf("failed to insert account %s: %w", row.AccountNumber, err)
			}
		}
	}

	err = walkTransactions(file, func(key transactionKey, group *model.Group, account *model.Account, txn *model.Transaction) error {
		row := newTransactionRow(runID, key, account, txn)
		if _, err := tx.NamedExecContext(ctx, insertTransactionQuery, row); err != nil {
			return fmt.Errorf("failed to insert transaction %d of account %s: %w", key.TransactionIndex, account.AccountNumber, err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// DoesFileExist reports whether a file with the same sender, file id and creation
// date was stored by an earlier run.
func (c *DatabaseClient) DoesFileExist(senderID, fileID string, creationDate civil.Date) (bool, error) {
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE SENDER_ID = ? AND FILE_ID = ? AND CREATION_DATE = ?", fileTable)
	var count int
	err := c.db.Get(&count, query, senderID, fileID, creationDate.String())
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (c *DatabaseClient) CountTransactions(runID string) (int, error) {
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE RUN_ID = ?", transactionTable)
	var count int
	err := c.db.Get(&count, query, runID)
	if err != nil {
		return 0, err
	}
	return count, nil
}

func newFileRow(runID string, file *model.FileRecord) fileRow {
	row := fileRow{
		RunID:         runID,
		SenderID:      file.SenderID,
		ReceiverID:    file.ReceiverID,
		FileID:        file.FileID,
		CreationDate:  file.CreationDate.String(),
		VersionNumber: file.VersionNumber,
		GroupCount:    len(file.Groups),
	}
	if file.CreationTime != nil {
		s := file.CreationTime.String()
		row.CreationTime = &s
	}
	return row
}

func newAccountRow(runID string, gi, ai int, group *model.Group, account *model.Account) accountRow {
	row := accountRow{
		RunID:         runID,
		GroupIndex:    gi,
		AccountIndex:  ai,
		OriginatorID:  group.OriginatorID,
		AsOfDate:      group.AsOfDate.String(),
		AccountNumber: account.AccountNumber,
		CurrencyCode:  account.CurrencyCode,
		AmountMinor:   account.Amount,
		Credits:       model.FormatMinorUnits(account.Credits(), account.CurrencyCode),
		Debits:        model.FormatMinorUnits(account.Debits(), account.CurrencyCode),
	}
	if account.TypeCode.Code != "" {
		code := account.TypeCode.Code
		row.TypeCode = &code
	}
	if account.Amount != nil {
		s := model.FormatMinorUnits(*account.Amount, account.CurrencyCode)
		row.Amount = &s
	}
	return row
}

func newTransactionRow(runID string, key transactionKey, account *model.Account, txn *model.Transaction) transactionRow {
	return transactionRow{
		RunID:             runID,
		GroupIndex:        key.GroupIndex,
		AccountIndex:      key.AccountIndex,
		TransactionIndex:  key.TransactionIndex,
		AccountNumber:     account.AccountNumber,
		TypeCode:          txn.Type.Code,
		Direction:         string(txn.Type.Direction),
		Category:          string(txn.Type.Category),
		AmountMinor:       txn.Amount,
		Amount:            model.FormatMinorUnits(txn.Amount, account.CurrencyCode),
		CurrencyCode:      account.CurrencyCode,
		FundsType:         txn.FundsType.Code,
		ValueDate:         optionalDate(txn.ValueDate),
		BankReference:     txn.BankReferenceNumber,
		CustomerReference: txn.CustomerReferenceNumber,
		Text:              strings.Join(txn.Text, "\n"),
	}
}
