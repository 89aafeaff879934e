package db

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/criswit/bai2/bai2"
	"github.com/criswit/bai2/model"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test fixtures
const statementFile = `01,SENDR1,RECVR1,210706,1611,0,,,2/
02,RECVR1,SENDR1,1,210706,1611,CAD,2/
03,10200123456,,010,500000,,,015,600000,,/
16,165,1500000,1,DD1620,,DEALER PAYMENTS
88,ADDITIONAL TEXT
49,2600000,4/
98,2600000,1,6/
99,2600000,1,8/`

const twoAccountFile = `01,BANK01,CUST01,240115,0800,17,,,2/
02,CUST01,BANK01,1,240114,2400,USD,2/
03,111,,015,100000,,/
16,475,2500,0,CHK1001,INV-9,CHECK PAID
16,409,1000,V,240116,,RET1,,RETURNED ITEM
49,103500,4/
03,222,JPY,015,5000,,/
16,195,3000,0,WIRE1,,INCOMING WIRE
49,8000,3/
98,111500,2,9/
99,111500,1,11/`

func parseFixture(t *testing.T, content string) *model.FileRecord {
	t.Helper()
	file, err := bai2.ParseString(content)
	require.NoError(t, err, "Failed to parse fixture")
	return file
}

// Test helper functions
func setupTestDB(t *testing.T) *DatabaseClient {
	t.Helper()

	// Create in-memory SQLite database; one connection so every query sees it
	db, err := sqlx.Connect("sqlite3", ":memory:")
	require.NoError(t, err, "Failed to create in-memory database")
	db.SetMaxOpenConns(1)

	client := &DatabaseClient{db: db}
	require.NoError(t, client.EnsureSchema(), "Failed to create schema")

	return client
}

func setupMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock, *DatabaseClient) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err, "Failed to create mock database")

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")
	client := &DatabaseClient{db: sqlxDB}

	return mockDB, mock, client
}

// TestNewDatabaseClient tests the constructor with various parameters
func TestNewDatabaseClient(t *testing.T) {
	tests := []struct {
		name        string
		wantErr     bool
		errContains string
		setup       func(t *testing.T) string
	}{
		{
			name:    "valid_in_memory_database",
			wantErr: false,
			setup: func(t *testing.T) string {
				return ":memory:"
			},
		},
		{
			name:    "valid_file_database",
			wantErr: false,
			setup: func(t *testing.T) string {
				tmpDir := t.TempDir()
				return filepath.Join(tmpDir, "test.db")
			},
		},
		{
			name:        "invalid_database_path",
			wantErr:     true,
			errContains: "unable to open database file",
			setup: func(t *testing.T) string {
				return "/invalid/path/to/database.db"
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dbPath := tt.setup(t)

			client, err := NewDatabaseClient(dbPath)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.errContains != "" {
					assert.Contains(t, err.Error(), tt.errContains)
				}
				assert.Nil(t, client)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, client)
				if client != nil {
					client.Close()
				}
			}
		})
	}
}

// TestEnsureSchema tests that schema creation can run repeatedly
func TestEnsureSchema(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "statements.db")

	client, err := NewDatabaseClient(dbPath)
	require.NoError(t, err)
	defer client.Close()

	require.NoError(t, client.EnsureSchema())
	require.NoError(t, client.EnsureSchema())

	for _, table := range []string{fileTable, accountTable, transactionTable} {
		var count int
		err := client.db.Get(&count, "SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?", table)
		assert.NoError(t, err)
		assert.Equal(t, 1, count, "table %s should exist", table)
	}

	_, err = os.Stat(dbPath)
	assert.NoError(t, err)
}

// TestPutStatement tests statement persistence
func TestPutStatement(t *testing.T) {
	tests := []struct {
		name             string
		content          string
		runID            string
		wantAccounts     int
		wantTransactions int
	}{
		{
			name:             "single_account_file",
			content:          statementFile,
			runID:            "run_1",
			wantAccounts:     1,
			wantTransactions: 1,
		},
		{
			name:             "two_account_file",
			content:          twoAccountFile,
			runID:            "run_2",
			wantAccounts:     2,
			wantTransactions: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := setupTestDB(t)
			defer client.Close()

			file := parseFixture(t, tt.content)

			err := client.PutStatement(context.Background(), tt.runID, file)
			require.NoError(t, err)

			count, err := client.CountTransactions(tt.runID)
			assert.NoError(t, err)
			assert.Equal(t, tt.wantTransactions, count)

			var accounts int
			err = client.db.Get(&accounts, "SELECT COUNT(*) FROM BAI2_ACCOUNT WHERE RUN_ID = ?", tt.runID)
			assert.NoError(t, err)
			assert.Equal(t, tt.wantAccounts, accounts)

			exists, err := client.DoesFileExist(file.SenderID, file.FileID, file.CreationDate)
			assert.NoError(t, err)
			assert.True(t, exists)
		})
	}
}

// TestPutStatementRows tests the stored column values
func TestPutStatementRows(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	err := client.PutStatement(context.Background(), "run_rows", parseFixture(t, twoAccountFile))
	require.NoError(t, err)

	var fileRecord fileRow
	err = client.db.Get(&fileRecord, "SELECT RUN_ID, SENDER_ID, RECEIVER_ID, FILE_ID, CREATION_DATE, CREATION_TIME, VERSION_NUMBER, GROUP_COUNT FROM BAI2_FILE WHERE RUN_ID = ?", "run_rows")
	require.NoError(t, err)
	assert.Equal(t, "BANK01", fileRecord.SenderID)
	assert.Equal(t, "2024-01-15", fileRecord.CreationDate)
	require.NotNil(t, fileRecord.CreationTime)
	assert.Equal(t, "08:00:00", *fileRecord.CreationTime)
	assert.Equal(t, 1, fileRecord.GroupCount)

	var accounts []accountRow
	err = client.db.Select(&accounts, "SELECT RUN_ID, GROUP_INDEX, ACCOUNT_INDEX, ORIGINATOR_ID, AS_OF_DATE, ACCOUNT_NUMBER, CURRENCY_CODE, TYPE_CODE, AMOUNT_MINOR, AMOUNT, CREDITS, DEBITS FROM BAI2_ACCOUNT ORDER BY ACCOUNT_INDEX")
	require.NoError(t, err)
	require.Len(t, accounts, 2)
	assert.Equal(t, "111", accounts[0].AccountNumber)
	assert.Equal(t, "USD", accounts[0].CurrencyCode)
	assert.Equal(t, "2024-01-14", accounts[0].AsOfDate)
	require.NotNil(t, accounts[0].Amount)
	assert.Equal(t, "1000.00", *accounts[0].Amount)
	assert.Equal(t, "35.00", accounts[0].Debits)
	assert.Equal(t, "0.00", accounts[0].Credits)
	assert.Equal(t, "JPY", accounts[1].CurrencyCode)
	assert.Equal(t, "3000", accounts[1].Credits)

	var txns []transactionRow
	err = client.db.Select(&txns, "SELECT RUN_ID, GROUP_INDEX, ACCOUNT_INDEX, TRANSACTION_INDEX, ACCOUNT_NUMBER, TYPE_CODE, DIRECTION, CATEGORY, AMOUNT_MINOR, AMOUNT, CURRENCY_CODE, FUNDS_TYPE, VALUE_DATE, BANK_REFERENCE, CUSTOMER_REFERENCE, TEXT FROM BAI2_TRANSACTION ORDER BY ACCOUNT_INDEX, TRANSACTION_INDEX")
	require.NoError(t, err)
	require.Len(t, txns, 3)

	assert.Equal(t, "475", txns[0].TypeCode)
	assert.Equal(t, "debit", txns[0].Direction)
	assert.Equal(t, "check_paid", txns[0].Category)
	assert.Equal(t, int64(2500), txns[0].AmountMinor)
	assert.Equal(t, "25.00", txns[0].Amount)
	assert.Equal(t, "CHK1001", txns[0].BankReference)
	assert.Equal(t, "INV-9", txns[0].CustomerReference)
	assert.Equal(t, "CHECK PAID", txns[0].Text)
	assert.Nil(t, txns[0].ValueDate)

	require.NotNil(t, txns[1].ValueDate)
	assert.Equal(t, "2024-01-16", *txns[1].ValueDate)
	assert.Equal(t, "V", txns[1].FundsType)

	assert.Equal(t, 1, txns[2].AccountIndex)
	assert.Equal(t, 0, txns[2].TransactionIndex)
	assert.Equal(t, "3000", txns[2].Amount)
}

// TestPutStatementDuplicateFile tests that a rejected file leaves no rows behind
func TestPutStatementDuplicateFile(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	file := parseFixture(t, statementFile)
	require.NoError(t, client.PutStatement(context.Background(), "run_first", file))

	err := client.PutStatement(context.Background(), "run_second", file)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to insert file")

	count, err := client.CountTransactions("run_second")
	assert.NoError(t, err)
	assert.Equal(t, 0, count)
}

// TestDoesFileExist tests file existence checking
func TestDoesFileExist(t *testing.T) {
	stored := civil.Date{Year: 2021, Month: time.July, Day: 6}

	tests := []struct {
		name         string
		senderID     string
		fileID       string
		creationDate civil.Date
		want         bool
	}{
		{name: "stored_file", senderID: "SENDR1", fileID: "0", creationDate: stored, want: true},
		{name: "other_file_id", senderID: "SENDR1", fileID: "1", creationDate: stored, want: false},
		{name: "other_sender", senderID: "SENDR2", fileID: "0", creationDate: stored, want: false},
		{name: "other_creation_date", senderID: "SENDR1", fileID: "0", creationDate: stored.AddDays(1), want: false},
		{name: "special_characters", senderID: "SENDR'1", fileID: "\"0", creationDate: stored, want: false},
	}

	client := setupTestDB(t)
	defer client.Close()
	require.NoError(t, client.PutStatement(context.Background(), "run_1", parseFixture(t, statementFile)))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exists, err := client.DoesFileExist(tt.senderID, tt.fileID, tt.creationDate)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, exists)
		})
	}
}

// TestDatabaseClientClose tests the Close method
func TestDatabaseClientClose(t *testing.T) {
	client := setupTestDB(t)
	require.NotNil(t, client)

	err := client.db.Ping()
	assert.NoError(t, err, "Database should be accessible before close")

	client.Close()

	err = client.db.Ping()
	assert.Error(t, err, "Database should not be accessible after close")
}

// TestMockDatabaseOperations tests using sqlmock for failure paths
func TestMockDatabaseOperations(t *testing.T) {
	t.Run("mock_begin_error", func(t *testing.T) {
		mockDB, mock, client := setupMockDB(t)
		defer mockDB.Close()

		mock.ExpectBegin().WillReturnError(fmt.Errorf("database is locked"))

		err := client.PutStatement(context.Background(), "run_1", parseFixture(t, statementFile))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to begin transaction")
		assert.Contains(t, err.Error(), "database is locked")

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("mock_insert_error_rolls_back", func(t *testing.T) {
		mockDB, mock, client := setupMockDB(t)
		defer mockDB.Close()

		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO BAI2_FILE").
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectExec("INSERT INTO BAI2_ACCOUNT").
			WillReturnError(fmt.Errorf("database connection lost"))
		mock.ExpectRollback()

		err := client.PutStatement(context.Background(), "run_1", parseFixture(t, statementFile))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to insert account 10200123456")
		assert.Contains(t, err.Error(), "database connection lost")

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("mock_commit_error", func(t *testing.T) {
		mockDB, mock, client := setupMockDB(t)
		defer mockDB.Close()

		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO BAI2_FILE").WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectExec("INSERT INTO BAI2_ACCOUNT").WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectExec("INSERT INTO BAI2_TRANSACTION").WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectCommit().WillReturnError(fmt.Errorf("disk full"))

		err := client.PutStatement(context.Background(), "run_1", parseFixture(t, statementFile))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to commit transaction")

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("mock_count_query", func(t *testing.T) {
		mockDB, mock, client := setupMockDB(t)
		defer mockDB.Close()

		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM BAI2_TRANSACTION WHERE RUN_ID = \\?").
			WithArgs("run_1").
			WillReturnRows(sqlmock.NewRows([]string{"COUNT(*)"}).AddRow(7))

		count, err := client.CountTransactions("run_1")
		assert.NoError(t, err)
		assert.Equal(t, 7, count)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

// Benchmark tests
func BenchmarkPutStatement(b *testing.B) {
	db, err := sqlx.Connect("sqlite3", ":memory:")
	if err != nil {
		b.Fatal(err)
	}
	db.SetMaxOpenConns(1)
	client := &DatabaseClient{db: db}
	defer client.Close()
	if err := client.EnsureSchema(); err != nil {
		b.Fatal(err)
	}

	file, err := bai2.ParseString(twoAccountFile)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		file.FileID = fmt.Sprintf("bench_%d", i)
		_ = client.PutStatement(context.Background(), fmt.Sprintf("run_%d", i), file)
	}
}
