package db

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Mock for DataStore interface.
type mockDataStore struct {
	bulkWriteFunc func(ctx context.Context, models []mongo.WriteModel, opts ...*options.BulkWriteOptions) (*mongo.BulkWriteResult, error)
	insertOneFunc func(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error)
}

func (m *mockDataStore) BulkWrite(ctx context.Context, models []mongo.WriteModel, opts ...*options.BulkWriteOptions) (*mongo.BulkWriteResult, error) {
	if m.bulkWriteFunc != nil {
		return m.bulkWriteFunc(ctx, models, opts...)
	}
	return &mongo.BulkWriteResult{}, nil
}

func (m *mockDataStore) InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error) {
	if m.insertOneFunc != nil {
		return m.insertOneFunc(ctx, document, opts...)
	}
	return &mongo.InsertOneResult{}, nil
}

// Mock for CollectionProvider interface.
type mockCollectionProvider struct {
	collectionFunc func(name string) DataStore
}

func (m *mockCollectionProvider) Collection(name string) DataStore {
	if m.collectionFunc != nil {
		return m.collectionFunc(name)
	}
	return &mockDataStore{}
}

var fixedNow = time.Date(2024, time.January, 15, 9, 30, 0, 0, time.UTC)

func newTestMongoStore(provider CollectionProvider) *MongoStore {
	store := NewMongoStore(provider)
	store.now = func() time.Time { return fixedNow }
	return store
}

func TestNewMongoStore(t *testing.T) {
	store := NewMongoStore(&mockCollectionProvider{})
	require.NotNil(t, store)
	assert.NotNil(t, store.now)
}

func TestMongoPutStatement(t *testing.T) {
	file := parseFixture(t, twoAccountFile)

	var (
		collections []string
		written     []mongo.WriteModel
		importLog   ImportLog
	)

	transactions := &mockDataStore{
		bulkWriteFunc: func(ctx context.Context, models []mongo.WriteModel, opts ...*options.BulkWriteOptions) (*mongo.BulkWriteResult, error) {
			written = models
			return &mongo.BulkWriteResult{UpsertedCount: int64(len(models))}, nil
		},
	}
	imports := &mockDataStore{
		insertOneFunc: func(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error) {
			log, ok := document.(ImportLog)
			require.True(t, ok, "expected ImportLog document, got %T", document)
			importLog = log
			return &mongo.InsertOneResult{}, nil
		},
	}
	provider := &mockCollectionProvider{
		collectionFunc: func(name string) DataStore {
			collections = append(collections, name)
			if name == ImportsCollection {
				return imports
			}
			return transactions
		},
	}

	err := newTestMongoStore(provider).PutStatement(context.Background(), "run_1", file)
	require.NoError(t, err)

	assert.Equal(t, []string{TransactionsCollection, ImportsCollection}, collections)
	require.Len(t, written, 3)

	first, ok := written[0].(*mongo.UpdateOneModel)
	require.True(t, ok)
	require.NotNil(t, first.Upsert)
	assert.True(t, *first.Upsert)

	filter := first.Filter.(bson.M)
	assert.Equal(t, "BANK01", filter["sender_id"])
	assert.Equal(t, "17", filter["file_id"])
	assert.Equal(t, "2024-01-15", filter["creation_date"])
	assert.Equal(t, "111", filter["account_number"])
	assert.Equal(t, 0, filter["transaction_index"])

	doc := first.Update.(bson.M)["$set"].(transactionDocument)
	assert.Equal(t, "run_1", doc.RunID)
	assert.Equal(t, "475", doc.TypeCode)
	assert.Equal(t, "debit", doc.Direction)
	assert.Equal(t, int64(2500), doc.AmountMinor)
	assert.Equal(t, "25.00", doc.Amount.String())
	assert.Equal(t, []string{"CHECK PAID"}, doc.Text)
	assert.Equal(t, fixedNow, doc.ImportedAt)

	third := written[2].(*mongo.UpdateOneModel).Update.(bson.M)["$set"].(transactionDocument)
	assert.Equal(t, "222", third.AccountNumber)
	assert.Equal(t, 1, third.AccountIndex)
	assert.Equal(t, "JPY", third.CurrencyCode)
	assert.Equal(t, "3000", third.Amount.String())

	assert.Equal(t, ImportLog{
		RunID:        "run_1",
		SenderID:     "BANK01",
		FileID:       "17",
		CreationDate: "2024-01-15",
		Groups:       1,
		Transactions: 3,
		ImportedAt:   fixedNow,
	}, importLog)
}

func TestMongoPutStatementWithoutTransactions(t *testing.T) {
	file := parseFixture(t, "01,SENDR1,RECVR1,210706,1611,0,,,2/\n99,0,0,2/")

	var bulkWrites, inserts int
	store := &mockDataStore{
		bulkWriteFunc: func(ctx context.Context, models []mongo.WriteModel, opts ...*options.BulkWriteOptions) (*mongo.BulkWriteResult, error) {
			bulkWrites++
			return &mongo.BulkWriteResult{}, nil
		},
		insertOneFunc: func(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error) {
			inserts++
			assert.Equal(t, int64(0), document.(ImportLog).Transactions)
			return &mongo.InsertOneResult{}, nil
		},
	}
	provider := &mockCollectionProvider{collectionFunc: func(name string) DataStore { return store }}

	err := newTestMongoStore(provider).PutStatement(context.Background(), "run_empty", file)
	require.NoError(t, err)
	assert.Equal(t, 0, bulkWrites)
	assert.Equal(t, 1, inserts)
}

func TestMongoPutStatementErrors(t *testing.T) {
	tests := []struct {
		name        string
		bulkErr     error
		insertErr   error
		errContains string
	}{
		{
			name:        "bulk_write_error",
			bulkErr:     errors.New("bulk write error"),
			errContains: "failed to perform bulk write for collection bai2_transactions: bulk write error",
		},
		{
			name:        "import_log_error",
			insertErr:   errors.New("import log error"),
			errContains: "failed to insert into bai2_imports collection: import log error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &mockDataStore{
				bulkWriteFunc: func(ctx context.Context, models []mongo.WriteModel, opts ...*options.BulkWriteOptions) (*mongo.BulkWriteResult, error) {
					if tt.bulkErr != nil {
						return nil, tt.bulkErr
					}
					return &mongo.BulkWriteResult{UpsertedCount: int64(len(models))}, nil
				},
				insertOneFunc: func(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error) {
					if tt.insertErr != nil {
						return nil, tt.insertErr
					}
					return &mongo.InsertOneResult{}, nil
				},
			}
			provider := &mockCollectionProvider{collectionFunc: func(name string) DataStore { return store }}

			err := newTestMongoStore(provider).PutStatement(context.Background(), "run_1", parseFixture(t, statementFile))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errContains)
			assert.ErrorIs(t, err, firstNonNil(tt.bulkErr, tt.insertErr))
		})
	}
}

func firstNonNil(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
