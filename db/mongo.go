package db

import (
	"context"
	"fmt"
	"time"

	"github.com/criswit/bai2/logger"
	"github.com/criswit/bai2/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	TransactionsCollection = "bai2_transactions"
	ImportsCollection      = "bai2_imports"
)

// DataStore is the subset of a MongoDB collection the statement store uses.
type DataStore interface {
	BulkWrite(
		ctx context.Context,
		models []mongo.WriteModel,
		opts ...*options.BulkWriteOptions) (*mongo.BulkWriteResult, error)
	InsertOne(
		ctx context.Context,
		document interface{},
		opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error)
}

// CollectionProvider hands out collections of one database.
type CollectionProvider interface {
	Collection(name string) DataStore
}

// MongoCollection adapts *mongo.Collection to DataStore.
type MongoCollection struct {
	*mongo.Collection
}

func (c *MongoCollection) BulkWrite(
	ctx context.Context,
	models []mongo.WriteModel,
	opts ...*options.BulkWriteOptions) (*mongo.BulkWriteResult, error) {
	result, err := c.Collection.BulkWrite(ctx, models, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to perform BulkWrite: %w", err)
	}
	return result, nil
}

func (c *MongoCollection) InsertOne(
	ctx context.Context,
	document interface{},
	opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error) {
	result, err := c.Collection.InsertOne(ctx, document, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to perform InsertOne: %w", err)
	}
	return result, nil
}

// MongoProvider adapts a *mongo.Client and a database name to CollectionProvider.
type MongoProvider struct {
	client   *mongo.Client
	database string
}

func NewMongoProvider(client *mongo.Client, database string) *MongoProvider {
	return &MongoProvider{client: client, database: database}
}

func (p *MongoProvider) Collection(name string) DataStore {
	return &MongoCollection{p.client.Database(p.database).Collection(name)}
}

// ConnectToMongoDB connects and pings the server before returning the client.
func ConnectToMongoDB(ctx context.Context, uri string) (*mongo.Client, error) {
	log := logger.FromContext(ctx)
	log.Debug().Msg("Attempting to connect to MongoDB")

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	log.Info().Msg("Successfully established connection to MongoDB")
	return client, nil
}

type transactionDocument struct {
	RunID             string               `bson:"run_id"`
	SenderID          string               `bson:"sender_id"`
	FileID            string               `bson:"file_id"`
	CreationDate      string               `bson:"creation_date"`
	GroupIndex        int                  `bson:"group_index"`
	AccountIndex      int                  `bson:"account_index"`
	TransactionIndex  int                  `bson:"transaction_index"`
	OriginatorID      string               `bson:"originator_id"`
	AsOfDate          string               `bson:"as_of_date"`
	AccountNumber     string               `bson:"account_number"`
	CurrencyCode      string               `bson:"currency_code"`
	TypeCode          string               `bson:"type_code"`
	Direction         string               `bson:"direction"`
	Category          string               `bson:"category"`
	AmountMinor       int64                `bson:"amount_minor"`
	Amount            primitive.Decimal128 `bson:"amount"`
	FundsType         string               `bson:"funds_type"`
	ValueDate         *string              `bson:"value_date,omitempty"`
	BankReference     string               `bson:"bank_reference"`
	CustomerReference string               `bson:"customer_reference"`
	Text              []string             `bson:"text"`
	ImportedAt        time.Time            `bson:"imported_at"`
}

// ImportLog records one store run.
type ImportLog struct {
	RunID        string    `bson:"run_id"`
	SenderID     string    `bson:"sender_id"`
	FileID       string    `bson:"file_id"`
	CreationDate string    `bson:"creation_date"`
	Groups       int64     `bson:"groups"`
	Transactions int64     `bson:"transactions"`
	ImportedAt   time.Time `bson:"imported_at"`
}

// MongoStore writes statements to MongoDB, one document per transaction.
type MongoStore struct {
	provider CollectionProvider
	now      func() time.Time
}

func NewMongoStore(provider CollectionProvider) *MongoStore {
	return &MongoStore{provider: provider, now: time.Now}
}

// PutStatement upserts every transaction of file, keyed by its position in the file,
// so storing the same file twice does not duplicate documents. An import log entry is
// written after the transactions.
func (s *MongoStore) PutStatement(ctx context.Context, runID string, file *model.FileRecord) error {
	importedAt := s.now().UTC()
	creationDate := file.CreationDate.String()

	var models []mongo.WriteModel
	err := walkTransactions(file, func(key transactionKey, group *model.Group, account *model.Account, txn *model.Transaction) error {
		amount, err := primitive.ParseDecimal128(model.FormatMinorUnits(txn.Amount, account.CurrencyCode))
		if err != nil {
			return fmt.Errorf("failed to convert amount of transaction %d of account %s: %w", key.TransactionIndex, account.AccountNumber, err)
		}

		doc := transactionDocument{
			RunID:             runID,
			SenderID:          file.SenderID,
			FileID:            file.FileID,
			CreationDate:      creationDate,
			GroupIndex:        key.GroupIndex,
			AccountIndex:      key.AccountIndex,
			TransactionIndex:  key.TransactionIndex,
			OriginatorID:      group.OriginatorID,
			AsOfDate:          group.AsOfDate.String(),
			AccountNumber:     account.AccountNumber,
			CurrencyCode:      account.CurrencyCode,
			TypeCode:          txn.Type.Code,
			Direction:         string(txn.Type.Direction),
			Category:          string(txn.Type.Category),
			AmountMinor:       txn.Amount,
			Amount:            amount,
			FundsType:         txn.FundsType.Code,
			ValueDate:         optionalDate(txn.ValueDate),
			BankReference:     txn.BankReferenceNumber,
			CustomerReference: txn.CustomerReferenceNumber,
			Text:              txn.Text,
			ImportedAt:        importedAt,
		}
		filter := bson.M{
			"sender_id":         doc.SenderID,
			"file_id":           doc.FileID,
			"creation_date":     doc.CreationDate,
			"account_number":    doc.AccountNumber,
			"group_index":       doc.GroupIndex,
			"account_index":     doc.AccountIndex,
			"transaction_index": doc.TransactionIndex,
		}
		update := bson.M{"$set": doc}
		models = append(models, mongo.NewUpdateOneModel().SetFilter(filter).SetUpdate(update).SetUpsert(true))
		return nil
	})
	if err != nil {
		return err
	}

	if len(models) > 0 {
		collection := s.provider.Collection(TransactionsCollection)
		if _, err := collection.BulkWrite(ctx, models, options.BulkWrite().SetOrdered(false)); err != nil {
			return fmt.Errorf("failed to perform bulk write for collection %s: %w", TransactionsCollection, err)
		}
	}

	importLog := ImportLog{
		RunID:        runID,
		SenderID:     file.SenderID,
		FileID:       file.FileID,
		CreationDate: creationDate,
		Groups:       int64(len(file.Groups)),
		Transactions: int64(len(models)),
		ImportedAt:   importedAt,
	}
	if _, err := s.provider.Collection(ImportsCollection).InsertOne(ctx, importLog); err != nil {
		return fmt.Errorf("failed to insert into %s collection: %w", ImportsCollection, err)
	}

	log := logger.FromContext(ctx)
	log.Debug().Str("run_id", runID).Int("transactions", len(models)).Msg("stored statement in MongoDB")
	return nil
}
