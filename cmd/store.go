package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/criswit/bai2/db"
	"github.com/criswit/bai2/logger"
	"github.com/criswit/bai2/model"
	"github.com/criswit/bai2/secrets"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/spf13/cobra"
)

var (
	dbPath        string
	mongoURI      string
	mongoDatabase string
	secretName    string
)

// storeSettings is where a statement goes, after flags, environment and secret
// have been merged.
type storeSettings struct {
	DBPath        string
	MongoURI      string
	MongoDatabase string
}

// useMongo reports whether statements go to MongoDB instead of SQLite.
func (s storeSettings) useMongo() bool {
	return s.MongoURI != ""
}

// storeCmd represents the store command
var storeCmd = &cobra.Command{
	Use:   "store <file>",
	Short: "Parse a BAI2 file and store it",
	Long: `Parse a BAI2 file and store its accounts and transactions.

Statements go to a local SQLite database unless a MongoDB URI is configured.
Each store gets a new run id. A file whose sender, file id and creation date
are already in the SQLite database is skipped.

Settings are read from flags first, then from BAI2_* environment variables.
With --secret-name, settings found in the AWS Secrets Manager secret are used
as well.`,
	Example: `  # Store in the default SQLite database
  bai2 store statement.bai

  # Store in a specific database file
  bai2 store statement.bai --db ./statements.db

  # Store in MongoDB
  bai2 store statement.bai --mongo-uri "mongodb://localhost:27017"

  # Read connection settings from AWS Secrets Manager
  bai2 store statement.bai --secret-name "bai2-store"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		file, err := loadStatement(ctx, args[0])
		if err != nil {
			return err
		}

		settings, err := resolveStoreSettings(ctx)
		if err != nil {
			return err
		}

		runID := uuid.New().String()
		log := logger.FromContext(ctx)
		log.Info().Str("run_id", runID).Str("file", args[0]).Msg("storing statement")

		if settings.useMongo() {
			return storeInMongo(ctx, cmd.OutOrStdout(), settings, runID, file)
		}
		return storeInSQLite(ctx, cmd.OutOrStdout(), settings, runID, file)
	},
}

// resolveStoreSettings merges flags, the named secret and configuration, in that
// order of precedence.
func resolveStoreSettings(ctx context.Context) (storeSettings, error) {
	flags := storeSettings{DBPath: dbPath, MongoURI: mongoURI, MongoDatabase: mongoDatabase}
	configured := storeSettings{DBPath: cfg.DBPath, MongoURI: cfg.MongoURI, MongoDatabase: cfg.MongoDatabase}

	name := firstNonEmpty(secretName, cfg.SecretName)
	if name == "" {
		return mergeSettings(flags, secrets.StoreCredentials{}, configured), nil
	}

	sm, err := secrets.NewClient(ctx, cfg.AWSRegion)
	if err != nil {
		return storeSettings{}, fmt.Errorf("failed to create Secrets Manager client: %w", err)
	}

	creds, err := sm.RetrieveStoreCredentials(ctx, name)
	if err != nil {
		return storeSettings{}, fmt.Errorf("failed to retrieve store credentials: %w", err)
	}

	return mergeSettings(flags, creds, configured), nil
}

func mergeSettings(flags storeSettings, creds secrets.StoreCredentials, configured storeSettings) storeSettings {
	return storeSettings{
		DBPath:        firstNonEmpty(flags.DBPath, creds.DBPath, configured.DBPath),
		MongoURI:      firstNonEmpty(flags.MongoURI, creds.MongoURI, configured.MongoURI),
		MongoDatabase: firstNonEmpty(flags.MongoDatabase, creds.MongoDatabase, configured.MongoDatabase),
	}
}

func storeInSQLite(ctx context.Context, w io.Writer, settings storeSettings, runID string, file *model.FileRecord) error {
	if err := os.MkdirAll(filepath.Dir(settings.DBPath), 0o755); err != nil {
		return fmt.Errorf("failed to create database directory: %w", err)
	}

	dbClient, err := db.NewDatabaseClient(settings.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer dbClient.Close()

	if err := dbClient.EnsureSchema(); err != nil {
		return err
	}

	exists, err := dbClient.DoesFileExist(file.SenderID, file.FileID, file.CreationDate)
	if err != nil {
		return fmt.Errorf("failed to check for stored file: %w", err)
	}
	if exists {
		fmt.Fprintf(w, "File %s from %s created %s is already stored, skipping\n", file.FileID, file.SenderID, file.CreationDate)
		return nil
	}

	if err := dbClient.PutStatement(ctx, runID, file); err != nil {
		return fmt.Errorf("failed to store statement: %w", err)
	}

	count, err := dbClient.CountTransactions(runID)
	if err != nil {
		return fmt.Errorf("failed to count stored transactions: %w", err)
	}

	fmt.Fprintf(w, "✅ Successfully stored %d transaction(s)\n", count)
	fmt.Fprintf(w, "   Run ID: %s\n", runID)
	fmt.Fprintf(w, "   Database: %s\n", settings.DBPath)
	return nil
}

func storeInMongo(ctx context.Context, w io.Writer, settings storeSettings, runID string, file *model.FileRecord) error {
	client, err := db.ConnectToMongoDB(ctx, settings.MongoURI)
	if err != nil {
		return err
	}
	defer func() {
		if err := client.Disconnect(ctx); err != nil {
			log := logger.FromContext(ctx)
			log.Warn().Err(err).Msg("failed to disconnect from MongoDB")
		}
	}()

	store := db.NewMongoStore(db.NewMongoProvider(client, settings.MongoDatabase))
	if err := store.PutStatement(ctx, runID, file); err != nil {
		return fmt.Errorf("failed to store statement: %w", err)
	}

	fmt.Fprintf(w, "✅ Successfully stored %d transaction(s)\n", file.TransactionCount())
	fmt.Fprintf(w, "   Run ID: %s\n", runID)
	fmt.Fprintf(w, "   Database: %s\n", settings.MongoDatabase)
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func init() {
	rootCmd.AddCommand(storeCmd)

	storeCmd.Flags().StringVar(&dbPath, "db", "", "Path of the SQLite database (default $HOME/.bai2/bai2.db)")
	storeCmd.Flags().StringVar(&mongoURI, "mongo-uri", "", "MongoDB connection URI; stores in MongoDB instead of SQLite")
	storeCmd.Flags().StringVar(&mongoDatabase, "mongo-database", "", "MongoDB database name (default bai2)")
	storeCmd.Flags().StringVar(&secretName, "secret-name", "", "Name of an AWS Secrets Manager secret holding store settings")
}
