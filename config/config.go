package config

// Config holds the application configuration.
//
// The log level is read separately by DefaultLogLevel, since it is needed before
// the logger that Load reports through exists.
type Config struct {
	DBPath        string
	MongoURI      string
	MongoDatabase string
	SecretName    string
	AWSRegion     string
	Output        string
}
