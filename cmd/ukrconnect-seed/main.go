// Command ukrconnect-seed loads the starter content into a MongoDB
// database outside of the web server, and reports what is there.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

const (
	mongoURIKey      = "mongo_uri"
	mongoDatabaseKey = "mongo_database"
	timeoutKey       = "timeout"
	verboseKey       = "verbose"
)

var rootCmd = &cobra.Command{
	Use:           "ukrconnect-seed",
	Short:         "Seed and inspect the Ukrainian Community Connect database",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	viper.SetEnvPrefix("UKRCONNECT")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	flags := rootCmd.PersistentFlags()
	flags.String(mongoURIKey, "mongodb://localhost:27017", "MongoDB connection URI")
	flags.String(mongoDatabaseKey, "ukrconnect", "MongoDB database name")
	flags.Duration(timeoutKey, time.Minute, "deadline for the whole command")
	flags.Bool(verboseKey, false, "log at debug level")

	for _, key := range []string{mongoURIKey, mongoDatabaseKey, timeoutKey, verboseKey} {
		cobra.CheckErr(viper.BindPFlag(key, flags.Lookup(key)))
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newLogger() (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	if !viper.GetBool(verboseKey) {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	return cfg.Build()
}

// withDatabase connects, pings, runs fn and disconnects.
func withDatabase(parent context.Context, fn func(ctx context.Context, db *mongo.Database, logger *zap.Logger) error) error {
	logger, err := newLogger()
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, cancel := context.WithTimeout(parent, viper.GetDuration(timeoutKey))
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(viper.GetString(mongoURIKey)))
	if err != nil {
		return fmt.Errorf("mongo connect: %w", err)
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("mongo ping: %w", err)
	}

	name := viper.GetString(mongoDatabaseKey)
	logger.Debug("connected", zap.String("database", name))
	return fn(ctx, client.Database(name), logger)
}
