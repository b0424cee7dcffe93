// Package config reads server settings from the environment, with a
// .env file loaded first when present.
package config

import "os"

// Config holds the server's runtime settings.
type Config struct {
	Addr         string // HTTP listen address
	DBPath       string // substrate database file
	BackupDir    string // where scheduled snapshots are written; empty disables
	BackupCron   string // cron expression for scheduled snapshots
	CompactCodec bool   // store collections with shortened keys
}

// Default returns the configuration with environment overrides applied.
func Default() Config {
	return Config{
		Addr:         envOr("CLUBHOUSE_ADDR", "127.0.0.1:8080"),
		DBPath:       envOr("CLUBHOUSE_DB_PATH", "clubhouse.db"),
		BackupDir:    os.Getenv("CLUBHOUSE_BACKUP_DIR"),
		BackupCron:   envOr("CLUBHOUSE_BACKUP_CRON", "0 3 * * *"),
		CompactCodec: os.Getenv("CLUBHOUSE_COMPACT") != "false",
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
