// Package config contains the configuration for the tosqlbind tool. A Config
// is usually read from a file with Load and then completed with FillDefaults
// before use.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dekarrin/tosql/bind/sqlite"
	"github.com/dekarrin/tosql/logging"
)

// Log contains logging options. When logging is enabled the chosen provider
// receives a trace message for every parameter that is bound and an error
// message for every conversion that fails.
type Log struct {
	// Enabled is whether to log at all.
	Enabled bool

	// Provider is the logging library to use. When unset it defaults to
	// logging.Jellog.
	Provider logging.Provider

	// File is the path to a file to write log messages to in addition to
	// stderr. If blank, messages only go to stderr.
	File string
}

// Create creates the Logger described by log. A disabled Log gives a logger
// that discards everything.
func (log Log) Create() (logging.Logger, error) {
	if !log.Enabled {
		return logging.NoOpLogger{}, nil
	}
	return logging.New(log.Provider, log.File)
}

func (log Log) FillDefaults() Log {
	newLog := log

	if newLog.Provider == logging.NoLog {
		newLog.Provider = logging.Jellog
	}

	return newLog
}

func (log Log) Validate() error {
	if log.Enabled && log.Provider == logging.NoLog {
		return fmt.Errorf("provider: must not be empty")
	}

	return nil
}

// Database holds the location of the SQLite file that bound values are
// stored in.
type Database struct {
	// Dir is the directory the database file is kept in. It is created if it
	// does not exist.
	Dir string

	// File is the name of the database file within Dir.
	File string
}

// FillDefaults returns a new Database identical to db but with unset values
// set to their defaults.
func (db Database) FillDefaults() Database {
	newDB := db

	if newDB.Dir == "" {
		newDB.Dir = "."
	}
	if newDB.File == "" {
		newDB.File = sqlite.DefaultFile
	}

	return newDB
}

// Validate returns an error if the Database does not have the correct fields
// set. Its values should be filled with FillDefaults first.
func (db Database) Validate() error {
	if db.Dir == "" {
		return fmt.Errorf("dir: must not be empty")
	}
	if db.File == "" {
		return fmt.Errorf("file: must not be empty")
	}
	if filepath.Base(db.File) != db.File {
		return fmt.Errorf("file: %q must be a file name, not a path", db.File)
	}

	return nil
}

// Connect opens the store described by db, creating Dir first if needed.
func (db Database) Connect(log logging.Logger) (*sqlite.Store, error) {
	err := os.MkdirAll(db.Dir, 0770)
	if err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	st, err := sqlite.Open(db.Dir, db.File, log)
	if err != nil {
		return nil, fmt.Errorf("initialize sqlite: %w", err)
	}

	return st, nil
}

// Config is a configuration for the tosqlbind tool.
type Config struct {
	// Log configures logging. It can be left blank to disable logging.
	Log Log

	// DB is where bound values are stored.
	DB Database
}

// FillDefaults returns a new Config identical to cfg but with unset values set
// to their defaults.
func (cfg Config) FillDefaults() Config {
	newCFG := cfg

	newCFG.Log = newCFG.Log.FillDefaults()
	newCFG.DB = newCFG.DB.FillDefaults()

	return newCFG
}

// Validate returns an error if the Config has invalid field values set. Empty
// and unset values are considered invalid; if defaults are intended to be used,
// call Validate on the return value of FillDefaults.
func (cfg Config) Validate() error {
	if err := cfg.Log.Validate(); err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	if err := cfg.DB.Validate(); err != nil {
		return fmt.Errorf("db: %w", err)
	}

	return nil
}
