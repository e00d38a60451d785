package config

import (
	"errors"
	"os"
)

// Connection strings are read from the environment (populated by the .env
// file in main). They are only required when the pipeline definition
// actually declares a sql source or a mongo sink.

func SQLConnString() (string, error) {
	conn := os.Getenv("SQL_CONNECTION_STRING")
	if conn == "" {
		return "", errors.New("SQL_CONNECTION_STRING environment variable not set")
	}
	return conn, nil
}

func MongoConnString() (string, error) {
	conn := os.Getenv("MONGO_CONNECTION_STRING")
	if conn == "" {
		return "", errors.New("MONGO_CONNECTION_STRING environment variable not set")
	}
	return conn, nil
}
