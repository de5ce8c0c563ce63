// Package env provides small helpers for reading environment variables.
package env

import (
	"os"
	"strconv"
)

// OrDefault returns the environment variable value or a default.
func OrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// AsBool returns the environment variable as a boolean.
func AsBool(key string, defaultValue bool) (bool, error) {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue, nil
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return false, err
	}
	return value, nil
}

// IsSet returns whether the environment variable is present, regardless
// of its value. Conventions like NO_COLOR key off presence alone.
func IsSet(key string) bool {
	_, ok := os.LookupEnv(key)
	return ok
}
