package config

import (
	"os"
	"strconv"
	"time"
)

func envString(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return defaultValue
}

func envInt(key string, defaultValue int) int {
	value, ok := os.LookupEnv(key)
	if !ok {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

func envBool(key string, defaultValue bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		return value == "true"
	}
	return defaultValue
}

// envSeconds reads an integer number of seconds.
func envSeconds(key string, defaultValue int) time.Duration {
	return time.Duration(envInt(key, defaultValue)) * time.Second
}
