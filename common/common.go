package common

import (
	"os"

	"github.com/gin-gonic/gin"
)

var (
	// ProjectID is the GCP project hosting the Firestore database and logs.
	ProjectID string

	// Production flag indicating if the app is serving real traffic.
	Production bool

	// IsLocalhost flag indicating if the app is running on localhost.
	IsLocalhost bool
)

func init() {
	ProjectID = GetEnv("GOOGLE_CLOUD_PROJECT", "nordbill-backoffice-dev")

	IsLocalhost = gin.Mode() != gin.ReleaseMode

	Production = GetEnv("APP_ENV", "localhost") == "production"
}

// GetEnv returns the value of the environment variable named by key,
// or fallback when it is unset or empty.
func GetEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return fallback
}
