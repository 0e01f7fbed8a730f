package globals

import (
	"context"
	"os"
)

var (
	JwtSecret = []byte(secretFromEnv())
)

func secretFromEnv() string {
	if s := os.Getenv("JWT_SECRET"); s != "" {
		return s
	}
	// dev fallback; set JWT_SECRET in production
	return "parlour_dev_secret"
}

// Context keys
type ContextKey string

const EmailKey ContextKey = "email"

var Ctx = context.Background()
