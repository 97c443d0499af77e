package globals

import (
	"context"
	"os"
)

var (
	JwtSecret = []byte(getSecret())
)

func getSecret() string {
	if s := os.Getenv("JWT_SECRET"); s != "" {
		return s
	}
	return "earlobe_dev_secret"
}

// Context keys
type ContextKey string

const RoleKey ContextKey = "role"
const UserIDKey ContextKey = "userId"

var Ctx = context.Background()
