// Command issue-token mints a session token for a caller principal.
// Tokens are handed out out-of-band (there is no self-serve signup);
// the printed token goes in the Authorization: Bearer header.
//
// Flags:
//
//	--principal  caller identity to embed in the token (required)
//	--role       role claim: admin, user, or guest (default: user)
//	--ttl        token lifetime, overrides the configured default
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/shiftdesk/shiftdesk-backend/internal/auth"
	"github.com/shiftdesk/shiftdesk-backend/internal/config"
	"github.com/shiftdesk/shiftdesk-backend/internal/domain"
)

func main() {
	principalFlag := flag.String("principal", "", "caller identity to embed in the token")
	roleFlag := flag.String("role", "user", "role claim: admin, user, or guest")
	ttlFlag := flag.Duration("ttl", 0, "token lifetime (default: configured token_ttl)")
	flag.Parse()

	if *principalFlag == "" {
		log.Fatal("--principal is required")
	}
	if !domain.UserRole(*roleFlag).IsValid() {
		log.Fatalf("invalid role %q: must be admin, user, or guest", *roleFlag)
	}

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ttl := cfg.Auth.TokenTTL
	if *ttlFlag > 0 {
		ttl = *ttlFlag
	}

	manager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, ttl)

	token, err := manager.GenerateToken(*principalFlag, *roleFlag)
	if err != nil {
		log.Fatalf("generate token: %v", err)
	}

	fmt.Println(token)
	fmt.Fprintf(os.Stderr, "principal=%s role=%s expires=%s\n",
		*principalFlag, *roleFlag, time.Now().Add(ttl).Format(time.RFC3339))
}
