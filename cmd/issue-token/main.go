// Command issue-token mints a bearer token signed with the configured
// secret. It stands in for the identity provider during local development
// and is used to bootstrap the first admin session.
//
// Usage:
//
//	issue-token --user=7f1c...-uuid [--role=ADMIN] [--ttl=24h]
//
// Requires AUTH_JWT_SECRET; AUTH_JWT_ISSUER defaults to "workchatseattle".
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/workchatseattle/community-backend/internal/auth"
	"github.com/workchatseattle/community-backend/internal/domain"
)

func main() {
	userFlag := flag.String("user", "", "identity id (UUID); a random one is generated when empty")
	roleFlag := flag.String("role", string(domain.RoleMember), "role claim: MEMBER or ADMIN")
	ttlFlag := flag.Duration("ttl", time.Hour, "token lifetime")
	flag.Parse()

	secret := os.Getenv("AUTH_JWT_SECRET")
	if len(secret) < 32 {
		log.Fatal("AUTH_JWT_SECRET must be set and at least 32 characters")
	}
	issuer := os.Getenv("AUTH_JWT_ISSUER")
	if issuer == "" {
		issuer = "workchatseattle"
	}

	userID := uuid.New()
	if *userFlag != "" {
		parsed, err := uuid.Parse(*userFlag)
		if err != nil {
			log.Fatalf("invalid --user: %v", err)
		}
		userID = parsed
	}

	role, err := domain.ParseRole(strings.ToUpper(*roleFlag))
	if err != nil {
		fmt.Fprintln(os.Stderr, "Usage: issue-token --user=<uuid> --role=MEMBER|ADMIN")
		os.Exit(1)
	}

	token, err := auth.NewJWTManager(secret, issuer, *ttlFlag).GenerateAccessToken(userID, role)
	if err != nil {
		log.Fatalf("generate token: %v", err)
	}

	fmt.Fprintf(os.Stderr, "user=%s role=%s expires_in=%s\n", userID, role, *ttlFlag)
	fmt.Println(token)
}
