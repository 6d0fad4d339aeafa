// Command devtoken prints a signed bearer token for local testing.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"go-finance-api/config"
	"go-finance-api/service"
)

func main() {
	subject := flag.String("sub", "dev_user", "token subject (identity provider user id)")
	name := flag.String("name", "Dev User", "display name claim")
	email := flag.String("email", "dev@example.com", "email claim")
	ttl := flag.Duration("ttl", time.Hour, "token lifetime")
	flag.Parse()

	if err := config.LoadConfig("."); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	auth := service.NewAuthService(config.AppConfig.JWT.SecretKey, config.AppConfig.JWT.Issuer)
	token, err := auth.GenerateToken(*subject, *name, *email, *ttl)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println(token)
}
