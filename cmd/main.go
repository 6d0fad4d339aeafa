package main

import (
	"go-finance-api/app"
)

// @title           Go-Finance API
// @version         1.0
// @description     Personal finance API: accounts, transactions, budgets and dashboards.

// @contact.name   API Support
// @contact.email  support@example.com

// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	app.Run()
}
