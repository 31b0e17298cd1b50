package main

import "github.com/kendall-kelly/tailorshop-api/cmd"

// @title Tailor Shop API
// @version 1.0
// @description Back-office API for a tailoring shop: customers, orders, measurements, items, fabrics and stock.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cmd.Execute()
}
