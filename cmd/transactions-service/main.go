package main

import "transactions-service/internal/bootstrap/transactions"

// @title Transactions Service API
// @version 1.0
// @description CRUD-сервис финансовых транзакций (сумма и дата)
// @host localhost:8080
// @BasePath /
func main() { transactions.StartTransactionsService() }
