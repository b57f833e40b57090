package dto

type TransactionInput struct {
	Cells map[string]string
}

type TransactionRow struct {
	Cells map[string]string
}

type BalancesOutput struct {
	Personal float64
	Company  float64
}
