package domain

import (
	"strconv"
	"strings"
)

// Columns fixes the ledger column order. Transactions are keyed by
// these headers so a saved session replays into the same layout.
var Columns = []string{
	"Date",
	"Type",
	"Item",
	"Category",
	"Qty",
	"Unit Price",
	"Subtotal",
	"Discount",
	"Total",
	"Personal Income",
	"Company Income",
	"Personal Expense",
	"Company Expense",
	"Account",
	"Location",
	"Company Balance",
	"Personal Balance",
	"Notes",
}

const (
	DefaultStartingPersonal = 10000
	DefaultStartingCompany  = 90000
)

// Transaction is one ledger row, header to cell value. Cells stay
// strings so free-text entries survive untouched.
type Transaction map[string]string

// Book is the ledger's full live state.
type Book struct {
	Transactions     []Transaction
	StartingPersonal float64
	StartingCompany  float64
}

func NewBook() Book {
	return Book{
		Transactions:     []Transaction{},
		StartingPersonal: DefaultStartingPersonal,
		StartingCompany:  DefaultStartingCompany,
	}
}

// Balances folds income and expense cells over the starting balances.
// Cells that do not parse as amounts count as zero.
func (b Book) Balances() (personal, company float64) {
	personal = b.StartingPersonal
	company = b.StartingCompany
	for _, tx := range b.Transactions {
		personal += amount(tx["Personal Income"]) - amount(tx["Personal Expense"])
		company += amount(tx["Company Income"]) - amount(tx["Company Expense"])
	}
	return personal, company
}

func amount(cell string) float64 {
	s := strings.TrimSpace(cell)
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
