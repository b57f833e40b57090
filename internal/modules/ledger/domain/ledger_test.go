package domain

import "testing"

func TestBalances(t *testing.T) {
	t.Parallel()

	book := NewBook()
	book.Transactions = []Transaction{
		{"Type": "sale", "Personal Income": "$1,200.50", "Company Income": "300"},
		{"Type": "purchase", "Personal Expense": "200", "Company Expense": "1000"},
		{"Type": "note", "Personal Income": "n/a"},
	}
	personal, company := book.Balances()
	if personal != 10000+1200.50-200 {
		t.Fatalf("personal balance = %v", personal)
	}
	if company != 90000+300-1000 {
		t.Fatalf("company balance = %v", company)
	}
}

func TestNewBookDefaults(t *testing.T) {
	t.Parallel()

	book := NewBook()
	if book.StartingPersonal != 10000 || book.StartingCompany != 90000 {
		t.Fatalf("unexpected defaults %+v", book)
	}
	if book.Transactions == nil || len(book.Transactions) != 0 {
		t.Fatalf("expected empty transaction list, got %+v", book.Transactions)
	}
}
