package service

import (
	"fmt"

	"fmtrack/internal/modules/ledger/domain"
)

// LedgerService owns the live transaction book. Operations run on the
// caller's goroutine; the application drives everything from one loop.
type LedgerService struct {
	book domain.Book
}

func NewLedgerService() *LedgerService {
	return &LedgerService{book: domain.NewBook()}
}

func (s *LedgerService) Add(tx domain.Transaction) {
	s.book.Transactions = append(s.book.Transactions, tx)
}

func (s *LedgerService) Remove(index int) error {
	if index < 0 || index >= len(s.book.Transactions) {
		return fmt.Errorf("transaction index %d out of range", index)
	}
	s.book.Transactions = append(s.book.Transactions[:index], s.book.Transactions[index+1:]...)
	return nil
}

func (s *LedgerService) Transactions() []domain.Transaction {
	out := make([]domain.Transaction, len(s.book.Transactions))
	copy(out, s.book.Transactions)
	return out
}

func (s *LedgerService) Balances() (personal, company float64) {
	return s.book.Balances()
}

func (s *LedgerService) Snapshot() domain.Book {
	snap := s.book
	snap.Transactions = make([]domain.Transaction, len(s.book.Transactions))
	copy(snap.Transactions, s.book.Transactions)
	return snap
}

func (s *LedgerService) Apply(book domain.Book) {
	if book.Transactions == nil {
		book.Transactions = []domain.Transaction{}
	}
	s.book = book
}

func (s *LedgerService) Clear() {
	s.book = domain.NewBook()
}
