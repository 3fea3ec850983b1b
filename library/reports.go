package library

import (
	"fmt"
	"sort"
)

// CategoryCount is one row of the books-per-category report.
type CategoryCount struct {
	Category string
	Count    int
}

// TypeCount is one row of the loans-per-user-type report.
type TypeCount struct {
	Type  string
	Count int
}

// Reports aggregates over the three collections. It only reads; all
// mutation goes through the Catalog, Directory and Ledger.
type Reports struct {
	books    BookStore
	users    UserStore
	loans    LoanStore
	notifier Notifier
}

// NewReports returns a reporting engine over the three stores. A nil
// notifier discards notifications.
func NewReports(books BookStore, users UserStore, loans LoanStore, notifier Notifier) *Reports {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &Reports{books: books, users: users, loans: loans, notifier: notifier}
}

// CountByCategory tallies books per category. Rows appear in the order
// each category was first seen in the catalog.
func (r *Reports) CountByCategory() []CategoryCount {
	index := make(map[string]int)
	var rows []CategoryCount
	for _, b := range r.books.LoadBooks() {
		if i, ok := index[b.Category]; ok {
			rows[i].Count++
			continue
		}
		index[b.Category] = len(rows)
		rows = append(rows, CategoryCount{Category: b.Category, Count: 1})
	}

	if len(rows) == 0 {
		r.notifier.Notify(KindInfo, "Books by Category", "No books registered.")
	} else {
		r.notifier.Notify(KindInfo, "Books by Category", fmt.Sprintf("%d categor(ies) in the catalog.", len(rows)))
	}
	return rows
}

// LoansByUserType tallies active loans by the borrowing user's type. The
// join on email is best-effort: a loan whose user is gone from the
// directory is skipped silently.
func (r *Reports) LoansByUserType() []TypeCount {
	typeByEmail := make(map[string]string)
	for _, u := range r.users.LoadUsers() {
		typeByEmail[u.Email] = u.Type
	}

	index := make(map[string]int)
	var rows []TypeCount
	for _, loan := range r.loans.LoadLoans() {
		userType, ok := typeByEmail[loan.UserEmail]
		if !ok {
			continue
		}
		if i, ok := index[userType]; ok {
			rows[i].Count++
			continue
		}
		index[userType] = len(rows)
		rows = append(rows, TypeCount{Type: userType, Count: 1})
	}

	if len(rows) == 0 {
		r.notifier.Notify(KindInfo, "Loans by User Type", "No loans registered.")
	} else {
		r.notifier.Notify(KindInfo, "Loans by User Type", fmt.Sprintf("Loans across %d user type(s).", len(rows)))
	}
	return rows
}

// DefaultMostBorrowedLimit is how many titles MostBorrowed returns when
// the caller does not say otherwise.
const DefaultMostBorrowedLimit = 3

// MostBorrowed returns the limit most-borrowed books, sorted by loan
// count descending. The sort is stable, so ties keep catalog order. A
// non-positive limit falls back to DefaultMostBorrowedLimit. Records
// written before the loan counter existed load as count 0 and sort last.
func (r *Reports) MostBorrowed(limit int) []Book {
	if limit <= 0 {
		limit = DefaultMostBorrowedLimit
	}

	books := r.books.LoadBooks()
	if len(books) == 0 {
		r.notifier.Notify(KindInfo, "Most Borrowed", "No books registered.")
		return nil
	}
	for i := range books {
		if books[i].LoanCount < 0 {
			books[i].LoanCount = 0
		}
	}

	sort.SliceStable(books, func(i, j int) bool {
		return books[i].LoanCount > books[j].LoanCount
	})
	if len(books) > limit {
		books = books[:limit]
	}

	r.notifier.Notify(KindInfo, "Most Borrowed", fmt.Sprintf("Top %d most borrowed title(s).", len(books)))
	return books
}
