package library

import (
	"fmt"
	"time"
)

// Ledger owns the active-loan collection and is the only writer of a
// Book's on-loan flag and loan counter. Keeping both mutations behind
// Checkout and Return is what holds the cross-collection invariant: a
// book is flagged on loan exactly while one loan record references its
// copy identifier.
type Ledger struct {
	books    BookStore
	users    UserStore
	loans    LoanStore
	notifier Notifier

	now func() time.Time
}

// NewLedger returns a Ledger over the three stores. A nil notifier
// discards notifications.
func NewLedger(books BookStore, users UserStore, loans LoanStore, notifier Notifier) *Ledger {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &Ledger{
		books:    books,
		users:    users,
		loans:    loans,
		notifier: notifier,
		now:      time.Now,
	}
}

// Checkout lends the copy to the user: it flags the book, bumps its loan
// counter and appends a loan record. The book collection is persisted
// before the loan collection; if the second save fails the error says so,
// because the book file already reflects the checkout and there is no
// automatic rollback across files.
func (l *Ledger) Checkout(copyID int, userEmail string) (Loan, error) {
	if copyID <= 0 || userEmail == "" {
		err := fmt.Errorf("%w: a positive copy id and a user email are required", ErrInvalidInput)
		l.notifier.Notify(KindError, "Error", err.Error())
		return Loan{}, err
	}

	books := l.books.LoadBooks()
	bookIdx := -1
	for i, b := range books {
		if b.CopyID == copyID && !b.OnLoan {
			bookIdx = i
			break
		}
	}
	if bookIdx < 0 {
		err := fmt.Errorf("%w: copy %d", ErrBookUnavailable, copyID)
		l.notifier.Notify(KindError, "Error", "Book not found or already on loan.")
		return Loan{}, err
	}

	userFound := false
	for _, u := range l.users.LoadUsers() {
		if u.Email == userEmail {
			userFound = true
			break
		}
	}
	if !userFound {
		err := fmt.Errorf("%w: %s", ErrUserNotFound, userEmail)
		l.notifier.Notify(KindError, "Error", "User not found.")
		return Loan{}, err
	}

	books[bookIdx].OnLoan = true
	books[bookIdx].LoanCount++
	if err := l.books.SaveBooks(books); err != nil {
		l.notifier.Notify(KindError, "Error", fmt.Sprintf("Could not save the catalog: %v", err))
		return Loan{}, fmt.Errorf("checkout copy %d: %w", copyID, err)
	}

	loan := Loan{
		CopyID:    copyID,
		UserEmail: userEmail,
		LoanedAt:  l.now().Format(LoanTimeLayout),
	}
	if err := l.loans.SaveLoans(append(l.loans.LoadLoans(), loan)); err != nil {
		l.notifier.Notify(KindError, "Error",
			fmt.Sprintf("Could not save the loan ledger; the catalog already marks copy %d as on loan: %v", copyID, err))
		return Loan{}, fmt.Errorf("persist loan for copy %d (book collection already updated): %w", copyID, err)
	}

	l.notifier.Notify(KindSuccess, "Success", fmt.Sprintf("Copy %d loaned to %s.", copyID, userEmail))
	return loan, nil
}

// Return clears the copy's on-loan flag and removes every loan record
// that references it. An unknown copy identifier is a no-op on the book
// side rather than an error; the loan counter is never decremented.
func (l *Ledger) Return(copyID int) error {
	if copyID <= 0 {
		err := fmt.Errorf("%w: a positive copy id is required", ErrInvalidInput)
		l.notifier.Notify(KindError, "Error", err.Error())
		return err
	}

	books := l.books.LoadBooks()
	for i := range books {
		if books[i].CopyID == copyID {
			books[i].OnLoan = false
		}
	}
	if err := l.books.SaveBooks(books); err != nil {
		l.notifier.Notify(KindError, "Error", fmt.Sprintf("Could not save the catalog: %v", err))
		return fmt.Errorf("return copy %d: %w", copyID, err)
	}

	loans := l.loans.LoadLoans()
	remaining := make([]Loan, 0, len(loans))
	for _, loan := range loans {
		if loan.CopyID != copyID {
			remaining = append(remaining, loan)
		}
	}
	if err := l.loans.SaveLoans(remaining); err != nil {
		l.notifier.Notify(KindError, "Error",
			fmt.Sprintf("Could not save the loan ledger; the catalog already marks copy %d as returned: %v", copyID, err))
		return fmt.Errorf("persist return of copy %d (book collection already updated): %w", copyID, err)
	}

	l.notifier.Notify(KindSuccess, "Success", fmt.Sprintf("Copy %d returned.", copyID))
	return nil
}

// ActiveLoans returns the raw ledger in file order. An empty ledger is
// reported as an informational notification, not an error.
func (l *Ledger) ActiveLoans() []Loan {
	loans := l.loans.LoadLoans()
	if len(loans) == 0 {
		l.notifier.Notify(KindInfo, "Active Loans", "No active loans.")
	} else {
		l.notifier.Notify(KindInfo, "Active Loans", fmt.Sprintf("%d active loan(s).", len(loans)))
	}
	return loans
}
