package library

import (
	"fmt"
	"strings"
)

// SearchField selects which book attribute a search matches against.
type SearchField string

const (
	FieldTitle    SearchField = "title"
	FieldAuthor   SearchField = "author"
	FieldCategory SearchField = "category"
	FieldISBN     SearchField = "isbn"
)

// titleSimilarityThreshold is the minimum Ratcliff/Obershelp ratio for a
// fuzzy title match. Titles are typed by hand, so the search tolerates
// misspellings; the other fields use plain substring matching.
const titleSimilarityThreshold = 0.3

// Catalog owns the book collection: it assigns copy identifiers and
// registers, lists and searches books. The on-loan flag and the loan
// counter on a Book belong to the Ledger, never to the Catalog.
type Catalog struct {
	store    BookStore
	notifier Notifier
}

// NewCatalog returns a Catalog over the given book store. A nil notifier
// discards notifications.
func NewCatalog(store BookStore, notifier Notifier) *Catalog {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &Catalog{store: store, notifier: notifier}
}

// NextCopyID returns max(copy id)+1, or 1 for an empty catalog. It scans
// the store on every call rather than caching a counter, so it stays
// correct if another process edited the collection in between.
func (c *Catalog) NextCopyID() int {
	maxID := 0
	for _, b := range c.store.LoadBooks() {
		if b.CopyID > maxID {
			maxID = b.CopyID
		}
	}
	return maxID + 1
}

// Register adds a new copy to the catalog and persists it. All metadata
// fields are required. Identical metadata under a fresh copy identifier
// is allowed: that is how additional physical copies are modeled.
func (c *Catalog) Register(title, author, published, isbn, category string) (Book, error) {
	required := []struct{ name, value string }{
		{"title", title},
		{"author", author},
		{"published", published},
		{"isbn", isbn},
		{"category", category},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			err := fmt.Errorf("%w: the %s field is required", ErrInvalidInput, f.name)
			c.notifier.Notify(KindError, "Error", err.Error())
			return Book{}, err
		}
	}

	book := Book{
		Title:     strings.TrimSpace(title),
		Author:    strings.TrimSpace(author),
		Published: strings.TrimSpace(published),
		ISBN:      strings.TrimSpace(isbn),
		Category:  strings.TrimSpace(category),
		CopyID:    c.NextCopyID(),
	}

	books := append(c.store.LoadBooks(), book)
	if err := c.store.SaveBooks(books); err != nil {
		c.notifier.Notify(KindError, "Error", fmt.Sprintf("Could not save the catalog: %v", err))
		return Book{}, fmt.Errorf("register book: %w", err)
	}

	c.notifier.Notify(KindSuccess, "Success", fmt.Sprintf("Book %q registered with copy id %d.", book.Title, book.CopyID))
	return book, nil
}

// Books returns the full catalog in file order.
func (c *Catalog) Books() []Book {
	return c.store.LoadBooks()
}

// Search returns the books matching value on the given field. Title
// searches are fuzzy (similarity ratio >= 0.3); author, category and
// isbn searches are case-insensitive substring matches. An empty catalog
// simply yields no results.
func (c *Catalog) Search(field SearchField, value string) ([]Book, error) {
	if strings.TrimSpace(value) == "" {
		err := fmt.Errorf("%w: search value is required", ErrInvalidInput)
		c.notifier.Notify(KindError, "Error", err.Error())
		return nil, err
	}
	switch field {
	case FieldTitle, FieldAuthor, FieldCategory, FieldISBN:
	default:
		err := fmt.Errorf("%w: unknown search field %q", ErrInvalidInput, field)
		c.notifier.Notify(KindError, "Error", err.Error())
		return nil, err
	}

	var results []Book
	for _, b := range c.store.LoadBooks() {
		if matchBook(b, field, value) {
			results = append(results, b)
		}
	}

	if len(results) == 0 {
		c.notifier.Notify(KindInfo, "Search Results", "No books matched the search.")
	} else {
		c.notifier.Notify(KindInfo, "Search Results", fmt.Sprintf("%d book(s) matched the search.", len(results)))
	}
	return results, nil
}

func matchBook(b Book, field SearchField, value string) bool {
	switch field {
	case FieldTitle:
		return similarityRatio(value, b.Title) >= titleSimilarityThreshold
	case FieldAuthor:
		return containsFold(b.Author, value)
	case FieldCategory:
		return containsFold(b.Category, value)
	case FieldISBN:
		return containsFold(b.ISBN, value)
	default:
		return false
	}
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
