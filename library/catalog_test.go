package library

import (
	"errors"
	"testing"
)

func TestNextCopyIDSequence(t *testing.T) {
	store := tempStore(t)
	catalog := NewCatalog(store, nil)

	if got := catalog.NextCopyID(); got != 1 {
		t.Fatalf("empty catalog should start at 1, got %d", got)
	}

	var seen []int
	for i := 0; i < 4; i++ {
		book, err := catalog.Register("Dom Casmurro", "Machado de Assis", "1899", "10", "Romance")
		if err != nil {
			t.Fatalf("register: %v", err)
		}
		seen = append(seen, book.CopyID)
	}
	for i := 1; i < len(seen); i++ {
		if seen[i] <= seen[i-1] {
			t.Fatalf("copy ids not strictly increasing: %v", seen)
		}
	}
}

func TestNextCopyIDSkipsGaps(t *testing.T) {
	store := tempStore(t)
	// A collection edited by hand may contain arbitrary identifiers.
	if err := store.SaveBooks([]Book{{Title: "X", CopyID: 41}, {Title: "Y", CopyID: 7}}); err != nil {
		t.Fatalf("save books: %v", err)
	}

	catalog := NewCatalog(store, nil)
	if got := catalog.NextCopyID(); got != 42 {
		t.Fatalf("want 42, got %d", got)
	}
}

func TestRegisterRequiresAllFields(t *testing.T) {
	store := tempStore(t)
	rec := &recorder{}
	catalog := NewCatalog(store, rec)

	_, err := catalog.Register("", "Stephen King", "1986", "10", "Terror")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("want ErrInvalidInput, got %v", err)
	}
	if rec.last(t) != KindError {
		t.Fatalf("want error notification, got %v", rec.kinds)
	}
	if len(catalog.Books()) != 0 {
		t.Fatalf("failed registration must not touch the catalog")
	}
}

func TestRegisterAllowsDuplicateMetadata(t *testing.T) {
	store := tempStore(t)
	catalog := NewCatalog(store, nil)

	// Two physical copies of the same edition.
	first, err := catalog.Register("O Hobbit", "J.R.R. Tolkien", "1937", "20", "Fantasia")
	if err != nil {
		t.Fatalf("first register: %v", err)
	}
	second, err := catalog.Register("O Hobbit", "J.R.R. Tolkien", "1937", "20", "Fantasia")
	if err != nil {
		t.Fatalf("second register: %v", err)
	}
	if first.CopyID == second.CopyID {
		t.Fatalf("copies must get distinct identifiers")
	}
}

func TestSearchFuzzyTitle(t *testing.T) {
	store := tempStore(t)
	catalog := NewCatalog(store, nil)
	if _, err := catalog.Register("Jogos Mortais", "James Wan", "2004", "30", "Terror"); err != nil {
		t.Fatalf("register: %v", err)
	}

	results, err := catalog.Search(FieldTitle, "jogo mortais")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(results) != 1 || results[0].Title != "Jogos Mortais" {
		t.Fatalf("misspelled title should match, got %+v", results)
	}

	results, err = catalog.Search(FieldTitle, "xyz")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(results) != 0 {
		t.Fatalf("unrelated query should not match, got %+v", results)
	}
}

func TestSearchSubstringFields(t *testing.T) {
	store := tempStore(t)
	catalog := NewCatalog(store, nil)
	if _, err := catalog.Register("IT: A Coisa", "Stephen King", "1986", "40", "Terror"); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := catalog.Register("Dom Casmurro", "Machado de Assis", "1899", "41", "Romance"); err != nil {
		t.Fatalf("register: %v", err)
	}

	byAuthor, err := catalog.Search(FieldAuthor, "king")
	if err != nil {
		t.Fatalf("search author: %v", err)
	}
	if len(byAuthor) != 1 || byAuthor[0].Author != "Stephen King" {
		t.Fatalf("author substring search failed: %+v", byAuthor)
	}

	byCategory, err := catalog.Search(FieldCategory, "ROM")
	if err != nil {
		t.Fatalf("search category: %v", err)
	}
	if len(byCategory) != 1 || byCategory[0].Category != "Romance" {
		t.Fatalf("category substring search failed: %+v", byCategory)
	}
}

func TestSearchEmptyValue(t *testing.T) {
	catalog := NewCatalog(tempStore(t), nil)
	if _, err := catalog.Search(FieldTitle, "  "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("want ErrInvalidInput, got %v", err)
	}
}

func TestSearchEmptyCatalog(t *testing.T) {
	rec := &recorder{}
	catalog := NewCatalog(tempStore(t), rec)

	results, err := catalog.Search(FieldTitle, "anything")
	if err != nil {
		t.Fatalf("empty catalog search should not error: %v", err)
	}
	if len(results) != 0 {
		t.Fatalf("want no results, got %+v", results)
	}
	if rec.last(t) != KindInfo {
		t.Fatalf("empty result should notify info, got %v", rec.kinds)
	}
}
