package library

import (
	"fmt"
	"os"
	"path/filepath"

	jsoniter "github.com/json-iterator/go"
)

// Narrow store views handed to each manager. Load never fails: a missing
// or unreadable collection is treated as empty, so a fresh data directory
// behaves like an empty library.
type (
	BookStore interface {
		LoadBooks() []Book
		SaveBooks(books []Book) error
	}

	UserStore interface {
		LoadUsers() []User
		SaveUsers(users []User) error
	}

	LoanStore interface {
		LoadLoans() []Loan
		SaveLoans(loans []Loan) error
	}
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// FileStore persists the three collections as pretty-printed JSON files
// in a single data directory. It implements BookStore, UserStore and
// LoanStore.
type FileStore struct {
	booksPath string
	usersPath string
	loansPath string
}

// NewFileStore creates the data directory if needed and returns a store
// over the three named collection files.
func NewFileStore(dir, booksFile, usersFile, loansFile string) (*FileStore, error) {
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
	}
	return &FileStore{
		booksPath: filepath.Join(dir, booksFile),
		usersPath: filepath.Join(dir, usersFile),
		loansPath: filepath.Join(dir, loansFile),
	}, nil
}

func (s *FileStore) LoadBooks() []Book {
	var books []Book
	loadCollection(s.booksPath, &books)
	return books
}

func (s *FileStore) SaveBooks(books []Book) error {
	return saveCollection(s.booksPath, books)
}

func (s *FileStore) LoadUsers() []User {
	var users []User
	loadCollection(s.usersPath, &users)
	return users
}

func (s *FileStore) SaveUsers(users []User) error {
	return saveCollection(s.usersPath, users)
}

func (s *FileStore) LoadLoans() []Loan {
	var loans []Loan
	loadCollection(s.loansPath, &loans)
	return loans
}

func (s *FileStore) SaveLoans(loans []Loan) error {
	return saveCollection(s.loansPath, loans)
}

// loadCollection decodes the file at path into dst. Missing and corrupt
// files both leave dst empty: the next save rewrites the whole file, so
// there is nothing useful to report to the caller.
func loadCollection(path string, dst any) {
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}
	_ = json.Unmarshal(data, dst)
}

// saveCollection overwrites the collection file with the full record
// sequence. The write goes through a temp file and a rename so a crash
// mid-write never leaves a half-written collection behind.
func saveCollection(path string, records any) error {
	data, err := json.MarshalIndent(records, "", "    ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", filepath.Base(path), err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace %s: %w", filepath.Base(path), err)
	}
	return nil
}
