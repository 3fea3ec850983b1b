package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"biblioteca/config"
	"biblioteca/library"
)

func main() {
	cfg := config.NewConfig()

	// Start from a clean data directory so the seed is reproducible.
	fmt.Println("Cleaning up existing collection files...")
	for _, file := range []string{cfg.BooksFile, cfg.UsersFile, cfg.LoansFile} {
		path := filepath.Join(cfg.DataDir, file)
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			fmt.Printf("Warning: Could not remove %s: %v\n", path, err)
		}
	}
	fmt.Println("Cleanup complete.")

	store, err := library.NewFileStore(cfg.DataDir, cfg.BooksFile, cfg.UsersFile, cfg.LoansFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening data directory: %v\n", err)
		os.Exit(1)
	}

	catalog := library.NewCatalog(store, library.NopNotifier{})
	directory := library.NewDirectory(store, library.NopNotifier{})

	sampleBooks := []struct {
		title, author, published, isbn, category string
	}{
		{"IT: A Coisa", "Stephen King", "1986", "9788581050904", "Terror"},
		{"O Iluminado", "Stephen King", "1977", "9788581050416", "Terror"},
		{"Dom Casmurro", "Machado de Assis", "1899", "9788535914061", "Romance"},
		{"Memórias Póstumas de Brás Cubas", "Machado de Assis", "1881", "9788535910663", "Romance"},
		{"O Hobbit", "J.R.R. Tolkien", "1937", "9788595084742", "Fantasia"},
		{"A Sociedade do Anel", "J.R.R. Tolkien", "1954", "9788533613379", "Fantasia"},
		{"Capitães da Areia", "Jorge Amado", "1937", "9788535911695", "Romance"},
		{"1984", "George Orwell", "1949", "9788535914849", "Ficção Científica"},
	}

	sampleUsers := []struct {
		name, email, userType string
	}{
		{"Ana Souza", "ana@exemplo.com", "aluno"},
		{"Bruno Lima", "bruno@exemplo.com", "aluno"},
		{"Carla Mendes", "carla@exemplo.com", "professor"},
	}

	fmt.Println("Seeding catalog...")
	booksOK := 0
	for _, b := range sampleBooks {
		fmt.Printf("Registering: %s by %s... ", b.title, b.author)
		book, err := catalog.Register(b.title, b.author, b.published, b.isbn, b.category)
		if err != nil {
			fmt.Printf("ERROR - %v\n", err)
			continue
		}
		fmt.Printf("SUCCESS (copy id: %d)\n", book.CopyID)
		booksOK++
	}

	fmt.Println("Seeding user directory...")
	usersOK := 0
	for _, u := range sampleUsers {
		fmt.Printf("Registering: %s <%s>... ", u.name, u.email)
		if _, err := directory.Register(u.name, u.email, u.userType); err != nil {
			fmt.Printf("ERROR - %v\n", err)
			continue
		}
		fmt.Println("SUCCESS")
		usersOK++
	}

	fmt.Printf("\nSeed complete! %d book(s), %d user(s).\n", booksOK, usersOK)

	if booksOK > 0 {
		fmt.Println("\nSeeded catalog:")
		fmt.Printf("%-5s %-40s %-25s %-15s\n", "ID", "Title", "Author", "Category")
		fmt.Println(strings.Repeat("-", 90))
		for _, book := range catalog.Books() {
			fmt.Printf("%-5d %-40s %-25s %-15s\n",
				book.CopyID,
				truncateString(book.Title, 40),
				truncateString(book.Author, 25),
				truncateString(book.Category, 15))
		}
	}
}

func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
