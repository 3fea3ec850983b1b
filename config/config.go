package config

import "github.com/spf13/viper"

// Config holds the runtime settings of the tool. Everything has a
// default suitable for running out of the current directory; the
// BIBLIOTECA_* environment variables override them.
type Config struct {
	// DataDir is where the three collection files live.
	DataDir string

	BooksFile string
	UsersFile string
	LoansFile string

	// MostBorrowedLimit caps the most-borrowed report.
	MostBorrowedLimit int
}

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("biblioteca_data_dir", ".")
	v.SetDefault("biblioteca_books_file", "livros.txt")
	v.SetDefault("biblioteca_users_file", "usuarios.txt")
	v.SetDefault("biblioteca_loans_file", "emprestimos.txt")
	v.SetDefault("biblioteca_most_borrowed_limit", 3)

	return &Config{
		DataDir:           v.GetString("BIBLIOTECA_DATA_DIR"),
		BooksFile:         v.GetString("BIBLIOTECA_BOOKS_FILE"),
		UsersFile:         v.GetString("BIBLIOTECA_USERS_FILE"),
		LoansFile:         v.GetString("BIBLIOTECA_LOANS_FILE"),
		MostBorrowedLimit: v.GetInt("BIBLIOTECA_MOST_BORROWED_LIMIT"),
	}
}
