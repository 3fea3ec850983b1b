package main

import (
	"fmt"
	"os"
	"strings"

	"biblioteca/config"
	"biblioteca/library"

	"github.com/spf13/cobra"
)

func main() {
	cfg := config.NewConfig()

	store, err := library.NewFileStore(cfg.DataDir, cfg.BooksFile, cfg.UsersFile, cfg.LoansFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening data directory: %v\n", err)
		os.Exit(1)
	}

	notifier := consoleNotifier{}
	app := &application{
		cfg:       cfg,
		catalog:   library.NewCatalog(store, notifier),
		directory: library.NewDirectory(store, notifier),
		ledger:    library.NewLedger(store, store, store, notifier),
		reports:   library.NewReports(store, store, store, notifier),
	}

	root := &cobra.Command{
		Use:   "biblioteca",
		Short: "Library record keeper: books, users, loans and reports",
		// The notifier already reported domain failures; cobra only needs
		// to set the exit code.
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		app.bookCommand(),
		app.userCommand(),
		app.loanCommand(),
		app.reportCommand(),
	)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// application bundles the managers so the command constructors stay
// short.
type application struct {
	cfg       *config.Config
	catalog   *library.Catalog
	directory *library.Directory
	ledger    *library.Ledger
	reports   *library.Reports
}

// consoleNotifier renders the notifications that the desktop version of
// this tool showed as dialog boxes: one line per operation, warnings and
// errors on stderr.
type consoleNotifier struct{}

func (consoleNotifier) Notify(kind library.Kind, title, message string) {
	line := fmt.Sprintf("[%s] %s: %s", strings.ToUpper(string(kind)), title, message)
	if kind == library.KindError || kind == library.KindWarning {
		fmt.Fprintln(os.Stderr, line)
		return
	}
	fmt.Println(line)
}
