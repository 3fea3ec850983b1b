package main

import (
	"fmt"
	"strconv"
	"strings"

	"biblioteca/library"

	"github.com/spf13/cobra"
)

// ------------------ book ------------------

func (app *application) bookCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "book",
		Short: "Register, list and search books",
	}

	var title, author, published, isbn, category string
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Register a new book copy",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := app.catalog.Register(title, author, published, isbn, category)
			return err
		},
	}
	addCmd.Flags().StringVar(&title, "title", "", "book title")
	addCmd.Flags().StringVar(&author, "author", "", "book author")
	addCmd.Flags().StringVar(&published, "published", "", "publication date")
	addCmd.Flags().StringVar(&isbn, "isbn", "", "ISBN")
	addCmd.Flags().StringVar(&category, "category", "", "category")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List the full catalog",
		Run: func(cmd *cobra.Command, args []string) {
			printBooks(app.catalog.Books())
		},
	}

	var field string
	searchCmd := &cobra.Command{
		Use:   "search <value>",
		Short: "Search books (fuzzy on title, substring on other fields)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := app.catalog.Search(library.SearchField(field), strings.Join(args, " "))
			if err != nil {
				return err
			}
			printBooks(results)
			return nil
		},
	}
	searchCmd.Flags().StringVar(&field, "field", string(library.FieldTitle), "field to match: title, author, category or isbn")

	cmd.AddCommand(addCmd, listCmd, searchCmd)
	return cmd
}

func printBooks(books []library.Book) {
	if len(books) == 0 {
		return
	}
	fmt.Printf("%-5s %-30s %-25s %-12s %-15s %-15s %-8s %s\n",
		"ID", "Title", "Author", "Published", "ISBN", "Category", "On Loan", "Loans")
	fmt.Println(strings.Repeat("-", 120))
	for _, b := range books {
		onLoan := "No"
		if b.OnLoan {
			onLoan = "Yes"
		}
		fmt.Printf("%-5d %-30s %-25s %-12s %-15s %-15s %-8s %d\n",
			b.CopyID,
			truncateString(b.Title, 30),
			truncateString(b.Author, 25),
			truncateString(b.Published, 12),
			truncateString(b.ISBN, 15),
			truncateString(b.Category, 15),
			onLoan,
			b.LoanCount)
	}
}

// ------------------ user ------------------

func (app *application) userCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Register and list users",
	}

	var name, email, userType string
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Register a new user",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := app.directory.Register(name, email, userType)
			return err
		},
	}
	addCmd.Flags().StringVar(&name, "name", "", "user name")
	addCmd.Flags().StringVar(&email, "email", "", "user email (unique)")
	addCmd.Flags().StringVar(&userType, "type", "", "user type, e.g. student or staff")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List the user directory",
		Run: func(cmd *cobra.Command, args []string) {
			users := app.directory.Users()
			if len(users) == 0 {
				fmt.Println("No users registered.")
				return
			}
			fmt.Printf("%-30s %-30s %-15s\n", "Name", "Email", "Type")
			fmt.Println(strings.Repeat("-", 75))
			for _, u := range users {
				fmt.Printf("%-30s %-30s %-15s\n",
					truncateString(u.Name, 30), truncateString(u.Email, 30), truncateString(u.Type, 15))
			}
		},
	}

	cmd.AddCommand(addCmd, listCmd)
	return cmd
}

// ------------------ loan ------------------

func (app *application) loanCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "loan",
		Short: "Check books out and back in",
	}

	checkoutCmd := &cobra.Command{
		Use:   "checkout <copy-id> <user-email>",
		Short: "Check a copy out to a user",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			copyID, err := strconv.Atoi(args[0])
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Invalid copy id: %s\n", args[0])
				return err
			}
			_, err = app.ledger.Checkout(copyID, args[1])
			return err
		},
	}

	returnCmd := &cobra.Command{
		Use:   "return <copy-id>",
		Short: "Return a copy",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			copyID, err := strconv.Atoi(args[0])
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Invalid copy id: %s\n", args[0])
				return err
			}
			return app.ledger.Return(copyID)
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List active loans",
		Run: func(cmd *cobra.Command, args []string) {
			loans := app.ledger.ActiveLoans()
			if len(loans) == 0 {
				return
			}
			fmt.Printf("%-8s %-30s %s\n", "Copy", "User", "Loaned At")
			fmt.Println(strings.Repeat("-", 60))
			for _, loan := range loans {
				fmt.Printf("%-8d %-30s %s\n", loan.CopyID, truncateString(loan.UserEmail, 30), loan.LoanedAt)
			}
		},
	}

	cmd.AddCommand(checkoutCmd, returnCmd, listCmd)
	return cmd
}

// ------------------ report ------------------

func (app *application) reportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Tabular reports over the collections",
	}

	categoriesCmd := &cobra.Command{
		Use:   "categories",
		Short: "Book count per category",
		Run: func(cmd *cobra.Command, args []string) {
			for _, row := range app.reports.CountByCategory() {
				fmt.Printf("%-20s %d\n", truncateString(row.Category, 20), row.Count)
			}
		},
	}

	userTypesCmd := &cobra.Command{
		Use:   "user-types",
		Short: "Active loan count per user type",
		Run: func(cmd *cobra.Command, args []string) {
			for _, row := range app.reports.LoansByUserType() {
				fmt.Printf("%-20s %d\n", truncateString(row.Type, 20), row.Count)
			}
		},
	}

	var limit int
	topCmd := &cobra.Command{
		Use:   "top",
		Short: "Most borrowed titles",
		Run: func(cmd *cobra.Command, args []string) {
			for _, b := range app.reports.MostBorrowed(limit) {
				fmt.Printf("%-40s %d loan(s)\n", truncateString(b.Title, 40), b.LoanCount)
			}
		},
	}
	topCmd.Flags().IntVar(&limit, "limit", app.cfg.MostBorrowedLimit, "how many titles to list")

	cmd.AddCommand(categoriesCmd, userTypesCmd, topCmd)
	return cmd
}

func truncateString(s string, maxLength int) string {
	if len(s) <= maxLength {
		return s
	}
	if maxLength <= 3 {
		return s[:maxLength]
	}
	return s[:maxLength-3] + "..."
}
