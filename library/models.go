package library

// Book represents one physical copy in the catalog. The JSON field names
// match the legacy data files, which predate this program, so existing
// collections load unchanged.
type Book struct {
	Title     string `json:"titulo"`
	Author    string `json:"autor"`
	Published string `json:"publicacao"`
	ISBN      string `json:"isbn"`
	Category  string `json:"categoria"`
	CopyID    int    `json:"id_exemplar"`
	OnLoan    bool   `json:"emprestado"`
	LoanCount int    `json:"emprestimos_count"`
}

// User represents a registered library user. Email is the natural key.
type User struct {
	Name  string `json:"nome"`
	Email string `json:"email"`
	Type  string `json:"tipo"`
}

// Loan is one active checkout. Returning the copy removes the record;
// no loan history is kept.
type Loan struct {
	CopyID    int    `json:"id_exemplar"`
	UserEmail string `json:"usuario_email"`
	LoanedAt  string `json:"data_emprestimo"`
}

// LoanTimeLayout is the timestamp format stored in loan records.
const LoanTimeLayout = "2006-01-02 15:04:05"
