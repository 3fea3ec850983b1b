package library

import (
	"errors"
	"testing"
)

func TestRegisterUser(t *testing.T) {
	store := tempStore(t)
	rec := &recorder{}
	directory := NewDirectory(store, rec)

	user, err := directory.Register("Ana Souza", "ana@x.com", "aluno")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.Email != "ana@x.com" || user.Type != "aluno" {
		t.Fatalf("unexpected user: %+v", user)
	}
	if rec.last(t) != KindSuccess {
		t.Fatalf("want success notification, got %v", rec.kinds)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	store := tempStore(t)
	rec := &recorder{}
	directory := NewDirectory(store, rec)

	if _, err := directory.Register("Ana Souza", "ana@x.com", "aluno"); err != nil {
		t.Fatalf("first register: %v", err)
	}
	_, err := directory.Register("Ana Lima", "ana@x.com", "professor")
	if !errors.Is(err, ErrDuplicateEmail) {
		t.Fatalf("want ErrDuplicateEmail, got %v", err)
	}
	if rec.last(t) != KindWarning {
		t.Fatalf("duplicate email should notify warning, got %v", rec.kinds)
	}
	if got := len(directory.Users()); got != 1 {
		t.Fatalf("failed registration must not grow the directory, got %d users", got)
	}
}

// The uniqueness check is case-sensitive, matching the data files written
// by earlier versions of the tool.
func TestRegisterEmailCaseSensitive(t *testing.T) {
	directory := NewDirectory(tempStore(t), nil)

	if _, err := directory.Register("Ana", "ana@x.com", "aluno"); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if _, err := directory.Register("Ana", "ANA@x.com", "aluno"); err != nil {
		t.Fatalf("differently-cased email should register: %v", err)
	}
	if got := len(directory.Users()); got != 2 {
		t.Fatalf("want 2 users, got %d", got)
	}
}

func TestRegisterUserRequiresAllFields(t *testing.T) {
	directory := NewDirectory(tempStore(t), nil)
	if _, err := directory.Register("Ana", "", "aluno"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("want ErrInvalidInput, got %v", err)
	}
}
