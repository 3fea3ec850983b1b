package library

import (
	"fmt"
	"strings"
)

// Directory owns the user collection. Users are registered once and
// never mutated or removed.
type Directory struct {
	store    UserStore
	notifier Notifier
}

// NewDirectory returns a Directory over the given user store. A nil
// notifier discards notifications.
func NewDirectory(store UserStore, notifier Notifier) *Directory {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &Directory{store: store, notifier: notifier}
}

// Register adds a user and persists the directory. The email is the
// natural key: registration fails if any existing user carries the same
// email. The comparison is case-sensitive, matching the data files
// written by earlier versions of this tool.
func (d *Directory) Register(name, email, userType string) (User, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	userType = strings.TrimSpace(userType)
	if name == "" || email == "" || userType == "" {
		err := fmt.Errorf("%w: name, email and type are all required", ErrInvalidInput)
		d.notifier.Notify(KindError, "Error", err.Error())
		return User{}, err
	}

	users := d.store.LoadUsers()
	for _, u := range users {
		if u.Email == email {
			err := fmt.Errorf("%w: %s", ErrDuplicateEmail, email)
			d.notifier.Notify(KindWarning, "Error", "A user is already registered with this email.")
			return User{}, err
		}
	}

	user := User{Name: name, Email: email, Type: userType}
	if err := d.store.SaveUsers(append(users, user)); err != nil {
		d.notifier.Notify(KindError, "Error", fmt.Sprintf("Could not save the user directory: %v", err))
		return User{}, fmt.Errorf("register user: %w", err)
	}

	d.notifier.Notify(KindSuccess, "Success", fmt.Sprintf("User %s registered.", email))
	return user, nil
}

// Users returns the full directory in file order.
func (d *Directory) Users() []User {
	return d.store.LoadUsers()
}
