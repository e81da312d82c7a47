package store

import (
	"errors"
	"fmt"
	"strings"

	"github.com/asaskevich/govalidator"
	"github.com/google/uuid"
	"github.com/sakethrapaka/remind/internal/model"
)

const userKey = "user"

var ErrNotSignedIn = errors.New("not signed in")

// SignIn records the local user. This is a convenience identity for
// greetings and per-user data, not authentication; there are no credentials
// by design.
func SignIn(storage Storage, email, name, phone string) (model.User, error) {
	if !govalidator.IsEmail(email) {
		return model.User{}, fmt.Errorf("invalid email address: %s", email)
	}
	if name == "" {
		name = strings.Split(email, "@")[0]
	}

	user := model.User{
		ID:    uuid.NewString(),
		Email: email,
		Name:  name,
		Phone: phone,
	}
	if err := storage.Save(userKey, user); err != nil {
		return model.User{}, fmt.Errorf("❌ Failed to save user: %w", err)
	}
	return user, nil
}

// CurrentUser loads the signed-in user record.
func CurrentUser(storage Storage) (model.User, error) {
	var user model.User
	if err := storage.Load(userKey, &user); err != nil {
		return model.User{}, fmt.Errorf("❌ Failed to load user: %w", err)
	}
	if user.Email == "" {
		return model.User{}, ErrNotSignedIn
	}
	return user, nil
}

// SignOut removes the user record. Tasks and settings stay put.
func SignOut(storage Storage) error {
	return storage.Remove(userKey)
}
