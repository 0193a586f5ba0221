package services

import (
	"fmt"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	"golang.org/x/crypto/bcrypt"
)

// RegisterUser validates the registration request and creates the account
// with a bcrypt password hash. Returns an error whose message is safe to
// show to the user.
func RegisterUser(app *pocketbase.PocketBase, username, password, confirmedPassword string) error {
	if msg := ValidateRegistration(username, password, confirmedPassword); msg != "" {
		return fmt.Errorf("%s", msg)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	col, err := app.FindCollectionByNameOrId("users")
	if err != nil {
		return fmt.Errorf("users collection not found: %w", err)
	}
	record := core.NewRecord(col)
	record.Set("username", username)
	record.Set("password_hash", string(hash))
	if err := app.Save(record); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("There is already a user with the name `%s`", username)
		}
		return fmt.Errorf("save user: %w", err)
	}
	return nil
}

// AuthenticateUser checks the username and password against the stored hash
// and returns the user record id on success.
func AuthenticateUser(app *pocketbase.PocketBase, username, password string) (string, error) {
	col, err := app.FindCollectionByNameOrId("users")
	if err != nil {
		return "", fmt.Errorf("users collection not found: %w", err)
	}
	records, err := app.FindRecordsByFilter(col,
		"username = {:username}",
		"", 1, 0,
		map[string]any{"username": username})
	if err != nil || len(records) == 0 {
		return "", fmt.Errorf("User not found.")
	}
	hash := records[0].GetString("password_hash")
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
		return "", fmt.Errorf("User not found.")
	}
	return records[0].Id, nil
}

// UpdatePassword verifies the old password, validates the new one, and
// stores the new bcrypt hash.
func UpdatePassword(app *pocketbase.PocketBase, userID, oldPassword, newPassword, confirmNewPassword string) error {
	record, err := app.FindRecordById("users", userID)
	if err != nil {
		return fmt.Errorf("User not found.")
	}

	hash := record.GetString("password_hash")
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(oldPassword)) != nil {
		return fmt.Errorf("Incorrect old password")
	}

	if msg := ValidatePasswordUpdate(newPassword, confirmNewPassword); msg != "" {
		return fmt.Errorf("%s", msg)
	}

	newHash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	record.Set("password_hash", string(newHash))
	if err := app.Save(record); err != nil {
		return fmt.Errorf("save user: %w", err)
	}
	return nil
}
