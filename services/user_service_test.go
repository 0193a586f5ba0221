package services

import (
	"testing"

	"renocalc/testhelpers"
)

func TestRegisterUser(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	if err := RegisterUser(app, "renovator1", "Str0ng@Pass", "Str0ng@Pass"); err != nil {
		t.Fatalf("RegisterUser() error = %v", err)
	}

	id, err := AuthenticateUser(app, "renovator1", "Str0ng@Pass")
	if err != nil {
		t.Fatalf("AuthenticateUser() error = %v", err)
	}
	if id == "" {
		t.Error("authenticated user id is empty")
	}
}

func TestRegisterUser_DuplicateUsername(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	if err := RegisterUser(app, "renovator1", "Str0ng@Pass", "Str0ng@Pass"); err != nil {
		t.Fatalf("RegisterUser() error = %v", err)
	}

	err := RegisterUser(app, "renovator1", "Other@Pass1", "Other@Pass1")
	if err == nil {
		t.Fatal("expected duplicate username to fail")
	}
	if err.Error() != "There is already a user with the name `renovator1`" {
		t.Errorf("error = %q", err.Error())
	}
}

func TestRegisterUser_RejectsInvalidInput(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	if err := RegisterUser(app, "renovator1", "Str0ng@Pass", "Other@Pass1"); err == nil ||
		err.Error() != passwordMismatchMsg {
		t.Errorf("mismatch error = %v", err)
	}
	if err := RegisterUser(app, "ab", "Str0ng@Pass", "Str0ng@Pass"); err == nil ||
		err.Error() != invalidUsernameMsg {
		t.Errorf("username error = %v", err)
	}
}

func TestAuthenticateUser_WrongPassword(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	if err := RegisterUser(app, "renovator1", "Str0ng@Pass", "Str0ng@Pass"); err != nil {
		t.Fatalf("RegisterUser() error = %v", err)
	}

	if _, err := AuthenticateUser(app, "renovator1", "Wr0ng@Pass"); err == nil {
		t.Error("expected wrong password to fail")
	}
	if _, err := AuthenticateUser(app, "nobody99", "Str0ng@Pass"); err == nil {
		t.Error("expected unknown user to fail")
	}
}

func TestUpdatePassword(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	if err := RegisterUser(app, "renovator1", "Str0ng@Pass", "Str0ng@Pass"); err != nil {
		t.Fatalf("RegisterUser() error = %v", err)
	}
	id, err := AuthenticateUser(app, "renovator1", "Str0ng@Pass")
	if err != nil {
		t.Fatalf("AuthenticateUser() error = %v", err)
	}

	if err := UpdatePassword(app, id, "Str0ng@Pass", "N3w@Secret", "N3w@Secret"); err != nil {
		t.Fatalf("UpdatePassword() error = %v", err)
	}

	if _, err := AuthenticateUser(app, "renovator1", "N3w@Secret"); err != nil {
		t.Errorf("new password rejected: %v", err)
	}
	if _, err := AuthenticateUser(app, "renovator1", "Str0ng@Pass"); err == nil {
		t.Error("old password still accepted")
	}
}

func TestUpdatePassword_Errors(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	if err := RegisterUser(app, "renovator1", "Str0ng@Pass", "Str0ng@Pass"); err != nil {
		t.Fatalf("RegisterUser() error = %v", err)
	}
	id, err := AuthenticateUser(app, "renovator1", "Str0ng@Pass")
	if err != nil {
		t.Fatalf("AuthenticateUser() error = %v", err)
	}

	if err := UpdatePassword(app, id, "Wr0ng@Pass", "N3w@Secret", "N3w@Secret"); err == nil ||
		err.Error() != "Incorrect old password" {
		t.Errorf("wrong old password error = %v", err)
	}
	if err := UpdatePassword(app, id, "Str0ng@Pass", "N3w@Secret", "Different@1"); err == nil ||
		err.Error() != passwordMismatchMsg {
		t.Errorf("mismatch error = %v", err)
	}
}
