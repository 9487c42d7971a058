package services

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"motoyard/internal/models"
)

func validUser() *models.User {
	return &models.User{
		Name:     "Ana Souza",
		Email:    "ana@example.com",
		Password: "s3cret",
		Phone:    "+55 11 99999-0000",
	}
}

func TestUserCreateHashesPassword(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)

	created, err := svc.Create(context.Background(), validUser())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	stored := repo.users[created.ID]
	if stored.Password == "s3cret" {
		t.Fatalf("password stored in the clear")
	}
	if bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("s3cret")) != nil {
		t.Fatalf("stored hash does not verify against the original password")
	}
}

func TestUserCreateDuplicateEmailConflict(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())

	if _, err := svc.Create(context.Background(), validUser()); err != nil {
		t.Fatalf("first Create: %v", err)
	}

	second := validUser()
	second.Name = "Outra Ana"
	_, err := svc.Create(context.Background(), second)

	var conflict *ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected ConflictError, got %v", err)
	}
}

// The email conflict is checked before the required fields, so a taken email
// wins even when other fields are blank.
func TestUserCreateConflictBeforeFieldValidation(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())

	if _, err := svc.Create(context.Background(), validUser()); err != nil {
		t.Fatalf("first Create: %v", err)
	}

	second := validUser()
	second.Name = ""
	_, err := svc.Create(context.Background(), second)

	var conflict *ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected ConflictError, got %v", err)
	}
}

func TestUserCreateRequiredFields(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*models.User)
	}{
		{"blank name", func(u *models.User) { u.Name = " " }},
		{"blank email", func(u *models.User) { u.Email = "" }},
		{"blank password", func(u *models.User) { u.Password = "" }},
		{"blank phone", func(u *models.User) { u.Phone = "" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := NewUserService(newFakeUserRepo())
			user := validUser()
			tc.mutate(user)

			_, err := svc.Create(context.Background(), user)
			var validation *ValidationError
			if !errors.As(err, &validation) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
		})
	}
}

func TestUserUpdateBlankPasswordKeepsStoredCredential(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)

	created, err := svc.Create(context.Background(), validUser())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	update := validUser()
	update.Password = ""
	update.Name = "Ana S."
	if err := svc.Update(context.Background(), created.ID, update); err != nil {
		t.Fatalf("Update: %v", err)
	}

	stored := repo.users[created.ID]
	if stored.Name != "Ana S." {
		t.Fatalf("name update not persisted")
	}
	if bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("s3cret")) != nil {
		t.Fatalf("stored credential changed on blank password update")
	}
}

func TestUserUpdateUnchangedEmailSkipsUniquenessConflict(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)

	created, err := svc.Create(context.Background(), validUser())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	// Same email as the stored row; must not conflict with itself.
	if err := svc.Update(context.Background(), created.ID, validUser()); err != nil {
		t.Fatalf("Update with own email: %v", err)
	}
}

func TestUserDelete(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)

	var validation *ValidationError
	if err := svc.Delete(context.Background(), 0); !errors.As(err, &validation) {
		t.Fatalf("expected ValidationError for id<=0, got %v", err)
	}

	var notFound *NotFoundError
	if err := svc.Delete(context.Background(), 9); !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}

	created, err := svc.Create(context.Background(), validUser())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if len(repo.users) != 0 {
		t.Fatalf("user still present after delete")
	}
}

func TestLoginBlankCredentialsValidation(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())

	for _, creds := range [][2]string{{"", "pass"}, {"ana@example.com", ""}, {" ", " "}} {
		_, err := svc.Login(context.Background(), creds[0], creds[1])
		var validation *ValidationError
		if !errors.As(err, &validation) {
			t.Fatalf("Login(%q, %q): expected ValidationError, got %v", creds[0], creds[1], err)
		}
	}
}

func TestLoginUnknownEmailReturnsNil(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())

	user, err := svc.Login(context.Background(), "ghost@example.com", "whatever")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if user != nil {
		t.Fatalf("expected nil user for unknown email")
	}
}

func TestLoginWrongPasswordReturnsNil(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())
	if _, err := svc.Create(context.Background(), validUser()); err != nil {
		t.Fatalf("Create: %v", err)
	}

	user, err := svc.Login(context.Background(), "ana@example.com", "wrong")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if user != nil {
		t.Fatalf("expected nil user for wrong password")
	}
}

func TestLoginSuccess(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())
	if _, err := svc.Create(context.Background(), validUser()); err != nil {
		t.Fatalf("Create: %v", err)
	}

	user, err := svc.Login(context.Background(), "ana@example.com", "s3cret")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if user == nil {
		t.Fatalf("expected matching user")
	}
	if user.Email != "ana@example.com" {
		t.Fatalf("wrong user returned: %s", user.Email)
	}
}
