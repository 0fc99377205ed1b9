package storage_test

import (
	"errors"
	"testing"

	"user-feedback-server/storage"
	"user-feedback-server/testutil"
	"user-feedback-server/utils"
)

func TestUserStoreRegister(t *testing.T) {
	db := testutil.OpenInMemoryDB(t, "userregister")
	users := storage.NewUserStore(db)

	user, err := users.Register("Jo", "Lee", "Jo@X.com", "jolee", "pw1")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.Username != "jolee" {
		t.Fatalf("unexpected username: %q", user.Username)
	}
	if user.Email != "jo@x.com" {
		t.Fatalf("email not lowercased: %q", user.Email)
	}
	if user.Password == "pw1" || user.Password == "" {
		t.Fatalf("password stored as plaintext or empty: %q", user.Password)
	}
	if !utils.CheckPassword("pw1", user.Password) {
		t.Fatal("stored hash does not verify against the original password")
	}
}

func TestUserStoreRegisterDuplicates(t *testing.T) {
	db := testutil.OpenInMemoryDB(t, "userduplicates")
	users := storage.NewUserStore(db)

	if _, err := users.Register("Jo", "Lee", "jo@x.com", "jolee", "pw1"); err != nil {
		t.Fatalf("first register: %v", err)
	}

	// Same username, different email.
	if _, err := users.Register("Other", "Person", "other@x.com", "jolee", "pw2"); !errors.Is(err, storage.ErrDuplicateKey) {
		t.Fatalf("expected ErrDuplicateKey for duplicate username, got %v", err)
	}
	// Same email, different username.
	if _, err := users.Register("Other", "Person", "jo@x.com", "other", "pw2"); !errors.Is(err, storage.ErrDuplicateKey) {
		t.Fatalf("expected ErrDuplicateKey for duplicate email, got %v", err)
	}

	// The original row is unaffected.
	got, err := users.GetByUsername("jolee")
	if err != nil {
		t.Fatalf("get after duplicates: %v", err)
	}
	if got.FirstName != "Jo" || got.Email != "jo@x.com" {
		t.Fatalf("original row changed: %+v", got)
	}
}

func TestUserStoreAuthenticate(t *testing.T) {
	db := testutil.OpenInMemoryDB(t, "userauth")
	users := storage.NewUserStore(db)

	if _, err := users.Register("Jo", "Lee", "jo@x.com", "jolee", "pw1"); err != nil {
		t.Fatalf("register: %v", err)
	}

	user, err := users.Authenticate("jolee", "pw1")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if user == nil || user.Username != "jolee" {
		t.Fatalf("expected jolee, got %+v", user)
	}

	// Wrong password and unknown username are indistinguishable.
	wrongPwd, err := users.Authenticate("jolee", "nope")
	if err != nil {
		t.Fatalf("authenticate wrong password: %v", err)
	}
	unknown, err := users.Authenticate("ghost", "pw1")
	if err != nil {
		t.Fatalf("authenticate unknown user: %v", err)
	}
	if wrongPwd != nil || unknown != nil {
		t.Fatalf("expected nil for both failure modes, got %+v and %+v", wrongPwd, unknown)
	}
}

func TestUserStoreGetByUsername(t *testing.T) {
	db := testutil.OpenInMemoryDB(t, "userget")
	users := storage.NewUserStore(db)
	feedback := storage.NewFeedbackStore(db)

	if _, err := users.Register("Jo", "Lee", "jo@x.com", "jolee", "pw1"); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := feedback.Create("First", "one", "jolee"); err != nil {
		t.Fatalf("create feedback: %v", err)
	}
	if _, err := feedback.Create("Second", "two", "jolee"); err != nil {
		t.Fatalf("create feedback: %v", err)
	}

	got, err := users.GetByUsername("jolee")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(got.Feedback) != 2 {
		t.Fatalf("expected feedback preloaded, got %d rows", len(got.Feedback))
	}
	if got.Feedback[0].Title != "Second" {
		t.Fatalf("expected newest feedback first, got %q", got.Feedback[0].Title)
	}

	if _, err := users.GetByUsername("ghost"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUserStoreDeleteCascades(t *testing.T) {
	db := testutil.OpenInMemoryDB(t, "userdelete")
	users := storage.NewUserStore(db)
	feedback := storage.NewFeedbackStore(db)

	if _, err := users.Register("Jo", "Lee", "jo@x.com", "jolee", "pw1"); err != nil {
		t.Fatalf("register: %v", err)
	}
	fb, err := feedback.Create("Hi", "hello", "jolee")
	if err != nil {
		t.Fatalf("create feedback: %v", err)
	}

	if err := users.Delete("jolee"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if _, err := users.GetByUsername("jolee"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected user gone, got %v", err)
	}
	if _, err := feedback.GetByID(fb.ID); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected feedback cascaded, got %v", err)
	}

	if err := users.Delete("jolee"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}
