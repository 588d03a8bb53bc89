package auth

import (
	"context"
	"net/http"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/farmergpt/internal/config"
	"github.com/BruksfildServices01/farmergpt/internal/dbtest"
	"github.com/BruksfildServices01/farmergpt/internal/httperr"
	"github.com/BruksfildServices01/farmergpt/internal/infra/repository"
	"github.com/BruksfildServices01/farmergpt/internal/models"
	"github.com/BruksfildServices01/farmergpt/internal/token"
)

type fixture struct {
	db       *gorm.DB
	tokens   *token.Service
	denylist token.Denylist
	register *Register
	login    *Login
	refresh  *Refresh
	logout   *Logout
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db := dbtest.New(t)
	users := repository.NewUserGormRepository(db)
	tokens := token.NewService(&config.Config{
		JWTAccessSecret:  "a",
		JWTRefreshSecret: "r",
		JWTIssuer:        "test",
		AccessTokenTTL:   time.Minute,
		RefreshTokenTTL:  time.Hour,
	})
	denylist := token.NewGormDenylist(db)

	reg := NewRegister(users, tokens, nil, false)
	reg.cost = bcrypt.MinCost

	return &fixture{
		db:       db,
		tokens:   tokens,
		denylist: denylist,
		register: reg,
		login:    NewLogin(users, tokens),
		refresh:  NewRefresh(users, tokens, denylist),
		logout:   NewLogout(tokens, denylist, nil),
	}
}

func validInput() RegisterInput {
	return RegisterInput{
		Username:  "ravi",
		Email:     "Ravi@Example.com",
		Password:  "s3cret-pass",
		Password2: "s3cret-pass",
		Phone:     "9876543210",
		Location:  "Pune",
	}
}

func count(t *testing.T, db *gorm.DB, model any) int64 {
	t.Helper()
	var n int64
	if err := db.Model(model).Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	return n
}

func TestRegisterCreatesUserAndProfile(t *testing.T) {
	f := newFixture(t)

	out, err := f.register.Execute(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}

	if out.User.Email != "ravi@example.com" {
		t.Errorf("expected normalized email, got %q", out.User.Email)
	}
	if out.Profile.Phone == nil || *out.Profile.Phone != "9876543210" {
		t.Errorf("expected phone carried over, got %v", out.Profile.Phone)
	}
	if out.Tokens.Access == "" || out.Tokens.Refresh == "" {
		t.Error("expected tokens")
	}
	if n := count(t, f.db, &models.FarmerProfile{}); n != 1 {
		t.Errorf("expected 1 profile, got %d", n)
	}
}

func TestRegisterPasswordMismatch(t *testing.T) {
	f := newFixture(t)

	in := validInput()
	in.Password2 = "different"

	_, err := f.register.Execute(context.Background(), in)
	if !httperr.HasCode(err, "password_mismatch") || !httperr.HasStatus(err, http.StatusBadRequest) {
		t.Fatalf("expected password_mismatch validation error, got %v", err)
	}
	if n := count(t, f.db, &models.User{}); n != 0 {
		t.Fatalf("expected no user rows, got %d", n)
	}
}

func TestRegisterBlankUsername(t *testing.T) {
	f := newFixture(t)

	in := validInput()
	in.Username = "   "

	_, err := f.register.Execute(context.Background(), in)
	if !httperr.HasCode(err, "invalid_username") || !httperr.HasStatus(err, http.StatusBadRequest) {
		t.Fatalf("expected invalid_username validation error, got %v", err)
	}
	if n := count(t, f.db, &models.User{}); n != 0 {
		t.Fatalf("expected no user rows, got %d", n)
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if _, err := f.register.Execute(ctx, validInput()); err != nil {
		t.Fatalf("first register: %v", err)
	}

	again := validInput()
	again.Email = "someone-else@example.com"
	_, err := f.register.Execute(ctx, again)
	if !httperr.HasCode(err, "username_taken") {
		t.Fatalf("expected username_taken, got %v", err)
	}

	if n := count(t, f.db, &models.User{}); n != 1 {
		t.Errorf("expected 1 user, got %d", n)
	}
	if n := count(t, f.db, &models.FarmerProfile{}); n != 1 {
		t.Errorf("expected 1 profile, got %d", n)
	}
}

func TestRegisterDuplicateEmailIgnoresCase(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if _, err := f.register.Execute(ctx, validInput()); err != nil {
		t.Fatalf("first register: %v", err)
	}

	again := validInput()
	again.Username = "ravi2"
	again.Email = "RAVI@example.COM"
	if _, err := f.register.Execute(ctx, again); !httperr.HasCode(err, "email_taken") {
		t.Fatalf("expected email_taken, got %v", err)
	}
}

func TestLogin(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if _, err := f.register.Execute(ctx, validInput()); err != nil {
		t.Fatalf("register: %v", err)
	}

	pair, err := f.login.Execute(ctx, "ravi", "s3cret-pass")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if _, err := f.tokens.ParseAccess(pair.Access); err != nil {
		t.Fatalf("issued access token does not parse: %v", err)
	}

	if _, err := f.login.Execute(ctx, "  ravi ", "s3cret-pass"); err != nil {
		t.Fatalf("login with padded username: %v", err)
	}

	_, wrongPass := f.login.Execute(ctx, "ravi", "nope")
	_, unknown := f.login.Execute(ctx, "nobody", "s3cret-pass")

	for _, err := range []error{wrongPass, unknown} {
		if !httperr.HasCode(err, "invalid_credentials") || !httperr.HasStatus(err, http.StatusUnauthorized) {
			t.Errorf("expected invalid_credentials, got %v", err)
		}
	}
}

func TestRefreshAndLogout(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	out, err := f.register.Execute(ctx, validInput())
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	access, err := f.refresh.Execute(ctx, out.Tokens.Refresh)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if _, err := f.tokens.ParseAccess(access); err != nil {
		t.Fatalf("refreshed access token does not parse: %v", err)
	}

	if _, err := f.refresh.Execute(ctx, out.Tokens.Access); !httperr.HasCode(err, "token_not_valid") {
		t.Fatalf("expected access token to be refused, got %v", err)
	}

	if err := f.logout.Execute(ctx, out.User.ID+1, out.Tokens.Refresh); !httperr.HasCode(err, "token_not_valid") {
		t.Fatalf("expected foreign logout to be refused, got %v", err)
	}

	if err := f.logout.Execute(ctx, out.User.ID, out.Tokens.Refresh); err != nil {
		t.Fatalf("logout: %v", err)
	}

	_, err = f.refresh.Execute(ctx, out.Tokens.Refresh)
	if !httperr.HasCode(err, "token_not_valid") {
		t.Fatalf("expected revoked token to be refused, got %v", err)
	}
	if e, _ := httperr.As(err); e.Message != "Token is blacklisted" {
		t.Errorf("unexpected message %q", e.Message)
	}
}
