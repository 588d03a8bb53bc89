package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/farmergpt/internal/audit"
	"github.com/BruksfildServices01/farmergpt/internal/domain"
	"github.com/BruksfildServices01/farmergpt/internal/domain/user"
	"github.com/BruksfildServices01/farmergpt/internal/httperr"
	"github.com/BruksfildServices01/farmergpt/internal/models"
	"github.com/BruksfildServices01/farmergpt/internal/token"
	"github.com/BruksfildServices01/farmergpt/internal/validators"
)

// ======================================================
// INPUT / OUTPUT
// ======================================================

type RegisterInput struct {
	Username  string
	Email     string
	Password  string
	Password2 string
	FirstName string
	LastName  string
	Phone     string
	Location  string
}

type RegisterOutput struct {
	User    *models.User
	Profile *models.FarmerProfile
	Tokens  *token.Pair
}

// ======================================================
// USE CASE
// ======================================================

type Register struct {
	users  user.Repository
	tokens *token.Service
	audit  *audit.Dispatcher

	checkEmailDomain bool
	cost             int
}

func NewRegister(
	users user.Repository,
	tokens *token.Service,
	audit *audit.Dispatcher,
	checkEmailDomain bool,
) *Register {
	return &Register{
		users:            users,
		tokens:           tokens,
		audit:            audit,
		checkEmailDomain: checkEmailDomain,
		cost:             bcrypt.DefaultCost,
	}
}

func (uc *Register) Execute(
	ctx context.Context,
	in RegisterInput,
) (*RegisterOutput, error) {

	if in.Password != in.Password2 {
		return nil, httperr.Validation(
			"password_mismatch",
			passwordMismatchMessage,
			map[string][]string{"password": {passwordMismatchMessage}},
		)
	}

	username := strings.TrimSpace(in.Username)
	email := strings.ToLower(strings.TrimSpace(in.Email))

	if username == "" {
		return nil, httperr.Validation(
			"invalid_username",
			blankFieldMessage,
			map[string][]string{"username": {blankFieldMessage}},
		)
	}

	if uc.checkEmailDomain && !validators.IsEmailDomainValid(email) {
		return nil, httperr.Validation(
			"invalid_email_domain",
			"The email domain does not appear to be valid.",
			map[string][]string{"email": {"The email domain does not appear to be valid."}},
		)
	}

	// --------------------------------------------------
	// Uniqueness (the unique indexes still have the final say)
	// --------------------------------------------------
	taken, err := uc.users.UsernameTaken(ctx, username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, httperr.Validation(
			"username_taken",
			"A user with that username already exists.",
			map[string][]string{"username": {"A user with that username already exists."}},
		)
	}

	taken, err = uc.users.EmailTaken(ctx, email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, httperr.Validation(
			"email_taken",
			"A user with that email already exists.",
			map[string][]string{"email": {"A user with that email already exists."}},
		)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), uc.cost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hashed),
		FirstName:    strings.TrimSpace(in.FirstName),
		LastName:     strings.TrimSpace(in.LastName),
	}
	p := &models.FarmerProfile{
		Phone:    optional(in.Phone),
		Location: optional(in.Location),
	}

	if err := uc.users.CreateWithProfile(ctx, u, p); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, httperr.Validation(
				"user_already_exists",
				"A user with that username or email already exists.",
				nil,
			).Wrap(err)
		}
		return nil, err
	}

	pair, err := uc.tokens.Issue(u.ID, u.Username)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   u.ID,
		Action:   "user_registered",
		Entity:   "user",
		EntityID: &u.ID,
	})

	return &RegisterOutput{User: u, Profile: p, Tokens: pair}, nil
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
