// Package auth implements the username and password layer that attaches
// ownership to creatures. Sessions are opaque bearer tokens.
package auth

//go:generate mockgen -destination=mock/mock_service.go -package=authmock github.com/KirkDiggler/creature-forge/internal/orchestrators/auth Service

import (
	"context"
	"log/slog"
	"regexp"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/KirkDiggler/creature-forge/internal/entities"
	"github.com/KirkDiggler/creature-forge/internal/errors"
	"github.com/KirkDiggler/creature-forge/internal/pkg/clock"
	"github.com/KirkDiggler/creature-forge/internal/pkg/idgen"
	authsession "github.com/KirkDiggler/creature-forge/internal/repositories/auth_session"
	userrepo "github.com/KirkDiggler/creature-forge/internal/repositories/user"
)

// Account limits
const (
	MinUsernameLength    = 3
	MaxUsernameLength    = 30
	MinPasswordLength    = 6
	MaxPasswordBytes     = 72
	MaxDisplayNameLength = 40
)

const messageBadLogin = "That username and password don't match. Try again!"

var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_.-]+$`)

// Service defines the interface for accounts and sessions
type Service interface {
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	Logout(ctx context.Context, input *LogoutInput) (*LogoutOutput, error)

	// ResolveSession returns the session for a bearer token
	// Returns errors.Unauthenticated for an unknown token
	ResolveSession(ctx context.Context, input *ResolveSessionInput) (*ResolveSessionOutput, error)
}

// Config holds the dependencies for the auth orchestrator
type Config struct {
	UserRepo    userrepo.Repository
	SessionRepo authsession.Repository
	// UserIDGenerator names accounts; TokenGenerator must be unguessable
	UserIDGenerator idgen.Generator
	TokenGenerator  idgen.Generator
	// BcryptCost defaults to bcrypt.DefaultCost
	BcryptCost int
	Clock      clock.Clock
	Logger     *slog.Logger
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.UserRepo == nil {
		vb.RequiredField("UserRepo")
	}
	if c.SessionRepo == nil {
		vb.RequiredField("SessionRepo")
	}
	if c.UserIDGenerator == nil {
		vb.RequiredField("UserIDGenerator")
	}
	if c.TokenGenerator == nil {
		vb.RequiredField("TokenGenerator")
	}
	if c.BcryptCost != 0 && (c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost) {
		vb.Fieldf("BcryptCost", "must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost)
	}

	return vb.Build()
}

type orchestrator struct {
	userRepo    userrepo.Repository
	sessionRepo authsession.Repository
	userIDGen   idgen.Generator
	tokenGen    idgen.Generator
	bcryptCost  int
	clock       clock.Clock
	logger      *slog.Logger
}

// NewOrchestrator creates a new auth orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	o := &orchestrator{
		userRepo:    cfg.UserRepo,
		sessionRepo: cfg.SessionRepo,
		userIDGen:   cfg.UserIDGenerator,
		tokenGen:    cfg.TokenGenerator,
		bcryptCost:  cfg.BcryptCost,
		clock:       cfg.Clock,
		logger:      cfg.Logger,
	}
	if o.bcryptCost == 0 {
		o.bcryptCost = bcrypt.DefaultCost
	}
	if o.clock == nil {
		o.clock = clock.New()
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}

	return o, nil
}

func (o *orchestrator) Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	username := strings.TrimSpace(input.Username)
	displayName := strings.TrimSpace(input.DisplayName)
	if displayName == "" {
		displayName = username
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("username", username, vb)
	if username != "" {
		if n := len(username); n < MinUsernameLength || n > MaxUsernameLength {
			vb.Fieldf("username", "must be between %d and %d characters", MinUsernameLength, MaxUsernameLength)
		}
		if !usernamePattern.MatchString(username) {
			vb.Field("username", "may only use letters, numbers, dots, dashes and underscores")
		}
	}
	if len(input.Password) < MinPasswordLength {
		vb.Fieldf("password", "must be at least %d characters", MinPasswordLength)
	}
	if len(input.Password) > MaxPasswordBytes {
		vb.Fieldf("password", "must be no more than %d bytes", MaxPasswordBytes)
	}
	errors.ValidateMaxLength("display_name", displayName, MaxDisplayNameLength, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), o.bcryptCost)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	created, err := o.userRepo.Create(ctx, &userrepo.CreateInput{User: &entities.User{
		ID:           o.userIDGen.Generate(),
		Username:     username,
		DisplayName:  displayName,
		PasswordHash: string(hash),
		CreatedAt:    o.clock.Now().UTC(),
	}})
	if err != nil {
		if errors.IsAlreadyExists(err) {
			return nil, errors.Wrapf(err, "username %s is taken", username).
				WithUserMessage("That username is already taken. Try another one!")
		}
		return nil, errors.Wrap(err, "failed to create user")
	}

	session, err := o.startSession(ctx, created.User)
	if err != nil {
		return nil, err
	}

	o.logger.InfoContext(ctx, "user registered", "user_id", created.User.ID)

	return &RegisterOutput{User: created.User, Session: session}, nil
}

func (o *orchestrator) Login(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
	if input == nil || strings.TrimSpace(input.Username) == "" || input.Password == "" {
		return nil, errors.InvalidArgument("username and password are required")
	}

	found, err := o.userRepo.GetByUsername(ctx, &userrepo.GetByUsernameInput{
		Username: strings.TrimSpace(input.Username),
	})
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, badLogin()
		}
		return nil, errors.Wrap(err, "failed to look up user")
	}

	err = bcrypt.CompareHashAndPassword([]byte(found.User.PasswordHash), []byte(input.Password))
	if err != nil {
		o.logger.InfoContext(ctx, "login rejected", "user_id", found.User.ID)
		return nil, badLogin()
	}

	session, err := o.startSession(ctx, found.User)
	if err != nil {
		return nil, err
	}

	return &LoginOutput{Session: session}, nil
}

func (o *orchestrator) Logout(ctx context.Context, input *LogoutInput) (*LogoutOutput, error) {
	if input == nil || input.Token == "" {
		return nil, errors.InvalidArgument("token is required")
	}

	if _, err := o.sessionRepo.Delete(ctx, &authsession.DeleteInput{Token: input.Token}); err != nil {
		return nil, errors.Wrap(err, "failed to end session")
	}

	return &LogoutOutput{}, nil
}

func (o *orchestrator) ResolveSession(ctx context.Context, input *ResolveSessionInput) (*ResolveSessionOutput, error) {
	if input == nil || input.Token == "" {
		return nil, errors.Unauthenticated("token is required")
	}

	out, err := o.sessionRepo.Get(ctx, &authsession.GetInput{Token: input.Token})
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, errors.Unauthenticated("unknown session token")
		}
		return nil, errors.Wrap(err, "failed to resolve session")
	}

	return &ResolveSessionOutput{Session: out.Session}, nil
}

func (o *orchestrator) startSession(ctx context.Context, user *entities.User) (*entities.Session, error) {
	session := &entities.Session{
		Token:       o.tokenGen.Generate(),
		UserID:      user.ID,
		DisplayName: user.DisplayName,
	}

	if _, err := o.sessionRepo.Create(ctx, &authsession.CreateInput{Session: session}); err != nil {
		return nil, errors.Wrap(err, "failed to start session")
	}

	return session, nil
}

func badLogin() error {
	return errors.Unauthenticated("invalid username or password").WithUserMessage(messageBadLogin)
}
