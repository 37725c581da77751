package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ZaidAmirMahdi10/goal-tracker/internal/config"
	"github.com/ZaidAmirMahdi10/goal-tracker/internal/logger"
	"github.com/ZaidAmirMahdi10/goal-tracker/internal/store"
	"github.com/ZaidAmirMahdi10/goal-tracker/internal/utils"
	"github.com/ZaidAmirMahdi10/goal-tracker/internal/validators"
	"github.com/ZaidAmirMahdi10/goal-tracker/models"
	"golang.org/x/crypto/bcrypt"
)

// tokenTTL is the fixed lifetime of a session token.
const tokenTTL = time.Hour

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and JWT token
// lifecycle using a UserRepository for persistence and bcrypt for
// password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	validator validators.Validator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// bcryptCost is the work factor of new password hashes.
	bcryptCost int

	// dummyHash is compared against when the email is unknown, so both
	// login failures cost one bcrypt comparison.
	dummyHash func() []byte

	// now is the clock tokens are issued and verified against.
	now func() time.Time

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg. A bcrypt cost below
// config.MinBcryptCost is raised to it; a cost bcrypt cannot handle falls
// back to bcrypt.DefaultCost.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, validator validators.Validator, cfg config.App, logger *logger.Logger) AuthService {
	cost := cfg.BcryptCost
	switch {
	case cost < config.MinBcryptCost:
		cost = config.MinBcryptCost
	case cost > config.MaxBcryptCost:
		logger.Warn().Str("func", "NewAuthService").Int("cost", cost).Msg("bcrypt cost out of range, using default")
		cost = bcrypt.DefaultCost
	}

	return &authService{
		userRepository: userRepository,
		validator:      validator,
		tokenSignKey:   cfg.TokenSignKey,
		bcryptCost:     cost,
		dummyHash: sync.OnceValue(func() []byte {
			hash, err := bcrypt.GenerateFromPassword([]byte("not a real password"), cost)
			if err != nil {
				logger.Err(err).Str("func", "NewAuthService").Msg("error hashing dummy password")
			}
			return hash
		}),
		now:    time.Now,
		logger: logger,
	}
}

// Register creates a new user account.
//
// Returns nil on success or:
//   - ErrValidation if a field is missing or the password is too long for bcrypt.
//   - ErrDuplicateCredential if the username or email is taken.
//   - ErrInternal on any other failure.
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) error {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), a.bcryptCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return fmt.Errorf("%w: %w", ErrValidation, err)
		}
		log.Err(err).Str("func", "*authService.Register").Msg("error hashing password")
		return fmt.Errorf("%w: %w", ErrInternal, err)
	}

	user := models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
	}

	if _, err = a.userRepository.CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrDuplicateUser) {
			log.Info().Str("func", "*authService.Register").Msg("username or email already taken")
			return ErrDuplicateCredential
		}
		log.Err(err).Str("func", "*authService.Register").Msg("user creation ended with error")
		return fmt.Errorf("%w: %w", ErrInternal, err)
	}

	return nil
}

// Login authenticates an existing user and issues a session token.
//
// An unknown email and a wrong password both yield ErrInvalidCredentials.
// Store or signing failures yield ErrInternal.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.Session, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		return models.Session{}, err
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			_ = bcrypt.CompareHashAndPassword(a.dummyHash(), []byte(req.Password))
			return models.Session{}, ErrInvalidCredentials
		}
		log.Err(err).Str("func", "*authService.Login").Msg("user search by email failed")
		return models.Session{}, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(foundUser.PasswordHash), []byte(req.Password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return models.Session{}, ErrInvalidCredentials
		}
		log.Err(err).Str("func", "*authService.Login").Int64("id", foundUser.UserID).Msg("stored password hash is unusable")
		return models.Session{}, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	token, err := a.createToken(foundUser)
	if err != nil {
		log.Err(err).Str("func", "*authService.Login").Msg("error creating token")
		return models.Session{}, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	return models.Session{
		Token:    token,
		UserID:   foundUser.UserID,
		Username: foundUser.Username,
	}, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong signature, malformed) is
// normalised to ErrTokenIsInvalid so that callers do not need to inspect
// low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.now())
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Token{}, ErrTokenIsInvalid
	}

	return token, nil
}

// createToken issues a signed JWT for user that expires after tokenTTL.
func (a *authService) createToken(user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(user.UserID, tokenTTL, a.tokenSignKey, a.now())
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}
