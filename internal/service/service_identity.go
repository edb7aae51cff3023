package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-file-vault/internal/config"
	"github.com/MKhiriev/go-file-vault/internal/logger"
	"github.com/MKhiriev/go-file-vault/internal/store"
	"github.com/MKhiriev/go-file-vault/internal/utils"
	"github.com/MKhiriev/go-file-vault/models"
)

// identityService is the concrete implementation of IdentityService.
// It handles account sign-up, credential verification and the JWT
// lifecycle. Passwords are stored as HMAC-SHA256 hashes.
type identityService struct {
	accounts store.AccountRepository

	// hashKey is the HMAC secret applied to passwords before storage or
	// comparison. Must match the value used at sign-up time.
	hashKey string

	tokenSignKey  string
	tokenIssuer   string
	tokenDuration time.Duration

	principals *utils.UUIDGenerator
	logger     *logger.Logger
}

// NewIdentityService constructs an IdentityService wired to the given
// AccountRepository and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewIdentityService(accounts store.AccountRepository, cfg config.App, logger *logger.Logger) IdentityService {
	return &identityService{
		accounts:      accounts,
		hashKey:       cfg.PasswordHashKey,
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		principals:    utils.NewUUIDGenerator(),
		logger:        logger,
	}
}

// SignUp creates a new account under a freshly issued principal.
//
// Returns the persisted account or:
//   - ErrInvalidDataProvided if Login or Password is empty.
//   - A wrapped store.ErrLoginAlreadyExists if the login is taken.
func (s *identityService) SignUp(ctx context.Context, account models.Account) (models.Account, error) {
	log := logger.FromContext(ctx)

	if account.Login == "" || account.Password == "" {
		log.Error().Str("login", account.Login).Msg("invalid account data provided")
		return models.Account{}, ErrInvalidDataProvided
	}

	account.Principal = models.Principal(s.principals.Generate())
	account.Password = utils.HashString(account.Password, s.hashKey)

	created, err := s.accounts.CreateAccount(ctx, account)
	if err != nil {
		log.Err(err).Str("login", account.Login).Msg("account creation ended with error")
		return models.Account{}, fmt.Errorf("account creation ended with error: %w", err)
	}

	return created, nil
}

// Login checks the credentials and returns the stored account.
//
// Returns ErrInvalidDataProvided for empty credentials, a wrapped
// store.ErrAccountNotFound for an unknown login and ErrWrongPassword when
// the hashes differ.
func (s *identityService) Login(ctx context.Context, account models.Account) (models.Account, error) {
	log := logger.FromContext(ctx)

	if account.Login == "" || account.Password == "" {
		log.Error().Str("login", account.Login).Msg("invalid account data provided")
		return models.Account{}, ErrInvalidDataProvided
	}

	found, err := s.accounts.FindAccountByLogin(ctx, account.Login)
	if err != nil {
		log.Err(err).Str("login", account.Login).Msg("account search by login failed")
		return models.Account{}, fmt.Errorf("account search by login failed: %w", err)
	}

	if !utils.EqualHash(found.Password, utils.HashString(account.Password, s.hashKey)) {
		log.Error().
			Str("principal", found.Principal.String()).
			Str("login", found.Login).
			Msg("wrong password")
		return models.Account{}, ErrWrongPassword
	}

	return found, nil
}

// CreateToken issues a signed JWT whose subject is principal.
func (s *identityService) CreateToken(ctx context.Context, principal models.Principal) (models.Token, error) {
	token, err := utils.GenerateJWTToken(s.tokenIssuer, principal, s.tokenDuration, s.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates a raw JWT. Any validation failure (expired, wrong
// issuer, malformed) is normalised to ErrTokenIsExpiredOrInvalid.
func (s *identityService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, s.tokenSignKey, s.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
