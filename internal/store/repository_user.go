// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgerrcode"

	"github.com/MKhiriev/go-file-vault/internal/logger"
	"github.com/MKhiriev/go-file-vault/models"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// A user's public key is not a column of "users": it is read from the
// resource the user owns.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser registers user.Principal under user.Username.
//
// Error handling:
//   - unique_violation on username_key → [ErrUsernameTaken].
//   - unique_violation on the primary key → [ErrAlreadyRegistered].
//   - foreign_key_violation → [ErrAccountNotFound].
func (r *userRepository) CreateUser(ctx context.Context, user models.User, usernameKey string) (models.User, error) {
	log := logger.FromContext(ctx)

	err := r.db.QueryRowContext(ctx, createUser, user.Principal.String(), user.Username, usernameKey).Scan(&user.CreatedAt)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Str("principal", user.Principal.String()).Msg("error creating user")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			if strings.Contains(constraintName(err), "username_key") {
				return models.User{}, ErrUsernameTaken
			}
			return models.User{}, ErrAlreadyRegistered
		case pgerrcode.ForeignKeyViolation:
			return models.User{}, ErrAccountNotFound
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return user, nil
}

func (r *userRepository) GetUser(ctx context.Context, principal models.Principal) (models.User, error) {
	log := logger.FromContext(ctx)

	var user models.User
	err := r.db.QueryRowContext(ctx, getUser, principal.String()).
		Scan(&user.Principal, &user.Username, &user.PublicKey, &user.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.GetUser").Msg("error getting user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return user, nil
}

// FindUsers returns the known subset of principals, ordered by username.
func (r *userRepository) FindUsers(ctx context.Context, principals []models.Principal) ([]models.PublicUser, error) {
	if len(principals) == 0 {
		return []models.PublicUser{}, nil
	}

	query, args, err := buildFindUsersQuery(principals)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryPublicUsers(ctx, "*userRepository.FindUsers", query, args)
}

// ListUsers returns one page of users whose normalized username contains
// usernameKey together with the total number of matches.
func (r *userRepository) ListUsers(ctx context.Context, usernameKey string, offset, limit int) (models.UsersPage, error) {
	log := logger.FromContext(ctx)

	countQuery, countArgs, err := buildCountUsersQuery(usernameKey)
	if err != nil {
		return models.UsersPage{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var total int
	if err = r.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error counting users")
		return models.UsersPage{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	query, args, err := buildListUsersQuery(usernameKey, offset, limit)
	if err != nil {
		return models.UsersPage{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	users, err := r.queryPublicUsers(ctx, "*userRepository.ListUsers", query, args)
	if err != nil {
		return models.UsersPage{}, err
	}

	page := models.UsersPage{Users: users, Total: total}
	if next := offset + len(users); next < total {
		page.NextOffset = next
	}

	return page, nil
}

func (r *userRepository) queryPublicUsers(ctx context.Context, funcName, query string, args []any) ([]models.PublicUser, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error querying users")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	users := make([]models.PublicUser, 0)
	for rows.Next() {
		var u models.PublicUser
		if err = rows.Scan(&u.Principal, &u.Username, &u.PublicKey); err != nil {
			log.Err(err).Str("func", funcName).Msg("error scanning user row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		users = append(users, u)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return users, nil
}
