package user

import (
	"context"
	"strings"

	"bookshelf-be/internal/store"
)

const BucketUsers = "users"

type Repository interface {
	GetByID(ctx context.Context, id uint) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Create(ctx context.Context, username, email, passwordHash string, isAdmin bool) (*User, error)
}

type repository struct {
	store *store.Store
}

func NewRepository(st *store.Store) Repository {
	return &repository{store: st}
}

func (r *repository) GetByID(ctx context.Context, id uint) (*User, error) {
	var found *User
	err := r.store.View(func(tx *store.Tx) error {
		u, ok := store.Bucket[User](tx, BucketUsers).Get(id)
		if !ok {
			return ErrUserNotFound
		}
		found = &u
		return nil
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

func (r *repository) GetByUsername(ctx context.Context, username string) (*User, error) {
	return r.first(func(u User) bool {
		return strings.EqualFold(u.Username, username)
	})
}

func (r *repository) GetByEmail(ctx context.Context, email string) (*User, error) {
	return r.first(func(u User) bool {
		return strings.EqualFold(u.Email, email)
	})
}

// Create enforces username and email uniqueness within the same transaction
// that inserts the record.
func (r *repository) Create(ctx context.Context, username, email, passwordHash string, isAdmin bool) (*User, error) {
	var created User
	err := r.store.Update(func(tx *store.Tx) error {
		users := store.Bucket[User](tx, BucketUsers)

		if _, ok := users.First(func(u User) bool {
			return strings.EqualFold(u.Username, username)
		}); ok {
			return ErrUsernameExists
		}
		if _, ok := users.First(func(u User) bool {
			return strings.EqualFold(u.Email, email)
		}); ok {
			return ErrEmailExists
		}

		_, err := users.Insert(func(id uint) User {
			created = User{
				ID:       id,
				Username: username,
				Email:    email,
				Password: passwordHash,
				IsAdmin:  isAdmin,
			}
			return created
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *repository) first(pred func(User) bool) (*User, error) {
	var found *User
	err := r.store.View(func(tx *store.Tx) error {
		u, ok := store.Bucket[User](tx, BucketUsers).First(pred)
		if !ok {
			return ErrUserNotFound
		}
		found = &u
		return nil
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}
