package service

import (
	"errors"
	"fmt"

	"github.com/starwars-blog/api/internal/models"
)

var (
	ErrNotFound    = errors.New("not found")
	ErrConflict    = errors.New("already exists")
	ErrUnknownKind = errors.New("unknown favorite kind")
)

// NotFoundError reports a missing user or reference entity
type NotFoundError struct {
	Resource string
	ID       uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Resource, e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// LinkNotFoundError reports a missing favorite link
type LinkNotFoundError struct {
	Kind     models.Kind
	UserID   uint
	EntityID uint
}

func (e *LinkNotFoundError) Error() string {
	return fmt.Sprintf("%s %d is not a favorite of user %d", e.Kind, e.EntityID, e.UserID)
}

func (e *LinkNotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// ConflictError reports a favorite link that already exists
type ConflictError struct {
	Kind     models.Kind
	UserID   uint
	EntityID uint
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s %d is already a favorite of user %d", e.Kind, e.EntityID, e.UserID)
}

func (e *ConflictError) Is(target error) bool {
	return target == ErrConflict
}
