package domain

import (
	"errors"
	"fmt"
)

var (
	ErrRecordNotFound = errors.New("record not found")
	ErrDuplicateKey   = errors.New("duplicate key")
	ErrUnknown        = errors.New("unknown error")
)

// ValidationError ошибка входных данных: недоступное объявление, срок ниже
// минимального, некорректная дата.
type ValidationError struct {
	Reason string
}

func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

func (e *ValidationError) Error() string {
	return "validation: " + e.Reason
}

// AuthorizationError действующее лицо не является арендатором/арендодателем
// заказа.
type AuthorizationError struct {
	Reason string
}

func NewAuthorizationError(format string, args ...any) *AuthorizationError {
	return &AuthorizationError{Reason: fmt.Sprintf(format, args...)}
}

func (e *AuthorizationError) Error() string {
	return "authorization: " + e.Reason
}

// StateConflictError операция нелегальна из текущего статуса заказа,
// включая проигранные гонки конкурентных переходов.
type StateConflictError struct {
	Op     string
	Status OrderStatus
}

func NewStateConflictError(op string, status OrderStatus) *StateConflictError {
	return &StateConflictError{Op: op, Status: status}
}

func (e *StateConflictError) Error() string {
	return fmt.Sprintf("state conflict: operation %s is not allowed from status %s", e.Op, e.Status)
}

// LimitExceededError превышен лимит заявок на расторжение.
type LimitExceededError struct {
	Reason string
}

func NewLimitExceededError(format string, args ...any) *LimitExceededError {
	return &LimitExceededError{Reason: fmt.Sprintf(format, args...)}
}

func (e *LimitExceededError) Error() string {
	return "limit exceeded: " + e.Reason
}

// DependencyError сбой внешнего коллаборатора (listing-сервис, нотификации).
type DependencyError struct {
	Dep string
	Err error
}

func NewDependencyError(dep string, err error) *DependencyError {
	return &DependencyError{Dep: dep, Err: err}
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf("dependency %s: %s", e.Dep, e.Err.Error())
}

func (e *DependencyError) Unwrap() error {
	return e.Err
}
