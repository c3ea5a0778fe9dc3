package services

import "errors"

var (
	// ErrNotFound is returned when an operation targets an id that does
	// not exist in the store.
	ErrNotFound = errors.New("record not found")

	// ErrEmailTaken is returned when a user with the same email already
	// exists. The check runs before insert, so two concurrent creates
	// with the same email can still both pass it.
	ErrEmailTaken = errors.New("user already exists")
)
