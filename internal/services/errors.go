package services

import "errors"

var (
	ErrEmailTaken         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")

	ErrBookNotFound  = errors.New("book not found")
	ErrNotOwner      = errors.New("not the book owner")
	ErrDuplicateBook = errors.New("book already in library")
)
