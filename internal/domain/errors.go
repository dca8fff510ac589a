package domain

import "errors"

var (
	ErrRecordNotFound      = errors.New("record not found")
	ErrDuplicateRecord     = errors.New("record already exists")
	ErrDependentRecords    = errors.New("record is still referenced by dependent records")
	ErrInvalidReference    = errors.New("referenced record does not exist")
	ErrConstraintViolation = errors.New("record violates a storage constraint")
)
