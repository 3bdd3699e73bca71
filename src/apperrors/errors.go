package apperrors

import "errors"

var (
	ErrNotFound     = errors.New("not found")
	ErrValidation   = errors.New("validation failed")
	ErrEmptyFile    = errors.New("CSV 파일이 비어있습니다.")
	ErrInvalidMode  = errors.New("invalid import mode")
	ErrUnauthorized = errors.New("unauthorized")
)
