package repository

import "errors"

var (
	ErrDuplicateDate = errors.New("já existe um registro para esta data")
	ErrNotFound      = errors.New("registro não encontrado")
)
