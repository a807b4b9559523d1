package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrUserNotFound возвращается, если пользователь не найден в БД.
	ErrUserNotFound = errors.New("user not found")

	// ErrTeamNotFound возвращается, если команда не найдена.
	ErrTeamNotFound = errors.New("team not found")

	// ErrIssueNotFound возвращается, если задача не найдена в пределах команды.
	ErrIssueNotFound = errors.New("issue not found")

	// ErrStatusNotFound возвращается, если колонка не найдена в пределах команды.
	ErrStatusNotFound = errors.New("status not found")

	// ErrStatusExists возвращается при попытке создать колонку с уже занятым value.
	ErrStatusExists = errors.New("status already exists")
)

// isUniqueViolation проверяет, что ошибка — нарушение уникального ограничения.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
