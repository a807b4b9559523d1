package service

import (
	"errors"
	"fmt"
	"net/http"

	"scroom/internal/auth"
)

// Адреса, куда клиент перенаправляет пользователя при ошибках сессии.
const (
	SignInPath     = "/api/auth/signin"
	OnboardingPath = "/onboarding"
)

// AppError описывает прикладную ошибку сервиса:
// код для клиента, человекочитаемое сообщение, HTTP-статус и вложенная ошибка.
// Redirect заполняется, когда клиенту нужно перейти на другую страницу.
type AppError struct {
	Code     string
	Message  string
	Status   int
	Redirect string
	Err      error
}

// Error реализует интерфейс error для AppError.
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap возвращает вложенную ошибку для поддержки errors.Is/As.
func (e *AppError) Unwrap() error {
	return e.Err
}

// ErrBadRequest конструирует AppError для ошибок валидации или некорректных запросов клиента.
func ErrBadRequest(msg string) *AppError {
	return &AppError{
		Code:    "BAD_REQUEST",
		Message: msg,
		Status:  http.StatusBadRequest,
	}
}

// ErrNotFound конструирует AppError для ситуации, когда ресурс не найден.
func ErrNotFound(msg string) *AppError {
	return &AppError{
		Code:    "NOT_FOUND",
		Message: msg,
		Status:  http.StatusNotFound,
	}
}

// ErrUnauthenticated конструирует AppError для запроса без действительной сессии.
func ErrUnauthenticated() *AppError {
	return &AppError{
		Code:     "UNAUTHENTICATED",
		Message:  "sign in required",
		Status:   http.StatusUnauthorized,
		Redirect: SignInPath,
	}
}

// ErrOnboarding конструирует AppError для пользователя без команды.
func ErrOnboarding() *AppError {
	return &AppError{
		Code:     "ONBOARDING_REQUIRED",
		Message:  "join or create a team first",
		Status:   http.StatusForbidden,
		Redirect: OnboardingPath,
	}
}

// ErrForbidden конструирует AppError для операции, запрещённой ролью.
func ErrForbidden(msg string) *AppError {
	return &AppError{
		Code:    "FORBIDDEN",
		Message: msg,
		Status:  http.StatusForbidden,
	}
}

// ErrDomain конструирует AppError для доменных конфликтов (например, STATUS_EXISTS).
func ErrDomain(code, msg string) *AppError {
	return &AppError{
		Code:    code,
		Message: msg,
		Status:  http.StatusConflict,
	}
}

func errInternal(msg string, err error) *AppError {
	return &AppError{
		Code:    "INTERNAL",
		Message: msg,
		Status:  http.StatusInternalServerError,
		Err:     err,
	}
}

// fromAuth переводит ошибки проверки сессии и прав в AppError.
func fromAuth(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, auth.ErrUnauthenticated):
		return ErrUnauthenticated()
	case errors.Is(err, auth.ErrNoTeam):
		return ErrOnboarding()
	case errors.Is(err, auth.ErrForbidden):
		e := ErrForbidden("operation not permitted for your role")
		e.Err = err
		return e
	default:
		return errInternal("authorization failed", err)
	}
}

// requireTeam проверяет, что сессия есть и онбординг завершён. Используется чтением.
func requireTeam(s auth.Session) error {
	if s.UserID == "" {
		return ErrUnauthenticated()
	}
	if !s.HasTeam() {
		return ErrOnboarding()
	}
	return nil
}

// IsNotFound помогает определить, соответствует ли ошибка HTTP-статусу 404.
func IsNotFound(err error) bool {
	var app *AppError
	if errors.As(err, &app) {
		return app.Status == http.StatusNotFound
	}
	return false
}

// Code возвращает код AppError или пустую строку.
func Code(err error) string {
	var app *AppError
	if errors.As(err, &app) {
		return app.Code
	}
	return ""
}
