package http

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"scroom/internal/model"
	"scroom/internal/service"
)

// Значение колонки — идентификатор в camelCase: toDo, inProgress, column4.
var reStatusValue = regexp.MustCompile(`^[a-z][A-Za-z0-9]*$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// В сообщениях об ошибках поля называются так же, как в JSON.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	_ = v.RegisterValidation("statusvalue", func(fl validator.FieldLevel) bool {
		return reStatusValue.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("backlog", func(fl validator.FieldLevel) bool {
		return model.Backlog(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("role", func(fl validator.FieldLevel) bool {
		return model.Role(fl.Field().String()).Valid()
	})
	return v
}

// validateStruct проверяет теги validate и переводит первую ошибку в BAD_REQUEST.
func validateStruct(req any) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return service.ErrBadRequest("invalid request")
	}
	return service.ErrBadRequest(describe(verrs[0]))
}

func describe(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "notblank":
		return field + " must not be blank"
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "min":
		if fe.Kind() == reflect.Int {
			return field + " must not be negative"
		}
		return field + " must not be empty"
	case "uuid":
		return field + " must be a UUID"
	case "backlog":
		return field + " must be sprint or product"
	case "statusvalue":
		return field + " must be camelCase letters and digits, e.g. inReview"
	case "role":
		return field + " must be one of admin, scrumMaster, productOwner, proxyProductOwner, developer, guest"
	default:
		return field + " is invalid"
	}
}

// Issues

// ValidateCreateIssueRequest POST /issues — тело запроса
func ValidateCreateIssueRequest(req createIssueRequest) error {
	return validateStruct(req)
}

// ValidateUpdateIssueRequest PATCH /issues/{id} — тело запроса
func ValidateUpdateIssueRequest(req updateIssueRequest) error {
	if err := validateStruct(req); err != nil {
		return err
	}
	if req.Summary == nil && req.Status == nil && req.Backlog == nil &&
		req.Estimate == nil && req.Type == nil && req.UserID == nil {
		return service.ErrBadRequest("nothing to update")
	}
	return nil
}

// ValidateMoveIssueRequest POST /board/move — тело запроса
func ValidateMoveIssueRequest(req moveIssueRequest) error {
	return validateStruct(req)
}

// Statuses

// ValidateCreateStatusRequest POST /board/columns — тело запроса
func ValidateCreateStatusRequest(req createStatusRequest) error {
	return validateStruct(req)
}

// Team

// ValidateUpdateTeamRequest PATCH /team — тело запроса
func ValidateUpdateTeamRequest(req updateTeamRequest) error {
	return validateStruct(req)
}

// ValidateChangeRoleRequest PATCH /team/users/{id}/role — тело запроса
func ValidateChangeRoleRequest(req changeRoleRequest) error {
	return validateStruct(req)
}

// ValidateID проверяет идентификатор задачи или колонки из пути.
func ValidateID(name, id string) error {
	if id == "" {
		return service.ErrBadRequest(name + " is required")
	}
	if err := uuid.Validate(id); err != nil {
		return service.ErrBadRequest(name + " must be a UUID")
	}
	return nil
}

// ParseLimit разбирает query-параметр limit. Пустое значение означает лимит по умолчанию.
func ParseLimit(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, service.ErrBadRequest("limit must be a positive integer")
	}
	return n, nil
}
