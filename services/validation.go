package services

import (
	"errors"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	apperrors "github.com/manish-reddy7/Manish-Reddy-Portfolio/errors"
	"github.com/manish-reddy7/Manish-Reddy-Portfolio/types"
)

// contactEmailPattern is a cheap syntactic gate (x@y.z with no whitespace or
// extra @), not RFC 5322 validation. Deliverability is left to the transport.
// RE2's \s is ASCII only, so vertical tab, Unicode separators and the BOM are
// excluded explicitly.
var contactEmailPattern = regexp.MustCompile(`^[^\s\v\p{Z}\x{FEFF}@]+@[^\s\v\p{Z}\x{FEFF}@]+\.[^\s\v\p{Z}\x{FEFF}@]+$`)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func contactValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		_ = validate.RegisterValidation("contactemail", func(fl validator.FieldLevel) bool {
			return IsValidContactEmail(fl.Field().String())
		})
	})
	return validate
}

// IsValidContactEmail reports whether email passes the syntactic gate.
func IsValidContactEmail(email string) bool {
	return contactEmailPattern.MatchString(email)
}

// ValidateContactRequest trims every field and checks the submission.
// A blank field wins over a malformed email.
func ValidateContactRequest(req types.ContactRequest) (types.ContactRequest, error) {
	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)
	req.Email = strings.TrimSpace(req.Email)
	req.Subject = strings.TrimSpace(req.Subject)
	req.Message = strings.TrimSpace(req.Message)

	err := contactValidator().Struct(req)
	if err == nil {
		return req, nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return req, apperrors.ValidationFailed(apperrors.MsgAllFieldsRequired, err.Error())
	}

	var emailErr *apperrors.AppError
	for _, fe := range fieldErrs {
		if fe.Tag() == "required" {
			return req, apperrors.ValidationFailed(apperrors.MsgAllFieldsRequired, fe.Field())
		}
		if fe.Tag() == "contactemail" {
			emailErr = apperrors.ValidationFailed(apperrors.MsgInvalidEmail, fe.Field())
		}
	}
	if emailErr != nil {
		return req, emailErr
	}
	return req, apperrors.ValidationFailed(apperrors.MsgAllFieldsRequired, err.Error())
}
