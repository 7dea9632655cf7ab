package service

import (
	"errors"
	"fmt"
	"log/slog"

	"connectrpc.com/connect"
	"github.com/go-playground/validator/v10"

	"github.com/mmynk/wedplan/internal/storage"
)

// storeError maps a storage failure to a Connect error and logs it.
func storeError(op string, err error) error {
	if errors.Is(err, storage.ErrNotFound) {
		slog.Warn(op+" failed", "error", err)
		return connect.NewError(connect.CodeNotFound, err)
	}
	slog.Error(op+" failed", "error", err)
	return connect.NewError(connect.CodeInternal, err)
}

func notFound(kind, id string) error {
	return connect.NewError(connect.CodeNotFound, fmt.Errorf("%s %s: %w", kind, id, storage.ErrNotFound))
}

func invalidArgument(format string, args ...any) error {
	return connect.NewError(connect.CodeInvalidArgument, fmt.Errorf(format, args...))
}

func requireID(id string) error {
	if id == "" {
		return invalidArgument("id is required")
	}
	return nil
}

// validationError turns the first failed validation tag into an
// InvalidArgument error naming the offending field.
func validationError(err error) error {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) || len(errs) == 0 {
		return connect.NewError(connect.CodeInvalidArgument, err)
	}
	fe := errs[0]
	field := fe.Field()
	switch fe.Tag() {
	case "required", "notblank", "notzero":
		return invalidArgument("%s is required", field)
	case "min":
		return invalidArgument("%s must be at least %s characters", field, fe.Param())
	case "len":
		return invalidArgument("%s must be %s characters long, got %q", field, fe.Param(), fe.Value())
	case "alpha":
		return invalidArgument("%s must contain only letters, got %q", field, fe.Value())
	case "oneof":
		return invalidArgument("invalid %s %q, want one of: %s", field, fe.Value(), fe.Param())
	case "opt_email":
		return invalidArgument("invalid email address %q", fe.Value())
	case "opt_url":
		return invalidArgument("invalid %s URL %q", field, fe.Value())
	case "opt_clock":
		return invalidArgument("%s must be HH:MM, got %q", field, fe.Value())
	case "nonnegative":
		return invalidArgument("%s must not be negative", field)
	}
	return invalidArgument("%s failed %s validation", field, fe.Tag())
}
