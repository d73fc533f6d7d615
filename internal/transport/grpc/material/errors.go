package material

import (
	"context"
	"errors"

	"cloud.google.com/go/spanner"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/murkotick/material-tracking-service/internal/app/material/domain"
)

// mapError translates domain sentinel errors into proper gRPC status codes.
// Unknown errors become codes.Internal.
func mapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.Canceled) {
		return status.Error(codes.Canceled, err.Error())
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return status.Error(codes.DeadlineExceeded, err.Error())
	}

	// Not found
	if errors.Is(err, domain.ErrMaterialNotFound) ||
		errors.Is(err, domain.ErrProjectNotFound) ||
		errors.Is(err, spanner.ErrRowNotFound) {
		return status.Error(codes.NotFound, err.Error())
	}

	// Invalid argument (validation)
	switch {
	case errors.Is(err, domain.ErrEmptyMaterialName),
		errors.Is(err, domain.ErrMaterialNameTooLong),
		errors.Is(err, domain.ErrNegativeQuantity),
		errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, domain.ErrNegativePrice),
		errors.Is(err, domain.ErrInvalidPrice),
		errors.Is(err, domain.ErrInvalidMaterialStatus),
		errors.Is(err, domain.ErrMissingActingUser),
		errors.Is(err, domain.ErrImmutableField),
		errors.Is(err, domain.ErrFieldTypeMismatch),
		errors.Is(err, domain.ErrUnsupportedValue),
		errors.Is(err, domain.ErrEmptyProjectName),
		errors.Is(err, domain.ErrInvalidProjectStatus):
		return status.Error(codes.InvalidArgument, err.Error())
	}

	return status.Error(codes.Internal, err.Error())
}
