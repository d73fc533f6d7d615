package domain

import "errors"

// Domain errors for lookups
var (
	// ErrMaterialNotFound indicates that a material with the given ID does not exist.
	ErrMaterialNotFound = errors.New("material not found")

	// ErrProjectNotFound indicates that a project with the given ID does not exist.
	ErrProjectNotFound = errors.New("project not found")
)

// Domain errors for Material validation
var (
	// ErrEmptyMaterialName indicates an attempt to create/update a material with an empty name.
	ErrEmptyMaterialName = errors.New("material name cannot be empty")

	// ErrMaterialNameTooLong indicates the material name exceeds maximum length.
	ErrMaterialNameTooLong = errors.New("material name exceeds maximum length of 255 characters")

	// ErrNegativeQuantity indicates an attempt to set a negative quantity.
	ErrNegativeQuantity = errors.New("quantity cannot be negative")

	// ErrInvalidQuantity indicates a quantity that is not a finite number.
	ErrInvalidQuantity = errors.New("quantity must be a finite number")

	// ErrNegativePrice indicates an attempt to set a negative price.
	ErrNegativePrice = errors.New("price cannot be negative")

	// ErrInvalidPrice indicates a price that is not a finite number.
	ErrInvalidPrice = errors.New("price must be a finite number")

	// ErrInvalidMaterialStatus indicates a status outside pending/ordered/delivered/cancelled.
	ErrInvalidMaterialStatus = errors.New("invalid material status")

	// ErrMissingActingUser indicates a mutating call without a user identifier.
	ErrMissingActingUser = errors.New("acting user id is required")
)

// Domain errors for Patch values
var (
	// ErrImmutableField indicates a patch that targets an unknown or engine-managed field.
	ErrImmutableField = errors.New("field cannot be updated")

	// ErrFieldTypeMismatch indicates a patch value whose kind does not match the field.
	ErrFieldTypeMismatch = errors.New("value type does not match field")

	// ErrUnsupportedValue indicates a value that is not a string, number, boolean or null.
	ErrUnsupportedValue = errors.New("unsupported value type")
)

// Domain errors for Project validation
var (
	// ErrEmptyProjectName indicates an attempt to create a project with an empty name.
	ErrEmptyProjectName = errors.New("project name cannot be empty")

	// ErrInvalidProjectStatus indicates an unknown project status.
	ErrInvalidProjectStatus = errors.New("invalid project status")
)
