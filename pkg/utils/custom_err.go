package utils

import "errors"

var (
	// Authorization failures. ErrChildNotOwned is the guardianship gate:
	// no Active parent-child relation between the caller and the record's
	// owning child.
	ErrChildNotOwned       = errors.New("this child does not belong to the authenticated parent")
	ErrNotResourceOwner    = errors.New("this resource does not belong to the authenticated parent")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrInvalidResetToken   = errors.New("reset token is invalid or expired")
	ErrInvalidRefreshToken = errors.New("refresh token is not valid")

	// Not-found failures. The target record, or an intermediate entity on
	// its ownership chain, is absent or soft-deleted.
	ErrRecordNotFound       = errors.New("record not found")
	ErrChildNotFound        = errors.New("child record not found")
	ErrParentNotFound       = errors.New("parent account not found")
	ErrMedicineNotFound     = errors.New("medicine not found")
	ErrMedicationNotFound   = errors.New("medication not found")
	ErrVaccineNotFound      = errors.New("vaccine not found")
	ErrSymptomNotFound      = errors.New("symptom not found")
	ErrMilkTypeNotFound     = errors.New("milk type not found")
	ErrCategoryNotFound     = errors.New("category not found")
	ErrCategoryItemNotFound = errors.New("category item not found")
	ErrArticleNotFound      = errors.New("article not found")

	// Bad-request failures.
	ErrMissingFields      = errors.New("required fields are missing")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidLimit       = errors.New("limit must be a positive integer")
	ErrInvalidOffset      = errors.New("offset must be non-negative")
	ErrProtectedField     = errors.New("the isDeleted field cannot be set by the client")
	ErrInvalidSlotStatus  = errors.New("invalid status value, accepted values are 'taken' or 'missed'")
	ErrEmailAlreadyExists = errors.New("email is already in use")
	ErrPhoneAlreadyExists = errors.New("phone number is already in use")
	ErrDuplicateName      = errors.New("an entry with this name already exists")
	ErrDefaultCatalogItem = errors.New("default catalog entries cannot be modified")
	ErrInvalidRating      = errors.New("rating must be between 1 and 5")

	// Infrastructure failure, kept distinct from the validation taxonomy.
	ErrDatabaseError = errors.New("database error")
)
