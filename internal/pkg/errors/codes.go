package errors

import "net/http"

var (
	ErrInvalidCoordinates = New(
		"INVALID_COORDINATES",
		"Invalid coordinates provided",
		http.StatusBadRequest,
	)

	ErrInvalidRadius = New(
		"INVALID_RADIUS",
		"Invalid radius value",
		http.StatusBadRequest,
	)

	ErrMissingLocation = New(
		"MISSING_LOCATION",
		"Either coordinates or a city query is required",
		http.StatusBadRequest,
	)

	ErrLocationNotFound = New(
		"LOCATION_NOT_FOUND",
		"Location not found",
		http.StatusNotFound,
	)

	ErrUpstreamUnavailable = New(
		"UPSTREAM_UNAVAILABLE",
		"Upstream service is unavailable",
		http.StatusServiceUnavailable,
	)

	ErrMissingConfig = New(
		"CONFIGURATION_ERROR",
		"Required configuration is missing",
		http.StatusInternalServerError,
	)

	ErrMedicineNotFound = New(
		"MEDICINE_NOT_FOUND",
		"Medicine not found",
		http.StatusNotFound,
	)

	ErrMedicineExists = New(
		"MEDICINE_EXISTS",
		"Medicine for this disease already exists",
		http.StatusConflict,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
