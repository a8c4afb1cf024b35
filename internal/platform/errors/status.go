package errors

import (
	"errors"

	"github.com/netrey95-hub/skills/internal/platform/errors/i18n"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// DefaultLocale is the default locale for error messages.
const DefaultLocale = i18n.BaseLocale

// Process exit codes returned by ExitStatus.
const (
	ExitFailure = 1
	ExitUsage   = 2
)

// HandleError converts domain errors to gRPC status for client responses.
// It formats the user-facing message using the i18n catalog for the given locale,
// defaulting to en-US if the locale is empty.
func HandleError(err error, locale string) error {
	if err == nil {
		return nil
	}

	var appErr *Error
	if errors.As(err, &appErr) {
		catalog := i18n.GetCatalog(localeOrDefault(locale))
		userMsg := catalog.Format(string(appErr.Code), appErr.Metadata)
		return appErr.ToGRPCStatus(catalog.Locale(), userMsg)
	}

	return status.Error(codes.Internal, "an unexpected error occurred")
}

// ExitStatus converts err into a process exit code and the localized message
// for the user. Errors that map to InvalidArgument are usage errors; every
// other failure exits with ExitFailure.
func ExitStatus(err error, locale string) (int, string) {
	if err == nil {
		return 0, ""
	}

	st := status.Convert(HandleError(err, locale))
	message := UserMessage(err, locale)
	for _, detail := range st.Details() {
		if localized, ok := detail.(*errdetails.LocalizedMessage); ok {
			message = localized.GetMessage()
		}
	}

	if st.Code() == codes.InvalidArgument {
		return ExitUsage, message
	}
	return ExitFailure, message
}

// UserMessage renders the localized message for err.
// Errors without a domain code render as the unknown-error message.
func UserMessage(err error, locale string) string {
	if err == nil {
		return ""
	}
	catalog := i18n.GetCatalog(localeOrDefault(locale))
	return catalog.Format(string(GetCode(err)), GetMetadata(err))
}

// GetCode extracts the error code from any error.
// Returns CodeUnknown if the error is not a domain error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeUnknown
}

// IsCode checks if the error has the specified code.
func IsCode(err error, code Code) bool {
	return GetCode(err) == code
}

// GetMetadata extracts metadata from an error if present.
// Returns nil if the error is not a domain error or has no metadata.
func GetMetadata(err error) map[string]string {
	var e *Error
	if errors.As(err, &e) {
		return e.Metadata
	}
	return nil
}

func localeOrDefault(locale string) string {
	if locale == "" {
		return DefaultLocale
	}
	return locale
}
