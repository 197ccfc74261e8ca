package model

import (
	"errors"
	"fmt"
)

var (
	// ErrParse marks source text the AST provider could not parse.
	ErrParse = errors.New("not valid / parsable JavaScript")
	// ErrNoExportedFunctions marks a file without exported functions.
	ErrNoExportedFunctions = errors.New("no exported functions")
	// ErrGenerationFormat marks generator output without a usable payload.
	ErrGenerationFormat = errors.New("generator output did not contain a JSON array")
	// ErrGenerationTransport marks a failed request to the generator.
	ErrGenerationTransport = errors.New("generator request failed")
	// ErrEmptySanitizedOutput marks a generation where no case survived.
	ErrEmptySanitizedOutput = errors.New("no generated case survived sanitization")
	// ErrInvalidInput marks an unusable input path. It is the only fatal error.
	ErrInvalidInput = errors.New("invalid input")
)

// SanitizationRejection records why a generated case was dropped.
type SanitizationRejection struct {
	Title  string
	Reason string
}

func (r SanitizationRejection) Error() string {
	return fmt.Sprintf("case %q rejected: %s", r.Title, r.Reason)
}
