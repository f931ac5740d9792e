package i18n

import (
	"errors"
	"fmt"
)

var (
	ErrNilAdapter           = errors.New("translation adapter is nil")
	ErrInvalidTranslations  = errors.New("invalid translations")
	ErrFailedToMarshalJSON  = errors.New("failed to marshal translations to JSON")
	ErrJSONParsingCancelled = errors.New("json parsing cancelled")
	ErrFailedToParseJSON    = errors.New("failed to parse JSON content")
	ErrYAMLParsingCancelled = errors.New("yaml parsing cancelled")
	ErrFailedToParseYAML    = errors.New("failed to parse YAML content")
	ErrLoadingCancelled     = errors.New("loading translations cancelled")
	ErrFailedToReadFile     = errors.New("failed to read translation file")
	ErrFailedToParseFile    = errors.New("failed to parse translation file")
	ErrFailedToReadDir      = errors.New("failed to read translation directory")
	ErrNoTranslations       = errors.New("no translation files found")
	ErrUnsupportedFormat    = errors.New("unsupported translation file format")
)

// ErrLanguageNotSupported indicates that the requested language is not available.
type ErrLanguageNotSupported struct {
	Lang string
}

func (e *ErrLanguageNotSupported) Error() string {
	return fmt.Sprintf("language not supported: %s", e.Lang)
}
