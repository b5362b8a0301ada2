package services

import (
	"errors"

	"search-funnel/domain/funnel"
)

var (
	ErrNotFound            = errors.New("not found")
	ErrCategoryInUse       = errors.New("category is still used by blogs")
	ErrSlugTaken           = errors.New("slug is already in use")
	ErrSelectionIncomplete = errors.New("exactly 4 related searches must be selected")
	ErrSelectionFull       = funnel.ErrSelectionFull
	ErrInvalidCandidate    = errors.New("candidate index out of range")
	ErrNoWebResultSelected = errors.New("select a web result first")
	ErrDraftNotFound       = errors.New("wizard draft not found or expired")
	ErrGenerationFailed    = errors.New("generation failed")
	ErrGeneratorDisabled   = errors.New("generation service is not configured")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrEmailNotAllowed     = errors.New("account is not allowed to access the console")
)

// PhraseShortfallError is returned when the generator produced fewer than
// six phrases and placeholder padding is switched off.
type PhraseShortfallError struct {
	Got    []string
	Wanted int
}

func (e *PhraseShortfallError) Error() string {
	return "generator returned too few related search phrases"
}

func (e *PhraseShortfallError) Unwrap() error {
	return ErrGenerationFailed
}
