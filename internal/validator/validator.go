// Package validator provides input validation functions
package validator

import (
	"net/url"
	"slices"
	"strings"

	"git.asdf.cafe/abs3nt/randomwall/internal/constants"
	"git.asdf.cafe/abs3nt/randomwall/internal/errors"
)

// Validator provides validation methods
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateSource validates the --api source name
func (v *Validator) ValidateSource(value string) error {
	if slices.Contains(constants.ValidSources, value) {
		return nil
	}
	return errors.NewValidationError("api", value, "must be one of: "+strings.Join(constants.ValidSources, ", "))
}

// ValidateNotifier validates the notifier backend name
func (v *Validator) ValidateNotifier(value string) error {
	if slices.Contains(constants.ValidNotifiers, value) {
		return nil
	}
	return errors.NewValidationError("notifier", value, "must be one of: "+strings.Join(constants.ValidNotifiers, ", "))
}

// ValidateURL checks that a --save argument is an http(s) URL naming a file
func (v *Validator) ValidateURL(value string) error {
	u, err := url.Parse(value)
	if err != nil {
		return errors.NewValidationError("save", value, err.Error())
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return errors.NewValidationError("save", value, "must be an http or https URL")
	}
	if u.Host == "" {
		return errors.NewValidationError("save", value, "must include a host")
	}
	if u.Path == "" || strings.HasSuffix(u.Path, "/") {
		return errors.NewValidationError("save", value, "must name a file")
	}
	return nil
}

// ValidateURLs validates each URL in turn
func (v *Validator) ValidateURLs(values []string) error {
	for _, value := range values {
		if err := v.ValidateURL(value); err != nil {
			return err
		}
	}
	return nil
}
