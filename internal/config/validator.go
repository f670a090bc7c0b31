package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks field constraints and returns all violations in one error
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%s: %w", ErrMsgInvalidConfig, err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed '%s' (value %v)", fe.Field(), fe.Tag(), fe.Value()))
	}
	return fmt.Errorf("%s: %s", ErrMsgInvalidConfig, strings.Join(msgs, "; "))
}

// Warnings reports settings that are valid but risky
func (c *Config) Warnings() []string {
	var warnings []string

	switch {
	case c.APIKey == "":
		warnings = append(warnings, WarnMsgAdminDisabled)
	case c.APIKey == ExampleAPIKey:
		warnings = append(warnings, WarnMsgExampleAPIKey)
	case len(c.APIKey) < MinAPIKeyLength:
		warnings = append(warnings, WarnMsgShortAPIKey)
	}

	if c.Environment == EnvironmentProduction && slices.Contains(c.AllowedOrigins, "*") {
		warnings = append(warnings, WarnMsgWildcardOrigins)
	}

	return warnings
}
