// Package validation checks user input and configuration before any request
// is sent.
//
// Struct tag validation (go-playground/validator) covers configuration:
//
//	type Config struct {
//	    BaseURL string `mapstructure:"base_url" validate:"required,url"`
//	}
//	err := validation.Validate(cfg)
//
// Programmatic validation covers command arguments:
//
//	err := validation.New().Login("user", user).Repository("repo", repo).Err()
//
// Both report an INVALID_INPUT AppError whose "fields" detail lists every
// failing field.
package validation
