package service

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/communication-ltd/portal/internal/config"
	"github.com/communication-ltd/portal/internal/logger"
	"github.com/communication-ltd/portal/models"
)

// commonPasswords is the fixed denylist of passwords that satisfy every
// complexity rule but are still rejected because they appear constantly
// in real-world breach dumps. Matching is case-insensitive.
var commonPasswords = []string{
	"Password123!",
	"Welcome123@",
	"Admin2024!",
	"Qwerty123$",
	"LetMeIn123!",
	"Summer2024#",
	"IloveYou1!",
	"Dragon123$",
	"Football7@",
	"Monkey123!",
}

// passwordPolicyService is the concrete implementation of
// PasswordPolicyService. It is pure: Validate has no side effects and
// touches no storage.
type passwordPolicyService struct {
	// minLength is the minimum accepted password length in characters.
	minLength int

	// logger is the structured logger used for diagnostic output.
	logger *logger.Logger
}

// NewPasswordPolicyService constructs a PasswordPolicyService with the
// minimum length from cfg.
func NewPasswordPolicyService(cfg config.Auth, logger *logger.Logger) PasswordPolicyService {
	return &passwordPolicyService{
		minLength: cfg.PasswordMinLength,
		logger:    logger,
	}
}

// Validate checks the candidate password against every policy rule.
//
// Rules run in a fixed order and short-circuit on the first failure:
// length, uppercase, lowercase, digit, special character (anything not
// alphanumeric), denylist. The returned Message names exactly the rule
// that failed and is safe to show to the end user.
func (p *passwordPolicyService) Validate(password string) models.PolicyResult {
	// length is measured in characters, not bytes
	if utf8.RuneCountInString(password) < p.minLength {
		return models.PolicyResult{
			Valid:   false,
			Message: fmt.Sprintf("Password must be at least %d characters long", p.minLength),
		}
	}

	if !strings.ContainsFunc(password, unicode.IsUpper) {
		return models.PolicyResult{
			Valid:   false,
			Message: "Password must contain at least one uppercase letter",
		}
	}

	if !strings.ContainsFunc(password, unicode.IsLower) {
		return models.PolicyResult{
			Valid:   false,
			Message: "Password must contain at least one lowercase letter",
		}
	}

	if !strings.ContainsFunc(password, unicode.IsDigit) {
		return models.PolicyResult{
			Valid:   false,
			Message: "Password must contain at least one number",
		}
	}

	if !strings.ContainsFunc(password, isSpecial) {
		return models.PolicyResult{
			Valid:   false,
			Message: "Password must contain at least one special character",
		}
	}

	for _, common := range commonPasswords {
		if strings.EqualFold(password, common) {
			return models.PolicyResult{
				Valid:   false,
				Message: "Password is too common and easily guessable",
			}
		}
	}

	return models.PolicyResult{
		Valid:   true,
		Message: "Password is valid",
	}
}

// isSpecial reports whether r counts as a special character: anything
// that is not a letter or a digit.
func isSpecial(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}
