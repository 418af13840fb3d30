package auth

import (
	"fmt"
	"strings"
	"unicode"

	"gestao/config"
	domainerrors "gestao/internal/domain/errors"
)

// Default password requirements, used when the config omits a policy.
const (
	defaultMinPasswordLength = 8
	defaultMaxPasswordLength = 128
)

// PasswordPolicy validates plaintext passwords against the configured
// strength requirements before they are hashed.
type PasswordPolicy struct {
	minLength        int
	maxLength        int
	requireUppercase bool
	requireLowercase bool
	requireNumbers   bool
	requireSpecial   bool
}

// NewPasswordPolicy builds a policy from configuration.
func NewPasswordPolicy(cfg *config.Config) *PasswordPolicy {
	policy := &PasswordPolicy{
		minLength:        defaultMinPasswordLength,
		maxLength:        defaultMaxPasswordLength,
		requireUppercase: true,
		requireLowercase: true,
		requireNumbers:   true,
	}

	strength := cfg.PasswordStrength
	if strength == nil {
		return policy
	}

	if strength.MinLength > 0 {
		policy.minLength = strength.MinLength
	}
	if strength.MaxLength > 0 {
		policy.maxLength = strength.MaxLength
	}
	policy.requireUppercase = strength.RequireUppercase
	policy.requireLowercase = strength.RequireLowercase
	policy.requireNumbers = strength.RequireNumbers
	policy.requireSpecial = strength.RequireSpecial

	return policy
}

// Validate checks the password against the policy. Failures are returned as
// ErrPasswordStrength with the unmet requirement in the details; the raw
// password never appears in the error.
func (p *PasswordPolicy) Validate(password string) error {
	var failures []string

	length := len([]rune(password))
	if length < p.minLength {
		failures = append(failures, fmt.Sprintf("mínimo de %d caracteres", p.minLength))
	}
	if length > p.maxLength {
		failures = append(failures, fmt.Sprintf("máximo de %d caracteres", p.maxLength))
	}
	if p.requireUppercase && !containsClass(password, unicode.IsUpper) {
		failures = append(failures, "pelo menos uma letra maiúscula")
	}
	if p.requireLowercase && !containsClass(password, unicode.IsLower) {
		failures = append(failures, "pelo menos uma letra minúscula")
	}
	if p.requireNumbers && !containsClass(password, unicode.IsDigit) {
		failures = append(failures, "pelo menos um número")
	}
	if p.requireSpecial && !containsClass(password, isSpecial) {
		failures = append(failures, "pelo menos um caractere especial")
	}

	if len(failures) > 0 {
		return domainerrors.ErrPasswordStrength.WithDetails(strings.Join(failures, "; "))
	}

	return nil
}

func containsClass(s string, class func(rune) bool) bool {
	for _, r := range s {
		if class(r) {
			return true
		}
	}

	return false
}

func isSpecial(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r) && !unicode.IsSpace(r)
}
