package auth

import (
	"testing"

	"gestao/config"
	domainerrors "gestao/internal/domain/errors"

	"github.com/stretchr/testify/assert"
)

func strictPolicy() *PasswordPolicy {
	return NewPasswordPolicy(&config.Config{
		PasswordStrength: &config.PasswordStrengthConfig{
			MinLength:        8,
			MaxLength:        64,
			RequireUppercase: true,
			RequireLowercase: true,
			RequireNumbers:   true,
			RequireSpecial:   true,
		},
	})
}

func TestPasswordPolicy_ValidPasswords(t *testing.T) {
	policy := strictPolicy()

	validPasswords := []string{
		"SenhaForte123!",
		"Minha@Senha1",
		"Complexa#2024",
	}

	for _, password := range validPasswords {
		assert.NoError(t, policy.Validate(password), "expected valid password: %s", password)
	}
}

func TestPasswordPolicy_RejectsWeakPasswords(t *testing.T) {
	policy := strictPolicy()

	tests := []struct {
		name     string
		password string
	}{
		{"too short", "Ab1!"},
		{"no uppercase", "senhaforte123!"},
		{"no lowercase", "SENHAFORTE123!"},
		{"no numbers", "SenhaForte!"},
		{"no special characters", "SenhaForte123"},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := policy.Validate(tt.password)
			assert.Error(t, err)
			assert.ErrorContains(t, err, domainerrors.ErrPasswordStrength.Message())
		})
	}
}

func TestPasswordPolicy_UnicodeCountsAsCharacters(t *testing.T) {
	policy := strictPolicy()

	assert.NoError(t, policy.Validate("Pássaro#123"))
}

func TestPasswordPolicy_DefaultsWhenUnconfigured(t *testing.T) {
	policy := NewPasswordPolicy(&config.Config{})

	// Defaults do not require special characters.
	assert.NoError(t, policy.Validate("SenhaForte123"))
	assert.Error(t, policy.Validate("curta1A"))
}
