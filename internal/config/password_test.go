package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPasswordConfig(t *testing.T) {
	tests := []struct {
		name       string
		bcryptCost string
		pepper     string
		wantCost   int
		wantErr    bool
	}{
		{
			name:       "default cost",
			bcryptCost: "",
			wantCost:   12,
		},
		{
			name:       "valid cost",
			bcryptCost: "10",
			wantCost:   10,
		},
		{
			name:       "cost too low",
			bcryptCost: "9",
			wantErr:    true,
		},
		{
			name:       "cost too high",
			bcryptCost: "15",
			wantErr:    true,
		},
		{
			name:       "invalid cost",
			bcryptCost: "invalid",
			wantErr:    true,
		},
		{
			name:       "with pepper",
			bcryptCost: "12",
			pepper:     "test-pepper",
			wantCost:   12,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("BCRYPT_COST", tt.bcryptCost)
			t.Setenv("PASSWORD_PEPPER", tt.pepper)

			cfg, err := NewPasswordConfig()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantCost, cfg.BcryptCost)
			assert.Equal(t, tt.pepper, cfg.Pepper)
		})
	}
}

func TestPasswordConfig_HashAndVerify(t *testing.T) {
	cfg := &PasswordConfig{BcryptCost: 10}

	hash, err := cfg.HashPassword("recruiter-secret")
	require.NoError(t, err)
	assert.NotEqual(t, "recruiter-secret", hash)

	assert.True(t, cfg.VerifyPassword("recruiter-secret", hash))
	assert.False(t, cfg.VerifyPassword("wrong-password", hash))
}

func TestPasswordConfig_SaltUniqueness(t *testing.T) {
	cfg := &PasswordConfig{BcryptCost: 10}

	hash1, err := cfg.HashPassword("recruiter-secret")
	require.NoError(t, err)
	hash2, err := cfg.HashPassword("recruiter-secret")
	require.NoError(t, err)

	// bcrypt salts each hash, so the same password never hashes identically
	assert.NotEqual(t, hash1, hash2)
	assert.True(t, cfg.VerifyPassword("recruiter-secret", hash1))
	assert.True(t, cfg.VerifyPassword("recruiter-secret", hash2))
}

func TestPasswordConfig_Pepper(t *testing.T) {
	peppered := &PasswordConfig{BcryptCost: 10, Pepper: "global-secret"}
	plain := &PasswordConfig{BcryptCost: 10}

	hash, err := peppered.HashPassword("recruiter-secret")
	require.NoError(t, err)

	assert.True(t, peppered.VerifyPassword("recruiter-secret", hash))
	// Without the pepper the same password must not verify
	assert.False(t, plain.VerifyPassword("recruiter-secret", hash))
}
