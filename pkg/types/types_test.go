package types

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Caneca", "caneca"},
		{"  CANECA  ", "caneca"},
		{"Aluguel do Galpão", "aluguel do galpão"},
		{"   ", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeName(tt.in))
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr error
	}{
		{"file backend", Config{Backend: BackendFile}, nil},
		{"sqlite backend", Config{Backend: BackendSQLite}, nil},
		{"empty backend", Config{}, ErrBackendEmpty},
		{"unknown backend", Config{Backend: "redis"}, ErrBackendUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestDefaultSchedulerConfig(t *testing.T) {
	cfg := DefaultSchedulerConfig()
	assert.False(t, cfg.AutoBackupEnabled)
	assert.Equal(t, 7, cfg.IntervalDays)
	assert.Nil(t, cfg.LastBackupAt)
	assert.Equal(t, 5, cfg.MaxRetained)
}

func TestErrorCategories(t *testing.T) {
	validation := []error{
		ErrBlankName, ErrDuplicateName, ErrInvalidPrice, ErrInvalidStock,
		ErrInvalidQuantity, ErrInvalidAmount, ErrInsufficientStock,
		ErrEmptySale, ErrInvalidInterval, ErrInvalidRetention, ErrCorruptBackup,
	}
	for _, err := range validation {
		assert.ErrorIs(t, err, ErrValidation, err.Error())
		assert.False(t, errors.Is(err, ErrNotFound), err.Error())
	}

	notFound := []error{
		ErrProductNotFound, ErrSaleNotFound, ErrExpenseTypeNotFound,
		ErrExpenseNotFound, ErrBackupNotFound,
	}
	for _, err := range notFound {
		assert.ErrorIs(t, err, ErrNotFound, err.Error())
		assert.False(t, errors.Is(err, ErrValidation), err.Error())
	}
}
