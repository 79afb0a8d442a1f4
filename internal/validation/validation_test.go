package validation_test

import (
	"strings"
	"testing"

	"github.com/kprsnt/brandscore/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateBrandInput(t *testing.T) {
	tests := []struct {
		name         string
		brand        string
		category     string
		wantBrand    string
		wantCategory string
		wantErr      error
	}{
		{
			name:         "simple brand",
			brand:        "Acme",
			wantBrand:    "Acme",
			wantCategory: "general",
		},
		{
			name:         "explicit category",
			brand:        "Acme",
			category:     "technology",
			wantBrand:    "Acme",
			wantCategory: "technology",
		},
		{
			name:         "trims whitespace",
			brand:        "  Acme Corp  ",
			wantBrand:    "Acme Corp",
			wantCategory: "general",
		},
		{
			name:         "allowed punctuation",
			brand:        "O'Reilly & Sons-2.0",
			wantBrand:    "O'Reilly & Sons-2.0",
			wantCategory: "general",
		},
		{
			name:    "empty brand",
			brand:   "",
			wantErr: validation.ErrBrandRequired,
		},
		{
			name:    "whitespace only",
			brand:   "   ",
			wantErr: validation.ErrBrandRequired,
		},
		{
			name:    "too long",
			brand:   strings.Repeat("a", 101),
			wantErr: validation.ErrBrandTooLong,
		},
		{
			name:    "invalid characters",
			brand:   "Acme<script>",
			wantErr: validation.ErrBrandCharset,
		},
		{
			name:    "unicode rejected",
			brand:   "Acmé",
			wantErr: validation.ErrBrandCharset,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input, err := validation.ValidateBrandInput(tt.brand, tt.category)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantBrand, input.Brand)
			assert.Equal(t, tt.wantCategory, input.Category)
		})
	}
}

func TestCategories_GeneralIsFirst(t *testing.T) {
	require.NotEmpty(t, validation.Categories)
	assert.Equal(t, "general", validation.Categories[0].Value)
}
