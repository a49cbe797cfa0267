package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeEmail(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{
			name:  "plain address passes through",
			input: "student@atmiya.edu",
			want:  "student@atmiya.edu",
		},
		{
			name:  "uppercase is normalized",
			input: "Student@Atmiya.EDU",
			want:  "student@atmiya.edu",
		},
		{
			name:  "surrounding whitespace is trimmed",
			input: "  student@atmiya.edu \n",
			want:  "student@atmiya.edu",
		},
		{
			name:  "local part symbols allowed",
			input: "first.last+tag_99%x-y@sub.domain.co",
			want:  "first.last+tag_99%x-y@sub.domain.co",
		},
		{
			name:  "shortest plausible address",
			input: "a@b.co",
			want:  "a@b.co",
		},
		{
			name:    "empty",
			input:   "",
			wantErr: true,
		},
		{
			name:    "too short",
			input:   "a@b",
			wantErr: true,
		},
		{
			name:    "too long",
			input:   strings.Repeat("a", 250) + "@b.co",
			wantErr: true,
		},
		{
			name:    "missing at sign",
			input:   "student.atmiya.edu",
			wantErr: true,
		},
		{
			name:    "missing tld",
			input:   "student@atmiya",
			wantErr: true,
		},
		{
			name:    "single letter tld",
			input:   "student@atmiya.e",
			wantErr: true,
		},
		{
			name:    "numeric tld",
			input:   "student@atmiya.123",
			wantErr: true,
		},
		{
			name:    "spaces inside",
			input:   "stu dent@atmiya.edu",
			wantErr: true,
		},
		{
			name:    "disposable domain blocked",
			input:   "someone@mailinator.com",
			wantErr: true,
		},
		{
			name:    "disposable domain blocked regardless of case",
			input:   "Someone@TempMail.com",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SanitizeEmail(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidEmail)
				assert.Empty(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
