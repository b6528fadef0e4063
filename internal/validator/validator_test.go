package validator

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name     string    `validate:"required,notblank,max=5"`
	Rows     int       `validate:"min=1"`
	Seats    []int     `validate:"min=1"`
	ShowTime time.Time `validate:"notpast"`
}

func validSample() sample {
	return sample{
		Name:     "Blue",
		Rows:     1,
		Seats:    []int{1},
		ShowTime: time.Now().Add(time.Hour),
	}
}

func TestValidationMessages(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name   string
		modify func(s *sample)
		field  string
		want   string
	}{
		{
			name:   "blank name",
			modify: func(s *sample) { s.Name = "   " },
			field:  "Name",
			want:   ErrNotBlank,
		},
		{
			name:   "name too long",
			modify: func(s *sample) { s.Name = "Main Stage" },
			field:  "Name",
			want:   fmt.Sprintf(ErrMaxLength, "5"),
		},
		{
			name:   "rows below minimum",
			modify: func(s *sample) { s.Rows = 0 },
			field:  "Rows",
			want:   fmt.Sprintf(ErrMinValue, "1"),
		},
		{
			name:   "empty seat list",
			modify: func(s *sample) { s.Seats = []int{} },
			field:  "Seats",
			want:   fmt.Sprintf(ErrMinItems, "1"),
		},
		{
			name:   "show time in the past",
			modify: func(s *sample) { s.ShowTime = time.Now().Add(-time.Hour) },
			field:  "ShowTime",
			want:   ErrFutureTime,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validSample()
			tt.modify(&s)

			err := v.Struct(s)
			require.Error(t, err)

			var validationErrors validator.ValidationErrors
			require.True(t, errors.As(err, &validationErrors))
			require.Len(t, validationErrors, 1)

			assert.Equal(t, tt.field, validationErrors[0].Field())
			assert.Equal(t, tt.want, ValidationMessage(validationErrors[0]))
		})
	}
}

func TestValidSampleHasNoErrors(t *testing.T) {
	assert.NoError(t, NewValidator().Struct(validSample()))
}
