package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	Name   string `conform:"trim" validate:"required"`
	Pesel  string `validate:"pesel"`
	Gender string `validate:"oneof=K M"`
}

func TestValidatePesel(t *testing.T) {
	tests := []struct {
		name    string
		pesel   string
		wantErr bool
	}{
		{name: "корректный", pesel: "92102201347"},
		{name: "короткий", pesel: "9210220134", wantErr: true},
		{name: "длинный", pesel: "921022013470", wantErr: true},
		{name: "буквы", pesel: "ABCDEFGHIJK"},
		{name: "не латиница", pesel: "ŻÓŁĆ1234567"},
		{name: "пустой", pesel: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Get().Validate(&record{Name: "Jan", Pesel: tt.pesel, Gender: "M"})
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateWithConform(t *testing.T) {
	r := record{Name: "  Jan ", Pesel: "92031507772", Gender: "M"}
	require.NoError(t, Get().ValidateWithConform(&r))
	assert.Equal(t, "Jan", r.Name)

	r = record{Name: "   ", Pesel: "92031507772", Gender: "M"}
	assert.Error(t, Get().ValidateWithConform(&r))

	r = record{Name: "Jan", Pesel: "92031507772", Gender: "X"}
	assert.Error(t, Get().ValidateWithConform(&r))
}
