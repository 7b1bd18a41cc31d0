package model

import (
	"testing"

	"github.com/juju/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "yyyy-MM-dd", text: "1992-10-22", want: "1992-10-22"},
		{name: "yyyy/MM/dd", text: "1992/10/22", want: "1992-10-22"},
		{name: "MM/dd/yy", text: "10/22/92", want: "1992-10-22"},
		{name: "MM/dd/yy в XXI веке", text: "06/01/19", want: "2019-06-01"},
		{name: "dd-MMM-yy", text: "22-Oct-92", want: "1992-10-22"},
		{name: "dd-MMM-yyyy", text: "01-Jan-2020", want: "2020-01-01"},
		{name: "високосный день", text: "29-Feb-2020", want: "2020-02-29"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Format(DateFormatISO))
		})
	}
}

func TestParseDateInvalid(t *testing.T) {
	for _, text := range []string{"", "1992-13-01", "22.10.1992", "1992-10-22T10:00:00", "30-Feb-2020", "1-Jan-2020"} {
		t.Run(text, func(t *testing.T) {
			_, err := ParseDate(text)
			require.Error(t, err)
			assert.Equal(t, ErrInvalidDateFormat, errors.Cause(err))
		})
	}
}

func TestParseGender(t *testing.T) {
	g, err := ParseGender("K")
	require.NoError(t, err)
	assert.Equal(t, GenderK, g)
	assert.Equal(t, "K", g.String())

	g, err = ParseGender("M")
	require.NoError(t, err)
	assert.Equal(t, GenderM, g)

	_, err = ParseGender("X")
	assert.Equal(t, ErrInvalidGender, errors.Cause(err))
}
