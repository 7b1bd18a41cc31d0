package puzzle

import (
	"testing"

	"github.com/juju/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArithmetic(t *testing.T) {
	got, err := Arithmetic(7.5, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"9.50", "5.50", "15.00", "3.75"}, got)

	_, err = Arithmetic(1, 0)
	assert.Equal(t, ErrDivisionByZero, errors.Cause(err))
}

func TestMultiplesOf3Or5(t *testing.T) {
	avg, sum, err := MultiplesOf3Or5([]int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10})
	require.NoError(t, err)
	assert.Equal(t, "6.60", avg)
	assert.Equal(t, "33.00", sum)

	_, _, err = MultiplesOf3Or5([]int{1, 2, 4})
	assert.Equal(t, ErrNoValues, errors.Cause(err))
}

func TestContainsThree(t *testing.T) {
	tests := []struct {
		value int
		want  bool
		text  bool
	}{
		{value: 3, want: true, text: true},
		{value: 1234, want: true, text: true},
		{value: 1245, want: false, text: false},
		{value: 0, want: false, text: false},
		{value: -3, want: false, text: true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ContainsThree(tt.value), "ContainsThree(%d)", tt.value)
		assert.Equal(t, tt.text, ContainsThreeText(tt.value), "ContainsThreeText(%d)", tt.value)
	}
}

func TestSwapAroundSeparator(t *testing.T) {
	tests := []struct {
		name    string
		expr    string
		want    string
		wantErr bool
	}{
		{name: "подчёркивание", expr: "szafa_taboret", want: "taboret_szafa"},
		{name: "точка", expr: "pijany.mistrz", want: "mistrz.pijany"},
		{name: "без разделителя", expr: "szafa", wantErr: true},
		{name: "пустая строка", expr: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SwapAroundSeparator(tt.expr)
			if tt.wantErr {
				assert.Equal(t, ErrNoSeparator, errors.Cause(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDigitalRoot(t *testing.T) {
	assert.Equal(t, 6, DigitSum(123))
	assert.Equal(t, 0, DigitSum(0))
	assert.Equal(t, 6, DigitalRoot(12345))
	assert.Equal(t, 9, DigitalRoot(99999))
	assert.Equal(t, 7, DigitalRoot(7))
}

func TestRunLength(t *testing.T) {
	assert.Equal(t, []Run{{'a', 3}, {'b', 3}, {'c', 2}, {'a', 1}}, RunLength("aaabbbcca"))
	assert.Equal(t, "a3b3c2a1", Compress("aaabbbcca"))
	assert.Equal(t, []Run{{'ż', 2}}, RunLength("żż"))
	assert.Empty(t, RunLength(""))
	assert.Equal(t, "", Compress(""))
}
