// Package puzzle небольшие задачи на строки и числа
package puzzle

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/juju/errors"
	"github.com/samber/lo"
)

var (
	// ErrDivisionByZero деление на ноль
	ErrDivisionByZero = errors.New("деление на ноль")
	// ErrNoValues нет ни одного подходящего значения
	ErrNoValues = errors.New("нет подходящих значений")
	// ErrNoSeparator в выражении нет разделителя между двумя частями
	ErrNoSeparator = errors.New("не найден разделитель")
)

func format2(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// Arithmetic сумма, разность, произведение и частное a и b с двумя знаками после запятой
func Arithmetic(a, b float64) ([]string, error) {
	if b == 0 {
		return nil, errors.Trace(ErrDivisionByZero)
	}
	return []string{format2(a + b), format2(a - b), format2(a * b), format2(a / b)}, nil
}

// MultiplesOf3Or5 среднее и сумма значений, кратных 3 или 5
func MultiplesOf3Or5(values []int) (avg string, sum string, err error) {
	matched := lo.Filter(values, func(v int, _ int) bool {
		return v%3 == 0 || v%5 == 0
	})
	if len(matched) == 0 {
		return "", "", errors.Trace(ErrNoValues)
	}
	total := lo.Sum(matched)
	return format2(float64(total) / float64(len(matched))), format2(float64(total)), nil
}

// ContainsThree есть ли в записи положительного числа цифра 3 (через деление на 10)
func ContainsThree(value int) bool {
	for value > 0 {
		if value%10 == 3 {
			return true
		}
		value /= 10
	}
	return false
}

// ContainsThreeText есть ли в десятичной записи числа цифра 3
func ContainsThreeText(value int) bool {
	return strings.ContainsRune(strconv.Itoa(value), '3')
}

// SwapAroundSeparator меняет местами части выражения вокруг разделителя. Разделителем считается
// последний символ, не являющийся буквой: "szafa_taboret" -> "taboret_szafa"
func SwapAroundSeparator(expression string) (string, error) {
	separator := ""
	for _, c := range expression {
		if !unicode.IsLetter(c) {
			separator = string(c)
		}
	}
	if separator == "" {
		return "", errors.Annotatef(ErrNoSeparator, "%q", expression)
	}
	parts := strings.Split(expression, separator)
	return parts[1] + separator + parts[0], nil
}

// DigitSum сумма цифр неотрицательного числа
func DigitSum(value int) int {
	sum := 0
	for value > 0 {
		sum += value % 10
		value /= 10
	}
	return sum
}

// DigitalRoot повторяет DigitSum, пока не останется одна цифра
func DigitalRoot(value int) int {
	for value > 9 {
		value = DigitSum(value)
	}
	return value
}

// Run серия одинаковых символов
type Run struct {
	Char  rune
	Count int
}

// RunLength разбивает текст на серии одинаковых символов: "aaabbbcca" -> (a,3) (b,3) (c,2) (a,1)
func RunLength(text string) []Run {
	res := make([]Run, 0)
	for _, c := range text {
		if n := len(res); n > 0 && res[n-1].Char == c {
			res[n-1].Count++
			continue
		}
		res = append(res, Run{Char: c, Count: 1})
	}
	return res
}

// Compress запись серий RunLength подряд: "aaabbbcca" -> "a3b3c2a1"
func Compress(text string) string {
	var sb strings.Builder
	for _, r := range RunLength(text) {
		sb.WriteRune(r.Char)
		sb.WriteString(strconv.Itoa(r.Count))
	}
	return sb.String()
}
