// Package cedula validates Ecuadorian national identity numbers (cédula de identidad).
//
// A valid number has exactly ten ASCII digits: a two-digit province code in 01..24, a third
// digit below 6 (natural persons) and a Módulo-10 check digit in the last position.
package cedula

import (
	"errors"
	"strconv"
)

const (
	length       = 10
	minProvince  = 1
	maxProvince  = 24
	maxThirdDig  = 5
	checkDigitAt = 9
)

var ErrInvalid = errors.New("invalid cédula")

var coefficients = [checkDigitAt]int{2, 1, 2, 1, 2, 1, 2, 1, 2}

type Number struct {
	value string
}

// Parse returns ErrInvalid for anything IsValid rejects.
func Parse(s string) (Number, error) {
	if !IsValid(s) {
		return Number{}, ErrInvalid
	}
	return Number{value: s}, nil
}

func (n Number) String() string {
	return n.value
}

// Province is the two-digit issuing province code (1..24).
func (n Number) Province() int {
	if n.value == "" {
		return 0
	}
	return digit(n.value[0])*10 + digit(n.value[1])
}

// IsValid never panics; malformed input of any shape is reported as invalid.
func IsValid(s string) (valid bool) {
	defer func() {
		if r := recover(); r != nil {
			valid = false
		}
	}()

	if len(s) != length || !allDigits(s) {
		return false
	}

	province, err := strconv.Atoi(s[:2])
	if err != nil || province < minProvince || province > maxProvince {
		return false
	}
	if digit(s[2]) > maxThirdDig {
		return false
	}

	return checkDigit(s) == digit(s[checkDigitAt])
}

func checkDigit(s string) int {
	sum := 0
	for i, c := range coefficients {
		p := digit(s[i]) * c
		if p >= 10 {
			p -= 9
		}
		sum += p
	}
	if sum%10 == 0 {
		return 0
	}
	return 10 - sum%10
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func digit(b byte) int {
	return int(b - '0')
}
