// Package checksum implements the weighted modulo-10 check digit used by
// the EAN/UPC family of retail barcode symbologies.
//
// The check digit is a pure function of the numeric payload: digits at
// even (0-based) positions are weighted 1, digits at odd positions are
// weighted 3, and the check digit is whatever brings the weighted sum up
// to the next multiple of ten.
//
//	digit, err := checksum.Digit("123456789012")
//	// digit == "8"
package checksum

import "fmt"

// Digit returns the EAN/UPC check digit for a string of decimal digits,
// as a one-character string.
//
// Any non-empty string of decimal digits is accepted; length is not
// validated because the symbology collaborator owns payload validity.
// Empty input or non-digit characters return an error.
func Digit(number string) (string, error) {
	if number == "" {
		return "", fmt.Errorf("empty number")
	}

	sumOdd, sumEven := 0, 0
	for i := 0; i < len(number); i++ {
		c := number[i]
		if c < '0' || c > '9' {
			return "", fmt.Errorf("non-digit character %q at position %d", c, i)
		}
		d := int(c - '0')
		if i%2 == 0 {
			sumOdd += d
		} else {
			sumEven += d
		}
	}

	d := (10 - (sumOdd+3*sumEven)%10) % 10
	return string(rune('0' + d)), nil
}
