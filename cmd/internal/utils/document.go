package utils

const (
	CPFLength  = 11
	CNPJLength = 14
)

var (
	// RFB weights for the CPF verifying digits
	cpfWeights1 = []int{10, 9, 8, 7, 6, 5, 4, 3, 2}
	cpfWeights2 = []int{11, 10, 9, 8, 7, 6, 5, 4, 3, 2}

	// RFB weights for the CNPJ verifying digits
	cnpjWeights1 = []int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	cnpjWeights2 = []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
)

// IsTaxIDValid reports whether raw is a valid CPF (11 digits) or CNPJ (14 digits).
// Every non-digit character is stripped before checking, so "512.342.040-10"
// and "51234204010" yield the same result.
func IsTaxIDValid(raw string) bool {
	digits := OnlyDigits(raw)
	// Reject known invalid patterns that trick the math algorithm
	if hasAllSameDigits(digits) {
		return false
	}

	switch len(digits) {
	case CPFLength:
		return validateDigits(digits, cpfWeights1, cpfWeights2)
	case CNPJLength:
		return validateDigits(digits, cnpjWeights1, cnpjWeights2)
	default:
		return false
	}
}

// IsCPFValid expects an unformatted, 11 digits long CPF.
func IsCPFValid(cpf string) bool {
	if len(cpf) != CPFLength || !IsOnlyNumbers(cpf) || hasAllSameDigits(cpf) {
		return false
	}
	return validateDigits(cpf, cpfWeights1, cpfWeights2)
}

// IsCNPJValid expects an unformatted, 14 digits long CNPJ.
func IsCNPJValid(cnpj string) bool {
	if len(cnpj) != CNPJLength || !IsOnlyNumbers(cnpj) || hasAllSameDigits(cnpj) {
		return false
	}
	return validateDigits(cnpj, cnpjWeights1, cnpjWeights2)
}

// OnlyDigits drops every character that is not an ASCII digit.
func OnlyDigits(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			out = append(out, s[i])
		}
	}
	return string(out)
}

func IsOnlyNumbers(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func hasAllSameDigits(s string) bool {
	for i := 1; i < len(s); i++ {
		if s[i] != s[0] {
			return false
		}
	}
	return true
}

// validateDigits checks the two trailing verifying digits of doc.
// The first one covers len(weights1) digits, the second one len(weights2).
func validateDigits(doc string, weights1, weights2 []int) bool {
	n1 := len(weights1)
	n2 := len(weights2)

	digit1 := calculateDigit(doc[:n1], weights1)
	digit2 := calculateDigit(doc[:n2], weights2)

	actualDigit1 := int(doc[n1] - '0')
	actualDigit2 := int(doc[n2] - '0')

	return digit1 == actualDigit1 && digit2 == actualDigit2
}

func calculateDigit(base string, weights []int) int {
	sum := 0
	for i, weight := range weights {
		// Convert ASCII character to integer ('5' -> 5)
		digit := int(base[i] - '0')
		sum += digit * weight
	}

	// 11 - r is 10 or 11 exactly when r < 2
	remainder := sum % 11
	if remainder < 2 {
		return 0
	}
	return 11 - remainder
}
