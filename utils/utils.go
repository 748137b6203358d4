package utils

import (
	"math/rand"
	"time"
)

const verificationCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateVerificationCode generates a 6-character uppercase
// alphanumeric verification code
func GenerateVerificationCode() string {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	code := make([]byte, 6)
	for i := range code {
		code[i] = verificationCharset[rng.Intn(len(verificationCharset))]
	}
	return string(code)
}
