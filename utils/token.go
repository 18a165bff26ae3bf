package utils

import (
	"math/rand"
)

const tokenCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateRandomToken returns an uppercase alphanumeric string, used for
// order and transaction number suffixes. Not cryptographically random; these
// are display references, not secrets.
func GenerateRandomToken(length int) string {
	token := make([]byte, length)
	for i := range token {
		token[i] = tokenCharset[rand.Intn(len(tokenCharset))]
	}
	return string(token)
}
