package ibctesting

import (
	"math/rand"
)

const charset = "abcdefghijklmnopqrstuvwxyz0123456789"

// GenerateString generates a random lower case string of the given length in bytes
func GenerateString(length uint) string {
	bytes := make([]byte, length)
	for i := range bytes {
		bytes[i] = charset[rand.Intn(len(charset))]
	}
	return string(bytes)
}
