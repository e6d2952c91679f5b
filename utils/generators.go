package utils

import (
	"math/rand"

	"github.com/google/uuid"
)

// GenerateID generates a new entity identifier
func GenerateID() string {
	return uuid.NewString()
}

// GenerateTransactionID generates a reference for a payment transaction
func GenerateTransactionID() string {
	return TransactionIDPrefix + generateRandomString(TransactionIDCharset, TransactionIDLength)
}

// generateRandomString generates a random string with given charset and length
func generateRandomString(charset string, length int) string {
	result := make([]byte, length)
	for i := range result {
		result[i] = charset[rand.Intn(len(charset))]
	}
	return string(result)
}
