package pagination

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDecodeToken(t *testing.T) {
	entryDate := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	createdAt := time.Date(2025, 3, 10, 9, 15, 42, 987654321, time.UTC)

	token := EncodeToken(entryDate, createdAt)
	assert.NotEmpty(t, token, "Token should not be empty")

	decodedEntryDate, decodedCreatedAt, err := DecodeToken(token)
	assert.NoError(t, err, "Decoding should not return an error")
	assert.True(t, entryDate.Equal(decodedEntryDate), "Entry date should match after decode")
	assert.True(t, createdAt.Equal(decodedCreatedAt), "Created at time should match after decode")
}

func TestDecodeToken_Invalid(t *testing.T) {
	testCases := []struct {
		name  string
		token string
	}{
		{"not base64", "!!!not-base64!!!"},
		{"missing separator", "MjAyNS0wMy0xMFQwMDowMDowMFo="}, // base64 of a single date
		{"garbage dates", "Z2FyYmFnZXxnYXJiYWdl"},             // base64 of "garbage|garbage"
		{"empty token", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := DecodeToken(tc.token)
			assert.Error(t, err)
		})
	}
}
