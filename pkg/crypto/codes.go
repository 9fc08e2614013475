package crypto

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"regexp"
)

const (
	// RegistrationCodeLength is the length of merchant registration codes
	RegistrationCodeLength = 6
	// RewardCodeLength is the length of reward redemption codes
	RewardCodeLength = 12

	codeCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

var registrationCodePattern = regexp.MustCompile(`^[A-Z0-9]{6}$`)

// GenerateShortCode generates a random uppercase alphanumeric code of the
// given length
func GenerateShortCode(length int) (string, error) {
	out := make([]byte, length)
	max := big.NewInt(int64(len(codeCharset)))
	for i := range out {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to generate short code: %w", err)
		}
		out[i] = codeCharset[n.Int64()]
	}
	return string(out), nil
}

// GenerateRegistrationCode generates a merchant registration code
func GenerateRegistrationCode() (string, error) {
	return GenerateShortCode(RegistrationCodeLength)
}

// GenerateRewardCode generates a reward redemption code
func GenerateRewardCode() (string, error) {
	return GenerateShortCode(RewardCodeLength)
}

// ValidRegistrationCode reports whether s looks like a registration code
func ValidRegistrationCode(s string) bool {
	return registrationCodePattern.MatchString(s)
}
