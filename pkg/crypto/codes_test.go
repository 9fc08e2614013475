package crypto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateShortCode(t *testing.T) {
	code, err := GenerateShortCode(8)
	assert.NoError(t, err)
	assert.Len(t, code, 8)
	for _, r := range code {
		assert.True(t, strings.ContainsRune(codeCharset, r), "unexpected rune %q", r)
	}
}

func TestGenerateRegistrationAndRewardCodes(t *testing.T) {
	reg, err := GenerateRegistrationCode()
	assert.NoError(t, err)
	assert.Len(t, reg, RegistrationCodeLength)
	assert.True(t, ValidRegistrationCode(reg))

	reward, err := GenerateRewardCode()
	assert.NoError(t, err)
	assert.Len(t, reward, RewardCodeLength)
}

func TestValidRegistrationCode(t *testing.T) {
	assert.True(t, ValidRegistrationCode("AB12CD"))
	assert.False(t, ValidRegistrationCode("ab12cd"))
	assert.False(t, ValidRegistrationCode("AB12C"))
	assert.False(t, ValidRegistrationCode("AB12CDE"))
	assert.False(t, ValidRegistrationCode("AB-2CD"))
	assert.False(t, ValidRegistrationCode(""))
}
