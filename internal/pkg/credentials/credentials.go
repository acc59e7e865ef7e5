package credentials

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

const passwordChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789!@#$"

// GenerateLoginID builds a login identifier from the company code, the
// employee's initials, the year of joining and a zero-padded serial number,
// e.g. "OIJDODJD20240012".
func GenerateLoginID(companyCode, initials string, yearOfJoining, serialNumber int) string {
	return fmt.Sprintf("%s%s%d%04d", companyCode, strings.ToUpper(initials), yearOfJoining, serialNumber)
}

// GenerateTempPassword returns a random password for first login.
func GenerateTempPassword(length int) (string, error) {
	if length <= 0 {
		length = 8
	}

	var b strings.Builder
	max := big.NewInt(int64(len(passwordChars)))
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to generate random password: %w", err)
		}
		b.WriteByte(passwordChars[n.Int64()])
	}

	return b.String(), nil
}
