package utils

import (
	"afiatrack-service/internal/pkg/constvars"
	"crypto/rand"
	"math/big"
	"strings"

	"github.com/google/uuid"
)

func GenerateOTP(otpLength int) (string, error) {
	const otpDigits = "0123456789"
	max := big.NewInt(int64(len(otpDigits)))

	otp := make([]byte, otpLength)
	for i := range otp {
		num, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		otp[i] = otpDigits[num.Int64()]
	}

	return string(otp), nil
}

func GenerateRecordID() string {
	return uuid.NewString()
}

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + strings.ReplaceAll(uuid.NewString(), "-", "")
}
