package otp

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/amirhossein-jamali/tuition-payment/internal/domain/entity"
)

// Generator produces OTP codes
type Generator interface {
	Generate() (string, error)
}

// RandomGenerator draws codes uniformly from 000000..999999
type RandomGenerator struct{}

var codeSpace = big.NewInt(1_000_000)

// Generate returns a zero-padded six digit code
func (RandomGenerator) Generate() (string, error) {
	n, err := rand.Int(rand.Reader, codeSpace)
	if err != nil {
		return "", fmt.Errorf("failed to read random source: %w", err)
	}
	return fmt.Sprintf("%0*d", entity.OTPLength, n.Int64()), nil
}

// FixedGenerator always returns Code. Useful for local runs and tests.
type FixedGenerator struct {
	Code string
}

// Generate returns the configured code
func (g FixedGenerator) Generate() (string, error) {
	return g.Code, nil
}
