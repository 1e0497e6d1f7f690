package numbering

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var (
	receiptRe = regexp.MustCompile(`^SM-\d{14}-[0-9A-F]{6}$`)
	certRe    = regexp.MustCompile(`^CERT-\d{8}-[0-9A-F]{6}$`)
)

func TestReceiptNumber(t *testing.T) {
	now := time.Date(2024, 3, 5, 14, 7, 9, 0, time.UTC)
	n := ReceiptNumber(now)
	assert.Regexp(t, receiptRe, n)
	assert.Contains(t, n, "SM-20240305140709-")
}

func TestCertificateNumber(t *testing.T) {
	n := CertificateNumber(time.Date(2024, 12, 31, 23, 0, 0, 0, time.UTC))
	assert.Regexp(t, certRe, n)
	assert.Contains(t, n, "CERT-20241231-")
}

func TestMemberNumber(t *testing.T) {
	assert.Equal(t, "SM000001", MemberNumber(1))
	assert.Equal(t, "SM000042", MemberNumber(42))
	assert.Equal(t, "SM1234567", MemberNumber(1234567))
}

func TestSuffixUnique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		seen[ReceiptNumber(time.Now())] = true
	}
	assert.Greater(t, len(seen), 45)
}
