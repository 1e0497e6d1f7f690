package numbering

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ReceiptNumber returns SM-<YYYYMMDDhhmmss>-<6 uppercase hex>.
func ReceiptNumber(now time.Time) string {
	return fmt.Sprintf("SM-%s-%s", now.UTC().Format("20060102150405"), suffix())
}

// CertificateNumber returns CERT-<YYYYMMDD>-<6 uppercase hex>.
func CertificateNumber(now time.Time) string {
	return fmt.Sprintf("CERT-%s-%s", now.UTC().Format("20060102"), suffix())
}

// MemberNumber formats a counter value as SM000001.
func MemberNumber(seq int64) string {
	return fmt.Sprintf("SM%06d", seq)
}

func suffix() string {
	return strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:6])
}
