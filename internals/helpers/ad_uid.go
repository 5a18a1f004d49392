package helper

import (
	"crypto/rand"
	"fmt"
	"strings"
	"time"
)

const adUIDAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// GenerateAdUID returns a short public code for an ad, e.g. "AD-M3K7Q2TZ".
// Not a primary key, only a human-shareable reference.
func GenerateAdUID() string {
	buf := make([]byte, 6)
	if _, err := rand.Read(buf); err != nil {
		// extremely unlikely; fall back to a time-derived code
		return fmt.Sprintf("AD-%X", time.Now().UnixNano()&0xFFFFFFFF)
	}
	var sb strings.Builder
	sb.WriteString("AD-")
	for _, b := range buf {
		sb.WriteByte(adUIDAlphabet[int(b)%len(adUIDAlphabet)])
	}
	return sb.String()
}
