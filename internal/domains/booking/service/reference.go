package service

import (
	"fmt"
	"math/rand/v2"
	"time"
)

const (
	referenceAlphabet      = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	referenceSuffixLength  = 4
	defaultReferencePrefix = "BK"
)

// newReference builds "<prefix>-<unix millis>-<4 upper base36>".
func newReference(prefix string, now time.Time) string {
	if prefix == "" {
		prefix = defaultReferencePrefix
	}

	suffix := make([]byte, referenceSuffixLength)
	for i := range suffix {
		suffix[i] = referenceAlphabet[rand.IntN(len(referenceAlphabet))] //nolint:gosec
	}

	return fmt.Sprintf("%s-%d-%s", prefix, now.UnixMilli(), suffix)
}
