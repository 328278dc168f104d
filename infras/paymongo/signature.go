package paymongo

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"
	"time"
)

const (
	signatureTimestampKey = "t"
	signatureTestKey      = "te"
	signatureLiveKey      = "li"
)

type signatureHeader struct {
	timestamp int64
	test      string
	live      string
}

func parseSignatureHeader(header string) (signatureHeader, bool) {
	var sig signatureHeader

	hasTimestamp := false

	for part := range strings.SplitSeq(header, ",") {
		key, value, found := strings.Cut(strings.TrimSpace(part), "=")
		if !found {
			continue
		}

		switch key {
		case signatureTimestampKey:
			ts, err := strconv.ParseInt(value, 10, 64)
			if err != nil {
				return sig, false
			}

			sig.timestamp = ts
			hasTimestamp = true
		case signatureTestKey:
			sig.test = value
		case signatureLiveKey:
			sig.live = value
		}
	}

	return sig, hasTimestamp
}

// Sign returns the hex HMAC-SHA256 of "<timestamp>.<payload>" under secret.
func Sign(secret string, timestamp int64, payload []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(strconv.FormatInt(timestamp, 10)))
	mac.Write([]byte("."))
	mac.Write(payload)

	return hex.EncodeToString(mac.Sum(nil))
}

// verifySignature checks header against payload. The live signature is used in live
// mode and the test signature otherwise. A zero tolerance disables the timestamp check.
func verifySignature(secret string, liveMode bool, tolerance time.Duration, now time.Time, payload []byte, header string) error {
	if strings.TrimSpace(header) == "" {
		return ErrMissingSignature
	}

	if secret == "" {
		return ErrNotConfigured
	}

	sig, ok := parseSignatureHeader(header)
	if !ok {
		return ErrInvalidSignature
	}

	candidate := sig.test
	if liveMode {
		candidate = sig.live
	}

	if candidate == "" {
		return ErrInvalidSignature
	}

	expected := Sign(secret, sig.timestamp, payload)
	if !hmac.Equal([]byte(expected), []byte(strings.ToLower(candidate))) {
		return ErrInvalidSignature
	}

	if tolerance > 0 {
		age := now.Sub(time.Unix(sig.timestamp, 0))
		if age > tolerance || age < -tolerance {
			return ErrSignatureExpired
		}
	}

	return nil
}
