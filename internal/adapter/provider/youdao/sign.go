package youdao

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"time"
	"unicode/utf16"
)

// truncateLimit is the input length above which the provider expects the
// shortened form in the signature.
const truncateLimit = 20

// Signature is the per-request authentication data required by the provider.
type Signature struct {
	Salt    string
	CurTime string
	Digest  string
}

// Truncate returns the provider's canonical form of q for signing: q itself
// when it has at most 20 characters, otherwise the first 10 characters, the
// decimal character count and the last 10 characters. Characters are
// UTF-16 code units, so a code point outside the BMP counts twice and a
// surrogate pair split at a cut becomes U+FFFD.
func Truncate(q string) string {
	u := utf16.Encode([]rune(q))
	n := len(u)
	if n <= truncateLimit {
		return q
	}
	return string(utf16.Decode(u[:10])) + strconv.Itoa(n) + string(utf16.Decode(u[n-10:]))
}

// Sign returns the lowercase hex SHA-256 digest of
// appKey + Truncate(q) + salt + curtime + appSecret.
func Sign(appKey, q, salt, curtime, appSecret string) string {
	sum := sha256.Sum256([]byte(appKey + Truncate(q) + salt + curtime + appSecret))
	return hex.EncodeToString(sum[:])
}

// NewSignature derives salt and curtime from now and signs q with them.
// Salt is the Unix time in milliseconds, curtime the Unix time in seconds
// rounded to the nearest second.
func NewSignature(appKey, appSecret, q string, now time.Time) Signature {
	ms := now.UnixMilli()
	salt := strconv.FormatInt(ms, 10)
	curtime := strconv.FormatInt((ms+500)/1000, 10)
	return Signature{
		Salt:    salt,
		CurTime: curtime,
		Digest:  Sign(appKey, q, salt, curtime, appSecret),
	}
}
