package common

import (
	"crypto/rand"
	"net/http"
	"strings"
)

const letterBytes = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// GetIPAddr returns the client address, preferring X-Forwarded-For.
func GetIPAddr(r *http.Request) string {
	headerIP := r.Header.Get("X-Forwarded-For")
	if headerIP == "" {
		return r.RemoteAddr
	}
	return headerIP
}

// RandomString returns n letters drawn from crypto/rand. It is used for session tokens.
func RandomString(n int) string {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	for i := range b {
		b[i] = letterBytes[int(b[i])%len(letterBytes)]
	}
	return string(b)
}

// Initials returns up to two upper-case initials of a display name.
func Initials(name string) string {
	var b strings.Builder
	for _, part := range strings.Split(name, " ") {
		if part == "" {
			continue
		}
		r := []rune(part)
		b.WriteString(strings.ToUpper(string(r[0])))
		if b.Len() >= 2 {
			break
		}
	}
	out := []rune(b.String())
	if len(out) > 2 {
		out = out[:2]
	}
	return string(out)
}
