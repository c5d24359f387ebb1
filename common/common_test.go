package common

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetIPAddr(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	r.RemoteAddr = "10.0.0.1:5000"
	assert.Equal(t, "10.0.0.1:5000", GetIPAddr(r))

	r.Header.Set("X-Forwarded-For", "203.0.113.7")
	assert.Equal(t, "203.0.113.7", GetIPAddr(r))
}

func TestRandomString(t *testing.T) {
	a := RandomString(32)
	b := RandomString(32)
	assert.Len(t, a, 32)
	assert.NotEqual(t, a, b)
	for _, c := range a {
		assert.Contains(t, letterBytes, string(c))
	}
}

func TestInitials(t *testing.T) {
	assert.Equal(t, "SJ", Initials("Sarah Johnson"))
	assert.Equal(t, "MV", Initials("mary van dyke"))
	assert.Equal(t, "E", Initials("Emma"))
	assert.Equal(t, "", Initials(""))
}

func TestTimeAgo(t *testing.T) {
	now := time.Date(2024, 3, 10, 15, 0, 0, 0, time.UTC)
	tests := map[string]string{
		"2024-03-10T14:35:00.000Z": "25m ago",
		"2024-03-10T10:00:00.000Z": "5h ago",
		"2024-03-08T14:00:00.000Z": "2d ago",
		"yesterday":                "",
	}
	for ts, want := range tests {
		assert.Equal(t, want, TimeAgo(ts, now), ts)
	}
}

func TestPostedLabel(t *testing.T) {
	now := time.Date(2024, 3, 10, 15, 0, 0, 0, time.UTC)
	assert.Equal(t, "Today", PostedLabel("2024-03-10T01:00:00.000Z", now))
	assert.Equal(t, "Yesterday", PostedLabel("2024-03-09T15:00:00.000Z", now))
	assert.Equal(t, "3 days ago", PostedLabel("2024-03-07T10:00:00.000Z", now))
}

func TestRandomQuote(t *testing.T) {
	assert.Contains(t, Quotes(), RandomQuote())
}
