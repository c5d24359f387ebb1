package posts

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateDecoding(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		content Optional[string]
		image   Optional[string]
		empty   bool
	}{
		{name: "nothing", body: `{}`, empty: true},
		{name: "content", body: `{"content":"X"}`, content: Some("X")},
		{name: "cleared content", body: `{"content":""}`, content: Some("")},
		{name: "null image", body: `{"image":null}`, image: Optional[string]{Set: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var u Update
			require.NoError(t, json.Unmarshal([]byte(tt.body), &u))
			assert.Equal(t, tt.content, u.Content)
			assert.Equal(t, tt.image, u.Image)
			assert.Equal(t, tt.empty, u.Empty())
		})
	}
}

func TestOptionalMarshal(t *testing.T) {
	b, err := json.Marshal(Update{Content: Some("X")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"content":"X","image":null,"hashtags":null}`, string(b))
}
