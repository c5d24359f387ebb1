package posts

import "encoding/json"

// Optional distinguishes a field that was never given from one given a zero
// or empty value. Decoded from JSON, a present key (even null) marks it Set.
type Optional[T any] struct {
	Value T
	Set   bool
}

// Some returns an Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Value: v, Set: true}
}

func (o *Optional[T]) UnmarshalJSON(b []byte) error {
	o.Set = true
	if string(b) == "null" {
		var zero T
		o.Value = zero
		return nil
	}
	return json.Unmarshal(b, &o.Value)
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Set {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}

// Update lists the post fields to change. Unset fields are left alone;
// an Image or Hashtags set to an empty value clears it.
type Update struct {
	Content  Optional[string]   `json:"content"`
	Image    Optional[string]   `json:"image"`
	Hashtags Optional[[]string] `json:"hashtags"`
}

// Empty reports whether u changes nothing.
func (u Update) Empty() bool {
	return !u.Content.Set && !u.Image.Set && !u.Hashtags.Set
}

// Draft is what a caller supplies to create a post.
type Draft struct {
	Author      string   `json:"author"`
	AuthorEmail string   `json:"authorEmail"`
	Content     string   `json:"content"`
	Image       *string  `json:"image,omitempty"`
	Hashtags    []string `json:"hashtags,omitempty"`
}
