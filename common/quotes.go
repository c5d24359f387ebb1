package common

import "math/rand"

var motivationalQuotes = []string{
	"Your potential is endless. Push yourself to be better every single day.",
	"The only way to do great work is to love what you do. - Steve Jobs",
	"Don't watch the clock; do what it does. Keep going.",
	"Success is not final, failure is not fatal. It is the courage to continue that counts.",
	"Believe you can and you're halfway there. - Theodore Roosevelt",
	"The future belongs to those who believe in the beauty of their dreams.",
	"You are never too old to set another goal or to dream a new dream.",
	"Excellence is not a skill, it's an attitude.",
	"Every expert was once a beginner.",
	"Your limitation is only your imagination. Push beyond.",
}

// RandomQuote picks one of the banner quotes.
func RandomQuote() string {
	return motivationalQuotes[rand.Intn(len(motivationalQuotes))]
}

// Quotes returns a copy of every banner quote.
func Quotes() []string {
	return append([]string(nil), motivationalQuotes...)
}
