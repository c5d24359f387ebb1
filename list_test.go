package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/connecthub/connecthub-backend/posts"
	"github.com/stretchr/testify/assert"
)

func TestPrintPosts(t *testing.T) {
	now := time.Date(2024, 3, 10, 15, 0, 0, 0, time.UTC)
	var buf bytes.Buffer
	printPosts(&buf, posts.SeedPosts(now)[:1], now)

	out := buf.String()
	assert.Contains(t, out, "[1] Sarah Johnson (sarah@demo.com, 2h ago)")
	assert.Contains(t, out, "#WebDesign #Portfolio #Launch")
	assert.Contains(t, out, "1 likes, 1 comments")
}

func TestPrintJobs(t *testing.T) {
	now := time.Date(2024, 3, 10, 15, 0, 0, 0, time.UTC)
	var buf bytes.Buffer
	printJobs(&buf, posts.SeedJobPostings(now), now)

	out := buf.String()
	assert.Contains(t, out, "[job-1] Senior React Developer at TechCorp, San Francisco, CA (2 days ago)")
	assert.Contains(t, out, "$110K - $140K")
	assert.Contains(t, out, "28 applicants")
}
