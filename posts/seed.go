package posts

import (
	"time"

	"github.com/connecthub/connecthub-backend/db"
)

// isoLayout matches the millisecond ISO-8601 form already persisted by the web client.
const isoLayout = "2006-01-02T15:04:05.000Z07:00"

// FormatTimestamp renders t in UTC as an ISO-8601 string with milliseconds.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(isoLayout)
}

func str(s string) *string { return &s }

// SeedPosts returns the six demo posts, timestamped relative to now.
func SeedPosts(now time.Time) []db.Post {
	ago := func(h int) string { return FormatTimestamp(now.Add(-time.Duration(h) * time.Hour)) }

	return []db.Post{
		{
			ID:          "1",
			Author:      "Sarah Johnson",
			AuthorEmail: "sarah@demo.com",
			Content:     "Just launched my new portfolio website! Check it out and let me know what you think. Really proud of how it turned out.",
			Timestamp:   ago(2),
			Likes:       []string{"mike@demo.com"},
			Comments: []db.Comment{
				{Author: "Mike Chen", Text: "Looks amazing! Love the design.", Timestamp: ago(1)},
			},
			Image:    str("/modern-portfolio-website.png"),
			Hashtags: []string{"WebDesign", "Portfolio", "Launch"},
		},
		{
			ID:          "2",
			Author:      "Mike Chen",
			AuthorEmail: "mike@demo.com",
			Content:     "Who else is excited about the new React features? The compiler looks incredible!",
			Timestamp:   ago(5),
			Likes:       []string{"sarah@demo.com", "emma@demo.com"},
			Comments:    []db.Comment{},
			Image:       str("/react-programming-code-on-computer-screen.jpg"),
			Hashtags:    []string{"React", "JavaScript", "WebDev"},
		},
		{
			ID:          "3",
			Author:      "Emma Davis",
			AuthorEmail: "emma@demo.com",
			Content:     "Just finished a 5k run! Feeling energized and ready to tackle the rest of the day. Remember to take care of your health!",
			Timestamp:   ago(8),
			Likes:       []string{"sarah@demo.com"},
			Comments: []db.Comment{
				{Author: "Sarah Johnson", Text: "Great job! Keep it up!", Timestamp: ago(7)},
			},
			Image:    str("/person-running-outdoors-on-scenic-trail.jpg"),
			Hashtags: []string{"Fitness", "Running", "HealthyLifestyle"},
		},
		{
			ID:          "4",
			Author:      "Sarah Johnson",
			AuthorEmail: "sarah@demo.com",
			Content:     "Beautiful sunset from my balcony today. Nature never fails to amaze me!",
			Timestamp:   ago(12),
			Likes:       []string{"emma@demo.com"},
			Comments:    []db.Comment{},
			Image:       str("/beautiful-sunset-view-from-balcony.jpg"),
			Hashtags:    []string{"Sunset", "Nature", "Photography"},
		},
		{
			ID:          "5",
			Author:      "Mike Chen",
			AuthorEmail: "mike@demo.com",
			Content:     "Coffee and coding - the perfect combination for a productive morning!",
			Timestamp:   ago(18),
			Likes:       []string{"sarah@demo.com", "emma@demo.com"},
			Comments: []db.Comment{
				{Author: "Emma Davis", Text: "That setup looks cozy!", Timestamp: ago(17)},
			},
			Image:    str("/coffee-cup-next-to-laptop-with-code-on-screen.jpg"),
			Hashtags: []string{"Coffee", "Coding", "Programming"},
		},
		{
			ID:          "6",
			Author:      "Emma Davis",
			AuthorEmail: "emma@demo.com",
			Content:     "Trying out a new recipe today. Homemade pasta from scratch!",
			Timestamp:   ago(24),
			Likes:       []string{"mike@demo.com"},
			Comments:    []db.Comment{},
			Image:       str("/homemade-fresh-pasta-dish.jpg"),
			Hashtags:    []string{"Cooking", "Foodie", "Homemade"},
		},
	}
}

// SeedJobPostings returns the three demo job postings, dated relative to now.
func SeedJobPostings(now time.Time) []db.JobPosting {
	daysAgo := func(d int) string { return FormatTimestamp(now.Add(-time.Duration(d) * 24 * time.Hour)) }

	return []db.JobPosting{
		{
			ID:          "job-1",
			Company:     "TechCorp",
			Position:    "Senior React Developer",
			Location:    "San Francisco, CA",
			Description: "We're looking for an experienced React developer to join our growing team. Work on cutting-edge projects with modern tech stack.",
			Salary:      str("$120K - $150K"),
			Posted:      daysAgo(2),
			Applicants:  45,
			Tags:        []string{"React", "JavaScript", "Full-time"},
		},
		{
			ID:          "job-2",
			Company:     "InnovateLabs",
			Position:    "UX/UI Designer",
			Location:    "New York, NY",
			Description: "Join our design team to create beautiful and user-friendly interfaces. We value creativity and attention to detail.",
			Salary:      str("$90K - $120K"),
			Posted:      daysAgo(3),
			Applicants:  32,
			Tags:        []string{"Design", "Figma", "Full-time"},
		},
		{
			ID:          "job-3",
			Company:     "CloudFirst",
			Position:    "DevOps Engineer",
			Location:    "Remote",
			Description: "Help us build and maintain scalable cloud infrastructure. Experience with AWS and Kubernetes preferred.",
			Salary:      str("$110K - $140K"),
			Posted:      daysAgo(1),
			Applicants:  28,
			Tags:        []string{"DevOps", "AWS", "Full-time"},
		},
	}
}
