package db

// Post is one entry of the feed. Author and AuthorEmail are a snapshot of the
// creating user; AuthorEmail is the ownership key.
type Post struct {
	ID          string    `json:"id"`
	Author      string    `json:"author"`
	AuthorEmail string    `json:"authorEmail"`
	Content     string    `json:"content"`
	Timestamp   string    `json:"timestamp"`
	Likes       []string  `json:"likes"`
	Comments    []Comment `json:"comments"`
	Image       *string   `json:"image,omitempty"`
	Hashtags    []string  `json:"hashtags,omitempty"`
}

type Comment struct {
	Author    string `json:"author"`
	Text      string `json:"text"`
	Timestamp string `json:"timestamp"`
}

type JobPosting struct {
	ID          string   `json:"id"`
	Company     string   `json:"company"`
	Position    string   `json:"position"`
	Location    string   `json:"location"`
	Description string   `json:"description"`
	Salary      *string  `json:"salary,omitempty"`
	Posted      string   `json:"posted"`
	Applicants  int      `json:"applicants"`
	Tags        []string `json:"tags,omitempty"`
}

// User is the identity kept under the "currentUser" key and in sessions.
type User struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password,omitempty"`
}

// Clone returns a copy of p that shares no slices with it.
func (p Post) Clone() Post {
	c := p
	c.Likes = append([]string{}, p.Likes...)
	c.Comments = append([]Comment{}, p.Comments...)
	if p.Hashtags != nil {
		c.Hashtags = append([]string{}, p.Hashtags...)
	}
	if p.Image != nil {
		img := *p.Image
		c.Image = &img
	}
	return c
}
