package router

import (
	"time"

	"github.com/connecthub/connecthub-backend/common"
	"github.com/connecthub/connecthub-backend/db"
	"github.com/connecthub/connecthub-backend/posts"
)

var OK = "OK"

type OkResponse struct {
	Status string `json:"status"`
}

type SessionResponse struct {
	Status string  `json:"status"`
	Token  string  `json:"token"`
	User   db.User `json:"user"`
}

type UserResponse struct {
	Status   string  `json:"status"`
	User     db.User `json:"user"`
	Initials string  `json:"initials"`
}

// PostView is a post as the feed renders it for the signed-in user.
type PostView struct {
	db.Post
	TimeAgo      string `json:"timeAgo"`
	Initials     string `json:"initials"`
	LikeCount    int    `json:"likeCount"`
	CommentCount int    `json:"commentCount"`
	LikedByMe    bool   `json:"likedByMe"`
	IsAuthor     bool   `json:"isAuthor"`
}

func newPostView(p db.Post, viewer db.User, now time.Time) PostView {
	liked := false
	for _, u := range p.Likes {
		if u == viewer.Email {
			liked = true
			break
		}
	}
	return PostView{
		Post:         p,
		TimeAgo:      common.TimeAgo(p.Timestamp, now),
		Initials:     common.Initials(p.Author),
		LikeCount:    len(p.Likes),
		CommentCount: len(p.Comments),
		LikedByMe:    liked,
		IsAuthor:     p.AuthorEmail == viewer.Email,
	}
}

func newPostViews(ps []db.Post, viewer db.User, now time.Time) []PostView {
	views := make([]PostView, 0, len(ps))
	for _, p := range ps {
		views = append(views, newPostView(p, viewer, now))
	}
	return views
}

type PostResponse struct {
	Status string   `json:"status"`
	Post   PostView `json:"post"`
}

type PostsResponse struct {
	Status string     `json:"status"`
	Posts  []PostView `json:"posts"`
}

type JobView struct {
	db.JobPosting
	PostedLabel string `json:"postedLabel"`
}

type JobsResponse struct {
	Status string    `json:"status"`
	Jobs   []JobView `json:"jobs"`
}

type ProfileResponse struct {
	Status   string      `json:"status"`
	User     db.User     `json:"user"`
	Initials string      `json:"initials"`
	Stats    posts.Stats `json:"stats"`
	Posts    []PostView  `json:"posts"`
}

type QuoteResponse struct {
	Status string `json:"status"`
	Quote  string `json:"quote"`
}

// PostRequest is the body of POST /posts.
type PostRequest struct {
	Content  string   `json:"content"`
	Image    string   `json:"image"`
	Hashtags []string `json:"hashtags"`
}
