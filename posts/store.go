// Package posts owns the post feed and the job board kept in a db.Storage.
//
// Every operation reads the whole collection, changes it in memory and writes
// the whole collection back. A Store serializes its operations with a single
// mutex; separate processes sharing one backend are last-writer-wins.
package posts

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/connecthub/connecthub-backend/db"
	"github.com/connecthub/connecthub-backend/log"
	"github.com/google/uuid"
)

type Store struct {
	mu      sync.Mutex
	storage db.Storage
	now     func() time.Time
	newID   func() string
}

type Option func(*Store)

// WithClock replaces time.Now for timestamps and seed data.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator replaces the uuid generator used for new post ids.
func WithIDGenerator(f func() string) Option {
	return func(s *Store) { s.newID = f }
}

func NewStore(storage db.Storage, opts ...Option) *Store {
	s := &Store{
		storage: storage,
		now:     time.Now,
		newID:   uuid.NewString,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Stats sums a user's activity for the profile page.
type Stats struct {
	Posts    int `json:"posts"`
	Likes    int `json:"likes"`
	Comments int `json:"comments"`
}

// load reads the collection under key. An absent or empty value is replaced by
// the seed set, which is persisted. A value that does not decode yields the
// seed set without touching storage.
func load[T any](ctx context.Context, s db.Storage, key string, seed func() []T) ([]T, error) {
	v, ok, err := s.Load(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", key, err)
	}

	if !ok || v == "" {
		items := seed()
		if err := save(ctx, s, key, items); err != nil {
			return nil, err
		}
		log.Info.Printf("Seeded %s with %d entries\n", key, len(items))
		return items, nil
	}

	var items []T
	if err := json.Unmarshal([]byte(v), &items); err != nil {
		log.Warn.Printf("%s is not valid, serving seed data: %v\n", key, err)
		return seed(), nil
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func save[T any](ctx context.Context, s db.Storage, key string, items []T) error {
	b, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}
	if err := s.Save(ctx, key, string(b)); err != nil {
		return fmt.Errorf("saving %s: %w", key, err)
	}
	return nil
}

func (s *Store) seedPosts() []db.Post { return SeedPosts(s.now()) }

func (s *Store) seedJobs() []db.JobPosting { return SeedJobPostings(s.now()) }

func (s *Store) loadPosts(ctx context.Context) ([]db.Post, error) {
	posts, err := load(ctx, s.storage, db.PostsKey, s.seedPosts)
	if err != nil {
		return nil, err
	}
	for i := range posts {
		if posts[i].Likes == nil {
			posts[i].Likes = []string{}
		}
		if posts[i].Comments == nil {
			posts[i].Comments = []db.Comment{}
		}
	}
	return posts, nil
}

func (s *Store) savePosts(ctx context.Context, posts []db.Post) error {
	return save(ctx, s.storage, db.PostsKey, posts)
}

func indexOf(posts []db.Post, id string) int {
	for i := range posts {
		if posts[i].ID == id {
			return i
		}
	}
	return -1
}

// GetPosts returns the feed, newest first, seeding it on first use.
func (s *Store) GetPosts(ctx context.Context) ([]db.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadPosts(ctx)
}

// GetPost returns the post with id, or ok=false.
func (s *Store) GetPost(ctx context.Context, id string) (db.Post, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	posts, err := s.loadPosts(ctx)
	if err != nil {
		return db.Post{}, false, err
	}
	i := indexOf(posts, id)
	if i < 0 {
		return db.Post{}, false, nil
	}
	return posts[i], true, nil
}

// AddPost creates a post from d at the top of the feed. Content is not validated.
func (s *Store) AddPost(ctx context.Context, d Draft) (db.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	posts, err := s.loadPosts(ctx)
	if err != nil {
		return db.Post{}, err
	}

	id := s.newID()
	for indexOf(posts, id) >= 0 {
		id = s.newID()
	}

	p := db.Post{
		ID:          id,
		Author:      d.Author,
		AuthorEmail: d.AuthorEmail,
		Content:     d.Content,
		Timestamp:   FormatTimestamp(s.now()),
		Likes:       []string{},
		Comments:    []db.Comment{},
		Image:       d.Image,
		Hashtags:    d.Hashtags,
	}
	p = p.Clone()

	posts = append([]db.Post{p}, posts...)
	if err := s.savePosts(ctx, posts); err != nil {
		return db.Post{}, err
	}
	return p, nil
}

// ToggleLike removes user from the post's likes if present and adds it otherwise.
func (s *Store) ToggleLike(ctx context.Context, postID, user string) (db.Post, bool, error) {
	return s.mutate(ctx, postID, func(p *db.Post) {
		for i, u := range p.Likes {
			if u == user {
				p.Likes = append(p.Likes[:i], p.Likes[i+1:]...)
				return
			}
		}
		p.Likes = append(p.Likes, user)
	})
}

// AddComment appends c to the post's comments.
func (s *Store) AddComment(ctx context.Context, postID string, c db.Comment) (db.Post, bool, error) {
	return s.mutate(ctx, postID, func(p *db.Post) {
		p.Comments = append(p.Comments, c)
	})
}

// UpdatePost applies the fields set in u.
func (s *Store) UpdatePost(ctx context.Context, postID string, u Update) (db.Post, bool, error) {
	return s.mutate(ctx, postID, func(p *db.Post) {
		if u.Content.Set {
			p.Content = u.Content.Value
		}
		if u.Image.Set {
			if u.Image.Value == "" {
				p.Image = nil
			} else {
				img := u.Image.Value
				p.Image = &img
			}
		}
		if u.Hashtags.Set {
			if len(u.Hashtags.Value) == 0 {
				p.Hashtags = nil
			} else {
				p.Hashtags = append([]string{}, u.Hashtags.Value...)
			}
		}
	})
}

// mutate applies f to the post with postID and persists the collection.
// Nothing is written when the post does not exist.
func (s *Store) mutate(ctx context.Context, postID string, f func(*db.Post)) (db.Post, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	posts, err := s.loadPosts(ctx)
	if err != nil {
		return db.Post{}, false, err
	}
	i := indexOf(posts, postID)
	if i < 0 {
		return db.Post{}, false, nil
	}

	f(&posts[i])
	if err := s.savePosts(ctx, posts); err != nil {
		return db.Post{}, false, err
	}
	return posts[i].Clone(), true, nil
}

// DeletePost removes the post with postID and reports whether one was removed.
func (s *Store) DeletePost(ctx context.Context, postID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	posts, err := s.loadPosts(ctx)
	if err != nil {
		return false, err
	}
	i := indexOf(posts, postID)
	if i < 0 {
		return false, nil
	}

	posts = append(posts[:i], posts[i+1:]...)
	if err := s.savePosts(ctx, posts); err != nil {
		return false, err
	}
	return true, nil
}

// PostsByAuthor returns the posts owned by email, newest first.
func (s *Store) PostsByAuthor(ctx context.Context, email string) ([]db.Post, error) {
	return s.filter(ctx, func(p *db.Post) bool { return p.AuthorEmail == email })
}

// PostsByHashtag returns posts tagged with tag, ignoring case and a leading '#'.
func (s *Store) PostsByHashtag(ctx context.Context, tag string) ([]db.Post, error) {
	tag = strings.TrimPrefix(strings.TrimSpace(tag), "#")
	return s.filter(ctx, func(p *db.Post) bool {
		for _, h := range p.Hashtags {
			if strings.EqualFold(h, tag) {
				return true
			}
		}
		return false
	})
}

func (s *Store) filter(ctx context.Context, keep func(*db.Post) bool) ([]db.Post, error) {
	posts, err := s.GetPosts(ctx)
	if err != nil {
		return nil, err
	}
	out := []db.Post{}
	for i := range posts {
		if keep(&posts[i]) {
			out = append(out, posts[i])
		}
	}
	return out, nil
}

// Stats counts the posts of email and the likes and comments they received.
func (s *Store) Stats(ctx context.Context, email string) (Stats, error) {
	mine, err := s.PostsByAuthor(ctx, email)
	if err != nil {
		return Stats{}, err
	}
	st := Stats{Posts: len(mine)}
	for _, p := range mine {
		st.Likes += len(p.Likes)
		st.Comments += len(p.Comments)
	}
	return st, nil
}

// GetJobPostings returns the job board, seeding it on first use.
func (s *Store) GetJobPostings(ctx context.Context) ([]db.JobPosting, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return load(ctx, s.storage, db.JobPostingsKey, s.seedJobs)
}

// Seed writes the seed sets for any collection not yet stored, or for both
// when overwrite is set.
func (s *Store) Seed(ctx context.Context, overwrite bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if overwrite {
		if err := save(ctx, s.storage, db.PostsKey, s.seedPosts()); err != nil {
			return err
		}
		if err := save(ctx, s.storage, db.JobPostingsKey, s.seedJobs()); err != nil {
			return err
		}
		log.Info.Printf("Reset posts and job postings to seed data\n")
		return nil
	}

	if _, err := s.loadPosts(ctx); err != nil {
		return err
	}
	_, err := load(ctx, s.storage, db.JobPostingsKey, s.seedJobs)
	return err
}
