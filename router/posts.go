package router

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/connecthub/connecthub-backend/db"
	"github.com/connecthub/connecthub-backend/posts"
)

// FetchPosts serves the feed, optionally narrowed to ?hashtag=
func FetchPosts() Handler {
	return func(rc *RouterContext, w http.ResponseWriter, r *http.Request) *HTTPError {
		var (
			ps  []db.Post
			err error
		)
		if tag := r.URL.Query().Get("hashtag"); tag != "" {
			ps, err = rc.store.PostsByHashtag(r.Context(), tag)
		} else {
			ps, err = rc.store.GetPosts(r.Context())
		}
		if err != nil {
			return handleInternalError(err)
		}

		return writeJSON(w, http.StatusOK, &PostsResponse{
			Status: OK,
			Posts:  newPostViews(ps, rc.user, rc.now()),
		})
	}
}

func FetchPost() Handler {
	return func(rc *RouterContext, w http.ResponseWriter, r *http.Request) *HTTPError {
		p, ok, err := rc.store.GetPost(r.Context(), rc.postID)
		if err != nil {
			return handleInternalError(err)
		}
		if !ok {
			return handleNotFoundError(rc.postID)
		}
		return rc.writePost(w, http.StatusOK, p)
	}
}

// SubmitPost publishes a post by the signed-in user. Content is trimmed and must not be blank.
func SubmitPost() Handler {
	return func(rc *RouterContext, w http.ResponseWriter, r *http.Request) *HTTPError {
		var req PostRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return handleJSONError(err)
		}

		content := strings.TrimSpace(req.Content)
		if content == "" {
			return handleMissingDataError("content")
		}

		d := posts.Draft{
			Author:      rc.user.Name,
			AuthorEmail: rc.user.Email,
			Content:     content,
			Hashtags:    normalizeHashtags(req.Hashtags),
		}
		if req.Image != "" {
			img := req.Image
			d.Image = &img
		}

		p, err := rc.store.AddPost(r.Context(), d)
		if err != nil {
			return handleInternalError(err)
		}
		return rc.writePost(w, http.StatusCreated, p)
	}
}

// EditPost applies a partial update. Keys left out of the body are left unchanged.
func EditPost() Handler {
	return func(rc *RouterContext, w http.ResponseWriter, r *http.Request) *HTTPError {
		var u posts.Update
		if err := json.NewDecoder(r.Body).Decode(&u); err != nil {
			return handleJSONError(err)
		}

		if u.Content.Set {
			u.Content.Value = strings.TrimSpace(u.Content.Value)
			if u.Content.Value == "" {
				return handleMissingDataError("content")
			}
		}
		if u.Hashtags.Set {
			u.Hashtags.Value = normalizeHashtags(u.Hashtags.Value)
		}

		p, ok, err := rc.store.UpdatePost(r.Context(), rc.postID, u)
		if err != nil {
			return handleInternalError(err)
		}
		if !ok {
			return handleNotFoundError(rc.postID)
		}
		return rc.writePost(w, http.StatusOK, p)
	}
}

func DeletePost() Handler {
	return func(rc *RouterContext, w http.ResponseWriter, r *http.Request) *HTTPError {
		removed, err := rc.store.DeletePost(r.Context(), rc.postID)
		if err != nil {
			return handleInternalError(err)
		}
		if !removed {
			return handleNotFoundError(rc.postID)
		}
		return writeJSON(w, http.StatusOK, &OkResponse{Status: OK})
	}
}

// LikePost likes the post for the signed-in user, or unlikes it if already liked
func LikePost() Handler {
	return func(rc *RouterContext, w http.ResponseWriter, r *http.Request) *HTTPError {
		p, ok, err := rc.store.ToggleLike(r.Context(), rc.postID, rc.user.Email)
		if err != nil {
			return handleInternalError(err)
		}
		if !ok {
			return handleNotFoundError(rc.postID)
		}
		return rc.writePost(w, http.StatusOK, p)
	}
}

// SubmitComment takes "text" from a form and comments as the signed-in user
func SubmitComment() Handler {
	return func(rc *RouterContext, w http.ResponseWriter, r *http.Request) *HTTPError {
		text := strings.TrimSpace(r.Form.Get("text"))
		if text == "" {
			return handleMissingDataError("text")
		}

		p, ok, err := rc.store.AddComment(r.Context(), rc.postID, db.Comment{
			Author:    rc.user.Name,
			Text:      text,
			Timestamp: posts.FormatTimestamp(rc.now()),
		})
		if err != nil {
			return handleInternalError(err)
		}
		if !ok {
			return handleNotFoundError(rc.postID)
		}
		return rc.writePost(w, http.StatusCreated, p)
	}
}

func (rc *RouterContext) writePost(w http.ResponseWriter, status int, p db.Post) *HTTPError {
	return writeJSON(w, status, &PostResponse{
		Status: OK,
		Post:   newPostView(p, rc.user, rc.now()),
	})
}
