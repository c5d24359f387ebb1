package router

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
)

// parseForm parses the form in a request and handles the error appropriately
func parseForm() Handler {
	return func(rc *RouterContext, w http.ResponseWriter, r *http.Request) *HTTPError {
		err := r.ParseForm()

		if err != nil {
			return &HTTPError{
				IError:    err,
				Level:     1,
				Status:    http.StatusBadRequest,
				ErrorCode: ErrParsing,
			}
		}
		return nil
	}
}

// authenticate resolves the bearer token in the Authorization header to the signed-in user
func authenticate() Handler {
	return func(rc *RouterContext, w http.ResponseWriter, r *http.Request) *HTTPError {
		token := strings.TrimSpace(strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer "))
		if token == "" {
			return &HTTPError{
				IError:    errors.New("no session token"),
				Level:     1,
				Error:     "Not signed in",
				ErrorCode: ErrUnauthorized,
				Status:    http.StatusUnauthorized,
			}
		}

		u, ok, err := rc.auth.CurrentUser(r.Context(), token)
		if err != nil {
			return handleInternalError(err)
		}
		if !ok {
			return &HTTPError{
				IError:    errors.New("unknown session token"),
				Level:     1,
				Error:     "Session expired",
				ErrorCode: ErrUnauthorized,
				Status:    http.StatusUnauthorized,
			}
		}

		rc.token = token
		rc.user = u
		return nil
	}
}

// parsePostID reads the {id} path variable
func parsePostID() Handler {
	return func(rc *RouterContext, w http.ResponseWriter, r *http.Request) *HTTPError {
		id := mux.Vars(r)["id"]
		if id == "" {
			return handleMissingDataError("id")
		}
		rc.postID = id
		return nil
	}
}

// requireAuthor loads the post and rejects users other than its author
func requireAuthor() Handler {
	return func(rc *RouterContext, w http.ResponseWriter, r *http.Request) *HTTPError {
		p, ok, err := rc.store.GetPost(r.Context(), rc.postID)
		if err != nil {
			return handleInternalError(err)
		}
		if !ok {
			return handleNotFoundError(rc.postID)
		}
		if p.AuthorEmail != rc.user.Email {
			return &HTTPError{
				IError:    errors.New("not the author"),
				Level:     1,
				Error:     "Only the author can change this post",
				ErrorCode: ErrForbidden,
				Status:    http.StatusForbidden,
			}
		}
		rc.post = p
		return nil
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) *HTTPError {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		return &HTTPError{
			IError: err,
			Level:  2,
		}
	}
	return nil
}

func handleJSONError(err error) *HTTPError {
	return &HTTPError{
		IError:    err,
		Level:     1,
		Error:     "Malformed JSON body",
		Status:    http.StatusBadRequest,
		ErrorCode: ErrParsing,
	}
}

func handleInternalError(err error) *HTTPError {
	return &HTTPError{
		ErrorCode: ErrInternal,
		IError:    err,
		Level:     3,
		Status:    http.StatusInternalServerError,
	}
}

// handleMissingDataError takes name of data that is missing or invalid and return *HTTPError
func handleMissingDataError(v string) *HTTPError {
	return &HTTPError{
		IError:    errors.New(v + " is missing or invalid"),
		Level:     1,
		Error:     v + " is missing or invalid",
		Status:    http.StatusBadRequest,
		ErrorCode: ErrInvalidData,
	}
}

func handleNotFoundError(id string) *HTTPError {
	return &HTTPError{
		IError:    errors.New("no post " + id),
		Level:     1,
		Error:     "Post not found",
		Status:    http.StatusNotFound,
		ErrorCode: ErrNotFound,
	}
}

// normalizeHashtags trims tags, drops a leading '#', and removes blanks and repeats.
func normalizeHashtags(tags []string) []string {
	var out []string
	seen := map[string]bool{}
	for _, t := range tags {
		t = strings.TrimPrefix(strings.TrimSpace(t), "#")
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}
