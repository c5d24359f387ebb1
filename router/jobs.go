package router

import (
	"net/http"

	"github.com/connecthub/connecthub-backend/common"
)

func FetchJobs() Handler {
	return func(rc *RouterContext, w http.ResponseWriter, r *http.Request) *HTTPError {
		jobs, err := rc.store.GetJobPostings(r.Context())
		if err != nil {
			return handleInternalError(err)
		}

		now := rc.now()
		views := make([]JobView, 0, len(jobs))
		for _, j := range jobs {
			views = append(views, JobView{JobPosting: j, PostedLabel: common.PostedLabel(j.Posted, now)})
		}
		return writeJSON(w, http.StatusOK, &JobsResponse{Status: OK, Jobs: views})
	}
}

// Profile serves the signed-in user's posts and the likes and comments they collected
func Profile() Handler {
	return func(rc *RouterContext, w http.ResponseWriter, r *http.Request) *HTTPError {
		mine, err := rc.store.PostsByAuthor(r.Context(), rc.user.Email)
		if err != nil {
			return handleInternalError(err)
		}
		stats, err := rc.store.Stats(r.Context(), rc.user.Email)
		if err != nil {
			return handleInternalError(err)
		}

		return writeJSON(w, http.StatusOK, &ProfileResponse{
			Status:   OK,
			User:     rc.user,
			Initials: common.Initials(rc.user.Name),
			Stats:    stats,
			Posts:    newPostViews(mine, rc.user, rc.now()),
		})
	}
}

func Quote() Handler {
	return func(rc *RouterContext, w http.ResponseWriter, r *http.Request) *HTTPError {
		return writeJSON(w, http.StatusOK, &QuoteResponse{Status: OK, Quote: common.RandomQuote()})
	}
}
