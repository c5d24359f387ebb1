package router

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/connecthub/connecthub-backend/auth"
	"github.com/connecthub/connecthub-backend/common"
	"github.com/connecthub/connecthub-backend/db"
	"github.com/connecthub/connecthub-backend/log"
	"github.com/connecthub/connecthub-backend/posts"
	"github.com/gorilla/mux"
)

// RouterContext carries the dependencies of one request and whatever earlier
// handlers in the chain resolved for later ones.
type RouterContext struct {
	store *posts.Store
	auth  *auth.Manager
	now   func() time.Time

	token  string
	user   db.User
	postID string
	post   db.Post
}

type HTTPError struct {
	Level     int    `json:"-"`
	IError    error  `json:"-"`
	Status    int    `json:"status"`
	Error     string `json:"error"`
	ErrorCode string `json:"error_code"`
}

type Handler func(rc *RouterContext, w http.ResponseWriter, r *http.Request) *HTTPError

// Server holds what every handler chain shares.
type Server struct {
	Store *posts.Store
	Auth  *auth.Manager
	Now   func() time.Time
}

func (s *Server) Handle(handlers ...Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		now := s.Now
		if now == nil {
			now = time.Now
		}
		rc := &RouterContext{
			store: s.Store,
			auth:  s.Auth,
			now:   now,
		}
		w.Header().Add("Content-Type", "application/json")

		for _, handler := range handlers {
			e := handler(rc, w, r)
			if e != nil {

				// 3 Levels of errors
				// Level 1: Don't log anything on server, Only return a response to the user
				// Level 2: Log the error as warning on the server, But don't send a response or close the request
				// Level 3: Log the request, Cancel the request from going any further and return an appropriate response
				switch e.Level {
				case 1:
					writeError(w, e)
					return

				case 2:
					log.Warn.Printf("%s %s: %v\n", r.Method, r.URL.Path, e.IError)

				case 3:
					log.Error.Printf("%s %s from %s: %v\n", r.Method, r.URL.Path, common.GetIPAddr(r), e.IError)
					writeError(w, e)
					return
				}
			}
		}
	})
}

func writeError(w http.ResponseWriter, e *HTTPError) {
	if e.Error == "" {
		e.Error = http.StatusText(e.Status)
	}
	w.WriteHeader(e.Status)
	err := json.NewEncoder(w).Encode(e)
	if err != nil {
		log.Error.Printf("%v: %s\n", err, err)
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte(http.StatusText(http.StatusInternalServerError)))
	}
}

func Init(s *Server) *mux.Router {
	r := mux.NewRouter()

	r.Handle("/auth/login", s.Handle(parseForm(), Login())).Methods("POST")
	r.Handle("/auth/demo-login", s.Handle(parseForm(), DemoLogin())).Methods("POST")
	r.Handle("/auth/signup", s.Handle(parseForm(), Signup())).Methods("POST")
	r.Handle("/auth/logout", s.Handle(authenticate(), Logout())).Methods("POST")
	r.Handle("/me", s.Handle(authenticate(), Me())).Methods("GET")

	r.Handle("/posts", s.Handle(authenticate(), FetchPosts())).Methods("GET")
	r.Handle("/posts", s.Handle(authenticate(), SubmitPost())).Methods("POST")
	r.Handle("/posts/{id}", s.Handle(authenticate(), parsePostID(), FetchPost())).Methods("GET")
	r.Handle("/posts/{id}", s.Handle(authenticate(), parsePostID(), requireAuthor(), EditPost())).Methods("PATCH")
	r.Handle("/posts/{id}", s.Handle(authenticate(), parsePostID(), requireAuthor(), DeletePost())).Methods("DELETE")
	r.Handle("/posts/{id}/like", s.Handle(authenticate(), parsePostID(), LikePost())).Methods("POST")
	r.Handle("/posts/{id}/comments", s.Handle(authenticate(), parsePostID(), parseForm(), SubmitComment())).Methods("POST")

	r.Handle("/jobs", s.Handle(authenticate(), FetchJobs())).Methods("GET")
	r.Handle("/profile", s.Handle(authenticate(), Profile())).Methods("GET")
	r.Handle("/quote", s.Handle(Quote())).Methods("GET")

	return r
}
