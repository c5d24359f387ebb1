package router

import (
	"errors"
	"net/http"

	"github.com/connecthub/connecthub-backend/auth"
	"github.com/connecthub/connecthub-backend/common"
)

func invalidCredentials(err error) *HTTPError {
	return &HTTPError{
		IError:    err,
		Level:     1,
		Error:     "Please check your email and password",
		ErrorCode: ErrInvalidCredentials,
		Status:    http.StatusUnauthorized,
	}
}

// Login takes email and password from a form and opens a session for a matching demo user
func Login() Handler {
	return func(rc *RouterContext, w http.ResponseWriter, r *http.Request) *HTTPError {
		token, u, err := rc.auth.Login(r.Context(), r.Form.Get("email"), r.Form.Get("password"))
		if err != nil {
			if errors.Is(err, auth.ErrInvalidCredentials) {
				return invalidCredentials(err)
			}
			return handleInternalError(err)
		}
		return writeJSON(w, http.StatusOK, &SessionResponse{Status: OK, Token: token, User: u})
	}
}

// DemoLogin signs in one of the demo users by email alone
func DemoLogin() Handler {
	return func(rc *RouterContext, w http.ResponseWriter, r *http.Request) *HTTPError {
		token, u, err := rc.auth.DemoLogin(r.Context(), r.Form.Get("email"))
		if err != nil {
			if errors.Is(err, auth.ErrInvalidCredentials) {
				return invalidCredentials(err)
			}
			return handleInternalError(err)
		}
		return writeJSON(w, http.StatusOK, &SessionResponse{Status: OK, Token: token, User: u})
	}
}

// Signup validates name, email, password and confirmPassword and signs the new user in
func Signup() Handler {
	return func(rc *RouterContext, w http.ResponseWriter, r *http.Request) *HTTPError {
		req := auth.SignupRequest{
			Name:            r.Form.Get("name"),
			Email:           r.Form.Get("email"),
			Password:        r.Form.Get("password"),
			ConfirmPassword: r.Form.Get("confirmPassword"),
		}

		token, u, err := rc.auth.Signup(r.Context(), req)
		if err != nil {
			switch {
			case errors.Is(err, auth.ErrPasswordMismatch),
				errors.Is(err, auth.ErrPasswordTooShort),
				errors.Is(err, auth.ErrMissingField):
				return &HTTPError{
					IError:    err,
					Level:     1,
					Error:     err.Error(),
					ErrorCode: ErrInvalidData,
					Status:    http.StatusBadRequest,
				}
			}
			return handleInternalError(err)
		}
		return writeJSON(w, http.StatusCreated, &SessionResponse{Status: OK, Token: token, User: u})
	}
}

func Logout() Handler {
	return func(rc *RouterContext, w http.ResponseWriter, r *http.Request) *HTTPError {
		if err := rc.auth.Logout(r.Context(), rc.token); err != nil {
			return handleInternalError(err)
		}
		return writeJSON(w, http.StatusOK, &OkResponse{Status: OK})
	}
}

func Me() Handler {
	return func(rc *RouterContext, w http.ResponseWriter, r *http.Request) *HTTPError {
		return writeJSON(w, http.StatusOK, &UserResponse{
			Status:   OK,
			User:     rc.user,
			Initials: common.Initials(rc.user.Name),
		})
	}
}
