package app

import (
	"context"
	"fmt"
	"net/http"
	"slices"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/metinatakli/theater-box-office/api"
)

const staffScope = "staff"

func (app *Application) recoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				w.Header().Set("Connection", "close")

				app.serverErrorResponse(w, r, fmt.Errorf("%s", err))
			}
		}()

		next.ServeHTTP(w, r)
	})
}

// withRequestLogger attaches a logger carrying the request id to the request context.
func (app *Application) withRequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := app.logger.With("request_id", middleware.GetReqID(r.Context()))

		ctx := context.WithValue(r.Context(), loggerContextKey, logger)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// authorize enforces the session requirements the API document declares per operation.
// Operations without a security requirement pass through untouched.
func (app *Application) authorize(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		scopes, ok := r.Context().Value(api.SessionCookieScopes).([]string)
		if !ok {
			next.ServeHTTP(w, r)
			return
		}

		handler := app.requireAuthentication(next)
		if slices.Contains(scopes, staffScope) {
			handler = app.requireStaff(next)
		}

		handler.ServeHTTP(w, r)
	})
}

func (app *Application) requireAuthentication(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userId := app.sessionManager.GetInt(r.Context(), SessionKeyUserId.String())
		if userId == 0 {
			app.unauthorizedAccessResponse(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), SessionKeyUserId, userId)
		r = r.WithContext(ctx)

		next.ServeHTTP(w, r)
	})
}

func (app *Application) requireStaff(next http.Handler) http.Handler {
	return app.requireAuthentication(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !app.sessionManager.GetBool(r.Context(), SessionKeyIsStaff.String()) {
			app.forbiddenResponse(w, r)
			return
		}

		next.ServeHTTP(w, r)
	}))
}
