/*
Package dihttp provides HTTP middleware for creating [di.Container] scopes for each request.

Example:

	package main

	import (
		"net/http"

		"github.com/go-chi/chi/v5"

		"github.com/sectrean/di-bench"
		"github.com/sectrean/di-bench/dicontext"
		"github.com/sectrean/di-bench/dihttp"
	)

	func main() {
		c, err := di.NewContainer(
			di.Register(NewRepository, di.PerContainer),
			di.Register(NewRequestService, di.PerScope),
		)
		if err != nil {
			panic(err)
		}

		// Create a new scope middleware
		scopeMiddleware, err := dihttp.NewRequestScopeMiddleware(c)
		if err != nil {
			panic(err)
		}

		r := chi.NewRouter()
		r.Use(scopeMiddleware)
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			svc := dicontext.MustResolve[*RequestService](r.Context())
			svc.HandleRequest(w, r)
		})

		http.ListenAndServe(":8080", r)
	}
*/
package dihttp
