package testutil

import (
	"net/http"
	"time"

	"ferry/pkg/domain"
	"ferry/pkg/requestcontext"
)

// AsMember authenticates the request as a member linked to personID,
// simulating what the auth middleware does for a valid token.
func AsMember(req *http.Request, personID domain.PersonID) *http.Request {
	actor := domain.Actor{TokenID: "test-token", PersonID: personID}
	return req.WithContext(requestcontext.WithActor(req.Context(), actor))
}

// AsSuperuser authenticates the request as an elevated actor with no linked
// person.
func AsSuperuser(req *http.Request) *http.Request {
	actor := domain.Actor{TokenID: "admin-token", Superuser: true}
	return req.WithContext(requestcontext.WithActor(req.Context(), actor))
}

// AtTime pins the request-scoped evaluation time, which drives score decay
// and audit timestamps.
func AtTime(req *http.Request, t time.Time) *http.Request {
	return req.WithContext(requestcontext.WithTime(req.Context(), t))
}
