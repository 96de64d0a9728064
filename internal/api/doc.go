// Package api is the HTTP client for the training-management backend.
//
// Every request is JSON in both directions. Non-2xx responses are returned
// to the caller like any other response; only transport failures are
// errors, and those match ErrConnection.
package api
