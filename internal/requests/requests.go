// Package requests holds the sample request records streamed by the demo
// command and the handlers that consume them.
package requests

import (
	"time"
)

const (
	MethodPost = "POST"
	MethodGet  = "GET"

	StatusOK                  = 200
	StatusInternalServerError = 500

	DefaultHost = "service.example"
)

// User is the body carried by a create request.
type User struct {
	Name      string    `json:"name"`
	Age       int       `json:"age"`
	Roles     []string  `json:"roles"`
	CreatedAt time.Time `json:"createdAt"`
	IsDeleted bool      `json:"isDeleted"`
}

// Params are the query parameters of a request.
type Params struct {
	ID string `json:"id,omitempty"`
}

// Request is a mock HTTP request record.
type Request struct {
	Method string `json:"method"`
	Host   string `json:"host"`
	Path   string `json:"path"`
	Body   *User  `json:"body,omitempty"`
	Params Params `json:"params"`
}

// Status is the outcome of handling a request.
type Status struct {
	Code int `json:"status"`
}

// MockUser returns the sample user created at now.
func MockUser(now time.Time) User {
	return User{
		Name:      "User Name",
		Age:       26,
		Roles:     []string{"user", "admin"},
		CreatedAt: now,
		IsDeleted: false,
	}
}

// Mock returns the fixed pair of sample requests: create a user, then fetch
// one by id. An empty host keeps DefaultHost.
func Mock(now time.Time, host string) []Request {
	if host == "" {
		host = DefaultHost
	}
	user := MockUser(now)
	return []Request{
		{
			Method: MethodPost,
			Host:   host,
			Path:   "user",
			Body:   &user,
		},
		{
			Method: MethodGet,
			Host:   host,
			Path:   "user",
			Params: Params{ID: "3f5h67s4s"},
		},
	}
}
