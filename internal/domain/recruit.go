package domain

import "context"

// RegisterOutcome is the raw reply of the recruiting API.
type RegisterOutcome struct {
	StatusCode int
	Body       []byte
}

func (o *RegisterOutcome) OK() bool {
	return o.StatusCode >= 200 && o.StatusCode < 300
}

// RecruitRegistrar forwards a job posting to the external recruiting API.
// A returned error means the request never completed (transport failure).
type RecruitRegistrar interface {
	Register(ctx context.Context, payload []byte) (*RegisterOutcome, error)
}
