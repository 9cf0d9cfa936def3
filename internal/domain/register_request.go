package domain

import (
	"errors"
	"time"
)

type RegisterRequestStatus string

const (
	RegisterRequestStatusPending  RegisterRequestStatus = "PENDING"
	RegisterRequestStatusApproved RegisterRequestStatus = "APPROVED"
	RegisterRequestStatusRejected RegisterRequestStatus = "REJECTED"
)

// ErrNotPending is returned by a transition on a request that has already
// been approved or rejected.
var ErrNotPending = errors.New("registration request is not pending")

// RegisterRequest is a self-service account registration awaiting an admin
// decision. Once processed it is kept as a historical record and never
// mutated again.
type RegisterRequest struct {
	ID          string                `json:"id"`
	Username    string                `json:"username"`
	Email       string                `json:"email"`
	Status      RegisterRequestStatus `json:"status"`
	CreateDate  time.Time             `json:"create_date"`
	ProcessDate *time.Time            `json:"process_date,omitempty"`
}

// NewRegisterRequest returns a pending request for the given identity pair.
// ID and CreateDate are assigned by the repository on insert.
func NewRegisterRequest(username, email string) *RegisterRequest {
	return &RegisterRequest{
		Username: username,
		Email:    email,
		Status:   RegisterRequestStatusPending,
	}
}

// Approve returns a copy of the request transitioned to APPROVED.
// Only a pending request may be approved.
func (r RegisterRequest) Approve(now time.Time) (RegisterRequest, error) {
	return r.process(RegisterRequestStatusApproved, now)
}

// Reject returns a copy of the request transitioned to REJECTED.
// Only a pending request may be rejected.
func (r RegisterRequest) Reject(now time.Time) (RegisterRequest, error) {
	return r.process(RegisterRequestStatusRejected, now)
}

func (r RegisterRequest) process(status RegisterRequestStatus, now time.Time) (RegisterRequest, error) {
	if r.Status != RegisterRequestStatusPending {
		return r, ErrNotPending
	}
	r.Status = status
	r.ProcessDate = &now
	return r, nil
}

// IsPending reports whether the request still awaits an admin decision.
func (r *RegisterRequest) IsPending() bool {
	return r.Status == RegisterRequestStatusPending
}
