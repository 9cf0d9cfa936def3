package domain_test

import (
	"testing"
	"time"

	"docshare-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestRegisterRequestTransitions(t *testing.T) {
	now := time.Now()

	t.Run("ApprovePending", func(t *testing.T) {
		req := *domain.NewRegisterRequest("alice", "a@x.com")
		approved, err := req.Approve(now)
		assert.NoError(t, err)
		assert.Equal(t, domain.RegisterRequestStatusApproved, approved.Status)
		assert.Equal(t, now, *approved.ProcessDate)
		// The original value is untouched.
		assert.Equal(t, domain.RegisterRequestStatusPending, req.Status)
		assert.Nil(t, req.ProcessDate)
	})

	t.Run("RejectPending", func(t *testing.T) {
		req := *domain.NewRegisterRequest("alice", "a@x.com")
		rejected, err := req.Reject(now)
		assert.NoError(t, err)
		assert.Equal(t, domain.RegisterRequestStatusRejected, rejected.Status)
		assert.NotNil(t, rejected.ProcessDate)
	})

	t.Run("NoTransitionFromTerminal", func(t *testing.T) {
		req := *domain.NewRegisterRequest("alice", "a@x.com")
		approved, err := req.Approve(now)
		assert.NoError(t, err)

		_, err = approved.Approve(now)
		assert.ErrorIs(t, err, domain.ErrNotPending)
		_, err = approved.Reject(now)
		assert.ErrorIs(t, err, domain.ErrNotPending)
	})

	t.Run("IsPending", func(t *testing.T) {
		req := domain.NewRegisterRequest("alice", "a@x.com")
		assert.True(t, req.IsPending())
		rejected, _ := req.Reject(now)
		assert.False(t, rejected.IsPending())
	})
}
