package jobs

import (
	"context"

	"docshare-backend/internal/logger"
)

// SendPendingRequestDigest mails every admin a summary of the registration
// requests still awaiting a decision. Skipped when the queue is empty.
func (jr *JobRunner) SendPendingRequestDigest() {
	jr.runWithRecovery("SendPendingRequestDigest", func() {
		ctx := context.Background()

		pending, err := jr.store.RegisterRequestRepository.ListPending(ctx)
		if err != nil {
			logger.Error("Failed to list pending requests", "error", err)
			return
		}
		if len(pending) == 0 {
			logger.Debug("No pending registration requests, skipping digest")
			return
		}

		admins, err := jr.store.UserRepository.ListAdmins(ctx)
		if err != nil {
			logger.Error("Failed to list admins", "error", err)
			return
		}

		for _, admin := range admins {
			if err := jr.emailSvc.SendPendingRequestDigest(ctx, admin.Email, pending); err != nil {
				logger.Error("Failed to send pending request digest", "admin", admin.Username, "error", err)
			}
		}
		logger.Info("Pending request digest sent", "pending", len(pending), "admins", len(admins))
	})
}
