package server

import (
	"context"

	"go.uber.org/zap"
)

// notification is one email send in an endpoint's pipeline. Exactly one send
// per endpoint is loud: its failure downgrades the response to a success
// with a warning. Quiet sends fail into the log only.
type notification struct {
	op      string
	loud    bool
	warning string
	send    func(ctx context.Context) error
}

// runNotifications executes the sends in order and returns the warning for
// the first loud failure, or "" when the response should be a plain success.
func (h *httpHandler) runNotifications(ctx context.Context, notifications []notification) string {
	warning := ""
	for _, n := range notifications {
		err := n.send(ctx)
		if err == nil {
			continue
		}
		if n.loud && warning == "" {
			warning = n.warning
			h.logger.Error("notification failed", zap.String("op", n.op), zap.Error(err))
			continue
		}
		h.logger.Warn("notification failed", zap.String("op", n.op), zap.Error(err))
	}
	return warning
}
