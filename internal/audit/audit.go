package audit

import (
	"context"

	"social_workspace/internal/logger"
)

const (
	ActionSignup           = "user.signup"
	ActionLogin            = "user.login"
	ActionLoginFailed      = "user.login_failed"
	ActionFollow           = "user.follow"
	ActionUnfollow         = "user.unfollow"
	ActionPostCreate       = "post.create"
	ActionPostDelete       = "post.delete"
	ActionPostDeleteDenied = "post.delete_denied"
)

const (
	FieldAction   = "action"
	FieldTargetID = "target_id"
)

// Log emits an audit entry through the request logger in ctx.
func Log(ctx context.Context, action, userID, msg string) {
	l := logger.Ctx(ctx)
	l.Info().
		Str(logger.FieldLogType, logger.LogTypeAudit).
		Str(FieldAction, action).
		Str(logger.FieldUserID, userID).
		Msg(msg)
}

func LogTarget(ctx context.Context, action, userID, targetID, msg string) {
	l := logger.Ctx(ctx)
	l.Info().
		Str(logger.FieldLogType, logger.LogTypeAudit).
		Str(FieldAction, action).
		Str(logger.FieldUserID, userID).
		Str(FieldTargetID, targetID).
		Msg(msg)
}
