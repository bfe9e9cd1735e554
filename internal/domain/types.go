package domain

import "time"

type (
	UserId    = string
	Username  = string
	ThreadId  = string
	CommentId = string
	ReplyId   = string
)

const (
	UserIdPrefix    = "user-"
	ThreadIdPrefix  = "thread-"
	CommentIdPrefix = "comment-"
	ReplyIdPrefix   = "reply-"
)

// Shown instead of the content of soft-deleted rows.
const (
	CommentTombstone = "**komentar telah dihapus**"
	ReplyTombstone   = "**balasan telah dihapus**"
)

// DateLayout renders timestamps the way API clients expect them (ISO-8601, millisecond precision, UTC).
const DateLayout = "2006-01-02T15:04:05.000Z07:00"

func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}
