package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/itchan-dev/forum-api/internal/domain"
	internal_errors "github.com/itchan-dev/forum-api/internal/errors"
)

const replyNotFound = "balasan tidak ditemukan"

func (s *Storage) CreateReply(ctx context.Context, data domain.ReplyCreationData) (domain.AddedReply, error) {
	id := s.ids.NewId(domain.ReplyIdPrefix)

	var added domain.AddedReply
	err := s.db.QueryRowContext(ctx, `
        INSERT INTO replies (id, thread_id, comment_id, creator_username, comment)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, comment, creator_username
    `, id, data.ThreadId, data.CommentId, data.Owner, data.Content).Scan(&added.Id, &added.Content, &added.Owner)
	if err != nil {
		return domain.AddedReply{}, fmt.Errorf("failed to insert reply: %w", err)
	}
	return added, nil
}

// VerifyReplyExists checks that replyId belongs to commentId.
func (s *Storage) VerifyReplyExists(ctx context.Context, commentId domain.CommentId, replyId domain.ReplyId) error {
	var exists bool
	err := s.db.QueryRowContext(ctx,
		"SELECT EXISTS (SELECT 1 FROM replies WHERE id = $1 AND comment_id = $2)", replyId, commentId,
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check reply: %w", err)
	}
	if !exists {
		return internal_errors.NotFound(replyNotFound)
	}
	return nil
}

func (s *Storage) VerifyReplyOwner(ctx context.Context, replyId domain.ReplyId, owner domain.Username) error {
	var creator domain.Username
	err := s.db.QueryRowContext(ctx,
		"SELECT creator_username FROM replies WHERE id = $1", replyId,
	).Scan(&creator)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return internal_errors.NotFound(replyNotFound)
		}
		return fmt.Errorf("failed to fetch reply owner: %w", err)
	}
	if creator != owner {
		return internal_errors.Authorization(accessDenied)
	}
	return nil
}

func (s *Storage) SoftDeleteReply(ctx context.Context, replyId domain.ReplyId) error {
	result, err := s.db.ExecContext(ctx,
		"UPDATE replies SET is_delete = TRUE WHERE id = $1", replyId,
	)
	if err != nil {
		return fmt.Errorf("failed to delete reply: %w", err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return internal_errors.NotFound(replyNotFound)
	}
	return nil
}

// RepliesByThreadId returns every reply of the thread in one query, oldest first.
// Callers group them by CommentId.
func (s *Storage) RepliesByThreadId(ctx context.Context, threadId domain.ThreadId) ([]domain.Reply, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT id, thread_id, comment_id, creator_username, comment, created_at, is_delete
        FROM replies
        WHERE thread_id = $1
        ORDER BY created_at, id
    `, threadId)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch replies: %w", err)
	}
	defer rows.Close()

	var replies []domain.Reply
	for rows.Next() {
		var r domain.Reply
		if err := rows.Scan(&r.Id, &r.ThreadId, &r.CommentId, &r.Username, &r.Content, &r.CreatedAt, &r.IsDelete); err != nil {
			return nil, fmt.Errorf("failed to scan reply: %w", err)
		}
		replies = append(replies, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return replies, nil
}
