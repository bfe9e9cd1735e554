package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/itchan-dev/forum-api/internal/domain"
	internal_errors "github.com/itchan-dev/forum-api/internal/errors"
)

const (
	commentNotFound = "komentar tidak ditemukan"
	accessDenied    = "anda tidak berhak mengakses resource ini"
)

func (s *Storage) CreateComment(ctx context.Context, data domain.CommentCreationData) (domain.AddedComment, error) {
	id := s.ids.NewId(domain.CommentIdPrefix)

	var added domain.AddedComment
	err := s.db.QueryRowContext(ctx, `
        INSERT INTO comments_thread (id, thread_id, creator_username, comment)
        VALUES ($1, $2, $3, $4)
        RETURNING id, comment, creator_username
    `, id, data.ThreadId, data.Owner, data.Content).Scan(&added.Id, &added.Content, &added.Owner)
	if err != nil {
		return domain.AddedComment{}, fmt.Errorf("failed to insert comment: %w", err)
	}
	return added, nil
}

// VerifyCommentExists checks that commentId belongs to threadId.
func (s *Storage) VerifyCommentExists(ctx context.Context, threadId domain.ThreadId, commentId domain.CommentId) error {
	var exists bool
	err := s.db.QueryRowContext(ctx,
		"SELECT EXISTS (SELECT 1 FROM comments_thread WHERE id = $1 AND thread_id = $2)", commentId, threadId,
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check comment: %w", err)
	}
	if !exists {
		return internal_errors.NotFound(commentNotFound)
	}
	return nil
}

func (s *Storage) VerifyCommentOwner(ctx context.Context, commentId domain.CommentId, owner domain.Username) error {
	var creator domain.Username
	err := s.db.QueryRowContext(ctx,
		"SELECT creator_username FROM comments_thread WHERE id = $1", commentId,
	).Scan(&creator)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return internal_errors.NotFound(commentNotFound)
		}
		return fmt.Errorf("failed to fetch comment owner: %w", err)
	}
	if creator != owner {
		return internal_errors.Authorization(accessDenied)
	}
	return nil
}

// SoftDeleteComment only flips is_delete, so repeating it is harmless.
func (s *Storage) SoftDeleteComment(ctx context.Context, commentId domain.CommentId) error {
	result, err := s.db.ExecContext(ctx,
		"UPDATE comments_thread SET is_delete = TRUE WHERE id = $1", commentId,
	)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return internal_errors.NotFound(commentNotFound)
	}
	return nil
}

func (s *Storage) CommentsByThreadId(ctx context.Context, threadId domain.ThreadId) ([]domain.Comment, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT id, thread_id, creator_username, comment, created_at, is_delete
        FROM comments_thread
        WHERE thread_id = $1
        ORDER BY created_at, id
    `, threadId)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch comments: %w", err)
	}
	defer rows.Close()

	var comments []domain.Comment
	for rows.Next() {
		var c domain.Comment
		if err := rows.Scan(&c.Id, &c.ThreadId, &c.Username, &c.Content, &c.CreatedAt, &c.IsDelete); err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return comments, nil
}
