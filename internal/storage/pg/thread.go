package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/itchan-dev/forum-api/internal/domain"
	internal_errors "github.com/itchan-dev/forum-api/internal/errors"
)

const threadNotFound = "thread tidak ditemukan"

func (s *Storage) CreateThread(ctx context.Context, data domain.ThreadCreationData) (domain.AddedThread, error) {
	id := s.ids.NewId(domain.ThreadIdPrefix)

	var added domain.AddedThread
	err := s.db.QueryRowContext(ctx, `
        INSERT INTO threads (id, title, body, creator_username)
        VALUES ($1, $2, $3, $4)
        RETURNING id, title, creator_username
    `, id, data.Title, data.Body, data.Owner).Scan(&added.Id, &added.Title, &added.Owner)
	if err != nil {
		return domain.AddedThread{}, fmt.Errorf("failed to insert thread: %w", err)
	}
	return added, nil
}

func (s *Storage) VerifyThreadExists(ctx context.Context, threadId domain.ThreadId) error {
	var exists bool
	err := s.db.QueryRowContext(ctx,
		"SELECT EXISTS (SELECT 1 FROM threads WHERE id = $1)", threadId,
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check thread: %w", err)
	}
	if !exists {
		return internal_errors.NotFound(threadNotFound)
	}
	return nil
}

func (s *Storage) ThreadById(ctx context.Context, threadId domain.ThreadId) (domain.Thread, error) {
	var thread domain.Thread
	err := s.db.QueryRowContext(ctx, `
        SELECT id, title, body, creator_username, created_at
        FROM threads
        WHERE id = $1
    `, threadId).Scan(&thread.Id, &thread.Title, &thread.Body, &thread.Username, &thread.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Thread{}, internal_errors.NotFound(threadNotFound)
		}
		return domain.Thread{}, fmt.Errorf("failed to fetch thread: %w", err)
	}
	return thread, nil
}
