package domain

import (
	"fmt"
	"time"

	"github.com/itchan-dev/forum-api/internal/errors"
)

// to iterate thru layers: handler -> service -> storage
type ThreadCreationData struct {
	Title string
	Body  string
	Owner Username
}

func NewThreadCreationData(title, body, owner string) (ThreadCreationData, error) {
	if title == "" || body == "" || owner == "" {
		return ThreadCreationData{}, errors.Validation("tidak dapat membuat thread baru karena properti yang dibutuhkan tidak ada")
	}
	return ThreadCreationData{Title: title, Body: body, Owner: owner}, nil
}

type AddedThread struct {
	Id    ThreadId `json:"id"`
	Title string   `json:"title"`
	Owner Username `json:"owner"`
}

// Thread is a row of the threads table.
type Thread struct {
	Id        ThreadId
	Title     string
	Body      string
	Username  Username
	CreatedAt time.Time
}

type ThreadDetails struct {
	Id       ThreadId         `json:"id"`
	Title    string           `json:"title"`
	Body     string           `json:"body"`
	Date     string           `json:"date"`
	Username Username         `json:"username"`
	Comments []CommentDetails `json:"comments"`
}

func NewThreadDetails(thread Thread, comments []CommentDetails) (ThreadDetails, error) {
	if thread.Id == "" || thread.Title == "" || thread.Username == "" || thread.CreatedAt.IsZero() {
		return ThreadDetails{}, fmt.Errorf("thread details: missing required property of thread %q", thread.Id)
	}
	if comments == nil {
		comments = []CommentDetails{}
	}
	return ThreadDetails{
		Id:       thread.Id,
		Title:    thread.Title,
		Body:     thread.Body,
		Date:     FormatDate(thread.CreatedAt),
		Username: thread.Username,
		Comments: comments,
	}, nil
}
