package domain

import (
	"time"
	"unicode/utf8"
)

// MaxThreadTitleLength is the longest accepted thread title, in characters.
const MaxThreadTitleLength = 50

// NewThread is a validated request to open a thread.
type NewThread struct {
	Title string
	Body  string
	Owner string
}

// ParseNewThread validates payload fields title, body and owner.
func ParseNewThread(p Payload) (*NewThread, error) {
	v, err := requireStrings("NEW_THREAD", p, "title", "body", "owner")
	if err != nil {
		return nil, err
	}
	if utf8.RuneCountInString(v["title"]) > MaxThreadTitleLength {
		return nil, NewValidationError("NEW_THREAD.TITLE_LIMIT_CHAR", ErrTitleTooLong, "title", "title must not exceed 50 characters")
	}
	return &NewThread{
		Title: v["title"],
		Body:  v["body"],
		Owner: v["owner"],
	}, nil
}

// AddedThread is what the caller gets back after a thread is stored.
type AddedThread struct {
	ID    string
	Title string
	Owner string
}

func ParseAddedThread(p Payload) (*AddedThread, error) {
	v, err := requireStrings("ADDED_THREAD", p, "id", "title", "owner")
	if err != nil {
		return nil, err
	}
	return &AddedThread{
		ID:    v["id"],
		Title: v["title"],
		Owner: v["owner"],
	}, nil
}

// ThreadDetail is a thread assembled for reading, together with its comments.
// Username and Comments are attached after construction and are not validated.
type ThreadDetail struct {
	ID       string
	Title    string
	Body     string
	Date     string
	Owner    string
	Username string
	Comments []CommentView
}

func ParseThreadDetail(p Payload) (*ThreadDetail, error) {
	v, err := requireStrings("THREAD_DETAIL", p, "id", "title", "body", "date", "owner")
	if err != nil {
		return nil, err
	}
	return &ThreadDetail{
		ID:    v["id"],
		Title: v["title"],
		Body:  v["body"],
		Date:  v["date"],
		Owner: v["owner"],
	}, nil
}

// ThreadRow is a stored thread as returned by ThreadRepository.GetThreadByID.
type ThreadRow struct {
	ID       string
	Title    string
	Body     string
	Date     string
	Owner    string
	Username string
}

// Payload returns the row in the shape ParseThreadDetail expects.
func (r ThreadRow) Payload() Payload {
	return Payload{
		"id":    r.ID,
		"title": r.Title,
		"body":  r.Body,
		"date":  r.Date,
		"owner": r.Owner,
	}
}

// DateLayout renders creation dates as ISO-8601 UTC with milliseconds.
const DateLayout = "2006-01-02T15:04:05.000Z"

// FormatDate renders t in DateLayout.
func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}
