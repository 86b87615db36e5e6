package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNewComment(t *testing.T) {
	t.Run("empty payload", func(t *testing.T) {
		_, err := ParseNewComment(Payload{})

		assert.ErrorIs(t, err, ErrMissingProperty)
	})

	t.Run("content is not a string", func(t *testing.T) {
		_, err := ParseNewComment(Payload{"content": true, "threadId": "thread-123", "owner": "user-123"})

		assert.ErrorIs(t, err, ErrTypeMismatch)
	})

	t.Run("whitespace-only content", func(t *testing.T) {
		for _, content := range []string{" ", "\t", " \n\t "} {
			_, err := ParseNewComment(Payload{"content": content, "threadId": "thread-123", "owner": "user-123"})

			var domainErr *DomainError
			require.ErrorAs(t, err, &domainErr)
			assert.Equal(t, "NEW_COMMENT.NOT_BE_EMPTY_STRING", domainErr.Code)
			assert.ErrorIs(t, err, ErrEmptyContent)
		}
	})

	t.Run("valid payload is copied exactly", func(t *testing.T) {
		comment, err := ParseNewComment(Payload{"content": " comment ", "threadId": "thread-123", "owner": "user-123"})

		require.NoError(t, err)
		assert.Equal(t, &NewComment{Content: " comment ", ThreadID: "thread-123", Owner: "user-123"}, comment)
	})
}

func TestParseAddedComment(t *testing.T) {
	_, err := ParseAddedComment(Payload{"id": "comment-123", "content": "comment"})
	assert.ErrorIs(t, err, ErrMissingProperty)

	_, err = ParseAddedComment(Payload{"id": true, "content": 123, "owner": "user-123"})
	assert.ErrorIs(t, err, ErrTypeMismatch)

	added, err := ParseAddedComment(Payload{"id": "comment-123", "content": "comment", "owner": "user-123"})
	require.NoError(t, err)
	assert.Equal(t, &AddedComment{ID: "comment-123", Content: "comment", Owner: "user-123"}, added)
}

func TestCommentRowView(t *testing.T) {
	rows := []CommentRow{
		{ID: "comment-1", Username: "a", Date: "d1", Content: "c", IsDeleted: true},
		{ID: "comment-2", Username: "b", Date: "d2", Content: "c", IsDeleted: false},
		{ID: "comment-3", Username: "c", Date: "d3", Content: "", IsDeleted: true},
	}

	want := []CommentView{
		{ID: "comment-1", Username: "a", Date: "d1", Content: DeletedCommentContent},
		{ID: "comment-2", Username: "b", Date: "d2", Content: "c"},
		{ID: "comment-3", Username: "c", Date: "d3", Content: DeletedCommentContent},
	}
	for i, r := range rows {
		assert.Equal(t, want[i], r.View())
	}
}
