package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNewThread(t *testing.T) {
	tests := []struct {
		name    string
		payload Payload
		reason  error
		code    string
	}{
		{
			name:    "empty payload",
			payload: Payload{},
			reason:  ErrMissingProperty,
			code:    "NEW_THREAD.NOT_CONTAIN_NEEDED_PROPERTY",
		},
		{
			name:    "missing wins over wrong type",
			payload: Payload{"title": 123, "owner": "user"},
			reason:  ErrMissingProperty,
			code:    "NEW_THREAD.NOT_CONTAIN_NEEDED_PROPERTY",
		},
		{
			name:    "empty string counts as missing",
			payload: Payload{"title": "", "body": "abc", "owner": "user"},
			reason:  ErrMissingProperty,
			code:    "NEW_THREAD.NOT_CONTAIN_NEEDED_PROPERTY",
		},
		{
			name:    "title is not a string",
			payload: Payload{"title": float64(123), "body": "abc", "owner": "user"},
			reason:  ErrTypeMismatch,
			code:    "NEW_THREAD.NOT_MEET_DATA_TYPE_SPECIFICATION",
		},
		{
			name:    "title over fifty characters",
			payload: Payload{"title": strings.Repeat("a", 51), "body": "abc", "owner": "user"},
			reason:  ErrTitleTooLong,
			code:    "NEW_THREAD.TITLE_LIMIT_CHAR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			thread, err := ParseNewThread(tt.payload)

			require.Error(t, err)
			assert.Nil(t, thread)
			assert.True(t, IsValidationError(err))
			assert.ErrorIs(t, err, tt.reason)

			var domainErr *DomainError
			require.ErrorAs(t, err, &domainErr)
			assert.Equal(t, tt.code, domainErr.Code)
		})
	}

	t.Run("title of exactly fifty characters is accepted", func(t *testing.T) {
		title := strings.Repeat("é", MaxThreadTitleLength)
		thread, err := ParseNewThread(Payload{"title": title, "body": "abc", "owner": "user"})

		require.NoError(t, err)
		assert.Equal(t, title, thread.Title)
	})

	t.Run("valid payload is copied exactly", func(t *testing.T) {
		thread, err := ParseNewThread(Payload{"title": "title", "body": " body ", "owner": "user-123"})

		require.NoError(t, err)
		assert.Equal(t, &NewThread{Title: "title", Body: " body ", Owner: "user-123"}, thread)
	})
}

func TestParseAddedThread(t *testing.T) {
	_, err := ParseAddedThread(Payload{"id": "thread-123", "title": "title"})
	assert.ErrorIs(t, err, ErrMissingProperty)

	_, err = ParseAddedThread(Payload{"id": true, "title": "title", "owner": "user-123"})
	assert.ErrorIs(t, err, ErrTypeMismatch)

	added, err := ParseAddedThread(Payload{"id": "thread-123", "title": "title", "owner": "user-123"})
	require.NoError(t, err)
	assert.Equal(t, &AddedThread{ID: "thread-123", Title: "title", Owner: "user-123"}, added)
}

func TestParseThreadDetail(t *testing.T) {
	t.Run("missing owner", func(t *testing.T) {
		_, err := ParseThreadDetail(Payload{"id": "thread-123", "title": "title", "body": "body", "date": "date"})

		assert.ErrorIs(t, err, ErrMissingProperty)
	})

	t.Run("wrong types", func(t *testing.T) {
		_, err := ParseThreadDetail(Payload{"id": 123, "title": true, "body": "body", "date": "date", "owner": "user"})

		var domainErr *DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "THREAD_DETAIL.NOT_MEET_DATA_TYPE_SPECIFICATION", domainErr.Code)
		assert.Equal(t, "id", domainErr.Field)
	})

	t.Run("valid", func(t *testing.T) {
		detail, err := ParseThreadDetail(ThreadRow{
			ID: "thread-123", Title: "title", Body: "body", Date: "date", Owner: "user", Username: "dicoding",
		}.Payload())

		require.NoError(t, err)
		assert.Equal(t, &ThreadDetail{ID: "thread-123", Title: "title", Body: "body", Date: "date", Owner: "user"}, detail)
		assert.Nil(t, detail.Comments)
	})
}

func TestFormatDate(t *testing.T) {
	loc := time.FixedZone("WIB", 7*60*60)
	d := time.Date(2023, 1, 19, 7, 0, 0, 123456789, loc)

	assert.Equal(t, "2023-01-19T00:00:00.123Z", FormatDate(d))
}
