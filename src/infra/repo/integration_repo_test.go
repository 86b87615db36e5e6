//go:build integration

package repo

import (
	"context"
	"fmt"
	"log"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"forumapi/src/core/domain"
	"forumapi/src/infra/db"
	"forumapi/src/infra/logger"
)

var pg *db.Postgres

func TestMain(m *testing.M) {
	ctx := context.Background()
	container := mustSetup(ctx)

	exitCode := m.Run()

	pg.Close()
	if err := container.Terminate(ctx); err != nil {
		log.Printf("failed to terminate container: %s", err)
	}
	os.Exit(exitCode)
}

func mustSetup(ctx context.Context) *postgres.PostgresContainer {
	container, err := postgres.Run(ctx,
		"postgres:15.3-alpine",
		postgres.WithDatabase("forumapi"),
		postgres.WithUsername("user"),
		postgres.WithPassword("password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		log.Fatalf("failed to start container: %s", err)
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		log.Fatalf("failed to obtain connection string: %s", err)
	}

	pg, err = db.Open(ctx, dsn, logger.Discard())
	if err != nil {
		log.Fatalf("failed to connect to postgres container: %s", err)
	}
	if err := pg.Migrate(ctx); err != nil {
		log.Fatalf("failed to migrate: %s", err)
	}
	return container
}

// seqIDs yields "1", "2", ... so inserted ids are predictable.
type seqIDs struct{ n atomic.Int64 }

func (s *seqIDs) NewID() string {
	return fmt.Sprint(s.n.Add(1))
}

// tickClock advances one second per call.
type tickClock struct{ t time.Time }

func (c *tickClock) Now() time.Time {
	c.t = c.t.Add(time.Second)
	return c.t
}

func cleanTables(t *testing.T) {
	t.Helper()
	_, err := pg.Pool.Exec(context.Background(), `TRUNCATE comments, threads, users CASCADE`)
	require.NoError(t, err)
}

func addUser(t *testing.T, id, username string) {
	t.Helper()
	_, err := pg.Pool.Exec(context.Background(),
		`INSERT INTO users (id, username, password, fullname) VALUES ($1, $2, 'secret', $2)`, id, username)
	require.NoError(t, err)
}

func newRepos() (*ThreadRepository, *CommentRepository) {
	ids := &seqIDs{}
	clock := &tickClock{t: time.Date(2021, 8, 8, 7, 19, 9, 0, time.UTC)}
	return NewThreadRepository(pg, ids, clock, logger.Discard()),
		NewCommentRepository(pg, ids, clock, logger.Discard())
}

func TestThreadRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("add and get", func(t *testing.T) {
		cleanTables(t)
		addUser(t, "user-123", "dicoding")
		threads, _ := newRepos()

		added, err := threads.AddNewThread(ctx, &domain.NewThread{Title: "a thread", Body: "body", Owner: "user-123"})
		require.NoError(t, err)
		assert.Equal(t, &domain.AddedThread{ID: "thread-1", Title: "a thread", Owner: "user-123"}, added)

		row, err := threads.GetThreadByID(ctx, "thread-1")
		require.NoError(t, err)
		assert.Equal(t, "dicoding", row.Username)
		assert.Equal(t, "2021-08-08T07:19:10.000Z", row.Date)
		assert.Equal(t, "body", row.Body)
	})

	t.Run("missing owner user yields empty username", func(t *testing.T) {
		cleanTables(t)
		threads, _ := newRepos()

		_, err := threads.AddNewThread(ctx, &domain.NewThread{Title: "t", Body: "b", Owner: "user-ghost"})
		require.NoError(t, err)

		row, err := threads.GetThreadByID(ctx, "thread-1")
		require.NoError(t, err)
		assert.Empty(t, row.Username)
	})

	t.Run("unknown thread", func(t *testing.T) {
		cleanTables(t)
		threads, _ := newRepos()

		_, err := threads.GetThreadByID(ctx, "thread-xyz")
		assert.True(t, domain.IsNotFound(err))
		assert.True(t, domain.IsNotFound(threads.VerifyAvailableThread(ctx, "thread-xyz")))
	})
}

func TestCommentRepository(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) *CommentRepository {
		cleanTables(t)
		addUser(t, "user-1", "alice")
		addUser(t, "user-2", "bob")
		threads, comments := newRepos()
		_, err := threads.AddNewThread(ctx, &domain.NewThread{Title: "t", Body: "b", Owner: "user-1"})
		require.NoError(t, err)
		return comments
	}

	t.Run("add and list in order", func(t *testing.T) {
		comments := setup(t)

		first, err := comments.AddComment(ctx, &domain.NewComment{Content: "first", ThreadID: "thread-1", Owner: "user-2"})
		require.NoError(t, err)
		assert.Equal(t, &domain.AddedComment{ID: "comment-2", Content: "first", Owner: "user-2"}, first)
		_, err = comments.AddComment(ctx, &domain.NewComment{Content: "second", ThreadID: "thread-1", Owner: "user-1"})
		require.NoError(t, err)

		rows, err := comments.GetCommentsByThreadID(ctx, "thread-1")
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, "first", rows[0].Content)
		assert.Equal(t, "bob", rows[0].Username)
		assert.Equal(t, "alice", rows[1].Username)
	})

	t.Run("ownership and membership", func(t *testing.T) {
		comments := setup(t)
		_, err := comments.AddComment(ctx, &domain.NewComment{Content: "c", ThreadID: "thread-1", Owner: "user-2"})
		require.NoError(t, err)

		assert.NoError(t, comments.VerifyCommentOwner(ctx, "comment-2", "user-2"))
		assert.True(t, domain.IsForbidden(comments.VerifyCommentOwner(ctx, "comment-2", "user-1")))
		assert.NoError(t, comments.VerifyCommentInThread(ctx, "comment-2", "thread-1"))
		assert.True(t, domain.IsNotFound(comments.VerifyCommentInThread(ctx, "comment-2", "thread-9")))
	})

	t.Run("soft delete keeps row", func(t *testing.T) {
		comments := setup(t)
		_, err := comments.AddComment(ctx, &domain.NewComment{Content: "c", ThreadID: "thread-1", Owner: "user-2"})
		require.NoError(t, err)

		require.NoError(t, comments.DeleteComment(ctx, "comment-2"))
		require.NoError(t, comments.DeleteComment(ctx, "comment-2"))

		rows, err := comments.GetCommentsByThreadID(ctx, "thread-1")
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.True(t, rows[0].IsDeleted)
		assert.Equal(t, "c", rows[0].Content)

		assert.True(t, domain.IsNotFound(comments.DeleteComment(ctx, "comment-404")))
	})

	t.Run("empty thread lists no comments", func(t *testing.T) {
		comments := setup(t)

		rows, err := comments.GetCommentsByThreadID(ctx, "thread-1")
		require.NoError(t, err)
		assert.NotNil(t, rows)
		assert.Empty(t, rows)
	})
}
