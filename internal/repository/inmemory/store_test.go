package inmemory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/odryna/blog-platform/backend/internal/apperror"
	"github.com/odryna/blog-platform/backend/internal/models"
	"github.com/odryna/blog-platform/backend/internal/moderation"
)

func newTestStore(t *testing.T) (*Store, *models.Post) {
	t.Helper()
	store := New(moderation.New([]string{"damn", "hell"}))
	ctx := context.Background()

	_, err := store.Create(ctx, models.RegisterRequest{
		FirstName: "Alice",
		LastName:  "Author",
		Email:     "alice@example.com",
		Password:  "secret123",
	})
	require.NoError(t, err)

	post, err := store.CreatePost(ctx, models.PostData{
		Title:       "First post",
		Content:     "Some content",
		IsPublished: true,
	}, 1)
	require.NoError(t, err)

	return store, post
}

// === users ===

func TestCreateUser_HashesPassword(t *testing.T) {
	store := New(moderation.New(nil))
	ctx := context.Background()

	user, err := store.Create(ctx, models.RegisterRequest{
		FirstName: "Bob",
		LastName:  "B",
		Email:     "bob@example.com",
		Password:  "plaintext",
	})
	require.NoError(t, err)
	assert.NotEqual(t, "plaintext", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("plaintext")))
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	_, err := store.Create(ctx, models.RegisterRequest{
		FirstName: "Other",
		LastName:  "Person",
		Email:     "alice@example.com",
		Password:  "secret123",
	})
	assert.ErrorIs(t, err, apperror.ErrDuplicate)
}

func TestGetByEmail_Unknown(t *testing.T) {
	store, _ := newTestStore(t)
	_, err := store.GetByEmail(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, apperror.ErrAuthentication)
}

// === moderation on the write path ===

func TestCreatePost_ProfaneTitleIsBlocked(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	post, err := store.CreatePost(ctx, models.PostData{
		Title:       "A damn fine title",
		Content:     "clean content",
		IsPublished: true,
	}, 1)
	require.NoError(t, err)
	assert.True(t, post.IsBlocked)
}

func TestCreateComment_ProfaneTextIsBlocked(t *testing.T) {
	store, post := newTestStore(t)
	ctx := context.Background()

	comment, err := store.CreateComment(ctx, models.CommentData{Text: "what the hell"}, post.ID, 1)
	require.NoError(t, err)
	assert.True(t, comment.IsBlocked)

	clean, err := store.CreateComment(ctx, models.CommentData{Text: "hello there"}, post.ID, 1)
	require.NoError(t, err)
	assert.False(t, clean.IsBlocked)
}

func TestUpdate_BlockedFlagIsNeverCleared(t *testing.T) {
	store, post := newTestStore(t)
	ctx := context.Background()

	comment, err := store.CreateComment(ctx, models.CommentData{Text: "damn"}, post.ID, 1)
	require.NoError(t, err)
	require.True(t, comment.IsBlocked)

	// cleaning up the text does not unblock the comment
	updated, err := store.UpdateComment(ctx, post.ID, comment.ID, models.CommentData{Text: "all clean now"}, 1)
	require.NoError(t, err)
	assert.True(t, updated.IsBlocked)
}

func TestUpdatePost_ProfaneEditBecomesBlocked(t *testing.T) {
	store, post := newTestStore(t)
	ctx := context.Background()
	require.False(t, post.IsBlocked)

	updated, err := store.UpdatePost(ctx, post.ID, models.PostData{
		Title:       post.Title,
		Content:     "now with damn in it",
		IsPublished: true,
	}, 1)
	require.NoError(t, err)
	assert.True(t, updated.IsBlocked)
}

// === read-path policy ===

func TestListPublished_ExcludesBlockedAndUnpublished(t *testing.T) {
	store, published := newTestStore(t)
	ctx := context.Background()

	blocked, err := store.CreatePost(ctx, models.PostData{
		Title: "damn", Content: "x", IsPublished: true,
	}, 1)
	require.NoError(t, err)
	require.True(t, blocked.IsBlocked)

	draft, err := store.CreatePost(ctx, models.PostData{
		Title: "Draft", Content: "x", IsPublished: false,
	}, 1)
	require.NoError(t, err)

	posts, err := store.ListPublished(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, published.ID, posts[0].ID)

	// blocked and draft posts are still reachable by direct id lookup
	got, err := store.GetPostByID(ctx, blocked.ID)
	require.NoError(t, err)
	assert.True(t, got.IsBlocked)
	_, err = store.GetPostByID(ctx, draft.ID)
	require.NoError(t, err)
}

func TestListByPost_ExcludesBlockedImmediately(t *testing.T) {
	store, post := newTestStore(t)
	ctx := context.Background()

	_, err := store.CreateComment(ctx, models.CommentData{Text: "nice post"}, post.ID, 1)
	require.NoError(t, err)
	blocked, err := store.CreateComment(ctx, models.CommentData{Text: "damn"}, post.ID, 1)
	require.NoError(t, err)

	comments, err := store.ListByPost(ctx, post.ID)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, "nice post", comments[0].Text)

	// still reachable directly
	got, err := store.GetCommentByID(ctx, post.ID, blocked.ID)
	require.NoError(t, err)
	assert.True(t, got.IsBlocked)
}

func TestListByPost_NewestFirst(t *testing.T) {
	store, post := newTestStore(t)
	ctx := context.Background()

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	for i, text := range []string{"first", "second", "third"} {
		when := base.Add(time.Duration(i) * time.Hour)
		store.Now = func() time.Time { return when }
		_, err := store.CreateComment(ctx, models.CommentData{Text: text}, post.ID, 1)
		require.NoError(t, err)
	}

	comments, err := store.ListByPost(ctx, post.ID)
	require.NoError(t, err)
	require.Len(t, comments, 3)
	assert.Equal(t, "third", comments[0].Text)
	assert.Equal(t, "first", comments[2].Text)
}

// === authorization ===

func TestUpdatePost_NotAuthor(t *testing.T) {
	store, post := newTestStore(t)
	ctx := context.Background()

	_, err := store.UpdatePost(ctx, post.ID, models.PostData{
		Title: "hijacked", Content: "x", IsPublished: true,
	}, 99)
	assert.ErrorIs(t, err, apperror.ErrNotAuthor)

	// and the post is unchanged
	got, err := store.GetPostByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, "First post", got.Title)
}

func TestDeleteComment_NotAuthor(t *testing.T) {
	store, post := newTestStore(t)
	ctx := context.Background()

	comment, err := store.CreateComment(ctx, models.CommentData{Text: "mine"}, post.ID, 1)
	require.NoError(t, err)

	_, err = store.DeleteComment(ctx, post.ID, comment.ID, 2)
	assert.ErrorIs(t, err, apperror.ErrNotAuthor)

	_, err = store.GetCommentByID(ctx, post.ID, comment.ID)
	assert.NoError(t, err)
}

func TestUpdate_NonexistentIDFailsBeforeAuthorCheck(t *testing.T) {
	store, post := newTestStore(t)
	ctx := context.Background()

	_, err := store.UpdatePost(ctx, 999, models.PostData{Title: "t", Content: "c"}, 99)
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	_, err = store.DeleteComment(ctx, post.ID, 999, 99)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

// === threading ===

func TestCreateReply_ParentMustBelongToSamePost(t *testing.T) {
	store, post := newTestStore(t)
	ctx := context.Background()

	otherPost, err := store.CreatePost(ctx, models.PostData{
		Title: "Other", Content: "x", IsPublished: true,
	}, 1)
	require.NoError(t, err)

	parent, err := store.CreateComment(ctx, models.CommentData{Text: "root"}, post.ID, 1)
	require.NoError(t, err)

	// replying under the wrong post is a not-found, not a silent attach
	_, err = store.CreateReply(ctx, models.CommentData{Text: "reply"}, otherPost.ID, parent.ID, 1)
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	reply, err := store.CreateReply(ctx, models.CommentData{Text: "reply"}, post.ID, parent.ID, 1)
	require.NoError(t, err)
	require.NotNil(t, reply.ParentCommentID)
	assert.Equal(t, parent.ID, *reply.ParentCommentID)
}

func TestCreateReply_MissingParent(t *testing.T) {
	store, post := newTestStore(t)
	_, err := store.CreateReply(context.Background(), models.CommentData{Text: "r"}, post.ID, 12345, 1)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestListReplies_OnlyDirectChildren(t *testing.T) {
	store, post := newTestStore(t)
	ctx := context.Background()

	parent, err := store.CreateComment(ctx, models.CommentData{Text: "root"}, post.ID, 1)
	require.NoError(t, err)
	reply, err := store.CreateReply(ctx, models.CommentData{Text: "child"}, post.ID, parent.ID, 1)
	require.NoError(t, err)
	_, err = store.CreateReply(ctx, models.CommentData{Text: "grandchild"}, post.ID, reply.ID, 1)
	require.NoError(t, err)

	replies, err := store.ListReplies(ctx, post.ID, parent.ID)
	require.NoError(t, err)
	require.Len(t, replies, 1)
	assert.Equal(t, "child", replies[0].Text)
}

func TestDeleteComment_CascadesToReplies(t *testing.T) {
	store, post := newTestStore(t)
	ctx := context.Background()

	parent, err := store.CreateComment(ctx, models.CommentData{Text: "root"}, post.ID, 1)
	require.NoError(t, err)
	reply, err := store.CreateReply(ctx, models.CommentData{Text: "child"}, post.ID, parent.ID, 1)
	require.NoError(t, err)

	_, err = store.DeleteComment(ctx, post.ID, parent.ID, 1)
	require.NoError(t, err)

	_, err = store.GetCommentByID(ctx, post.ID, reply.ID)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

// === analytics ===

func TestDailyCommentBreakdown(t *testing.T) {
	store, post := newTestStore(t)
	ctx := context.Background()

	days := []struct {
		when    time.Time
		texts   []string
		blocked int
	}{
		{time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC), []string{"one", "damn"}, 1},
		{time.Date(2024, 5, 3, 9, 0, 0, 0, time.UTC), []string{"three"}, 0},
		{time.Date(2024, 5, 5, 23, 30, 0, 0, time.UTC), []string{"five", "hell", "damn"}, 2},
	}
	for _, day := range days {
		when := day.when
		store.Now = func() time.Time { return when }
		for _, text := range day.texts {
			_, err := store.CreateComment(ctx, models.CommentData{Text: text}, post.ID, 1)
			require.NoError(t, err)
		}
	}

	stats, err := store.DailyCommentBreakdown(ctx, nil, nil)
	require.NoError(t, err)
	// sparse: May 2nd and 4th are absent; ascending by date
	require.Equal(t, []models.DailyCommentStats{
		{Date: "2024-05-01", TotalComments: 2, BlockedComments: 1},
		{Date: "2024-05-03", TotalComments: 1, BlockedComments: 0},
		{Date: "2024-05-05", TotalComments: 3, BlockedComments: 2},
	}, stats)
}

func TestDailyCommentBreakdown_RangeBoundsAreInclusive(t *testing.T) {
	store, post := newTestStore(t)
	ctx := context.Background()

	store.Now = func() time.Time { return time.Date(2024, 5, 5, 23, 30, 0, 0, time.UTC) }
	_, err := store.CreateComment(ctx, models.CommentData{Text: "late"}, post.ID, 1)
	require.NoError(t, err)

	from := time.Date(2024, 5, 5, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 5, 5, 0, 0, 0, 0, time.UTC)
	stats, err := store.DailyCommentBreakdown(ctx, &from, &to)
	require.NoError(t, err)
	require.Len(t, stats, 1)
	assert.Equal(t, "2024-05-05", stats[0].Date)

	// a range before the comment yields an empty series
	before := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	stats, err = store.DailyCommentBreakdown(ctx, &before, &before)
	require.NoError(t, err)
	assert.Empty(t, stats)
}
