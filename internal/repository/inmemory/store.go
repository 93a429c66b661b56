// Package inmemory implements the repository contracts with plain maps.
// It mirrors the behavior of the gormdb implementation and backs the
// handler tests, which need the full write-path semantics without a
// database.
package inmemory

import (
	"context"
	"sort"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/odryna/blog-platform/backend/internal/apperror"
	"github.com/odryna/blog-platform/backend/internal/models"
	"github.com/odryna/blog-platform/backend/internal/moderation"
)

type Store struct {
	mu     sync.RWMutex
	filter *moderation.Filter

	users        map[int]*models.User
	usersByEmail map[string]int
	posts        map[int]*models.Post
	comments     map[int]*models.Comment

	// parent comment id -> reply ids, for tree traversal
	repliesByParent map[int][]int

	nextUserID    int
	nextPostID    int
	nextCommentID int

	// Now supplies creation timestamps; tests override it to place
	// comments on specific days.
	Now func() time.Time
}

func New(filter *moderation.Filter) *Store {
	return &Store{
		filter:          filter,
		users:           make(map[int]*models.User),
		usersByEmail:    make(map[string]int),
		posts:           make(map[int]*models.Post),
		comments:        make(map[int]*models.Comment),
		repliesByParent: make(map[int][]int),
		Now:             func() time.Time { return time.Now().UTC() },
	}
}

// === users ===

func (s *Store) Create(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.usersByEmail[req.Email]; taken {
		return nil, apperror.Duplicate("user", "email")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	s.nextUserID++
	now := s.Now()
	user := &models.User{
		ID:        s.nextUserID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  string(hashed),
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.users[user.ID] = user
	s.usersByEmail[user.Email] = user.ID

	out := *user
	return &out, nil
}

func (s *Store) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.usersByEmail[email]
	if !ok {
		return nil, apperror.AuthenticationFailed("User not found")
	}
	out := *s.users[id]
	return &out, nil
}

func (s *Store) GetByID(ctx context.Context, id int) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, apperror.NotFound("user", id)
	}
	out := *user
	return &out, nil
}

// === posts ===

func (s *Store) CreatePost(ctx context.Context, data models.PostData, authorID int) (*models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextPostID++
	now := s.Now()
	post := &models.Post{
		ID:          s.nextPostID,
		Title:       data.Title,
		Content:     data.Content,
		AuthorID:    authorID,
		IsPublished: data.IsPublished,
		IsBlocked:   s.filter.IsProfane(data.Title + " " + data.Content),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.posts[post.ID] = post

	out := *post
	return &out, nil
}

func (s *Store) GetPostByID(ctx context.Context, id int) (*models.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	post, ok := s.posts[id]
	if !ok {
		return nil, apperror.NotFound("post", id)
	}
	out := *post
	return &out, nil
}

func (s *Store) ListPublished(ctx context.Context) ([]models.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	posts := make([]models.Post, 0)
	for _, p := range s.posts {
		if p.IsPublished && !p.IsBlocked {
			posts = append(posts, *p)
		}
	}
	sort.Slice(posts, func(i, j int) bool {
		if posts[i].CreatedAt.Equal(posts[j].CreatedAt) {
			return posts[i].ID > posts[j].ID
		}
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
	return posts, nil
}

func (s *Store) UpdatePost(ctx context.Context, id int, data models.PostData, requesterID int) (*models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	post, ok := s.posts[id]
	if !ok {
		return nil, apperror.NotFound("post", id)
	}
	if post.AuthorID != requesterID {
		return nil, apperror.NotAuthor("post")
	}

	post.Title = data.Title
	post.Content = data.Content
	post.IsPublished = data.IsPublished
	if s.filter.IsProfane(data.Title + " " + data.Content) {
		post.IsBlocked = true
	}
	post.UpdatedAt = s.Now()

	out := *post
	return &out, nil
}

func (s *Store) DeletePost(ctx context.Context, id, requesterID int) (*models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	post, ok := s.posts[id]
	if !ok {
		return nil, apperror.NotFound("post", id)
	}
	if post.AuthorID != requesterID {
		return nil, apperror.NotAuthor("post")
	}

	for cid, c := range s.comments {
		if c.PostID == id {
			delete(s.comments, cid)
			delete(s.repliesByParent, cid)
		}
	}
	delete(s.posts, id)

	out := *post
	return &out, nil
}

// === comments ===

func (s *Store) CreateComment(ctx context.Context, data models.CommentData, postID, authorID int) (*models.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.createCommentLocked(data, postID, nil, authorID)
}

func (s *Store) CreateReply(ctx context.Context, data models.CommentData, postID, parentID, authorID int) (*models.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	parent, ok := s.comments[parentID]
	if !ok || parent.PostID != postID {
		return nil, apperror.NotFound("comment", parentID)
	}
	return s.createCommentLocked(data, postID, &parentID, authorID)
}

func (s *Store) createCommentLocked(data models.CommentData, postID int, parentID *int, authorID int) (*models.Comment, error) {
	if _, ok := s.posts[postID]; !ok {
		return nil, apperror.NotFound("post", postID)
	}

	s.nextCommentID++
	now := s.Now()
	comment := &models.Comment{
		ID:              s.nextCommentID,
		Text:            data.Text,
		AuthorID:        authorID,
		PostID:          postID,
		ParentCommentID: parentID,
		IsBlocked:       s.filter.IsProfane(data.Text),
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	s.comments[comment.ID] = comment
	if parentID != nil {
		s.repliesByParent[*parentID] = append(s.repliesByParent[*parentID], comment.ID)
	}

	out := *comment
	return &out, nil
}

func (s *Store) GetCommentByID(ctx context.Context, postID, commentID int) (*models.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	comment, ok := s.comments[commentID]
	if !ok || comment.PostID != postID {
		return nil, apperror.NotFound("comment", commentID)
	}
	out := *comment
	return &out, nil
}

func (s *Store) ListByPost(ctx context.Context, postID int) ([]models.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	comments := make([]models.Comment, 0)
	for _, c := range s.comments {
		if c.PostID == postID && !c.IsBlocked {
			comments = append(comments, *c)
		}
	}
	sortCommentsNewestFirst(comments)
	return comments, nil
}

func (s *Store) ListReplies(ctx context.Context, postID, parentID int) ([]models.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	comments := make([]models.Comment, 0)
	for _, id := range s.repliesByParent[parentID] {
		c := s.comments[id]
		if c != nil && c.PostID == postID && !c.IsBlocked {
			comments = append(comments, *c)
		}
	}
	sortCommentsNewestFirst(comments)
	return comments, nil
}

func (s *Store) UpdateComment(ctx context.Context, postID, commentID int, data models.CommentData, requesterID int) (*models.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	comment, ok := s.comments[commentID]
	if !ok || comment.PostID != postID {
		return nil, apperror.NotFound("comment", commentID)
	}
	if comment.AuthorID != requesterID {
		return nil, apperror.NotAuthor("comment")
	}

	comment.Text = data.Text
	if s.filter.IsProfane(data.Text) {
		comment.IsBlocked = true
	}
	comment.UpdatedAt = s.Now()

	out := *comment
	return &out, nil
}

func (s *Store) DeleteComment(ctx context.Context, postID, commentID, requesterID int) (*models.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	comment, ok := s.comments[commentID]
	if !ok || comment.PostID != postID {
		return nil, apperror.NotFound("comment", commentID)
	}
	if comment.AuthorID != requesterID {
		return nil, apperror.NotAuthor("comment")
	}

	// cascade through the reply subtree
	frontier := []int{commentID}
	for len(frontier) > 0 {
		id := frontier[0]
		frontier = frontier[1:]
		frontier = append(frontier, s.repliesByParent[id]...)
		delete(s.comments, id)
		delete(s.repliesByParent, id)
	}

	out := *comment
	return &out, nil
}

// === analytics ===

func (s *Store) DailyCommentBreakdown(ctx context.Context, from, to *time.Time) ([]models.DailyCommentStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	type bucket struct {
		total   int
		blocked int
	}
	buckets := make(map[string]*bucket)

	for _, c := range s.comments {
		if from != nil && c.CreatedAt.Before(*from) {
			continue
		}
		if to != nil && !c.CreatedAt.Before(to.AddDate(0, 0, 1)) {
			continue
		}
		day := c.CreatedAt.Format("2006-01-02")
		b := buckets[day]
		if b == nil {
			b = &bucket{}
			buckets[day] = b
		}
		b.total++
		if c.IsBlocked {
			b.blocked++
		}
	}

	stats := make([]models.DailyCommentStats, 0, len(buckets))
	for day, b := range buckets {
		stats = append(stats, models.DailyCommentStats{
			Date:            day,
			TotalComments:   b.total,
			BlockedComments: b.blocked,
		})
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i].Date < stats[j].Date })
	return stats, nil
}

func sortCommentsNewestFirst(comments []models.Comment) {
	sort.Slice(comments, func(i, j int) bool {
		if comments[i].CreatedAt.Equal(comments[j].CreatedAt) {
			return comments[i].ID > comments[j].ID
		}
		return comments[i].CreatedAt.After(comments[j].CreatedAt)
	})
}
