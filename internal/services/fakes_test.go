package services

import (
	"context"
	"database/sql"
	"sort"
	"strings"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/dmitrijs2005/microblog/internal/common"
	"github.com/dmitrijs2005/microblog/internal/config"
	"github.com/dmitrijs2005/microblog/internal/dbx"
	"github.com/dmitrijs2005/microblog/internal/models"
	"github.com/dmitrijs2005/microblog/internal/password"
	micropostsrepo "github.com/dmitrijs2005/microblog/internal/repositories/microposts"
	relationshipsrepo "github.com/dmitrijs2005/microblog/internal/repositories/relationships"
	"github.com/dmitrijs2005/microblog/internal/repositories/repomanager"
	usersrepo "github.com/dmitrijs2005/microblog/internal/repositories/users"
)

// --- in-memory fakes implementing the repository interfaces ---

type fakeUsersRepo struct {
	users  map[int64]*models.User
	nextID int64

	createErr error
	updateErr error
}

func newFakeUsersRepo() *fakeUsersRepo {
	return &fakeUsersRepo{users: map[int64]*models.User{}}
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	for _, existing := range f.users {
		if strings.EqualFold(existing.Email, u.Email) {
			return nil, common.ErrorDuplicate
		}
	}
	f.nextID++
	u.ID = f.nextID
	u.CreatedAt = time.Now()
	cp := *u
	f.users[u.ID] = &cp
	return u, nil
}

func (f *fakeUsersRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if strings.EqualFold(u.Email, email) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeUsersRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUsersRepo) UpdateRememberDigest(ctx context.Context, userID int64, digest *string) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	u, ok := f.users[userID]
	if !ok {
		return common.ErrorNotFound
	}
	u.RememberDigest = digest
	return nil
}

type edge struct{ follower, followed int64 }

type fakeRelationshipsRepo struct {
	edges map[edge]struct{}
}

func newFakeRelationshipsRepo() *fakeRelationshipsRepo {
	return &fakeRelationshipsRepo{edges: map[edge]struct{}{}}
}

func (f *fakeRelationshipsRepo) Create(ctx context.Context, followerID, followedID int64) error {
	e := edge{followerID, followedID}
	if _, ok := f.edges[e]; ok {
		return common.ErrorDuplicate
	}
	f.edges[e] = struct{}{}
	return nil
}

func (f *fakeRelationshipsRepo) Delete(ctx context.Context, followerID, followedID int64) error {
	delete(f.edges, edge{followerID, followedID})
	return nil
}

func (f *fakeRelationshipsRepo) Exists(ctx context.Context, followerID, followedID int64) (bool, error) {
	_, ok := f.edges[edge{followerID, followedID}]
	return ok, nil
}

func (f *fakeRelationshipsRepo) FollowingIDs(ctx context.Context, userID int64) ([]int64, error) {
	ids := make([]int64, 0)
	for e := range f.edges {
		if e.follower == userID {
			ids = append(ids, e.followed)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

func (f *fakeRelationshipsRepo) FollowerIDs(ctx context.Context, userID int64) ([]int64, error) {
	ids := make([]int64, 0)
	for e := range f.edges {
		if e.followed == userID {
			ids = append(ids, e.follower)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

type fakeMicropostsRepo struct {
	posts  []models.Micropost
	nextID int64
	rels   *fakeRelationshipsRepo
	clock  time.Time
}

func newFakeMicropostsRepo(rels *fakeRelationshipsRepo) *fakeMicropostsRepo {
	return &fakeMicropostsRepo{rels: rels, clock: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (f *fakeMicropostsRepo) Create(ctx context.Context, p *models.Micropost) (*models.Micropost, error) {
	f.nextID++
	f.clock = f.clock.Add(time.Second)
	p.ID = f.nextID
	p.CreatedAt = f.clock
	f.posts = append(f.posts, *p)
	return p, nil
}

// add inserts a post with an explicit id and timestamp, for ordering tests.
func (f *fakeMicropostsRepo) add(id, userID int64, content string, createdAt time.Time) {
	if id > f.nextID {
		f.nextID = id
	}
	f.posts = append(f.posts, models.Micropost{ID: id, UserID: userID, Content: content, CreatedAt: createdAt})
}

func (f *fakeMicropostsRepo) Feed(ctx context.Context, userID int64, limit, offset int) ([]models.Micropost, error) {
	visible := func(p models.Micropost) bool {
		if p.UserID == userID {
			return true
		}
		_, ok := f.rels.edges[edge{userID, p.UserID}]
		return ok
	}
	return f.page(visible, limit, offset), nil
}

func (f *fakeMicropostsRepo) ByAuthor(ctx context.Context, userID int64, limit, offset int) ([]models.Micropost, error) {
	return f.page(func(p models.Micropost) bool { return p.UserID == userID }, limit, offset), nil
}

func (f *fakeMicropostsRepo) page(visible func(models.Micropost) bool, limit, offset int) []models.Micropost {
	out := make([]models.Micropost, 0)
	for _, p := range f.posts {
		if visible(p) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	if offset >= len(out) {
		return []models.Micropost{}
	}
	out = out[offset:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out
}

type fakeRepoManager struct {
	u *fakeUsersRepo
	r *fakeRelationshipsRepo
	p *fakeMicropostsRepo
}

func newFakeRepoManager() *fakeRepoManager {
	u := newFakeUsersRepo()
	r := newFakeRelationshipsRepo()
	return &fakeRepoManager{u: u, r: r, p: newFakeMicropostsRepo(r)}
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Users(db dbx.DBTX) usersrepo.Repository      { return m.u }
func (m *fakeRepoManager) Relationships(db dbx.DBTX) relationshipsrepo.Repository {
	return m.r
}
func (m *fakeRepoManager) Microposts(db dbx.DBTX) micropostsrepo.Repository { return m.p }

var _ repomanager.RepositoryManager = (*fakeRepoManager)(nil)

// --- shared helpers ---

func newSQLMockDB(t testingT) *sql.DB {
	t.Helper()
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return db
}

// testingT is the subset of *testing.T the helpers need.
type testingT interface {
	Helper()
	Fatalf(format string, args ...any)
}

func testConfig() *config.Config {
	return &config.Config{
		BcryptCost:   password.MinCost,
		FeedPageSize: 30,
	}
}
