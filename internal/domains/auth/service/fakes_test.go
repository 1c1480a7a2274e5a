package service

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"hypehouse-backend/internal/domains/auth/model"
)

// fakeRepo giữ users và roles trong memory
type fakeRepo struct {
	mu        sync.Mutex
	users     map[uuid.UUID]*model.User
	roles     map[uuid.UUID]map[model.Role]bool
	roleErr   error
	lastLogin map[uuid.UUID]int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		users:     make(map[uuid.UUID]*model.User),
		roles:     make(map[uuid.UUID]map[model.Role]bool),
		lastLogin: make(map[uuid.UUID]int),
	}
}

func (f *fakeRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == model.NormalizedEmail(email) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, model.ErrUserNotFound
}

func (f *fakeRepo) FindByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeRepo) TouchLastLogin(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastLogin[id]++
	return nil
}

func (f *fakeRepo) HasRole(_ context.Context, userID uuid.UUID, role model.Role) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.roleErr != nil {
		return false, f.roleErr
	}
	return f.roles[userID][role], nil
}

func (f *fakeRepo) Create(_ context.Context, email, passwordHash string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == model.NormalizedEmail(email) {
			return nil, model.ErrEmailAlreadyExists
		}
	}
	u := &model.User{ID: uuid.New(), Email: model.NormalizedEmail(email), PasswordHash: passwordHash}
	f.users[u.ID] = u
	cp := *u
	return &cp, nil
}

func (f *fakeRepo) GrantRole(_ context.Context, userID uuid.UUID, role model.Role) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[userID]; !ok {
		return model.ErrUserNotFound
	}
	if f.roles[userID] == nil {
		f.roles[userID] = make(map[model.Role]bool)
	}
	f.roles[userID][role] = true
	return nil
}

func (f *fakeRepo) RevokeRole(_ context.Context, userID uuid.UUID, role model.Role) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	had := f.roles[userID][role]
	delete(f.roles[userID], role)
	return had, nil
}

func (f *fakeRepo) ListRoles(context.Context) ([]model.RoleAssignment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.RoleAssignment
	for id, roles := range f.roles {
		for r := range roles {
			out = append(out, model.RoleAssignment{UserID: id, Email: f.users[id].Email, Role: r})
		}
	}
	return out, nil
}
