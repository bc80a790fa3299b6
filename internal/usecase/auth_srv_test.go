package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"movie-catalog/internal/data/entity"
	"movie-catalog/internal/data/repository"
	"movie-catalog/internal/dto/request"
	"movie-catalog/pkg/utils"
)

type fakeUserRepo struct {
	users map[primitive.ObjectID]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[primitive.ObjectID]*entity.User)}
}

func (f *fakeUserRepo) FindByID(_ context.Context, id primitive.ObjectID) (*entity.User, error) {
	return f.users[id], nil
}

func (f *fakeUserRepo) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	for _, user := range f.users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) Create(_ context.Context, user *entity.User) (primitive.ObjectID, error) {
	id := primitive.NewObjectID()
	user.ID = id
	f.users[id] = user
	return id, nil
}

type fakeSessionRepo struct {
	sessions  map[string]*entity.Session
	createErr error
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[string]*entity.Session)}
}

func (f *fakeSessionRepo) Create(_ context.Context, session *entity.Session) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.sessions[session.Token] = session
	return nil
}

func (f *fakeSessionRepo) FindValidSession(_ context.Context, token string) (*entity.Session, error) {
	session, ok := f.sessions[token]
	if !ok || session.ExpiresAt.Before(time.Now()) {
		return nil, nil
	}
	return session, nil
}

func (f *fakeSessionRepo) Revoke(_ context.Context, token string) error {
	delete(f.sessions, token)
	return nil
}

func newAuthFixture() (AuthService, *fakeUserRepo, *fakeSessionRepo) {
	users := newFakeUserRepo()
	sessions := newFakeSessionRepo()
	repo := &repository.Repository{User: users, Session: sessions}
	config := &utils.Config{Session: utils.SessionConfig{TTLHours: 24}}
	return NewAuthService(repo, config, zap.NewNop()), users, sessions
}

func TestRegisterCreatesUserAndSession(t *testing.T) {
	service, users, sessions := newAuthFixture()

	resp, err := service.Register(context.Background(), &request.RegisterRequest{
		Username: "alice", Password: "correct horse",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.Role != entity.RoleUser {
		t.Errorf("new accounts must get the user role, got %q", resp.Role)
	}
	if resp.Token == "" {
		t.Error("registration should log the user in")
	}
	if resp.ExpiresAt == nil || !resp.ExpiresAt.After(time.Now()) {
		t.Errorf("want a future expiry alongside the token, got %v", resp.ExpiresAt)
	}
	if _, ok := sessions.sessions[resp.Token]; !ok {
		t.Error("session not persisted")
	}

	stored, _ := users.FindByUsername(context.Background(), "alice")
	if stored == nil {
		t.Fatal("user not persisted")
	}
	if stored.PasswordHash == "correct horse" {
		t.Error("password stored in plain text")
	}
	if !utils.CheckPasswordHash("correct horse", stored.PasswordHash) {
		t.Error("stored hash does not verify the password")
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	service, _, _ := newAuthFixture()

	first := &request.RegisterRequest{Username: "alice", Password: "correct horse"}
	if _, err := service.Register(context.Background(), first); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := service.Register(context.Background(), &request.RegisterRequest{
		Username: "alice", Password: "another pass",
	})
	if !errors.Is(err, ErrUsernameTaken) {
		t.Fatalf("want ErrUsernameTaken, got %v", err)
	}
}

func TestLoginUniformFailure(t *testing.T) {
	service, _, _ := newAuthFixture()

	if _, err := service.Register(context.Background(), &request.RegisterRequest{
		Username: "alice", Password: "correct horse",
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// unknown username and wrong password must be indistinguishable
	_, unknownErr := service.Login(context.Background(), &request.LoginRequest{
		Username: "mallory", Password: "whatever!",
	})
	_, wrongPassErr := service.Login(context.Background(), &request.LoginRequest{
		Username: "alice", Password: "wrong password",
	})

	if !errors.Is(unknownErr, ErrInvalidCredentials) || !errors.Is(wrongPassErr, ErrInvalidCredentials) {
		t.Fatalf("want ErrInvalidCredentials for both, got %v and %v", unknownErr, wrongPassErr)
	}
	if unknownErr.Error() != wrongPassErr.Error() {
		t.Error("failure messages differ, enabling username enumeration")
	}
}

func TestLoginAndLogout(t *testing.T) {
	service, _, sessions := newAuthFixture()

	if _, err := service.Register(context.Background(), &request.RegisterRequest{
		Username: "alice", Password: "correct horse",
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	resp, err := service.Login(context.Background(), &request.LoginRequest{
		Username: "alice", Password: "correct horse",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Token == "" {
		t.Fatal("login returned no token")
	}

	session, _ := sessions.FindValidSession(context.Background(), resp.Token)
	if session == nil {
		t.Fatal("session not found after login")
	}
	if !session.ExpiresAt.After(time.Now()) {
		t.Error("session already expired")
	}

	if err := service.Logout(context.Background(), resp.Token); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if session, _ := sessions.FindValidSession(context.Background(), resp.Token); session != nil {
		t.Error("session still valid after logout")
	}
}

func TestRegisterSurvivesSessionFailure(t *testing.T) {
	users := newFakeUserRepo()
	sessions := newFakeSessionRepo()
	sessions.createErr = errors.New("store down")
	repo := &repository.Repository{User: users, Session: sessions}
	config := &utils.Config{Session: utils.SessionConfig{TTLHours: 24}}
	service := NewAuthService(repo, config, zap.NewNop())

	resp, err := service.Register(context.Background(), &request.RegisterRequest{
		Username: "alice", Password: "correct horse",
	})
	if err != nil {
		t.Fatalf("account creation should survive a session failure, got %v", err)
	}

	if stored, _ := users.FindByUsername(context.Background(), "alice"); stored == nil {
		t.Fatal("user not persisted")
	}
	if resp.Token != "" {
		t.Errorf("want no token without a session, got %q", resp.Token)
	}
	if resp.ExpiresAt != nil {
		t.Errorf("want no expiry without a session, got %v", resp.ExpiresAt)
	}
}

func TestRegisterValidation(t *testing.T) {
	service, _, _ := newAuthFixture()

	_, err := service.Register(context.Background(), &request.RegisterRequest{
		Username: "al", Password: "short",
	})

	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("want ValidationError, got %v", err)
	}
}
