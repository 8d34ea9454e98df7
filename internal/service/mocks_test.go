// internal/service/mocks_test.go
package service

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/mock"

	"bloglist/internal/domain"
	"bloglist/internal/repository"
)

// MockDBExecutor is a mock implementation of repository.DBExecutor.
type MockDBExecutor struct {
	mock.Mock
}

func (m *MockDBExecutor) GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	argsCalled := m.Called(ctx, dest, query, args)
	return argsCalled.Error(0)
}

func (m *MockDBExecutor) SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	argsCalled := m.Called(ctx, dest, query, args)
	return argsCalled.Error(0)
}

func (m *MockDBExecutor) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	argsCalled := m.Called(ctx, query, args)
	return argsCalled.Get(0).(sql.Result), argsCalled.Error(1)
}

func (m *MockDBExecutor) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	m.Called(ctx, query, args)
	return &sql.Row{}
}

// MockUserRepository is a mock implementation of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, q repository.DBExecutor, user *domain.User) error {
	args := m.Called(ctx, q, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, q repository.DBExecutor, id uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, q, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, q repository.DBExecutor, username string) (*domain.User, error) {
	args := m.Called(ctx, q, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context, q repository.DBExecutor) ([]domain.User, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) BlogIDs(ctx context.Context, q repository.DBExecutor, userID uuid.UUID) ([]uuid.UUID, error) {
	args := m.Called(ctx, q, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uuid.UUID), args.Error(1)
}

func (m *MockUserRepository) AppendBlog(ctx context.Context, q repository.DBExecutor, userID, blogID uuid.UUID) error {
	args := m.Called(ctx, q, userID, blogID)
	return args.Error(0)
}

func (m *MockUserRepository) RemoveBlog(ctx context.Context, q repository.DBExecutor, userID, blogID uuid.UUID) error {
	args := m.Called(ctx, q, userID, blogID)
	return args.Error(0)
}

// MockBlogRepository is a mock implementation of repository.BlogRepository.
type MockBlogRepository struct {
	mock.Mock
}

func (m *MockBlogRepository) Insert(ctx context.Context, q repository.DBExecutor, blog *domain.Blog) error {
	args := m.Called(ctx, q, blog)
	return args.Error(0)
}

func (m *MockBlogRepository) GetByID(ctx context.Context, q repository.DBExecutor, id uuid.UUID) (*domain.Blog, error) {
	args := m.Called(ctx, q, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Blog), args.Error(1)
}

func (m *MockBlogRepository) GetWithOwner(ctx context.Context, q repository.DBExecutor, id uuid.UUID) (*domain.BlogWithOwner, error) {
	args := m.Called(ctx, q, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BlogWithOwner), args.Error(1)
}

func (m *MockBlogRepository) Update(ctx context.Context, q repository.DBExecutor, blog *domain.Blog) error {
	args := m.Called(ctx, q, blog)
	return args.Error(0)
}

func (m *MockBlogRepository) Delete(ctx context.Context, q repository.DBExecutor, id uuid.UUID) error {
	args := m.Called(ctx, q, id)
	return args.Error(0)
}

func (m *MockBlogRepository) List(ctx context.Context, q repository.DBExecutor) ([]domain.Blog, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Blog), args.Error(1)
}

func (m *MockBlogRepository) ListWithOwners(ctx context.Context, q repository.DBExecutor) ([]domain.BlogWithOwner, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BlogWithOwner), args.Error(1)
}

// MockDBBeginner is a mock implementation of db.DBTxBeginner.
type MockDBBeginner struct {
	mock.Mock
}

func (m *MockDBBeginner) BeginTxx(ctx context.Context, opts *sql.TxOptions) (*sqlx.Tx, error) {
	args := m.Called(ctx, opts)
	return &sqlx.Tx{}, args.Error(1)
}

// MockTxController is a mock implementation of db.TxController.
// Embedding MockDBExecutor also satisfies repository.DBExecutor, mirroring
// how *sqlx.Tx plays both roles in production.
type MockTxController struct {
	mock.Mock
	MockDBExecutor
}

func (m *MockTxController) Commit() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockTxController) Rollback() error {
	args := m.Called()
	return args.Error(0)
}
