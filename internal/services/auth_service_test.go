package services_test

import (
	"log"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"chefbook/internal/models"
	"chefbook/internal/services"
	"chefbook/internal/session"
)

// MockChefRepository is a mock implementation of repositories.ChefRepository
type MockChefRepository struct {
	mock.Mock
}

func (m *MockChefRepository) GetAll(sortBy, sortDirection string) ([]models.Chef, error) {
	args := m.Called(sortBy, sortDirection)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Chef), args.Error(1)
}

func (m *MockChefRepository) GetByID(id int) (*models.Chef, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Chef), args.Error(1)
}

func (m *MockChefRepository) Create(chef *models.Chef) error {
	args := m.Called(chef)
	return args.Error(0)
}

func (m *MockChefRepository) Update(chef *models.Chef) error {
	args := m.Called(chef)
	return args.Error(0)
}

func (m *MockChefRepository) Delete(id int) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockChefRepository) Search(term, sortBy, sortDirection string) ([]models.Chef, error) {
	args := m.Called(term, sortBy, sortDirection)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Chef), args.Error(1)
}

// TestMain is used to setup test environment
func TestMain(m *testing.M) {
	log.SetOutput(os.Stdout)
	code := m.Run()
	os.Exit(code)
}

func newAuthService(repo *MockChefRepository) (*services.AuthService, *session.Registry) {
	registry := session.NewRegistry()
	chefService := services.NewChefService(repo)
	return services.NewAuthService(chefService, registry, nil), registry
}

func TestAuthService_Register(t *testing.T) {
	mockRepo := new(MockChefRepository)
	authService, _ := newAuthService(mockRepo)

	chef := &models.Chef{
		Username: "testchef",
		Email:    "test@example.com",
		Password: "password123",
		IsAdmin:  true, // must be forced off
	}

	mockRepo.On("Search", chef.Username, "username", "asc").Return([]models.Chef{}, nil).Once()
	mockRepo.On("Create", mock.AnythingOfType("*models.Chef")).Run(func(args mock.Arguments) {
		args.Get(0).(*models.Chef).ID = 1
	}).Return(nil).Once()

	err := authService.Register(chef)
	assert.NoError(t, err)
	assert.Equal(t, 1, chef.ID)
	assert.False(t, chef.IsAdmin, "registration must not grant admin status")
	mockRepo.AssertExpectations(t)
}

func TestAuthService_Register_UsernameTaken(t *testing.T) {
	mockRepo := new(MockChefRepository)
	authService, _ := newAuthService(mockRepo)

	existing := models.Chef{ID: 7, Username: "testchef", Email: "old@example.com"}
	mockRepo.On("Search", "testchef", "username", "asc").Return([]models.Chef{existing}, nil).Once()

	err := authService.Register(&models.Chef{Username: "testchef", Password: "pw"})
	assert.ErrorIs(t, err, services.ErrUsernameTaken)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_Register_SubstringMatchIsNotConflict(t *testing.T) {
	mockRepo := new(MockChefRepository)
	authService, _ := newAuthService(mockRepo)

	// The store search matches substrings; only an exact username
	// collision counts as a conflict.
	similar := models.Chef{ID: 3, Username: "testchef99"}
	mockRepo.On("Search", "testchef", "username", "asc").Return([]models.Chef{similar}, nil).Once()
	mockRepo.On("Create", mock.AnythingOfType("*models.Chef")).Return(nil).Once()

	err := authService.Register(&models.Chef{Username: "testchef", Password: "pw"})
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_Login(t *testing.T) {
	mockRepo := new(MockChefRepository)
	authService, _ := newAuthService(mockRepo)

	chef := models.Chef{ID: 1, Username: "JoeCool", Email: "snoopy@null.com", Password: "redbarron"}
	mockRepo.On("Search", "JoeCool", "username", "asc").Return([]models.Chef{chef}, nil)

	token, err := authService.Login("JoeCool", "redbarron")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	resolved, err := authService.ChefFromToken(token)
	assert.NoError(t, err)
	if assert.NotNil(t, resolved) {
		assert.Equal(t, chef, *resolved)
	}

	// Wrong password: same error as an unknown user.
	_, err = authService.Login("JoeCool", "wrongpassword")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)

	mockRepo.On("Search", "nobody", "username", "asc").Return([]models.Chef{}, nil).Once()
	_, err = authService.Login("nobody", "redbarron")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
}

func TestAuthService_Login_RequiresExactUsername(t *testing.T) {
	mockRepo := new(MockChefRepository)
	authService, _ := newAuthService(mockRepo)

	// The search may return substring matches with the right password;
	// none of them must authenticate the shorter username.
	other := models.Chef{ID: 2, Username: "JoeCoolest", Password: "redbarron"}
	mockRepo.On("Search", "JoeCool", "username", "asc").Return([]models.Chef{other}, nil).Once()

	_, err := authService.Login("JoeCool", "redbarron")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
}

func TestAuthService_Logout(t *testing.T) {
	mockRepo := new(MockChefRepository)
	authService, _ := newAuthService(mockRepo)

	chef := models.Chef{ID: 1, Username: "JoeCool", Password: "redbarron"}
	mockRepo.On("Search", "JoeCool", "username", "asc").Return([]models.Chef{chef}, nil).Once()

	token, err := authService.Login("JoeCool", "redbarron")
	assert.NoError(t, err)

	assert.NoError(t, authService.Logout(token))

	resolved, err := authService.ChefFromToken(token)
	assert.NoError(t, err)
	assert.Nil(t, resolved)

	// Logout is idempotent.
	assert.NoError(t, authService.Logout(token))
}

func TestBcryptVerifier(t *testing.T) {
	verifier := services.BcryptVerifier{}

	stored, err := verifier.Hash("password123")
	assert.NoError(t, err)
	assert.NotEqual(t, "password123", stored)

	assert.True(t, verifier.Verify(stored, "password123"))
	assert.False(t, verifier.Verify(stored, "wrongpassword"))
}

func TestAuthService_BcryptRoundTrip(t *testing.T) {
	mockRepo := new(MockChefRepository)
	registry := session.NewRegistry()
	chefService := services.NewChefService(mockRepo)
	authService := services.NewAuthService(chefService, registry, services.BcryptVerifier{})

	var stored models.Chef
	mockRepo.On("Search", "testchef", "username", "asc").Return([]models.Chef{}, nil).Once()
	mockRepo.On("Create", mock.AnythingOfType("*models.Chef")).Run(func(args mock.Arguments) {
		chef := args.Get(0).(*models.Chef)
		chef.ID = 1
		stored = *chef
	}).Return(nil).Once()

	err := authService.Register(&models.Chef{Username: "testchef", Password: "password123"})
	assert.NoError(t, err)
	assert.NotEqual(t, "password123", stored.Password, "password must not be stored verbatim")

	mockRepo.On("Search", "testchef", "username", "asc").Return([]models.Chef{stored}, nil)

	token, err := authService.Login("testchef", "password123")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	_, err = authService.Login("testchef", "wrongpassword")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
}
