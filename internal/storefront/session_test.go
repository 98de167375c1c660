package storefront_test

import (
	"context"
	"net/http"
	"path/filepath"
	"testing"

	"storefront/internal/models"
	"storefront/internal/storefront"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockAuthAPI is a mock implementation of storefront.AuthAPI.
type MockAuthAPI struct {
	mock.Mock
}

func (m *MockAuthAPI) Login(ctx context.Context, email, password string) (*models.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAuthAPI) Logout(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAuthAPI) Me(ctx context.Context) (*models.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

// fakeCarrier is a CookieCarrier with a settable jar.
type fakeCarrier struct {
	cookies []*http.Cookie
}

func (c *fakeCarrier) Cookies() []*http.Cookie { return c.cookies }
func (c *fakeCarrier) SetCookies(cookies []*http.Cookie) { c.cookies = cookies }

// fakeUserCarrier also tracks the signed-in user, like the offline backend.
type fakeUserCarrier struct {
	fakeCarrier
	user *models.User
}

func (c *fakeUserCarrier) SetUser(user *models.User) { c.user = user }

func TestFileStoreRoundTrip(t *testing.T) {
	store := &storefront.FileStore{Path: filepath.Join(t.TempDir(), "session.json")}

	// A missing file loads as an empty state.
	state, err := store.Load()
	assert.NoError(t, err)
	assert.Nil(t, state.User)

	saved := storefront.SessionState{
		User:    &models.User{ID: "u-1", Email: "demo@storefront.local"},
		Cookies: []*http.Cookie{{Name: "storefront_session", Value: "token-123"}},
	}
	assert.NoError(t, store.Save(saved))

	state, err = store.Load()
	assert.NoError(t, err)
	assert.Equal(t, "u-1", state.User.ID)
	assert.Len(t, state.Cookies, 1)
	assert.Equal(t, "token-123", state.Cookies[0].Value)

	assert.NoError(t, store.Clear())
	state, err = store.Load()
	assert.NoError(t, err)
	assert.Nil(t, state.User)

	// Clearing again is fine.
	assert.NoError(t, store.Clear())
}

func TestSessionLoginPersistsUserAndCookies(t *testing.T) {
	api := new(MockAuthAPI)
	store := &storefront.FileStore{Path: filepath.Join(t.TempDir(), "session.json")}
	session := storefront.NewSession(api, store)
	carrier := &fakeCarrier{cookies: []*http.Cookie{{Name: "storefront_session", Value: "token-123"}}}

	user := &models.User{ID: "u-1", Email: "demo@storefront.local"}
	api.On("Login", mock.Anything, "demo@storefront.local", "demo1234").Return(user, nil).Once()

	got, err := session.Login(context.Background(), carrier, "demo@storefront.local", "demo1234")
	assert.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	assert.Equal(t, user.ID, session.User().ID)

	// A fresh session restores the user and cookies from the store.
	restored := storefront.NewSession(api, store)
	freshCarrier := &fakeCarrier{}
	assert.NoError(t, restored.Restore(freshCarrier))
	assert.Equal(t, user.ID, restored.User().ID)
	assert.Len(t, freshCarrier.Cookies(), 1)
	api.AssertExpectations(t)
}

func TestSessionRestoreHandsUserToUserCarrier(t *testing.T) {
	api := new(MockAuthAPI)
	store := &storefront.FileStore{Path: filepath.Join(t.TempDir(), "session.json")}

	user := &models.User{ID: "u-1", Email: "demo@storefront.local"}
	assert.NoError(t, store.Save(storefront.SessionState{User: user}))

	// A carrier without cookies still gets the user back, so restored
	// sessions work against transports that track the user directly.
	carrier := &fakeUserCarrier{}
	session := storefront.NewSession(api, store)
	assert.NoError(t, session.Restore(carrier))
	assert.Equal(t, user.ID, session.User().ID)
	assert.NotNil(t, carrier.user)
	assert.Equal(t, user.ID, carrier.user.ID)
}

func TestSessionLogoutClearsEverything(t *testing.T) {
	api := new(MockAuthAPI)
	store := &storefront.FileStore{Path: filepath.Join(t.TempDir(), "session.json")}
	session := storefront.NewSession(api, store)

	user := &models.User{ID: "u-1"}
	api.On("Login", mock.Anything, "demo@storefront.local", "demo1234").Return(user, nil).Once()
	api.On("Logout", mock.Anything).Return(nil).Once()

	_, err := session.Login(context.Background(), nil, "demo@storefront.local", "demo1234")
	assert.NoError(t, err)

	assert.NoError(t, session.Logout(context.Background()))
	assert.Nil(t, session.User())

	state, err := store.Load()
	assert.NoError(t, err)
	assert.Nil(t, state.User)
	api.AssertExpectations(t)
}

func TestSessionHandleUnauthorizedKeepsStoredSnapshot(t *testing.T) {
	api := new(MockAuthAPI)
	store := &storefront.FileStore{Path: filepath.Join(t.TempDir(), "session.json")}
	session := storefront.NewSession(api, store)

	user := &models.User{ID: "u-1"}
	api.On("Login", mock.Anything, "demo@storefront.local", "demo1234").Return(user, nil).Once()
	_, err := session.Login(context.Background(), nil, "demo@storefront.local", "demo1234")
	assert.NoError(t, err)

	// The in-memory user drops, but the stored snapshot survives for the
	// re-login prompt.
	session.HandleUnauthorized()
	assert.Nil(t, session.User())

	state, err := store.Load()
	assert.NoError(t, err)
	assert.NotNil(t, state.User)
	assert.Equal(t, "u-1", state.User.ID)
	api.AssertExpectations(t)
}
