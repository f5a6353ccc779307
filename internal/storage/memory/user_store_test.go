package memory

import (
	"fmt"
	"sync"
	"testing"

	"github.com/itchan-dev/authd/internal/domain"
	internal_errors "github.com/itchan-dev/authd/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testUser(t *testing.T) domain.User {
	t.Helper()
	email, err := domain.ParseEmail("test@example.com")
	require.NoError(t, err)
	password, err := domain.ParsePassword("password123")
	require.NoError(t, err)
	return domain.User{Email: email, Password: password}
}

func TestUserStore_AddUser(t *testing.T) {
	store := NewUserStore()
	user := testUser(t)

	require.NoError(t, store.AddUser(user))

	err := store.AddUser(user)
	assert.True(t, internal_errors.IsConflict(err))
}

func TestUserStore_GetUser(t *testing.T) {
	store := NewUserStore()
	user := testUser(t)
	require.NoError(t, store.AddUser(user))

	got, err := store.GetUser(user.Email)
	require.NoError(t, err)
	assert.Equal(t, user, got)

	_, err = store.GetUser("nonexistent@example.com")
	assert.True(t, internal_errors.IsNotFound(err))
}

func TestUserStore_ValidateUser(t *testing.T) {
	store := NewUserStore()
	user := testUser(t)
	require.NoError(t, store.AddUser(user))

	t.Run("unknown email", func(t *testing.T) {
		err := store.ValidateUser("nonexistent@example.com", "any_password")
		assert.True(t, internal_errors.IsNotFound(err), "lookup failure must take precedence")
	})

	t.Run("wrong password", func(t *testing.T) {
		err := store.ValidateUser(user.Email, "wrong_password")
		assert.True(t, internal_errors.IsStatus(err, 401))
	})

	t.Run("valid credentials", func(t *testing.T) {
		assert.NoError(t, store.ValidateUser(user.Email, user.Password))
	})
}

// Concurrent signups with the same email: exactly one must win.
func TestUserStore_ConcurrentAddUser(t *testing.T) {
	store := NewUserStore()
	user := testUser(t)

	const n = 50
	var wg sync.WaitGroup
	errs := make(chan error, n)

	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- store.AddUser(user)
		}()
	}
	wg.Wait()
	close(errs)

	var successes, conflicts int
	for err := range errs {
		if err == nil {
			successes++
		} else if internal_errors.IsConflict(err) {
			conflicts++
		}
	}
	assert.Equal(t, 1, successes)
	assert.Equal(t, n-1, conflicts)
}

func TestUserStore_ConcurrentReads(t *testing.T) {
	store := NewUserStore()
	for i := range 10 {
		email, _ := domain.ParseEmail(fmt.Sprintf("user%d@example.com", i))
		password, _ := domain.ParsePassword("password123")
		require.NoError(t, store.AddUser(domain.User{Email: email, Password: password}))
	}

	done := make(chan bool)
	for range 10 {
		go func() {
			for i := range 100 {
				email, _ := domain.ParseEmail(fmt.Sprintf("user%d@example.com", i%10))
				store.GetUser(email)
				store.ValidateUser(email, "password123")
			}
			done <- true
		}()
	}
	for range 10 {
		<-done
	}
}
