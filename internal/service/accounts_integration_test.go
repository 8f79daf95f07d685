//go:build integration

package service

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwhite7112/woodpantry-drinks/internal/db"
	"github.com/mwhite7112/woodpantry-drinks/internal/testutil"
)

func TestIntegrationAccounts_Lifecycle(t *testing.T) {
	sqlDB := testutil.SetupDB(t)
	svc := New(db.New(sqlDB), nil, 0.6)
	ctx := context.Background()

	created, err := svc.CreateAccount(ctx, "alice", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, "alice", created.Username)
	assert.NotEqual(t, "hunter2", created.PasswordHash)

	user, err := svc.Login(ctx, "alice", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)

	_, err = svc.Login(ctx, "alice", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.UpdatePassword(ctx, "alice", "correct horse")
	require.NoError(t, err)

	_, err = svc.Login(ctx, "alice", "hunter2")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = svc.Login(ctx, "alice", "correct horse")
	assert.NoError(t, err)
}

func TestIntegrationAccounts_UnknownUser(t *testing.T) {
	sqlDB := testutil.SetupDB(t)
	svc := New(db.New(sqlDB), nil, 0.6)

	_, err := svc.Login(context.Background(), "ghost", "secret")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.UpdatePassword(context.Background(), "ghost", "secret")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestIntegrationAccounts_ConcurrentCreate(t *testing.T) {
	sqlDB := testutil.SetupDB(t)
	svc := New(db.New(sqlDB), nil, 0.6)

	const n = 10
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		created   int
		conflicts int
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := svc.CreateAccount(context.Background(), "bob", fmt.Sprintf("pw-%d", i))
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				created++
			default:
				assert.ErrorIs(t, err, ErrConflict)
				conflicts++
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, created, "exactly one account wins")
	assert.Equal(t, n-1, conflicts)
}
