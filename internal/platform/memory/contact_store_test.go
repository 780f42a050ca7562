package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/phrazzld/phonebook-api/internal/domain"
	"github.com/phrazzld/phonebook-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSeededStore(t *testing.T) (*ContactStore, []domain.Contact) {
	t.Helper()
	seed := domain.SeedContacts()
	return NewContactStore(nil, seed...), seed
}

func TestContactStore_ListPreservesOrder(t *testing.T) {
	s, seed := newSeededStore(t)
	ctx := context.Background()

	got, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, len(seed))
	for i := range seed {
		assert.Equal(t, seed[i], *got[i])
	}

	count, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, count)
}

func TestContactStore_ListReturnsCopies(t *testing.T) {
	s, seed := newSeededStore(t)
	ctx := context.Background()

	got, err := s.List(ctx)
	require.NoError(t, err)
	got[0].Name = "changed"

	c, err := s.GetByID(ctx, seed[0].ID)
	require.NoError(t, err)
	assert.Equal(t, seed[0].Name, c.Name)
}

func TestContactStore_SeedAssignsMissingIDs(t *testing.T) {
	s := NewContactStore(nil, domain.Contact{Name: "Arto Hellas", Number: "040-123456"})
	got, err := s.List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.NotEqual(t, uuid.Nil, got[0].ID)
}

func TestContactStore_GetByID(t *testing.T) {
	s, seed := newSeededStore(t)
	ctx := context.Background()

	c, err := s.GetByID(ctx, seed[2].ID)
	require.NoError(t, err)
	assert.Equal(t, "Dan Abramov", c.Name)

	_, err = s.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, store.ErrContactNotFound)
}

func TestContactStore_CreateUnique(t *testing.T) {
	s, _ := newSeededStore(t)
	ctx := context.Background()

	taken, err := domain.NewContact("Ada Lovelace", "040-987654")
	require.NoError(t, err)
	err = s.CreateUnique(ctx, taken)
	assert.ErrorIs(t, err, store.ErrNameExists)
	assert.True(t, store.IsDuplicateError(err))

	var storeErr *store.StoreError
	require.ErrorAs(t, err, &storeErr)
	assert.Equal(t, "create", storeErr.Operation)

	// names are compared exactly
	other, err := domain.NewContact("ada lovelace", "040-987654")
	require.NoError(t, err)
	require.NoError(t, s.CreateUnique(ctx, other))

	count, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, count)

	err = s.CreateUnique(ctx, &domain.Contact{Name: "No ID", Number: "040-987654"})
	assert.ErrorIs(t, err, store.ErrInvalidEntity)
}

func TestContactStore_Create(t *testing.T) {
	s, _ := newSeededStore(t)
	ctx := context.Background()

	c, err := domain.NewContact("Grace Hopper", "040-987654")
	require.NoError(t, err)
	require.NoError(t, s.Create(ctx, c))

	all, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 5)
	assert.Equal(t, *c, *all[4], "new contacts are appended")

	err = s.Create(ctx, c)
	assert.ErrorIs(t, err, store.ErrDuplicate)

	err = s.Create(ctx, &domain.Contact{Name: "No ID", Number: "040-987654"})
	assert.ErrorIs(t, err, store.ErrInvalidEntity)
}

func TestContactStore_Update(t *testing.T) {
	s, seed := newSeededStore(t)
	ctx := context.Background()

	updated := domain.Contact{ID: seed[1].ID, Name: "Ada King", Number: "39-44-0000000"}
	require.NoError(t, s.Update(ctx, &updated))

	got, err := s.GetByID(ctx, seed[1].ID)
	require.NoError(t, err)
	assert.Equal(t, updated, *got)

	err = s.Update(ctx, &domain.Contact{ID: uuid.New(), Name: "Nobody", Number: "040-123456"})
	assert.ErrorIs(t, err, store.ErrContactNotFound)
}

func TestContactStore_Delete(t *testing.T) {
	s, seed := newSeededStore(t)
	ctx := context.Background()

	require.NoError(t, s.Delete(ctx, seed[1].ID))
	assert.ErrorIs(t, s.Delete(ctx, seed[1].ID), store.ErrContactNotFound)

	// the index must stay consistent for contacts after the removed one
	for _, c := range []domain.Contact{seed[0], seed[2], seed[3]} {
		got, err := s.GetByID(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, c, *got)
	}

	all, err := s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestContactStore_ConcurrentCreates(t *testing.T) {
	s := NewContactStore(nil)
	ctx := context.Background()

	const n = 50
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			c, err := domain.NewContact(fmt.Sprintf("Person %02d", i), "040-123456")
			if assert.NoError(t, err) {
				assert.NoError(t, s.Create(ctx, c))
			}
		}(i)
	}
	wg.Wait()

	count, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, n, count)
	assert.NoError(t, s.Ping(ctx))
}

func TestContactStore_ConcurrentCreateUniqueSameName(t *testing.T) {
	s := NewContactStore(nil)
	ctx := context.Background()

	const n = 16
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		created int
		start   = make(chan struct{})
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c, err := domain.NewContact("Arto Hellas", "040-123456")
			if !assert.NoError(t, err) {
				return
			}
			<-start
			err = s.CreateUnique(ctx, c)
			if err == nil {
				mu.Lock()
				created++
				mu.Unlock()
				return
			}
			assert.ErrorIs(t, err, store.ErrNameExists)
		}()
	}
	close(start)
	wg.Wait()

	assert.Equal(t, 1, created)
	count, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
