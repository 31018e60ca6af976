package memory

import (
	"testing"

	"github.com/simaogato/txengine/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountRepository_GetOrCreate(t *testing.T) {
	repo := NewAccountRepository()

	_, ok := repo.Get(1)
	assert.False(t, ok)
	assert.Equal(t, 0, repo.Len())

	created := repo.GetOrCreate(1)
	require.NotNil(t, created)
	assert.Equal(t, domain.ClientID(1), created.Client)
	assert.Equal(t, domain.Amount(0), created.Available)
	assert.Equal(t, domain.Amount(0), created.Held)
	assert.False(t, created.Locked)

	// Mutations through the returned pointer are visible on the next lookup
	created.Credit(50000)
	again := repo.GetOrCreate(1)
	assert.Same(t, created, again)
	assert.Equal(t, domain.Amount(50000), again.Available)

	got, ok := repo.Get(1)
	assert.True(t, ok)
	assert.Same(t, created, got)
	assert.Equal(t, 1, repo.Len())
}

func TestAccountRepository_List(t *testing.T) {
	repo := NewAccountRepository()
	repo.GetOrCreate(3)
	repo.GetOrCreate(1)
	repo.GetOrCreate(2)

	clients := make([]domain.ClientID, 0)
	for _, account := range repo.List() {
		clients = append(clients, account.Client)
	}

	assert.ElementsMatch(t, []domain.ClientID{1, 2, 3}, clients)
}
