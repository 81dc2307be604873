package models

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCartStoreAccumulatesQuantity(t *testing.T) {
	store := NewMemoryCartStore(time.Hour)
	ctx := context.Background()

	require.NoError(t, store.Add(ctx, "c1", 7, CartEntry{Quantity: 2, Unit: "kg", Size: "grande"}))
	require.NoError(t, store.Add(ctx, "c1", 7, CartEntry{Quantity: 3, Unit: "ud", Size: "pequeño"}))

	cart, err := store.Get(ctx, "c1")
	require.NoError(t, err)
	require.Len(t, cart, 1)

	entry := cart[7]
	assert.Equal(t, 5.0, entry.Quantity)
	// Variant fields keep the first add's values; only quantity accumulates.
	assert.Equal(t, "kg", entry.Unit)
	assert.Equal(t, "grande", entry.Size)
}

func TestMemoryCartStoreSeparateProducts(t *testing.T) {
	store := NewMemoryCartStore(time.Hour)
	ctx := context.Background()

	require.NoError(t, store.Add(ctx, "c1", 1, CartEntry{Quantity: 1, Unit: "kg"}))
	require.NoError(t, store.Add(ctx, "c1", 2, CartEntry{Quantity: 2, Unit: "ud"}))

	cart, err := store.Get(ctx, "c1")
	require.NoError(t, err)
	assert.Len(t, cart, 2)
}

func TestMemoryCartStoreRemoveAbsentIsNoop(t *testing.T) {
	store := NewMemoryCartStore(time.Hour)
	ctx := context.Background()

	require.NoError(t, store.Remove(ctx, "c1", 99))

	require.NoError(t, store.Add(ctx, "c1", 1, CartEntry{Quantity: 1}))
	require.NoError(t, store.Remove(ctx, "c1", 99))

	cart, err := store.Get(ctx, "c1")
	require.NoError(t, err)
	assert.Len(t, cart, 1)

	require.NoError(t, store.Remove(ctx, "c1", 1))
	cart, err = store.Get(ctx, "c1")
	require.NoError(t, err)
	assert.Empty(t, cart)
}

func TestMemoryCartStoreClear(t *testing.T) {
	store := NewMemoryCartStore(time.Hour)
	ctx := context.Background()

	require.NoError(t, store.Add(ctx, "c1", 1, CartEntry{Quantity: 1}))
	require.NoError(t, store.Clear(ctx, "c1"))

	cart, err := store.Get(ctx, "c1")
	require.NoError(t, err)
	assert.Empty(t, cart)
}

func TestMemoryCartStoreCartsAreIsolated(t *testing.T) {
	store := NewMemoryCartStore(time.Hour)
	ctx := context.Background()

	require.NoError(t, store.Add(ctx, "c1", 1, CartEntry{Quantity: 1}))

	cart, err := store.Get(ctx, "c2")
	require.NoError(t, err)
	assert.Empty(t, cart)
}

func TestMemoryCartStoreExpiry(t *testing.T) {
	store := NewMemoryCartStore(time.Hour)
	ctx := context.Background()

	current := time.Now()
	store.now = func() time.Time { return current }

	require.NoError(t, store.Add(ctx, "c1", 1, CartEntry{Quantity: 1}))

	current = current.Add(30 * time.Minute)
	cart, err := store.Get(ctx, "c1")
	require.NoError(t, err)
	assert.Len(t, cart, 1)

	// Mutation refreshed the TTL at add time only; past it, the cart is gone.
	current = current.Add(31 * time.Minute)
	cart, err = store.Get(ctx, "c1")
	require.NoError(t, err)
	assert.Empty(t, cart)
}

func TestMemoryCartStoreGetReturnsCopy(t *testing.T) {
	store := NewMemoryCartStore(time.Hour)
	ctx := context.Background()

	require.NoError(t, store.Add(ctx, "c1", 1, CartEntry{Quantity: 1}))

	cart, err := store.Get(ctx, "c1")
	require.NoError(t, err)
	cart[1] = CartEntry{Quantity: 100}

	fresh, err := store.Get(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, 1.0, fresh[1].Quantity)
}
