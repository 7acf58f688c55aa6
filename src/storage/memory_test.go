package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	value int
}

func (f *fakeStore) Snapshot() interface{} { return f.value }
func (f *fakeStore) Restore(s interface{}) { f.value = s.(int) }

func TestWithinTxCommitsOnSuccess(t *testing.T) {
	store := &fakeStore{value: 1}
	m := NewMemoryManager(store)

	err := m.WithinTx(context.Background(), func(ctx context.Context) error {
		store.value = 2
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 2, store.value)
}

func TestWithinTxRestoresOnError(t *testing.T) {
	store := &fakeStore{value: 1}
	m := NewMemoryManager(store)
	boom := errors.New("boom")

	err := m.WithinTx(context.Background(), func(ctx context.Context) error {
		store.value = 2
		return boom
	})
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 1, store.value)
}

func TestWithinTxRestoresAllRegisteredStores(t *testing.T) {
	a := &fakeStore{value: 10}
	b := &fakeStore{value: 20}
	m := NewMemoryManager(a)
	m.Register(b)

	_ = m.WithinTx(context.Background(), func(ctx context.Context) error {
		a.value = 11
		b.value = 21
		return errors.New("boom")
	})
	assert.Equal(t, 10, a.value)
	assert.Equal(t, 20, b.value)
}

func TestNestedWithinTxJoinsEnclosingTransaction(t *testing.T) {
	store := &fakeStore{value: 1}
	m := NewMemoryManager(store)
	boom := errors.New("boom")

	// the outer transaction fails after the nested one succeeded; the
	// nested write must roll back with the rest
	err := m.WithinTx(context.Background(), func(ctx context.Context) error {
		if err := m.WithinTx(ctx, func(ctx context.Context) error {
			store.value = 2
			return nil
		}); err != nil {
			return err
		}
		store.value = 3
		return boom
	})
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 1, store.value)
}
