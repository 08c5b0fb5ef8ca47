package guardkit_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/guardkit"
	"github.com/dmitrymomot/guardkit/pkg/predicate"
)

func acceptAll(any) bool { return true }

func TestRegistryRegister(t *testing.T) {
	t.Run("records entries in order", func(t *testing.T) {
		reg := guardkit.NewRegistry()
		id := guardkit.Accessor("Owner", "Member")

		require.NoError(t, reg.Register(id, guardkit.Entry{Predicate: acceptAll, Template: "first"}))
		require.NoError(t, reg.Register(id, guardkit.Entry{Predicate: acceptAll, Template: "second"}))

		entries := reg.Lookup(id)
		require.Len(t, entries, 2)
		assert.Equal(t, "first", entries[0].Template)
		assert.Equal(t, "second", entries[1].Template)
	})

	t.Run("duplicate registration yields independent entries", func(t *testing.T) {
		reg := guardkit.NewRegistry()
		id := guardkit.Accessor("Owner", "Member")
		entry := guardkit.Entry{Predicate: acceptAll, Template: "same"}

		require.NoError(t, reg.Register(id, entry))
		require.NoError(t, reg.Register(id, entry))

		assert.Len(t, reg.Lookup(id), 2)
	})

	t.Run("rejects invalid identity", func(t *testing.T) {
		reg := guardkit.NewRegistry()

		err := reg.Register(guardkit.Identity{}, guardkit.Entry{Predicate: acceptAll})
		assert.True(t, guardkit.IsConfigError(err))
	})

	t.Run("rejects nil predicate", func(t *testing.T) {
		reg := guardkit.NewRegistry()

		err := reg.Register(guardkit.Accessor("Owner", "Member"), guardkit.Entry{})
		assert.True(t, guardkit.IsConfigError(err))
	})
}

func TestRegistryLookup(t *testing.T) {
	t.Run("unknown identity returns no entries", func(t *testing.T) {
		reg := guardkit.NewRegistry()

		assert.Empty(t, reg.Lookup(guardkit.Accessor("Never", "Seen")))
	})

	t.Run("returns a snapshot callers cannot corrupt", func(t *testing.T) {
		reg := guardkit.NewRegistry()
		id := guardkit.Accessor("Owner", "Member")
		require.NoError(t, reg.Register(id, guardkit.Entry{Predicate: acceptAll, Template: "original"}))

		snapshot := reg.Lookup(id)
		snapshot[0].Template = "corrupted"

		assert.Equal(t, "original", reg.Lookup(id)[0].Template)
	})

	t.Run("concurrent reads are safe", func(t *testing.T) {
		reg := guardkit.NewRegistry()
		id := guardkit.Accessor("Owner", "Member")
		require.NoError(t, reg.Register(id, guardkit.Entry{Predicate: acceptAll, Template: "x"}))

		var wg sync.WaitGroup
		for range 16 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for range 100 {
					_ = reg.Lookup(id)
					_ = reg.Check(id, 42)
				}
			}()
		}
		wg.Wait()
	})
}

func TestRegistryReset(t *testing.T) {
	reg := guardkit.NewRegistry()
	id := guardkit.Accessor("Owner", "Member")
	require.NoError(t, reg.Register(id, guardkit.Entry{Predicate: acceptAll}))

	reg.Reset()

	assert.Empty(t, reg.Lookup(id))
}

func TestDefaultRegistry(t *testing.T) {
	t.Cleanup(guardkit.Default().Reset)

	id := guardkit.Accessor("DefaultOwner", "Member")
	require.NoError(t, guardkit.Register(id, guardkit.Entry{
		Predicate: predicate.IsNumber(),
		Template:  "must be a number, got {{value}}",
	}))

	assert.Len(t, guardkit.Lookup(id), 1)
	assert.NoError(t, guardkit.Check(id, 5))
	assert.Error(t, guardkit.Check(id, "five"))
}
