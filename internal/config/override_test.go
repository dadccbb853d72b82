package config

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daystacklabs/daystack/models"
)

func memStore() *OverrideStore {
	return NewOverrideStoreFs(afero.NewMemMapFs(), ".daystack/data")
}

func TestOverrideStoreRoundTrip(t *testing.T) {
	store := memStore()

	err := store.Save(models.DailyCapacity{Date: "2026-03-10", Domain: models.DomainLife, Minutes: 45})
	require.NoError(t, err)

	found := store.Find(models.DomainLife)
	require.NotNil(t, found)
	assert.Equal(t, 45, found.Minutes)
	assert.Equal(t, "2026-03-10", found.Date)

	assert.Nil(t, store.Find(models.DomainWork))
}

func TestOverrideStoreUpsertsPerDomain(t *testing.T) {
	store := memStore()

	require.NoError(t, store.Save(models.DailyCapacity{Date: "2026-03-10", Domain: models.DomainLife, Minutes: 45}))
	require.NoError(t, store.Save(models.DailyCapacity{Date: "2026-03-10", Domain: models.DomainWork, Minutes: 240}))
	require.NoError(t, store.Save(models.DailyCapacity{Date: "2026-03-11", Domain: models.DomainLife, Minutes: 60}))

	overrides := store.Load()
	assert.Len(t, overrides, 2, "one entry per domain")

	life := store.Find(models.DomainLife)
	require.NotNil(t, life)
	assert.Equal(t, 60, life.Minutes)
	assert.Equal(t, "2026-03-11", life.Date)
}

func TestOverrideStoreRejectsInvalid(t *testing.T) {
	store := memStore()

	err := store.Save(models.DailyCapacity{Date: "not-a-date", Domain: models.DomainLife, Minutes: 45})
	assert.Error(t, err)

	err = store.Save(models.DailyCapacity{Date: "2026-03-10", Domain: "weekend", Minutes: 45})
	assert.Error(t, err)
}

func TestOverrideStoreMissingFileIsEmpty(t *testing.T) {
	store := memStore()
	assert.Nil(t, store.Load())
	assert.Nil(t, store.Find(models.DomainLife))
}

func TestOverrideStoreClear(t *testing.T) {
	store := memStore()

	require.NoError(t, store.Save(models.DailyCapacity{Date: "2026-03-10", Domain: models.DomainLife, Minutes: 45}))
	require.NoError(t, store.Save(models.DailyCapacity{Date: "2026-03-10", Domain: models.DomainWork, Minutes: 240}))

	require.NoError(t, store.Clear(models.DomainLife))
	assert.Nil(t, store.Find(models.DomainLife))
	assert.NotNil(t, store.Find(models.DomainWork))

	// Clearing the last entry removes the file entirely.
	require.NoError(t, store.Clear(models.DomainWork))
	assert.Nil(t, store.Load())

	// Clearing with no file present is a no-op.
	require.NoError(t, store.Clear(models.DomainLife))
}
