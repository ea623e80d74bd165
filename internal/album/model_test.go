package album

import (
	"testing"

	"github.com/SlpAus/turntable-backend/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindOrCreateDeduplicatesByFiveTuple(t *testing.T) {
	db := testutil.NewTestDB(t, &Album{})

	candidate := Album{
		AlbumName:   "Blue",
		ArtistName:  "Joni Mitchell",
		ReleaseYear: "1971",
		RecordType:  "LP",
		RecordImage: "https://img.example/blue.jpg",
	}

	first, err := FindOrCreate(db, candidate)
	require.NoError(t, err)
	require.NotZero(t, first.ID)

	second, err := FindOrCreate(db, candidate)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	var count int64
	require.NoError(t, db.Model(&Album{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestFindOrCreateDistinguishesVariants(t *testing.T) {
	db := testutil.NewTestDB(t, &Album{})

	base := Album{
		AlbumName:   "Blue",
		ArtistName:  "Joni Mitchell",
		ReleaseYear: "1971",
		RecordType:  "LP",
		RecordImage: "https://img.example/blue.jpg",
	}
	first, err := FindOrCreate(db, base)
	require.NoError(t, err)

	reissue := base
	reissue.ReleaseYear = "2021"
	second, err := FindOrCreate(db, reissue)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
}
