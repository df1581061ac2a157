package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/matrix-core/internal/domain/entities"
)

func birthdayAssets(t *testing.T) []entities.Asset {
	t.Helper()
	return entities.Assets(Normalize(mustDecode(t, `{"assets":[
		{"asset_id":"A-01","nome":"Ana","sobrenome":"Prado","data_nascimento":"2001-03-14"},
		{"asset_id":"A-02","nome":"Bruno","sobrenome":"Sa","data_nascimento":"1995-03-14"},
		{"asset_id":"A-03","nome":"Carla","sobrenome":"Dias","data_nascimento":"1990-03-02"},
		{"asset_id":"A-04","nome":"Davi","sobrenome":"Reis","data_nascimento":"1988-07-21"},
		{"asset_id":"A-05","nome":"Eva","sobrenome":"Luz","data_nascimento":"not-a-date"},
		{"asset_id":"A-06","nome":"Fabio","sobrenome":"Melo"}
	]}`), entities.KindAssets))
}

func TestAge(t *testing.T) {
	birth := time.Date(2001, time.March, 14, 0, 0, 0, 0, time.UTC)

	dayBefore := time.Date(2026, time.March, 13, 0, 0, 0, 0, time.UTC)
	onTheDay := time.Date(2026, time.March, 14, 0, 0, 0, 0, time.UTC)
	dayAfter := time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 24, Age(birth, dayBefore))
	assert.Equal(t, 25, Age(birth, onTheDay))
	assert.Equal(t, 25, Age(birth, dayAfter))
}

func TestParseBirthDateSkipsBadValues(t *testing.T) {
	assets := birthdayAssets(t)

	_, ok := ParseBirthDate(assets[4])
	assert.False(t, ok, "malformed date")
	_, ok = ParseBirthDate(assets[5])
	assert.False(t, ok, "absent date")
	dt, ok := ParseBirthDate(assets[0])
	require.True(t, ok)
	assert.Equal(t, time.March, dt.Month())
}

func TestBirthdaysInMonthSortsDayThenOldest(t *testing.T) {
	today := time.Date(2026, time.August, 30, 0, 0, 0, 0, time.UTC)

	entries := BirthdaysInMonth(birthdayAssets(t), time.March, today)
	require.Len(t, entries, 3)

	assert.Equal(t, "Carla", entries[0].Nome)
	// Same day: oldest first.
	assert.Equal(t, "Bruno", entries[1].Nome)
	assert.Equal(t, "Ana", entries[2].Nome)
	assert.Equal(t, 25, entries[2].Age)
}

func TestBirthdaysInMonthEmpty(t *testing.T) {
	today := time.Date(2026, time.August, 30, 0, 0, 0, 0, time.UTC)

	assert.Empty(t, BirthdaysInMonth(birthdayAssets(t), time.December, today))
}

func TestBirthdayCalendar(t *testing.T) {
	today := time.Date(2026, time.August, 30, 0, 0, 0, 0, time.UTC)

	cal := BirthdayCalendar(birthdayAssets(t), today)
	require.Len(t, cal, 2)
	require.Len(t, cal[time.March], 2)
	require.Len(t, cal[time.March][14], 2)
	assert.Equal(t, "Bruno", cal[time.March][14][0].Nome)
	assert.Equal(t, "Ana", cal[time.March][14][1].Nome)
	require.Len(t, cal[time.July][21], 1)
	assert.Equal(t, "Davi", cal[time.July][21][0].Nome)
}

func TestUpdateAges(t *testing.T) {
	assets := birthdayAssets(t)
	today := time.Date(2026, time.August, 30, 0, 0, 0, 0, time.UTC)

	updated := UpdateAges(assets, today)
	assert.Equal(t, 4, updated)

	age, ok := assets[0].Int("idade")
	require.True(t, ok)
	assert.Equal(t, 25, age)

	// Assets without a parsable date are left untouched.
	_, ok = assets[5].Int("idade")
	assert.False(t, ok)
}
