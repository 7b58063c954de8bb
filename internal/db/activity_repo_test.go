package db

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// activityRow is a test fixture matching the activityColumns scan order.
type activityRow struct {
	id           int64
	name         string
	category     string
	description  *string
	lat, lon     *float64
	minAge       *int
	maxAge       *int
	durationMin  *int
	openHours    []byte
	weatherFlags []string
	costTier     *int
	tags         []string
}

func (row activityRow) scanFn() func(dest ...any) error {
	return func(dest ...any) error {
		*dest[0].(*int64) = row.id
		*dest[1].(*string) = row.name
		*dest[2].(*string) = row.category
		*dest[3].(**string) = row.description
		*dest[4].(**float64) = row.lat
		*dest[5].(**float64) = row.lon
		*dest[6].(**int) = row.minAge
		*dest[7].(**int) = row.maxAge
		*dest[8].(**int) = row.durationMin
		*dest[9].(*[]byte) = row.openHours
		*dest[10].(*[]string) = row.weatherFlags
		*dest[11].(**int) = row.costTier
		*dest[12].(*[]string) = row.tags
		return nil
	}
}

func f64(v float64) *float64 { return &v }
func intp(v int) *int        { return &v }
func strp(v string) *string  { return &v }

func TestActivityRepository_List(t *testing.T) {
	dbtx := new(mockDBTX)
	repo := NewActivityRepository(dbtx)

	rows := newMockRows(
		activityRow{
			id: 1, name: "Community Park", category: "park",
			lat: f64(35.91), lon: f64(-79.05),
			weatherFlags: []string{"shade"},
			costTier:     intp(0),
			tags:         []string{"playground"},
		}.scanFn(),
		activityRow{
			id: 2, name: "Kidzu Museum", category: "museum",
			description: strp("hands-on exhibits"),
			lat:         f64(35.92), lon: f64(-79.06),
			durationMin:  intp(90),
			openHours:    []byte(`{"sat":[["10:00","17:00"]]}`),
			weatherFlags: []string{"indoor"},
			costTier:     intp(2),
		}.scanFn(),
	)
	dbtx.On("Query", mock.Anything, mock.AnythingOfType("string"), mock.Anything).
		Return(rows, nil)

	activities, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, activities, 2)

	assert.Equal(t, "Community Park", activities[0].Name)
	assert.Equal(t, 0, activities[0].CostTier)
	assert.Nil(t, activities[0].OpenHours)

	museum := activities[1]
	assert.Equal(t, "hands-on exhibits", museum.Description)
	assert.Equal(t, 2, museum.CostTier)
	require.NotNil(t, museum.OpenHours)
	assert.Len(t, museum.OpenHours["sat"], 1)
	dbtx.AssertExpectations(t)
}

func TestActivityRepository_List_SkipsMissingCoordinates(t *testing.T) {
	dbtx := new(mockDBTX)
	repo := NewActivityRepository(dbtx)

	rows := newMockRows(
		activityRow{id: 1, name: "No Location", category: "walk"}.scanFn(),
		activityRow{id: 2, name: "Located", category: "park", lat: f64(35.9), lon: f64(-79.0)}.scanFn(),
	)
	dbtx.On("Query", mock.Anything, mock.AnythingOfType("string"), mock.Anything).
		Return(rows, nil)

	activities, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, activities, 1)
	assert.Equal(t, int64(2), activities[0].ID)
}

func TestActivityRepository_List_MalformedHoursDegradeToUnknown(t *testing.T) {
	dbtx := new(mockDBTX)
	repo := NewActivityRepository(dbtx)

	rows := newMockRows(
		activityRow{
			id: 1, name: "Broken Hours", category: "library",
			lat: f64(35.9), lon: f64(-79.0),
			openHours: []byte(`{not json`),
		}.scanFn(),
	)
	dbtx.On("Query", mock.Anything, mock.AnythingOfType("string"), mock.Anything).
		Return(rows, nil)

	activities, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, activities, 1)
	assert.Nil(t, activities[0].OpenHours)
}

func TestActivityRepository_List_QueryError(t *testing.T) {
	dbtx := new(mockDBTX)
	repo := NewActivityRepository(dbtx)

	dbtx.On("Query", mock.Anything, mock.AnythingOfType("string"), mock.Anything).
		Return(nil, errors.New("connection refused"))

	_, err := repo.List(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "internal_database_error")
}
