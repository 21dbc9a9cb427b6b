package shared

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCriteria_DateRange(t *testing.T) {
	c, err := BuildCriteria(ListQuery{StartDate: "01/01/2024", EndDate: "31/01/2024"})
	require.NoError(t, err)

	require.NotNil(t, c.CreatedAt.GTE)
	require.NotNil(t, c.CreatedAt.LTE)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), *c.CreatedAt.GTE)
	assert.Equal(t, time.Date(2024, 1, 31, 23, 59, 59, 999000000, time.UTC), *c.CreatedAt.LTE)
}

func TestBuildCriteria_StartDateOnly(t *testing.T) {
	c, err := BuildCriteria(ListQuery{StartDate: "15/06/2023"})
	require.NoError(t, err)

	require.NotNil(t, c.CreatedAt.GTE)
	assert.Nil(t, c.CreatedAt.LTE)
	assert.Equal(t, time.Date(2023, 6, 15, 0, 0, 0, 0, time.UTC), *c.CreatedAt.GTE)
}

func TestBuildCriteria_EndDateOnly(t *testing.T) {
	c, err := BuildCriteria(ListQuery{EndDate: "15/06/2023"})
	require.NoError(t, err)

	assert.Nil(t, c.CreatedAt.GTE)
	require.NotNil(t, c.CreatedAt.LTE)
	assert.Equal(t, time.Date(2023, 6, 15, 23, 59, 59, 999000000, time.UTC), *c.CreatedAt.LTE)
}

func TestBuildCriteria_ExactDate(t *testing.T) {
	c, err := BuildCriteria(ListQuery{ExactDate: "10/03/2024"})
	require.NoError(t, err)

	require.NotNil(t, c.CreatedAt.GTE)
	require.NotNil(t, c.CreatedAt.LTE)
	assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), *c.CreatedAt.GTE)
	assert.Equal(t, time.Date(2024, 3, 10, 23, 59, 59, 999000000, time.UTC), *c.CreatedAt.LTE)
}

func TestBuildCriteria_ExactDateOverriddenByExplicitBounds(t *testing.T) {
	// Explicit bounds are applied after the exact date, so they win.
	c, err := BuildCriteria(ListQuery{
		ExactDate: "10/03/2024",
		StartDate: "01/03/2024",
	})
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), *c.CreatedAt.GTE)
	assert.Equal(t, time.Date(2024, 3, 10, 23, 59, 59, 999000000, time.UTC), *c.CreatedAt.LTE)
}

func TestBuildCriteria_Empty(t *testing.T) {
	c, err := BuildCriteria(ListQuery{})
	require.NoError(t, err)

	assert.True(t, c.CreatedAt.IsZero())
	assert.Empty(t, c.Search)
	assert.Empty(t, c.SearchUnaccented)
	assert.Equal(t, 1, c.Page)
	assert.Equal(t, 20, c.PageSize)
}

func TestBuildCriteria_SearchKeepsRawAndStripsMirror(t *testing.T) {
	c, err := BuildCriteria(ListQuery{Search: "Café São"})
	require.NoError(t, err)

	assert.Equal(t, "Café São", c.Search)
	assert.Equal(t, "Cafe Sao", c.SearchUnaccented)
}

func TestBuildCriteria_MalformedDates(t *testing.T) {
	cases := []string{
		"31/02/2024", // not a real day
		"2024-01-01", // wrong format
		"aa/bb/cccc", // not numeric
		"32/01/2024", // day out of range
		"01/13/2024", // month out of range
	}

	for _, value := range cases {
		_, err := BuildCriteria(ListQuery{StartDate: value})
		require.Error(t, err, "value %q", value)

		var domainErr *DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_DATE", domainErr.Code)
		assert.Contains(t, domainErr.Message, "DD/MM/YYYY")
	}
}

func TestBuildCriteria_PaginationDefaults(t *testing.T) {
	c, err := BuildCriteria(ListQuery{Page: 3, PageSize: 50})
	require.NoError(t, err)
	assert.Equal(t, 3, c.Page)
	assert.Equal(t, 50, c.PageSize)

	c, err = BuildCriteria(ListQuery{Page: -1, PageSize: 0})
	require.NoError(t, err)
	assert.Equal(t, 1, c.Page)
	assert.Equal(t, 20, c.PageSize)
}
