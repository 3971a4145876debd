package pipeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimestamp_RFC3339(t *testing.T) {
	got, err := ParseTimestamp("2024-03-01T10:00:00Z")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC), got.UTC())
}

func TestParseTimestamp_RFC3339WithOffset(t *testing.T) {
	got, err := ParseTimestamp("2024-03-01T17:00:00+07:00")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC), got.UTC())
}

func TestParseTimestamp_NaiveIsUTC(t *testing.T) {
	// Pancake's inserted_at carries no zone and means UTC.
	got, err := ParseTimestamp("2024-06-15T03:00:00")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 15, 3, 0, 0, 0, time.UTC), got.UTC())
}

func TestParseTimestamp_Invalid(t *testing.T) {
	_, err := ParseTimestamp("")
	assert.Error(t, err)

	_, err = ParseTimestamp("yesterday")
	assert.Error(t, err)
}

func TestPartitionKey_YearMonth(t *testing.T) {
	assert.Equal(t, "data_202403", PartitionKey(time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)))
	assert.Equal(t, "data_202406", PartitionKey(time.Date(2024, 6, 15, 3, 0, 0, 0, time.UTC)))
}

func TestPartitionKey_SameMonthSameKey(t *testing.T) {
	// Pure function of the comment's own calendar month: day, time of day
	// and zone of arrival never change the key.
	a := time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC)
	b := time.Date(2024, 6, 28, 16, 59, 59, 0, time.UTC)
	c := time.Date(2024, 6, 15, 12, 0, 0, 0, time.FixedZone("ICT", 7*3600))
	assert.Equal(t, PartitionKey(a), PartitionKey(b))
	assert.Equal(t, PartitionKey(a), PartitionKey(c))
}

func TestPartitionKey_HoChiMinhCivilMonth(t *testing.T) {
	// 17:30 UTC on the last day of June is already July 1st in Ho Chi Minh;
	// the partition follows the civil month the operators see.
	late := time.Date(2024, 6, 30, 17, 30, 0, 0, time.UTC)
	assert.Equal(t, "data_202407", PartitionKey(late))
}

func TestFormatDisplay(t *testing.T) {
	// 03:00 UTC is 10:00 in Ho Chi Minh (UTC+7).
	got := FormatDisplay(time.Date(2024, 6, 15, 3, 0, 0, 0, time.UTC))
	assert.Equal(t, "15/06/2024 10:00:00", got)
}

func TestFormatDisplay_ZeroTime(t *testing.T) {
	assert.Empty(t, FormatDisplay(time.Time{}))
}
