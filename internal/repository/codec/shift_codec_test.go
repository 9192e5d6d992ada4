package codec

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"workshift-bot/internal/model"
)

func workDay(date, start, end string, completed bool) model.ShiftRecord {
	return model.ShiftRecord{
		ID:          date,
		Date:        date,
		IsWorkDay:   true,
		StartTime:   start,
		EndTime:     end,
		IsCompleted: completed,
	}
}

func TestCompressSkipsNonWorkDays(t *testing.T) {
	shifts := map[string]model.ShiftRecord{
		"2025-03-10": workDay("2025-03-10", "03:00", "11:00", true),
		"2025-03-11": workDay("2025-03-11", "02:00", "10:00", false),
		"2025-03-12": {ID: "2025-03-12", Date: "2025-03-12", StartTime: "02:00", EndTime: "10:00"},
	}

	got := Compress(shifts)

	assert.Equal(t, map[string]string{
		"2025-03-10": "03:00|11:00|1",
		"2025-03-11": "02:00|10:00|0",
	}, got)
}

func TestDecompressRestoresWorkDays(t *testing.T) {
	shifts := map[string]model.ShiftRecord{
		"2025-03-10": workDay("2025-03-10", "03:00", "11:00", true),
		"2025-03-11": workDay("2025-03-11", "22:00", "06:00", false),
		"2025-03-12": {ID: "2025-03-12", Date: "2025-03-12", StartTime: "02:00", EndTime: "10:00"},
	}

	blob, err := EncodeBlob(shifts)
	require.NoError(t, err)
	got, err := DecodeBlob(blob)
	require.NoError(t, err)

	assert.Equal(t, map[string]model.ShiftRecord{
		"2025-03-10": shifts["2025-03-10"],
		"2025-03-11": shifts["2025-03-11"],
	}, got)
}

func TestDecodeBlobMixedLegacyAndCompact(t *testing.T) {
	blob := `{
		"2024-11-04": {"id":"2024-11-04","date":"2024-11-04","isWorkDay":true,"startTime":"03:00","endTime":"11:00","isCompleted":true},
		"2024-11-05": "02:00|10:00|0"
	}`

	got, err := DecodeBlob(blob)
	require.NoError(t, err)

	require.Len(t, got, 2)
	assert.Equal(t, workDay("2024-11-04", "03:00", "11:00", true), got["2024-11-04"])
	assert.Equal(t, workDay("2024-11-05", "02:00", "10:00", false), got["2024-11-05"])
}

func TestDecompressSkipsUnrecognizedEntries(t *testing.T) {
	raw := map[string]json.RawMessage{
		"2025-01-01": json.RawMessage(`42`),
		"2025-01-02": json.RawMessage(`"02:00"`),
		"2025-01-03": json.RawMessage(`{"date":"2025-01-03","isWorkDay":true}`),
		"2025-01-04": json.RawMessage(`null`),
		"2025-01-05": json.RawMessage(`["02:00","10:00"]`),
		"2025-01-06": json.RawMessage(`"02:00|10:00"`),
	}

	got := Decompress(raw)

	require.Len(t, got, 1)
	assert.Equal(t, workDay("2025-01-06", "02:00", "10:00", false), got["2025-01-06"])
}

func TestDecodeBlobKeepsLegacyRecordVerbatim(t *testing.T) {
	blob := `{"2024-10-01":{"id":"2024-10-01","date":"2024-10-01","isWorkDay":false,"startTime":"02:00","endTime":"10:00","isCompleted":false}}`

	got, err := DecodeBlob(blob)
	require.NoError(t, err)

	assert.False(t, got["2024-10-01"].IsWorkDay)
	assert.Equal(t, "2024-10-01", got["2024-10-01"].ID)
}

func TestDecodeBlobMalformed(t *testing.T) {
	_, err := DecodeBlob(`{"2025-01-01": `)
	assert.Error(t, err)

	_, err = DecodeBlob(`[1,2,3]`)
	assert.Error(t, err)

	got, err := DecodeBlob("")
	require.NoError(t, err)
	assert.Empty(t, got)
}
