package csvmap

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead(t *testing.T) {
	input := "Program_Name,Start_Date,Details\nSummer 2026,2026-06-01,Backend track\nWinter 2026,,\n"

	records, err := Read(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "Summer 2026", records[0]["program_name"])
	assert.Equal(t, "2026-06-01", records[0]["start_date"])
	assert.Equal(t, "Backend track", records[0]["details"])
	assert.Equal(t, "", records[1]["start_date"])
}

func TestReadHeaderOnly(t *testing.T) {
	records, err := Read(strings.NewReader("program_name,start_date\n"))
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestReadEmptyDocument(t *testing.T) {
	_, err := Read(strings.NewReader(""))
	assert.Error(t, err)
}

func TestReadRaggedRow(t *testing.T) {
	_, err := Read(strings.NewReader("a,b\n1,2,3\n"))
	assert.Error(t, err)
}
