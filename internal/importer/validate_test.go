package importer

import (
	"testing"

	"github.com/alexanderramin/slumber/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptrStr(s string) *string { return &s }
func ptrInt(i int) *int       { return &i }

func validFile() *ImportFile {
	return &ImportFile{Sessions: []SessionImport{
		{
			ID:        "a",
			Intervals: []IntervalImport{{Start: "2024-01-01T23:00", End: "2024-01-02T07:00"}},
			Date:      "2024-01-02T07:05:00.000Z",
			Notes:     ptrStr("fine"),
		},
		{
			Intervals: []IntervalImport{{Start: "2024-01-02T23:30", End: "2024-01-02T06:30"}},
		},
	}}
}

func TestValidateImportFile_Valid(t *testing.T) {
	assert.Empty(t, ValidateImportFile(validFile()))
}

func TestValidateImportFile_Empty(t *testing.T) {
	assert.Empty(t, ValidateImportFile(&ImportFile{}))
}

func TestValidateImportFile_CollectsAllErrors(t *testing.T) {
	file := &ImportFile{Sessions: []SessionImport{
		{ID: "a", Intervals: []IntervalImport{{Start: "2024-01-01T23:00", End: ""}}},
		{ID: "a", Intervals: nil, Date: "yesterday", TotalMinutes: ptrInt(-5)},
		{Intervals: []IntervalImport{{Start: "11pm", End: "2024-01-02T07:00"}}},
	}}

	errs := ValidateImportFile(file)
	require.Len(t, errs, 6)
	assert.EqualError(t, errs[0], "sleepSessions[0].sessions[0].end is required")
	assert.EqualError(t, errs[1], `sleepSessions[1].id: duplicate id "a"`)
	assert.ErrorIs(t, errs[2], domain.ErrNoIntervals)
	assert.Contains(t, errs[3].Error(), "sleepSessions[1].date")
	assert.Contains(t, errs[4].Error(), "totalMinutes")
	assert.ErrorIs(t, errs[5], domain.ErrInvalidTimestamp)
}

func TestParseImportFile_Shapes(t *testing.T) {
	bare := `[{"id":"a","sessions":[{"start":"2024-01-01T23:00","end":"2024-01-02T07:00"}]}]`
	wrapped := `{"sleepSessions":` + bare + `,"darkMode":"true"}`

	for name, doc := range map[string]string{"bare": bare, "wrapped": wrapped} {
		t.Run(name, func(t *testing.T) {
			file, err := ParseImportFile([]byte(doc))
			require.NoError(t, err)
			require.Len(t, file.Sessions, 1)
			assert.Equal(t, "a", file.Sessions[0].ID)
			assert.Equal(t, "2024-01-02T07:00", file.Sessions[0].Intervals[0].End)
		})
	}
}

func TestParseImportFile_Errors(t *testing.T) {
	_, err := ParseImportFile([]byte(`{"darkMode":"true"}`))
	assert.ErrorContains(t, err, "sleepSessions")

	_, err = ParseImportFile([]byte(`[{"sessions": 3}]`))
	assert.ErrorContains(t, err, "parsing import file")

	_, err = ParseImportFile([]byte(`not json`))
	assert.Error(t, err)
}

func TestLoadImportFile_Missing(t *testing.T) {
	_, err := LoadImportFile(t.TempDir() + "/nope.json")
	assert.Error(t, err)
}
