package cli

import (
	"encoding/json"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGoldie(t *testing.T) *goldie.Goldie {
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

func TestShow(t *testing.T) {
	out, _, err := execute(t, testOptions(), "", "show", "1,2,3")
	require.NoError(t, err)
	assert.Equal(t, "Array [size: 3]: 1, 2, 3\n", out)
}

func TestShow_Empty(t *testing.T) {
	out, _, err := execute(t, testOptions(), "", "show", "")
	require.NoError(t, err)
	assert.Equal(t, "Array [size: 0]: \n", out)
}

func TestShow_Russian(t *testing.T) {
	out, _, err := execute(t, testOptions(), "", "show", "1,2", "--lang", "ru")
	require.NoError(t, err)
	assert.Equal(t, "Массив [размер: 2]: 1, 2\n", out)
}

func TestShow_InvalidValue(t *testing.T) {
	out, _, err := execute(t, testOptions(), "", "show", "1,150")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "Error [E004]")
	assert.Contains(t, out, "value 150 must be in range [-100, 100]")
}

func TestShow_Malformed(t *testing.T) {
	out, _, err := execute(t, testOptions(), "", "show", "1,x")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, out, "Error [E002]")
}

func TestShow_EmptyElement(t *testing.T) {
	out, _, err := execute(t, testOptions(), "", "show", "1,,2")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, out, "Error [E002]: element 1 is empty")
}

func TestAdd_Saturates(t *testing.T) {
	out, _, err := execute(t, testOptions(), "", "add", "100,1", "5,2,3")
	require.NoError(t, err)
	assert.Equal(t, "Array [size: 3]: 100, 3, 3\n", out)
}

func TestSub_NegativeOperands(t *testing.T) {
	out, _, err := execute(t, testOptions(), "", "sub", "--", "-100,5", "50,-5,1")
	require.NoError(t, err)
	assert.Equal(t, "Array [size: 3]: -100, 10, -1\n", out)
}

func TestAdd_JSON(t *testing.T) {
	out, _, err := execute(t, testOptions(), "", "add", "1,2", "3", "--format", "json")
	require.NoError(t, err)

	var resp struct {
		Status string       `json:"status"`
		Data   VectorResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, VectorResult{Length: 2, Values: []int{4, 2}}, resp.Data)
}

func TestAppend(t *testing.T) {
	out, _, err := execute(t, testOptions(), "", "append", "1,2", "--", "-7")
	require.NoError(t, err)
	assert.Equal(t, "Array [size: 3]: 1, 2, -7\n", out)
}

func TestAppend_InvalidValue(t *testing.T) {
	out, _, err := execute(t, testOptions(), "", "append", "1,2", "101")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "Error [E004]")
}

func TestAppend_NotANumber(t *testing.T) {
	out, _, err := execute(t, testOptions(), "", "append", "1,2", "seven")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, out, "Error [E002]")
}

func TestStats_Golden(t *testing.T) {
	out, _, err := execute(t, testOptions(), "", "stats", "4,1,3,2")
	require.NoError(t, err)
	newGoldie(t).Assert(t, "stats_text", []byte(out))
}

func TestStats_JSON(t *testing.T) {
	out, _, err := execute(t, testOptions(), "", "stats", "--format", "json", "--", "-100,100")
	require.NoError(t, err)

	var resp struct {
		Data struct {
			Count  int     `json:"count"`
			Mean   float64 `json:"mean"`
			Median float64 `json:"median"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, 2, resp.Data.Count)
	assert.Equal(t, 0.0, resp.Data.Mean)
	assert.Equal(t, 0.0, resp.Data.Median)
}

func TestStats_Empty(t *testing.T) {
	out, _, err := execute(t, testOptions(), "", "stats", "")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "Error [E006]")
}
