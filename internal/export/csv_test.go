package export

import (
	"bytes"
	"encoding/csv"
	"testing"

	"davisbacon/internal/analysis"
	"davisbacon/internal/model"
	"davisbacon/internal/scenario"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, buf *bytes.Buffer) [][]string {
	t.Helper()
	records, err := csv.NewReader(buf).ReadAll()
	require.NoError(t, err)
	return records
}

func TestWriteComparisonCSV(t *testing.T) {
	base, err := model.NewParameterSet(665_298)
	require.NoError(t, err)

	a := analysis.New(nil, nil)
	custom, err := model.NewParameterSet(400_000, model.WithMortgage(0.07))
	require.NoError(t, err)
	rows, err := a.Compare(base, []analysis.Entry{
		{Scenario: scenario.NationalAverage},
		{Label: "Starter home", Params: &custom},
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteComparisonCSV(&buf, rows))
	records := readCSV(t, &buf)

	require.Len(t, records, 3)
	assert.Equal(t, comparisonHeader, records[0])

	national := records[1]
	assert.Equal(t, scenario.NationalAverage, national[0])
	assert.Equal(t, scenario.NationalAverage, national[1])
	assert.Equal(t, "665298.00", national[2])
	assert.Equal(t, "0.400000", national[4])
	assert.Equal(t, "", national[6], "no mortgage rate")
	assert.Equal(t, "30", national[7])
	assert.Equal(t, "428451.91", national[8])
	assert.Equal(t, "171380.76", national[9])
	assert.Equal(t, "25707.11", national[10])
	assert.Equal(t, "0.038640", national[11])
	assert.Equal(t, "691005.11", national[12])
	assert.Equal(t, "INCREASE", national[13])
	assert.Equal(t, "", national[16])

	starter := records[2]
	assert.Equal(t, "Starter home", starter[0])
	assert.Equal(t, "", starter[1])
	assert.Equal(t, "0.070000", starter[6])
	assert.NotEmpty(t, starter[14])
	assert.NotEmpty(t, starter[17])
}

func TestWriteComparisonCSV_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteComparisonCSV(&buf, nil))
	assert.Len(t, readCSV(t, &buf), 1)
}

func TestWriteGridCSV(t *testing.T) {
	base, err := model.NewParameterSet(500_000)
	require.NoError(t, err)

	g, err := analysis.New(nil, nil).Grid(analysis.GridRequest{
		Base:    base,
		Rows:    analysis.AxisSpec{Field: model.FieldLaborShare, Steps: 3, Bounds: &model.Range{Min: 0.30, Max: 0.50}},
		Columns: analysis.AxisSpec{Field: model.FieldWagePremium, Steps: 3, Bounds: &model.Range{Min: 0, Max: 0.20}},
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteGridCSV(&buf, g, model.MetricWageIncrease))
	records := readCSV(t, &buf)

	require.Len(t, records, 4)
	assert.Equal(t, []string{`labor_share\wage_premium`, "0.000000", "0.100000", "0.200000"}, records[0])
	assert.Equal(t, "0.300000", records[1][0])
	assert.Equal(t, "0.500000", records[3][0])
	assert.Equal(t, "0.00", records[1][1])
	// 500000 * 0.644 * 0.50 * 0.20
	assert.Equal(t, "32200.00", records[3][3])
}

func TestWriteGridCSV_PercentUsesFractions(t *testing.T) {
	base, err := model.NewParameterSet(500_000)
	require.NoError(t, err)

	g, err := analysis.New(nil, nil).Grid(analysis.GridRequest{
		Base:    base,
		Rows:    analysis.AxisSpec{Field: model.FieldHomePrice, Steps: 2, Bounds: &model.Range{Min: 300_000, Max: 600_000}},
		Columns: analysis.AxisSpec{Field: model.FieldWagePremium, Steps: 2, Bounds: &model.Range{Min: 0, Max: 0.10}},
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteGridCSV(&buf, g, model.MetricPercentIncrease))
	records := readCSV(t, &buf)

	assert.Equal(t, "300000.00", records[1][0])
	// 0.644 * 0.40 * 0.10
	assert.Equal(t, "0.025760", records[1][2])
}

func TestFormatting(t *testing.T) {
	assert.Equal(t, "1234.57", Money(1234.5678))
	assert.Equal(t, "-0.50", Money(-0.5))
	assert.Equal(t, "0.150000", Fraction(0.15))
	assert.Equal(t, "-0.100000", Fraction(-0.1))
}
