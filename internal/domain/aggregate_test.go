package domain

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregate_MeanFilledValueFlowsIntoYearlyMean(t *testing.T) {
	obs := newTestObservations(t,
		row{date: testJan1, values: map[string]string{TempColumn: "10"}},
		row{date: testJan1, values: map[string]string{TempColumn: "oops"}},
		row{date: testJan2, values: map[string]string{TempColumn: "20"}},
	)
	_, err := Clean(obs)
	require.NoError(t, err)

	agg, err := Aggregate(obs)
	require.NoError(t, err)

	require.Len(t, agg.Yearly, 1)
	assert.Equal(t, 2020, agg.Yearly[0].Year)
	assert.InDelta(t, 15.0, agg.Yearly[0].Temp, 1e-12)
	assert.Equal(t, 3, agg.Yearly[0].Count)
}

func TestAggregate_GroupsSortedByKey(t *testing.T) {
	obs := newTestObservations(t,
		row{date: "03-feb-2021 10:00", values: map[string]string{TempColumn: "6"}},
		row{date: "01-jan-2020 00:00", values: map[string]string{TempColumn: "2"}},
		row{date: "01-jan-2020 12:00", values: map[string]string{TempColumn: "4"}},
		row{date: "15-dec-2020 08:00", values: map[string]string{TempColumn: "8"}},
		row{date: "03-feb-2021 22:00", values: map[string]string{TempColumn: "10"}},
	)
	_, err := Clean(obs)
	require.NoError(t, err)

	agg, err := Aggregate(obs)
	require.NoError(t, err)

	wantDaily := []DailyMean{
		{Year: 2020, Month: 1, Day: 1, Temp: 3, Count: 2},
		{Year: 2020, Month: 12, Day: 15, Temp: 8, Count: 1},
		{Year: 2021, Month: 2, Day: 3, Temp: 8, Count: 2},
	}
	if diff := cmp.Diff(wantDaily, agg.Daily); diff != "" {
		t.Fatalf("daily means mismatch (-want +got):\n%s", diff)
	}

	wantMonthly := []MonthlyMean{
		{Year: 2020, Month: 1, Temp: 3, Count: 2},
		{Year: 2020, Month: 12, Temp: 8, Count: 1},
		{Year: 2021, Month: 2, Temp: 8, Count: 2},
	}
	if diff := cmp.Diff(wantMonthly, agg.Monthly); diff != "" {
		t.Fatalf("monthly means mismatch (-want +got):\n%s", diff)
	}

	require.Len(t, agg.Yearly, 2)
	assert.Equal(t, 2020, agg.Yearly[0].Year)
	assert.InDelta(t, 14.0/3.0, agg.Yearly[0].Temp, 1e-12)
	assert.Equal(t, 2021, agg.Yearly[1].Year)
	assert.InDelta(t, 8.0, agg.Yearly[1].Temp, 1e-12)
}

func TestAggregate_YearCountsMatchDatedRows(t *testing.T) {
	obs := newTestObservations(t,
		row{date: "01-jan-2019 00:00"},
		row{date: testBadTS},
		row{date: "01-jul-2019 00:00"},
		row{date: "01-jan-2020 00:00"},
		row{date: ""},
		row{date: "31-dec-2021 23:00"},
	)
	_, err := Clean(obs)
	require.NoError(t, err)

	agg, err := Aggregate(obs)
	require.NoError(t, err)

	total := 0
	for _, y := range agg.Yearly {
		total += y.Count
	}
	assert.Equal(t, obs.Len()-obs.MissingDates(), total)
	assert.Equal(t, 4, total)
}

func TestAggregate_AddsCalendarColumns(t *testing.T) {
	obs := newTestObservations(t,
		row{date: "07-aug-2018 05:00"},
		row{date: testBadTS},
	)
	_, err := Clean(obs)
	require.NoError(t, err)

	_, err = Aggregate(obs)
	require.NoError(t, err)

	assert.Equal(t, []string{"2018", "NaN"}, obs.Frame.Col(YearColumn).Records())
	assert.Equal(t, []string{"8", "NaN"}, obs.Frame.Col(MonthColumn).Records())
	assert.Equal(t, []string{"7", "NaN"}, obs.Frame.Col(DayColumn).Records())
	assert.Equal(t, 2, obs.Len(), "undated rows stay in the table")
}

func TestAggregate_NoValidDates(t *testing.T) {
	obs := newTestObservations(t, row{date: testBadTS})
	_, err := Clean(obs)
	require.NoError(t, err)

	agg, err := Aggregate(obs)
	require.NoError(t, err)
	assert.Empty(t, agg.Daily)
	assert.Empty(t, agg.Yearly)
	assert.Empty(t, agg.RainByMonth)
}

func TestRainfallByMonth_SumsAcrossYears(t *testing.T) {
	obs := newTestObservations(t,
		row{date: "01-jan-2019 00:00", values: map[string]string{RainColumn: "1.5"}},
		row{date: "10-jan-2020 00:00", values: map[string]string{RainColumn: "2.0"}},
		row{date: "10-mar-2020 00:00", values: map[string]string{RainColumn: "0"}},
		row{date: testBadTS, values: map[string]string{RainColumn: "100"}},
		row{date: "10-mar-2021 00:00", values: map[string]string{RainColumn: "0.25"}},
	)
	_, err := Clean(obs)
	require.NoError(t, err)

	dated, err := obs.Dated()
	require.NoError(t, err)

	got, err := RainfallByMonth(dated)
	require.NoError(t, err)

	want := []MonthRainfall{{Month: 1, Rain: 3.5}, {Month: 3, Rain: 0.25}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("rainfall mismatch (-want +got):\n%s", diff)
	}
}
