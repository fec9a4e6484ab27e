package trainer

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessage(t *testing.T) {
	rec := Record{
		Activity: "Running",
		Duration: 1.0,
		Distance: 9.75,
		Speed:    9.75,
		Calories: 797.805,
	}
	assert.Equal(t,
		"Activity type: Running; Duration: 1.000 h; Distance: 9.750 km; Mean speed: 9.750 km/h; Calories burned: 797.805.",
		rec.Message())
}

func TestMessageRoundTrip(t *testing.T) {
	a := assert.New(t)
	swm, err := NewSwimming(720, 1.0, 80.0, 25.0, 40)
	require.NoError(t, err)
	rec, err := Summary(swm)
	require.NoError(t, err)

	re := regexp.MustCompile(`\d+\.\d{3}`)
	fields := re.FindAllString(rec.Message(), -1)
	require.Len(t, fields, 4)

	for i, want := range []float64{rec.Duration, rec.Distance, rec.Speed, rec.Calories} {
		got, err := strconv.ParseFloat(fields[i], 64)
		require.NoError(t, err)
		rounded, err := strconv.ParseFloat(fmt.Sprintf("%.3f", want), 64)
		require.NoError(t, err)
		a.InDelta(rounded, got, 1e-9)
	}
}

func TestReadPackages(t *testing.T) {
	a := assert.New(t)
	in := `[
		{"workout_type": "SWM", "data": [720, 1.0, 80.0, 25.0, 40]},
		{"workout_type": "RUN", "data": [15000, 1.0, 75.0]}
	]`
	pkgs, err := ReadPackages(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, pkgs, 2)

	a.Equal("SWM", pkgs[0].Type)
	// literal form survives decoding so kind validation still works
	a.Equal("720", pkgs[0].Data[0].String())
	a.Equal("1.0", pkgs[0].Data[1].String())

	rec, err := Evaluate(pkgs[1])
	require.NoError(t, err)
	a.Equal("Running", rec.Activity)
}

func TestReadPackagesMalformed(t *testing.T) {
	_, err := ReadPackages(strings.NewReader(`{"workout_type":`))
	assert.Error(t, err)
}

func TestEmbeddedPackages(t *testing.T) {
	val, err := Content.ReadFile("etc/packages.json")
	require.NoError(t, err)
	pkgs, err := ReadPackages(strings.NewReader(string(val)))
	require.NoError(t, err)
	require.Len(t, pkgs, 3)
	for _, pkg := range pkgs {
		rec, err := Evaluate(pkg)
		require.NoError(t, err)
		assert.NotEmpty(t, rec.Activity)
	}
}
