package main

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/pesel/internal/config"
	"github.com/phrazzld/pesel/internal/domain"
	"github.com/phrazzld/pesel/internal/domain/pesel"
	"github.com/phrazzld/pesel/internal/platform/logger"
)

func testConfig() *config.Config {
	return &config.Config{
		Log: config.LogConfig{Level: "info"},
		Generator: config.GeneratorConfig{
			FailureBudget:    80,
			EnumerationLimit: 2_000_000,
			Workers:          2,
			Seed:             99,
			Strategy:         "auto",
		},
		Request: config.RequestConfig{Sex: "m", DateFrom: "2003-07-01", DateTo: "2003-07-02", Count: 25},
	}
}

// keepDefaultLogger restores the process default logger replaced by logger.Setup.
func keepDefaultLogger(t *testing.T) {
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })
}

func TestInitializeAppFromEnv(t *testing.T) {
	keepDefaultLogger(t)
	t.Setenv("PESEL_LOG_LEVEL", "debug")
	t.Setenv("PESEL_GENERATOR_STRATEGY", "enumerate")
	t.Setenv("PESEL_REQUEST_SEX", "female")
	t.Setenv("PESEL_REQUEST_DATE_FROM", "1996-03-20")
	t.Setenv("PESEL_REQUEST_DATE_TO", "1996-03-20")
	t.Setenv("PESEL_REQUEST_COUNT", "3")

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	logs := &logger.TestLogBuffer{}
	app, err := initializeApp(logs)
	require.NoError(t, err, "Application initialization should succeed with valid config")

	assert.Equal(t, pesel.StrategyEnumerate, app.strategy)
	assert.Equal(t, domain.SexFemale, app.request.Sex)
	assert.Equal(t, 3, app.request.Count)
	assert.Contains(t, logs.String(), "configuration loaded")
}

func TestNewApplicationRejectsBadRequest(t *testing.T) {
	keepDefaultLogger(t)

	cfg := testConfig()
	cfg.Request.Sex = ""
	_, err := newApplication(cfg, &logger.TestLogBuffer{})
	require.Error(t, err)
	assert.True(t, domain.IsMalformedInput(err))

	cfg = testConfig()
	cfg.Request.DateFrom = "2003-07-03"
	_, err = newApplication(cfg, &logger.TestLogBuffer{})
	assert.ErrorIs(t, err, domain.ErrInvalidDateRange)
}

func TestRunWritesCodes(t *testing.T) {
	keepDefaultLogger(t)

	logs := &logger.TestLogBuffer{}
	app, err := newApplication(testConfig(), logs)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, app.run(context.Background(), &out))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 25)

	from := domain.MustBirthDate(2003, 7, 1)
	seen := make(map[string]struct{})
	for _, line := range lines {
		_, dup := seen[line]
		require.False(t, dup, "duplicate code %s", line)
		seen[line] = struct{}{}

		result := pesel.Validate(line, domain.SexMale, nil)
		assert.Equal(t, pesel.ResultValid, result, "code %s", line)
		date, err := pesel.DecodeBirthDate(line)
		require.NoError(t, err)
		assert.True(t, app.request.Range.Contains(date))
		assert.False(t, date.Before(from))
	}
	assert.Contains(t, logs.String(), "batch written")
}

func TestRunReportsShortfall(t *testing.T) {
	keepDefaultLogger(t)

	cfg := testConfig()
	cfg.Request.Count = 12000 // two days hold 10000 male codes
	logs := &logger.TestLogBuffer{}
	app, err := newApplication(cfg, logs)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, app.run(context.Background(), &out))

	assert.Equal(t, 10000, strings.Count(out.String(), "\n"))
	assert.Contains(t, logs.String(), "request only partially satisfied")
}

func TestRunCancelled(t *testing.T) {
	keepDefaultLogger(t)

	app, err := newApplication(testConfig(), &logger.TestLogBuffer{})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	assert.ErrorIs(t, app.run(ctx, &out), context.Canceled)
	assert.Empty(t, out.String())
}
