package worker

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportePeriodo(t *testing.T) {
	// An explicit month wins, defaulting the year to the current one.
	year, mes := reportePeriod(time.Date(2026, time.August, 30, 6, 0, 0, 0, time.UTC), reportePayload{Mes: 3})
	assert.Equal(t, 2026, year)
	assert.Equal(t, 3, mes)

	year, mes = reportePeriod(time.Date(2026, time.August, 30, 6, 0, 0, 0, time.UTC), reportePayload{Year: 2025, Mes: 12})
	assert.Equal(t, 2025, year)
	assert.Equal(t, 12, mes)

	// The cron trigger carries no payload: report the month that just ended.
	year, mes = reportePeriod(time.Date(2026, time.August, 1, 6, 0, 0, 0, time.UTC), reportePayload{})
	assert.Equal(t, 2026, year)
	assert.Equal(t, 7, mes)

	// A January run reaches back into December of the previous year.
	year, mes = reportePeriod(time.Date(2026, time.January, 1, 6, 0, 0, 0, time.UTC), reportePayload{})
	assert.Equal(t, 2025, year)
	assert.Equal(t, 12, mes)
}

func TestHandleAlertaStockSinSMTPNoFalla(t *testing.T) {
	jobs := NewJobs(nil, nil, t.TempDir(), "", zerolog.Nop())

	payload, err := json.Marshal(alertaStockPayload{
		Productos: []stockItem{{Name: "Fertilizante", Code: "F-01", Quantity: 2}},
	})
	require.NoError(t, err)

	assert.NoError(t, jobs.HandleAlertaStock(context.Background(), payload))
}

func TestHandleAlertaStockPayloadInvalido(t *testing.T) {
	jobs := NewJobs(nil, nil, t.TempDir(), "", zerolog.Nop())
	err := jobs.HandleAlertaStock(context.Background(), []byte("{no-json"))
	assert.Error(t, err)
}

func TestJobRoundTrip(t *testing.T) {
	payload, err := json.Marshal(reportePayload{Year: 2026})
	require.NoError(t, err)

	data, err := json.Marshal(Job{Type: JobReporteMensual, Payload: payload})
	require.NoError(t, err)

	var got Job
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, JobReporteMensual, got.Type)

	var p reportePayload
	require.NoError(t, json.Unmarshal(got.Payload, &p))
	assert.Equal(t, 2026, p.Year)
}
