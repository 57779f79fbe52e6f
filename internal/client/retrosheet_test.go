package client

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mlbstats/ingestion/internal/config"
	"mlbstats/ingestion/internal/models"
)

func testClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	cfg := &config.Config{
		RetrosheetBaseURL:  baseURL,
		RetrosplitsBaseURL: baseURL,
		StatcastBaseURL:    baseURL,
		LookupTableURL:     baseURL + "/people.csv",
		FangraphsBaseURL:   baseURL,
		HTTPTimeout:        5 * time.Second,
		RequestSpacing:     0,
	}
	return NewClient(cfg, nil)
}

// zipArchive builds an in-memory zip with the given member files
func zipArchive(t *testing.T, members map[string][]byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for name, data := range members {
		f, err := w.Create(name)
		require.NoError(t, err)
		_, err = f.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return buf.Bytes()
}

// gameLogRecord builds one full-width game log CSV record with the named
// columns overridden
func gameLogRecord(t *testing.T, overrides map[string]string) []string {
	t.Helper()
	record := make([]string, len(models.GameLogColumns))
	for i := range record {
		record[i] = "0"
	}
	for name, value := range overrides {
		found := false
		for i, col := range models.GameLogColumns {
			if col == name {
				record[i] = value
				found = true
				break
			}
		}
		require.True(t, found, "unknown game log column %s", name)
	}
	return record
}

func csvBytes(t *testing.T, records [][]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	require.NoError(t, w.WriteAll(records))
	return buf.Bytes()
}

func TestFetchGameLog(t *testing.T) {
	record := gameLogRecord(t, map[string]string{
		"date":          "20190601",
		"home_team":     "SLN",
		"visiting_team": "CHN",
		"home_score":    "4",
	})
	payload := zipArchive(t, map[string][]byte{
		"GL2019.TXT": csvBytes(t, [][]string{record}),
	})

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/gamelogs/gl2019.zip", r.URL.Path)
		w.Write(payload)
	}))
	defer srv.Close()

	table, err := testClient(t, srv.URL).FetchGameLog(context.Background(), 2019)
	require.NoError(t, err)
	require.Equal(t, 1, table.Len())

	dateIdx := table.ColumnIndex("date")
	date, ok := table.Rows[0][dateIdx].(time.Time)
	require.True(t, ok, "date cells must be decoded")
	assert.Equal(t, time.Date(2019, 6, 1, 0, 0, 0, 0, time.UTC), date)

	assert.Equal(t, "SLN", table.Rows[0][table.ColumnIndex("home_team")])
	assert.Equal(t, int64(4), table.Rows[0][table.ColumnIndex("home_score")])
}

func TestFetchGameLogWrongWidth(t *testing.T) {
	payload := zipArchive(t, map[string][]byte{
		"GL2019.TXT": []byte("20190601,too,short\n"),
	})

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(payload)
	}))
	defer srv.Close()

	_, err := testClient(t, srv.URL).FetchGameLog(context.Background(), 2019)
	assert.True(t, errors.Is(err, ErrSchemaMismatch))
}

func TestFetchGameLogMalformedDate(t *testing.T) {
	record := gameLogRecord(t, map[string]string{"date": "2019junk1"})
	payload := zipArchive(t, map[string][]byte{
		"GL2019.TXT": csvBytes(t, [][]string{record}),
	})

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(payload)
	}))
	defer srv.Close()

	_, err := testClient(t, srv.URL).FetchGameLog(context.Background(), 2019)
	assert.True(t, errors.Is(err, ErrMalformedDate))
}

func TestFetchGameLogSourceDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := testClient(t, srv.URL).FetchGameLog(context.Background(), 2019)
	assert.True(t, errors.Is(err, ErrSourceUnavailable))
}

func TestFetchRosters(t *testing.T) {
	payload := zipArchive(t, map[string][]byte{
		"SLN2019.ROS": []byte("molly001,Yadier,Molina,R,R,SLN,C\n"),
		"CHN2019.ROS": []byte("bryak001,Kris,Bryant,R,R,CHN,3B\n"),
		"2019SLN.EVN": []byte("event data, not a roster"),
	})

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/events/2019eve.zip", r.URL.Path)
		w.Write(payload)
	}))
	defer srv.Close()

	table, err := testClient(t, srv.URL).FetchRosters(context.Background(), 2019)
	require.NoError(t, err)
	assert.Equal(t, 2, table.Len(), "only ROS members are rosters")

	yearIdx := table.ColumnIndex("year")
	teamIdx := table.ColumnIndex("team")
	for i := 0; i < table.Len(); i++ {
		assert.Equal(t, int64(2019), table.Rows[i][yearIdx])
		assert.Contains(t, []any{"SLN", "CHN"}, table.Rows[i][teamIdx])
	}
}

func TestFetchRostersNoRosterFiles(t *testing.T) {
	payload := zipArchive(t, map[string][]byte{
		"2019SLN.EVN": []byte("event data"),
	})

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(payload)
	}))
	defer srv.Close()

	_, err := testClient(t, srv.URL).FetchRosters(context.Background(), 2019)
	assert.True(t, errors.Is(err, ErrSchemaMismatch))
}
