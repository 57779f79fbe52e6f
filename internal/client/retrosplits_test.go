package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchDayByDay(t *testing.T) {
	body := "game.key,game.date,appear.date,person.key,B_HR\n" +
		"SLN201906010,2019-06-01,2019-06-01,molly001,1\n"

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/daybyday/playing-2019.csv", r.URL.Path)
		w.Write([]byte(body))
	}))
	defer srv.Close()

	table, err := testClient(t, srv.URL).FetchDayByDay(context.Background(), 2019, AggPlaying)
	require.NoError(t, err)
	require.Equal(t, 1, table.Len())

	dateIdx := table.ColumnIndex("game.date")
	date, ok := table.Rows[0][dateIdx].(time.Time)
	require.True(t, ok)
	assert.Equal(t, time.Date(2019, 6, 1, 0, 0, 0, 0, time.UTC), date)

	assert.Equal(t, int64(1), table.Rows[0][table.ColumnIndex("B_HR")])
}

func TestFetchDayByDayBadAggType(t *testing.T) {
	_, err := testClient(t, "http://unused").FetchDayByDay(context.Background(), 2019, "pitching")
	assert.Error(t, err)
}

func TestFetchDayByDayMissingSeason(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	_, err := testClient(t, srv.URL).FetchDayByDay(context.Background(), 1860, AggTeam)
	assert.True(t, errors.Is(err, ErrSourceUnavailable))
}

func TestFetchStatcastDay(t *testing.T) {
	body := "pitch_type,game_date,release_speed,game_pk\n" +
		"FF,2019-06-01,92.5,565932\n" +
		"SL,2019-06-01,85.1,565932\n"

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "2019-06-01", q.Get("game_date_gt"))
		assert.Equal(t, "2019-06-01", q.Get("game_date_lt"))
		w.Write([]byte(body))
	}))
	defer srv.Close()

	day := time.Date(2019, 6, 1, 0, 0, 0, 0, time.UTC)
	table, err := testClient(t, srv.URL).FetchStatcastDay(context.Background(), day)
	require.NoError(t, err)
	assert.Equal(t, 2, table.Len())
	assert.Equal(t, 92.5, table.Rows[0][table.ColumnIndex("release_speed")])
}

func TestFetchStatcastDayNullCells(t *testing.T) {
	body := "pitch_type,release_speed\nFF,null\n"

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	}))
	defer srv.Close()

	table, err := testClient(t, srv.URL).FetchStatcastDay(context.Background(), time.Now())
	require.NoError(t, err)
	assert.Nil(t, table.Rows[0][table.ColumnIndex("release_speed")], "null cells are carried as nil")
}

func TestFetchPlayerLookup(t *testing.T) {
	body := "name_last,name_first,key_mlbam\nTrout,Mike,545361\n"

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/people.csv", r.URL.Path)
		w.Write([]byte(body))
	}))
	defer srv.Close()

	table, err := testClient(t, srv.URL).FetchPlayerLookup(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, table.Len())
	assert.Equal(t, int64(545361), table.Rows[0][table.ColumnIndex("key_mlbam")])
}
