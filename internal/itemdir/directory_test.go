package itemdir

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EgorLis/osrsbot/internal/osrsapi"
)

type fakeSource struct {
	items []osrsapi.Item
	err   error
	calls int
}

func (f *fakeSource) FetchMapping(context.Context) ([]osrsapi.Item, error) {
	f.calls++
	return f.items, f.err
}

func TestLookupCaseInsensitive(t *testing.T) {
	d := New([]osrsapi.Item{{ID: 4151, Name: "Abyssal whip"}})

	for _, name := range []string{"abyssal whip", "Abyssal Whip", "ABYSSAL WHIP"} {
		it, ok := d.Lookup(name)
		require.True(t, ok, name)
		assert.Equal(t, 4151, it.ID)
	}

	_, ok := d.Lookup("abyssal dagger")
	assert.False(t, ok)
}

func TestLookupStable(t *testing.T) {
	d := New([]osrsapi.Item{{ID: 4151, Name: "Abyssal whip"}, {ID: 11840, Name: "Dragon boots"}})

	first, ok := d.Lookup("dragon boots")
	require.True(t, ok)
	for i := 0; i < 5; i++ {
		again, ok := d.Lookup("dragon boots")
		require.True(t, ok)
		assert.Equal(t, first, again)
	}
}

func TestDuplicateNamesLastWins(t *testing.T) {
	d := New([]osrsapi.Item{
		{ID: 1, Name: "Coins"},
		{ID: 995, Name: "coins"},
	})
	assert.Equal(t, 1, d.Len())
	it, ok := d.Lookup("coins")
	require.True(t, ok)
	assert.Equal(t, 995, it.ID)
}

func TestLoadFailureGivesEmptyDirectory(t *testing.T) {
	src := &fakeSource{err: errors.New("boom")}
	d := Load(context.Background(), src, nil)

	require.NotNil(t, d)
	assert.Equal(t, 1, src.calls)
	assert.Equal(t, 0, d.Len())
	_, ok := d.Lookup("abyssal whip")
	assert.False(t, ok)
}

func TestLoadFromHTTP(t *testing.T) {
	cases := []struct {
		name   string
		status int
		body   string
		want   int
	}{
		{"ok", http.StatusOK, `[{"id":4151,"name":"Abyssal whip"},{"id":995,"name":"Coins"}]`, 2},
		{"non-200", http.StatusServiceUnavailable, `[]`, 0},
		{"object payload", http.StatusOK, `{"data":[]}`, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			c := osrsapi.NewClient(osrsapi.Conf{MappingURL: srv.URL})
			d := Load(context.Background(), c, nil)
			assert.Equal(t, tc.want, d.Len())
		})
	}
}

func TestNilDirectory(t *testing.T) {
	var d *Directory
	_, ok := d.Lookup("anything")
	assert.False(t, ok)
	assert.Equal(t, 0, d.Len())
}
