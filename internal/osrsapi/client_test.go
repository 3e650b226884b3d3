package osrsapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// skillsJSON собирает тело ответа хайскоров: слот i -> level=i+1, xp=(i+1)*1000.
func skillsJSON(n int, override map[int][2]int64) []byte {
	slots := make([]map[string]int64, n)
	for i := range slots {
		slots[i] = map[string]int64{"level": int64(i + 1), "xp": int64(i+1) * 1000}
		if o, ok := override[i]; ok {
			slots[i]["level"], slots[i]["xp"] = o[0], o[1]
		}
	}
	b, _ := json.Marshal(map[string]any{"skills": slots})
	return b
}

func newTestClient(t *testing.T, h http.Handler) (*Client, *[]string) {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	var seen []string
	c := NewClient(Conf{
		MappingURL: srv.URL + "/mapping",
		PricesURL:  srv.URL + "/latest",
		DetailURL:  srv.URL + "/detail.json",
		HiscoreURL: srv.URL + "/index_lite.json",
		UserAgent:  "osrsbot-test",
	})
	c.OnResponse = func(endpoint string, status int) {
		seen = append(seen, endpoint)
	}
	return c, &seen
}

func TestFetchMapping(t *testing.T) {
	c, seen := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "osrsbot-test", r.Header.Get("User-Agent"))
		_, _ = w.Write([]byte(`[{"id":4151,"name":"Abyssal whip","members":true,"limit":70}]`))
	}))

	items, err := c.FetchMapping(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 4151, items[0].ID)
	assert.Equal(t, "Abyssal whip", items[0].Name)
	assert.Equal(t, []string{EndpointMapping}, *seen)
}

func TestFetchMappingIgnoresUnusedFields(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[
			{"id":4151,"name":"Abyssal whip","value":"120001","limit":null,"members":"yes"},
			{"id":995,"name":"Coins","highalch":1.5}
		]`))
	}))

	items, err := c.FetchMapping(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []Item{{ID: 4151, Name: "Abyssal whip"}, {ID: 995, Name: "Coins"}}, items)
}

func TestFetchMappingNotArray(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"error":"rate limited"}`))
	}))

	_, err := c.FetchMapping(context.Background())
	require.ErrorIs(t, err, ErrMalformed)
}

func TestLatestPrice(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":{"4151":{"high":2000000,"highTime":1,"low":1950000,"lowTime":2},"11840":{"high":null,"low":5}}}`))
	}))
	ctx := context.Background()

	p, err := c.LatestPrice(ctx, 4151)
	require.NoError(t, err)
	assert.Equal(t, Price{High: 2000000, Low: 1950000}, p)

	p, err = c.LatestPrice(ctx, 11840)
	require.NoError(t, err)
	assert.Equal(t, Price{High: 0, Low: 5}, p)

	p, err = c.LatestPrice(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, Price{}, p)
}

func TestItemIcon(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "4151", r.URL.Query().Get("item"))
		_, _ = w.Write([]byte(`{"item":{"id":4151,"icon_large":"https://example.test/whip.gif"}}`))
	}))

	icon, err := c.ItemIcon(context.Background(), 4151)
	require.NoError(t, err)
	assert.Equal(t, "https://example.test/whip.gif", icon)
}

func TestItemIconMissingField(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))

	icon, err := c.ItemIcon(context.Background(), 4151)
	require.NoError(t, err)
	assert.Empty(t, icon)
}

func TestHiscores(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Iron Man", r.URL.Query().Get("player"))
		_, _ = w.Write(skillsJSON(24, map[int][2]int64{23: {80, 2000000}}))
	}))

	h, err := c.Hiscores(context.Background(), "Iron Man")
	require.NoError(t, err)
	assert.Equal(t, "Iron Man", h.Player)
	assert.Equal(t, 1, h.Skill(Overall).Level)
	assert.Equal(t, 5, h.Skill(Hitpoints).Level)
	assert.Equal(t, 3, h.Skill(Defense).Level)
	assert.Equal(t, SkillEntry{Name: Construction, Level: 80, XP: 2000000}, h.Skill(Construction))
}

func TestHiscoresExtraSlotsIgnored(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(skillsJSON(25, nil))
	}))

	h, err := c.Hiscores(context.Background(), "sailor")
	require.NoError(t, err)
	assert.Equal(t, 24, h.Skill(Construction).Level)
}

func TestHiscoresNotFound(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))

	_, err := c.Hiscores(context.Background(), "ghostuser")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, err, ErrUnexpectedStatus)

	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusNotFound, se.Code)
	assert.Equal(t, EndpointHiscore, se.Endpoint)
}

func TestHiscoresMalformed(t *testing.T) {
	cases := map[string][]byte{
		"short array":   skillsJSON(10, nil),
		"missing level": []byte(`{"skills":[` + repeatSlot(23) + `{"xp":5}]}`),
		"not json":      []byte(`<html>maintenance</html>`),
		"no skills":     []byte(`{"activities":[]}`),
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write(body)
			}))
			_, err := c.Hiscores(context.Background(), "someone")
			assert.ErrorIs(t, err, ErrMalformed)
			assert.NotErrorIs(t, err, ErrUnexpectedStatus)
		})
	}
}

func repeatSlot(n int) string {
	s := ""
	for i := 0; i < n; i++ {
		s += `{"level":1,"xp":0},`
	}
	return s
}

func TestSlotOrder(t *testing.T) {
	require.Len(t, SlotOrder, 24)
	assert.Equal(t, Overall, SlotOrder[0])
	assert.Equal(t, Hitpoints, SlotOrder[4])
	assert.Equal(t, Herblore, SlotOrder[16])
	assert.Equal(t, Construction, SlotOrder[23])
}
