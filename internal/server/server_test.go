package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/zplane/internal/logging"
	"github.com/katalvlaran/zplane/internal/metrics"
)

const squareScene = `
function: z^2
x: [-1, 1]
y: [-1, 1]
steps: 4
points:
  - {name: p, values: ["0.5+0.5i"]}
`

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(NewHandler(logging.NewNop(), metrics.New()))
	t.Cleanup(srv.Close)
	return srv
}

func post(t *testing.T, url, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(url, "application/yaml", strings.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)
	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, "ok", body["status"])
}

func TestFunctions(t *testing.T) {
	srv := newTestServer(t)
	resp, err := http.Get(srv.URL + "/v1/functions")
	require.NoError(t, err)
	defer resp.Body.Close()

	var body struct {
		Variable  string   `json:"variable"`
		Functions []string `json:"functions"`
		Constants []string `json:"constants"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, "z", body.Variable)
	require.Contains(t, body.Functions, "sin")
	require.Contains(t, body.Constants, "pi")
}

func TestPlot_JSON(t *testing.T) {
	srv := newTestServer(t)
	resp := post(t, srv.URL+"/v1/plot", squareScene)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var fig struct {
		Data []struct {
			Name string     `json:"name"`
			X    []*float64 `json:"x"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&fig))
	// 3 + 3 probe lines and one point set.
	require.Len(t, fig.Data, 7)
	require.Equal(t, "-1", fig.Data[0].Name)
	require.Len(t, fig.Data[0].X, 4)
	require.Equal(t, "p", fig.Data[6].Name)
}

func TestPlot_Images(t *testing.T) {
	srv := newTestServer(t)

	resp := post(t, srv.URL+"/v1/plot?format=png&width=200&height=200", squareScene)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "image/png", resp.Header.Get("Content-Type"))

	resp = post(t, srv.URL+"/v1/plot?format=SVG", squareScene)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "image/svg+xml", resp.Header.Get("Content-Type"))

	resp = post(t, srv.URL+"/v1/plot?format=html", squareScene)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, resp.Header.Get("Content-Type"), "text/html")
}

func TestPlot_BadRequests(t *testing.T) {
	srv := newTestServer(t)

	cases := map[string]struct{ query, body string }{
		"not yaml":       {"", "{{{"},
		"unknown key":    {"", "function: z\nx: [0,1]\ny: [0,1]\nbogus: 1\n"},
		"bad expression": {"", "function: sin(\nx: [0,1]\ny: [0,1]\n"},
		"bad bounds":     {"", "function: z\nx: [1,0]\ny: [0,1]\n"},
		"few steps":      {"", "function: z\nx: [0,1]\ny: [0,1]\nsteps: 1\n"},
		"bad format":     {"?format=gif", squareScene},
		"bad size":       {"?format=png&width=-3", squareScene},
		"bad color":      {"", "points: [{values: ['1'], color: nocolor}]\n"},
		"huge grid":      {"", "function: z\nx: [0,9999,1]\ny: [0,9999,1]\nsteps: 100000\n"},
	}
	for name, tc := range cases {
		resp := post(t, srv.URL+"/v1/plot"+tc.query, tc.body)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode, name)

		var body map[string]string
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body), name)
		require.NotEmpty(t, body["error"], name)
	}
}

func TestDemoAndMetrics(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/v1/demo")
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	post(t, srv.URL+"/v1/plot?format=gif", squareScene)

	resp, err = http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	out := string(raw)
	require.Contains(t, out, `zplot_plots_total{kind="scene",result="ok"} 1`)
	require.Contains(t, out, `zplot_plots_total{kind="scene",result="error"} 1`)
	require.Contains(t, out, `zplot_traces_total{family="const-real"} 9`)
	require.Contains(t, out, `zplot_traces_total{family="points"} 8`)
}

func TestPlot_KindLabels(t *testing.T) {
	srv := newTestServer(t)

	resp := post(t, srv.URL+"/v1/plot", "function: z\nx: [0, 1]\ny: [0, 1]\nsteps: 2\n")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp = post(t, srv.URL+"/v1/plot", "points: [{values: ['1+1i', '2']}]\n")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	out := string(raw)
	require.Contains(t, out, `zplot_plots_total{kind="grid",result="ok"} 1`)
	require.Contains(t, out, `zplot_plots_total{kind="points",result="ok"} 1`)
}

func TestStatusOf(t *testing.T) {
	require.Equal(t, http.StatusInternalServerError, statusOf(http.ErrHandlerTimeout))
}
