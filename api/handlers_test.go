package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/riskpath/api"
)

var sample = []string{
	"1163751742",
	"1381373672",
	"2136511328",
	"3694931569",
	"7463417111",
	"1319128137",
	"1359912421",
	"3125421639",
	"1293138521",
	"2311944581",
}

// RouterSuite exercises the HTTP surface through an in-process router.
type RouterSuite struct {
	suite.Suite
	router *gin.Engine
	hook   *logtest.Hook
}

func (s *RouterSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	logger, hook := logtest.NewNullLogger()
	s.hook = hook
	s.router = api.NewRouter(api.Config{MaxCells: 10_000, Logger: logger})
}

// post sends body as JSON to the search endpoint.
func (s *RouterSuite) post(body any) *httptest.ResponseRecorder {
	raw, err := json.Marshal(body)
	require.NoError(s.T(), err)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/search", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *RouterSuite) TestHealth() {
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(s.T(), http.StatusOK, w.Code)
	require.JSONEq(s.T(), `{"status":"ok"}`, w.Body.String())
	require.NotEmpty(s.T(), s.hook.AllEntries(), "requests are logged")
}

func (s *RouterSuite) TestSearchSample() {
	w := s.post(api.SearchRequest{Rows: sample, IncludePath: true})
	require.Equal(s.T(), http.StatusOK, w.Code, w.Body.String())

	var resp api.SearchResponse
	require.NoError(s.T(), json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(s.T(), 40, resp.Cost)
	assert.Equal(s.T(), 10, resp.Width)
	assert.Equal(s.T(), [2]int{0, 0}, resp.Path[0])
	assert.Equal(s.T(), [2]int{9, 9}, resp.Path[len(resp.Path)-1])
}

func (s *RouterSuite) TestSearchTiledDijkstra() {
	w := s.post(api.SearchRequest{Rows: sample, Tiles: 5, Heuristic: "zero"})
	require.Equal(s.T(), http.StatusOK, w.Code, w.Body.String())

	var resp api.SearchResponse
	require.NoError(s.T(), json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(s.T(), 315, resp.Cost)
	assert.Equal(s.T(), 50, resp.Height)
	assert.Empty(s.T(), resp.Path, "path omitted unless requested")
}

func (s *RouterSuite) TestSearchCells() {
	w := s.post(api.SearchRequest{Cells: [][]int{{1, 1, 6}, {1, 3, 8}, {2, 1, 3}}, IncludePath: true})
	require.Equal(s.T(), http.StatusOK, w.Code, w.Body.String())

	var resp api.SearchResponse
	require.NoError(s.T(), json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(s.T(), 7, resp.Cost)
	assert.Equal(s.T(), 3, resp.Width)
	assert.Equal(s.T(), [2]int{2, 2}, resp.Path[len(resp.Path)-1])
}

func (s *RouterSuite) TestBadRequests() {
	cases := []struct {
		name   string
		body   any
		status int
	}{
		{"NoRows", map[string]any{}, http.StatusBadRequest},
		{"Ragged", api.SearchRequest{Rows: []string{"12", "1"}}, http.StatusBadRequest},
		{"NotDigits", api.SearchRequest{Rows: []string{"1x"}}, http.StatusBadRequest},
		{"EmptyRows", map[string]any{"rows": []string{}}, http.StatusBadRequest},
		{"CellAboveNine", api.SearchRequest{Cells: [][]int{{1, 10}}}, http.StatusBadRequest},
		{"RaggedCells", api.SearchRequest{Cells: [][]int{{1, 2}, {3}}}, http.StatusBadRequest},
		{"RowsAndCells", api.SearchRequest{Rows: []string{"11"}, Cells: [][]int{{1, 1}}}, http.StatusBadRequest},
		{"Heuristic", api.SearchRequest{Rows: []string{"11"}, Heuristic: "euclid"}, http.StatusBadRequest},
		{"NegativeTiles", api.SearchRequest{Rows: []string{"11"}, Tiles: -2}, http.StatusBadRequest},
		{"TooLarge", api.SearchRequest{Rows: sample, Tiles: 11}, http.StatusRequestEntityTooLarge},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			w := s.post(tc.body)
			require.Equal(s.T(), tc.status, w.Code, w.Body.String())
			var resp api.ErrorResponse
			require.NoError(s.T(), json.Unmarshal(w.Body.Bytes(), &resp))
			require.NotEmpty(s.T(), resp.Error)
		})
	}
}

func TestRouterSuite(t *testing.T) {
	suite.Run(t, new(RouterSuite))
}
