package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter() *chi.Mux {
	h := NewHandler(zerolog.Nop())
	r := chi.NewRouter()
	h.RegisterRoutes(r)
	return r
}

func postJSON(t *testing.T, router *chi.Mux, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandleListScenarios(t *testing.T) {
	router := setupRouter()

	req := httptest.NewRequest(http.MethodGet, "/stress/scenarios", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data struct {
			Scenarios []struct {
				Name   string             `json:"name"`
				Shocks map[string]float64 `json:"shocks"`
			} `json:"scenarios"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	require.Len(t, resp.Data.Scenarios, 4)
	assert.Equal(t, "market_crash", resp.Data.Scenarios[0].Name)
	assert.InDelta(t, -0.35, resp.Data.Scenarios[0].Shocks["stocks"], 1e-12)
}

func TestHandleRunStressTest_NamedScenario(t *testing.T) {
	router := setupRouter()

	rec := postJSON(t, router, "/stress/run", map[string]interface{}{
		"snapshot": map[string]interface{}{
			"allocation":      map[string]float64{"stocks": 0.6, "bonds": 0.4},
			"value":           100000,
			"volatility":      0.18,
			"expected_return": 0.07,
			"horizon_years":   10,
		},
		"scenarios": []string{"market_crash"},
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data struct {
			BaselineValue float64 `json:"baseline_value"`
			Results       []struct {
				ScenarioName string  `json:"scenario_name"`
				ShockedValue float64 `json:"shocked_value"`
				Drawdown     float64 `json:"drawdown"`
			} `json:"results"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	require.Len(t, resp.Data.Results, 1)
	assert.Equal(t, "market_crash", resp.Data.Results[0].ScenarioName)
	// stocks: 60000 * -0.35 = -21000, bonds: 40000 * -0.05 = -2000
	assert.InDelta(t, 77000.0, resp.Data.Results[0].ShockedValue, 1e-6)
	assert.InDelta(t, 23000.0, resp.Data.Results[0].Drawdown, 1e-6)
}

func TestHandleRunStressTest_CustomScenario(t *testing.T) {
	router := setupRouter()

	rec := postJSON(t, router, "/stress/run", map[string]interface{}{
		"snapshot": map[string]interface{}{
			"allocation":      map[string]float64{"stocks": 1.0},
			"value":           50000,
			"volatility":      0.20,
			"expected_return": 0.08,
			"horizon_years":   5,
		},
		"custom_scenarios": []map[string]interface{}{
			{
				"name":   "mild_dip",
				"shocks": map[string]float64{"stocks": -0.10},
			},
		},
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data struct {
			Results []struct {
				ScenarioName string  `json:"scenario_name"`
				ShockedValue float64 `json:"shocked_value"`
			} `json:"results"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	require.Len(t, resp.Data.Results, 1)
	assert.Equal(t, "mild_dip", resp.Data.Results[0].ScenarioName)
	assert.InDelta(t, 45000.0, resp.Data.Results[0].ShockedValue, 1e-6)
}

func TestHandleRunStressTest_DefaultsToBuiltins(t *testing.T) {
	router := setupRouter()

	rec := postJSON(t, router, "/stress/run", map[string]interface{}{
		"snapshot": map[string]interface{}{
			"allocation":      map[string]float64{"stocks": 0.5, "bonds": 0.5},
			"value":           100000,
			"volatility":      0.15,
			"expected_return": 0.06,
			"horizon_years":   10,
		},
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data struct {
			Results []struct {
				ScenarioName string `json:"scenario_name"`
			} `json:"results"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Data.Results, 4)
}

func TestHandleRunStressTest_UnknownScenario(t *testing.T) {
	router := setupRouter()

	rec := postJSON(t, router, "/stress/run", map[string]interface{}{
		"snapshot": map[string]interface{}{
			"allocation":      map[string]float64{"stocks": 1.0},
			"value":           100000,
			"volatility":      0.15,
			"expected_return": 0.06,
			"horizon_years":   10,
		},
		"scenarios": []string{"asteroid_impact"},
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleRunStressTest_InvalidSnapshot(t *testing.T) {
	router := setupRouter()

	rec := postJSON(t, router, "/stress/run", map[string]interface{}{
		"snapshot": map[string]interface{}{
			"allocation":      map[string]float64{"stocks": 1.0},
			"value":           -5,
			"volatility":      0.15,
			"expected_return": 0.06,
			"horizon_years":   10,
		},
		"scenarios": []string{"market_crash"},
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
