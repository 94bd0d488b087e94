package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateFullInput(t *testing.T) {
	h := NewCalculatorHandler(nil)
	body := `{"name":"Asha","height":170,"weight":70,"age":30,"gender":"male"}`
	req := httptest.NewRequest(http.MethodPost, "/calculate", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Calculate(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp CalculateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.BMI)
	assert.Equal(t, 24.22, *resp.BMI)
	require.NotNil(t, resp.IdealWeight)
	assert.Equal(t, 63.00, *resp.IdealWeight)
	assert.Equal(t, "Over Ideal Weight", resp.WeightStatus)
	assert.Empty(t, resp.BMIBand)
	assert.Empty(t, resp.BMRBand)
}

func TestCalculatePartialInput(t *testing.T) {
	h := NewCalculatorHandler(nil)
	body := `{"height":170,"weight":70,"gender":"female"}`
	req := httptest.NewRequest(http.MethodPost, "/calculate", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Calculate(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp CalculateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotNil(t, resp.BMI)
	assert.Nil(t, resp.BMR)
	assert.Nil(t, resp.BodyFatPct)
}

func TestCalculateAdvisoryBands(t *testing.T) {
	h := NewCalculatorHandler(nil)
	// Tall, light, young male: low BMI, low BMR band thresholds not met, low fat.
	body := `{"height":190,"weight":55,"age":20,"gender":"male"}`
	req := httptest.NewRequest(http.MethodPost, "/calculate", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Calculate(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp CalculateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Low", resp.BMIBand)
	assert.Equal(t, "Low", resp.BodyFatBand)
}

func TestCalculateBadBody(t *testing.T) {
	h := NewCalculatorHandler(nil)
	req := httptest.NewRequest(http.MethodPost, "/calculate", strings.NewReader("{broken"))
	rec := httptest.NewRecorder()

	h.Calculate(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
