package calculate

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"kitchen-calc/internal/engine"
	"kitchen-calc/internal/storage"
)

type MockUnitCalculator struct {
	mock.Mock
}

func (m *MockUnitCalculator) CalculateUnit(ctx context.Context, spec engine.UnitSpec) (*storage.UnitDocument, error) {
	args := m.Called(ctx, spec)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*storage.UnitDocument), args.Error(1)
}

func (m *MockUnitCalculator) EstimateUnit(ctx context.Context, spec engine.UnitSpec) (*storage.UnitDocument, error) {
	args := m.Called(ctx, spec)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*storage.UnitDocument), args.Error(1)
}

func TestCalculateUnit_Success(t *testing.T) {
	mockCalc := new(MockUnitCalculator)

	saved := &storage.UnitDocument{
		ID:      "unit_a1b2c3d4",
		Type:    "ground",
		WidthMM: 800,
		Parts: []engine.Part{
			{Name: "side_panel", WidthMM: 300, HeightMM: 720, Qty: 2},
		},
	}
	mockCalc.On("CalculateUnit", mock.Anything, engine.UnitSpec{
		Type:       engine.UnitGround,
		WidthMM:    800,
		HeightMM:   720,
		DepthMM:    300,
		ShelfCount: 2,
	}).Return(saved, nil)

	handler := CalculateUnit(slog.Default(), mockCalc)

	reqBody := `{
		"type": "ground",
		"width_mm": 800,
		"height_mm": 720,
		"depth_mm": 300,
		"shelf_count": 2
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/units/calculate", strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp storage.UnitDocument
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "unit_a1b2c3d4", resp.ID)
	assert.Len(t, resp.Parts, 1)
	mockCalc.AssertExpectations(t)
}

func TestCalculateUnit_BadJSON(t *testing.T) {
	mockCalc := new(MockUnitCalculator)

	handler := CalculateUnit(slog.Default(), mockCalc)

	req := httptest.NewRequest(http.MethodPost, "/api/units/calculate", strings.NewReader(`{not json`))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	mockCalc.AssertNotCalled(t, "CalculateUnit", mock.Anything, mock.Anything)
}

func TestCalculateUnit_InvalidDimension(t *testing.T) {
	mockCalc := new(MockUnitCalculator)
	mockCalc.On("CalculateUnit", mock.Anything, mock.Anything).
		Return(nil, &engine.InvalidDimensionError{Part: "unit", Dimension: "width", ValueMM: -10})

	handler := CalculateUnit(slog.Default(), mockCalc)

	req := httptest.NewRequest(http.MethodPost, "/api/units/calculate",
		strings.NewReader(`{"type":"ground","width_mm":-10,"height_mm":720}`))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
}

func TestCalculateUnit_UnknownType(t *testing.T) {
	mockCalc := new(MockUnitCalculator)
	mockCalc.On("CalculateUnit", mock.Anything, mock.Anything).
		Return(nil, &engine.UnknownUnitTypeError{Type: "corner_carousel"})

	handler := CalculateUnit(slog.Default(), mockCalc)

	req := httptest.NewRequest(http.MethodPost, "/api/units/calculate",
		strings.NewReader(`{"type":"corner_carousel","width_mm":800,"height_mm":720}`))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
}

func TestEstimateUnit_ReturnsSavedDocument(t *testing.T) {
	mockCalc := new(MockUnitCalculator)
	mockCalc.On("EstimateUnit", mock.Anything, mock.Anything).
		Return(&storage.UnitDocument{ID: "unit_c3d4e5f6", Type: "wall"}, nil)

	handler := EstimateUnit(slog.Default(), mockCalc)

	req := httptest.NewRequest(http.MethodPost, "/api/units/estimate",
		strings.NewReader(`{"type":"wall","width_mm":600,"height_mm":700}`))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp storage.UnitDocument
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "unit_c3d4e5f6", resp.ID)
}
