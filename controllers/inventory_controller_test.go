package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSupplierCRUD(t *testing.T) {
	env := newTestEnv(t)

	status, _ := env.do(t, http.MethodPost, "/api/v1/supplier", map[string]interface{}{"email": "x@example.com"})
	assert.Equal(t, http.StatusBadRequest, status)

	status, response := env.do(t, http.MethodPost, "/api/v1/supplier", map[string]interface{}{
		"supplier_id":   42,
		"supplier_name": "Holland & Sherry",
	})
	require.Equal(t, http.StatusCreated, status)
	id := uint(response["supplier_id"].(float64))
	assert.NotEqual(t, uint(42), id)
	path := "/api/v1/supplier/" + itoa(id)

	status, _ = env.do(t, http.MethodPut, path, map[string]interface{}{"notes": "net 30"})
	assert.Equal(t, http.StatusOK, status)

	status, response = env.do(t, http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "net 30", response["data"].(map[string]interface{})["notes"])

	status, _ = env.do(t, http.MethodDelete, path, nil)
	assert.Equal(t, http.StatusOK, status)

	status, _ = env.do(t, http.MethodGet, path, nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestFabricOrderList(t *testing.T) {
	env := newTestEnv(t)

	for _, code := range []string{"WOOL-1", "wool-1", "SILK-2"} {
		status, _ := env.do(t, http.MethodPost, "/api/v1/fabric-order", map[string]interface{}{
			"fabric_code": code,
			"meters":      3.5,
			"ordered_for": "ORD-1",
		})
		require.Equal(t, http.StatusCreated, status)
	}

	status, response := env.do(t, http.MethodGet, "/api/v1/fabric-orders/code/Wool-1", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, response["data"], 2)

	status, response = env.do(t, http.MethodGet, "/api/v1/fabric-orders", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, response["data"], 3)

	status, _ = env.do(t, http.MethodPut, "/api/v1/fabric-order/1", map[string]interface{}{"meters": 4})
	assert.Equal(t, http.StatusOK, status)

	status, _ = env.do(t, http.MethodDelete, "/api/v1/fabric-order/3", nil)
	assert.Equal(t, http.StatusOK, status)
}

func TestRawMaterialsOrderList(t *testing.T) {
	env := newTestEnv(t)

	status, _ := env.do(t, http.MethodPost, "/api/v1/raw-materials-order", map[string]interface{}{"quantity": 10})
	assert.Equal(t, http.StatusBadRequest, status)

	status, response := env.do(t, http.MethodPost, "/api/v1/raw-materials-order", map[string]interface{}{
		"product_name": "Horn buttons",
		"color":        "brown",
		"quantity":     200,
	})
	require.Equal(t, http.StatusCreated, status)
	path := "/api/v1/raw-materials-order/" + itoa(uint(response["order_id"].(float64)))

	status, _ = env.do(t, http.MethodPut, path, map[string]interface{}{"quantity": 150})
	assert.Equal(t, http.StatusOK, status)

	status, response = env.do(t, http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(150), response["data"].(map[string]interface{})["quantity"])

	status, _ = env.do(t, http.MethodDelete, path, nil)
	assert.Equal(t, http.StatusOK, status)

	status, response = env.do(t, http.MethodGet, "/api/v1/raw-materials-orders", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, response["data"], 0)
}
