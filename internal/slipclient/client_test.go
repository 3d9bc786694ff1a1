package slipclient

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL+"/", 5*time.Second)
}

func TestClient_List(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/salary-slips", r.URL.Path)
		_, _ = io.WriteString(w, `[{"id":"b","employeeNumber":"E002","basicPay":10,"createdAt":"2024-01-02T00:00:00Z"},
			{"id":"a","employeeNumber":"E001","basicPay":5,"createdAt":"2024-01-01T00:00:00Z"}]`)
	})

	slips, err := client.List(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, []string{"b", "a"}, ids(slips))
	assert.Equal(t, 10.0, slips[0].BasicPay)
	assert.Equal(t, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), slips[0].CreatedAt.UTC())
}

func TestClient_List_ServerError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = io.WriteString(w, `{"message":"connection refused"}`)
	})

	slips, err := client.List(context.Background())

	assert.Nil(t, slips)
	var apiErr *APIError
	assert.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Equal(t, "connection refused", apiErr.Message)
}

func TestClient_Create(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "E001", body["employeeNumber"])
		assert.Equal(t, "1000", body["basicPay"])
		assert.NotContains(t, body, "id")

		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"id":"new-id","employeeNumber":"E001","basicPay":1000,"createdAt":"2024-01-01T00:00:00Z"}`)
	})

	slip, err := client.Create(context.Background(), Draft{ID: "ignored", EmployeeNumber: "E001", BasicPay: "1000"})

	assert.NoError(t, err)
	assert.Equal(t, "new-id", slip.ID)
	assert.Equal(t, 1000.0, slip.BasicPay)
}

func TestClient_Create_Rejected(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"message":"Employee Number is required"}`)
	})

	_, err := client.Create(context.Background(), Draft{})

	var apiErr *APIError
	assert.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "Employee Number is required", apiErr.Message)
}

func TestClient_Update(t *testing.T) {
	t.Run("returns updated record", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPut, r.Method)
			assert.Equal(t, "/api/salary-slips/abc", r.URL.Path)
			_, _ = io.WriteString(w, `{"id":"abc","employeeNumber":"E009"}`)
		})

		slip, err := client.Update(context.Background(), "abc", Draft{EmployeeNumber: "E009"})

		assert.NoError(t, err)
		if assert.NotNil(t, slip) {
			assert.Equal(t, "E009", slip.EmployeeNumber)
		}
	})

	t.Run("null body means no such record", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, `null`)
		})

		slip, err := client.Update(context.Background(), "missing", Draft{})

		assert.NoError(t, err)
		assert.Nil(t, slip)
	})
}

func TestClient_Delete(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/salary-slips/abc", r.URL.Path)
		_, _ = io.WriteString(w, `{"message":"Salary slip deleted successfully"}`)
	})

	msg, err := client.Delete(context.Background(), "abc")

	assert.NoError(t, err)
	assert.Equal(t, "Salary slip deleted successfully", msg)
}

func TestClient_Get_NotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"message":"Salary slip not found"}`)
	})

	_, err := client.Get(context.Background(), "nope")

	var apiErr *APIError
	assert.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
}
