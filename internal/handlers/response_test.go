package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/devconnector-backend/internal/apierr"
)

func record(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	RespondServiceError(c, nil, err)
	return w
}

func TestRespondServiceErrorValidation(t *testing.T) {
	w := record(t, apierr.NewValidation(apierr.FieldError{Msg: "Status is required", Param: "status"}))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status: want=400 got=%d", w.Code)
	}
	var body struct {
		Errors []apierr.FieldError `json:"errors"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Errors) != 1 || body.Errors[0].Msg != "Status is required" {
		t.Fatalf("body: got=%s", w.Body.String())
	}
}

func TestRespondServiceErrorDomain(t *testing.T) {
	w := record(t, apierr.New(http.StatusNotFound, "Post not found", apierr.ErrNotFound))
	if w.Code != http.StatusNotFound {
		t.Fatalf("status: want=404 got=%d", w.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["msg"] != "Post not found" {
		t.Fatalf("msg: got=%q", body["msg"])
	}
}

func TestRespondServiceErrorWrapped(t *testing.T) {
	// Services wrap domain errors; the status must survive the wrapping.
	wrapped := apierr.New(http.StatusBadRequest, "Post already liked", apierr.ErrAlreadyLiked)
	w := record(t, wrapped)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status: want=400 got=%d", w.Code)
	}
}

func TestRespondServiceErrorUnknown(t *testing.T) {
	w := record(t, errors.New("pg connection refused"))
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status: want=500 got=%d", w.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["msg"] != "Server Error" {
		t.Fatalf("msg: got=%q", body["msg"])
	}
}
