package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"

	"github.com/prasetyowira/matchday/external/soccerdata"
	"github.com/prasetyowira/matchday/internal/usecase"
)

func TestWriteSuccess_Envelope(t *testing.T) {
	rec := httptest.NewRecorder()
	writeSuccess(context.Background(), rec, http.StatusOK, map[string]string{"status": "ok"})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}

	if got, _ := body["apiVersion"].(string); got != "1.0" {
		t.Fatalf("expected apiVersion=1.0, got %v", body["apiVersion"])
	}
	if _, ok := body["data"]; !ok {
		t.Fatalf("expected data key in success response")
	}
	if _, ok := body["error"]; ok {
		t.Fatalf("did not expect error key in success response")
	}
}

func TestWriteError_InvalidInput(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(context.Background(), rec, fmt.Errorf("%w: bad match id", usecase.ErrInvalidInput))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}
	errorObj, ok := body["error"].(map[string]any)
	if !ok {
		t.Fatalf("expected error object in response")
	}
	if got, _ := errorObj["status"].(string); got != "INVALID_ARGUMENT" {
		t.Fatalf("expected INVALID_ARGUMENT, got %v", errorObj["status"])
	}
	if got, _ := errorObj["detail"].(string); got == "" {
		t.Fatalf("expected detail message in error body")
	}
}

func TestWriteError_UpstreamMapsToBadGateway(t *testing.T) {
	cases := []error{
		&soccerdata.StatusError{StatusCode: 403, Detail: "subscription expired"},
		crerr.Wrapf(soccerdata.ErrTransport, "send request"),
		soccerdata.ErrMissingToken,
	}
	for i, upstreamErr := range cases {
		rec := httptest.NewRecorder()
		writeError(context.Background(), rec, upstreamErr)
		if rec.Code != http.StatusBadGateway {
			t.Fatalf("case %d: expected status 502, got %d", i, rec.Code)
		}
	}
}

func TestWriteRaw_VerbatimBody(t *testing.T) {
	rec := httptest.NewRecorder()
	raw := []byte(`{"unusual": "shape", "kept": [1, 2, 3]}`)
	writeRaw(context.Background(), rec, raw)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if rec.Body.String() != string(raw) {
		t.Fatalf("raw body must pass through untouched: %s", rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected json content type, got %q", ct)
	}
}
