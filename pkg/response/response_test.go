package response

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ShouterLab/binance-api-svr/pkg/schema"
)

func TestSuccessEnvelope(t *testing.T) {
	env := Success(map[string]string{"symbol": "BTCUSDT"}, schema.SPOT)
	if env.ErrorCode != CodeSuccess {
		t.Fatalf("expected code 0, got %d", env.ErrorCode)
	}
	if env.ErrorMsg != "success" {
		t.Fatalf("expected message %q, got %q", "success", env.ErrorMsg)
	}
	if env.Body == nil {
		t.Fatal("success envelope must carry a body")
	}
	if env.MarketType != schema.SPOT {
		t.Fatalf("expected market spot, got %q", env.MarketType)
	}
}

func TestErrorEnvelopeDefaultMessage(t *testing.T) {
	env := Error(CodeLimitExceeded, "")
	if env.ErrorCode != CodeLimitExceeded {
		t.Fatalf("expected code %d, got %d", CodeLimitExceeded, env.ErrorCode)
	}
	if env.ErrorMsg != "Limit cannot exceed 1000" {
		t.Fatalf("unexpected message: %q", env.ErrorMsg)
	}
	if env.Body != nil {
		t.Fatal("error envelope must not carry a body")
	}
}

func TestErrorEnvelopeCustomMessage(t *testing.T) {
	env := Error(CodeMissingParams, "limit must be an integer")
	if env.ErrorMsg != "limit must be an integer" {
		t.Fatalf("custom message lost: %q", env.ErrorMsg)
	}
}

func TestMessageUnknownCode(t *testing.T) {
	if got := Message(9999); got != "Unknown error" {
		t.Fatalf("expected fallback message, got %q", got)
	}
}

func TestInternalErrorEnvelope(t *testing.T) {
	env := InternalError(errors.New("connection refused"))
	if env.ErrorCode != CodeInternalServerError {
		t.Fatalf("expected code %d, got %d", CodeInternalServerError, env.ErrorCode)
	}
	if env.ErrorMsg != "Internal server error: connection refused" {
		t.Fatalf("unexpected message: %q", env.ErrorMsg)
	}

	env = InternalError(nil)
	if env.ErrorMsg != "Internal server error: Unknown error" {
		t.Fatalf("unexpected nil-error message: %q", env.ErrorMsg)
	}
}

func TestEnvelopeJSONOmitsEmptyFields(t *testing.T) {
	b, err := json.Marshal(Error(CodeSymbolRequired, ""))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(b), `"body"`) {
		t.Fatalf("body must be omitted on error: %s", b)
	}
	if strings.Contains(string(b), `"marketType"`) {
		t.Fatalf("marketType must be omitted when empty: %s", b)
	}

	b, err = json.Marshal(Success([]int{1}, schema.FUTURES))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(b), `"marketType":"futures"`) {
		t.Fatalf("marketType missing on tagged success: %s", b)
	}
}

func TestWriteHelpersStatusCodes(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteSuccess(rec, "ok", schema.SPOT)
	if rec.Code != 200 {
		t.Fatalf("WriteSuccess status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("unexpected content type %q", ct)
	}

	rec = httptest.NewRecorder()
	WriteError(rec, CodeInvalidMarketType)
	if rec.Code != 400 {
		t.Fatalf("WriteError status = %d", rec.Code)
	}
	var env Envelope
	if err := json.NewDecoder(rec.Body).Decode(&env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if env.ErrorCode != CodeInvalidMarketType || env.ErrorMsg == "" {
		t.Fatalf("unexpected envelope: %+v", env)
	}

	rec = httptest.NewRecorder()
	WriteInternalError(rec, errors.New("boom"))
	if rec.Code != 500 {
		t.Fatalf("WriteInternalError status = %d", rec.Code)
	}
}
