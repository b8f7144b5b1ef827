package binance

import (
	"strings"
	"testing"
)

// Vector from the Binance REST API documentation.
const (
	docSecret = "NhqPtmdSJYdKjVHjA7PZj4Mge3R5YNiP1e3UZjInClVN65XAbvqqM6A7H5fATj0j"
	docQuery  = "symbol=LTCBTC&side=BUY&type=LIMIT&timeInForce=GTC&quantity=1&price=0.1&recvWindow=5000&timestamp=1499827319559"
	docSig    = "c8db56825ae71d6d79447849e617115f4a920fa2acdcab2b053c4b2838bd6b71"
)

func TestSignKnownVector(t *testing.T) {
	if got := sign(docSecret, docQuery); got != docSig {
		t.Fatalf("sign mismatch:\n got  %s\n want %s", got, docSig)
	}
}

func TestSignDeterministic(t *testing.T) {
	first := sign("secret", "a=1&b=2")
	for i := 0; i < 10; i++ {
		if got := sign("secret", "a=1&b=2"); got != first {
			t.Fatalf("sign not deterministic: %s != %s", got, first)
		}
	}
}

func TestSignOrderSensitive(t *testing.T) {
	if sign("secret", "a=1&b=2") == sign("secret", "b=2&a=1") {
		t.Fatal("reordered query produced the same signature")
	}
}

func TestSignEmptyPayload(t *testing.T) {
	got := sign("secret", "")
	if len(got) != 64 {
		t.Fatalf("expected 64 hex chars, got %d", len(got))
	}
	if got != strings.ToLower(got) {
		t.Fatalf("signature not lowercase: %s", got)
	}
}

func TestParamsPreserveInsertionOrder(t *testing.T) {
	qs := NewParams().
		Add("symbol", "BTCUSDT").
		Add("limit", "500").
		Add("aaa", "1").
		Encode()
	want := "symbol=BTCUSDT&limit=500&aaa=1"
	if qs != want {
		t.Fatalf("encode reordered params: got %q want %q", qs, want)
	}
}

func TestParamsEscaping(t *testing.T) {
	qs := NewParams().Add("note", "a b&c=d").Encode()
	want := "note=a+b%26c%3Dd"
	if qs != want {
		t.Fatalf("got %q want %q", qs, want)
	}
}

func TestParamsEmpty(t *testing.T) {
	if qs := NewParams().Encode(); qs != "" {
		t.Fatalf("expected empty encoding, got %q", qs)
	}
}
