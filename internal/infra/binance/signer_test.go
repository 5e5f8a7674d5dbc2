package binance

import "testing"

func TestSigner_Sign(t *testing.T) {
	// Reference vector from the venue's signed-endpoint documentation.
	signer := NewSigner(
		"vmPUZE6mv9SD5VNHk4HlWFsOr6aKE2zvsw0MuIgwCIPy6utIco14y7Ju91duEh8A",
		"NhqPtmdSJYdKjVHjA7PZj4Mge3R5YNiP1e3UZjInClVN65XAbvqqM6A7H5fATj0j",
	)

	query := "symbol=LTCBTC&side=BUY&type=LIMIT&timeInForce=GTC&quantity=1&price=0.1&recvWindow=5000&timestamp=1499827319559"
	want := "c8db56825ae71d6d79447849e617115f4a920fa2acdcab2b053c4b2838bd6b71"

	if got := signer.Sign(query); got != want {
		t.Errorf("Sign() = %s, want %s", got, want)
	}
}

func TestSigner_SignLeverageParams(t *testing.T) {
	signer := NewSigner("test-key", "test-secret")

	got := signer.Sign("symbol=BTCUSDT&leverage=5&timestamp=1700000000000")
	want := "637105075630831ed279eb8a5d64527d767a7fbe5027df7308054659e048143f"
	if got != want {
		t.Errorf("Sign() = %s, want %s", got, want)
	}
}

func TestSigner_Wipe(t *testing.T) {
	signer := NewSigner("key", "secret")
	signer.Wipe()

	if signer.APIKey() != "\x00\x00\x00" {
		t.Errorf("key not wiped: %q", signer.APIKey())
	}

	// Wipe on nil must not panic.
	var nilSigner *Signer
	nilSigner.Wipe()
}
