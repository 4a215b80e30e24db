package render

import (
	"fmt"
	"strconv"
	"strings"

	qrcode "github.com/skip2/go-qrcode"
)

const (
	replayPrefix = "dogma:"
	qrSize       = 256
)

// Replay is everything needed to play a game again: its seed, the strategy
// every seat used and the seating order. Strategy "lua" stands for a
// user-supplied script that the token cannot carry.
type Replay struct {
	Seed     int64
	Strategy string
	Players  []string
}

// Token encodes r as dogma:seed=N;strategy=S;players=a,b,...
func (r Replay) Token() string {
	return replayPrefix + "seed=" + strconv.FormatInt(r.Seed, 10) +
		";strategy=" + r.Strategy +
		";players=" + strings.Join(r.Players, ",")
}

// ParseReplayToken decodes a token produced by Replay.Token. A token
// without a strategy field replays with the random strategy.
func ParseReplayToken(token string) (Replay, error) {
	body, ok := strings.CutPrefix(token, replayPrefix)
	if !ok {
		return Replay{}, fmt.Errorf("replay token %q: missing %q prefix", token, replayPrefix)
	}
	fields := make(map[string]string)
	for _, part := range strings.Split(body, ";") {
		key, value, ok := strings.Cut(part, "=")
		if !ok {
			return Replay{}, fmt.Errorf("replay token %q: malformed field %q", token, part)
		}
		fields[key] = value
	}

	seedText, ok := fields["seed"]
	if !ok {
		return Replay{}, fmt.Errorf("replay token %q: missing seed", token)
	}
	seed, err := strconv.ParseInt(seedText, 10, 64)
	if err != nil {
		return Replay{}, fmt.Errorf("replay token %q: %w", token, err)
	}
	names := fields["players"]
	if names == "" {
		return Replay{}, fmt.Errorf("replay token %q: missing players", token)
	}
	strategy := fields["strategy"]
	if strategy == "" {
		strategy = "random"
	}
	return Replay{Seed: seed, Strategy: strategy, Players: strings.Split(names, ",")}, nil
}

// ReplayQR encodes token as a PNG QR code
func ReplayQR(token string) ([]byte, error) {
	png, err := qrcode.Encode(token, qrcode.Medium, qrSize)
	if err != nil {
		return nil, fmt.Errorf("encode replay qr: %w", err)
	}
	return png, nil
}

// WriteReplayQR writes token as a PNG QR code to path
func WriteReplayQR(path, token string) error {
	if err := qrcode.WriteFile(token, qrcode.Medium, qrSize, path); err != nil {
		return fmt.Errorf("write replay qr: %w", err)
	}
	return nil
}
