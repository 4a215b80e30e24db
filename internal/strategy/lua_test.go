package strategy

import (
	"slices"
	"strings"
	"testing"

	"github.com/aaronzipp/dogma/internal/models"
)

func TestNewLuaRequiresEveryHook(t *testing.T) {
	_, err := NewLua(`function nominate(players) return players[1].name end`)
	if err == nil || !strings.Contains(err.Error(), "missing function") {
		t.Fatalf("expected missing function error, got %v", err)
	}
}

func TestNewLuaReportsSyntaxErrors(t *testing.T) {
	if _, err := NewLua(`function (`); err == nil {
		t.Fatal("expected load error")
	}
}

func TestBuiltinCautious(t *testing.T) {
	d, err := NewBuiltinLua("cautious")
	if err != nil {
		t.Fatalf("NewBuiltinLua returned error: %v", err)
	}
	defer d.Close()

	players := samplePlayers()
	if p := d.Nominate(players); p != players[0] {
		t.Fatalf("nominated %v, want %v", p, players[0])
	}
	if p := d.Denounce(players[1:]); p != players[1] {
		t.Fatalf("denounced %v, want %v", p, players[1])
	}
	if d.Vote(players[2]) != models.VoteApprove {
		t.Fatal("expected approval")
	}
	if d.AgreeToOverrule() {
		t.Fatal("expected overrule refusal")
	}

	kept, rejected, overrule := d.ChooseCardsToSubmit([]models.Card{models.CardFavorable, models.CardUnfavorable, models.CardFavorable}, true)
	if !slices.Equal(kept, []models.Card{models.CardFavorable, models.CardFavorable}) || rejected != models.CardUnfavorable || overrule {
		t.Fatalf("unexpected choice %v / %q / %t", kept, rejected, overrule)
	}
	if d.Err() != nil {
		t.Fatalf("unexpected script error: %v", d.Err())
	}
}

func TestBuiltinUnknown(t *testing.T) {
	if _, err := NewBuiltinLua("reckless"); err == nil {
		t.Fatal("expected unknown script error")
	}
}

func TestLuaUnknownPlayerName(t *testing.T) {
	d, err := NewLua(`
function nominate(players) return "nobody" end
function vote(nominee) return nominee.denounced end
function choose_cards(cards, overrule) return {cards[1]}, cards[2], overrule end
function agree_to_overrule() return true end
function denounce(players) return players[#players].name end
`)
	if err != nil {
		t.Fatalf("NewLua returned error: %v", err)
	}
	defer d.Close()

	players := samplePlayers()
	if p := d.Nominate(players); p != nil {
		t.Fatalf("expected no player, got %v", p)
	}
	if d.Err() == nil || !strings.Contains(d.Err().Error(), "nobody") {
		t.Fatalf("expected unknown player error, got %v", d.Err())
	}
	if d.Denounce(players) != players[2] {
		t.Fatal("expected last player")
	}
	if d.Vote(players[0]) != models.VoteReject {
		t.Fatal("expected rejection of a player who is not denounced")
	}
	kept, rejected, overrule := d.ChooseCardsToSubmit([]models.Card{models.CardUnfavorable, models.CardFavorable}, true)
	if !slices.Equal(kept, []models.Card{models.CardUnfavorable}) || rejected != models.CardFavorable || !overrule {
		t.Fatalf("unexpected choice %v / %q / %t", kept, rejected, overrule)
	}
}

func TestLuaRuntimeErrorYieldsEmptyDecision(t *testing.T) {
	d, err := NewLua(`
function nominate(players) error("boom") end
function vote(nominee) error("boom") end
function choose_cards(cards, overrule) error("boom") end
function agree_to_overrule() error("boom") end
function denounce(players) error("boom") end
`)
	if err != nil {
		t.Fatalf("NewLua returned error: %v", err)
	}
	defer d.Close()

	if d.Nominate(samplePlayers()) != nil {
		t.Fatal("expected nil nominee")
	}
	if d.Vote(samplePlayers()[0]) != "" {
		t.Fatal("expected empty vote")
	}
	if kept, _, _ := d.ChooseCardsToSubmit([]models.Card{models.CardFavorable}, false); kept != nil {
		t.Fatalf("expected no kept cards, got %v", kept)
	}
	if d.AgreeToOverrule() {
		t.Fatal("expected refusal on error")
	}
	if d.Err() == nil || !strings.Contains(d.Err().Error(), "boom") {
		t.Fatalf("expected script error, got %v", d.Err())
	}
}
