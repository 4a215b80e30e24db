package strategy

import (
	"embed"
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/aaronzipp/dogma/internal/models"
)

//go:embed scripts/*.lua
var scripts embed.FS

// luaHooks are the global functions a decider script must define
var luaHooks = []string{"nominate", "vote", "choose_cards", "agree_to_overrule", "denounce"}

// Lua runs decisions through a Lua script. Players are passed to the script
// as tables with name and denounced fields; cards as one-letter strings.
// A failing script yields an empty decision, which the engine rejects; the
// underlying script error is kept in Err.
type Lua struct {
	state *lua.LState
	err   error
}

// NewLua loads source and checks it defines every decision hook
func NewLua(source string) (*Lua, error) {
	state := lua.NewState()
	if err := state.DoString(source); err != nil {
		state.Close()
		return nil, fmt.Errorf("load lua decider: %w", err)
	}
	for _, hook := range luaHooks {
		if state.GetGlobal(hook).Type() != lua.LTFunction {
			state.Close()
			return nil, fmt.Errorf("load lua decider: missing function %q", hook)
		}
	}
	return &Lua{state: state}, nil
}

// NewBuiltinLua loads one of the scripts bundled with the binary
func NewBuiltinLua(name string) (*Lua, error) {
	source, err := scripts.ReadFile("scripts/" + name + ".lua")
	if err != nil {
		return nil, fmt.Errorf("builtin lua decider %q: %w", name, err)
	}
	return NewLua(string(source))
}

// Close releases the script's interpreter
func (d *Lua) Close() {
	d.state.Close()
}

// Err returns the most recent script error
func (d *Lua) Err() error {
	return d.err
}

func (d *Lua) call(hook string, nret int, args ...lua.LValue) []lua.LValue {
	err := d.state.CallByParam(lua.P{
		Fn:      d.state.GetGlobal(hook),
		NRet:    nret,
		Protect: true,
	}, args...)
	if err != nil {
		d.err = fmt.Errorf("lua %s: %w", hook, err)
		return nil
	}
	results := make([]lua.LValue, nret)
	for i := range nret {
		results[i] = d.state.Get(i - nret)
	}
	d.state.Pop(nret)
	return results
}

func (d *Lua) playerTable(p *models.Player) *lua.LTable {
	t := d.state.NewTable()
	t.RawSetString("name", lua.LString(p.Name))
	t.RawSetString("denounced", lua.LBool(p.Denounced))
	return t
}

func (d *Lua) playerList(players []*models.Player) *lua.LTable {
	t := d.state.NewTable()
	for _, p := range players {
		t.Append(d.playerTable(p))
	}
	return t
}

func (d *Lua) cardList(cards []models.Card) *lua.LTable {
	t := d.state.NewTable()
	for _, c := range cards {
		t.Append(lua.LString(c))
	}
	return t
}

func (d *Lua) pick(hook string, eligible []*models.Player) *models.Player {
	out := d.call(hook, 1, d.playerList(eligible))
	if out == nil {
		return nil
	}
	name := lua.LVAsString(out[0])
	for _, p := range eligible {
		if p.Name == name {
			return p
		}
	}
	d.err = fmt.Errorf("lua %s: unknown player %q", hook, name)
	return nil
}

// Nominate calls nominate(players) and expects a player name
func (d *Lua) Nominate(eligible []*models.Player) *models.Player {
	return d.pick("nominate", eligible)
}

// Vote calls vote(nominee) and expects true to approve
func (d *Lua) Vote(nominee *models.Player) models.Vote {
	out := d.call("vote", 1, d.playerTable(nominee))
	if out == nil {
		return ""
	}
	if lua.LVAsBool(out[0]) {
		return models.VoteApprove
	}
	return models.VoteReject
}

// ChooseCardsToSubmit calls choose_cards(cards, overrule_available) and
// expects the kept cards, the rejected card and the overrule flag
func (d *Lua) ChooseCardsToSubmit(candidates []models.Card, overruleAvailable bool) ([]models.Card, models.Card, bool) {
	out := d.call("choose_cards", 3, d.cardList(candidates), lua.LBool(overruleAvailable))
	if out == nil {
		return nil, "", false
	}
	var kept []models.Card
	if t, ok := out[0].(*lua.LTable); ok {
		for i := 1; i <= t.Len(); i++ {
			kept = append(kept, models.Card(lua.LVAsString(t.RawGetInt(i))))
		}
	}
	return kept, models.Card(lua.LVAsString(out[1])), lua.LVAsBool(out[2])
}

// AgreeToOverrule calls agree_to_overrule()
func (d *Lua) AgreeToOverrule() bool {
	out := d.call("agree_to_overrule", 1)
	if out == nil {
		return false
	}
	return lua.LVAsBool(out[0])
}

// Denounce calls denounce(players) and expects a player name
func (d *Lua) Denounce(eligible []*models.Player) *models.Player {
	return d.pick("denounce", eligible)
}
