package render

import (
	"slices"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/aaronzipp/dogma/internal/game"
	"github.com/aaronzipp/dogma/internal/models"
	"github.com/aaronzipp/dogma/internal/runner"
)

// title upper-cases the first letter of each word; casers are stateful so
// each call gets its own
func title(s string) string {
	return cases.Title(language.English).String(s)
}

// TeamLabel returns a display label for a team
func TeamLabel(team models.Team) string {
	if team == models.TeamNone {
		return "Nobody"
	}
	return title(string(team))
}

// Roster generates the seating list with roles and denouncements
func Roster(players []*models.Player) string {
	var b strings.Builder
	for i, p := range players {
		b.WriteString(strconv.Itoa(i + 1))
		b.WriteString(". ")
		b.WriteString(p.Name)
		b.WriteString(" (")
		b.WriteString(title(string(p.Role)))
		b.WriteString(")")
		if p.Denounced {
			b.WriteString(" [denounced]")
		}
		b.WriteString("\n")
	}
	return b.String()
}

// Tally generates the publication counts line
func Tally(t game.Tally) string {
	var b strings.Builder
	b.WriteString("Publications: ")
	b.WriteString(strconv.Itoa(t.Favorable))
	b.WriteString(" favorable / ")
	b.WriteString(strconv.Itoa(t.Unfavorable))
	b.WriteString(" unfavorable")
	return b.String()
}

// GameSummary generates the end-of-game report for a single game
func GameSummary(g *game.Game) string {
	var b strings.Builder
	b.WriteString("Seed ")
	b.WriteString(strconv.FormatInt(g.Seed(), 10))
	b.WriteString(", ")
	b.WriteString(strconv.Itoa(g.Turns()))
	b.WriteString(" turns\n")
	b.WriteString(Roster(g.Players()))
	b.WriteString(Tally(g.Publications()))
	b.WriteString("\n")
	if g.Finished() {
		b.WriteString("Winner: ")
		b.WriteString(TeamLabel(g.Winner()))
		b.WriteString(" - ")
		b.WriteString(g.Message())
		b.WriteString("\n")
	}
	return b.String()
}

// Report generates the win table of a multi-game run, teams in a fixed
// order and outcome messages sorted by frequency
func Report(r *runner.Report) string {
	p := message.NewPrinter(language.English)
	var b strings.Builder
	b.WriteString(p.Sprintf("Games played: %d\n", r.Games))
	for _, team := range []models.Team{models.TeamMajority, models.TeamMinority} {
		wins := r.Wins[team]
		b.WriteString(p.Sprintf("%-12s %6d  %5.1f%%\n", TeamLabel(team), wins, percent(wins, r.Games)))
	}
	messages := make([]string, 0, len(r.Messages))
	for msg := range r.Messages {
		messages = append(messages, msg)
	}
	slices.SortFunc(messages, func(a, b string) int {
		if d := r.Messages[b] - r.Messages[a]; d != 0 {
			return d
		}
		return strings.Compare(a, b)
	})
	for _, msg := range messages {
		b.WriteString(p.Sprintf("  %6d  %s\n", r.Messages[msg], msg))
	}
	if r.Failed > 0 {
		b.WriteString(p.Sprintf("Failed games: %d\n", r.Failed))
	}
	return b.String()
}

func percent(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return 100 * float64(n) / float64(total)
}
