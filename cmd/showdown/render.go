package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pterm/pterm"

	"showdown-server/pkg/deck"
	"showdown-server/pkg/match"
	"showdown-server/pkg/table"
	"showdown-server/pkg/texasholdem"
)

type renderer struct {
	match *match.Match
	names map[int64]string
}

func newRenderer(m *match.Match) *renderer {
	names := make(map[int64]string, len(m.Players()))
	for _, p := range m.Players() {
		names[p.ID] = p.Name
	}

	return &renderer{
		match: m,
		names: names,
	}
}

func (r *renderer) title() {
	opts := r.match.Options()
	goal := "no target"
	if opts.TargetEnabled {
		goal = fmt.Sprintf("first to %d", opts.Target)
	}

	pterm.DefaultHeader.WithFullWidth().Printfln("Showdown Hold'em: %d players, %s", len(r.match.Players()), goal)
}

func (r *renderer) roundStart(n int) {
	pterm.DefaultSection.Printfln("Round %d", n)
}

func (r *renderer) events(events []*texasholdem.Event) {
	for _, e := range events {
		msg := formatMessage(e.Message, e.PlayerIDs, r.names)
		switch e.Type {
		case texasholdem.EventFlop, texasholdem.EventTurn, texasholdem.EventRiver:
			pterm.Info.Println(msg)
		case texasholdem.EventLeaders:
			pterm.Println(pterm.LightYellow(msg))
		default:
			pterm.Println(msg)
		}
	}
}

func (r *renderer) showdown(round *texasholdem.Round, result *texasholdem.ShowdownResult) {
	var sb strings.Builder
	for _, p := range round.Participants() {
		name := r.names[p.PlayerID]
		line := fmt.Sprintf("%-12s %s  %s", name, cardLabels(p.Cards()), p.HandName())
		if p.Won() {
			line = pterm.LightGreen(line + "  " + cardLabels(p.WinningCards()))
		}

		sb.WriteString(line + "\n")
	}

	sb.WriteString("\nBoard: " + cardLabels(round.Board()))
	if len(result.HighlightedBoardCards) > 0 {
		sb.WriteString("  (" + cardLabels(result.HighlightedBoardCards) + ")")
	}

	pterm.DefaultBox.WithTitle(pterm.LightGreen("|SHOWDOWN|")).WithTitleTopCenter().Println(sb.String())
}

func (r *renderer) scoreboard(result *texasholdem.ShowdownResult) error {
	return pterm.DefaultTable.WithHasHeader().WithData(scoreboardData(r.match.Players(), result)).Render()
}

func (r *renderer) champion(c *match.Champion) {
	pterm.Success.Printfln("%s is the champion with %d points and %s", c.Name, c.Points, strings.ToLower(c.Hand.Name()))
}

// scoreboardData returns the points table, round winners are marked
func scoreboardData(players []*table.Player, result *texasholdem.ShowdownResult) pterm.TableData {
	data := pterm.TableData{{"Player", "Points", ""}}
	for _, p := range players {
		mark := ""
		if result != nil && result.IsWinner(p.ID) {
			mark = "+1"
		}

		data = append(data, []string{p.Name, strconv.Itoa(p.Points), mark})
	}

	return data
}

// formatMessage replaces the {} placeholder with the player names
func formatMessage(msg string, playerIDs []int64, names map[int64]string) string {
	if len(playerIDs) == 0 {
		return msg
	}

	n := make([]string, len(playerIDs))
	for i, id := range playerIDs {
		n[i] = names[id]
	}

	var who string
	if len(n) == 1 {
		who = n[0]
	} else {
		who = strings.Join(n[:len(n)-1], ", ") + " and " + n[len(n)-1]
	}

	return strings.Replace(msg, "{}", who, 1)
}

func cardLabels(cards deck.Hand) string {
	l := make([]string, len(cards))
	for i, c := range cards {
		l[i] = c.String()
	}

	return strings.Join(l, " ")
}
