package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/wmmead/fortythieves/internal/game"
)

// View implements tea.Model
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.headerView())
	b.WriteString("\n\n")
	b.WriteString(m.foundationsView())
	b.WriteString("\n")
	b.WriteString(m.tableauView())
	b.WriteString("\n")
	b.WriteString(m.pilesView())
	b.WriteString("\n")

	if m.session.State().Terminal() {
		b.WriteString(m.endView())
	} else if m.toast != "" {
		b.WriteString(errorStyle.Render(m.toast))
		b.WriteString("\n")
	} else if m.statusLine != "" {
		b.WriteString(labelStyle.Render(m.statusLine))
		b.WriteString("\n")
	} else {
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m *Model) headerView() string {
	s := m.session
	return headerStyle.Render(fmt.Sprintf(
		"Forty Thieves  ·  Score %d/%d  ·  Deck %d  ·  Moves %d  ·  Next undo costs %d",
		s.Score(), game.MaxScore, s.DeckRemaining(), s.MoveCount(), s.NextUndoCost(),
	))
}

func (m *Model) foundationsView() string {
	var slots []string
	for _, f := range m.session.Board().Foundations {
		label := "  —  "
		if top, ok := f.Top(); ok {
			label = cardStyle(top.IsRed()).Render(top.String())
		}
		slots = append(slots, m.slotFor(f.ID).Render(label))
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, slots...)
	return lipgloss.JoinHorizontal(lipgloss.Center, labelStyle.Render("Foundations "), row)
}

func (m *Model) tableauView() string {
	var slots []string
	for _, t := range m.session.Board().Tableaus {
		label := "  —  "
		if top, ok := t.Top(); ok {
			label = fmt.Sprintf("%s %s",
				cardStyle(top.IsRed()).Render(top.String()),
				labelStyle.Render(fmt.Sprintf("(%d)", t.Len())))
		}
		slots = append(slots, m.slotFor(t.ID).Render(label))
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, slots...)
	return lipgloss.JoinHorizontal(lipgloss.Center, labelStyle.Render("Tableau     "), row)
}

func (m *Model) pilesView() string {
	board := m.session.Board()

	discardLabel := "  —  "
	if top, ok := board.Discard.Top(); ok {
		discardLabel = fmt.Sprintf("%s %s",
			cardStyle(top.IsRed()).Render(top.String()),
			labelStyle.Render(fmt.Sprintf("(%d)", board.Discard.Len())))
	}
	discard := m.slotFor(game.DiscardID).Render(discardLabel)

	var deckLabel string
	switch m.session.DeckDisplay() {
	case game.DeckRefresh:
		deckLabel = "↻ refresh"
	case game.DeckEmpty:
		deckLabel = "empty"
	default:
		deckLabel = fmt.Sprintf("▒▒ %d", m.session.DeckRemaining())
	}
	deckSlot := slotStyle.Render(deckLabel)

	return lipgloss.JoinHorizontal(lipgloss.Center,
		labelStyle.Render("Discard     "), discard,
		labelStyle.Render("  Deck "), deckSlot)
}

// slotFor picks the border style for a container: selection beats cursor,
// candidate highlighting beats both for targets.
func (m *Model) slotFor(id string) lipgloss.Style {
	switch {
	case m.candidates[id]:
		return candidateSlotStyle
	case id == m.selected:
		return selectedSlotStyle
	case id == m.cursorID():
		return cursorSlotStyle
	default:
		return slotStyle
	}
}

func (m *Model) endView() string {
	var b strings.Builder
	switch m.session.State() {
	case game.StateWon:
		b.WriteString(winStyle.Render(fmt.Sprintf("You won with a perfect %d!", m.session.Score())))
	case game.StateCleared:
		b.WriteString(winStyle.Render(fmt.Sprintf("Board cleared! Final score %d.", m.session.Score())))
	}
	if m.ledger != nil {
		summary := m.ledger.Aggregate()
		b.WriteString("\n")
		b.WriteString(labelStyle.Render(fmt.Sprintf(
			"Games played %d  ·  Average score %.2f  ·  Games won %d",
			summary.GamesPlayed, summary.AverageScore, summary.GamesWon)))
	}
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Press n for a new game, q to quit."))
	b.WriteString("\n")
	return b.String()
}
