package main

import (
	"strconv"
	"strings"

	"github.com/HugoManns/pokerhands-tests/pkg/deck"
	"github.com/HugoManns/pokerhands-tests/pkg/poker"
	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	redSuitStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))

	blackSuitStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("15"))

	categoryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))

	winStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("10"))

	tieStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))
)

func renderCard(card deck.Card) string {
	switch card.Suit() {
	case deck.Diamonds, deck.Hearts:
		return redSuitStyle.Render(card.String())
	default:
		return blackSuitStyle.Render(card.String())
	}
}

func renderHand(hand *deck.Hand) string {
	cards := hand.Cards()
	rendered := make([]string, len(cards))
	for i, card := range cards {
		rendered[i] = renderCard(card)
	}

	return strings.Join(rendered, " ")
}

func renderCategory(rank poker.HandRank) string {
	return categoryStyle.Render(rank.String())
}

// renderVerdict names the winning seat, seats are numbered from 1
func renderVerdict(verdict poker.Verdict, hands ...*deck.Hand) string {
	if verdict.IsTie() {
		return tieStyle.Render("Tie with " + verdict.HandType)
	}

	for i, hand := range hands {
		if hand == verdict.WinningHand {
			return winStyle.Render("Hand " + strconv.Itoa(i+1) + " wins with " + verdict.HandType)
		}
	}

	return winStyle.Render(verdict.HandType + " wins")
}
