package mux

import (
	"errors"
	"net/http"

	"github.com/HugoManns/pokerhands-tests/pkg/deck"
	"github.com/HugoManns/pokerhands-tests/pkg/poker"
)

type postShowdownPayload struct {
	Hands []*deck.Hand `json:"hands"`
}

type showdownResponse struct {
	Verdict     poker.Verdict      `json:"verdict"`
	Winner      int                `json:"winner"`
	Evaluations []poker.Evaluation `json:"evaluations"`
}

func (m *Mux) postShowdown() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var pp postShowdownPayload
		if !decodeRequest(w, r, &pp) {
			return
		}

		if len(pp.Hands) != 2 {
			writeJSONError(w, http.StatusBadRequest, errors.New("exactly two hands are required"))
			return
		}

		for _, hand := range pp.Hands {
			if hand == nil {
				writeJSONError(w, http.StatusBadRequest, deck.ErrInvalidHandSize)
				return
			}
		}

		resp := showdownResponse{
			Verdict: poker.CheckHands(pp.Hands[0], pp.Hands[1]),
		}

		for i, hand := range pp.Hands {
			resp.Evaluations = append(resp.Evaluations, poker.Evaluate(hand))
			if resp.Verdict.WinningHand == hand {
				resp.Winner = i + 1
			}
		}

		writeJSON(w, http.StatusOK, resp)
	}
}
