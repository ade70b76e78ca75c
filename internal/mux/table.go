package mux

import (
	"errors"
	"net/http"
	"regexp"

	"github.com/HugoManns/pokerhands-tests/internal/util"
	"github.com/HugoManns/pokerhands-tests/pkg/table"
)

type postTablePayload struct {
	Name string `json:"name"`
}

type tableResponse struct {
	*table.Table
	CardsLeft int            `json:"cardsLeft"`
	Rounds    []*table.Round `json:"rounds"`
}

func newTableResponse(tbl *table.Table) tableResponse {
	return tableResponse{
		Table:     tbl,
		CardsLeft: tbl.CardsLeft(),
		Rounds:    tbl.Rounds(),
	}
}

func (m *Mux) postTable() http.HandlerFunc {
	var wordChar = regexp.MustCompile(`\w`)
	return func(w http.ResponseWriter, r *http.Request) {
		var pp postTablePayload
		if !decodeRequest(w, r, &pp) {
			return
		}

		if pp.Name == "" {
			pp.Name = util.GetRandomName()
		}

		if !wordChar.MatchString(pp.Name) || len(pp.Name) < 3 || len(pp.Name) > 40 {
			writeJSONError(w, http.StatusBadRequest, errors.New("name must be 3-40 characters"))
			return
		}

		tbl := m.tables.Create(pp.Name)
		writeJSON(w, http.StatusCreated, newTableResponse(tbl))
	}
}

func (m *Mux) getTableUUID() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tbl := r.Context().Value(ctxTableKey).(*table.Table)
		writeJSON(w, http.StatusOK, newTableResponse(tbl))
	})
}

func (m *Mux) deleteTableUUID() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tbl := r.Context().Value(ctxTableKey).(*table.Table)
		if !m.tables.Close(tbl.UUID) {
			writeJSONError(w, http.StatusNotFound, nil)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

func (m *Mux) postTableUUIDRound() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tbl := r.Context().Value(ctxTableKey).(*table.Table)
		round, err := tbl.PlayRound()
		if err != nil {
			writeRoundError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, round)
	})
}

func writeRoundError(w http.ResponseWriter, err error) {
	var ue table.UserError
	if errors.As(err, &ue) {
		writeJSONError(w, http.StatusConflict, ue)
		return
	}

	writeJSONError(w, http.StatusInternalServerError, err)
}
