package mux

import (
	"context"
	"net/http"

	"github.com/HugoManns/pokerhands-tests/pkg/table"
	gmux "github.com/gorilla/mux"
)

type ctxKey int

const (
	ctxTableKey ctxKey = iota
)

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	version string
	tables  *table.Registry
}

// NewMux returns a new HTTP mux
func NewMux(version string, tables *table.Registry) *Mux {
	this := &Mux{
		Router:  gmux.NewRouter(),
		version: version,
		tables:  tables,
	}

	{
		r := this.Router
		r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
		r.Methods(http.MethodPost).Path("/showdown").Handler(this.postShowdown())
		r.Methods(http.MethodPost).Path("/table").Handler(this.postTable())

		tr := r.PathPrefix("/table/{uuid:(?i)[a-f0-9]{8}(?:-[a-f0-9]{4}){3}-[a-f0-9]{12}}").Subrouter()
		tr.Use(this.tableMiddleware)

		tr.Methods(http.MethodGet).Path("").Handler(this.getTableUUID())
		tr.Methods(http.MethodDelete).Path("").Handler(this.deleteTableUUID())
		tr.Methods(http.MethodPost).Path("/round").Handler(this.postTableUUIDRound())
		tr.Methods(http.MethodGet).Path("/ws").Handler(this.getTableUUIDWS())
	}

	return this
}

func (m *Mux) tableMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		uuid := gmux.Vars(r)["uuid"]
		tbl, err := m.tables.Get(uuid)
		if err != nil {
			writeMaybeNotFoundError(w, err)
			return
		}

		newCtx := context.WithValue(r.Context(), ctxTableKey, tbl)

		next.ServeHTTP(w, r.WithContext(newCtx))
	})
}
