package table

import "errors"

// UserError is an error that is safe to return in a response
type UserError string

func (u UserError) Error() string {
	return string(u)
}

// ErrTableExhausted happens when the table's deck cannot cover another round
var ErrTableExhausted = UserError("the table has run out of cards")

// ErrTableNotFound happens when a table UUID is not registered
var ErrTableNotFound = errors.New("table not found")
