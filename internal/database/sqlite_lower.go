package database

import (
	"database/sql/driver"
	"strings"
	"sync"

	sqlitedriver "github.com/glebarez/go-sqlite"
)

var registerLower = sync.OnceValue(func() error {
	return sqlitedriver.RegisterDeterministicScalarFunction("lower", 1, unicodeLower)
})

// unicodeLower replaces SQLite's built-in lower(), which only folds ASCII,
// so LOWER(col) LIKE ? agrees with strings.ToLower on the search term.
func unicodeLower(_ *sqlitedriver.FunctionContext, args []driver.Value) (driver.Value, error) {
	switch v := args[0].(type) {
	case string:
		return strings.ToLower(v), nil
	case []byte:
		return strings.ToLower(string(v)), nil
	default:
		return v, nil
	}
}
