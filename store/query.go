package store

import (
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"jobsweep/errors"
)

// ResultSet is a tabular query result. Columns are the header names exactly as
// the query produced them; Rows hold every value rendered as a string, ready
// for CSV export.
type ResultSet struct {
	Columns []string
	Rows    [][]string
}

// Query executes a read-only SQL query and returns its rows with column names
func (s *Store) Query(queryText string) (*ResultSet, error) {
	db, err := s.open()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	return runQuery(db, queryText)
}

func runQuery(db *sql.DB, queryText string) (*ResultSet, error) {
	rows, err := db.Query(queryText)
	if err != nil {
		return nil, errors.WrapStorage(err, "execute query")
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, errors.WrapStorage(err, "read column names")
	}

	result := &ResultSet{Columns: columns}
	for rows.Next() {
		values := make([]interface{}, len(columns))
		pointers := make([]interface{}, len(columns))
		for i := range values {
			pointers[i] = &values[i]
		}
		if err := rows.Scan(pointers...); err != nil {
			return nil, errors.WrapStorage(err, "scan row")
		}

		row := make([]string, len(columns))
		for i, value := range values {
			row[i] = renderValue(value)
		}
		result.Rows = append(result.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.WrapStorage(err, "iterate rows")
	}

	return result, nil
}

func renderValue(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case []byte:
		return string(v)
	case string:
		return v
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case time.Time:
		return v.Format(time.RFC3339)
	default:
		return fmt.Sprintf("%v", v)
	}
}
