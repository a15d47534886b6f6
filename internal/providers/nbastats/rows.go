package nbastats

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/preston-bernstein/nba-roster-service/internal/providers"
)

const noOffset = -1

var (
	errMissingField = errors.New("field missing from row")
	errNullField    = errors.New("field is null")
)

// column names a field by header, with the positional offset used for headerless payloads.
type column struct {
	name   string
	offset int
}

// columns resolves field positions for one result set.
type columns struct {
	endpoint string
	index    map[string]int
}

func newColumns(endpoint string, set resultSet) columns {
	cols := columns{endpoint: endpoint}
	if len(set.Headers) == 0 {
		return cols
	}
	cols.index = make(map[string]int, len(set.Headers))
	for i, h := range set.Headers {
		cols.index[strings.ToUpper(strings.TrimSpace(h))] = i
	}
	return cols
}

// require fails when headers are present but any named column is absent.
func (c columns) require(required ...column) error {
	if c.index == nil {
		return nil
	}
	var missing []string
	for _, col := range required {
		if _, ok := c.index[col.name]; !ok {
			missing = append(missing, col.name)
		}
	}
	if len(missing) > 0 {
		return &providers.SchemaError{
			Endpoint: c.endpoint,
			Reason:   "missing columns " + strings.Join(missing, ","),
		}
	}
	return nil
}

func (c columns) position(col column) int {
	if c.index != nil {
		if idx, ok := c.index[col.name]; ok {
			return idx
		}
		return noOffset
	}
	return col.offset
}

func (c columns) has(col column) bool {
	return c.position(col) != noOffset
}

func (c columns) value(row []any, rowNum int, col column) (any, error) {
	idx := c.position(col)
	if idx < 0 || idx >= len(row) {
		return nil, c.fieldErr(rowNum, col, errMissingField)
	}
	return row[idx], nil
}

func (c columns) str(row []any, rowNum int, col column) (string, error) {
	v, err := c.value(row, rowNum, col)
	if err != nil {
		return "", err
	}
	s, err := toString(v)
	if err != nil {
		return "", c.fieldErr(rowNum, col, err)
	}
	return s, nil
}

// optionalStr tolerates null values but not a short row.
func (c columns) optionalStr(row []any, rowNum int, col column) (string, error) {
	v, err := c.value(row, rowNum, col)
	if err != nil {
		return "", err
	}
	if v == nil {
		return "", nil
	}
	s, err := toString(v)
	if err != nil {
		return "", c.fieldErr(rowNum, col, err)
	}
	return s, nil
}

func (c columns) float(row []any, rowNum int, col column) (float64, error) {
	v, err := c.value(row, rowNum, col)
	if err != nil {
		return 0, err
	}
	f, err := toFloat(v)
	if err != nil {
		return 0, c.fieldErr(rowNum, col, err)
	}
	return f, nil
}

// optionalFloat treats null as zero.
func (c columns) optionalFloat(row []any, rowNum int, col column) (float64, error) {
	v, err := c.value(row, rowNum, col)
	if err != nil {
		return 0, err
	}
	if v == nil {
		return 0, nil
	}
	f, err := toFloat(v)
	if err != nil {
		return 0, c.fieldErr(rowNum, col, err)
	}
	return f, nil
}

func (c columns) fieldErr(rowNum int, col column, err error) error {
	return &providers.FieldError{Endpoint: c.endpoint, Field: col.name, Row: rowNum, Err: err}
}

func toString(v any) (string, error) {
	switch val := v.(type) {
	case nil:
		return "", errNullField
	case string:
		return strings.TrimSpace(val), nil
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64), nil
	case json.Number:
		return val.String(), nil
	case bool:
		return "", fmt.Errorf("unexpected bool %v", val)
	default:
		return "", fmt.Errorf("unexpected type %T", v)
	}
}

func toFloat(v any) (float64, error) {
	switch val := v.(type) {
	case nil:
		return 0, errNullField
	case float64:
		return val, nil
	case json.Number:
		return val.Float64()
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return 0, fmt.Errorf("not a number: %q", val)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("unexpected type %T", v)
	}
}
