package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// Quantity is a numeric field from externally maintained data. It decodes numbers
// stored as doubles, integers or numeric strings; anything else reads as 0.
type Quantity float64

func (q Quantity) Float() float64 { return float64(q) }

func (q *Quantity) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	raw := bson.RawValue{Type: t, Value: data}
	switch t {
	case bson.TypeDouble:
		*q = Quantity(finite(raw.Double()))
	case bson.TypeInt32:
		*q = Quantity(raw.Int32())
	case bson.TypeInt64:
		*q = Quantity(raw.Int64())
	case bson.TypeDecimal128:
		*q = parseQuantity(raw.Decimal128().String())
	case bson.TypeString:
		*q = parseQuantity(raw.StringValue())
	case bson.TypeBoolean:
		if raw.Boolean() {
			*q = 1
		} else {
			*q = 0
		}
	default:
		*q = 0
	}
	return nil
}

func (q *Quantity) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch x := v.(type) {
	case float64:
		*q = Quantity(x)
	case string:
		*q = parseQuantity(x)
	default:
		*q = 0
	}
	return nil
}

func (q Quantity) Value() (driver.Value, error) {
	return float64(q), nil
}

func (q *Quantity) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*q = 0
	case float64:
		*q = Quantity(v)
	case int64:
		*q = Quantity(v)
	case []byte:
		*q = parseQuantity(string(v))
	case string:
		*q = parseQuantity(v)
	default:
		return fmt.Errorf("quantity: cannot scan %T", src)
	}
	return nil
}

func parseQuantity(s string) Quantity {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return Quantity(finite(f))
}

func finite(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

func legacyString(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case int64:
		return strconv.FormatInt(x, 10)
	default:
		return fmt.Sprint(x)
	}
}
