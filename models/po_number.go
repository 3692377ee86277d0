package models

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// PONumber keeps a purchase-order number as the spreadsheet typed it:
// either text or a number. It is never coerced between the two.
type PONumber struct {
	text    string
	number  float64
	numeric bool
}

func POText(s string) PONumber { return PONumber{text: s} }
func PONum(f float64) PONumber { return PONumber{number: f, numeric: true} }
func (p PONumber) IsNumeric() bool { return p.numeric }
func (p PONumber) Number() float64 { return p.number }

func (p PONumber) String() string {
	if p.numeric {
		return strconv.FormatFloat(p.number, 'f', -1, 64)
	}
	return p.text
}

func (p PONumber) MarshalJSON() ([]byte, error) {
	if p.numeric {
		return json.Marshal(p.number)
	}
	return json.Marshal(p.text)
}

func (p *PONumber) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*p = PONumber{}
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*p = POText(s)
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("PONo: %w", err)
	}
	*p = PONum(f)
	return nil
}

func (p PONumber) MarshalBSONValue() (bsontype.Type, []byte, error) {
	if p.numeric {
		return bson.MarshalValue(p.number)
	}
	return bson.MarshalValue(p.text)
}

func (p *PONumber) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	raw := bson.RawValue{Type: t, Value: data}
	switch t {
	case bson.TypeString:
		*p = POText(raw.StringValue())
	case bson.TypeDouble:
		*p = PONum(raw.Double())
	case bson.TypeInt32:
		*p = PONum(float64(raw.Int32()))
	case bson.TypeInt64:
		*p = PONum(float64(raw.Int64()))
	case bson.TypeNull, bson.TypeUndefined:
		*p = PONumber{}
	default:
		return fmt.Errorf("PONo: unsupported bson type %s", t)
	}
	return nil
}

// Value stores the number as a JSONB scalar so its kind survives a round trip.
func (p PONumber) Value() (driver.Value, error) {
	b, err := p.MarshalJSON()
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (p *PONumber) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*p = PONumber{}
		return nil
	case []byte:
		return p.UnmarshalJSON(v)
	case string:
		return p.UnmarshalJSON([]byte(v))
	default:
		return fmt.Errorf("PONo: cannot scan %T", src)
	}
}
