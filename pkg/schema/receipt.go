package schema

import "time"

const ReceiptSchemaTextV1 = `{
	"type": "record",
	"namespace": "shopcart",
	"name": "receipt",
	"fields" : [
		{"name": "order_id", "type": {"type": "string", "logicalType": "uuid"}},
		{"name": "name", "type": "string"},
		{"name": "address", "type": "string"},
		{"name": "lines", "type": {
			"type": "array",
			"items": {
				"type": "record",
				"name": "receipt_line",
				"fields": [
					{"name": "product_id", "type": "long"},
					{"name": "title", "type": "string"},
					{"name": "unit_price", "type": "long"},
					{"name": "quantity", "type": "long"}
				]
			}
		}},
		{"name": "total", "type": "long"},
		{"name": "placed_at", "type": {"type": "long", "logicalType": "timestamp-millis"}}
	]
}`

type (
	ReceiptV1 struct {
		OrderID  string          `avro:"order_id"`
		Name     string          `avro:"name"`
		Address  string          `avro:"address"`
		Lines    []ReceiptLineV1 `avro:"lines"`
		Total    int64           `avro:"total"`
		PlacedAt time.Time       `avro:"placed_at"`
	}

	ReceiptLineV1 struct {
		ProductID int64  `avro:"product_id"`
		Title     string `avro:"title"`
		UnitPrice int64  `avro:"unit_price"`
		Quantity  int64  `avro:"quantity"`
	}
)
