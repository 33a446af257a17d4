package schema

import "github.com/hamba/avro/v2"

// ReceiptV1Avro returns the parsed [ReceiptSchemaTextV1]. It panics if
// the schema text is invalid.
func ReceiptV1Avro() avro.Schema {
	return avro.MustParse(ReceiptSchemaTextV1)
}

func AvroEncodeFn(s avro.Schema) func(v any) ([]byte, error) {
	return func(v any) ([]byte, error) {
		return avro.Marshal(s, v)
	}
}

func AvroDecodeFn(s avro.Schema) func([]byte, any) error {
	return func(data []byte, v any) error {
		return avro.Unmarshal(s, data, v)
	}
}
