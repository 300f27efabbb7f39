package pathutil

import (
	"fmt"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

// NewProtoFacts marshals a Protocol Buffer message to JSON and serves it as facts.
// Field names follow the .proto definition, not the JSON camelCase form.
func NewProtoFacts(message proto.Message) (*JSONFacts, error) {
	if message == nil || !message.ProtoReflect().IsValid() {
		return nil, fmt.Errorf("loading facts: %w", ErrNilMessage)
	}

	marshaler := protojson.MarshalOptions{
		UseProtoNames:   true,
		EmitUnpopulated: false,
	}

	data, err := marshaler.Marshal(message)
	if err != nil {
		return nil, fmt.Errorf("marshaling proto message: %w", err)
	}

	return NewJSONFacts(string(data))
}
