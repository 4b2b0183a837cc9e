package types

import (
	"encoding/json"
	"fmt"

	collcodec "cosmossdk.io/collections/codec"
	sdkmath "cosmossdk.io/math"
)

var (
	// UintValue encodes sdkmath.Uint values in collections.
	UintValue collcodec.ValueCodec[sdkmath.Uint] = uintValueCodec{}

	// ParamsValue encodes Params in collections.
	ParamsValue collcodec.ValueCodec[Params] = jsonValueCodec[Params]{name: "Params"}

	// PendingTransferValue encodes PendingTransfer records in collections.
	PendingTransferValue collcodec.ValueCodec[PendingTransfer] = jsonValueCodec[PendingTransfer]{name: "PendingTransfer"}
)

type uintValueCodec struct{}

func (uintValueCodec) Encode(value sdkmath.Uint) ([]byte, error) {
	return value.Marshal()
}

func (uintValueCodec) Decode(b []byte) (sdkmath.Uint, error) {
	v := sdkmath.ZeroUint()
	if err := v.Unmarshal(b); err != nil {
		return sdkmath.Uint{}, err
	}

	return v, nil
}

func (uintValueCodec) EncodeJSON(value sdkmath.Uint) ([]byte, error) {
	return value.MarshalJSON()
}

func (uintValueCodec) DecodeJSON(b []byte) (sdkmath.Uint, error) {
	v := sdkmath.ZeroUint()
	if err := v.UnmarshalJSON(b); err != nil {
		return sdkmath.Uint{}, err
	}

	return v, nil
}

func (uintValueCodec) Stringify(value sdkmath.Uint) string {
	return value.String()
}

func (uintValueCodec) ValueType() string {
	return "math.Uint"
}

// jsonValueCodec stores values as their JSON encoding.
type jsonValueCodec[T any] struct {
	name string
}

func (c jsonValueCodec[T]) Encode(value T) ([]byte, error) {
	return json.Marshal(value)
}

func (c jsonValueCodec[T]) Decode(b []byte) (T, error) {
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return v, fmt.Errorf("cannot decode %s: %w", c.name, err)
	}

	return v, nil
}

func (c jsonValueCodec[T]) EncodeJSON(value T) ([]byte, error) {
	return c.Encode(value)
}

func (c jsonValueCodec[T]) DecodeJSON(b []byte) (T, error) {
	return c.Decode(b)
}

func (c jsonValueCodec[T]) Stringify(value T) string {
	bz, err := json.Marshal(value)
	if err != nil {
		return fmt.Sprintf("%v", value)
	}

	return string(bz)
}

func (c jsonValueCodec[T]) ValueType() string {
	return "json/" + c.name
}
