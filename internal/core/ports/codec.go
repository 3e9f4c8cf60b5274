package ports

import "go.trai.ch/snapsync/internal/core/domain"

// Codec converts objects to and from their canonical encoding.
// The checksum of an object is the checksum of its encoding.
//
//go:generate go run go.uber.org/mock/mockgen -source=codec.go -destination=mocks/mock_codec.go -package=mocks
type Codec interface {
	Encode(obj domain.Object) ([]byte, error)
	Decode(data []byte) (domain.Object, error)
}
