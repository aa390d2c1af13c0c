// If you are AI: This file defines AMF0 type markers and errors.

package amf0

import "errors"

// AMF0 type markers
const (
	TypeNumber      = 0
	TypeBoolean     = 1
	TypeString      = 2
	TypeObject      = 3
	TypeNull        = 5
	TypeUndefined   = 6
	TypeReference   = 7
	TypeECMAArray   = 8
	TypeObjectEnd   = 9
	TypeStrictArray = 10
	TypeDate        = 11
	TypeLongString  = 12
	TypeXMLDocument = 15
	TypeTypedObject = 16
)

// ObjectEnd is the 3-byte terminator of objects and ECMA arrays (empty key + end marker).
const ObjectEnd = 0x000009

// MaxStringLength is the largest length a short string can carry.
const MaxStringLength = 0xFFFF

var (
	ErrInvalidUTF8   = errors.New("invalid utf8 string")
	ErrStringTooLong = errors.New("amf0 string too long")
)

// Name returns a readable name for a type marker.
func Name(marker byte) string {
	switch marker {
	case TypeNumber:
		return "number"
	case TypeBoolean:
		return "boolean"
	case TypeString:
		return "string"
	case TypeObject:
		return "object"
	case TypeNull:
		return "null"
	case TypeUndefined:
		return "undefined"
	case TypeReference:
		return "reference"
	case TypeECMAArray:
		return "ecma-array"
	case TypeObjectEnd:
		return "object-end"
	case TypeStrictArray:
		return "strict-array"
	case TypeDate:
		return "date"
	case TypeLongString:
		return "long-string"
	case TypeXMLDocument:
		return "xml-document"
	case TypeTypedObject:
		return "typed-object"
	default:
		return "unknown"
	}
}
