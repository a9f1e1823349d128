package telnet

import (
	"golang.org/x/text/encoding/ianaindex"
)

// Argument is a decoded subnegotiation payload. The concrete types cover
// the well-known options this implementation understands; anything else
// decodes to UnknownArgument.
type Argument interface {
	isArgument()
	// Encode serializes the argument back into wire-ready subnegotiation
	// payload bytes. It does not escape IAC (see Codec.Encode doc).
	Encode() []byte
}

// NAWSWindowSize is the decoded payload of an Option 31 (NAWS)
// subnegotiation: four octets, cols_hi cols_lo rows_hi rows_lo.
type NAWSWindowSize struct {
	Cols, Rows uint16
}

func (NAWSWindowSize) isArgument() {}

func (a NAWSWindowSize) Encode() []byte {
	return []byte{byte(a.Cols >> 8), byte(a.Cols), byte(a.Rows >> 8), byte(a.Rows)}
}

// LinemodeArgument wraps a decoded LINEMODE (option 34) subnegotiation.
type LinemodeArgument struct {
	Option LineModeOption
}

func (LinemodeArgument) isArgument() {}

func (a LinemodeArgument) Encode() []byte {
	return encodeLineMode(a.Option)
}

// TTYPE is the decoded payload of an Option 24 (TERMINAL-TYPE)
// subnegotiation: a leading IS/SEND byte plus a name.
type TTYPE struct {
	IsResponse bool // true for IS (0), false for SEND (1)
	Name       string
}

func (TTYPE) isArgument() {}

func (a TTYPE) Encode() []byte {
	cmd := byte(1) // SEND
	if a.IsResponse {
		cmd = 0 // IS
	}
	return append([]byte{cmd}, []byte(a.Name)...)
}

// CharsetName is the decoded payload of an Option 42 (CHARSET)
// subnegotiation REQUEST/ACCEPTED exchange, resolved against the IANA
// charset registry via golang.org/x/text/encoding/ianaindex.
type CharsetName struct {
	Accepted bool // true for ACCEPTED(2), false for REQUEST(1)
	Name     string
	// Known reports whether Name resolved to a registered IANA encoding.
	Known bool
}

func (CharsetName) isArgument() {}

const (
	charsetRequest  byte = 1
	charsetAccepted byte = 2
	charsetRejected byte = 3
)

func (a CharsetName) Encode() []byte {
	cmd := charsetRequest
	if a.Accepted {
		cmd = charsetAccepted
	}
	return append([]byte{cmd}, []byte(a.Name)...)
}

// UnknownArgument is the fallback decode for any subnegotiation payload
// this codec does not recognize, including NAWS payloads that are not
// exactly four bytes and empty TTYPE/CHARSET payloads. LINEMODE payloads
// always decode to LinemodeArgument.
type UnknownArgument struct {
	Bytes []byte
}

func (UnknownArgument) isArgument() {}

func (a UnknownArgument) Encode() []byte {
	return a.Bytes
}

// DecodeArgument interprets a subnegotiation payload (the bytes between
// the option code and the terminating IAC SE, with embedded doubled-IAC
// already collapsed by the Codec) according to opt.
func DecodeArgument(opt Option, payload []byte) Argument {
	switch opt {
	case OptionNAWS:
		if len(payload) != 4 {
			return UnknownArgument{Bytes: payload}
		}
		return NAWSWindowSize{
			Cols: uint16(payload[0])<<8 | uint16(payload[1]),
			Rows: uint16(payload[2])<<8 | uint16(payload[3]),
		}
	case OptionLinemode:
		return LinemodeArgument{Option: decodeLineMode(payload)}
	case OptionTerminalType:
		if len(payload) == 0 {
			return UnknownArgument{Bytes: payload}
		}
		return TTYPE{IsResponse: payload[0] == 0, Name: string(payload[1:])}
	case OptionCharset:
		if len(payload) == 0 {
			return UnknownArgument{Bytes: payload}
		}
		name := string(payload[1:])
		_, err := ianaindex.IANA.Encoding(name)
		return CharsetName{
			Accepted: payload[0] == charsetAccepted,
			Name:     name,
			Known:    err == nil,
		}
	default:
		return UnknownArgument{Bytes: payload}
	}
}
