package telnet

import (
	"bytes"
	"errors"
	"log"
	"os"
)

var defaultLogger = log.New(os.Stderr, "", log.LstdFlags)

type codecState int

const (
	stateNormalData codecState = iota
	stateInterpretAsCommand
	stateNegotiate // next byte is the option for Do/Dont/Will/Wont
	stateSubnegotiate
	stateSubnegotiateArgument
	stateSubnegotiateArgumentIAC
)

// CodecOption configures a Codec at construction time.
type CodecOption func(*Codec)

// WithLogger overrides the logger used for recoverable protocol
// violations (unknown command byte, aborted subnegotiation, non-ASCII
// data while TransmitBinary is off locally). A nil logger is treated as
// WithLogger(defaultLogger).
func WithLogger(l *log.Logger) CodecOption {
	return func(c *Codec) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithLineMode enables line-buffering mode: bytes accumulate into an
// internal line buffer and LineFrame is emitted on a terminator instead of
// one DataFrame per byte.
func WithLineMode(enabled bool) CodecOption {
	return func(c *Codec) { c.lineMode = enabled }
}

// WithUTF8Lines marks the line buffer as accumulating UTF-8 text; invalid
// fragments are retained literally rather than replaced.
func WithUTF8Lines(enabled bool) CodecOption {
	return func(c *Codec) { c.utf8Lines = enabled }
}

// Codec is the byte-in, frame-out Telnet protocol state machine (spec
// §4.2), wrapping an embedded Options engine for negotiation bookkeeping.
type Codec struct {
	Options *Options

	state     codecState
	negVerb   byte // the verb (WILL/WONT/DO/DONT) awaiting its option byte
	subOption Option
	subBuf    []byte

	lineMode  bool
	utf8Lines bool
	lineBuf   []byte
	pendingCR bool

	logger *log.Logger

	pendingMCCP       bool
	pendingMCCPOption Option
	pendingMCCPTail   []byte
}

// NewCodec creates a Codec with a fresh option engine.
func NewCodec(opts ...CodecOption) *Codec {
	c := &Codec{Options: NewOptions(), logger: defaultLogger}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// IsEnabledLocal delegates to the embedded option engine.
func (c *Codec) IsEnabledLocal(opt Option) bool { return c.Options.LocalEnabled(opt) }

// IsEnabledRemote delegates to the embedded option engine.
func (c *Codec) IsEnabledRemote(opt Option) bool { return c.Options.RemoteEnabled(opt) }

// PendingCompressionSwitch reports whether the most recently decoded
// frame closed a Compress1/Compress2 (option 85/86) subnegotiation, and if
// so, which option and
// what trailing bytes (already compressed) were drained from src after the
// closing IAC SE. Calling it clears the pending state.
func (c *Codec) PendingCompressionSwitch() (Option, []byte, bool) {
	if !c.pendingMCCP {
		return 0, nil, false
	}
	opt, tail := c.pendingMCCPOption, c.pendingMCCPTail
	c.pendingMCCP = false
	c.pendingMCCPOption = 0
	c.pendingMCCPTail = nil
	return opt, tail, true
}

// Decode consumes bytes from src and returns the next completed Frame, or
// (nil, nil) if src was exhausted before a frame completed (more input is
// needed). Partial sequences persist in the Codec across calls.
func (c *Codec) Decode(src *bytes.Buffer) (Frame, error) {
	for {
		b, err := src.ReadByte()
		if err != nil {
			return nil, nil
		}
		frame := c.step(b)
		if frame == nil {
			continue
		}
		if c.pendingMCCP && c.pendingMCCPTail == nil && src.Len() > 0 {
			// Everything left in src arrived after the subnegotiation's
			// closing IAC SE and is already compressed; drain it so the
			// caller can hand it straight to a compress.Stream instead of
			// re-entering this decoder on it.
			tail := make([]byte, src.Len())
			src.Read(tail)
			c.pendingMCCPTail = tail
		}
		return frame, nil
	}
}

// step feeds one byte through the state machine and returns a completed
// Frame, or nil if more bytes are needed.
func (c *Codec) step(b byte) Frame {
	switch c.state {
	case stateNormalData:
		return c.stepNormal(b)
	case stateInterpretAsCommand:
		return c.stepCommand(b)
	case stateNegotiate:
		opt := Option(b)
		c.state = stateNormalData
		return c.negotiationFrame(c.negVerb, opt)
	case stateSubnegotiate:
		c.subOption = Option(b)
		c.subBuf = c.subBuf[:0]
		c.state = stateSubnegotiateArgument
		return nil
	case stateSubnegotiateArgument:
		if b == cmdIAC {
			c.state = stateSubnegotiateArgumentIAC
			return nil
		}
		c.subBuf = append(c.subBuf, b)
		return nil
	case stateSubnegotiateArgumentIAC:
		switch b {
		case cmdIAC:
			c.subBuf = append(c.subBuf, cmdIAC)
			c.state = stateSubnegotiateArgument
			return nil
		case cmdSE:
			return c.completeSubnegotiation()
		default:
			c.logger.Printf("telnet: aborted subnegotiation: unexpected byte 0x%02X after IAC inside SB", b)
			c.subBuf = c.subBuf[:0]
			c.state = stateNormalData
			return NoOperationFrame{}
		}
	default:
		c.state = stateNormalData
		return nil
	}
}

func (c *Codec) completeSubnegotiation() Frame {
	opt := c.subOption
	payload := append([]byte(nil), c.subBuf...)
	c.subBuf = c.subBuf[:0]
	c.state = stateNormalData

	if opt == OptionCompress1 || opt == OptionCompress2 {
		c.pendingMCCP = true
		c.pendingMCCPOption = opt
		c.pendingMCCPTail = nil
	}

	arg := DecodeArgument(opt, payload)
	return SubnegotiateFrame{Option: opt, Argument: arg}
}

func (c *Codec) stepNormal(b byte) Frame {
	if b == cmdIAC {
		c.state = stateInterpretAsCommand
		return nil
	}
	if !c.Options.LocalEnabled(OptionTransmitBinary) && b >= 0x80 {
		c.logger.Printf("telnet: non-ASCII byte 0x%02X received with TransmitBinary disabled locally", b)
	}
	if !c.lineMode {
		return DataFrame{Byte: b}
	}
	return c.appendLineByte(b)
}

// appendLineByte implements the line-mode buffering rule from spec §4.2:
// CR buffers, LF emits a LineFrame (stripping a preceding buffered CR
// first so CRLF counts as one terminator), everything else accumulates.
func (c *Codec) appendLineByte(b byte) Frame {
	if b == '\r' {
		c.lineBuf = append(c.lineBuf, '\r')
		c.pendingCR = true
		return nil
	}
	if b == '\n' {
		line := c.lineBuf
		if c.pendingCR && len(line) > 0 && line[len(line)-1] == '\r' {
			line = line[:len(line)-1]
		}
		s := string(line)
		c.lineBuf = c.lineBuf[:0]
		c.pendingCR = false
		return LineFrame{Line: s}
	}
	c.pendingCR = false
	c.lineBuf = append(c.lineBuf, b)
	return nil
}

func (c *Codec) stepCommand(b byte) Frame {
	switch b {
	case cmdIAC:
		c.state = stateNormalData
		return DataFrame{Byte: cmdIAC}
	case cmdSE:
		// Invalid here (spec §4.2): no open subnegotiation. Recover.
		c.logger.Printf("telnet: unexpected SE outside subnegotiation")
		c.state = stateNormalData
		return NoOperationFrame{}
	case cmdSB:
		c.state = stateSubnegotiate
		return nil
	case cmdWILL, cmdWONT, cmdDO, cmdDONT:
		c.negVerb = b
		c.state = stateNegotiate
		return nil
	default:
		if frame, ok := frameForCommand(b); ok {
			c.state = stateNormalData
			return frame
		}
		c.logger.Printf("telnet: unknown command byte 0x%02X after IAC", b)
		c.state = stateNormalData
		return NoOperationFrame{}
	}
}

func (c *Codec) negotiationFrame(verb byte, opt Option) Frame {
	switch verb {
	case cmdDO:
		return DoFrame{Option: opt}
	case cmdDONT:
		return DontFrame{Option: opt}
	case cmdWILL:
		return WillFrame{Option: opt}
	case cmdWONT:
		return WontFrame{Option: opt}
	default:
		return NoOperationFrame{}
	}
}

// Encode serializes f onto dst. It mirrors Decode exactly: literal
// Data(0xFF) becomes IAC IAC, single-octet commands become IAC <cmd>,
// negotiation triplets become IAC <verb> <option>, and a subnegotiation
// becomes IAC SB <option> <payload> IAC SE. Encode does not escape IAC
// bytes inside the argument payload (spec §4.2/§9) — Argument.Encode
// implementations that can produce 0xFF must double it themselves.
func (c *Codec) Encode(f Frame, dst *bytes.Buffer) error {
	switch v := f.(type) {
	case DataFrame:
		dst.WriteByte(v.Byte)
		if v.Byte == cmdIAC {
			dst.WriteByte(cmdIAC)
		}
		return nil
	case LineFrame:
		for i := 0; i < len(v.Line); i++ {
			b := v.Line[i]
			dst.WriteByte(b)
			if b == cmdIAC {
				dst.WriteByte(cmdIAC)
			}
		}
		dst.WriteByte('\r')
		dst.WriteByte('\n')
		return nil
	case DoFrame:
		dst.Write([]byte{cmdIAC, cmdDO, byte(v.Option)})
		return nil
	case DontFrame:
		dst.Write([]byte{cmdIAC, cmdDONT, byte(v.Option)})
		return nil
	case WillFrame:
		dst.Write([]byte{cmdIAC, cmdWILL, byte(v.Option)})
		return nil
	case WontFrame:
		dst.Write([]byte{cmdIAC, cmdWONT, byte(v.Option)})
		return nil
	case SubnegotiateFrame:
		dst.Write([]byte{cmdIAC, cmdSB, byte(v.Option)})
		if v.Argument != nil {
			dst.Write(v.Argument.Encode())
		}
		dst.Write([]byte{cmdIAC, cmdSE})
		return nil
	default:
		if cmd, ok := commandForFrame(f); ok {
			dst.Write([]byte{cmdIAC, cmd})
			return nil
		}
		return errors.New("telnet: encode: unrecognized frame type")
	}
}

// EncodeText transmits s byte-by-byte with IAC escaping, followed by a
// trailing CRLF, matching the teacher's SendText convenience encoder.
func (c *Codec) EncodeText(s string, dst *bytes.Buffer) {
	for i := 0; i < len(s); i++ {
		b := s[i]
		dst.WriteByte(b)
		if b == cmdIAC {
			dst.WriteByte(cmdIAC)
		}
	}
	dst.WriteByte('\r')
	dst.WriteByte('\n')
}
