package terminal

import "github.com/drake/termionix/telnet"

// ApplyTelnetArgument updates the buffer from a decoded Telnet
// subnegotiation argument: a received NAWS resizes the buffer (a zero
// cols or rows is ignored, per spec.md §8 scenario 7), and a CHARSET
// ACCEPTED is recorded into the environment under "CHARSET". This is the
// one place the terminal package imports telnet (spec.md §4.5's opening
// sentence already describes the buffer reacting to "selected Telnet
// subnegotiations").
func (b *TerminalBuffer) ApplyTelnetArgument(opt telnet.Option, arg telnet.Argument) {
	switch opt {
	case telnet.OptionNAWS:
		naws, ok := arg.(telnet.NAWSWindowSize)
		if !ok || naws.Cols == 0 || naws.Rows == 0 {
			return
		}
		b.SetSize(int(naws.Cols), int(naws.Rows))
	case telnet.OptionCharset:
		cs, ok := arg.(telnet.CharsetName)
		if !ok || !cs.Accepted {
			return
		}
		b.SetEnvironment("CHARSET", cs.Name)
	}
}
