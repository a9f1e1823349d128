package telnet

import "fmt"

// QState is one of the six RFC 1143 Q-method negotiation states tracked
// independently for the Local and Remote perspective of an option.
type QState int

const (
	QStateNo QState = iota
	QStateWantNo
	QStateWantNoOpposite
	QStateYes
	QStateWantYes
	QStateWantYesOpposite
)

func (q QState) String() string {
	switch q {
	case QStateNo:
		return "No"
	case QStateWantNo:
		return "WantNo"
	case QStateWantNoOpposite:
		return "WantNoOpposite"
	case QStateYes:
		return "Yes"
	case QStateWantYes:
		return "WantYes"
	case QStateWantYesOpposite:
		return "WantYesOpposite"
	default:
		return "Invalid"
	}
}

// enabled reports whether q counts as "currently performing" the option,
// i.e. Yes or a disable that has not yet been confirmed by the peer.
func (q QState) enabled() bool {
	return q == QStateYes || q == QStateWantNo || q == QStateWantNoOpposite
}

// optionEntry is one row of the option-state table: the two independent
// Q-method machines plus this implementation's static support flags.
type optionEntry struct {
	local, remote                   QState
	supportedLocal, supportedRemote bool
}

// NegotiationError reports that HandleReceived was fed a frame that is not
// a negotiation triplet. It never mutates option state.
type NegotiationError struct {
	Reason    string
	FrameType string
}

func (e *NegotiationError) Error() string {
	if e.FrameType != "" {
		return fmt.Sprintf("telnet: negotiation error: %s (frame type %s)", e.Reason, e.FrameType)
	}
	return fmt.Sprintf("telnet: negotiation error: %s", e.Reason)
}

// Options is the per-session RFC 1143 Q-method option engine. It owns a
// fixed array of option-state records, one per possible option byte (code
// 255 carries no stored state), per the "array of small records, not a
// map" guidance.
type Options struct {
	table [255]optionEntry
	init  [255]bool
}

// NewOptions creates an option engine with every option's static support
// flags populated lazily from Option.SupportedLocal/SupportedRemote.
func NewOptions() *Options {
	return &Options{}
}

func (o *Options) entry(opt Option) *optionEntry {
	idx := int(opt)
	if idx >= len(o.table) {
		return &optionEntry{}
	}
	e := &o.table[idx]
	if !o.init[idx] {
		e.supportedLocal = opt.SupportedLocal()
		e.supportedRemote = opt.SupportedRemote()
		o.init[idx] = true
	}
	return e
}

// LocalEnabled reports whether opt is currently being performed locally
// (by us, toward the peer).
func (o *Options) LocalEnabled(opt Option) bool {
	return o.entry(opt).local.enabled()
}

// RemoteEnabled reports whether opt is currently being performed by the
// remote peer (toward us).
func (o *Options) RemoteEnabled(opt Option) bool {
	return o.entry(opt).remote.enabled()
}

// EnableLocal requests that we start performing opt (we send WILL).
// request_will in the Q-method table: the Local-state analogue of the
// Remote table's "DO request" column.
func (o *Options) EnableLocal(opt Option) Frame {
	if int(opt) >= len(o.table) {
		return nil
	}
	e := o.entry(opt)
	if !e.supportedLocal {
		return nil
	}
	switch e.local {
	case QStateNo:
		e.local = QStateWantYes
		return WillFrame{Option: opt}
	case QStateWantNo:
		e.local = QStateWantNoOpposite
		return WillFrame{Option: opt}
	case QStateWantNoOpposite:
		e.local = QStateWantYes
		return WillFrame{Option: opt}
	default:
		return nil
	}
}

// DisableLocal requests that we stop performing opt (we send WONT).
// request_wont: the Local-state analogue of the Remote table's "DONT
// request" column.
func (o *Options) DisableLocal(opt Option) Frame {
	if int(opt) >= len(o.table) {
		return nil
	}
	e := o.entry(opt)
	switch e.local {
	case QStateYes:
		e.local = QStateWantNo
		return WontFrame{Option: opt}
	case QStateWantYes:
		e.local = QStateWantNoOpposite
		return WontFrame{Option: opt}
	case QStateWantYesOpposite:
		e.local = QStateWantNo
		return WontFrame{Option: opt}
	default:
		return nil
	}
}

// EnableRemote requests that the peer start performing opt (we send DO).
// request_do: the Remote table's "DO request" column.
func (o *Options) EnableRemote(opt Option) Frame {
	if int(opt) >= len(o.table) {
		return nil
	}
	e := o.entry(opt)
	if !e.supportedRemote {
		return nil
	}
	switch e.remote {
	case QStateNo:
		e.remote = QStateWantYes
		return DoFrame{Option: opt}
	case QStateWantNo:
		e.remote = QStateWantNoOpposite
		return DoFrame{Option: opt}
	case QStateWantNoOpposite:
		e.remote = QStateWantYes
		return DoFrame{Option: opt}
	default:
		return nil
	}
}

// DisableRemote requests that the peer stop performing opt (we send DONT).
// request_dont: the Remote table's "DONT request" column.
func (o *Options) DisableRemote(opt Option) Frame {
	if int(opt) >= len(o.table) {
		return nil
	}
	e := o.entry(opt)
	switch e.remote {
	case QStateYes:
		e.remote = QStateWantNo
		return DontFrame{Option: opt}
	case QStateWantYes:
		e.remote = QStateWantNoOpposite
		return DontFrame{Option: opt}
	case QStateWantYesOpposite:
		e.remote = QStateWantNo
		return DontFrame{Option: opt}
	default:
		return nil
	}
}

// HandleReceived processes a received negotiation frame (Do/Dont/Will/Wont)
// and returns an optional response frame. Any other frame type is a
// NegotiationError and leaves all state untouched.
func (o *Options) HandleReceived(f Frame) (Frame, error) {
	switch v := f.(type) {
	case WillFrame:
		return o.recvWill(v.Option), nil
	case WontFrame:
		return o.recvWont(v.Option), nil
	case DoFrame:
		return o.recvDo(v.Option), nil
	case DontFrame:
		return o.recvDont(v.Option), nil
	default:
		return nil, &NegotiationError{Reason: "frame is not a negotiation triplet", FrameType: frameTypeName(f)}
	}
}

// recvWill: the peer offers to start performing opt toward us (Remote
// table's WILL column). Out-of-range option 255 always responds DONT.
func (o *Options) recvWill(opt Option) Frame {
	if int(opt) >= len(o.table) {
		return DontFrame{Option: opt}
	}
	e := o.entry(opt)
	switch e.remote {
	case QStateNo:
		if !e.supportedRemote {
			return DontFrame{Option: opt}
		}
		e.remote = QStateYes
		return DoFrame{Option: opt}
	case QStateWantNo:
		e.remote = QStateWantNoOpposite
		return DontFrame{Option: opt}
	case QStateWantNoOpposite:
		e.remote = QStateYes
		return nil
	case QStateWantYes:
		e.remote = QStateYes
		return nil
	case QStateWantYesOpposite:
		e.remote = QStateYes
		return nil
	default: // QStateYes
		return nil
	}
}

// recvWont: the peer refuses or stops performing opt toward us (Remote
// table's WONT column). Every state collapses to No with no response.
func (o *Options) recvWont(opt Option) Frame {
	if int(opt) >= len(o.table) {
		return nil
	}
	o.entry(opt).remote = QStateNo
	return nil
}

// recvDo: the peer asks us to start performing opt toward them (Local
// table's DO column, the Local-state analogue of recvWill). Out-of-range
// option 255 always responds WONT.
func (o *Options) recvDo(opt Option) Frame {
	if int(opt) >= len(o.table) {
		return WontFrame{Option: opt}
	}
	e := o.entry(opt)
	switch e.local {
	case QStateNo:
		if !e.supportedLocal {
			return WontFrame{Option: opt}
		}
		e.local = QStateYes
		return WillFrame{Option: opt}
	case QStateWantNo:
		e.local = QStateWantNoOpposite
		return WillFrame{Option: opt}
	case QStateWantNoOpposite:
		e.local = QStateYes
		return nil
	case QStateWantYes:
		e.local = QStateYes
		return nil
	case QStateWantYesOpposite:
		e.local = QStateYes
		return nil
	default: // QStateYes
		return nil
	}
}

// recvDont: the peer asks us to stop performing opt toward them (Local
// table's DONT column, the Local-state analogue of recvWont).
func (o *Options) recvDont(opt Option) Frame {
	if int(opt) >= len(o.table) {
		return nil
	}
	o.entry(opt).local = QStateNo
	return nil
}

func frameTypeName(f Frame) string {
	if f == nil {
		return "nil"
	}
	return fmt.Sprintf("%T", f)
}
