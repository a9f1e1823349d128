package telnet

import "strconv"

// Option identifies a Telnet option code (RFC 854 and successor RFCs
// registering codes 0-255 with IANA). It is a byte-based type rather than
// a Go interface so the option-state tables in qstate.go can index it
// directly into a fixed [255]optionEntry array.
type Option byte

// Named option codes, RFC 854 and successors. Values match the IANA
// "TELNET OPTIONS" registry.
const (
	OptionTransmitBinary             Option = 0
	OptionEcho                       Option = 1
	OptionReconnection               Option = 2
	OptionSuppressGoAhead            Option = 3
	OptionApproxMessageSizeNegotiate Option = 4
	OptionStatus                     Option = 5
	OptionTimingMark                 Option = 6
	OptionRCTE                       Option = 7
	OptionOutputLineWidth            Option = 8
	OptionOutputPageSize             Option = 9
	OptionNAOCRD                     Option = 10
	OptionNAOHTS                     Option = 11
	OptionNAOHTD                     Option = 12
	OptionNAOFFD                     Option = 13
	OptionNAOVTS                     Option = 14
	OptionNAOVTD                     Option = 15
	OptionNAOLFD                     Option = 16
	OptionExtendedASCII              Option = 17
	OptionLogout                     Option = 18
	OptionByteMacro                  Option = 19
	OptionDataEnteredTerminal        Option = 20
	OptionSUPDUP                     Option = 21
	OptionSUPDUPOutput               Option = 22
	OptionSendLocation               Option = 23
	OptionTerminalType               Option = 24
	OptionEndOfRecord                Option = 25
	OptionTACACSUserIdentification   Option = 26
	OptionOutputMarking              Option = 27
	OptionTerminalLocationNumber     Option = 28
	OptionTelnet3270Regime           Option = 29
	OptionX3PAD                      Option = 30
	OptionNAWS                       Option = 31
	OptionTerminalSpeed              Option = 32
	OptionRemoteFlowControl          Option = 33
	OptionLinemode                   Option = 34
	OptionXDisplayLocation           Option = 35
	OptionEnvironment                Option = 36
	OptionAuthentication             Option = 37
	OptionEncryption                 Option = 38
	OptionNewEnvironment             Option = 39
	OptionTN3270E                    Option = 40
	OptionXAUTH                      Option = 41
	OptionCharset                    Option = 42
	OptionRemoteSerialPort           Option = 43
	OptionComPortControl             Option = 44
	OptionSuppressLocalEcho          Option = 45
	OptionStartTLS                   Option = 46
	OptionKermit                     Option = 47
	OptionSendURL                    Option = 48
	OptionForwardX                   Option = 49
	OptionMSDP                       Option = 69
	OptionMSSP                       Option = 70
	OptionCompress1                  Option = 85
	OptionCompress2                  Option = 86
	OptionZMP                        Option = 93
	OptionPragmaLogon                Option = 138
	OptionSSPILogon                  Option = 139
	OptionPragmaHeartbeat            Option = 140
	OptionGMCP                       Option = 201
	OptionExtendedOptionsList        Option = 255
)

var optionNames = map[Option]string{
	OptionTransmitBinary:             "TransmitBinary",
	OptionEcho:                       "Echo",
	OptionReconnection:               "Reconnection",
	OptionSuppressGoAhead:            "SuppressGoAhead",
	OptionApproxMessageSizeNegotiate: "ApproxMessageSizeNegotiate",
	OptionStatus:                     "Status",
	OptionTimingMark:                 "TimingMark",
	OptionRCTE:                       "RCTE",
	OptionOutputLineWidth:            "OutputLineWidth",
	OptionOutputPageSize:             "OutputPageSize",
	OptionNAOCRD:                     "NAOCRD",
	OptionNAOHTS:                     "NAOHTS",
	OptionNAOHTD:                     "NAOHTD",
	OptionNAOFFD:                     "NAOFFD",
	OptionNAOVTS:                     "NAOVTS",
	OptionNAOVTD:                     "NAOVTD",
	OptionNAOLFD:                     "NAOLFD",
	OptionExtendedASCII:              "ExtendedASCII",
	OptionLogout:                     "Logout",
	OptionByteMacro:                  "ByteMacro",
	OptionDataEnteredTerminal:        "DataEnteredTerminal",
	OptionSUPDUP:                     "SUPDUP",
	OptionSUPDUPOutput:               "SUPDUPOutput",
	OptionSendLocation:               "SendLocation",
	OptionTerminalType:               "TerminalType",
	OptionEndOfRecord:                "EndOfRecord",
	OptionTACACSUserIdentification:   "TACACSUserIdentification",
	OptionOutputMarking:              "OutputMarking",
	OptionTerminalLocationNumber:     "TerminalLocationNumber",
	OptionTelnet3270Regime:           "Telnet3270Regime",
	OptionX3PAD:                      "X3PAD",
	OptionNAWS:                       "NAWS",
	OptionTerminalSpeed:              "TerminalSpeed",
	OptionRemoteFlowControl:          "RemoteFlowControl",
	OptionLinemode:                   "Linemode",
	OptionXDisplayLocation:           "XDisplayLocation",
	OptionEnvironment:                "Environment",
	OptionAuthentication:             "Authentication",
	OptionEncryption:                 "Encryption",
	OptionNewEnvironment:             "NewEnvironment",
	OptionTN3270E:                    "TN3270E",
	OptionXAUTH:                      "XAUTH",
	OptionCharset:                    "Charset",
	OptionRemoteSerialPort:           "RemoteSerialPort",
	OptionComPortControl:             "ComPortControl",
	OptionSuppressLocalEcho:          "SuppressLocalEcho",
	OptionStartTLS:                   "StartTLS",
	OptionKermit:                     "Kermit",
	OptionSendURL:                    "SendURL",
	OptionForwardX:                   "ForwardX",
	OptionMSDP:                       "MSDP",
	OptionMSSP:                       "MSSP",
	OptionCompress1:                  "Compress1",
	OptionCompress2:                  "Compress2",
	OptionZMP:                        "ZMP",
	OptionPragmaLogon:                "PragmaLogon",
	OptionSSPILogon:                  "SSPILogon",
	OptionPragmaHeartbeat:            "PragmaHeartbeat",
	OptionGMCP:                       "GMCP",
	OptionExtendedOptionsList:        "ExtendedOptionsList",
}

// String returns the option's registered name, or "Unknown(n)" for any
// code not in the named set above.
func (o Option) String() string {
	if name, ok := optionNames[o]; ok {
		return name
	}
	return "Unknown(" + strconv.Itoa(int(o)) + ")"
}

// IsUnknown reports whether o has no registered name.
func (o Option) IsUnknown() bool {
	_, ok := optionNames[o]
	return !ok
}

// localSupport and remoteSupport record static capability flags per option:
// whether this implementation may WILL (local) or DO (remote) the option.
// Fixed-size arrays indexed by option code, matching the option-state
// table's array-not-map convention (spec §9).
var localSupport [256]bool
var remoteSupport [256]bool

func init() {
	supported := []Option{
		OptionTransmitBinary,
		OptionEcho,
		OptionSuppressGoAhead,
		OptionTerminalType,
		OptionEndOfRecord,
		OptionNAWS,
		OptionLinemode,
		OptionCharset,
		OptionCompress1,
		OptionCompress2,
		OptionGMCP,
	}
	for _, o := range supported {
		localSupport[o] = true
		remoteSupport[o] = true
	}
}

// SupportedLocal reports whether this implementation may offer WILL for o.
func (o Option) SupportedLocal() bool {
	return localSupport[o]
}

// SupportedRemote reports whether this implementation may request DO for o.
func (o Option) SupportedRemote() bool {
	return remoteSupport[o]
}
