package telnet

import "testing"

func TestLineModeModeRoundTrip(t *testing.T) {
	flags := LineModeFlags{Edit: true, TrapSig: true}
	payload := encodeLineMode(LineModeMode{Flags: flags})
	decoded := decodeLineMode(payload)
	mode, ok := decoded.(LineModeMode)
	if !ok {
		t.Fatalf("expected LineModeMode, got %#v", decoded)
	}
	if mode.Flags != flags {
		t.Errorf("expected %+v, got %+v", flags, mode.Flags)
	}
}

func TestLineModeSLCRoundTrip(t *testing.T) {
	defs := []SlcDefinition{
		{Function: SlcIp, Flags: SlcFlags{Level: SlcDefault}, Value: 0x03},
		{Function: SlcEc, Flags: SlcFlags{Level: SlcValue, Ack: true}, Value: 0x7F},
	}
	payload := encodeLineMode(LineModeSLC{Definitions: defs})
	decoded := decodeLineMode(payload)
	slc, ok := decoded.(LineModeSLC)
	if !ok {
		t.Fatalf("expected LineModeSLC, got %#v", decoded)
	}
	if len(slc.Definitions) != len(defs) {
		t.Fatalf("expected %d definitions, got %d", len(defs), len(slc.Definitions))
	}
	for i := range defs {
		if slc.Definitions[i] != defs[i] {
			t.Errorf("definition %d: expected %+v, got %+v", i, defs[i], slc.Definitions[i])
		}
	}
}

func TestLineModeSLCIgnoresTrailingPartialTriplet(t *testing.T) {
	payload := []byte{linemodeSLC, byte(SlcIp), 0x01, 0x03, byte(SlcEc)}
	decoded := decodeLineMode(payload).(LineModeSLC)
	if len(decoded.Definitions) != 1 {
		t.Fatalf("expected 1 complete definition, got %d", len(decoded.Definitions))
	}
}

func TestLineModeForwardMaskRoundTrip(t *testing.T) {
	var mask [256]bool
	mask[3] = true
	mask[200] = true
	payload := encodeLineMode(LineModeForwardMask{Mask: mask})
	decoded := decodeLineMode(payload).(LineModeForwardMask)
	if decoded.Mask != mask {
		t.Error("forward mask round trip mismatch")
	}
}
