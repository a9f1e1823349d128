package telnet

import "testing"

func TestOptionsEnableRemoteRoundTrip(t *testing.T) {
	o := NewOptions()
	do := o.EnableRemote(OptionNAWS)
	df, ok := do.(DoFrame)
	if !ok || df.Option != OptionNAWS {
		t.Fatalf("expected DoFrame(NAWS), got %#v", do)
	}

	reply, err := o.HandleReceived(WillFrame{Option: OptionNAWS})
	if err != nil {
		t.Fatalf("HandleReceived: %v", err)
	}
	if reply != nil {
		t.Errorf("expected no reply to WILL after WantYes, got %#v", reply)
	}
	if !o.RemoteEnabled(OptionNAWS) {
		t.Error("expected NAWS remote-enabled")
	}

	dont := o.DisableRemote(OptionNAWS)
	donf, ok := dont.(DontFrame)
	if !ok || donf.Option != OptionNAWS {
		t.Fatalf("expected DontFrame(NAWS), got %#v", dont)
	}

	reply, err = o.HandleReceived(WontFrame{Option: OptionNAWS})
	if err != nil {
		t.Fatalf("HandleReceived: %v", err)
	}
	if reply != nil {
		t.Errorf("expected no reply to WONT, got %#v", reply)
	}
	if o.RemoteEnabled(OptionNAWS) {
		t.Error("expected NAWS remote-disabled")
	}
}

// Peer offers an option we don't support locally/remotely: refuse.
func TestOptionsRecvWillUnsupportedRefuses(t *testing.T) {
	o := NewOptions()
	reply, err := o.HandleReceived(WillFrame{Option: Option(222)})
	if err != nil {
		t.Fatalf("HandleReceived: %v", err)
	}
	dont, ok := reply.(DontFrame)
	if !ok || dont.Option != Option(222) {
		t.Fatalf("expected DontFrame(222), got %#v", reply)
	}
	if o.RemoteEnabled(Option(222)) {
		t.Error("expected unsupported option to stay disabled")
	}
}

func TestOptionsRecvDoUnsupportedRefuses(t *testing.T) {
	o := NewOptions()
	reply, err := o.HandleReceived(DoFrame{Option: Option(222)})
	if err != nil {
		t.Fatalf("HandleReceived: %v", err)
	}
	wont, ok := reply.(WontFrame)
	if !ok || wont.Option != Option(222) {
		t.Fatalf("expected WontFrame(222), got %#v", reply)
	}
}

func TestOptionsOutOfRangeOption255(t *testing.T) {
	o := NewOptions()
	if f := o.EnableLocal(Option(255)); f != nil {
		t.Errorf("expected nil for out-of-range EnableLocal, got %#v", f)
	}
	reply, err := o.HandleReceived(WillFrame{Option: Option(255)})
	if err != nil {
		t.Fatalf("HandleReceived: %v", err)
	}
	dont, ok := reply.(DontFrame)
	if !ok || dont.Option != Option(255) {
		t.Fatalf("expected DontFrame(255), got %#v", reply)
	}
}

func TestOptionsHandleReceivedRejectsNonNegotiationFrame(t *testing.T) {
	o := NewOptions()
	_, err := o.HandleReceived(DataFrame{Byte: 'x'})
	if err == nil {
		t.Fatal("expected a NegotiationError")
	}
	if _, ok := err.(*NegotiationError); !ok {
		t.Fatalf("expected *NegotiationError, got %T", err)
	}
}

// Simultaneous local enable: both sides send WILL without being asked.
// recvWill while in WantYes (our own earlier EnableLocal is a *local*
// table operation, so exercise the symmetric Remote race instead): we
// requested DO (EnableRemote -> WantYes), then the peer's WILL arrives
// before our DO does -- collapses straight to Yes with no reply.
func TestOptionsSimultaneousEnableCollapsesCleanly(t *testing.T) {
	o := NewOptions()
	o.EnableRemote(OptionCharset)
	reply, err := o.HandleReceived(WillFrame{Option: OptionCharset})
	if err != nil {
		t.Fatalf("HandleReceived: %v", err)
	}
	if reply != nil {
		t.Errorf("expected no reply, got %#v", reply)
	}
	if !o.RemoteEnabled(OptionCharset) {
		t.Error("expected Charset remote-enabled")
	}
}
