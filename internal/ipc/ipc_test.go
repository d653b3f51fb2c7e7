package ipc

import (
	"testing"
	"time"
)

type fakeController struct {
	paused bool
}

func (f *fakeController) Status() StatusData {
	return StatusData{
		DaemonRunning: true,
		Paused:        f.paused,
		ActivationMod: "mod4",
		UptimeSeconds: 42,
	}
}

func (f *fakeController) Pause() error {
	f.paused = true
	return nil
}

func (f *fakeController) Resume() error {
	f.paused = false
	return nil
}

func startTestServer(t *testing.T) (*fakeController, chan struct{}) {
	t.Helper()
	t.Setenv("XDG_RUNTIME_DIR", t.TempDir())

	ctrl := &fakeController{}
	reloadChan := make(chan struct{}, 1)
	srv, err := NewServer(ctrl, reloadChan)
	if err != nil {
		t.Fatalf("NewServer: %v", err)
	}
	if err := srv.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	t.Cleanup(srv.Stop)
	return ctrl, reloadChan
}

func TestClientStatusRoundTrip(t *testing.T) {
	startTestServer(t)

	status, err := NewClient().GetStatus()
	if err != nil {
		t.Fatalf("GetStatus: %v", err)
	}
	if !status.DaemonRunning || status.ActivationMod != "mod4" || status.UptimeSeconds != 42 {
		t.Errorf("unexpected status: %+v", status)
	}
}

func TestClientPauseResume(t *testing.T) {
	ctrl, _ := startTestServer(t)
	client := NewClient()

	if err := client.Pause(); err != nil {
		t.Fatalf("Pause: %v", err)
	}
	if !ctrl.paused {
		t.Error("controller not paused")
	}

	if err := client.Resume(); err != nil {
		t.Fatalf("Resume: %v", err)
	}
	if ctrl.paused {
		t.Error("controller still paused")
	}
}

func TestClientReloadSignalsChannel(t *testing.T) {
	_, reloadChan := startTestServer(t)

	if err := NewClient().Reload(); err != nil {
		t.Fatalf("Reload: %v", err)
	}
	select {
	case <-reloadChan:
	case <-time.After(time.Second):
		t.Fatal("reload signal never arrived")
	}
}

func TestClientPingWithoutDaemon(t *testing.T) {
	t.Setenv("XDG_RUNTIME_DIR", t.TempDir())
	if err := NewClient().Ping(); err == nil {
		t.Fatal("expected ping to fail with no daemon listening")
	}
}
