package gesture

import "testing"

func TestTransitionIdle(t *testing.T) {
	tests := []struct {
		name string
		ev   ScrollEvent
		mods Modifiers
		want Decision
	}{
		{
			name: "horizontal scroll with activation begins",
			ev:   ScrollEvent{Dx: 50},
			mods: Modifiers{Activation: true},
			want: DecisionBegin,
		},
		{
			name: "horizontal scroll without activation passes",
			ev:   ScrollEvent{Dx: 50},
			mods: Modifiers{},
			want: DecisionPass,
		},
		{
			name: "vertical scroll with activation passes",
			ev:   ScrollEvent{Dy: 50},
			mods: Modifiers{Activation: true},
			want: DecisionPass,
		},
		{
			name: "diagonal mostly vertical passes",
			ev:   ScrollEvent{Dx: 10, Dy: 30},
			mods: Modifiers{Activation: true},
			want: DecisionPass,
		},
		{
			name: "diagonal mostly horizontal begins",
			ev:   ScrollEvent{Dx: 30, Dy: 10},
			mods: Modifiers{Activation: true},
			want: DecisionBegin,
		},
		{
			name: "equal components favor horizontal",
			ev:   ScrollEvent{Dx: 20, Dy: 20},
			mods: Modifiers{Activation: true},
			want: DecisionBegin,
		},
		{
			name: "negative dx begins",
			ev:   ScrollEvent{Dx: -50},
			mods: Modifiers{Activation: true},
			want: DecisionBegin,
		},
		{
			name: "zero event passes",
			ev:   ScrollEvent{},
			mods: Modifiers{Activation: true},
			want: DecisionPass,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Transition(false, tt.ev, tt.mods); got != tt.want {
				t.Errorf("Transition(idle, %+v, %+v) = %v, want %v", tt.ev, tt.mods, got, tt.want)
			}
		})
	}
}

func TestTransitionActive(t *testing.T) {
	tests := []struct {
		name string
		ev   ScrollEvent
		mods Modifiers
		want Decision
	}{
		{
			name: "horizontal scroll continues",
			ev:   ScrollEvent{Dx: 50},
			mods: Modifiers{Activation: true},
			want: DecisionContinue,
		},
		{
			name: "releasing activation ends",
			ev:   ScrollEvent{Dx: 50},
			mods: Modifiers{},
			want: DecisionEnd,
		},
		{
			name: "vertical event ends",
			ev:   ScrollEvent{Dy: 50},
			mods: Modifiers{Activation: true},
			want: DecisionEnd,
		},
		{
			name: "dominance not rechecked mid gesture",
			ev:   ScrollEvent{Dx: 5, Dy: 100},
			mods: Modifiers{Activation: true},
			want: DecisionContinue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Transition(true, tt.ev, tt.mods); got != tt.want {
				t.Errorf("Transition(active, %+v, %+v) = %v, want %v", tt.ev, tt.mods, got, tt.want)
			}
		})
	}
}

func TestDecisionConsumed(t *testing.T) {
	if DecisionPass.Consumed() {
		t.Error("pass decision must not consume the event")
	}
	if DecisionEnd.Consumed() {
		t.Error("end decision must not consume the event")
	}
	if !DecisionBegin.Consumed() {
		t.Error("begin decision must consume the event")
	}
	if !DecisionContinue.Consumed() {
		t.Error("continue decision must consume the event")
	}
}
