package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRules_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(r *Rules)
		wantErr bool
	}{
		{name: "defaults", modify: func(r *Rules) {}},
		{name: "zero time limit", modify: func(r *Rules) { r.TimeLimit = 0 }},
		{name: "zero win threshold", modify: func(r *Rules) { r.WinThreshold = 0 }, wantErr: true},
		{name: "negative time limit", modify: func(r *Rules) { r.TimeLimit = -1 }, wantErr: true},
		{name: "negative message duration", modify: func(r *Rules) { r.MessageDuration = -0.5 }, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rules := DefaultRules()
			tt.modify(&rules)
			err := rules.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
