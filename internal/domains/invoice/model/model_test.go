package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"passat/internal/domains/invoice/model"
)

func TestIsForwardTransition(t *testing.T) {
	tests := []struct {
		name string
		from string
		to   string
		want bool
	}{
		{name: "draft to finalized", from: model.StatusDraft, to: model.StatusFinalized, want: true},
		{name: "finalized to paid", from: model.StatusFinalized, to: model.StatusPaid, want: true},
		{name: "draft cannot skip finalized", from: model.StatusDraft, to: model.StatusPaid, want: false},
		{name: "paid to finalized", from: model.StatusPaid, to: model.StatusFinalized, want: false},
		{name: "finalized to draft", from: model.StatusFinalized, to: model.StatusDraft, want: false},
		{name: "same status", from: model.StatusDraft, to: model.StatusDraft, want: false},
		{name: "unknown source", from: "void", to: model.StatusPaid, want: false},
		{name: "unknown target", from: model.StatusDraft, to: "void", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, model.IsForwardTransition(tt.from, tt.to))
		})
	}
}
