package core

import (
	"errors"
	"testing"
)

func TestValidatePattern(t *testing.T) {
	validPattern := func() *Pattern {
		p := NewPattern()
		p.Vars.Add(Handle(1))
		p.Mandatory = []Handle{Handle(2)}
		return p
	}

	tests := []struct {
		name    string
		pattern *Pattern
		wantErr error
	}{
		{
			name:    "valid pattern",
			pattern: validPattern(),
			wantErr: nil,
		},
		{
			name:    "nil pattern",
			pattern: nil,
			wantErr: ErrInvalidPattern,
		},
		{
			name: "no variables",
			pattern: func() *Pattern {
				p := NewPattern()
				p.Mandatory = []Handle{Handle(2)}
				return p
			}(),
			wantErr: ErrNoVariables,
		},
		{
			name: "no clauses",
			pattern: func() *Pattern {
				p := NewPattern()
				p.Vars.Add(Handle(1))
				return p
			}(),
			wantErr: ErrNoClauses,
		},
		{
			name: "type restriction on unknown variable",
			pattern: func() *Pattern {
				p := validPattern()
				p.Vars.SimpleTypeMap[Handle(77)] = []Type{ConceptNode}
				return p
			}(),
			wantErr: ErrUnknownVariable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePattern(tt.pattern)

			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidatePattern() error = %v, want nil", err)
				}
				return
			}

			if err == nil {
				t.Errorf("ValidatePattern() error = nil, want %v", tt.wantErr)
				return
			}

			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidatePattern() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateChoice(t *testing.T) {
	tests := []struct {
		name    string
		choice  Choice
		wantErr error
	}{
		{
			name:    "valid choice",
			choice:  Choice{Clause: 1, StartTerm: 2},
			wantErr: nil,
		},
		{
			name:    "undefined clause",
			choice:  Choice{StartTerm: 2},
			wantErr: ErrEmptyChoice,
		},
		{
			name:    "undefined start term",
			choice:  Choice{Clause: 1},
			wantErr: ErrEmptyChoice,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateChoice(tt.choice)

			if tt.wantErr == nil && err != nil {
				t.Errorf("ValidateChoice() error = %v, want nil", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateChoice() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
