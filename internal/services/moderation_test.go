package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "lowercase", in: "Hello World", want: "hello world"},
		{name: "de-obfuscation", in: "h@te", want: "hate"},
		{name: "digits as letters", in: "un4l1ve", want: "unalive"},
		{name: "punctuation stripped", in: "wow... ok?", want: "wow ok"},
		{name: "repeats collapsed", in: "hurrrt myselffff", want: "hurt myself"},
		{name: "whitespace normalized", in: "  a \t b\n c ", want: "a b c"},
		{name: "empty", in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanText(tt.in))
		})
	}
}

func TestContainsSelfHarmLanguage(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{name: "plain phrase", in: "sometimes I want to die", want: true},
		{name: "double letters", in: "I want to kill myself", want: true},
		{name: "obfuscated", in: "I want to k!ll myself", want: true},
		{name: "stretched letters", in: "I might hurrrt myselffff", want: true},
		{name: "euphemism", in: "thinking about going unalive", want: true},
		{name: "single word needs word boundary", in: "that was a skill issue", want: false},
		{name: "supportive post", in: "Grateful for this supportive community.", want: false},
		{name: "empty", in: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ContainsSelfHarmLanguage(tt.in))
		})
	}
}
