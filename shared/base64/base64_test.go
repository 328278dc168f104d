package base64_test

import (
	"testing"

	"lodge/shared/base64"

	"github.com/stretchr/testify/assert"
)

func TestGetContentType(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "png", input: "data:image/png;base64,iVBORw0KGgo=", want: "image/png"},
		{name: "jpeg", input: "data:image/jpeg;base64,/9j/4AAQ", want: "image/jpeg"},
		{name: "with parameters", input: "data:image/svg+xml;charset=utf-8;base64,PHN2Zz4=", want: "image/svg+xml;charset=utf-8"},
		{name: "empty", input: "", want: ""},
		{name: "no data prefix", input: "image/png;base64,iVBORw0KGgo=", want: ""},
		{name: "no base64 marker", input: "data:image/png,iVBORw0KGgo=", want: ""},
		{name: "empty media type", input: "data:;base64,", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, base64.GetContentType(tt.input))
		})
	}
}
